package cookbook

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const defaultProps = "Minimalist Background, Soft Lighting"

var (
	photoAngles = []string{"Flat Lay", "Close-up Shot", "Side Profile", "Over-the-Shoulder"}

	propsByCoverColor = map[string]string{
		"Forest Green": "Wooden Table, Fresh Herbs",
		"Beige":        "Neutral Linen, Vintage Plates",
		"Denim":        "Rustic Backdrop, Mason Jars",
		"Retro Orange": "70s Decor, Funky Plates",
	}

	hashtags = []string{"#FoodPhotography", "#AestheticEats", "#CookbookLove", "#InstaChef"}
)

// SuggestAngles returns the first rating angles. The rating is not range
// checked: zero or less gives none, more than four gives all of them.
func SuggestAngles(rating int64) []string {
	n := max(0, min(rating, int64(len(photoAngles))))
	out := make([]string, n)
	copy(out, photoAngles)
	return out
}

// SuggestProps matches the cover color exactly.
func SuggestProps(coverColor string) string {
	if props, ok := propsByCoverColor[coverColor]; ok {
		return props
	}
	return defaultProps
}

// Hashtags is the same for every cookbook.
func Hashtags() []string {
	return append([]string(nil), hashtags...)
}

// PlanPhotoshoot looks up the cookbook and derives its plan. A missing id
// returns ErrNotFound. An unrated cookbook gets every angle; a NULL color
// gets the default props.
func (d *Database) PlanPhotoshoot(cookbookID int64) (*PhotoshootPlan, error) {
	var (
		title  string
		rating sql.NullInt64
		color  sql.NullString
	)
	err := qb.Select("title", "aesthetic_rating", "cover_color").
		From(cookbooksTable).
		Where(sq.Eq{"id": cookbookID}).
		RunWith(d.db).
		QueryRow().
		Scan(&title, &rating, &color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "id %d", cookbookID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select cookbook")
	}

	if !rating.Valid {
		rating.Int64 = int64(len(photoAngles))
	}
	return &PhotoshootPlan{
		Title:    title,
		Angles:   SuggestAngles(rating.Int64),
		Props:    SuggestProps(color.String),
		Hashtags: Hashtags(),
	}, nil
}

// Render writes the plan block shown after "Generating a photoshoot plan...".
func (p *PhotoshootPlan) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"\n📸 Photoshoot Plan for %s 📸\n"+
			"🎨 Suggested Photo Angles: %s\n"+
			"🌿 Recommended Props: %s\n"+
			"📢 Hashtags: %s\n"+
			"----------------------------\n",
		p.Title,
		strings.Join(p.Angles, ", "),
		p.Props,
		strings.Join(p.Hashtags, ", "),
	)
	return err
}
