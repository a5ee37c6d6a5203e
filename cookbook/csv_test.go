package cookbook

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := `title,author,year_published,aesthetic_rating,instagram_worthy,cover_color
Six Seasons,Joshua McFadden,2017,2,true,Forest Green
"Foraged & Found",Rowan Ash,,3,,Beige
`
	books, errs := ParseCSV(strings.NewReader(input))

	require.Empty(t, errs)
	require.Len(t, books, 2)
	assert.Equal(t, &Cookbook{
		Title:           "Six Seasons",
		Author:          "Joshua McFadden",
		YearPublished:   2017,
		AestheticRating: 2,
		InstagramWorthy: true,
		CoverColor:      "Forest Green",
	}, books[0])
	assert.Equal(t, "Foraged & Found", books[1].Title)
	assert.Zero(t, books[1].YearPublished)
	assert.False(t, books[1].InstagramWorthy)
}

func TestParseCSV_WithoutHeader(t *testing.T) {
	books, errs := ParseCSV(strings.NewReader("Denim Days,Sky Lark,2020,4,false,Denim\n"))

	require.Empty(t, errs)
	require.Len(t, books, 1)
	assert.Equal(t, "Denim", books[0].CoverColor)
}

func TestParseCSV_BadRows(t *testing.T) {
	input := `title,author,year_published,aesthetic_rating,instagram_worthy,cover_color
,No Title,2001,1,true,Beige
Bad Year,Anon,soon,1,true,Beige
Short Row,Anon
Good,Anon,2001,1,yes,Beige
Fine,Anon,2002,1,1,Beige
`
	books, errs := ParseCSV(strings.NewReader(input))

	require.Len(t, books, 1)
	assert.Equal(t, "Fine", books[0].Title)
	require.Len(t, errs, 4)
	assert.True(t, errors.Is(errs[0], ErrInvalidBook))
	assert.Contains(t, errs[1].Error(), "line 3")
	assert.Contains(t, errs[1].Error(), "year_published")
	assert.Contains(t, errs[3].Error(), "instagram_worthy")
}
