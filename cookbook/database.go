package cookbook

import (
	"database/sql"
	"net/url"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	cookbooksTable = `cookbooks`
	borrowsTable   = `borrowed_cookbooks`
)

var (
	qb       = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	validate = validator.New()
)

// Database provides the catalog operations around a SQLite connection.
type Database struct {
	db *sql.DB
}

// NewDatabase opens (or creates) the SQLite file at dbPath. The parent
// directory must already exist.
func NewDatabase(dbPath string) (*Database, error) {
	// Foreign keys stay off: the cookbook reference is declarative only.
	dsn := "file:" + url.PathEscape(dbPath) + "?_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	// sql.Open is lazy; make an unopenable path fail here.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "open sqlite")
	}

	return &Database{db: db}, nil
}

// Version reports the linked SQLite library version.
func (d *Database) Version() string {
	v, _, _ := sqlite3.Version()
	return v
}

// Close closes the DB.
func (d *Database) Close() error {
	return d.db.Close()
}

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

var schema = []string{
	`CREATE TABLE IF NOT EXISTS cookbooks (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        title TEXT NOT NULL,
        author TEXT NOT NULL,
        year_published INTEGER,
        aesthetic_rating INTEGER,
        instagram_worthy BOOLEAN,
        cover_color TEXT
    );`,
	`CREATE TABLE IF NOT EXISTS borrowed_cookbooks (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        cookbook_id INTEGER NOT NULL,
        friend_name TEXT NOT NULL,
        date_borrowed TEXT NOT NULL,
        date_returned TEXT,
        FOREIGN KEY (cookbook_id) REFERENCES cookbooks (id)
    );`,
}

// EnsureSchema creates both tables when they are missing. Running it again
// leaves an existing schema untouched.
func (d *Database) EnsureSchema() error {
	tx, err := d.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin schema")
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return errors.Wrap(err, "apply schema")
		}
	}

	return errors.Wrap(tx.Commit(), "commit schema")
}

// ---------------------------------------------------------------------------
// Cookbooks
// ---------------------------------------------------------------------------

// AddCookbook inserts a catalog entry. A zero YearPublished and an empty
// CoverColor are stored as NULL.
func (d *Database) AddCookbook(c *Cookbook) (int64, error) {
	if err := validate.Struct(c); err != nil {
		return 0, errors.Wrap(ErrInvalidBook, err.Error())
	}

	res, err := qb.Insert(cookbooksTable).
		Columns("title", "author", "year_published", "aesthetic_rating", "instagram_worthy", "cover_color").
		Values(c.Title, c.Author, nullInt(c.YearPublished), c.AestheticRating, c.InstagramWorthy, nullString(c.CoverColor)).
		RunWith(d.db).
		Exec()
	if err != nil {
		return 0, errors.Wrap(err, "insert cookbook")
	}
	return res.LastInsertId()
}

// GetCookbook fetches a single cookbook by id.
func (d *Database) GetCookbook(id int64) (*Cookbook, error) {
	var c Cookbook
	err := qb.Select(
		"id", "title", "author",
		"COALESCE(year_published,0)",
		"COALESCE(aesthetic_rating,0)",
		"COALESCE(instagram_worthy,0)",
		"COALESCE(cover_color,'')",
	).
		From(cookbooksTable).
		Where(sq.Eq{"id": id}).
		RunWith(d.db).
		QueryRow().
		Scan(&c.ID, &c.Title, &c.Author, &c.YearPublished, &c.AestheticRating, &c.InstagramWorthy, &c.CoverColor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select cookbook")
	}
	return &c, nil
}

func nullInt(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
