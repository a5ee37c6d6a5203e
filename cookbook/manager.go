package cookbook

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Manager is the console façade over the Database. Each operation prints one
// human-readable outcome to out and returns the error so callers can decide
// whether to carry on.
type Manager struct {
	db  *Database
	out io.Writer
	log *zap.Logger
}

// NewManager opens the catalog at dbPath and reports the result on out.
func NewManager(dbPath string, out io.Writer, log *zap.Logger) (*Manager, error) {
	log = log.Named("cookbook")

	db, err := NewDatabase(dbPath)
	if err != nil {
		fmt.Fprintf(out, "Error establishing connection with the void: %v\n", err)
		log.Error("open database", zap.String("path", dbPath), zap.Error(err))
		return nil, err
	}

	fmt.Fprintf(out, "Successfully connected to SQLite %s\n", db.Version())
	log.Debug("database opened", zap.String("path", dbPath))
	return &Manager{db: db, out: out, log: log}, nil
}

// Close closes the underlying database.
func (m *Manager) Close() error { return m.db.Close() }

// EnsureSchema creates the tables if needed and reports the outcome.
func (m *Manager) EnsureSchema() error {
	if err := m.db.EnsureSchema(); err != nil {
		fmt.Fprintf(m.out, "Error creating tables: %v\n", err)
		m.log.Error("ensure schema", zap.Error(err))
		return err
	}
	fmt.Fprintln(m.out, "Successfully created tables.")
	return nil
}

// TrackBorrow records a loan and prints a confirmation or the reason it failed.
func (m *Manager) TrackBorrow(cookbookID int64, friendName, dateBorrowed string) error {
	rec, err := m.db.RecordBorrow(cookbookID, friendName, dateBorrowed)
	switch {
	case errors.Is(err, ErrInvalidBorrow):
		fmt.Fprintln(m.out, "Friend name and borrow date are required!")
		m.log.Warn("borrow rejected", zap.Int64("cookbook_id", cookbookID), zap.Error(err))
		return err
	case err != nil:
		fmt.Fprintf(m.out, "Error tracking borrowed cookbook: %v\n", err)
		m.log.Error("record borrow", zap.Int64("cookbook_id", cookbookID), zap.Error(err))
		return err
	}

	fmt.Fprintf(m.out, "%s borrowed cookbook ID %d on %s.\n", rec.FriendName, rec.CookbookID, rec.DateBorrowed)
	m.log.Info("borrow recorded", zap.Int64("id", rec.ID), zap.Int64("cookbook_id", cookbookID))
	return nil
}

// PlanPhotoshoot prints the photoshoot plan for a cookbook.
func (m *Manager) PlanPhotoshoot(cookbookID int64) error {
	plan, err := m.db.PlanPhotoshoot(cookbookID)
	switch {
	case errors.Is(err, ErrNotFound):
		fmt.Fprintln(m.out, "Cookbook not found!")
		return err
	case err != nil:
		fmt.Fprintf(m.out, "Error creating photoshoot plan: %v\n", err)
		m.log.Error("plan photoshoot", zap.Int64("cookbook_id", cookbookID), zap.Error(err))
		return err
	}
	return plan.Render(m.out)
}

// ShowCookbook prints the stored attributes of one cookbook.
func (m *Manager) ShowCookbook(cookbookID int64) error {
	c, err := m.db.GetCookbook(cookbookID)
	switch {
	case errors.Is(err, ErrNotFound):
		fmt.Fprintln(m.out, "Cookbook not found!")
		return err
	case err != nil:
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return err
	}

	worthy := "No"
	if c.InstagramWorthy {
		worthy = "Yes"
	}
	year := "-"
	if c.YearPublished != 0 {
		year = fmt.Sprint(c.YearPublished)
	}
	fmt.Fprintf(m.out, "%-18s %d\n", "ID:", c.ID)
	fmt.Fprintf(m.out, "%-18s %s\n", "Title:", c.Title)
	fmt.Fprintf(m.out, "%-18s %s\n", "Author:", c.Author)
	fmt.Fprintf(m.out, "%-18s %s\n", "Published:", year)
	fmt.Fprintf(m.out, "%-18s %d\n", "Aesthetic rating:", c.AestheticRating)
	fmt.Fprintf(m.out, "%-18s %s\n", "Instagram worthy:", worthy)
	fmt.Fprintf(m.out, "%-18s %s\n", "Cover color:", c.CoverColor)
	return nil
}

// ListBorrows prints the lending history of one cookbook.
func (m *Manager) ListBorrows(cookbookID int64) error {
	records, err := m.db.Borrows(cookbookID)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(m.out, "No borrowing records for cookbook ID %d.\n", cookbookID)
		return nil
	}

	fmt.Fprintf(m.out, "%-5s %-25s %-12s %s\n", "ID", "Friend", "Borrowed", "Returned")
	for _, r := range records {
		returned := "out on loan"
		if r.DateReturned != nil {
			returned = *r.DateReturned
		}
		fmt.Fprintf(m.out, "%-5d %-25s %-12s %s\n", r.ID, r.FriendName, r.DateBorrowed, returned)
	}
	return nil
}
