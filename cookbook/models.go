package cookbook

// Cookbook is a catalogued book. Rows are seeded from outside the borrow and
// photoshoot flows (see cmd/import_cookbooks).
type Cookbook struct {
	ID              int64  `json:"id"`
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	YearPublished   int64  `json:"year_published"`
	AestheticRating int64  `json:"aesthetic_rating"`
	InstagramWorthy bool   `json:"instagram_worthy"`
	CoverColor      string `json:"cover_color"`
}

// BorrowRecord is one lending event. DateReturned is nil while the copy is
// still out.
type BorrowRecord struct {
	ID           int64   `json:"id"`
	CookbookID   int64   `json:"cookbook_id"`
	FriendName   string  `json:"friend_name" validate:"required"`
	DateBorrowed string  `json:"date_borrowed" validate:"required"`
	DateReturned *string `json:"date_returned,omitempty"`
}

// PhotoshootPlan is the text recommendation derived from one cookbook.
type PhotoshootPlan struct {
	Title    string   `json:"title"`
	Angles   []string `json:"angles"`
	Props    string   `json:"props"`
	Hashtags []string `json:"hashtags"`
}
