package cookbook

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

// RecordBorrow stores a new open loan. An empty friend name or borrow date
// returns ErrInvalidBorrow without touching the table. Nothing stops a
// second open loan for the same cookbook.
func (d *Database) RecordBorrow(cookbookID int64, friendName, dateBorrowed string) (*BorrowRecord, error) {
	rec := &BorrowRecord{
		CookbookID:   cookbookID,
		FriendName:   friendName,
		DateBorrowed: dateBorrowed,
	}
	if err := validate.Struct(rec); err != nil {
		return nil, errors.Wrap(ErrInvalidBorrow, err.Error())
	}

	res, err := qb.Insert(borrowsTable).
		Columns("cookbook_id", "friend_name", "date_borrowed").
		Values(cookbookID, friendName, dateBorrowed).
		RunWith(d.db).
		Exec()
	if err != nil {
		return nil, errors.Wrap(err, "insert borrow record")
	}
	if rec.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "borrow record id")
	}
	return rec, nil
}

// Borrows returns the lending history of one cookbook, oldest first.
func (d *Database) Borrows(cookbookID int64) ([]*BorrowRecord, error) {
	rows, err := qb.Select("id", "cookbook_id", "friend_name", "date_borrowed", "date_returned").
		From(borrowsTable).
		Where(sq.Eq{"cookbook_id": cookbookID}).
		OrderBy("id").
		RunWith(d.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(err, "select borrow records")
	}
	defer rows.Close()

	var records []*BorrowRecord
	for rows.Next() {
		var r BorrowRecord
		if err := rows.Scan(&r.ID, &r.CookbookID, &r.FriendName, &r.DateBorrowed, &r.DateReturned); err != nil {
			return nil, errors.Wrap(err, "scan borrow record")
		}
		records = append(records, &r)
	}
	return records, errors.Wrap(rows.Err(), "iterate borrow records")
}
