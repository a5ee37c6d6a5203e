package cookbook

import "github.com/pkg/errors"

var (
	ErrNotFound      = errors.New("cookbook not found")
	ErrInvalidBorrow = errors.New("friend name and borrow date are required")
	ErrInvalidBook   = errors.New("title and author are required")
)
