package cookbook

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CSVHeader is the column order ParseCSV expects. A first row equal to it is
// skipped.
var CSVHeader = []string{"title", "author", "year_published", "aesthetic_rating", "instagram_worthy", "cover_color"}

// ParseCSV reads catalog rows. Only title and author are required; empty
// optional cells become zero values. Malformed rows are returned as errors
// next to the rows that parsed.
func ParseCSV(r io.Reader) ([]*Cookbook, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(CSVHeader)
	reader.TrimLeadingSpace = true

	var (
		books []*Cookbook
		errs  []error
	)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "line %d", line))
			continue
		}
		if line == 1 && strings.EqualFold(record[0], CSVHeader[0]) {
			continue
		}

		c, err := parseRow(record)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "line %d", line))
			continue
		}
		books = append(books, c)
	}
	return books, errs
}

func parseRow(record []string) (*Cookbook, error) {
	c := &Cookbook{
		Title:      strings.TrimSpace(record[0]),
		Author:     strings.TrimSpace(record[1]),
		CoverColor: strings.TrimSpace(record[5]),
	}

	var err error
	if c.YearPublished, err = optionalInt(record[2]); err != nil {
		return nil, errors.Wrap(err, "year_published")
	}
	if c.AestheticRating, err = optionalInt(record[3]); err != nil {
		return nil, errors.Wrap(err, "aesthetic_rating")
	}
	if v := strings.TrimSpace(record[4]); v != "" {
		if c.InstagramWorthy, err = strconv.ParseBool(v); err != nil {
			return nil, errors.Wrap(err, "instagram_worthy")
		}
	}

	if err := validate.Struct(c); err != nil {
		return nil, errors.Wrap(ErrInvalidBook, err.Error())
	}
	return c, nil
}

func optionalInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
