package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// Date is a calendar date that travels as "YYYY-MM-DD". RFC3339 input is
// accepted and truncated to its date.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func FromDatatypes(d datatypes.Date) Date {
	y, m, day := time.Time(d).Date()
	return NewDate(y, m, day)
}

func (d Date) Datatypes() datatypes.Date {
	return datatypes.Date(d.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}
