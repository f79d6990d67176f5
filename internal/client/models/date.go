package models

import (
	"bytes"
	"time"
)

// dateLayout is the ISO-8601 calendar-date wire format used by both the
// primary backend and the direct PostgREST source.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. Absent, null or
// malformed wire values decode to the zero Date ("no date") rather than
// returning an error, so a single bad row never poisons a whole result set.
type Date struct {
	time.Time
}

// NewDate builds a Date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// Tolerate timestamps that carry a time component.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil
		}
	}
	d.Time = t
	return nil
}
