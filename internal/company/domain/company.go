package domain

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout accepted for incorporation dates.
const DateLayout = "2006-01-02"

// DefaultCountry is applied when a company has no country set.
const DefaultCountry = "US"

// Company is a company (cap table owner) record.
type Company struct {
	ID                   string
	PublicID             string
	Name                 string
	IncorporationType    IncorporationType
	IncorporationDate    time.Time
	IncorporationCountry string
	IncorporationState   string
	StreetAddress        string
	City                 string
	State                string
	Zipcode              string
	Country              string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type IncorporationType string

const (
	IncorporationLLC   IncorporationType = "llc"
	IncorporationCCorp IncorporationType = "c-corp"
	IncorporationSCorp IncorporationType = "s-corp"
)

// ParseIncorporationType normalizes s and reports whether it is a known type.
func ParseIncorporationType(s string) (IncorporationType, bool) {
	t := IncorporationType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case IncorporationLLC, IncorporationCCorp, IncorporationSCorp:
		return t, true
	default:
		return "", false
	}
}

// ParseIncorporationDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp
// and returns the date at UTC midnight.
func ParseIncorporationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("incorporation date is required")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("incorporation date must be YYYY-MM-DD or RFC 3339")
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Validate validates the company for persistence. Returns an error describing the first validation failure.
func (c *Company) Validate() error {
	if c.PublicID == "" {
		return errors.New("public id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	t, ok := ParseIncorporationType(string(c.IncorporationType))
	if !ok {
		return errors.New("incorporation type must be one of llc, c-corp, s-corp")
	}
	c.IncorporationType = t
	if c.IncorporationDate.IsZero() {
		return errors.New("incorporation date is required")
	}
	required := []struct{ field, value string }{
		{"incorporation country", c.IncorporationCountry},
		{"incorporation state", c.IncorporationState},
		{"street address", c.StreetAddress},
		{"city", c.City},
		{"state", c.State},
		{"zipcode", c.Zipcode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.New(r.field + " is required")
		}
	}
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	return nil
}
