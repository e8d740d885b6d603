package clock

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the only accepted user input format: DD.MM.YYYY HH:MM.
const Layout = "02.01.2006 15:04"

// Clock converts between user-typed local datetimes and UTC instants.
// The whole process runs in a single configured timezone.
type Clock struct {
	loc *time.Location
}

// New loads the timezone by IANA name.
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

// NewInLocation wraps an already loaded location. Used in tests.
func NewInLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

// Zone returns the configured timezone name.
func (c *Clock) Zone() string {
	return c.loc.String()
}

// Now returns the current time in the configured timezone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// ParseLocal parses "DD.MM.YYYY HH:MM" in the configured timezone.
// Runs of whitespace are collapsed to single spaces first; anything
// that deviates from the layout is an error, never a partial result.
func (c *Clock) ParseLocal(s string) (time.Time, error) {
	s = strings.Join(strings.Fields(s), " ")
	t, err := time.ParseInLocation(Layout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return t, nil
}

// ToLocal converts an instant to the configured timezone.
func (c *Clock) ToLocal(t time.Time) time.Time {
	return t.In(c.loc)
}

// FormatLocal renders an instant as "DD.MM.YYYY HH:MM" in the configured timezone.
func (c *Clock) FormatLocal(t time.Time) string {
	return t.In(c.loc).Format(Layout)
}
