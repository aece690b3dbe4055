package domain

import "time"

// Company is the tenant scope of the back office. Every reminder and metrics
// document is filtered by its ID; the filter is advisory, not an access
// control mechanism.
type Company struct {
	ID       string `firestore:"-"`
	Name     string `firestore:"name"`
	TimeZone string `firestore:"timeZone"`
}

// Location resolves the company's configured time zone, falling back to UTC
// when unset or unknown.
func (c *Company) Location() *time.Location {
	if c == nil || c.TimeZone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}

	return loc
}
