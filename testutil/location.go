package testutil

import "errors"

// Location is an in-memory stand-in for the browser location. It records
// every Replace call so tests can assert on the write history.
type Location struct {
	href     string
	Replaced []string

	// Err, when set, is returned by Replace and the href is left unchanged.
	Err error
}

// NewLocation returns a Location currently pointing at href.
func NewLocation(href string) *Location {
	return &Location{href: href}
}

// Href returns the current URL.
func (l *Location) Href() string {
	return l.href
}

// Replace swaps the current URL in place.
func (l *Location) Replace(href string) error {
	if l.Err != nil {
		return l.Err
	}
	l.href = href
	l.Replaced = append(l.Replaced, href)
	return nil
}

// ErrReplace is a canned failure for Location.Err.
var ErrReplace = errors.New("testutil: replace failed")
