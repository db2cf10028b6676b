// Package service contains the mutation operations of a trip.
// Every operation is a pure function: it takes the current Trip plus the
// intent's arguments and returns a new Trip with the change applied and all
// ordering invariants re-established. The input Trip is never modified.
//
// Invalid input (blank text, duplicate date, unknown id, out-of-range index)
// is not an error: the operation returns the trip unchanged.
package service

import (
	"regexp"
	"slices"
	"time"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

// SetTitle replaces the trip title. The title is stored trimmed; an empty
// title is allowed.
func SetTitle(t domain.Trip, title string) domain.Trip {
	out := t.Clone()
	out.Title = cleanText(title)
	return out
}

// AddDate inserts date ("2006-01-02") into the legacy date list and keeps
// the list sorted. Duplicates and malformed dates are ignored.
func AddDate(t domain.Trip, date string) domain.Trip {
	date = cleanText(date)
	if !isDate(date) || slices.Contains(t.Dates, date) {
		return t
	}
	out := t.Clone()
	out.Dates = append(out.Dates, date)
	slices.Sort(out.Dates)
	return out
}

// RemoveDate removes date from the legacy date list.
func RemoveDate(t domain.Trip, date string) domain.Trip {
	out := t.Clone()
	out.Dates = slices.DeleteFunc(out.Dates, func(d string) bool { return d == date })
	return out
}

// AddSpot appends a place to the legacy flat spot list.
// A spot without a name is ignored.
func AddSpot(t domain.Trip, spot domain.Spot) domain.Trip {
	spot = cleanSpot(spot)
	spot.Name = cleanText(spot.Name)
	if spot.Name == "" {
		return t
	}
	out := t.Clone()
	out.Spots = append(out.Spots, spot)
	return out
}

// RemoveSpot removes the spot at index.
func RemoveSpot(t domain.Trip, index int) domain.Trip {
	if !inRange(index, len(t.Spots)) {
		return t
	}
	out := t.Clone()
	out.Spots = slices.Delete(out.Spots, index, index+1)
	return out
}

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// isDate reports whether s is a calendar date in "2006-01-02" form.
func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// isClock reports whether s is empty or a 24-hour "15:04" time. Start times
// are compared as strings, so the two-digit hour is required.
func isClock(s string) bool {
	return s == "" || clockPattern.MatchString(s)
}
