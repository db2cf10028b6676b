// Package bridge keeps an in-memory Trip in sync with the "data" query
// parameter of a Location: it loads the trip once, then writes it back in
// place after every change.
package bridge

import (
	"fmt"
	"log/slog"
	"net/url"
	"reflect"

	"github.com/dustin/go-humanize"

	"github.com/pkordes/tabi-shiori/internal/codec"
	"github.com/pkordes/tabi-shiori/internal/domain"
)

// Param is the query parameter that holds the encoded trip.
const Param = "data"

// Location is the URL the trip is persisted in. In a browser this is
// window.location plus history.replaceState; the HTTP adapter and tests
// supply their own.
type Location interface {
	// Href returns the current absolute URL.
	Href() string
	// Replace swaps the current URL for href without adding a history
	// entry and without navigating.
	Replace(href string) error
}

// Mutation turns the current trip into the next one. The operations in
// package service fit this shape once their arguments are bound.
type Mutation func(domain.Trip) domain.Trip

// Bridge owns the current Trip of one page (or one request).
// A Bridge is not safe for concurrent use.
type Bridge struct {
	loc         Location
	log         *slog.Logger
	trip        domain.Trip
	loaded      bool
	subscribers []func(domain.Trip)
}

// New returns a Bridge holding the default empty trip. Nothing is read from
// loc until Load is called.
func New(loc Location, log *slog.Logger) *Bridge {
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{loc: loc, log: log, trip: domain.NewEmptyTrip()}
}

// Trip returns the current trip.
func (b *Bridge) Trip() domain.Trip {
	return b.trip
}

// Loaded reports whether Load has completed.
func (b *Bridge) Loaded() bool {
	return b.loaded
}

// Subscribe registers fn to be called with the new trip after every state
// change.
func (b *Bridge) Subscribe(fn func(domain.Trip)) {
	b.subscribers = append(b.subscribers, fn)
}

// Load reads the trip from the location, falling back to the default empty
// trip when the parameter is absent or cannot be decoded. It runs at most
// once; later calls return false. It reports whether the held trip changed:
// a loaded trip equal to the one already held causes no state update.
// Load never writes to the location.
func (b *Bridge) Load() bool {
	if b.loaded {
		return false
	}
	b.loaded = true

	trip := b.read()
	if reflect.DeepEqual(trip, b.trip) {
		return false
	}
	b.set(trip)
	return true
}

// Apply runs m against the current trip, notifies subscribers and saves the
// result to the location. Before Load has completed the change is kept in
// memory only, so the default trip can never overwrite data already in the
// URL.
func (b *Bridge) Apply(m Mutation) domain.Trip {
	b.set(m(b.trip))
	if b.loaded {
		b.save()
	}
	return b.trip
}

func (b *Bridge) set(trip domain.Trip) {
	b.trip = trip
	for _, fn := range b.subscribers {
		fn(trip)
	}
}

// read decodes the current location, logging why it fell back.
func (b *Bridge) read() domain.Trip {
	href := b.loc.Href()
	data, err := dataParam(href)
	if err != nil {
		b.log.Warn("unreadable location, using empty trip", "error", err)
		return domain.NewEmptyTrip()
	}
	if data == "" {
		return domain.NewEmptyTrip()
	}
	trip, err := codec.Decode(data)
	if err != nil {
		b.log.Warn("trip data could not be decoded, using empty trip",
			"error", err,
			"size", humanize.Bytes(uint64(len(data))),
		)
		return domain.NewEmptyTrip()
	}
	return trip
}

// save writes the current trip into the location. Failures are logged and
// the write is skipped; the in-memory trip stays authoritative.
func (b *Bridge) save() {
	data, err := codec.Encode(b.trip)
	if err != nil {
		b.log.Error("trip could not be encoded, url not updated", "error", err)
		return
	}
	href, err := withData(b.loc.Href(), data)
	if err != nil {
		b.log.Error("location could not be rewritten", "error", err)
		return
	}
	if err := b.loc.Replace(href); err != nil {
		b.log.Error("location replace failed", "error", err)
		return
	}
	b.log.Debug("trip saved to url", "size", humanize.Bytes(uint64(len(data))))
}

// TripFromURL decodes the trip carried by href, or returns the default empty
// trip when href has no usable data.
func TripFromURL(href string) domain.Trip {
	data, err := dataParam(href)
	if err != nil || data == "" {
		return domain.NewEmptyTrip()
	}
	trip, err := codec.Decode(data)
	if err != nil {
		return domain.NewEmptyTrip()
	}
	return trip
}

// ShareURL returns origin with the encoded trip as its only query parameter.
// If the trip cannot be encoded the bare origin is returned.
func ShareURL(origin string, trip domain.Trip) string {
	data, err := codec.Encode(trip)
	if err != nil {
		return origin
	}
	href, err := withData(origin, data)
	if err != nil {
		return origin
	}
	return href
}

func dataParam(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("bridge.dataParam: %w", err)
	}
	return u.Query().Get(Param), nil
}

// withData sets the data parameter of href, keeping its other parameters.
// The encoded trip only uses query-safe characters, so it is appended
// verbatim rather than percent-escaped.
func withData(href, data string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("bridge.withData: %w", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	q := u.Query()
	q.Del(Param)
	raw := q.Encode()
	if raw != "" {
		raw += "&"
	}
	u.RawQuery = raw + Param + "=" + data
	return u.String(), nil
}
