// Package domain contains the core data types for the trip planner.
// A Trip is the unit of persistence: it is serialized into a single URL query
// parameter, so every type here carries the JSON shape of that payload.
package domain

// DefaultTitle is the title of a freshly created trip ("New trip").
const DefaultTitle = "新しい旅行"

// Trip is the root aggregate: everything one shareable plan contains.
// Field order matters: it fixes the JSON key order of the encoded payload.
type Trip struct {
	Title string `json:"title" yaml:"title"`

	// Dates is the legacy flat list of travel days ("2006-01-02"), kept
	// sorted ascending and free of duplicates.
	Dates []string `json:"dates" yaml:"dates"`

	// Schedule is the per-day itinerary, sorted by DaySchedule.Date.
	// Payloads encoded before it existed decode with an empty schedule.
	Schedule []DaySchedule `json:"schedule" yaml:"schedule"`

	// Spots is the legacy flat list of places, superseded by per-day items.
	Spots []Spot `json:"spots" yaml:"spots"`

	Todos       []string    `json:"todos" yaml:"todos"`
	Items       []string    `json:"items" yaml:"items"` // packing list
	Hotels      []Hotel     `json:"hotels" yaml:"hotels"`
	Emergencies []Emergency `json:"emergencies" yaml:"emergencies"`
}

// DaySchedule is one calendar day of the itinerary.
// Items stay sorted by StartTime; items without a start time come first.
type DaySchedule struct {
	ID    string         `json:"id" yaml:"id"`
	Date  string         `json:"date" yaml:"date"`
	Items []ScheduleItem `json:"items" yaml:"items"`
}

// ScheduleItem is a single timed or untimed activity within a day.
// Spot is a copy of the place record, not a live link to the provider.
type ScheduleItem struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Spot            *Spot         `json:"spot,omitempty" yaml:"spot,omitempty"`
	StartTime       string        `json:"startTime,omitempty" yaml:"startTime,omitempty"` // "15:04"
	EndTime         string        `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	Memo            string        `json:"memo,omitempty" yaml:"memo,omitempty"`
	TransportToNext TransportType `json:"transportToNext,omitempty" yaml:"transportToNext,omitempty"`
}

// Spot is a geocoded place as returned by the place lookup provider.
type Spot struct {
	Name    string  `json:"name" yaml:"name"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	PlaceID string  `json:"placeId" yaml:"placeId"`
}

// Hotel is a lodging entry. Lat and Lng are nil when the hotel was entered
// by hand rather than picked from the map.
type Hotel struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name    string   `json:"name" yaml:"name"`
	Address string   `json:"address" yaml:"address"`
	Memo    string   `json:"memo,omitempty" yaml:"memo,omitempty"`
	Lat     *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty" yaml:"lng,omitempty"`
}

// Emergency is an emergency contact (embassy, local hospital, ...).
type Emergency struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Memo  string `json:"memo,omitempty" yaml:"memo,omitempty"`
}

// NewEmptyTrip returns the trip used when the URL carries no usable data.
func NewEmptyTrip() Trip {
	return Trip{
		Title:       DefaultTitle,
		Dates:       []string{},
		Schedule:    []DaySchedule{},
		Spots:       []Spot{},
		Todos:       []string{},
		Items:       []string{},
		Hotels:      []Hotel{},
		Emergencies: []Emergency{},
	}
}

// Normalize returns a copy of t in which every nil collection, including the
// items of each day, is replaced by an empty one. Normalized trips encode
// collections as [] rather than null.
func (t Trip) Normalize() Trip {
	out := t.Clone()
	if out.Dates == nil {
		out.Dates = []string{}
	}
	if out.Schedule == nil {
		out.Schedule = []DaySchedule{}
	}
	for i := range out.Schedule {
		if out.Schedule[i].Items == nil {
			out.Schedule[i].Items = []ScheduleItem{}
		}
	}
	if out.Spots == nil {
		out.Spots = []Spot{}
	}
	if out.Todos == nil {
		out.Todos = []string{}
	}
	if out.Items == nil {
		out.Items = []string{}
	}
	if out.Hotels == nil {
		out.Hotels = []Hotel{}
	}
	if out.Emergencies == nil {
		out.Emergencies = []Emergency{}
	}
	return out
}

// Clone returns a deep copy of t. Mutations work on clones so that a
// previously returned Trip value is never modified behind its holder's back.
// Nil collections stay nil.
func (t Trip) Clone() Trip {
	out := t
	out.Dates = cloneSlice(t.Dates)
	out.Spots = cloneSlice(t.Spots)
	out.Todos = cloneSlice(t.Todos)
	out.Items = cloneSlice(t.Items)
	out.Emergencies = cloneSlice(t.Emergencies)

	if t.Schedule != nil {
		out.Schedule = make([]DaySchedule, len(t.Schedule))
		for i, d := range t.Schedule {
			out.Schedule[i] = d.Clone()
		}
	}
	if t.Hotels != nil {
		out.Hotels = make([]Hotel, len(t.Hotels))
		for i, h := range t.Hotels {
			out.Hotels[i] = h.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of d.
func (d DaySchedule) Clone() DaySchedule {
	out := d
	if d.Items != nil {
		out.Items = make([]ScheduleItem, len(d.Items))
		for i, it := range d.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of it.
func (it ScheduleItem) Clone() ScheduleItem {
	out := it
	if it.Spot != nil {
		s := *it.Spot
		out.Spot = &s
	}
	return out
}

// Clone returns a deep copy of h.
func (h Hotel) Clone() Hotel {
	out := h
	if h.Lat != nil {
		lat := *h.Lat
		out.Lat = &lat
	}
	if h.Lng != nil {
		lng := *h.Lng
		out.Lng = &lng
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
