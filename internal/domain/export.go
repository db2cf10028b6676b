package domain

// ExportRow is a single row in the flat schedule export.
// It is a denormalized view: one row per schedule item, with the day fields
// repeated for every item of that day. Days with no items yield one row with
// zero values for all item fields.
type ExportRow struct {
	// Day fields, repeated for every item of the day.
	DayID string `json:"day_id" yaml:"day_id"`
	Date  string `json:"date" yaml:"date"` // "2006-01-02"

	// Item fields, zero values when the day has no items.
	ItemID    string `json:"item_id,omitempty" yaml:"item_id,omitempty"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Memo      string `json:"memo,omitempty" yaml:"memo,omitempty"`

	// Spot fields, nil when the item has no spot.
	SpotName string   `json:"spot_name,omitempty" yaml:"spot_name,omitempty"`
	Lat      *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty" yaml:"lng,omitempty"`
	PlaceID  string   `json:"place_id,omitempty" yaml:"place_id,omitempty"`

	// TransportToNext is empty on the last item of a day.
	TransportToNext TransportType `json:"transport_to_next,omitempty" yaml:"transport_to_next,omitempty"`
}
