package service

import (
	"slices"
	"strings"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

// ScheduleItemInput carries the fields of a new schedule item. The id is
// generated by AddScheduleItem.
type ScheduleItemInput struct {
	Title           string               `json:"title"`
	Spot            *domain.Spot         `json:"spot,omitempty"`
	StartTime       string               `json:"startTime,omitempty"`
	EndTime         string               `json:"endTime,omitempty"`
	Memo            string               `json:"memo,omitempty"`
	TransportToNext domain.TransportType `json:"transportToNext,omitempty"`
}

// ScheduleItemPatch is a partial update. Nil fields are left as they are;
// a pointer to "" clears an optional field. ClearSpot removes the spot.
type ScheduleItemPatch struct {
	Title           *string               `json:"title,omitempty"`
	Spot            *domain.Spot          `json:"spot,omitempty"`
	ClearSpot       bool                  `json:"clearSpot,omitempty"`
	StartTime       *string               `json:"startTime,omitempty"`
	EndTime         *string               `json:"endTime,omitempty"`
	Memo            *string               `json:"memo,omitempty"`
	TransportToNext *domain.TransportType `json:"transportToNext,omitempty"`
}

// AddDaySchedule appends an empty day for date with a fresh id and keeps the
// schedule sorted by date. A day for that date already existing, or a
// malformed date, leaves the trip unchanged.
func AddDaySchedule(t domain.Trip, date string) domain.Trip {
	date = cleanText(date)
	if !isDate(date) {
		return t
	}
	if _, ok := DayByDate(t, date); ok {
		return t
	}
	out := t.Clone()
	out.Schedule = append(out.Schedule, domain.DaySchedule{
		ID:    domain.NewID(),
		Date:  date,
		Items: []domain.ScheduleItem{},
	})
	slices.SortStableFunc(out.Schedule, func(a, b domain.DaySchedule) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// RemoveDaySchedule removes the day with id dayID.
func RemoveDaySchedule(t domain.Trip, dayID string) domain.Trip {
	out := t.Clone()
	out.Schedule = slices.DeleteFunc(out.Schedule, func(d domain.DaySchedule) bool { return d.ID == dayID })
	return out
}

// AddScheduleItem appends a new item with a fresh id to day dayID and
// re-sorts the day by start time. The title is required; malformed times and
// unknown transport modes are rejected.
func AddScheduleItem(t domain.Trip, dayID string, in ScheduleItemInput) domain.Trip {
	item := domain.ScheduleItem{
		Title:           cleanText(in.Title),
		StartTime:       cleanText(in.StartTime),
		EndTime:         cleanText(in.EndTime),
		Memo:            cleanText(in.Memo),
		TransportToNext: in.TransportToNext,
	}
	if in.Spot != nil {
		s := cleanSpot(*in.Spot)
		item.Spot = &s
	}
	if !validItem(item) {
		return t
	}

	i := dayIndex(t, dayID)
	if i < 0 {
		return t
	}
	item.ID = domain.NewID()

	out := t.Clone()
	day := &out.Schedule[i]
	day.Items = append(day.Items, item)
	sortItems(day.Items)
	return out
}

// UpdateScheduleItem merges patch into item itemID of day dayID and re-sorts
// the day by start time. A patch that would leave the item invalid (blank
// title, malformed time, unknown transport) is rejected as a whole.
func UpdateScheduleItem(t domain.Trip, dayID, itemID string, patch ScheduleItemPatch) domain.Trip {
	di, ii := itemIndex(t, dayID, itemID)
	if ii < 0 {
		return t
	}

	item := t.Schedule[di].Items[ii].Clone()
	if patch.Title != nil {
		item.Title = cleanText(*patch.Title)
	}
	if patch.ClearSpot {
		item.Spot = nil
	} else if patch.Spot != nil {
		s := cleanSpot(*patch.Spot)
		item.Spot = &s
	}
	if patch.StartTime != nil {
		item.StartTime = cleanText(*patch.StartTime)
	}
	if patch.EndTime != nil {
		item.EndTime = cleanText(*patch.EndTime)
	}
	if patch.Memo != nil {
		item.Memo = cleanText(*patch.Memo)
	}
	if patch.TransportToNext != nil {
		item.TransportToNext = *patch.TransportToNext
	}
	if !validItem(item) {
		return t
	}

	out := t.Clone()
	items := out.Schedule[di].Items
	items[ii] = item
	sortItems(items)
	return out
}

// RemoveScheduleItem removes item itemID from day dayID.
func RemoveScheduleItem(t domain.Trip, dayID, itemID string) domain.Trip {
	di, ii := itemIndex(t, dayID, itemID)
	if ii < 0 {
		return t
	}
	out := t.Clone()
	day := &out.Schedule[di]
	day.Items = slices.Delete(day.Items, ii, ii+1)
	return out
}

// UpdateTransport sets the mode of travel from item itemID to the next item
// of the same day. An empty transport clears it. Only that item changes and
// the order of the day is untouched.
func UpdateTransport(t domain.Trip, dayID, itemID string, transport domain.TransportType) domain.Trip {
	if transport != "" && !transport.Valid() {
		return t
	}
	di, ii := itemIndex(t, dayID, itemID)
	if ii < 0 {
		return t
	}
	out := t.Clone()
	out.Schedule[di].Items[ii].TransportToNext = transport
	return out
}

// DayByDate returns the day scheduled on date.
func DayByDate(t domain.Trip, date string) (domain.DaySchedule, bool) {
	for _, d := range t.Schedule {
		if d.Date == date {
			return d, true
		}
	}
	return domain.DaySchedule{}, false
}

func dayIndex(t domain.Trip, dayID string) int {
	return slices.IndexFunc(t.Schedule, func(d domain.DaySchedule) bool { return d.ID == dayID })
}

// itemIndex locates an item; ii is -1 when the day or the item is missing.
func itemIndex(t domain.Trip, dayID, itemID string) (di, ii int) {
	di = dayIndex(t, dayID)
	if di < 0 {
		return -1, -1
	}
	ii = slices.IndexFunc(t.Schedule[di].Items, func(it domain.ScheduleItem) bool { return it.ID == itemID })
	return di, ii
}

func validItem(it domain.ScheduleItem) bool {
	if it.Title == "" {
		return false
	}
	if !isClock(it.StartTime) || !isClock(it.EndTime) {
		return false
	}
	return it.TransportToNext == "" || it.TransportToNext.Valid()
}

// sortItems orders items by start time. Items without a start time compare
// as "" and therefore come first; ties keep their insertion order.
func sortItems(items []domain.ScheduleItem) {
	slices.SortStableFunc(items, func(a, b domain.ScheduleItem) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
}
