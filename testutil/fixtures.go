// Package testutil provides shared helpers for tests: trip fixtures built
// through the real mutation operations and an in-memory Location.
package testutil

import (
	"testing"

	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/service"
)

// SingleItemTrip returns a trip with one day holding one untimed item.
func SingleItemTrip(t testing.TB) domain.Trip {
	t.Helper()

	trip := service.AddDaySchedule(domain.NewEmptyTrip(), "2024-05-01")
	day := MustDay(t, trip, "2024-05-01")
	return service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "Walk around"})
}

// FullTrip returns a trip that populates every collection and every
// optional field, including nested spots and hotel coordinates.
func FullTrip(t testing.TB) domain.Trip {
	t.Helper()

	trip := service.SetTitle(domain.NewEmptyTrip(), "京都 2024 ✈️")
	trip = service.AddDate(trip, "2024-05-02")
	trip = service.AddDate(trip, "2024-05-01")
	trip = service.AddSpot(trip, domain.Spot{Name: "Fushimi Inari", Lat: 34.9671, Lng: 135.7727, PlaceID: "ChIJIW0uPRUPAWAR6eI6dRzKGns"})

	trip = service.AddDaySchedule(trip, "2024-05-02")
	trip = service.AddDaySchedule(trip, "2024-05-01")
	day1 := MustDay(t, trip, "2024-05-01")

	trip = service.AddScheduleItem(trip, day1.ID, service.ScheduleItemInput{
		Title:     "Kiyomizu-dera",
		StartTime: "10:00",
		EndTime:   "11:30",
		Memo:      "Arrive early",
		Spot:      &domain.Spot{Name: "Kiyomizu-dera", Lat: 34.9949, Lng: 135.785, PlaceID: "ChIJB_vchdMIAWARujTEUIZlr2I"},
	})
	trip = service.AddScheduleItem(trip, day1.ID, service.ScheduleItemInput{
		Title:           "Kyoto Station",
		StartTime:       "08:15",
		TransportToNext: domain.TransportBus,
	})
	trip = service.AddScheduleItem(trip, day1.ID, service.ScheduleItemInput{Title: "Free time"})

	trip = service.AddTodo(trip, "Try matcha")
	trip = service.AddItem(trip, "Passport")
	trip = service.AddItem(trip, "JR Pass")

	lat, lng := 35.0116, 135.7681
	trip = service.AddHotel(trip, domain.Hotel{Name: "Ryokan Sakura", Address: "Higashiyama, Kyoto", Memo: "Check-in 15:00", Lat: &lat, Lng: &lng})
	trip = service.AddHotel(trip, domain.Hotel{Name: "Station Hotel", Address: "Shimogyo, Kyoto"})
	trip = service.AddEmergency(trip, domain.Emergency{Name: "Embassy", Phone: "+81-3-0000-0000", Memo: "Weekdays"})
	return trip
}

// MustDay returns the day scheduled on date or fails the test.
func MustDay(t testing.TB, trip domain.Trip, date string) domain.DaySchedule {
	t.Helper()
	day, ok := service.DayByDate(trip, date)
	if !ok {
		t.Fatalf("testutil.MustDay: no day scheduled on %s", date)
	}
	return day
}

// MustItem returns the item titled title within day, or fails the test.
func MustItem(t testing.TB, day domain.DaySchedule, title string) domain.ScheduleItem {
	t.Helper()
	for _, it := range day.Items {
		if it.Title == title {
			return it
		}
	}
	t.Fatalf("testutil.MustItem: no item titled %q on %s", title, day.Date)
	return domain.ScheduleItem{}
}
