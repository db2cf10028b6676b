package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/service"
	"github.com/pkordes/tabi-shiori/testutil"
)

func strPtr(s string) *string { return &s }

// tripWithDay returns a trip holding a single empty day on 2024-05-01.
func tripWithDay(t *testing.T) (domain.Trip, domain.DaySchedule) {
	t.Helper()
	trip := service.AddDaySchedule(domain.NewEmptyTrip(), "2024-05-01")
	return trip, testutil.MustDay(t, trip, "2024-05-01")
}

func titles(day domain.DaySchedule) []string {
	out := make([]string, 0, len(day.Items))
	for _, it := range day.Items {
		out = append(out, it.Title)
	}
	return out
}

// ---- days ------------------------------------------------------------------

func TestAddDaySchedule(t *testing.T) {
	trip, day := tripWithDay(t)

	require.Len(t, trip.Schedule, 1)
	assert.NotEmpty(t, day.ID)
	assert.Equal(t, "2024-05-01", day.Date)
	assert.NotNil(t, day.Items)
	assert.Empty(t, day.Items)
}

func TestAddDaySchedule_SortedByDate(t *testing.T) {
	trip := domain.NewEmptyTrip()
	for _, d := range []string{"2024-05-03", "2024-05-01", "2024-05-02"} {
		trip = service.AddDaySchedule(trip, d)
	}

	var dates []string
	for _, d := range trip.Schedule {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03"}, dates)
}

func TestAddDaySchedule_RejectsDuplicateAndMalformed(t *testing.T) {
	trip, _ := tripWithDay(t)

	assert.Equal(t, trip, service.AddDaySchedule(trip, "2024-05-01"))
	assert.Equal(t, trip, service.AddDaySchedule(trip, "05/01/2024"))
}

func TestRemoveDaySchedule(t *testing.T) {
	trip, day := tripWithDay(t)
	trip = service.AddDaySchedule(trip, "2024-05-02")

	got := service.RemoveDaySchedule(trip, day.ID)

	require.Len(t, got.Schedule, 1)
	assert.Equal(t, "2024-05-02", got.Schedule[0].Date)
	assert.Len(t, trip.Schedule, 2, "input untouched")
	assert.Equal(t, got, service.RemoveDaySchedule(got, "no-such-day"))
}

// ---- items -----------------------------------------------------------------

func TestAddScheduleItem_OrdersByStartTime(t *testing.T) {
	trip, day := tripWithDay(t)

	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "Lunch", StartTime: "14:00"})
	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "Breakfast", StartTime: "09:30"})
	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "Wander"})

	got := testutil.MustDay(t, trip, "2024-05-01")
	assert.Equal(t, []string{"Wander", "Breakfast", "Lunch"}, titles(got))
	for _, it := range got.Items {
		assert.NotEmpty(t, it.ID)
	}
}

func TestAddScheduleItem_TiesKeepInsertionOrder(t *testing.T) {
	trip, day := tripWithDay(t)

	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "first", StartTime: "10:00"})
	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "second", StartTime: "10:00"})

	assert.Equal(t, []string{"first", "second"}, titles(testutil.MustDay(t, trip, "2024-05-01")))
}

func TestAddScheduleItem_RejectsInvalidInput(t *testing.T) {
	trip, day := tripWithDay(t)

	cases := map[string]service.ScheduleItemInput{
		"blank title":       {Title: "  "},
		"one-digit hour":    {Title: "x", StartTime: "9:30"},
		"hour out of range": {Title: "x", StartTime: "24:00"},
		"bad end time":      {Title: "x", EndTime: "noon"},
		"unknown transport": {Title: "x", TransportToNext: "teleport"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, trip, service.AddScheduleItem(trip, day.ID, in))
		})
	}

	t.Run("unknown day", func(t *testing.T) {
		assert.Equal(t, trip, service.AddScheduleItem(trip, "nope", service.ScheduleItemInput{Title: "x"}))
	})
}

func TestAddScheduleItem_CopiesSpot(t *testing.T) {
	trip, day := tripWithDay(t)
	spot := &domain.Spot{Name: "Gion", Lat: 35.0037, Lng: 135.7788}

	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "Gion", Spot: spot})
	spot.Name = "changed"

	item := testutil.MustItem(t, testutil.MustDay(t, trip, "2024-05-01"), "Gion")
	require.NotNil(t, item.Spot)
	assert.Equal(t, "Gion", item.Spot.Name)
}

func TestUpdateScheduleItem_ResortsAfterTimeChange(t *testing.T) {
	trip, day := tripWithDay(t)
	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "A", StartTime: "09:00"})
	trip = service.AddScheduleItem(trip, day.ID, service.ScheduleItemInput{Title: "B", StartTime: "12:00"})
	a := testutil.MustItem(t, testutil.MustDay(t, trip, "2024-05-01"), "A")

	got := service.UpdateScheduleItem(trip, day.ID, a.ID, service.ScheduleItemPatch{
		StartTime: strPtr("15:00"),
		Memo:      strPtr(" after lunch "),
	})

	updated := testutil.MustDay(t, got, "2024-05-01")
	assert.Equal(t, []string{"B", "A"}, titles(updated))
	moved := testutil.MustItem(t, updated, "A")
	assert.Equal(t, a.ID, moved.ID)
	assert.Equal(t, "15:00", moved.StartTime)
	assert.Equal(t, "after lunch", moved.Memo)

	assert.Equal(t, []string{"A", "B"}, titles(testutil.MustDay(t, trip, "2024-05-01")), "input untouched")
}

func TestUpdateScheduleItem_SpotAndClear(t *testing.T) {
	trip := testutil.FullTrip(t)
	day := testutil.MustDay(t, trip, "2024-05-01")
	item := testutil.MustItem(t, day, "Kiyomizu-dera")

	cleared := service.UpdateScheduleItem(trip, day.ID, item.ID, service.ScheduleItemPatch{ClearSpot: true})
	assert.Nil(t, testutil.MustItem(t, testutil.MustDay(t, cleared, "2024-05-01"), "Kiyomizu-dera").Spot)

	other := domain.Spot{Name: "Ginkaku-ji", Lat: 35.027, Lng: 135.798}
	moved := service.UpdateScheduleItem(trip, day.ID, item.ID, service.ScheduleItemPatch{Spot: &other})
	got := testutil.MustItem(t, testutil.MustDay(t, moved, "2024-05-01"), "Kiyomizu-dera")
	require.NotNil(t, got.Spot)
	assert.Equal(t, "Ginkaku-ji", got.Spot.Name)
}

func TestUpdateScheduleItem_InvalidPatchIsNoOp(t *testing.T) {
	trip := testutil.FullTrip(t)
	day := testutil.MustDay(t, trip, "2024-05-01")
	item := testutil.MustItem(t, day, "Kyoto Station")

	assert.Equal(t, trip, service.UpdateScheduleItem(trip, day.ID, item.ID, service.ScheduleItemPatch{Title: strPtr("")}))
	assert.Equal(t, trip, service.UpdateScheduleItem(trip, day.ID, item.ID, service.ScheduleItemPatch{StartTime: strPtr("25:00")}))
	assert.Equal(t, trip, service.UpdateScheduleItem(trip, day.ID, "missing", service.ScheduleItemPatch{Title: strPtr("x")}))
}

func TestRemoveScheduleItem(t *testing.T) {
	trip := testutil.FullTrip(t)
	day := testutil.MustDay(t, trip, "2024-05-01")
	item := testutil.MustItem(t, day, "Kyoto Station")

	got := service.RemoveScheduleItem(trip, day.ID, item.ID)

	assert.Equal(t, []string{"Free time", "Kiyomizu-dera"}, titles(testutil.MustDay(t, got, "2024-05-01")))
	assert.Len(t, testutil.MustDay(t, trip, "2024-05-01").Items, 3, "input untouched")
}

// ---- transport -------------------------------------------------------------

func TestUpdateTransport(t *testing.T) {
	trip := testutil.FullTrip(t)
	day := testutil.MustDay(t, trip, "2024-05-01")
	item := testutil.MustItem(t, day, "Free time")

	got := service.UpdateTransport(trip, day.ID, item.ID, domain.TransportWalk)

	gotDay := testutil.MustDay(t, got, "2024-05-01")
	assert.Equal(t, titles(day), titles(gotDay), "order untouched")
	assert.Equal(t, domain.TransportWalk, testutil.MustItem(t, gotDay, "Free time").TransportToNext)
	assert.Equal(t, domain.TransportBus, testutil.MustItem(t, gotDay, "Kyoto Station").TransportToNext)
}

func TestUpdateTransport_Clear(t *testing.T) {
	trip := testutil.FullTrip(t)
	day := testutil.MustDay(t, trip, "2024-05-01")
	item := testutil.MustItem(t, day, "Kyoto Station")

	got := service.UpdateTransport(trip, day.ID, item.ID, "")

	assert.Empty(t, testutil.MustItem(t, testutil.MustDay(t, got, "2024-05-01"), "Kyoto Station").TransportToNext)
}

func TestUpdateTransport_UnknownModeIsNoOp(t *testing.T) {
	trip := testutil.FullTrip(t)
	day := testutil.MustDay(t, trip, "2024-05-01")
	item := testutil.MustItem(t, day, "Kyoto Station")

	assert.Equal(t, trip, service.UpdateTransport(trip, day.ID, item.ID, "rocket"))
}
