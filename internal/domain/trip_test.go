package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

func TestNewEmptyTrip(t *testing.T) {
	trip := domain.NewEmptyTrip()

	assert.Equal(t, domain.DefaultTitle, trip.Title)
	// Every collection must be an empty, non-nil slice so it encodes as [].
	assert.NotNil(t, trip.Dates)
	assert.NotNil(t, trip.Schedule)
	assert.NotNil(t, trip.Spots)
	assert.NotNil(t, trip.Todos)
	assert.NotNil(t, trip.Items)
	assert.NotNil(t, trip.Hotels)
	assert.NotNil(t, trip.Emergencies)
	assert.Empty(t, trip.Dates)
}

func TestTrip_Clone_DoesNotAlias(t *testing.T) {
	lat := 35.0
	orig := domain.NewEmptyTrip()
	orig.Dates = []string{"2024-05-01"}
	orig.Schedule = []domain.DaySchedule{{
		ID:   "d1",
		Date: "2024-05-01",
		Items: []domain.ScheduleItem{{
			ID:    "i1",
			Title: "Temple",
			Spot:  &domain.Spot{Name: "Kinkaku-ji", Lat: 35.03, Lng: 135.72, PlaceID: "p1"},
		}},
	}}
	orig.Hotels = []domain.Hotel{{Name: "Inn", Address: "Kyoto", Lat: &lat}}

	clone := orig.Clone()
	clone.Dates[0] = "2030-01-01"
	clone.Schedule[0].Items[0].Spot.Name = "changed"
	clone.Schedule[0].Items[0].Title = "changed"
	*clone.Hotels[0].Lat = 0

	assert.Equal(t, "2024-05-01", orig.Dates[0])
	assert.Equal(t, "Kinkaku-ji", orig.Schedule[0].Items[0].Spot.Name)
	assert.Equal(t, "Temple", orig.Schedule[0].Items[0].Title)
	assert.Equal(t, 35.0, *orig.Hotels[0].Lat)
}

func TestTrip_Normalize_FillsNilCollections(t *testing.T) {
	trip := domain.Trip{
		Title:    "Bare",
		Schedule: []domain.DaySchedule{{ID: "d1", Date: "2024-05-01"}},
	}

	got := trip.Normalize()

	require.NotNil(t, got.Dates)
	require.NotNil(t, got.Spots)
	require.NotNil(t, got.Todos)
	require.NotNil(t, got.Items)
	require.NotNil(t, got.Hotels)
	require.NotNil(t, got.Emergencies)
	require.Len(t, got.Schedule, 1)
	assert.NotNil(t, got.Schedule[0].Items)
	// The receiver is left untouched.
	assert.Nil(t, trip.Schedule[0].Items)
}

func TestTransportType(t *testing.T) {
	assert.True(t, domain.TransportPlane.Valid())
	assert.Equal(t, "✈️", domain.TransportPlane.Icon())
	assert.Equal(t, "飛行機", domain.TransportPlane.Label())

	assert.False(t, domain.TransportType("teleport").Valid())
	assert.False(t, domain.TransportType("").Valid())
	assert.Empty(t, domain.TransportType("teleport").Icon())
	assert.Len(t, domain.TransportTypes, 9)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := domain.NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
