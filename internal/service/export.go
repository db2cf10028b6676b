package service

import "github.com/pkordes/tabi-shiori/internal/domain"

// ExportSchedule flattens the schedule into one row per item, in schedule
// order. Days with no items contribute one row with empty item fields.
// Always returns a non-nil slice so callers can safely range over it.
func ExportSchedule(t domain.Trip) []domain.ExportRow {
	rows := []domain.ExportRow{}
	for _, day := range t.Schedule {
		if len(day.Items) == 0 {
			rows = append(rows, domain.ExportRow{DayID: day.ID, Date: day.Date})
			continue
		}
		for _, it := range day.Items {
			row := domain.ExportRow{
				DayID:           day.ID,
				Date:            day.Date,
				ItemID:          it.ID,
				StartTime:       it.StartTime,
				EndTime:         it.EndTime,
				Title:           it.Title,
				Memo:            it.Memo,
				TransportToNext: it.TransportToNext,
			}
			if it.Spot != nil {
				lat, lng := it.Spot.Lat, it.Spot.Lng
				row.SpotName = it.Spot.Name
				row.Lat = &lat
				row.Lng = &lng
				row.PlaceID = it.Spot.PlaceID
			}
			rows = append(rows, row)
		}
	}
	return rows
}
