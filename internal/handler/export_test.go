package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/testutil"
)

func exportTarget(t *testing.T, format string) string {
	t.Helper()
	target := "/trip/export?data=" + encode(t, testutil.FullTrip(t))
	if format != "" {
		target += "&format=" + format
	}
	return target
}

// ---- JSON ------------------------------------------------------------------

func TestGetExport_DefaultJSON(t *testing.T) {
	rec := serve(t, http.MethodGet, exportTarget(t, ""), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []domain.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "Kyoto Station", rows[1].Title)
	assert.Equal(t, domain.TransportBus, rows[1].TransportToNext)
}

func TestGetExport_NoData_EmptyArray(t *testing.T) {
	rec := serve(t, http.MethodGet, "/trip/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ---- CSV -------------------------------------------------------------------

func TestGetExport_CSV(t *testing.T) {
	rec := serve(t, http.MethodGet, exportTarget(t, "csv"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="schedule.csv"`)

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "header plus four rows")
	assert.Equal(t, "day_id", records[0][0])
	assert.Equal(t, "transport_to_next", records[0][11])

	kiyomizu := records[3]
	assert.Equal(t, "10:00", kiyomizu[3])
	assert.Equal(t, "Kiyomizu-dera", kiyomizu[5])
	assert.Equal(t, "34.9949", kiyomizu[8])
	assert.Equal(t, "135.785", kiyomizu[9])

	assert.Empty(t, records[1][8], "no spot, no coordinates")
}

// ---- YAML ------------------------------------------------------------------

func TestGetExport_YAML(t *testing.T) {
	rec := serve(t, http.MethodGet, exportTarget(t, "yaml"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	var rows []domain.ExportRow
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-05-02", rows[3].Date)
	assert.Equal(t, "08:15", rows[1].StartTime)
}

// ---- errors ----------------------------------------------------------------

func TestGetExport_UnknownFormat_422(t *testing.T) {
	rec := serve(t, http.MethodGet, exportTarget(t, "xlsx"), "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}
