package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/export"
	"github.com/pkordes/tabi-shiori/internal/service"
	"github.com/pkordes/tabi-shiori/testutil"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{"": export.JSON, "json": export.JSON, "csv": export.CSV, "yaml": export.YAML} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := export.ParseFormat("xlsx")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestWrite_CSV(t *testing.T) {
	rows := service.ExportSchedule(testutil.FullTrip(t))
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.CSV, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "header plus four rows")
	assert.Equal(t, "day_id", records[0][0])
	assert.Equal(t, "transport_to_next", records[0][11])

	kiyomizu := records[3]
	assert.Equal(t, "10:00", kiyomizu[3])
	assert.Equal(t, "Kiyomizu-dera", kiyomizu[5])
	assert.Equal(t, "34.9949", kiyomizu[8])
	assert.Equal(t, "135.785", kiyomizu[9])
	assert.Equal(t, "bus", records[2][11])
	assert.Empty(t, records[1][8], "no spot, no coordinates")
}

func TestWrite_CSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.CSV, []domain.ExportRow{{DayID: "d", Date: "2024-05-01", Title: "Lunch, then nap"}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Lunch, then nap"`)
}

func TestWrite_JSON(t *testing.T) {
	rows := service.ExportSchedule(testutil.FullTrip(t))
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.JSON, rows))

	var got []domain.ExportRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rows, got)
}

func TestWrite_NilRowsIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.JSON, nil))

	assert.JSONEq(t, `[]`, buf.String())
}

func TestWrite_YAML(t *testing.T) {
	rows := service.ExportSchedule(testutil.FullTrip(t))
	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, export.YAML, rows))

	var got []domain.ExportRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rows, got)
	assert.Contains(t, buf.String(), "title: Kyoto Station")
}
