package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/tabi-shiori/internal/bridge"
	"github.com/pkordes/tabi-shiori/internal/codec"
	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/testutil"
)

type result struct {
	code           int
	stdout, stderr string
}

func runCLI(stdin string, args ...string) result {
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func fullData(t *testing.T) string {
	t.Helper()
	data, err := codec.Encode(testutil.FullTrip(t))
	require.NoError(t, err)
	return data
}

func TestRun_NoArgs(t *testing.T) {
	res := runCLI("")

	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	res := runCLI("", "frobnicate")

	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, `unknown command "frobnicate"`)
}

// ---- decode ----------------------------------------------------------------

func TestDecode_JSON(t *testing.T) {
	res := runCLI("", "decode", fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	trip, err := codec.Unmarshal([]byte(res.stdout))
	require.NoError(t, err)
	assert.Equal(t, testutil.FullTrip(t).Title, trip.Title)
	assert.Contains(t, res.stderr, "of link data")
}

func TestDecode_AcceptsURL(t *testing.T) {
	res := runCLI("", "decode", "https://shiori.example/plan?lang=ja&data="+fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Kiyomizu-dera")
}

func TestDecode_YAML(t *testing.T) {
	res := runCLI("", "decode", "-o", "yaml", fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	var trip domain.Trip
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &trip))
	assert.Len(t, trip.Schedule, 2)
	assert.Len(t, trip.Hotels, 2)
}

func TestDecode_Corrupt(t *testing.T) {
	res := runCLI("", "decode", fullData(t)+"corruption")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, domain.ErrDecode.Error())
}

func TestDecode_MissingLink(t *testing.T) {
	assert.Equal(t, 2, runCLI("", "decode").code)
}

// ---- encode / share --------------------------------------------------------

func TestEncode_FromStdin(t *testing.T) {
	in := `{"title":"Nara","dates":[],"spots":[],"todos":["Feed deer"],"items":[],"hotels":[],"emergencies":[]}`

	res := runCLI(in, "encode", "-origin", "https://shiori.example")

	require.Equal(t, 0, res.code, res.stderr)
	href := strings.TrimSpace(res.stdout)
	assert.True(t, strings.HasPrefix(href, "https://shiori.example/?data="), href)
	trip := bridge.TripFromURL(href)
	assert.Equal(t, "Nara", trip.Title)
	assert.Equal(t, []string{"Feed deer"}, trip.Todos)
}

func TestEncode_WrongShape(t *testing.T) {
	res := runCLI(`{"title":"x"}`, "encode")

	assert.Equal(t, 1, res.code)
}

func TestShare_RebuildsOnNewOrigin(t *testing.T) {
	res := runCLI("", "share", "-origin", "https://trip.example", "http://localhost:5173/?data="+fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	href := strings.TrimSpace(res.stdout)
	assert.Equal(t, "https://trip.example/?data="+fullData(t), href)
}

// ---- apply -----------------------------------------------------------------

func TestApply_IntentArgument(t *testing.T) {
	link := "https://shiori.example/plan?lang=ja&data=" + fullData(t)

	res := runCLI("", "apply", link, `{"op":"add_todo","text":"Buy omiyage"}`)

	require.Equal(t, 0, res.code, res.stderr)
	href := strings.TrimSpace(res.stdout)
	assert.True(t, strings.HasPrefix(href, "https://shiori.example/plan?lang=ja&data="), href)
	assert.Equal(t, []string{"Try matcha", "Buy omiyage"}, bridge.TripFromURL(href).Todos)
}

func TestApply_BareDataAndStdin(t *testing.T) {
	res := runCLI(`{"op":"set_title","title":"Kyoto again"}`, "apply", "-origin", "https://shiori.example", fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Kyoto again", bridge.TripFromURL(strings.TrimSpace(res.stdout)).Title)
}

func TestApply_UnknownOp(t *testing.T) {
	res := runCLI("", "apply", fullData(t), `{"op":"launch_rocket"}`)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, domain.ErrValidation.Error())
	assert.Empty(t, res.stdout)
}

func TestApply_IntentNotJSON(t *testing.T) {
	res := runCLI("", "apply", fullData(t), `add todo`)

	assert.Equal(t, 1, res.code)
}

// ---- export ----------------------------------------------------------------

func TestExport_CSV(t *testing.T) {
	res := runCLI("", "export", "-format", "csv", fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	records, err := csv.NewReader(strings.NewReader(res.stdout)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestExport_DefaultJSON(t *testing.T) {
	res := runCLI("", "export", fullData(t))

	require.Equal(t, 0, res.code, res.stderr)
	var rows []domain.ExportRow
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rows))
	assert.Len(t, rows, 4)
}

func TestExport_UnknownFormat(t *testing.T) {
	res := runCLI("", "export", "-format", "xlsx", fullData(t))

	assert.Equal(t, 2, res.code)
}
