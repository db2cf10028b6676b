// Package codec converts a Trip to and from the compressed, URL-safe string
// stored in the "data" query parameter.
//
// The pipeline is JSON → LZ-string (URI-safe alphabet) on encode and the
// reverse on decode, followed by a shape check of the top-level fields.
// The codec never logs; callers decide how to report failures.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/lzstring"
)

// Encode serializes trip into its URL form. The same trip always yields the
// same string. On failure it returns "" and an error wrapping
// domain.ErrEncode.
func Encode(trip domain.Trip) (string, error) {
	raw, err := Marshal(trip)
	if err != nil {
		return "", err
	}
	return lzstring.CompressToEncodedURIComponent(string(raw)), nil
}

// Marshal returns the JSON text embedded in the URL form. Nil collections are
// written as [] so that the payload always passes Validate.
func Marshal(trip domain.Trip) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(trip.Normalize()); err != nil {
		return nil, fmt.Errorf("codec.Marshal: %w: %w", domain.ErrEncode, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MaxDataLength is the longest encoded string Decode accepts.
const MaxDataLength = 64 << 10

// Decode reverses Encode. Every failure (empty or over-long input, corrupt
// or truncated compression, malformed JSON, wrong top-level shape) is
// reported as an error wrapping domain.ErrDecode; Decode never panics on
// foreign input.
func Decode(data string) (domain.Trip, error) {
	if data == "" {
		return domain.Trip{}, fmt.Errorf("codec.Decode: %w: empty input", domain.ErrDecode)
	}
	if len(data) > MaxDataLength {
		return domain.Trip{}, fmt.Errorf("codec.Decode: %w: input longer than %d bytes", domain.ErrDecode, MaxDataLength)
	}
	raw, err := lzstring.DecompressFromEncodedURIComponent(data)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("codec.Decode: %w: %w", domain.ErrDecode, err)
	}
	if raw == "" {
		return domain.Trip{}, fmt.Errorf("codec.Decode: %w: empty payload", domain.ErrDecode)
	}
	trip, err := Unmarshal([]byte(raw))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("codec.Decode: %w", err)
	}
	return trip, nil
}

// Unmarshal parses and validates the JSON form of a trip.
func Unmarshal(raw []byte) (domain.Trip, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: malformed json: %w", domain.ErrDecode, err)
	}
	if fields == nil {
		return domain.Trip{}, fmt.Errorf("%w: payload is not an object", domain.ErrDecode)
	}
	if err := Validate(fields); err != nil {
		return domain.Trip{}, err
	}

	var trip domain.Trip
	// Validate guarantees title is a JSON string.
	_ = json.Unmarshal(fields["title"], &trip.Title)
	trip.Dates = decodeList[string](fields["dates"])
	trip.Schedule = decodeList[domain.DaySchedule](fields["schedule"])
	trip.Spots = decodeList[domain.Spot](fields["spots"])
	trip.Todos = decodeList[string](fields["todos"])
	trip.Items = decodeList[string](fields["items"])
	trip.Hotels = decodeList[domain.Hotel](fields["hotels"])
	trip.Emergencies = decodeList[domain.Emergency](fields["emergencies"])
	return trip.Normalize(), nil
}

// requiredLists must be present and be JSON arrays.
var requiredLists = []string{"dates", "spots", "todos", "items", "hotels", "emergencies"}

// ErrInvalidShape is wrapped by Validate failures.
var ErrInvalidShape = errors.New("invalid trip shape")

// Validate checks the top-level shape of a decoded payload: title must be a
// string and the list fields must be arrays. Elements are not inspected.
// schedule may be missing or null; payloads from before the schedule feature
// carry no such key.
func Validate(fields map[string]json.RawMessage) error {
	if kindOf(fields["title"]) != '"' {
		return fmt.Errorf("%w: %w: title must be a string", domain.ErrDecode, ErrInvalidShape)
	}
	for _, name := range requiredLists {
		if kindOf(fields[name]) != '[' {
			return fmt.Errorf("%w: %w: %s must be an array", domain.ErrDecode, ErrInvalidShape, name)
		}
	}
	if raw, ok := fields["schedule"]; ok {
		if k := kindOf(raw); k != '[' && k != 'n' {
			return fmt.Errorf("%w: %w: schedule must be an array", domain.ErrDecode, ErrInvalidShape)
		}
	}
	return nil
}

// kindOf returns the first significant byte of a JSON value ('"', '[', '{',
// 'n', 't', ...) or 0 when the value is absent.
func kindOf(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// decodeList reads a JSON array element by element. Elements that do not fit
// T are dropped so that one malformed entry does not cost the whole list.
// A missing or null list yields an empty slice.
func decodeList[T any](raw json.RawMessage) []T {
	out := []T{}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out
	}
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
