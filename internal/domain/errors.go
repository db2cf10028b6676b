package domain

import "errors"

// ErrDecode is returned by the codec when a URL payload cannot be turned back
// into a Trip (empty, corrupt, truncated, malformed JSON, wrong shape).
// Callers recover by falling back to NewEmptyTrip.
var ErrDecode = errors.New("decode error")

// ErrEncode is returned by the codec when a Trip cannot be serialized.
// Callers recover by skipping the URL write for that change.
var ErrEncode = errors.New("encode error")

// ErrValidation is returned when a request cannot be understood at all
// (e.g. an unknown intent op). Rejected mutation inputs are not errors:
// they are no-ops.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
