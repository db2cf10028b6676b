// Package spec embeds the OpenAPI description of the trip link API.
// The HTTP server serves it at /openapi.yaml, and internal/handler/gen is
// generated from it.
package spec

//go:generate oapi-codegen -config oapi-codegen.yaml openapi.yaml

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
