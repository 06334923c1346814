// Package web holds the static assets served with the report.
package web

import "embed"

// Assets contains the static/ tree: stylesheets and images referenced by the report.
//
//go:embed static
var Assets embed.FS
