// Package pkg provides the libraries behind the badges CLI and HTTP service.
//
// # Overview
//
// badges renders two-segment status badges ("build | passing") as SVG. The
// pkg directory is organized into three areas:
//
//  1. Rendering: [badge], [measure] and [fonts]
//  2. Serving: [server], [cache] and [config]
//  3. Shared support: [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The data flow for one badge:
//
//	label, message, colors, style
//	         ↓
//	    [badge] package (Badge value, layout)
//	         ↓
//	    [measure] package (segment widths from the embedded [fonts] face)
//	         ↓
//	    [badge] templates (flat or flat-square markup)
//	         ↓
//	    SVG string, optionally stored by [cache]
//
// # Quick Start
//
//	import "github.com/matzehuels/badges/pkg/badge"
//
//	svg, err := badge.New().
//	    WithLabel("build").
//	    WithMessage("passing").
//	    WithMessageColor(badge.Green).
//	    Render()
//
// # Main Packages
//
// [badge] - Colors, styles, the Badge value and the SVG renderer.
//
// [measure] - Text width measurement: HarfBuzz shaping against DejaVu Sans,
// or a character-count heuristic.
//
// [fonts] - The embedded DejaVu Sans face and the font-family list written
// into markup.
//
// [server] - chi HTTP service rendering badges from URL paths.
//
// [cache] - Render cache backends: null, file and redis.
//
// [config] - TOML configuration with defaults and validation.
//
// [errors] - Coded errors shared by the CLI and the server.
//
// [observability] - Hooks for render, cache and HTTP events.
//
// [buildinfo] - Version information set through ldflags.
//
// [badge]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/badge
// [measure]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/measure
// [fonts]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/fonts
// [server]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/badges/pkg/buildinfo
package pkg
