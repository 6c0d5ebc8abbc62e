// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export renders a session's results report as JSON, YAML, or
// Markdown. Every format implements the same Exporter interface, so callers
// pick one by name with NewExporter and stream to any io.Writer.
package export
