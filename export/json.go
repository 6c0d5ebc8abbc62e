// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/json"
	"io"

	"github.com/danielhkuo/comparely/models"
)

// JSONExporter writes results as pretty-printed JSON.
type JSONExporter struct{}

func (e *JSONExporter) Export(results *models.SessionResults, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func (e *JSONExporter) Extension() string {
	return "json"
}
