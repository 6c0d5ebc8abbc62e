// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/comparely/models"
)

// YAMLExporter writes results as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(results *models.SessionResults, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	enc.SetIndent(2)
	return enc.Encode(results)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
