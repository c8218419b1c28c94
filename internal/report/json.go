// Package report provides output formatters for arith results in
// JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/arith/internal/taxonomy"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version  string             `json:"version"`
	Results  []taxonomy.Result  `json:"results"`
	Metadata *taxonomy.Metadata `json:"metadata,omitempty"`
}

// WriteJSON writes results as formatted JSON to the writer.
func WriteJSON(w io.Writer, results []taxonomy.Result, version string) error {
	return WriteJSONWithMetadata(w, results, version, nil)
}

// WriteJSONWithMetadata is WriteJSON with run metadata attached.
func WriteJSONWithMetadata(w io.Writer, results []taxonomy.Result, version string, md *taxonomy.Metadata) error {
	if results == nil {
		results = []taxonomy.Result{}
	}
	report := JSONReport{
		Version:  version,
		Results:  results,
		Metadata: md,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
