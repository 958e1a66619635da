package report

import (
	"encoding/json"
	"fmt"
	"os"

	"TickerWatch/internal/model"
)

// ExportResult writes an analysis result as an indented JSON document.
// Absent indicator fields are omitted keys, never zeros.
func ExportResult(path string, result *model.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// errorDocument is the serialized shape of a failed analysis: callers check
// for the error key before reading anything else.
type errorDocument struct {
	Error string `json:"error"`
}

// ExportError writes a document carrying only an error key for a symbol
// whose analysis failed.
func ExportError(path string, err error) error {
	data, jsonErr := json.MarshalIndent(errorDocument{Error: err.Error()}, "", "  ")
	if jsonErr != nil {
		return fmt.Errorf("marshal error document: %w", jsonErr)
	}
	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("write error document: %w", writeErr)
	}
	return nil
}

// LoadResult reads a previously exported document back. When the document
// is error-shaped, the error message is returned and the result is nil.
func LoadResult(path string) (*model.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}

	var probe errorDocument
	if err := json.Unmarshal(data, &probe); err == nil && probe.Error != "" {
		return nil, fmt.Errorf("exported analysis failed: %s", probe.Error)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &result, nil
}
