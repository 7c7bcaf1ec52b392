// Package output writes pipeline results: workbooks and CSV files saved
// atomically, and JSON run summaries.
package output

import "encoding/json"

// ToJSON serializes a run summary.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
