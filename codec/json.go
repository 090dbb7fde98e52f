package codec

import "encoding/json"

// JSON encodes headers with encoding/json. Its output is interchangeable
// with GoJSON, so a file written by either decodes with both.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name is "json".
func (JSON) Name() string { return "json" }
