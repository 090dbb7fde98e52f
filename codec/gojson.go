package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes headers with github.com/goccy/go-json. It is the Default.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name is "go-json".
func (GoJSON) Name() string { return "go-json" }
