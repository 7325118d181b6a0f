package ivms101

import (
	"bytes"

	"github.com/goccy/go-json"
)

// DecodeMessage parses a JSON-encoded IVMS101 message. Unknown fields are
// rejected at every nesting level; bounded values out of range and empty
// required lists fail the decode. The result is not validated: call
// Validate on it to check the business rules.
func DecodeMessage(data []byte) (*Message, error) {
	var m Message
	if err := decodeStrict(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// EncodeMessage serializes a message, omitting absent optional fields and
// re-emitting multiplicity containers in the shape they were built with.
func EncodeMessage(m *Message) ([]byte, error) {
	return json.Marshal(m)
}

// decodeStrict decodes with unknown fields disallowed. Every custom
// UnmarshalJSON in the package funnels through here, so strictness
// survives nesting boundaries the decoder cannot see across.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
