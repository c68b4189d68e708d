package utils

import (
	"io"

	gojson "github.com/goccy/go-json" //nolint:depguard
)

type JSONEncoder = gojson.Encoder

var encodeOptions = []gojson.EncodeOptionFunc{gojson.DisableHTMLEscape(), gojson.DisableNormalizeUTF8()}

func MarshalJSON(val any) ([]byte, error) {
	return gojson.MarshalWithOption(val, encodeOptions...)
}

func UnmarshalJSON(data []byte, val any) error {
	return gojson.UnmarshalWithOption(data, val)
}

func NewJSONEncoder(writer io.Writer) *JSONEncoder {
	encoder := gojson.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	return encoder
}

// WriteJSON writes val followed by a newline. An empty indent produces compact output.
func WriteJSON(writer io.Writer, val any, indent string) error {
	encoder := NewJSONEncoder(writer)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	return encoder.EncodeWithOption(val, encodeOptions...)
}
