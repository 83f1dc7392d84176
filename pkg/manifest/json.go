package manifest

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// jsonCodec edits JSON in place, so key order and formatting survive a write.
type jsonCodec struct{}

func (jsonCodec) validate(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not valid JSON", ErrInvalidManifest)
	}
	return nil
}

func (c jsonCodec) get(data []byte, property string) (string, bool, error) {
	if err := c.validate(data); err != nil {
		return "", false, err
	}
	result := gjson.GetBytes(data, jsonPath(property))
	if result.Type != gjson.String {
		return "", false, nil
	}
	return result.Str, true, nil
}

func (c jsonCodec) has(data []byte, property string) (bool, error) {
	if err := c.validate(data); err != nil {
		return false, err
	}
	return gjson.GetBytes(data, jsonPath(property)).Exists(), nil
}

func (c jsonCodec) set(data []byte, property string, value interface{}) ([]byte, error) {
	if err := c.validate(data); err != nil {
		return nil, err
	}
	return sjson.SetBytes(data, jsonPath(property), value)
}

// jsonPath escapes gjson path syntax in each dotted component so property names
// are matched literally.
func jsonPath(property string) string {
	parts := strings.Split(property, ".")
	for i, part := range parts {
		parts[i] = gjson.Escape(part)
	}
	return strings.Join(parts, ".")
}
