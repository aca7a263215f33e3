package palette

import (
	"errors"

	"github.com/tidwall/gjson"
)

// FromJSON parses a palette from the JSON form used by the popular palette
// sharing sites, {"name": "...", "colors": ["1a1c2c", ...]}. The name may be
// absent, in which case it is returned empty and the caller chooses one.
func FromJSON(b []byte) (string, Palette, error) {
	colors := gjson.GetBytes(b, "colors")
	if !colors.IsArray() {
		return "", nil, errors.New("palette: no colors array")
	}

	var hex []string
	for _, v := range colors.Array() {
		hex = append(hex, v.String())
	}

	p, err := Parse(hex...)
	if err != nil {
		return "", nil, err
	}

	return gjson.GetBytes(b, "name").String(), p, nil
}
