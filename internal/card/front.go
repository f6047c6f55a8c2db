package card

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
)

// DecodeFront turns the raw front text of a card into a FrontSchema.
// It is total: structured JSON is projected field-by-field with
// defensive defaults, and anything that does not parse as an object
// bearing a recognized kind is treated as legacy plain text.
func DecodeFront(raw string) FrontSchema {
	obj, ok := parseObject(raw)
	if !ok {
		return legacyFront(raw)
	}
	kind, _ := obj["kind"].(string)
	if !Kind(kind).recognized() {
		return legacyFront(raw)
	}

	fs := FrontSchema{
		Version: SchemaVersion,
		Kind:    Kind(kind),
		Score:   1,
		Prompt:  "",
	}
	if n, ok := obj["score"].(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			fs.Score = f
		}
	}
	if p, ok := obj["prompt"].(string); ok {
		fs.Prompt = p
	}
	if list, ok := obj["options"].([]interface{}); ok {
		opts := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := stringify(v); ok {
				opts = append(opts, s)
			}
		}
		fs.Options = opts
	}
	if m, ok := obj["media"].(map[string]interface{}); ok {
		media := &Media{}
		if s, ok := m["image"].(string); ok {
			media.Image = s
		}
		if s, ok := m["audio"].(string); ok {
			media.Audio = s
		}
		if s, ok := m["video"].(string); ok {
			media.Video = s
		}
		fs.Media = media
	}
	return fs
}

func legacyFront(raw string) FrontSchema {
	return FrontSchema{
		Version: SchemaVersion,
		Kind:    KindBasic,
		Score:   1,
		Prompt:  raw,
	}
}

var blankRe = regexp.MustCompile(`\{\{\d+\}\}`)

// CountBlanks counts the {{n}} placeholders in a prompt. It is the
// sole source of truth for how many fill-in-blank slots are expected.
func CountBlanks(prompt string) int {
	return len(blankRe.FindAllStringIndex(prompt, -1))
}

// parseObject attempts to read raw as a single JSON object. Numbers
// are kept as json.Number so legacy numeric values stringify exactly
// as authored.
func parseObject(raw string) (map[string]interface{}, bool) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	// Trailing garbage means the field is legacy text, not JSON.
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	return obj, ok
}

// stringify converts a decoded JSON scalar to its text form. Objects,
// arrays and nulls are rejected.
func stringify(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	}
	return "", false
}
