// Package listfield converts list-shaped profile fields (skills, languages,
// internship benefits) between their stored text form and an in-memory
// sequence. The stored column has been written by several generations of
// code: JSON arrays of strings, JSON arrays of {name, level} objects, and
// plain comma-separated text all occur in production data. Decode accepts
// every historical shape; Encode always writes the JSON form.
package listfield

import (
	"encoding/json"
	"strings"
)

// Entry is one element of a list field. A plain label carries only Name;
// a labeled value (for example a language with a proficiency) carries both.
type Entry struct {
	Name  string
	Level string
}

func Plain(name string) Entry {
	return Entry{Name: name}
}

// MarshalJSON keeps the two historical shapes apart: plain labels
// serialize as bare strings, labeled values as objects.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Level == "" {
		return json.Marshal(e.Name)
	}
	return json.Marshal(struct {
		Name  string `json:"name"`
		Level string `json:"level"`
	}{Name: e.Name, Level: e.Level})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		e.Name = label
		e.Level = ""
		return nil
	}
	var obj struct {
		Name  string `json:"name"`
		Level string `json:"level"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Name = obj.Name
	e.Level = obj.Level
	return nil
}

// Decode turns a stored or submitted value into the canonical sequence.
// It is total: malformed input degrades to a best-effort parse or an
// empty sequence, never an error.
func Decode(value any) []Entry {
	switch v := value.(type) {
	case nil:
		return []Entry{}
	case []Entry:
		if v == nil {
			return []Entry{}
		}
		return v
	case []string:
		entries := make([]Entry, 0, len(v))
		for _, name := range v {
			entries = append(entries, Plain(name))
		}
		return entries
	case []any:
		return decodeSlice(v)
	case string:
		return DecodeString(v)
	case *string:
		if v == nil {
			return []Entry{}
		}
		return DecodeString(*v)
	default:
		return []Entry{}
	}
}

// DecodeString parses the stored text form: JSON first, then the legacy
// comma-separated fallback.
func DecodeString(value string) []Entry {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return []Entry{}
	}

	var raw any
	if err := json.Unmarshal([]byte(trimmed), &raw); err == nil {
		switch parsed := raw.(type) {
		case []any:
			return decodeSlice(parsed)
		case string, map[string]any:
			// A single value stored without the surrounding array.
			if entry, ok := decodeElement(parsed); ok {
				return []Entry{entry}
			}
			return []Entry{}
		default:
			return []Entry{}
		}
	}

	parts := strings.Split(trimmed, ",")
	entries := make([]Entry, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			entries = append(entries, Plain(name))
		}
	}
	return entries
}

// Encode serializes a sequence to the stored text form. Non-sequence
// input is coerced to an empty sequence first, so Encode never fails.
func Encode(value any) string {
	entries := Decode(value)
	data, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeSlice(values []any) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, value := range values {
		if entry, ok := decodeElement(value); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func decodeElement(value any) (Entry, bool) {
	switch v := value.(type) {
	case string:
		name := strings.TrimSpace(v)
		if name == "" {
			return Entry{}, false
		}
		return Plain(name), true
	case map[string]any:
		entry := Entry{}
		if name, ok := v["name"].(string); ok {
			entry.Name = strings.TrimSpace(name)
		}
		if level, ok := v["level"].(string); ok {
			entry.Level = strings.TrimSpace(level)
		}
		if entry.Name == "" {
			return Entry{}, false
		}
		return entry, true
	default:
		return Entry{}, false
	}
}
