package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Unwrap extracts the collection stored under key from any of the envelope
// shapes the backend uses, in this order of preference:
//
//	{"data": {"<key>": [...]}}
//	{"<key>": [...]}
//	{"data": [...]}
//	[...]
//
// A resolved value that is not an array yields an empty slice.
func Unwrap[T any](raw json.RawMessage, key string) ([]T, error) {
	value := locate(raw, key, false)
	if !isArray(value) {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// UnwrapObject extracts a single document stored under key, trying
// data.<key>, <key>, data and finally the raw body.
func UnwrapObject[T any](raw json.RawMessage, key string) (T, error) {
	var out T
	value := locate(raw, key, true)
	if len(value) == 0 || isNull(value) {
		return out, fmt.Errorf("decode %s: empty response", key)
	}
	if err := json.Unmarshal(value, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// Success reports the envelope's success flag. Bodies without one count as
// successful since the status code already was.
func Success(raw json.RawMessage) bool {
	var env struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Success == nil {
		return true
	}
	return *env.Success
}

// Empty reports whether an enveloped response came without its document:
// neither data nor key hold a value although the body carries a success flag
// or a data field. Bare documents are never empty.
func Empty(raw json.RawMessage, key string) bool {
	body := fields(raw)
	if body == nil {
		return len(bytes.TrimSpace(raw)) == 0 || isNull(raw)
	}
	if v, ok := body[key]; ok && !isNull(v) {
		return false
	}
	data, hasData := body["data"]
	if hasData {
		return isNull(data)
	}
	_, hasFlag := body["success"]
	return hasFlag
}

func locate(raw json.RawMessage, key string, allowData bool) json.RawMessage {
	body := fields(raw)
	if body == nil {
		return raw
	}
	data := fields(body["data"])
	if v, ok := data[key]; ok && !isNull(v) {
		return v
	}
	if v, ok := body[key]; ok && !isNull(v) {
		return v
	}
	if v, ok := body["data"]; ok && !isNull(v) && (allowData || isArray(v)) {
		return v
	}
	return raw
}

func fields(raw json.RawMessage) map[string]json.RawMessage {
	if !isObject(raw) {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
