package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// timestampLayouts aceitos na entrada; datas sem fuso são tratadas como UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp aceita RFC 3339 ou apenas a data ("2026-03-01") na entrada JSON
type Timestamp struct {
	time.Time
}

// ParseTimestamp converte uma string nos formatos aceitos
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON devolve *json.UnmarshalTypeError para que o decoder preencha o nome do campo
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(bytes.TrimSpace(data)), Type: reflect.TypeOf(time.Time{})}
	}

	parsed, ok := ParseTimestamp(s)
	if !ok {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: reflect.TypeOf(time.Time{})}
	}

	t.Time = parsed
	return nil
}

// Ptr retorna o instante como *time.Time; nil quando o campo não foi enviado
func (t *Timestamp) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
