package postgres

import (
	"encoding/json"
	"fmt"
)

// encodeJSON marshals v for a jsonb column. Nil maps become {} so NOT NULL
// columns accept them.
func encodeJSON[T any](name string, v T) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeFailed, name, err)
	}
	if string(b) == "null" {
		return []byte("{}"), nil
	}
	return b, nil
}

// encodeNullableJSON marshals v or returns nil for a nil pointer
func encodeNullableJSON[T any](name string, v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return encodeJSON(name, v)
}

func decodeJSON(name string, b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf(ErrMsgDecodeFailed, name, err)
	}
	return nil
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func fromStrings[T ~string](in []string) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

func toStringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func fromStringPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
