//go:build unit

package api_test

import "encoding/json"

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// mustErr keeps only the error of a constructor call.
func mustErr[T any](_ T, err error) error {
	return err
}

func decodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
