package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// DecodeAnalysis converts the model's text payload into a domain.AnalysisResult.
// Decoding is all-or-nothing: any malformed field rejects the whole payload.
// Array fields that are absent or null decode to empty arrays.
func DecodeAnalysis(text string) (*domain.AnalysisResult, error) {
	payload := strings.TrimSpace(text)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrInvalidResponse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: response is not a JSON object", domain.ErrInvalidResponse)
	}

	result := &domain.AnalysisResult{}

	rawName, ok := fields["productName"]
	if !ok {
		return nil, fmt.Errorf("%w: missing productName", domain.ErrInvalidResponse)
	}
	if err := json.Unmarshal(rawName, &result.ProductName); err != nil {
		return nil, fmt.Errorf("%w: productName is not a string", domain.ErrInvalidResponse)
	}
	if strings.TrimSpace(result.ProductName) == "" {
		return nil, fmt.Errorf("%w: productName is empty", domain.ErrInvalidResponse)
	}

	if err := decodeArray(fields, "variants", &result.Variants); err != nil {
		return nil, err
	}
	if err := decodeArray(fields, "prices", &result.Prices); err != nil {
		return nil, err
	}
	if err := decodeArray(fields, "pros", &result.Pros); err != nil {
		return nil, err
	}
	if err := decodeArray(fields, "cons", &result.Cons); err != nil {
		return nil, err
	}
	if err := decodeArray(fields, "alternativeProducts", &result.AlternativeProducts); err != nil {
		return nil, err
	}

	if err := validateItems(result); err != nil {
		return nil, err
	}

	result.Normalize()
	return result, nil
}

// decodeArray unmarshals fields[key] into dst when present and non-null.
// A present value that is not a JSON array is rejected.
func decodeArray(fields map[string]json.RawMessage, key string, dst interface{}) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: %s is not an array", domain.ErrInvalidResponse, key)
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidResponse, key, err)
	}
	return nil
}

// validateItems checks that each array entry carries its identifying field
func validateItems(result *domain.AnalysisResult) error {
	for i, v := range result.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("%w: variants[%d] has no name", domain.ErrInvalidResponse, i)
		}
	}
	for i, p := range result.Prices {
		if strings.TrimSpace(p.Store) == "" {
			return fmt.Errorf("%w: prices[%d] has no store", domain.ErrInvalidResponse, i)
		}
	}
	for i, a := range result.AlternativeProducts {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: alternativeProducts[%d] has no name", domain.ErrInvalidResponse, i)
		}
	}
	return nil
}
