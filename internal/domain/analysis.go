package domain

import (
	"strings"
	"unicode"
)

// AnalysisRequest represents a product analysis request
type AnalysisRequest struct {
	ProductName string   `json:"productName" binding:"required"`
	Language    Language `json:"language,omitempty"`
}

// TrimmedName returns the product name without surrounding whitespace
func (r *AnalysisRequest) TrimmedName() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.ProductName)
}

// IsBlankProductName reports whether name has no printable content.
// Whitespace, control and invisible format runes (e.g. U+200B) count as blank.
func IsBlankProductName(name string) bool {
	return strings.IndexFunc(name, func(r rune) bool {
		return !unicode.IsSpace(r) && !unicode.IsControl(r) && !unicode.Is(unicode.Cf, r)
	}) < 0
}

// AnalysisResult is the structured outcome of one product analysis
type AnalysisResult struct {
	ProductName         string               `json:"productName"`
	Variants            []Variant            `json:"variants"`
	Prices              []Price              `json:"prices"`
	Pros                []string             `json:"pros"`
	Cons                []string             `json:"cons"`
	AlternativeProducts []AlternativeProduct `json:"alternativeProducts"`
}

// Variant is a distinct configuration of the analyzed product (e.g. storage size)
type Variant struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Price is a retailer listing. Price is display text, never parsed.
type Price struct {
	Store string `json:"store"`
	Price string `json:"price"`
	URL   string `json:"url"`
}

// AlternativeProduct is a competing product suggested alongside the analyzed one
type AlternativeProduct struct {
	Name   string `json:"name"`
	Price  string `json:"price"`
	Reason string `json:"reason"`
}

// Normalize replaces nil slices with empty ones so the result always
// serializes arrays as [] rather than null.
func (r *AnalysisResult) Normalize() {
	if r.Variants == nil {
		r.Variants = []Variant{}
	}
	if r.Prices == nil {
		r.Prices = []Price{}
	}
	if r.Pros == nil {
		r.Pros = []string{}
	}
	if r.Cons == nil {
		r.Cons = []string{}
	}
	if r.AlternativeProducts == nil {
		r.AlternativeProducts = []AlternativeProduct{}
	}
}
