package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/shoplens/backend/internal/domain"
)

// DefaultMaxProductNameLength caps the product name embedded in the prompt (in runes)
const DefaultMaxProductNameLength = 200

var (
	// Matches runs of whitespace, including tabs and newlines
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	// Matches double quotes and their typographic variants, which would close
	// the quoted product name inside the prompt
	doubleQuotePattern = regexp.MustCompile("[\"“”„«»]")
)

// ProductNameNormalizer cleans user-entered product names before they are
// embedded in a prompt
type ProductNameNormalizer struct {
	maxLength          int
	enableDebugLogging bool
}

// NewProductNameNormalizer creates a normalizer. maxLength <= 0 uses the default.
func NewProductNameNormalizer(maxLength int, enableDebugLogging bool) *ProductNameNormalizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxProductNameLength
	}
	return &ProductNameNormalizer{
		maxLength:          maxLength,
		enableDebugLogging: enableDebugLogging,
	}
}

// Normalize returns the cleaned name, or "" if nothing printable remains
func (n *ProductNameNormalizer) Normalize(productName string) string {
	if domain.IsBlankProductName(productName) {
		return ""
	}

	original := productName

	// Step 1: Drop control and format characters (keep whitespace for step 3)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, productName)

	// Step 2: Double quotes become single quotes
	cleaned = doubleQuotePattern.ReplaceAllString(cleaned, "'")

	// Step 3: Normalize whitespace
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	// Step 4: Limit length, cutting at a word boundary when one is close
	cleaned = truncateRunes(cleaned, n.maxLength)

	if n.enableDebugLogging {
		log.Debug().Str("input", original).Str("output", cleaned).Msg("normalized product name")
	}

	return cleaned
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)[:max]
	cut := string(runes)
	if lastSpace := strings.LastIndex(cut, " "); lastSpace > len(cut)/2 {
		cut = cut[:lastSpace]
	}
	return strings.TrimSpace(cut)
}
