package domain

import "strings"

// Language is a supported locale code for the analysis output
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageHindi     Language = "hi"
	LanguageBengali   Language = "bn"
	LanguageMarathi   Language = "mr"
	LanguageTelugu    Language = "te"
	LanguageTamil     Language = "ta"
	LanguageGujarati  Language = "gu"
	LanguageKannada   Language = "kn"
	LanguageMalayalam Language = "ml"
	LanguageUrdu      Language = "ur"
	LanguageNepali    Language = "ne"
	LanguageSpanish   Language = "es"
	LanguageFrench    Language = "fr"
	LanguageGerman    Language = "de"
	LanguageJapanese  Language = "ja"
	LanguageChinese   Language = "zh"
)

// DefaultLanguage is used when no language is selected
const DefaultLanguage = LanguageEnglish

// LanguageOption is a selectable entry for the language control
type LanguageOption struct {
	Value Language `json:"value"`
	Label string   `json:"label"`
}

// supportedLanguages is ordered the way the language control lists them
var supportedLanguages = []LanguageOption{
	{LanguageEnglish, "English"},
	{LanguageHindi, "Hindi"},
	{LanguageBengali, "Bengali"},
	{LanguageMarathi, "Marathi"},
	{LanguageTelugu, "Telugu"},
	{LanguageTamil, "Tamil"},
	{LanguageGujarati, "Gujarati"},
	{LanguageKannada, "Kannada"},
	{LanguageMalayalam, "Malayalam"},
	{LanguageUrdu, "Urdu"},
	{LanguageNepali, "Nepali"},
	{LanguageSpanish, "Spanish"},
	{LanguageFrench, "French"},
	{LanguageGerman, "German"},
	{LanguageJapanese, "Japanese"},
	{LanguageChinese, "Chinese"},
}

var languageNames = func() map[Language]string {
	names := make(map[Language]string, len(supportedLanguages))
	for _, opt := range supportedLanguages {
		names[opt.Value] = opt.Label
	}
	return names
}()

// SupportedLanguages returns a copy of the language options in display order
func SupportedLanguages() []LanguageOption {
	out := make([]LanguageOption, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// ParseLanguage normalizes a language code. Empty input yields DefaultLanguage.
// Unknown codes are kept as-is; DisplayName resolves them to English.
func ParseLanguage(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultLanguage
	}
	return Language(code)
}

// IsSupported reports whether the code is one of the enum values
func (l Language) IsSupported() bool {
	_, ok := languageNames[l]
	return ok
}

// DisplayName resolves the code to the language name used in prompts
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[LanguageEnglish]
}

func (l Language) String() string {
	return string(l)
}
