package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shoplens/backend/internal/domain"
)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	MaxProductNameLength int
	EnableDebugLogging   bool
}

// AnalysisService validates requests and runs them through the analyzer
type AnalysisService struct {
	analyzer   domain.ProductAnalyzer
	normalizer *ProductNameNormalizer
}

// NewAnalysisService creates a new analysis service with dependencies
func NewAnalysisService(analyzer domain.ProductAnalyzer, config AnalysisServiceConfig) *AnalysisService {
	return &AnalysisService{
		analyzer:   analyzer,
		normalizer: NewProductNameNormalizer(config.MaxProductNameLength, config.EnableDebugLogging),
	}
}

// Analyze runs one product analysis.
// Flow: validate -> normalize -> analyze -> collapse failures into *domain.AnalysisError
func (s *AnalysisService) Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if request == nil {
		return nil, domain.ErrEmptyProductName
	}

	name := s.normalizer.Normalize(request.ProductName)
	if name == "" {
		return nil, domain.ErrEmptyProductName
	}

	language := request.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	start := time.Now()
	result, err := s.analyzer.AnalyzeProduct(ctx, &domain.AnalysisRequest{
		ProductName: name,
		Language:    language,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("product", name).
			Str("language", language.String()).
			Bool("invalidResponse", errors.Is(err, domain.ErrInvalidResponse)).
			Dur("elapsed", time.Since(start)).
			Msg("product analysis failed")
		return nil, &domain.AnalysisError{Cause: err}
	}
	if result == nil {
		return nil, &domain.AnalysisError{Cause: domain.ErrInvalidResponse}
	}

	result.Normalize()

	log.Info().
		Str("product", name).
		Str("language", language.String()).
		Int("prices", len(result.Prices)).
		Int("variants", len(result.Variants)).
		Int("alternatives", len(result.AlternativeProducts)).
		Dur("elapsed", time.Since(start)).
		Msg("product analysis complete")

	return result, nil
}
