package domain

import (
	"context"
	"time"
)

// ProductAnalyzer produces an analysis for a validated request
type ProductAnalyzer interface {
	AnalyzeProduct(ctx context.Context, request *AnalysisRequest) (*AnalysisResult, error)
}

// PanelRepository stores the transient per-session result panel
type PanelRepository interface {
	Get(ctx context.Context, sessionID string) (*Panel, error)
	Set(ctx context.Context, sessionID string, panel *Panel, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
