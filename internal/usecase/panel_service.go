package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shoplens/backend/internal/domain"
)

// Analyzer is the analysis step the panel lifecycle drives
type Analyzer interface {
	Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error)
}

// PanelServiceConfig holds configuration for the panel service
type PanelServiceConfig struct {
	SessionTTL time.Duration
}

// PanelService drives the per-session result panel through its lifecycle
type PanelService struct {
	panels     domain.PanelRepository
	analyzer   Analyzer
	sessionTTL time.Duration
	inflight   sync.WaitGroup
}

// NewPanelService creates a new panel service with dependencies
func NewPanelService(panels domain.PanelRepository, analyzer Analyzer, config PanelServiceConfig) *PanelService {
	ttl := config.SessionTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}

	return &PanelService{
		panels:     panels,
		analyzer:   analyzer,
		sessionTTL: ttl,
	}
}

// Snapshot returns the session's panel, creating an idle one if needed
func (s *PanelService) Snapshot(ctx context.Context, sessionID string) domain.PanelSnapshot {
	return s.panelFor(ctx, sessionID).Snapshot()
}

// Submit runs one request through the panel: begin, analyze, settle.
// The returned error is domain.ErrEmptyProductName, domain.ErrAnalysisInProgress,
// a *domain.AnalysisError, or nil on success. The snapshot is always valid.
func (s *PanelService) Submit(ctx context.Context, sessionID, productName string, language domain.Language) (domain.PanelSnapshot, error) {
	panel, err := s.begin(ctx, sessionID, productName, language)
	if err != nil {
		return panel.Snapshot(), err
	}

	err = s.settle(ctx, sessionID, panel, productName, language)
	return panel.Snapshot(), err
}

// Start begins a request and settles it in the background.
// It returns the loading snapshot as soon as the panel has moved to loading.
// The analysis outlives ctx cancellation so a closed browser tab does not abort it.
func (s *PanelService) Start(ctx context.Context, sessionID, productName string, language domain.Language) (domain.PanelSnapshot, error) {
	panel, err := s.begin(ctx, sessionID, productName, language)
	if err != nil {
		return panel.Snapshot(), err
	}
	snap := panel.Snapshot()

	detached := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("product", productName).Msg("analysis panicked")
			}
		}()
		_ = s.settle(detached, sessionID, panel, productName, language)
	}()

	return snap, nil
}

// Wait blocks until background analyses finish or ctx is done
func (s *PanelService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *PanelService) begin(ctx context.Context, sessionID, productName string, language domain.Language) (*domain.Panel, error) {
	panel := s.panelFor(ctx, sessionID)

	err := panel.Begin(productName, language)
	if errors.Is(err, domain.ErrAnalysisInProgress) {
		return panel, err
	}
	s.save(ctx, sessionID, panel)
	return panel, err
}

// settle runs the analysis and moves the panel out of loading, even on panic
func (s *PanelService) settle(ctx context.Context, sessionID string, panel *domain.Panel, productName string, language domain.Language) error {
	settled := false
	defer func() {
		if !settled {
			panel.Fail((&domain.AnalysisError{}).UserMessage())
			s.saveIfCurrent(ctx, sessionID, panel)
		}
	}()

	result, err := s.analyzer.Analyze(ctx, &domain.AnalysisRequest{
		ProductName: productName,
		Language:    language,
	})
	if err != nil {
		panel.Fail(userMessage(err))
	} else {
		panel.Succeed(result)
	}
	settled = true
	s.saveIfCurrent(ctx, sessionID, panel)

	return err
}

// Reset discards the session's panel
func (s *PanelService) Reset(ctx context.Context, sessionID string) error {
	return s.panels.Delete(ctx, sessionID)
}

func (s *PanelService) panelFor(ctx context.Context, sessionID string) *domain.Panel {
	panel, err := s.panels.Get(ctx, sessionID)
	if err == nil && panel != nil {
		return panel
	}
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		log.Warn().Err(err).Msg("panel lookup failed, starting a fresh panel")
	}

	panel = domain.NewPanel()
	s.save(ctx, sessionID, panel)
	return panel
}

// saveIfCurrent stores a settled panel unless the session was reset or
// replaced while the analysis ran
func (s *PanelService) saveIfCurrent(ctx context.Context, sessionID string, panel *domain.Panel) {
	current, err := s.panels.Get(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		log.Debug().Str("session", sessionID).Msg("panel reset during analysis, dropping result")
		return
	case err == nil && current != panel:
		log.Debug().Str("session", sessionID).Msg("panel replaced during analysis, dropping result")
		return
	}
	s.save(ctx, sessionID, panel)
}

func (s *PanelService) save(ctx context.Context, sessionID string, panel *domain.Panel) {
	if err := s.panels.Set(ctx, sessionID, panel, s.sessionTTL); err != nil {
		log.Warn().Err(err).Msg("failed to store panel")
	}
}

// userMessage maps an analysis error to the text shown in the failure state
func userMessage(err error) string {
	var analysisErr *domain.AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.UserMessage()
	}
	if errors.Is(err, domain.ErrEmptyProductName) {
		return domain.EmptyProductNameMessage
	}
	return domain.AnalysisFailedPrefix + err.Error()
}
