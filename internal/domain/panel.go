package domain

import (
	"sync"
	"time"
)

// PanelState is the lifecycle state of a result panel
type PanelState string

const (
	PanelIdle    PanelState = "idle"
	PanelLoading PanelState = "loading"
	PanelSuccess PanelState = "success"
	PanelFailure PanelState = "failure"
)

// Panel holds the transient UI state of one browser session: the current
// input, the current result or error, and the loading flag.
// At most one of result and errorMessage is set at any time.
type Panel struct {
	mu sync.Mutex

	state           PanelState
	productName     string
	language        Language
	result          *AnalysisResult
	errorMessage    string
	validationError string
	updatedAt       time.Time
}

// PanelSnapshot is an immutable copy of a panel for rendering
type PanelSnapshot struct {
	State           PanelState      `json:"state"`
	Loading         bool            `json:"loading"`
	ProductName     string          `json:"productName"`
	Language        Language        `json:"language"`
	Result          *AnalysisResult `json:"result"`
	Error           string          `json:"error,omitempty"`
	ValidationError string          `json:"validationError,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewPanel creates an idle panel with the default language selected
func NewPanel() *Panel {
	return &Panel{
		state:     PanelIdle,
		language:  DefaultLanguage,
		updatedAt: time.Now(),
	}
}

// Begin starts a new request. A blank product name leaves the panel idle
// with a validation message and returns ErrEmptyProductName. A panel that is
// already loading rejects the submit with ErrAnalysisInProgress.
func (p *Panel) Begin(productName string, language Language) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == PanelLoading {
		return ErrAnalysisInProgress
	}

	p.productName = productName
	p.language = language
	p.result = nil
	p.errorMessage = ""
	p.updatedAt = time.Now()

	if IsBlankProductName(productName) {
		p.state = PanelIdle
		p.validationError = EmptyProductNameMessage
		return ErrEmptyProductName
	}

	p.validationError = ""
	p.state = PanelLoading
	return nil
}

// Succeed settles a loading panel with a result
func (p *Panel) Succeed(result *AnalysisResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = PanelSuccess
	p.result = result
	p.errorMessage = ""
	p.updatedAt = time.Now()
}

// Fail settles a loading panel with an error message
func (p *Panel) Fail(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = PanelFailure
	p.result = nil
	p.errorMessage = message
	p.updatedAt = time.Now()
}

// Loading reports whether a request is in flight
func (p *Panel) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == PanelLoading
}

// Snapshot returns a copy of the panel state
func (p *Panel) Snapshot() PanelSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	language := p.language
	if language == "" {
		language = DefaultLanguage
	}

	return PanelSnapshot{
		State:           p.state,
		Loading:         p.state == PanelLoading,
		ProductName:     p.productName,
		Language:        language,
		Result:          p.result,
		Error:           p.errorMessage,
		ValidationError: p.validationError,
		UpdatedAt:       p.updatedAt,
	}
}
