package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shoplens/backend/internal/domain"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models the client depends on
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options configures a Client
type Options struct {
	APIKey            string
	Model             string
	BaseURL           string // optional endpoint override
	RequestsPerMinute int    // <= 0 disables client-side limiting
}

// Client sends analysis prompts to the Gemini API
type Client struct {
	models      contentGenerator
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Gemini API client.
// A missing API key is not an error here: every call then fails with
// domain.ErrMissingAPIKey so the failure surfaces per request.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		model:       model,
		rateLimiter: newLimiter(opts.RequestsPerMinute),
	}

	if opts.APIKey == "" {
		c.models = missingKeyGenerator{}
		return c, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.models = client.Models

	return c, nil
}

func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := perMinute
	if burst > 5 {
		burst = 5
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// SetDebug enables logging of prompts and raw responses
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// AnalyzeProduct encodes the request, calls the model once and decodes the reply
func (c *Client) AnalyzeProduct(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	name := request.TrimmedName()
	if name == "" {
		return nil, domain.ErrEmptyProductName
	}

	prompt := BuildPrompt(name, request.Language)
	if c.debug {
		log.Debug().Str("prompt", prompt).Msg("analysis llm input")
	}

	text, err := c.generate(ctx, prompt, AnalysisSchema())
	if err != nil {
		return nil, err
	}

	if c.debug {
		log.Debug().Str("response", text).Msg("analysis llm output")
	}

	result, err := DecodeAnalysis(text)
	if err != nil {
		log.Warn().Err(err).Str("product", name).Int("responseBytes", len(text)).Msg("failed to decode analysis")
		return nil, err
	}

	return result, nil
}

// generate performs a single structured-output GenerateContent call
func (c *Client) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrGeminiAPIFailure, err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	start := time.Now()
	result, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("gemini request failed")
		return "", fmt.Errorf("%w: %w", domain.ErrGeminiAPIFailure, err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no response from Gemini", domain.ErrGeminiAPIFailure)
	}

	event := log.Info().
		Str("model", c.model).
		Dur("latency", time.Since(start))
	if result.UsageMetadata != nil {
		event = event.
			Int32("inputTokens", result.UsageMetadata.PromptTokenCount).
			Int32("outputTokens", result.UsageMetadata.CandidatesTokenCount).
			Int32("totalTokens", result.UsageMetadata.TotalTokenCount)
	}
	event.Msg("analysis llm call")

	return result.Text(), nil
}

// missingKeyGenerator stands in for the API when no key is configured
type missingKeyGenerator struct{}

func (missingKeyGenerator) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, domain.ErrMissingAPIKey
}
