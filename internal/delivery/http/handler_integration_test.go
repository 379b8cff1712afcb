package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplens/backend/config"
	"github.com/shoplens/backend/internal/domain"
	"github.com/shoplens/backend/internal/infrastructure/session"
	"github.com/shoplens/backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

const testCookieName = "shoplens_test_session"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"chrome-extension://*", "http://localhost:3000"},
		},
		Gemini: config.GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Session: config.SessionConfig{
			TTL:        30 * time.Minute,
			CookieName: testCookieName,
		},
		RateLimit: config.RateLimitConfig{
			PerIP: 0,
		},
	}
}

// setupTestRouter creates a test router without any analysis services
func setupTestRouter() *gin.Engine {
	handler := NewHandler(nil, nil, HandlerOptions{})
	if handler == nil {
		panic("setupTestRouter: NewHandler returned nil")
	}

	router := SetupRouter(testConfig(), handler)
	if router == nil {
		panic("setupTestRouter: SetupRouter returned nil *gin.Engine")
	}

	return router
}

// mockAnalyzer stands in for the Gemini client
type mockAnalyzer struct {
	mu       sync.Mutex
	result   *domain.AnalysisResult
	err      error
	requests []domain.AnalysisRequest
	ctxErrs  []error

	// release, when set, holds every call until it is closed
	release chan struct{}
}

func (m *mockAnalyzer) AnalyzeProduct(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if m.release != nil {
		<-m.release
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, *request)
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockAnalyzer) calls() []domain.AnalysisRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AnalysisRequest(nil), m.requests...)
}

func testResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ProductName: "Sony WH-1000XM5",
		Variants:    []domain.Variant{{Name: "Black", Description: "Matte finish"}},
		Prices: []domain.Price{
			{Store: "Amazon.in", Price: "₹29,990", URL: "https://www.amazon.in/dp/B09XS7JWHH"},
			{Store: "Flipkart", Price: "₹30,490", URL: "https://www.flipkart.com/sony-wh-1000xm5"},
			{Store: "Croma", Price: "₹31,990", URL: "https://www.croma.com/sony-wh-1000xm5"},
		},
		Pros:                []string{"Class-leading noise cancelling"},
		Cons:                []string{"Does not fold flat"},
		AlternativeProducts: []domain.AlternativeProduct{{Name: "Bose QC45", Price: "₹25,900", Reason: "Lighter"}},
	}
}

// setupTestRouterWithServices wires the real usecases around a mock analyzer
func setupTestRouterWithServices(t *testing.T, analyzer domain.ProductAnalyzer, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	router, _ := newTestServices(t, analyzer, mutate)
	return router
}

// newTestServices is setupTestRouterWithServices that also returns the panel
// service, so form tests can wait for background analyses
func newTestServices(t *testing.T, analyzer domain.ProductAnalyzer, mutate func(*config.Config)) (*gin.Engine, *usecase.PanelService) {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)

	analysisService := usecase.NewAnalysisService(analyzer, usecase.AnalysisServiceConfig{})
	panelService := usecase.NewPanelService(store, analysisService, usecase.PanelServiceConfig{
		SessionTTL: cfg.Session.TTL,
	})

	handler := NewHandler(analysisService, panelService, HandlerOptions{
		ExposeErrorDetail: !cfg.IsProduction(),
	})
	return SetupRouter(cfg, handler), panelService
}

func waitSettled(t *testing.T, panels *usecase.PanelService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, panels.Wait(ctx))
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatalf("response did not set %s cookie", testCookieName)
	return nil
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, cookie *http.Cookie, values url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/analyze", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, cookie *http.Cookie, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthCheckEndpoint tests the health check endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter()

		w := get(router, nil, "/health")
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "healthy", response["status"])
		assert.Equal(t, "shoplens-backend", response["service"])
		version, ok := response["version"].(string)
		assert.True(t, ok && strings.TrimSpace(version) != "", "version = %v, want non-empty string", response["version"])
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter()

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code, "method %s", method)
		}
	})
}

// TestIndexPage tests the HTML form page
func TestIndexPage(t *testing.T) {
	t.Run("renders idle panel and sets session cookie", func(t *testing.T) {
		router := setupTestRouter()

		w := get(router, nil, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Ready for Analysis")
		assert.Contains(t, w.Body.String(), `id="analyze-form"`)

		cookie := sessionCookie(t, w)
		assert.Len(t, cookie.Value, 32)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 1800, cookie.MaxAge)
	})

	t.Run("keeps a valid session cookie", func(t *testing.T) {
		router := setupTestRouter()

		first := sessionCookie(t, get(router, nil, "/"))
		second := sessionCookie(t, get(router, first, "/"))

		assert.Equal(t, first.Value, second.Value)
	})

	t.Run("replaces a malformed session cookie", func(t *testing.T) {
		router := setupTestRouter()

		bogus := &http.Cookie{Name: testCookieName, Value: "../../etc/passwd"}
		cookie := sessionCookie(t, get(router, bogus, "/"))

		assert.NotEqual(t, bogus.Value, cookie.Value)
		assert.True(t, validSessionID(cookie.Value))
	})
}

// TestFormSubmission tests the form post and redirect lifecycle
func TestFormSubmission(t *testing.T) {
	t.Run("successful analysis renders results after redirect", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router, panels := newTestServices(t, analyzer, nil)

		w := postForm(router, nil, url.Values{"productName": {"  Sony WH-1000XM5 "}, "language": {"hi"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		waitSettled(t, panels)
		assert.Equal(t, "/", w.Header().Get("Location"))
		cookie := sessionCookie(t, w)

		calls := analyzer.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Sony WH-1000XM5", calls[0].ProductName)
		assert.Equal(t, domain.LanguageHindi, calls[0].Language)

		page := get(router, cookie, "/")
		require.Equal(t, http.StatusOK, page.Code)
		body := page.Body.String()
		assert.Contains(t, body, `data-state="success"`)
		assert.Contains(t, body, "Flipkart")
		assert.Contains(t, body, "Bose QC45")
		assert.Contains(t, body, `<option value="hi" selected>`)
	})

	t.Run("blank product name shows validation and skips analysis", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router := setupTestRouterWithServices(t, analyzer, nil)

		w := postForm(router, nil, url.Values{"productName": {"   "}, "language": {"en"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Empty(t, analyzer.calls())

		page := get(router, sessionCookie(t, w), "/")
		assert.Contains(t, page.Body.String(), domain.EmptyProductNameMessage)
		assert.Contains(t, page.Body.String(), `data-state="idle"`)
	})

	t.Run("invisible product name shows validation", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router, panels := newTestServices(t, analyzer, nil)

		w := postForm(router, nil, url.Values{"productName": {"\u200b\u200b"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		waitSettled(t, panels)
		assert.Empty(t, analyzer.calls())

		var snap domain.PanelSnapshot
		require.NoError(t, json.Unmarshal(get(router, sessionCookie(t, w), "/api/v1/panel").Body.Bytes(), &snap))
		assert.Equal(t, domain.PanelIdle, snap.State)
		assert.Equal(t, domain.EmptyProductNameMessage, snap.ValidationError)
		assert.Empty(t, snap.Error)
	})

	t.Run("redirects to the loading page before the analysis settles", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult(), release: make(chan struct{})}
		router, panels := newTestServices(t, analyzer, nil)

		done := make(chan *httptest.ResponseRecorder, 1)
		go func() {
			done <- postForm(router, nil, url.Values{"productName": {"Sony WH-1000XM5"}})
		}()

		var w *httptest.ResponseRecorder
		select {
		case w = <-done:
		case <-time.After(2 * time.Second):
			close(analyzer.release)
			t.Fatal("POST /analyze blocked on the analysis")
		}
		require.Equal(t, http.StatusSeeOther, w.Code)
		cookie := sessionCookie(t, w)

		loading := get(router, cookie, "/").Body.String()
		assert.Contains(t, loading, `data-state="loading"`)
		assert.Contains(t, loading, `http-equiv="refresh"`)
		assert.Contains(t, loading, "AI is analyzing the Indian market...")

		// A second submit while loading does not start another call
		again := postForm(router, cookie, url.Values{"productName": {"Pixel 8"}})
		assert.Equal(t, http.StatusSeeOther, again.Code)

		close(analyzer.release)
		waitSettled(t, panels)

		settled := get(router, cookie, "/").Body.String()
		assert.Contains(t, settled, `data-state="success"`)
		assert.NotContains(t, settled, `http-equiv="refresh"`)

		calls := analyzer.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Sony WH-1000XM5", calls[0].ProductName)

		// The analysis is detached from the finished form request
		analyzer.mu.Lock()
		assert.NoError(t, analyzer.ctxErrs[0])
		analyzer.mu.Unlock()
	})

	t.Run("analyzer failure renders failure message", func(t *testing.T) {
		analyzer := &mockAnalyzer{err: domain.ErrInvalidResponse}
		router, panels := newTestServices(t, analyzer, nil)

		w := postForm(router, nil, url.Values{"productName": {"Nothing Phone 2"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		waitSettled(t, panels)

		page := get(router, sessionCookie(t, w), "/")
		body := page.Body.String()
		assert.Contains(t, body, `data-state="failure"`)
		assert.Contains(t, body, (&domain.AnalysisError{}).UserMessage())
		assert.NotContains(t, body, `data-state="success"`)
	})

	t.Run("sessions do not share panels", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router, panels := newTestServices(t, analyzer, nil)

		postForm(router, nil, url.Values{"productName": {"Sony WH-1000XM5"}})
		waitSettled(t, panels)

		page := get(router, nil, "/")
		assert.Contains(t, page.Body.String(), "Ready for Analysis")
	})

	t.Run("without services returns 503", func(t *testing.T) {
		router := setupTestRouter()

		w := postForm(router, nil, url.Values{"productName": {"Sony WH-1000XM5"}})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

// TestAnalysisEndpoint tests the JSON analysis API
func TestAnalysisEndpoint(t *testing.T) {
	t.Run("returns not configured without a service", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/analysis", `{"productName":"iPhone 15"}`)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["error"], "not configured")
	})

	t.Run("returns analysis for valid request", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router := setupTestRouterWithServices(t, analyzer, nil)

		w := postJSON(router, "/api/v1/analysis", `{"productName":"Sony WH-1000XM5","language":"ta"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.AnalysisResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "Sony WH-1000XM5", result.ProductName)
		assert.Len(t, result.Prices, 3)
		assert.Equal(t, "₹29,990", result.Prices[0].Price)

		calls := analyzer.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.LanguageTamil, calls[0].Language)
	})

	t.Run("unknown language falls back to English", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router := setupTestRouterWithServices(t, analyzer, nil)

		w := postJSON(router, "/api/v1/analysis", `{"productName":"Sony WH-1000XM5","language":"xx"}`)
		require.Equal(t, http.StatusOK, w.Code)

		calls := analyzer.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "English", calls[0].Language.DisplayName())
	})

	t.Run("returns 400 for blank productName", func(t *testing.T) {
		analyzer := &mockAnalyzer{result: testResult()}
		router := setupTestRouterWithServices(t, analyzer, nil)

		for _, payload := range []string{`{"productName":"   "}`, `{"language":"en"}`} {
			w := postJSON(router, "/api/v1/analysis", payload)
			require.Equal(t, http.StatusBadRequest, w.Code, payload)

			var response map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, domain.EmptyProductNameMessage, response["error"])
		}
		assert.Empty(t, analyzer.calls())
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		router := setupTestRouterWithServices(t, &mockAnalyzer{}, nil)

		w := postJSON(router, "/api/v1/analysis", `{"productName":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 502 with detail for API failure", func(t *testing.T) {
		analyzer := &mockAnalyzer{err: errors.Join(domain.ErrGeminiAPIFailure, errors.New("status 503"))}
		router := setupTestRouterWithServices(t, analyzer, nil)

		w := postJSON(router, "/api/v1/analysis", `{"productName":"Pixel 8"}`)
		require.Equal(t, http.StatusBadGateway, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, (&domain.AnalysisError{}).UserMessage(), response["error"])
		assert.Contains(t, response["detail"], "status 503")
	})

	t.Run("hides detail in production", func(t *testing.T) {
		analyzer := &mockAnalyzer{err: domain.ErrInvalidResponse}
		router := setupTestRouterWithServices(t, analyzer, func(cfg *config.Config) {
			cfg.Server.Environment = "production"
		})
		t.Cleanup(func() { gin.SetMode(gin.TestMode) })

		w := postJSON(router, "/api/v1/analysis", `{"productName":"Pixel 8"}`)
		require.Equal(t, http.StatusBadGateway, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		_, hasDetail := response["detail"]
		assert.False(t, hasDetail)
	})

	t.Run("validates HTTP method", func(t *testing.T) {
		router := setupTestRouter()

		for _, method := range []string{"GET", "PUT", "PATCH"} {
			req, _ := http.NewRequest(method, "/api/v1/analysis", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code, "method %s", method)
		}
	})
}

// TestLanguagesEndpoint tests the language list
func TestLanguagesEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := get(router, nil, "/api/v1/languages")
	require.Equal(t, http.StatusOK, w.Code)

	var options []domain.LanguageOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	require.Len(t, options, 16)
	assert.Equal(t, domain.LanguageOption{Value: "en", Label: "English"}, options[0])
	assert.Equal(t, domain.LanguageOption{Value: "zh", Label: "Chinese"}, options[15])
}

// TestPanelEndpoint tests the session panel snapshot API
func TestPanelEndpoint(t *testing.T) {
	t.Run("new session is idle", func(t *testing.T) {
		router := setupTestRouterWithServices(t, &mockAnalyzer{}, nil)

		w := get(router, nil, "/api/v1/panel")
		require.Equal(t, http.StatusOK, w.Code)

		var snap domain.PanelSnapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, domain.PanelIdle, snap.State)
		assert.False(t, snap.Loading)
		assert.Nil(t, snap.Result)
	})

	t.Run("reflects the last submit and resets", func(t *testing.T) {
		router, panels := newTestServices(t, &mockAnalyzer{result: testResult()}, nil)

		cookie := sessionCookie(t, postForm(router, nil, url.Values{"productName": {"Sony WH-1000XM5"}, "language": {"de"}}))
		waitSettled(t, panels)

		var snap domain.PanelSnapshot
		require.NoError(t, json.Unmarshal(get(router, cookie, "/api/v1/panel").Body.Bytes(), &snap))
		assert.Equal(t, domain.PanelSuccess, snap.State)
		assert.Equal(t, domain.LanguageGerman, snap.Language)
		require.NotNil(t, snap.Result)
		assert.Equal(t, "Sony WH-1000XM5", snap.Result.ProductName)

		req, _ := http.NewRequest("DELETE", "/api/v1/panel", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		require.NoError(t, json.Unmarshal(get(router, cookie, "/api/v1/panel").Body.Bytes(), &snap))
		assert.Equal(t, domain.PanelIdle, snap.State)
		assert.Nil(t, snap.Result)
	})
}

// TestRateLimitIntegration tests the per-IP limit on analysis routes
func TestRateLimitIntegration(t *testing.T) {
	analyzer := &mockAnalyzer{result: testResult()}
	router := setupTestRouterWithServices(t, analyzer, func(cfg *config.Config) {
		cfg.RateLimit.PerIP = 2
	})

	for i := 0; i < 2; i++ {
		w := postJSON(router, "/api/v1/analysis", `{"productName":"Sony WH-1000XM5"}`)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := postJSON(router, "/api/v1/analysis", `{"productName":"Sony WH-1000XM5"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, analyzer.calls(), 2)

	// Read-only routes are not limited
	assert.Equal(t, http.StatusOK, get(router, nil, "/api/v1/languages").Code)
}

// TestCORSIntegration tests CORS headers work end-to-end with full router
func TestCORSIntegration(t *testing.T) {
	t.Run("health endpoint has CORS for Chrome extension", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "chrome-extension://abcdefghijklmnop")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "chrome-extension://abcdefghijklmnop", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("panel reset preflight allows DELETE", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("OPTIONS", "/api/v1/panel", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "DELETE")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("analysis endpoint has CORS for localhost", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("OPTIONS", "/api/v1/analysis", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

// TestRecoveryMiddleware tests panic recovery
func TestRecoveryMiddleware(t *testing.T) {
	t.Run("recovers from panic without crashing server", func(t *testing.T) {
		router := setupTestRouter()

		// Add a test route that panics
		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		w := get(router, nil, "/panic")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// TestAPIVersioning tests that API routes are correctly versioned
func TestAPIVersioning(t *testing.T) {
	router := setupTestRouter()

	for _, path := range []string{"/api/languages", "/languages", "/api/v2/languages", "/api/v1/analysis/"} {
		w := get(router, nil, path)
		assert.Contains(t, []int{http.StatusNotFound, http.StatusMovedPermanently}, w.Code, "path %s", path)
	}
}
