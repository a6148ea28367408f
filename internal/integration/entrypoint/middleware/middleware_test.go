package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rental-ledger/backend/internal/application/adapter"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.claims, s.err
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		service        stubTokenService
		expectedStatus int
		expectedCode   string
	}{
		{name: "missing header", expectedStatus: http.StatusUnauthorized, expectedCode: string(domainerror.ErrCodeMissingToken)},
		{name: "wrong scheme", header: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedCode: string(domainerror.ErrCodeInvalidToken)},
		{name: "expired", header: "Bearer t", service: stubTokenService{err: domainerror.ErrExpiredToken}, expectedStatus: http.StatusUnauthorized, expectedCode: string(domainerror.ErrCodeExpiredToken)},
		{name: "invalid", header: "Bearer t", service: stubTokenService{err: domainerror.ErrInvalidToken}, expectedStatus: http.StatusUnauthorized, expectedCode: string(domainerror.ErrCodeInvalidToken)},
		{name: "valid", header: "Bearer t", service: stubTokenService{claims: &adapter.TokenClaims{Subject: "owner-1"}}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", NewAuthMiddleware(tt.service).Authenticate(), func(c *gin.Context) {
				subject, _ := GetSubjectFromContext(c)
				c.String(http.StatusOK, subject)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedCode != "" && !strings.Contains(rec.Body.String(), tt.expectedCode) {
				t.Errorf("expected code %s in body %s", tt.expectedCode, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusOK && rec.Body.String() != "owner-1" {
				t.Errorf("expected subject owner-1, got %s", rec.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	limiter := NewRateLimiter(client, "export", 2, time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 5, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	router := gin.New()
	router.GET("/", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := do(); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
	rec := do()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "56" {
		t.Errorf("expected Retry-After 56, got %s", rec.Header().Get("Retry-After"))
	}

	now = now.Add(time.Minute)
	if rec := do(); rec.Code != http.StatusOK {
		t.Errorf("expected new window to allow the request, got %d", rec.Code)
	}
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()

	router := gin.New()
	router.GET("/", NewRateLimiter(client, "export", 1, time.Minute).Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 when redis is down, got %d", rec.Code)
		}
	}
}

type recordedRequest struct {
	route  string
	method string
	status int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) RecordRequest(route, method string, status int, d time.Duration) {
	f.requests = append(f.requests, recordedRequest{route: route, method: method, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	recorder := &fakeRecorder{}
	router := gin.New()
	router.Use(Metrics(recorder))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/5", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if len(recorder.requests) != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", len(recorder.requests))
	}
	if recorder.requests[0] != (recordedRequest{route: "/items/:id", method: "GET", status: http.StatusAccepted}) {
		t.Errorf("unexpected first record %+v", recorder.requests[0])
	}
	if recorder.requests[1].route != "unmatched" || recorder.requests[1].status != http.StatusNotFound {
		t.Errorf("unexpected second record %+v", recorder.requests[1])
	}
}
