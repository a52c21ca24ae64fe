package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	pkgauth "github.com/yigit/recruitment/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWT() *pkgauth.JWTService {
	return pkgauth.NewJWTService(pkgauth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
}

func tokenFor(t *testing.T, jwt *pkgauth.JWTService, roles ...models.Role) string {
	t.Helper()
	token, _, err := jwt.GenerateToken(&models.User{ID: 42, Username: "jane", FullName: "Jane", Email: "jane@example.com", Roles: roles})
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestJWTAuthAndRoles(t *testing.T) {
	jwt := newTestJWT()
	m := NewAuthMiddleware(jwt)

	r := gin.New()
	r.GET("/hr", m.JWTAuth(), m.RolesRequired(models.RoleHR, models.RoleAdmin), func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, fmt.Sprintf("%d:%d", p.UserID, c.GetInt64(ContextUserID)))
	})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "missing token", path: "/hr", want: http.StatusUnauthorized},
		{name: "garbage token", path: "/hr", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "bad format", path: "/hr", header: "Token abc", want: http.StatusUnauthorized},
		{name: "role mismatch", path: "/hr", header: "Bearer " + tokenFor(t, jwt, models.RoleCandidate), want: http.StatusForbidden},
		{name: "allowed", path: "/hr", header: "Bearer " + tokenFor(t, jwt, models.RoleHR), want: http.StatusOK},
		{name: "any of roles", path: "/hr", header: "Bearer " + tokenFor(t, jwt, models.RoleReviewer, models.RoleAdmin), want: http.StatusOK},
		{name: "query token", path: "/hr?token=" + tokenFor(t, jwt, models.RoleHR), want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusOK && w.Body.String() != "42:42" {
				t.Errorf("body = %q, want principal and userID 42", w.Body.String())
			}
		})
	}
}

func TestRolesRequiredWithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/x", NewAuthMiddleware(newTestJWT()).RolesRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     int
		wantCode dto.ErrorCode
		wantMsg  string
	}{
		{name: "not found", err: apperrors.ErrJobNotFound, want: 404, wantCode: dto.ErrorCodeResourceNotFound, wantMsg: "job not found"},
		{name: "forbidden", err: apperrors.NewForbiddenError("nope"), want: 403, wantCode: dto.ErrorCodeForbidden, wantMsg: "nope"},
		{name: "credentials", err: apperrors.ErrInvalidCredentials, want: 401, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "inactive", err: apperrors.NewCustomError(apperrors.ErrAccountDisabled, "Account is not active (status: Suspended)"), want: 401, wantCode: dto.ErrorCodeAccountInactive},
		{name: "validation", err: apperrors.NewValidationError("rating", "rating must be between 1 and 5"), want: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "bad request", err: apperrors.ErrAdminUndeletable, want: 400, wantCode: dto.ErrorCodeBadRequest, wantMsg: "cannot delete admin user"},
		{name: "conflict", err: apperrors.ErrUsernameAlreadyExists, want: 409, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "wrapped", err: fmt.Errorf("loading: %w", apperrors.ErrInterviewNotFound), want: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "unknown", err: errors.New("connection reset"), want: 500, wantCode: dto.ErrorCodeInternalServer, wantMsg: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Success || body.Error == nil || body.Error.Code != tt.wantCode {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
			if tt.wantMsg != "" && body.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandleAPIErrorCarriesField(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewValidationError("closedReason", "closedReason is required when closing a job"))

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Field != "closedReason" {
		t.Errorf("field = %q, want closedReason", body.Error.Field)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json; charset=utf-8"}}
	payload, err := encodePayload(200, hdr, []byte(`{"data":1}`))
	if err != nil {
		t.Fatal(err)
	}
	status, got, body, ok := decodePayload(payload)
	if !ok || status != 200 || string(body) != `{"data":1}` || got.Get("Content-Type") != hdr.Get("Content-Type") {
		t.Fatalf("decodePayload = %d %v %q %v", status, got, body, ok)
	}

	if _, _, _, ok := decodePayload([]byte{0, 0}); ok {
		t.Error("short payload should not decode")
	}
	if _, _, _, ok := decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0}); ok {
		t.Error("payload with oversized header length should not decode")
	}
}

func TestCacheKeyDependsOnQuery(t *testing.T) {
	a := cacheKey("p", "/api/reports/overview", "")
	b := cacheKey("p", "/api/reports/overview", "x=1")
	if a == b {
		t.Error("different queries must not share a cache key")
	}
	if a != cacheKey("p", "/api/reports/overview", "") {
		t.Error("cache key must be stable")
	}
}

func TestDisabledRedisMiddlewarePassThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{Enabled: true, Capacity: 1}, nil, zerolog.Nop()))
	r.Use(ResponseCache(CacheConfig{Enabled: true}, nil, zerolog.Nop()))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
		if w.Header().Get("X-Cache") != "" || w.Header().Get("X-RateLimit-Limit") != "" {
			t.Error("no cache or rate limit headers expected without redis")
		}
	}
}

func TestAsInt64AndRateKey(t *testing.T) {
	if asInt64(int64(3)) != 3 || asInt64("7") != 7 || asInt64(2.0) != 2 || asInt64(nil) != 0 {
		t.Error("asInt64 conversions")
	}
	if got := rateKey("rl", "", "POST", "/api/auth/login"); got != "rl:ip:unknown:route:POST /api/auth/login" {
		t.Errorf("rateKey = %q", got)
	}
}

func TestBucketTTL(t *testing.T) {
	cfg := RateLimitConfig{Capacity: 20, RefillTokens: 1, RefillInterval: 3 * time.Second}
	if got := cfg.bucketTTL(); got != 63*time.Second {
		t.Errorf("bucketTTL = %v, want 63s", got)
	}
	if got := (RateLimitConfig{Capacity: 5}).bucketTTL(); got != time.Hour {
		t.Errorf("bucketTTL without refill = %v, want 1h", got)
	}
}
