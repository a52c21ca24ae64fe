package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/controllers"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/middleware"
	pkgauth "github.com/yigit/recruitment/internal/pkg/auth"
	"github.com/yigit/recruitment/internal/pkg/websocket"
)

func newTestRouter(t *testing.T) (*gin.Engine, *pkgauth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := pkgauth.NewJWTService(pkgauth.JWTConfig{SecretKey: "routes-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	log := zerolog.Nop()

	// Services are nil: every request below is rejected by middleware before a handler runs.
	h := Handlers{
		Auth:         controllers.NewAuthController(nil, log),
		User:         controllers.NewUserController(nil, log),
		Candidate:    controllers.NewCandidateController(nil, log),
		Job:          controllers.NewJobController(nil, nil, log),
		Interview:    controllers.NewInterviewController(nil, log),
		Offer:        controllers.NewOfferController(nil, log),
		Notification: controllers.NewNotificationController(nil, log),
		Dashboard:    controllers.NewDashboardController(nil, log),
		Report:       controllers.NewReportController(nil, log),
		WebSocket:    websocket.NewHandler(websocket.NewHub(log), log),
	}

	router := gin.New()
	SetupRouter(router, h, Middlewares{Auth: middleware.NewAuthMiddleware(jwt)})
	return router, jwt
}

func bearer(t *testing.T, jwt *pkgauth.JWTService, roles ...models.Role) string {
	t.Helper()
	token, _, err := jwt.GenerateToken(&models.User{ID: 3, Username: "u", FullName: "U", Email: "u@example.com", Roles: roles})
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func TestRoleGates(t *testing.T) {
	router, jwt := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		roles      []models.Role
		wantStatus int
	}{
		{name: "health is public", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "admin without token", method: http.MethodGet, path: "/api/admin/all-users", wantStatus: http.StatusUnauthorized},
		{name: "admin as candidate", method: http.MethodGet, path: "/api/admin/all-users", roles: []models.Role{models.RoleCandidate}, wantStatus: http.StatusForbidden},
		{name: "candidate area as HR", method: http.MethodGet, path: "/api/candidate/jobs", roles: []models.Role{models.RoleHR}, wantStatus: http.StatusForbidden},
		{name: "jobs as candidate", method: http.MethodGet, path: "/api/jobs", roles: []models.Role{models.RoleCandidate}, wantStatus: http.StatusForbidden},
		{name: "create job as interviewer", method: http.MethodPost, path: "/api/jobs", roles: []models.Role{models.RoleInterviewer}, wantStatus: http.StatusForbidden},
		{name: "schedule as reviewer", method: http.MethodPost, path: "/api/interview/schedule", roles: []models.Role{models.RoleReviewer}, wantStatus: http.StatusForbidden},
		{name: "delete interview as HR", method: http.MethodDelete, path: "/api/interview/1", roles: []models.Role{models.RoleHR}, wantStatus: http.StatusForbidden},
		{name: "offers as candidate", method: http.MethodPost, path: "/api/offers", roles: []models.Role{models.RoleCandidate}, wantStatus: http.StatusForbidden},
		{name: "hr dashboard as recruiter", method: http.MethodGet, path: "/api/dashboard/hr", roles: []models.Role{models.RoleRecruiter}, wantStatus: http.StatusForbidden},
		{name: "verify document as reviewer", method: http.MethodPut, path: "/api/candidates/documents/1/verify", roles: []models.Role{models.RoleReviewer}, wantStatus: http.StatusForbidden},
		{name: "reports without token", method: http.MethodGet, path: "/api/reports/overview", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if len(tt.roles) > 0 {
				req.Header.Set("Authorization", bearer(t, jwt, tt.roles...))
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestInvalidIDRejectedBeforeService(t *testing.T) {
	router, jwt := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-number", nil)
	req.Header.Set("Authorization", bearer(t, jwt, models.RoleHR))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
