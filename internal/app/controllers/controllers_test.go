package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Each stub embeds its service interface; calling a method that is not overridden panics,
// which flags handlers reaching for something unexpected.

type stubAuthService struct {
	services.AuthService
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.LoginResponse{Success: true, Token: "tok", User: dto.UserResponse{Username: req.Username}}, nil
}

type stubCandidateService struct {
	services.CandidateService
	applied    bool
	lastFilter dto.JobFilter
	lastSource string
	lastType   string
}

func (s *stubCandidateService) ApplyForJob(_ context.Context, _ auth.Principal, _ int64, source string) (bool, error) {
	s.lastSource = source
	return s.applied, nil
}

func (s *stubCandidateService) GetOpenJobs(_ context.Context, f dto.JobFilter) ([]dto.JobResponse, dto.PaginationInfo, error) {
	s.lastFilter = f
	return []dto.JobResponse{{ID: 1, Title: "Go Developer"}}, dto.PaginationInfo{CurrentPage: f.Page, PageSize: f.PageSize, TotalPages: 1, TotalItems: 1}, nil
}

func (s *stubCandidateService) UploadDocument(_ context.Context, _ auth.Principal, documentType string, _ *multipart.FileHeader) (*dto.DocumentResponse, error) {
	s.lastType = documentType
	return &dto.DocumentResponse{ID: 9, DocumentType: documentType}, nil
}

type stubInterviewService struct {
	services.InterviewService
	lastStatus string
	err        error
}

func (s *stubInterviewService) UpdateStatus(_ context.Context, _ auth.Principal, id int64, status string) (*dto.InterviewResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastStatus = status
	return &dto.InterviewResponse{ID: id, Status: status}, nil
}

func withPrincipal(p auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, p.UserID)
		c.Set(middleware.ContextPrincipal, p)
		c.Next()
	}
}

func candidatePrincipal() auth.Principal {
	return auth.NewPrincipal(7, "jane", "Jane Doe", []string{"Candidate"})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
	}{
		{name: "success", body: `{"username":"admin","password":"admin123"}`, wantStatus: http.StatusOK},
		{name: "missing password", body: `{"username":"admin"}`, wantStatus: http.StatusBadRequest},
		{name: "bad credentials", body: `{"username":"admin","password":"nope"}`, loginErr: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAuthController(&stubAuthService{loginErr: tt.loginErr}, zerolog.Nop())
			r := gin.New()
			r.POST("/auth/login", c.Login)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				var resp dto.LoginResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				if !resp.Success || resp.Token != "tok" || resp.User.Username != "admin" {
					t.Errorf("unexpected login response %+v", resp)
				}
			}
		})
	}
}

func TestApplyForJob(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		applied    bool
		wantStatus int
		wantSource string
	}{
		{name: "first application", path: "/candidate/apply/3", applied: true, wantStatus: http.StatusOK},
		{name: "with source", path: "/candidate/apply/3", body: `{"source":"LinkedIn"}`, applied: true, wantStatus: http.StatusOK, wantSource: "LinkedIn"},
		{name: "already applied", path: "/candidate/apply/3", applied: false, wantStatus: http.StatusBadRequest},
		{name: "bad job id", path: "/candidate/apply/abc", applied: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubCandidateService{applied: tt.applied}
			c := NewCandidateController(svc, zerolog.Nop())
			r := gin.New()
			r.POST("/candidate/apply/:jobId", withPrincipal(candidatePrincipal()), c.ApplyForJob)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if svc.lastSource != tt.wantSource {
				t.Errorf("source = %q, want %q", svc.lastSource, tt.wantSource)
			}
			if tt.name == "already applied" {
				if msg := decodeError(t, w).Error.Message; msg != "Already applied for this job" {
					t.Errorf("message = %q", msg)
				}
			}
		})
	}
}

func TestGetOpenJobsParsesFilters(t *testing.T) {
	svc := &stubCandidateService{}
	c := NewCandidateController(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/candidate/jobs", c.GetOpenJobs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidate/jobs?page=2&pageSize=5&location=Ist&experience=3&skills=Go,%20SQL,&search=dev", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	f := svc.lastFilter
	if f.Page != 2 || f.PageSize != 5 || f.Location != "Ist" || f.Search != "dev" {
		t.Errorf("unexpected filter %+v", f)
	}
	if f.Experience == nil || *f.Experience != 3 {
		t.Errorf("experience = %v, want 3", f.Experience)
	}
	if len(f.Skills) != 2 || f.Skills[0] != "Go" || f.Skills[1] != "SQL" {
		t.Errorf("skills = %v", f.Skills)
	}

	var resp struct {
		Data       []dto.JobResponse  `json:"data"`
		Pagination dto.PaginationInfo `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Pagination.CurrentPage != 2 {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidate/jobs?experience=-1", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative experience: status = %d, want 400", w.Code)
	}
}

func TestUploadCVForcesDocumentType(t *testing.T) {
	svc := &stubCandidateService{}
	c := NewCandidateController(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/candidate/upload-cv", withPrincipal(candidatePrincipal()), c.UploadCV)
	r.POST("/candidate/upload-document", withPrincipal(candidatePrincipal()), c.UploadDocument)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "resume.pdf")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("%PDF-1.4"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/candidate/upload-cv", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if svc.lastType != "CV" {
		t.Errorf("document type = %q, want CV", svc.lastType)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/candidate/upload-document", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing file: status = %d, want 400", w.Code)
	}
}

func TestUpdateInterviewStatus(t *testing.T) {
	hr := auth.NewPrincipal(2, "hr", "HR Person", []string{"HR"})

	tests := []struct {
		name       string
		principal  bool
		body       string
		err        error
		wantStatus int
	}{
		{name: "updated", principal: true, body: `{"status":"Selected"}`, wantStatus: http.StatusOK},
		{name: "missing status", principal: true, body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown interview", principal: true, body: `{"status":"Selected"}`, err: apperrors.ErrInterviewNotFound, wantStatus: http.StatusNotFound},
		{name: "no principal", principal: false, body: `{"status":"Selected"}`, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubInterviewService{err: tt.err}
			c := NewInterviewController(svc, zerolog.Nop())
			r := gin.New()
			handlers := []gin.HandlerFunc{c.UpdateInterviewStatus}
			if tt.principal {
				handlers = append([]gin.HandlerFunc{withPrincipal(hr)}, handlers...)
			}
			r.PUT("/interview/:id/status", handlers...)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/interview/5/status", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && svc.lastStatus != "Selected" {
				t.Errorf("service saw status %q", svc.lastStatus)
			}
		})
	}
}
