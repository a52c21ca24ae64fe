package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/filestorage"
)

type fakeDocumentRepo struct {
	repositories.IDocumentRepository
	created []*models.Document
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *models.Document) error {
	d.ID = int64(len(r.created) + 1)
	r.created = append(r.created, d)
	return nil
}

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func newUploadService(t *testing.T, docs *fakeDocumentRepo) (*candidateServiceImpl, string) {
	t.Helper()
	base := t.TempDir()
	storage, err := filestorage.NewLocalStorage(base)
	if err != nil {
		t.Fatal(err)
	}
	candidates := newFakeCandidateRepo(&models.Candidate{ID: 5, UserID: 50})
	limits := filestorage.UploadLimits{CVMaxBytes: 1 << 20, DocumentMaxBytes: 1 << 20}
	svc := NewCandidateService(candidates, newFakeJobRepo(), nil, docs, storage,
		auth.NewAuthorizationService(candidates), limits, "http://localhost", zerolog.Nop()).(*candidateServiceImpl)
	return svc, base
}

func TestUploadDocumentSameInstantKeepsBothFiles(t *testing.T) {
	docs := &fakeDocumentRepo{}
	svc, base := newUploadService(t, docs)
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }
	p := auth.Principal{UserID: 50, Roles: []models.Role{models.RoleCandidate}}

	for _, content := range []string{"old cv", "new cv"} {
		if _, err := svc.UploadDocument(context.Background(), p, "cv", uploadHeader(t, "cv.docx", []byte(content))); err != nil {
			t.Fatalf("UploadDocument returned error: %v", err)
		}
	}

	if len(docs.created) != 2 {
		t.Fatalf("documents recorded = %d, want 2", len(docs.created))
	}
	if docs.created[0].FilePath == docs.created[1].FilePath {
		t.Fatalf("both documents point at %s", docs.created[0].FilePath)
	}
	for i, want := range []string{"old cv", "new cv"} {
		data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(docs.created[i].FilePath)))
		if err != nil || string(data) != want {
			t.Errorf("document %d holds %q (err %v), want %q", i, data, err, want)
		}
		if docs.created[i].DocumentType != filestorage.DocumentTypeCV {
			t.Errorf("document %d type = %q", i, docs.created[i].DocumentType)
		}
	}
}

func TestUploadDocumentRejectsUnsafeType(t *testing.T) {
	tests := []struct {
		name    string
		docType string
	}{
		{name: "slash", docType: "Offer/Letter"},
		{name: "backslash", docType: `..\..\etc`},
		{name: "parent directory", docType: "../cvs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := &fakeDocumentRepo{}
			svc, base := newUploadService(t, docs)
			p := auth.Principal{UserID: 50, Roles: []models.Role{models.RoleCandidate}}

			_, err := svc.UploadDocument(context.Background(), p, tt.docType, uploadHeader(t, "id.png", []byte("png")))
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want validation failure", err)
			}
			if len(docs.created) != 0 {
				t.Errorf("documents recorded = %d, want 0", len(docs.created))
			}
			entries, _ := os.ReadDir(base)
			if len(entries) != 0 {
				t.Errorf("storage should be untouched, found %d entries", len(entries))
			}
		})
	}
}
