package filestorage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/validation"
)

// DocumentTypeCV is the document type that selects the CV upload rules.
const DocumentTypeCV = "CV"

const (
	cvDir       = "cvs"
	documentDir = "documents"
	stampLayout = "20060102150405.000000"
)

var (
	cvExtensions       = []string{".pdf", ".doc", ".docx"}
	documentExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}
)

// UploadLimits carries the configured byte ceilings per document kind.
type UploadLimits struct {
	CVMaxBytes       int64
	DocumentMaxBytes int64
}

// IsCV reports whether documentType selects the CV rules.
func IsCV(documentType string) bool {
	return strings.EqualFold(strings.TrimSpace(documentType), DocumentTypeCV)
}

// ValidateUpload checks extension, size and, for PDFs, that the file parses with at least one page.
// It returns the lower-cased extension.
func ValidateUpload(fileHeader *multipart.FileHeader, documentType string, limits UploadLimits) (string, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return "", fmt.Errorf("%w: file is empty", apperrors.ErrValidationFailed)
	}
	if err := validateDocumentType(documentType); err != nil {
		return "", err
	}

	allowed, maxBytes := documentExtensions, limits.DocumentMaxBytes
	if IsCV(documentType) {
		allowed, maxBytes = cvExtensions, limits.CVMaxBytes
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !contains(allowed, ext) {
		return "", fmt.Errorf("%w: file type %q is not allowed, accepted: %s",
			apperrors.ErrValidationFailed, ext, strings.Join(allowed, ", "))
	}
	if fileHeader.Size > maxBytes {
		return "", fmt.Errorf("%w: file exceeds the maximum size of %d MB",
			apperrors.ErrValidationFailed, maxBytes/(1024*1024))
	}

	if ext == ".pdf" {
		if err := checkPDF(fileHeader); err != nil {
			return "", err
		}
	}
	return ext, nil
}

// validateDocumentType keeps the type usable as part of a stored file name.
func validateDocumentType(documentType string) error {
	if strings.TrimSpace(documentType) == "" {
		return fmt.Errorf("%w: documentType is required", apperrors.ErrValidationFailed)
	}
	if !validation.ValidDocumentType(documentType) {
		return fmt.Errorf("%w: documentType must be at most %d letters, digits, spaces, '_' or '-'",
			apperrors.ErrValidationFailed, validation.DocumentTypeMaxLength)
	}
	return nil
}

// BuildStoredName returns the storage directory and file name for an upload.
// The stamp carries microseconds so uploads within the same second get distinct names.
func BuildStoredName(candidateID int64, documentType, ext string, now time.Time) (dir, name string) {
	stamp := strings.Replace(now.Format(stampLayout), ".", "", 1)
	if IsCV(documentType) {
		return cvDir, fmt.Sprintf("%d_cv_%s%s", candidateID, stamp, ext)
	}
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(documentType)), " ", "_")
	return documentDir, fmt.Sprintf("%d_%s_%s%s", candidateID, slug, stamp, ext)
}

func checkPDF(fileHeader *multipart.FileHeader) (err error) {
	// the pdf reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: file is not a readable PDF", apperrors.ErrValidationFailed)
		}
	}()

	f, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: file is not a readable PDF", apperrors.ErrValidationFailed)
	}
	if reader.NumPage() < 1 {
		return fmt.Errorf("%w: PDF has no pages", apperrors.ErrValidationFailed)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
