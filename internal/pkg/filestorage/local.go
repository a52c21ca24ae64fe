package filestorage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yigit/recruitment/internal/pkg/logger"
)

const maxNameAttempts = 100

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

// NewLocalStorage creates a new LocalStorage rooted at basePath, creating it if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFileWithPath copies the upload to basePath/subPath/name. An existing file is never
// overwritten; a numeric suffix is added to name instead.
// The returned path is slash-separated and relative to basePath.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath, name string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name: %q", name)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, name, err := createExclusive(fullDirPath, name)
	if err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Str("name", name).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dst.Name()).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relative := path.Join(subPath, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relative).Msg("File saved successfully")
	return relative, nil
}

// createExclusive creates dir/name without replacing an existing file. On a clash it
// tries name_1.ext, name_2.ext and so on, and returns the name it actually used.
func createExclusive(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for i := 1; i <= maxNameAttempts; i++ {
		f, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, candidate, err
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
	return nil, name, fmt.Errorf("no free file name for %q after %d attempts", name, maxNameAttempts)
}

// DeleteFile removes a stored file. A missing file is not an error.
func (ls *LocalStorage) DeleteFile(relativePath string) error {
	physicalPath := ls.GetFullPath(relativePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", relativePath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath resolves a relative path inside basePath. Paths escaping basePath resolve to "".
func (ls *LocalStorage) GetFullPath(relativePath string) string {
	cleaned := path.Clean("/" + strings.ReplaceAll(relativePath, `\`, "/"))
	if cleaned == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(cleaned, "/")))
}
