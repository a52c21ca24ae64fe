package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath/name and returns the relative path
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath, name string) (string, error)

	// DeleteFile removes a file previously returned by SaveFileWithPath
	DeleteFile(relativePath string) error

	// GetFullPath returns the full filesystem path for a stored relative path
	GetFullPath(relativePath string) string
}
