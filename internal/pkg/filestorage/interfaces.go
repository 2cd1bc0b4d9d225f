package filestorage

import (
	"errors"
	"mime/multipart"
)

// ErrInvalidPath is returned for storage paths that escape the storage root.
var ErrInvalidPath = errors.New("invalid storage path")

// FileStorage defines the interface for file storage operations. Paths are
// relative to the storage root, e.g. "news/2f1c3d.jpg", and are what entities
// keep in their image and file columns.
type FileStorage interface {
	// SaveFileWithPath stores the upload under folder and returns its storage path.
	SaveFileWithPath(fileHeader *multipart.FileHeader, folder string) (string, error)

	// DeleteFile removes a stored file. Missing files are not an error.
	DeleteFile(path string) error

	// URL returns the public URL of a storage path.
	URL(path string) string

	// GetFullPath returns the filesystem location of a storage path.
	GetFullPath(path string) (string, error)
}
