package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mustafayildiz-m/iw-project/pkg/storage"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// FileKind classifies an upload by its extension.
type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindVideo FileKind = "video"
	FileKindPDF   FileKind = "pdf"
)

var (
	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	}
	videoExtensions = map[string]bool{
		".mp4": true, ".mov": true, ".avi": true, ".webm": true,
	}
)

// Upload directories per file kind.
const (
	DirPostImages = "user_posts_img"
	DirPostVideos = "user_posts_videos"
	DirPDFs       = "pdfs"
)

// urlExpiry applies only when the backend presigns URLs; local storage and
// public-URL S3 setups ignore it.
const urlExpiry = 24 * time.Hour

// ClassifyFile maps a filename to its kind by extension. Unknown extensions
// are rejected.
func ClassifyFile(filename string) (FileKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return FileKindImage, nil
	case videoExtensions[ext]:
		return FileKindVideo, nil
	case ext == ".pdf":
		return FileKindPDF, nil
	default:
		return "", ErrUnsupportedFileType
	}
}

// UploadService validates and stores uploaded files.
type UploadService struct {
	store   storage.Storage
	maxSize int64
}

// NewUploadService creates a new upload service.
func NewUploadService(store storage.Storage, maxSize int64) *UploadService {
	return &UploadService{
		store:   store,
		maxSize: maxSize,
	}
}

// Store validates the file and writes it under the directory matching its
// kind. Validation happens before anything touches the storage backend. The
// returned URL is where the file is served from.
func (s *UploadService) Store(ctx context.Context, filename string, size int64, contentType string, r io.Reader) (FileKind, string, error) {
	kind, err := ClassifyFile(filename)
	if err != nil {
		return "", "", err
	}
	if size > s.maxSize {
		return "", "", ErrFileTooLarge
	}

	var dir string
	switch kind {
	case FileKindImage:
		dir = DirPostImages
	case FileKindVideo:
		dir = DirPostVideos
	case FileKindPDF:
		dir = DirPDFs
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%d-%s%s", dir, time.Now().UnixMilli(), uuid.New().String(), ext)

	if err := s.store.Write(ctx, key, r, size, contentType); err != nil {
		return "", "", err
	}

	url, err := s.store.GetURL(ctx, key, urlExpiry)
	if err != nil {
		return "", "", err
	}
	return kind, url, nil
}
