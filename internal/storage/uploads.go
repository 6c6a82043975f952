package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const maxUploadSize = 5 << 20 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadStore writes admin-uploaded images to local disk and hands back the
// public URL they are served under.
type UploadStore struct {
	dir        string
	publicPath string
	logger     *zap.Logger
}

func NewUploadStore(dir, publicPath string, logger *zap.Logger) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &UploadStore{dir: dir, publicPath: publicPath, logger: logger}, nil
}

// Dir returns the local directory files are written to, for static serving.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save validates and persists one uploaded image. The stored name is the
// sanitized original base name with a timestamp suffix so repeat uploads of
// the same file never collide.
func (s *UploadStore) Save(header *multipart.FileHeader) (string, error) {
	if header.Size > maxUploadSize {
		return "", xerrors.InvalidInput("file too large, maximum size is 5MB")
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", xerrors.InvalidInput("invalid file type, only JPEG, PNG, WebP and GIF images are allowed")
	}

	src, err := header.Open()
	if err != nil {
		return "", xerrors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	name := buildFileName(header.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", xerrors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", xerrors.Wrap(err, "failed to write upload file")
	}

	url := s.publicPath + "/" + name
	s.logger.Info("image uploaded",
		zap.String("file", name),
		zap.Int64("size", header.Size))
	return url, nil
}

func buildFileName(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	stem = unsafeChars.ReplaceAllString(stem, "_")
	ext = unsafeChars.ReplaceAllString(ext, "")
	if stem == "" || stem == "." {
		stem = "upload"
	}

	return fmt.Sprintf("%s_%d%s", stem, time.Now().UnixMilli(), ext)
}
