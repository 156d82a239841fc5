package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/utils"
)

// allowedExtensions is the allow-list of attachment file extensions,
// matched case-insensitively and without the leading dot.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"pdf":  {},
}

// uploadFileStorage is the local-filesystem implementation of [FileStorage].
// All attachments live flat inside a single configured directory; task rows
// reference them by sanitized filename only, never by absolute path.
type uploadFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewUploadFileStorage constructs a [FileStorage] rooted at the configured
// upload directory. The directory itself is created lazily on first write.
func NewUploadFileStorage(cfg config.Files, logger *logger.Logger) FileStorage {
	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating upload file storage")
	return &uploadFileStorage{
		dir:    cfg.UploadDir,
		logger: logger,
	}
}

// SaveUpload validates and stores one uploaded attachment.
//
// The extension is checked against the allow-list before anything touches
// disk; the name is reduced by [utils.SanitizeFilename]; the upload
// directory is created if absent. The stored filename is returned for
// persisting on the task row.
//
// A later upload under the same sanitized name overwrites the earlier file.
//
// Errors:
//   - [ErrUnsupportedFileType]: extension not in the allow-list.
//   - [ErrInvalidFilename]: nothing usable remains after sanitizing.
func (s *uploadFileStorage) SaveUpload(ctx context.Context, name string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if !ExtensionAllowed(name) {
		return "", ErrUnsupportedFileType
	}

	sanitized := utils.SanitizeFilename(name)
	if sanitized == "" {
		return "", ErrInvalidFilename
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.SaveUpload").Str("dir", s.dir).Msg("error creating upload directory")
		return "", fmt.Errorf("error creating upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, sanitized))
	if err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.SaveUpload").Str("file", sanitized).Msg("error creating upload file")
		return "", fmt.Errorf("error creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.SaveUpload").Str("file", sanitized).Msg("error writing upload file")
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	log.Debug().Str("file", sanitized).Msg("upload stored")

	return sanitized, nil
}

// Open resolves name inside the upload directory and opens it for reading.
// The name is re-sanitized before joining so a crafted value can never
// escape the directory.
//
// Returns [ErrFileNotFound] when the file does not exist.
func (s *uploadFileStorage) Open(name string) (io.ReadSeekCloser, error) {
	sanitized := utils.SanitizeFilename(name)
	if sanitized == "" {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, sanitized))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("error opening upload file: %w", err)
	}

	return f, nil
}

// ExtensionAllowed reports whether name carries an extension from the
// attachment allow-list. The comparison is case-insensitive.
func ExtensionAllowed(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}

	_, ok := allowedExtensions[ext]
	return ok
}
