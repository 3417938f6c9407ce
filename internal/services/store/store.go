package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nftmedia/upload-api/internal/config"
	"github.com/nftmedia/upload-api/internal/types"
)

// Store writes and removes album files under a single root directory.
// The filesystem is the only persistent state this service has.
type Store struct {
	root    string
	baseURL string
	owner   Owner
}

// New creates a file store rooted at cfg.Root.
func New(cfg *config.Storage, owner Owner) (*Store, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}

	// Ensure the root exists up front so the first upload doesn't pay for it.
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &Store{
		root:    root,
		baseURL: cfg.PublicBaseURL,
		owner:   owner,
	}, nil
}

// Root returns the absolute storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Save resolves the upload's target path, creates any missing parent
// directories and writes the payload, replacing whatever was there before.
// Uploading the same album/category/track combination twice is an
// overwrite, not a conflict.
func (s *Store) Save(req types.UploadRequest) (*types.StoredFile, error) {
	rel, filename, err := Resolve(req)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(target, req.Data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	// Ownership handoff to the web server user is best-effort and must
	// never fail the upload.
	if err := s.owner.Chown(target); err != nil {
		slog.Warn("failed to chown (not critical)", slog.String("error", err.Error()))
	}

	return &types.StoredFile{
		Path:     target,
		URL:      s.baseURL + "/" + rel,
		Filename: filename,
	}, nil
}

// DeleteAlbum removes the album directory for the given file type and
// everything beneath it. A missing directory is success: deletion is
// idempotent and safe to repeat.
func (s *Store) DeleteAlbum(fileType types.FileType, albumID string) (string, error) {
	rel, err := ResolveAlbumDir(fileType, albumID)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("failed to delete directory: %w", err)
	}

	return target, nil
}
