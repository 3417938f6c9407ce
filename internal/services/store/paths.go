package store

import (
	"errors"
	"path"
	"strings"

	"github.com/nftmedia/upload-api/internal/types"
)

var (
	ErrInvalidAlbumID     = errors.New("album_id must be a single non-empty path segment")
	ErrMissingTrackNumber = errors.New("track_number is required for tracks")
	ErrInvalidTrackNumber = errors.New("track_number must be a single non-empty path segment")
	ErrMissingExtension   = errors.New("original filename has no extension")
)

// IsValidationError reports whether err is caused by bad request input
// rather than a filesystem failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAlbumID) ||
		errors.Is(err, ErrMissingTrackNumber) ||
		errors.Is(err, ErrInvalidTrackNumber) ||
		errors.Is(err, ErrMissingExtension)
}

// validSegment reports whether s is usable as exactly one directory or
// filename segment. Anything that could splice extra path components in
// (separators, "..", NUL) is rejected, so joining validated segments can
// never escape the storage root.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}

// extension returns the lowercased suffix after the last dot of filename.
func extension(filename string) (string, error) {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return "", ErrMissingExtension
	}
	ext := strings.ToLower(filename[idx+1:])
	if !validSegment(ext) {
		return "", ErrMissingExtension
	}
	return ext, nil
}

// Resolve maps an upload's logical parameters to its slash-separated path
// relative to the storage root, plus the bare filename. Pure computation:
// nothing here touches the filesystem.
func Resolve(req types.UploadRequest) (rel string, filename string, err error) {
	if !validSegment(req.AlbumID) {
		return "", "", ErrInvalidAlbumID
	}

	dir := path.Join(string(req.FileType), req.AlbumID)

	switch req.Category {
	case types.CategoryTracks:
		if req.TrackNumber == "" {
			return "", "", ErrMissingTrackNumber
		}
		if !validSegment(req.TrackNumber) {
			return "", "", ErrInvalidTrackNumber
		}
		ext, err := extension(req.OriginalFilename)
		if err != nil {
			return "", "", err
		}
		// Track numbers are used verbatim; callers decide on zero-padding.
		filename = req.TrackNumber + "." + ext
		dir = path.Join(dir, "tracks")
	case types.CategoryManifest:
		filename = "manifest.json"
	default:
		ext, err := extension(req.OriginalFilename)
		if err != nil {
			return "", "", err
		}
		filename = "cover." + ext
	}

	return path.Join(dir, filename), filename, nil
}

// ResolveAlbumDir maps a delete request to the album directory relative to
// the storage root, covering both the promo and albums variants.
func ResolveAlbumDir(fileType types.FileType, albumID string) (string, error) {
	if !validSegment(albumID) {
		return "", ErrInvalidAlbumID
	}
	return path.Join(string(fileType), albumID), nil
}
