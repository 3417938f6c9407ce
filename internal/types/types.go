package types

import (
	"encoding/json"
	"fmt"
)

// FileType is the top-level asset class an album's files belong to.
type FileType string

const (
	FileTypePromo  FileType = "promo"
	FileTypeAlbums FileType = "albums"
)

// Category distinguishes what an uploaded file is within its album.
type Category string

const (
	CategoryTracks   Category = "tracks"
	CategoryCover    Category = "cover"
	CategoryManifest Category = "manifest"
)

// ParseFileType rejects anything outside the closed set of file types.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case FileTypePromo, FileTypeAlbums:
		return FileType(s), nil
	default:
		return "", fmt.Errorf("file_type must be 'promo' or 'albums'")
	}
}

// ParseCategory rejects anything outside the closed set of categories.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTracks, CategoryCover, CategoryManifest:
		return Category(s), nil
	default:
		return "", fmt.Errorf("category must be 'tracks', 'cover', or 'manifest'")
	}
}

// UnmarshalJSON makes invalid file types fail at decode time instead of
// deep inside path construction.
func (ft *FileType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFileType(s)
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}

// UploadRequest carries the logical parameters of one multipart upload.
type UploadRequest struct {
	AlbumID          string
	FileType         FileType
	Category         Category
	TrackNumber      string
	OriginalFilename string
	Data             []byte
}

// DeleteRequest asks for removal of one album's whole file tree.
type DeleteRequest struct {
	AlbumID  string   `json:"album_id" validate:"required"`
	FileType FileType `json:"file_type" validate:"required"`
}

// StoredFile describes where an upload landed.
type StoredFile struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
