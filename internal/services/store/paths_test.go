package store

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nftmedia/upload-api/internal/types"
)

func TestResolve_Layout(t *testing.T) {
	tests := []struct {
		name         string
		req          types.UploadRequest
		wantRel      string
		wantFilename string
	}{
		{
			name: "promo track",
			req: types.UploadRequest{
				AlbumID:          "album123",
				FileType:         types.FileTypePromo,
				Category:         types.CategoryTracks,
				TrackNumber:      "01",
				OriginalFilename: "song.mp3",
			},
			wantRel:      "promo/album123/tracks/01.mp3",
			wantFilename: "01.mp3",
		},
		{
			name: "albums cover",
			req: types.UploadRequest{
				AlbumID:          "a1",
				FileType:         types.FileTypeAlbums,
				Category:         types.CategoryCover,
				OriginalFilename: "front.jpg",
			},
			wantRel:      "albums/a1/cover.jpg",
			wantFilename: "cover.jpg",
		},
		{
			name: "manifest ignores original filename",
			req: types.UploadRequest{
				AlbumID:          "a1",
				FileType:         types.FileTypePromo,
				Category:         types.CategoryManifest,
				OriginalFilename: "whatever",
			},
			wantRel:      "promo/a1/manifest.json",
			wantFilename: "manifest.json",
		},
		{
			name: "extension is lowercased",
			req: types.UploadRequest{
				AlbumID:          "a1",
				FileType:         types.FileTypePromo,
				Category:         types.CategoryCover,
				OriginalFilename: "SCAN.JPG",
			},
			wantRel:      "promo/a1/cover.jpg",
			wantFilename: "cover.jpg",
		},
		{
			name: "last suffix wins for multi-dot names",
			req: types.UploadRequest{
				AlbumID:          "a1",
				FileType:         types.FileTypeAlbums,
				Category:         types.CategoryTracks,
				TrackNumber:      "7",
				OriginalFilename: "mix.final.flac",
			},
			wantRel:      "albums/a1/tracks/7.flac",
			wantFilename: "7.flac",
		},
		{
			name: "track number used verbatim without padding",
			req: types.UploadRequest{
				AlbumID:          "a1",
				FileType:         types.FileTypePromo,
				Category:         types.CategoryTracks,
				TrackNumber:      "1",
				OriginalFilename: "t.mp3",
			},
			wantRel:      "promo/a1/tracks/1.mp3",
			wantFilename: "1.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, filename, err := Resolve(tt.req)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if rel != tt.wantRel {
				t.Errorf("rel = %q, want %q", rel, tt.wantRel)
			}
			if filename != tt.wantFilename {
				t.Errorf("filename = %q, want %q", filename, tt.wantFilename)
			}
		})
	}
}

func TestResolve_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		req     types.UploadRequest
		wantErr error
	}{
		{
			name:    "empty album id",
			req:     types.UploadRequest{AlbumID: "", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "c.jpg"},
			wantErr: ErrInvalidAlbumID,
		},
		{
			name:    "dot dot album id",
			req:     types.UploadRequest{AlbumID: "..", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "c.jpg"},
			wantErr: ErrInvalidAlbumID,
		},
		{
			name:    "album id with slash",
			req:     types.UploadRequest{AlbumID: "../etc", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "c.jpg"},
			wantErr: ErrInvalidAlbumID,
		},
		{
			name:    "album id with backslash",
			req:     types.UploadRequest{AlbumID: `a\b`, FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "c.jpg"},
			wantErr: ErrInvalidAlbumID,
		},
		{
			name:    "album id with null byte",
			req:     types.UploadRequest{AlbumID: "a\x00b", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "c.jpg"},
			wantErr: ErrInvalidAlbumID,
		},
		{
			name:    "absolute album id",
			req:     types.UploadRequest{AlbumID: "/data", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "c.jpg"},
			wantErr: ErrInvalidAlbumID,
		},
		{
			name:    "missing track number",
			req:     types.UploadRequest{AlbumID: "a1", FileType: types.FileTypePromo, Category: types.CategoryTracks, OriginalFilename: "t.mp3"},
			wantErr: ErrMissingTrackNumber,
		},
		{
			name:    "track number with traversal",
			req:     types.UploadRequest{AlbumID: "a1", FileType: types.FileTypePromo, Category: types.CategoryTracks, TrackNumber: "../01", OriginalFilename: "t.mp3"},
			wantErr: ErrInvalidTrackNumber,
		},
		{
			name:    "no extension",
			req:     types.UploadRequest{AlbumID: "a1", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "cover"},
			wantErr: ErrMissingExtension,
		},
		{
			name:    "trailing dot",
			req:     types.UploadRequest{AlbumID: "a1", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "cover."},
			wantErr: ErrMissingExtension,
		},
		{
			name:    "extension with separator",
			req:     types.UploadRequest{AlbumID: "a1", FileType: types.FileTypePromo, Category: types.CategoryCover, OriginalFilename: "a.jpg/evil"},
			wantErr: ErrMissingExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolve(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve error = %v, want %v", err, tt.wantErr)
			}
			if !IsValidationError(err) {
				t.Errorf("expected %v to be a validation error", err)
			}
		})
	}
}

// Every accepted combination must resolve under the root.
func TestResolve_NeverEscapesRoot(t *testing.T) {
	root := "/data/nft"

	albumIDs := []string{"album123", "a..b", "weird name", "ümläut", "UPPER", "0"}
	trackNumbers := []string{"01", "1", "99", "bonus"}

	for _, ft := range []types.FileType{types.FileTypePromo, types.FileTypeAlbums} {
		for _, cat := range []types.Category{types.CategoryTracks, types.CategoryCover, types.CategoryManifest} {
			for _, id := range albumIDs {
				for _, tn := range trackNumbers {
					rel, _, err := Resolve(types.UploadRequest{
						AlbumID:          id,
						FileType:         ft,
						Category:         cat,
						TrackNumber:      tn,
						OriginalFilename: "file.mp3",
					})
					if err != nil {
						t.Fatalf("Resolve(%q, %q, %q, %q) returned error: %v", ft, id, cat, tn, err)
					}
					abs := filepath.Join(root, filepath.FromSlash(rel))
					if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
						t.Fatalf("resolved path %q escapes root %q", abs, root)
					}
				}
			}
		}
	}
}

func TestResolveAlbumDir(t *testing.T) {
	rel, err := ResolveAlbumDir(types.FileTypeAlbums, "album123")
	if err != nil {
		t.Fatalf("ResolveAlbumDir returned error: %v", err)
	}
	if rel != "albums/album123" {
		t.Errorf("rel = %q, want %q", rel, "albums/album123")
	}

	if _, err := ResolveAlbumDir(types.FileTypePromo, "../album123"); !errors.Is(err, ErrInvalidAlbumID) {
		t.Fatalf("expected ErrInvalidAlbumID, got %v", err)
	}
}
