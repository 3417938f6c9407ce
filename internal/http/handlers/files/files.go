package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nftmedia/upload-api/internal/http/middleware"
	"github.com/nftmedia/upload-api/internal/services/store"
	"github.com/nftmedia/upload-api/internal/types"
	"github.com/nftmedia/upload-api/internal/utils/response"
)

type FileHandlers struct {
	store          *store.Store
	maxUploadBytes int64
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewFileHandlers creates a new file handlers instance
func NewFileHandlers(store *store.Store, maxUploadBytes int64) *FileHandlers {
	return &FileHandlers{
		store:          store,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload stores one uploaded media file under the album layout
// @Summary Upload a media file
// @Description Upload a track, cover or manifest file into an album's directory tree
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File payload"
// @Param album_id formData string true "Album identifier"
// @Param file_type formData string true "promo or albums"
// @Param category formData string true "tracks, cover or manifest"
// @Param track_number formData string false "Required when category=tracks"
// @Success 200 {object} UploadResponse "File stored"
// @Failure 400 {object} response.ErrorResponse "Validation failure"
// @Failure 500 {object} response.ErrorResponse "Filesystem failure"
// @Router /api/upload [post]
func (h *FileHandlers) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("no file uploaded")))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(fmt.Errorf("file read error: %w", err)))
			return
		}

		albumID := r.FormValue("album_id")
		if albumID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("album_id is required")))
			return
		}

		rawFileType := r.FormValue("file_type")
		if rawFileType == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("file_type is required")))
			return
		}
		fileType, err := types.ParseFileType(rawFileType)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		rawCategory := r.FormValue("category")
		if rawCategory == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("category is required")))
			return
		}
		category, err := types.ParseCategory(rawCategory)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		stored, err := h.store.Save(types.UploadRequest{
			AlbumID:          albumID,
			FileType:         fileType,
			Category:         category,
			TrackNumber:      r.FormValue("track_number"),
			OriginalFilename: header.Filename,
			Data:             data,
		})
		if err != nil {
			if store.IsValidationError(err) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		requestID, _ := middleware.GetRequestIDFromContext(r.Context())
		slog.Info("file saved",
			slog.String("request_id", requestID),
			slog.String("path", stored.Path),
			slog.Int("size", len(data)))

		response.WriteJSON(w, http.StatusOK, UploadResponse{
			Success:  true,
			URL:      stored.URL,
			Path:     stored.Path,
			Filename: stored.Filename,
		})
	}
}

// Delete removes an album's whole file tree
// @Summary Delete an album's files
// @Description Recursively delete every stored file of an album for one file type; repeatable, missing albums still report success
// @Tags files
// @Accept json
// @Produce json
// @Param request body types.DeleteRequest true "Album to delete"
// @Success 200 {object} DeleteResponse "Tree removed (or already absent)"
// @Failure 400 {object} response.ErrorResponse "Validation failure"
// @Failure 500 {object} response.ErrorResponse "Filesystem failure"
// @Router /api/delete [post]
func (h *FileHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("request body cannot be empty")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		validate := validator.New()
		if err := validate.Struct(req); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		deleted, err := h.store.DeleteAlbum(req.FileType, req.AlbumID)
		if err != nil {
			if store.IsValidationError(err) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		requestID, _ := middleware.GetRequestIDFromContext(r.Context())
		slog.Info("album deleted",
			slog.String("request_id", requestID),
			slog.String("path", deleted))

		response.WriteJSON(w, http.StatusOK, DeleteResponse{
			Success: true,
			Message: fmt.Sprintf("Deleted %q", deleted),
		})
	}
}
