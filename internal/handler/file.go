package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/templui/notebook/internal/model"
	"github.com/templui/notebook/internal/repository"
	"github.com/templui/notebook/internal/service"
)

type FileHandler struct {
	fileService *service.FileService
	maxMemory   int64
}

func NewFileHandler(fileService *service.FileService, maxMemory int64) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxMemory:   maxMemory,
	}
}

type uploadResponse struct {
	*model.File
	URL string `json:"url"`
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.fileService.Files()
	if err != nil {
		slog.Error("failed to list files", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, files)
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(h.maxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	uploaded, err := h.fileService.Upload(file, header, r.FormValue("name"))
	if err != nil {
		slog.Error("failed to upload file", "error", err, "original_name", header.Filename)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("file uploaded", "id", uploaded.ID, "filename", uploaded.Filename, "size", uploaded.Size)
	writeJSON(w, http.StatusOK, uploadResponse{File: uploaded, URL: h.fileService.URL(uploaded)})
}

func (h *FileHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := fileID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	file, err := h.fileService.ByID(id)
	if errors.Is(err, repository.ErrFileNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to get file", "error", err, "file_id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, file)
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := fileID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	err := h.fileService.Delete(id)
	if errors.Is(err, repository.ErrFileNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete file", "error", err, "file_id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// fileID parses the {id} path value. Ids that are not integers cannot match
// any row, so callers answer them with 404.
func fileID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
