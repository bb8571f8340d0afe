// internal/handler/content_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spocklabs/spock-admin/internal/schema"
	"github.com/spocklabs/spock-admin/internal/service"
)

// ContentHandler holds the dependencies for content-related HTTP handlers.
type ContentHandler struct {
	Service *service.ContentService
}

func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{Service: svc}
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req schema.ContentCreateRequest
	if err := schema.Decode(r.Body, &req); err != nil {
		writeError(w, err, "Error creating content")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err, "Error creating content")
		return
	}

	content, err := h.Service.Create(&req)
	if err != nil {
		writeError(w, err, "Error creating content")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"content": content})
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
		return
	}

	content, err := h.Service.Get(id)
	if err != nil {
		writeError(w, err, "Error getting content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content": content})
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	contents, err := h.Service.List()
	if err != nil {
		writeError(w, err, "Error getting content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contents": contents})
}

func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
		return
	}

	var req schema.ContentUpdateRequest
	if err := schema.Decode(r.Body, &req); err != nil {
		writeError(w, err, "Error updating content")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err, "Error updating content")
		return
	}

	content, err := h.Service.Update(id, &req)
	if err != nil {
		writeError(w, err, "Error updating content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content": content})
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		writeError(w, err, "Error deleting content")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
