// internal/handler/campaign_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spocklabs/spock-admin/internal/schema"
	"github.com/spocklabs/spock-admin/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers.
type CampaignHandler struct {
	Service *service.CampaignService
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{Service: svc}
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req schema.CampaignCreateRequest
	if err := schema.Decode(r.Body, &req); err != nil {
		writeError(w, err, "Error creating campaign")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err, "Error creating campaign")
		return
	}

	campaign, err := h.Service.Create(&req)
	if err != nil {
		writeError(w, err, "Error creating campaign")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"campaign": campaign})
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.Get(id)
	if err != nil {
		writeError(w, err, "Error getting campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.List()
	if err != nil {
		writeError(w, err, "Error getting campaigns")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": campaigns})
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var req schema.CampaignUpdateRequest
	if err := schema.Decode(r.Body, &req); err != nil {
		writeError(w, err, "Error updating campaign")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err, "Error updating campaign")
		return
	}

	campaign, err := h.Service.Update(id, &req)
	if err != nil {
		writeError(w, err, "Error updating campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		writeError(w, err, "Error deleting campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListContent returns all content for a campaign, sorted by display order.
func (h *CampaignHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	contents, err := h.Service.ListContent(id)
	if err != nil {
		writeError(w, err, "Error getting content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contents": contents})
}

func (h *CampaignHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.GetActive()
	if err != nil {
		writeError(w, err, "Error getting active campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
}
