package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/spocklabs/spock-admin/internal/apperrors"
	"github.com/spocklabs/spock-admin/internal/handler"
	"github.com/spocklabs/spock-admin/internal/model"
	"github.com/spocklabs/spock-admin/internal/repository"
	"github.com/spocklabs/spock-admin/internal/service"
)

// memStore is an in-memory stand-in for Postgres that keeps the same
// contract as the real repositories: activating a campaign deactivates the
// rest, deleting a campaign cascades to its content, and the (campaign_id,
// order) pair stays unique.
type memStore struct {
	campaignSeq int
	contentSeq  int
	campaigns   map[int]*model.Campaign
	contents    map[int]*model.Content
}

func newMemStore() *memStore {
	return &memStore{
		campaigns: map[int]*model.Campaign{},
		contents:  map[int]*model.Content{},
	}
}

type memCampaignRepo struct{ store *memStore }

var _ repository.CampaignRepositoryInterface = (*memCampaignRepo)(nil)

func (r *memCampaignRepo) Create(c *model.Campaign) error {
	if r.hasName(c.Name, 0) {
		return apperrors.NewDuplicateCampaignName()
	}
	if c.Active {
		r.deactivateAll(0)
	}
	r.store.campaignSeq++
	c.ID = r.store.campaignSeq
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	copied := *c
	r.store.campaigns[c.ID] = &copied
	return nil
}

func (r *memCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := r.store.campaigns[id]
	if !ok {
		return nil, apperrors.NewCampaignNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (r *memCampaignRepo) GetActive() (*model.Campaign, error) {
	var active *model.Campaign
	for _, c := range r.store.campaigns {
		if c.Active && (active == nil || c.ID < active.ID) {
			active = c
		}
	}
	if active == nil {
		return nil, apperrors.NewActiveCampaignNotFound()
	}
	copied := *active
	return &copied, nil
}

func (r *memCampaignRepo) List() ([]*model.Campaign, error) {
	out := make([]*model.Campaign, 0, len(r.store.campaigns))
	for _, c := range r.store.campaigns {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCampaignRepo) Update(c *model.Campaign) error {
	if _, ok := r.store.campaigns[c.ID]; !ok {
		return apperrors.NewCampaignNotFound(c.ID)
	}
	if r.hasName(c.Name, c.ID) {
		return apperrors.NewDuplicateCampaignName()
	}
	if c.Active {
		r.deactivateAll(c.ID)
	}
	c.UpdatedAt = time.Now().UTC()
	copied := *c
	r.store.campaigns[c.ID] = &copied
	return nil
}

func (r *memCampaignRepo) Delete(id int) error {
	if _, ok := r.store.campaigns[id]; !ok {
		return apperrors.NewCampaignNotFound(id)
	}
	delete(r.store.campaigns, id)
	for cid, c := range r.store.contents {
		if c.CampaignID == id {
			delete(r.store.contents, cid)
		}
	}
	return nil
}

func (r *memCampaignRepo) NameExists(name string, excludeID int) (bool, error) {
	return r.hasName(name, excludeID), nil
}

func (r *memCampaignRepo) hasName(name string, excludeID int) bool {
	for _, c := range r.store.campaigns {
		if c.Name == name && c.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *memCampaignRepo) deactivateAll(excludeID int) {
	for _, c := range r.store.campaigns {
		if c.ID != excludeID {
			c.Active = false
		}
	}
}

type memContentRepo struct{ store *memStore }

var _ repository.ContentRepositoryInterface = (*memContentRepo)(nil)

func (r *memContentRepo) Create(c *model.Content) error {
	if _, ok := r.store.campaigns[c.CampaignID]; !ok {
		return apperrors.NewCampaignNotFound(c.CampaignID)
	}
	if r.hasOrder(c.CampaignID, c.Order, 0) {
		return apperrors.NewDuplicateContentOrder(c.Order)
	}
	r.store.contentSeq++
	c.ID = r.store.contentSeq
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	copied := *c
	r.store.contents[c.ID] = &copied
	return nil
}

func (r *memContentRepo) GetByID(id int) (*model.Content, error) {
	c, ok := r.store.contents[id]
	if !ok {
		return nil, apperrors.NewContentNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (r *memContentRepo) List() ([]*model.Content, error) {
	out := make([]*model.Content, 0, len(r.store.contents))
	for _, c := range r.store.contents {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memContentRepo) ListByCampaign(campaignID int) ([]*model.Content, error) {
	out := []*model.Content{}
	for _, c := range r.store.contents {
		if c.CampaignID == campaignID {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memContentRepo) Update(c *model.Content) error {
	if _, ok := r.store.contents[c.ID]; !ok {
		return apperrors.NewContentNotFound(c.ID)
	}
	if r.hasOrder(c.CampaignID, c.Order, c.ID) {
		return apperrors.NewDuplicateContentOrder(c.Order)
	}
	c.UpdatedAt = time.Now().UTC()
	copied := *c
	r.store.contents[c.ID] = &copied
	return nil
}

func (r *memContentRepo) Delete(id int) error {
	if _, ok := r.store.contents[id]; !ok {
		return apperrors.NewContentNotFound(id)
	}
	delete(r.store.contents, id)
	return nil
}

func (r *memContentRepo) OrderExists(campaignID, order, excludeID int) (bool, error) {
	return r.hasOrder(campaignID, order, excludeID), nil
}

func (r *memContentRepo) hasOrder(campaignID, order, excludeID int) bool {
	for _, c := range r.store.contents {
		if c.CampaignID == campaignID && c.Order == order && c.ID != excludeID {
			return true
		}
	}
	return false
}

// newTestRouter wires the real services and handlers over the in-memory
// store, the same way cmd/server does over Postgres.
func newTestRouter() (chi.Router, *memStore) {
	store := newMemStore()
	campaignRepo := &memCampaignRepo{store: store}
	contentRepo := &memContentRepo{store: store}

	campaignService := &service.CampaignService{CampaignRepo: campaignRepo, ContentRepo: contentRepo}
	contentService := &service.ContentService{ContentRepo: contentRepo, CampaignRepo: campaignRepo}

	return handler.Routes(
		handler.NewCampaignHandler(campaignService),
		handler.NewContentHandler(contentService),
	), store
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createCampaign(t *testing.T, r chi.Router, body string) int {
	t.Helper()
	rec := doRequest(t, r, http.MethodPost, "/v1/campaign", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	campaign := decodeBody(t, rec)["campaign"].(map[string]any)
	return int(campaign["id"].(float64))
}

func createContent(t *testing.T, r chi.Router, body string) int {
	t.Helper()
	rec := doRequest(t, r, http.MethodPost, "/v1/content", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	content := decodeBody(t, rec)["content"].(map[string]any)
	return int(content["id"].(float64))
}
