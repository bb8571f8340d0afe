// internal/service/campaign_service.go
package service

import (
	"github.com/spocklabs/spock-admin/internal/apperrors"
	"github.com/spocklabs/spock-admin/internal/model"
	"github.com/spocklabs/spock-admin/internal/repository"
	"github.com/spocklabs/spock-admin/internal/schema"
)

// CampaignService applies the campaign invariants before touching storage.
// The pre-checks exist for friendly errors; under a race the database
// constraints win and come back as the same conflict errors.
type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	ContentRepo  repository.ContentRepositoryInterface
}

func (s *CampaignService) Create(req *schema.CampaignCreateRequest) (*model.Campaign, error) {
	taken, err := s.CampaignRepo.NameExists(*req.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateCampaignName()
	}

	c := &model.Campaign{Name: *req.Name}
	if req.Active != nil {
		c.Active = *req.Active
	}

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) Get(id int) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) List() ([]*model.Campaign, error) {
	return s.CampaignRepo.List()
}

func (s *CampaignService) GetActive() (*model.Campaign, error) {
	return s.CampaignRepo.GetActive()
}

// Update applies a partial update: absent fields keep their stored value.
func (s *CampaignService) Update(id int, req *schema.CampaignUpdateRequest) (*model.Campaign, error) {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		taken, err := s.CampaignRepo.NameExists(*req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateCampaignName()
		}
		c.Name = *req.Name
	}
	if req.Active != nil {
		c.Active = *req.Active
	}

	if err := s.CampaignRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) Delete(id int) error {
	return s.CampaignRepo.Delete(id)
}

// ListContent returns a campaign's content sorted by display order, or the
// campaign's not-found error.
func (s *CampaignService) ListContent(campaignID int) ([]*model.Content, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}
	return s.ContentRepo.ListByCampaign(campaignID)
}
