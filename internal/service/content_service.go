// internal/service/content_service.go
package service

import (
	"time"

	"github.com/spocklabs/spock-admin/internal/apperrors"
	"github.com/spocklabs/spock-admin/internal/model"
	"github.com/spocklabs/spock-admin/internal/repository"
	"github.com/spocklabs/spock-admin/internal/schema"
)

// ContentService applies the content invariants: the referenced campaign
// must exist and the (campaign_id, order) slot must be free.
type ContentService struct {
	ContentRepo  repository.ContentRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
}

func (s *ContentService) Create(req *schema.ContentCreateRequest) (*model.Content, error) {
	if _, err := s.CampaignRepo.GetByID(*req.CampaignID); err != nil {
		return nil, err
	}

	taken, err := s.ContentRepo.OrderExists(*req.CampaignID, *req.Order, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateContentOrder(*req.Order)
	}

	c := &model.Content{
		ContentType:   *req.ContentType,
		Title:         *req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		ButtonText:    req.ButtonText,
		ButtonLink:    req.ButtonLink,
		StartDate:     req.ParsedStartDate,
		EndDate:       req.ParsedEndDate,
		ImageURL:      req.ImageURL,
		ImageFilename: req.ImageFilename,
		ImagePath:     req.ImagePath,
		ExternalURL:   req.ExternalURL,
		Order:         *req.Order,
		CampaignID:    *req.CampaignID,
	}

	if err := s.ContentRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentService) Get(id int) (*model.Content, error) {
	return s.ContentRepo.GetByID(id)
}

func (s *ContentService) List() ([]*model.Content, error) {
	return s.ContentRepo.List()
}

// Update applies a partial update. Supplied empty strings are treated as
// "no change"; order alone is presence-based, so 0 is a valid explicit
// value. A changed order re-validates uniqueness against the row's
// siblings, excluding the row itself.
func (s *ContentService) Update(id int, req *schema.ContentUpdateRequest) (*model.Content, error) {
	c, err := s.ContentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Order != nil {
		taken, err := s.ContentRepo.OrderExists(c.CampaignID, *req.Order, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateContentOrder(*req.Order)
		}
	}

	setIfNotEmpty(&c.ContentType, req.ContentType)
	setIfNotEmpty(&c.Title, req.Title)
	setOptional(&c.Subtitle, req.Subtitle)
	setOptional(&c.Description, req.Description)
	setOptional(&c.ButtonText, req.ButtonText)
	setOptional(&c.ButtonLink, req.ButtonLink)
	setTime(&c.StartDate, req.ParsedStartDate)
	setTime(&c.EndDate, req.ParsedEndDate)
	setOptional(&c.ImageURL, req.ImageURL)
	setOptional(&c.ImageFilename, req.ImageFilename)
	setOptional(&c.ImagePath, req.ImagePath)
	setOptional(&c.ExternalURL, req.ExternalURL)
	if req.Order != nil {
		c.Order = *req.Order
	}

	if err := s.ContentRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentService) Delete(id int) error {
	return s.ContentRepo.Delete(id)
}

func setIfNotEmpty(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func setOptional(dst **string, v *string) {
	if v != nil && *v != "" {
		*dst = v
	}
}

func setTime(dst **time.Time, v *time.Time) {
	if v != nil {
		*dst = v
	}
}
