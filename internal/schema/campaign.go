// internal/schema/campaign.go
package schema

import "github.com/spocklabs/spock-admin/internal/apperrors"

// CampaignCreateRequest is the payload for POST /v1/campaign.
type CampaignCreateRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

func (r *CampaignCreateRequest) Validate() error {
	ve := apperrors.NewValidationError()
	if r.Name == nil {
		ve.Add("name", MsgRequired)
	}
	return ve.OrNil()
}

// CampaignUpdateRequest is the payload for PUT /v1/campaign/{id}. Every
// field is optional; absent fields leave the stored value unchanged.
type CampaignUpdateRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

func (r *CampaignUpdateRequest) Validate() error {
	return nil
}
