// internal/schema/content.go
package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/spocklabs/spock-admin/internal/apperrors"
	"github.com/spocklabs/spock-admin/internal/model"
)

// ContentCreateRequest is the payload for POST /v1/content.
type ContentCreateRequest struct {
	ContentType   *string `json:"content_type"`
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Description   *string `json:"description"`
	ButtonText    *string `json:"button_text"`
	ButtonLink    *string `json:"button_link"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	ImageURL      *string `json:"image_url"`
	ImageFilename *string `json:"image_filename"`
	ImagePath     *string `json:"image_path"`
	ExternalURL   *string `json:"external_url"`
	Order         *int    `json:"order"`
	CampaignID    *int    `json:"campaign_id"`

	// Populated by Validate.
	ParsedStartDate *time.Time `json:"-"`
	ParsedEndDate   *time.Time `json:"-"`
}

func (r *ContentCreateRequest) Validate() error {
	ve := apperrors.NewValidationError()

	switch {
	case r.ContentType == nil:
		ve.Add("content_type", MsgRequired)
	case !model.ValidContentType(*r.ContentType):
		ve.Add("content_type", invalidContentTypeMessage(*r.ContentType))
	}
	if r.Title == nil {
		ve.Add("title", MsgRequired)
	}
	if r.Order == nil {
		ve.Add("order", MsgRequired)
	}
	if r.CampaignID == nil {
		ve.Add("campaign_id", MsgRequired)
	}

	r.ParsedStartDate = checkDateTime(ve, "start_date", r.StartDate)
	r.ParsedEndDate = checkDateTime(ve, "end_date", r.EndDate)

	return ve.OrNil()
}

// ContentUpdateRequest is the payload for PUT /v1/content/{id}. Every field
// is optional. String fields are applied only when supplied non-empty,
// order whenever present; campaign_id is accepted for wire compatibility
// but content never changes owner.
type ContentUpdateRequest struct {
	ContentType   *string `json:"content_type"`
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Description   *string `json:"description"`
	ButtonText    *string `json:"button_text"`
	ButtonLink    *string `json:"button_link"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	ImageURL      *string `json:"image_url"`
	ImageFilename *string `json:"image_filename"`
	ImagePath     *string `json:"image_path"`
	ExternalURL   *string `json:"external_url"`
	Order         *int    `json:"order"`
	CampaignID    *int    `json:"campaign_id"`

	// Populated by Validate.
	ParsedStartDate *time.Time `json:"-"`
	ParsedEndDate   *time.Time `json:"-"`
}

func (r *ContentUpdateRequest) Validate() error {
	ve := apperrors.NewValidationError()

	// An empty content_type means "no change", so only a non-empty value
	// is held to the enum.
	if r.ContentType != nil && *r.ContentType != "" && !model.ValidContentType(*r.ContentType) {
		ve.Add("content_type", invalidContentTypeMessage(*r.ContentType))
	}

	r.ParsedStartDate = checkDateTime(ve, "start_date", r.StartDate)
	r.ParsedEndDate = checkDateTime(ve, "end_date", r.EndDate)

	return ve.OrNil()
}

func invalidContentTypeMessage(v string) string {
	return fmt.Sprintf("Invalid content_type '%s'. Must be one of: %s", v, strings.Join(model.ContentTypes, ", "))
}
