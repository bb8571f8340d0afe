// internal/model/content.go
package model

import "time"

// Valid content_type values.
const (
	ContentTypeCard   = "card"
	ContentTypeBanner = "banner"
	ContentTypeImage  = "image"
	ContentTypeModal  = "modal"
)

// ContentTypes lists the valid content_type values in declaration order.
var ContentTypes = []string{
	ContentTypeCard,
	ContentTypeBanner,
	ContentTypeImage,
	ContentTypeModal,
}

// ValidContentType reports whether v is one of the content_type values.
func ValidContentType(v string) bool {
	for _, t := range ContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Content is a single displayable item belonging to exactly one campaign.
// The (campaign_id, "order") pair is unique per campaign; the database
// constraint is the source of truth and the service pre-check only exists
// to return a friendlier error.
type Content struct {
	ID            int        `db:"id" json:"id"`
	ContentType   string     `db:"content_type" json:"content_type"`
	Title         string     `db:"title" json:"title"`
	Subtitle      *string    `db:"subtitle" json:"subtitle"`
	Description   *string    `db:"description" json:"description"`
	ButtonText    *string    `db:"button_text" json:"button_text"`
	ButtonLink    *string    `db:"button_link" json:"button_link"`
	StartDate     *time.Time `db:"start_date" json:"start_date"`
	EndDate       *time.Time `db:"end_date" json:"end_date"`
	ImageURL      *string    `db:"image_url" json:"image_url"`
	ImageFilename *string    `db:"image_filename" json:"image_filename"`
	ImagePath     *string    `db:"image_path" json:"image_path"`
	ExternalURL   *string    `db:"external_url" json:"external_url"`
	Order         int        `db:"order" json:"order"`
	CampaignID    int        `db:"campaign_id" json:"campaign_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
