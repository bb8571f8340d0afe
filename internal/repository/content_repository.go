// internal/repository/content_repository.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spocklabs/spock-admin/internal/apperrors"
	"github.com/spocklabs/spock-admin/internal/model"
)

// ContentRepositoryInterface is the storage contract for content rows.
type ContentRepositoryInterface interface {
	Create(c *model.Content) error
	GetByID(id int) (*model.Content, error)
	List() ([]*model.Content, error)
	ListByCampaign(campaignID int) ([]*model.Content, error)
	Update(c *model.Content) error
	Delete(id int) error
	OrderExists(campaignID, order, excludeID int) (bool, error)
}

type ContentRepository struct {
	DB *sqlx.DB
}

const contentColumns = `id, content_type, title, subtitle, description, button_text, button_link,
        start_date, end_date, image_url, image_filename, image_path, external_url,
        "order", campaign_id, created_at, updated_at`

func (r *ContentRepository) Create(c *model.Content) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
        INSERT INTO content (content_type, title, subtitle, description, button_text, button_link,
            start_date, end_date, image_url, image_filename, image_path, external_url,
            "order", campaign_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id
    `
	err := r.DB.QueryRowx(query,
		c.ContentType, c.Title, c.Subtitle, c.Description, c.ButtonText, c.ButtonLink,
		c.StartDate, c.EndDate, c.ImageURL, c.ImageFilename, c.ImagePath, c.ExternalURL,
		c.Order, c.CampaignID, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if apperrors.IsUniqueViolation(err, apperrors.ConstraintContentOrder) {
			return apperrors.NewDuplicateContentOrder(c.Order)
		}
		if apperrors.IsForeignKeyViolation(err) {
			return apperrors.NewCampaignNotFound(c.CampaignID)
		}
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}

func (r *ContentRepository) GetByID(id int) (*model.Content, error) {
	var c model.Content
	err := r.DB.Get(&c, `SELECT `+contentColumns+` FROM content WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewContentNotFound(id)
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	return &c, nil
}

func (r *ContentRepository) List() ([]*model.Content, error) {
	contents := []*model.Content{}
	err := r.DB.Select(&contents, `SELECT `+contentColumns+` FROM content ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return contents, nil
}

// ListByCampaign returns a campaign's content in display order.
func (r *ContentRepository) ListByCampaign(campaignID int) ([]*model.Content, error) {
	contents := []*model.Content{}
	err := r.DB.Select(&contents, `SELECT `+contentColumns+` FROM content WHERE campaign_id = $1 ORDER BY "order" ASC`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list content for campaign: %w", err)
	}
	return contents, nil
}

func (r *ContentRepository) Update(c *model.Content) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
        UPDATE content
        SET content_type = $1, title = $2, subtitle = $3, description = $4, button_text = $5,
            button_link = $6, start_date = $7, end_date = $8, image_url = $9, image_filename = $10,
            image_path = $11, external_url = $12, "order" = $13, updated_at = $14
        WHERE id = $15
    `
	res, err := r.DB.Exec(query,
		c.ContentType, c.Title, c.Subtitle, c.Description, c.ButtonText,
		c.ButtonLink, c.StartDate, c.EndDate, c.ImageURL, c.ImageFilename,
		c.ImagePath, c.ExternalURL, c.Order, c.UpdatedAt, c.ID)
	if err != nil {
		if apperrors.IsUniqueViolation(err, apperrors.ConstraintContentOrder) {
			return apperrors.NewDuplicateContentOrder(c.Order)
		}
		return fmt.Errorf("update content: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewContentNotFound(c.ID)
	}
	return nil
}

func (r *ContentRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewContentNotFound(id)
	}
	return nil
}

// OrderExists reports whether another content row under the campaign
// already uses the order slot. Pass excludeID 0 when creating.
func (r *ContentRepository) OrderExists(campaignID, order, excludeID int) (bool, error) {
	var count int
	err := r.DB.Get(&count, `SELECT COUNT(*) FROM content WHERE campaign_id = $1 AND "order" = $2 AND id <> $3`,
		campaignID, order, excludeID)
	if err != nil {
		return false, fmt.Errorf("check content order: %w", err)
	}
	return count > 0, nil
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)
