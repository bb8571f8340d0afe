// internal/repository/campaign_repository.go
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

// CampaignRepositoryInterface is the storage contract the services depend
// on. Create and Update keep the single-active invariant: when the written
// campaign is active, every other campaign is deactivated in the same
// transaction.
type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id int) (*model.Campaign, error)
	GetActive() (*model.Campaign, error)
	List() ([]*model.Campaign, error)
	Update(c *model.Campaign) error
	Delete(id int) error
	NameExists(name string, excludeID int) (bool, error)
}

type CampaignRepository struct {
	DB *sqlx.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	tx, err := r.DB.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if c.Active {
		if _, err := tx.Exec(`UPDATE campaign SET active = false, updated_at = $1 WHERE active`, now); err != nil {
			return fmt.Errorf("deactivate campaigns: %w", err)
		}
	}

	query := `
        INSERT INTO campaign (name, active, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	if err := tx.QueryRowx(query, c.Name, c.Active, c.CreatedAt, c.UpdatedAt).Scan(&c.ID); err != nil {
		if apperrors.IsUniqueViolation(err, apperrors.ConstraintCampaignName) {
			return apperrors.NewDuplicateCampaignName()
		}
		return fmt.Errorf("insert campaign: %w", err)
	}

	return tx.Commit()
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	var c model.Campaign
	err := r.DB.Get(&c, `SELECT id, name, active, created_at, updated_at FROM campaign WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewCampaignNotFound(id)
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// GetActive returns the first active campaign by id. The invariant keeps
// that to at most one row, but a breached invariant must not break reads.
func (r *CampaignRepository) GetActive() (*model.Campaign, error) {
	var c model.Campaign
	err := r.DB.Get(&c, `SELECT id, name, active, created_at, updated_at FROM campaign WHERE active ORDER BY id LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewActiveCampaignNotFound()
		}
		return nil, fmt.Errorf("get active campaign: %w", err)
	}
	return &c, nil
}

func (r *CampaignRepository) List() ([]*model.Campaign, error) {
	campaigns := []*model.Campaign{}
	err := r.DB.Select(&campaigns, `SELECT id, name, active, created_at, updated_at FROM campaign ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	c.UpdatedAt = time.Now().UTC()

	tx, err := r.DB.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if c.Active {
		if _, err := tx.Exec(`UPDATE campaign SET active = false, updated_at = $1 WHERE active AND id <> $2`, c.UpdatedAt, c.ID); err != nil {
			return fmt.Errorf("deactivate campaigns: %w", err)
		}
	}

	res, err := tx.Exec(`UPDATE campaign SET name = $1, active = $2, updated_at = $3 WHERE id = $4`,
		c.Name, c.Active, c.UpdatedAt, c.ID)
	if err != nil {
		if apperrors.IsUniqueViolation(err, apperrors.ConstraintCampaignName) {
			return apperrors.NewDuplicateCampaignName()
		}
		return fmt.Errorf("update campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewCampaignNotFound(c.ID)
	}

	return tx.Commit()
}

// Delete removes a campaign; its content goes with it via the ON DELETE
// CASCADE rule in the schema.
func (r *CampaignRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM campaign WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewCampaignNotFound(id)
	}
	return nil
}

// NameExists reports whether another campaign already uses name. Pass
// excludeID 0 when creating.
func (r *CampaignRepository) NameExists(name string, excludeID int) (bool, error) {
	var count int
	err := r.DB.Get(&count, `SELECT COUNT(*) FROM campaign WHERE name = $1 AND id <> $2`, name, excludeID)
	if err != nil {
		return false, fmt.Errorf("check campaign name: %w", err)
	}
	return count > 0, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
