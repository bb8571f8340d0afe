// internal/model/campaign.go
package model

import "time"

// Campaign is a named grouping of display content. At most one campaign is
// active at any time; the repository enforces this with a clear-then-set
// update inside a single transaction.
type Campaign struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
