package domain

import "time"

// Project is a locally owned mirror of a Figma file. Rows are created either
// by the owner or by the synchronizer; OwnerID never changes after creation.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `json:"file_url"`
	OwnerID     string    `json:"owner_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
