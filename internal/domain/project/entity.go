package project

import (
	"time"

	"zabudowy-service/internal/domain/catalog"
)

// Project is a completed build shown in the portfolio. VehicleBrand and
// VehicleModel are free-text labels, not references into the brand catalog.
type Project struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Description     string    `json:"description,omitempty" db:"description"`
	Content         string    `json:"content,omitempty" db:"content"`
	CategoryID      string    `json:"categoryId,omitempty" db:"category_id"`
	VehicleBrand    string    `json:"vehicleBrand,omitempty" db:"vehicle_brand"`
	VehicleModel    string    `json:"vehicleModel,omitempty" db:"vehicle_model"`
	Year            int       `json:"year,omitempty" db:"year"`
	Images          []string  `json:"images" db:"images"`
	Thumbnail       string    `json:"thumbnail,omitempty" db:"thumbnail"`
	MetaTitle       string    `json:"metaTitle,omitempty" db:"meta_title"`
	MetaDescription string    `json:"metaDescription,omitempty" db:"meta_description"`
	Featured        bool      `json:"featured" db:"featured"`
	Published       bool      `json:"published" db:"published"`
	AuthorID        string    `json:"authorId,omitempty" db:"author_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	Category *catalog.Category `json:"category,omitempty" db:"-"`
}
