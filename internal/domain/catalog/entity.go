package catalog

import (
	"encoding/json"
	"time"
)

type BrandType string

const (
	BrandTypeTruck  BrandType = "truck"
	BrandTypePickup BrandType = "pickup"
)

// VehicleBrand is a truck or pickup make the company builds equipment for.
// Models and Gallery hold JSON documents as opaque text; the storage layer
// never interprets them.
type VehicleBrand struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Slug               string    `json:"slug" db:"slug"`
	FullName           string    `json:"fullName,omitempty" db:"full_name"`
	Description        string    `json:"description,omitempty" db:"description"`
	LongDescription    string    `json:"longDescription,omitempty" db:"long_description"`
	ContentDescription string    `json:"contentDescription,omitempty" db:"content_description"`
	Type               BrandType `json:"type" db:"type"`
	Models             string    `json:"models" db:"models"`
	Image              string    `json:"image,omitempty" db:"image"`
	HeroImage          string    `json:"heroImage,omitempty" db:"hero_image"`
	Gallery            string    `json:"gallery" db:"gallery"`
	MetaTitle          string    `json:"metaTitle,omitempty" db:"meta_title"`
	MetaDescription    string    `json:"metaDescription,omitempty" db:"meta_description"`
	SortOrder          int       `json:"sortOrder" db:"sort_order"`
	Published          bool      `json:"published" db:"published"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	// Resolved through the category_vehicle_brands join table.
	Categories []Category `json:"categories,omitempty" db:"-"`
}

// Category is a product line (cab shelves, equipment mounts, ...). Features,
// Benefits, Specifications and Gallery are JSON-in-text like VehicleBrand.Models.
type Category struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Slug               string    `json:"slug" db:"slug"`
	Description        string    `json:"description,omitempty" db:"description"`
	LongDescription    string    `json:"longDescription,omitempty" db:"long_description"`
	ContentDescription string    `json:"contentDescription,omitempty" db:"content_description"`
	Icon               string    `json:"icon,omitempty" db:"icon"`
	Color              string    `json:"color" db:"color"`
	Features           string    `json:"features" db:"features"`
	Benefits           string    `json:"benefits" db:"benefits"`
	Specifications     string    `json:"specifications" db:"specifications"`
	Image              string    `json:"image,omitempty" db:"image"`
	HeroImage          string    `json:"heroImage,omitempty" db:"hero_image"`
	Gallery            string    `json:"gallery" db:"gallery"`
	MetaTitle          string    `json:"metaTitle,omitempty" db:"meta_title"`
	MetaDescription    string    `json:"metaDescription,omitempty" db:"meta_description"`
	SortOrder          int       `json:"sortOrder" db:"sort_order"`
	Published          bool      `json:"published" db:"published"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	// Resolved through the category_vehicle_brands join table.
	VehicleBrands []VehicleBrand `json:"vehicleBrands,omitempty" db:"-"`
}

// VehicleModel is one entry of a brand's Models document.
type VehicleModel struct {
	Name  string `json:"name"`
	Years string `json:"years"`
}

// Specification is one label/value row of a category's Specifications document.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParseModels decodes a brand's Models document. Empty text means no models.
func ParseModels(raw string) ([]VehicleModel, error) {
	if raw == "" {
		return []VehicleModel{}, nil
	}
	var models []VehicleModel
	if err := json.Unmarshal([]byte(raw), &models); err != nil {
		return nil, err
	}
	return models, nil
}

// EncodeModels serializes models back into the stored document form.
func EncodeModels(models []VehicleModel) (string, error) {
	if models == nil {
		models = []VehicleModel{}
	}
	raw, err := json.Marshal(models)
	return string(raw), err
}

// ParseSpecifications decodes a category's Specifications document.
func ParseSpecifications(raw string) ([]Specification, error) {
	if raw == "" {
		return []Specification{}, nil
	}
	var specs []Specification
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// ParseStringList decodes a JSON string list field (features, benefits, gallery).
func ParseStringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
