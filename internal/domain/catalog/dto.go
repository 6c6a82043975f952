package catalog

// BrandRequest is the admin form payload for both create and update. Updates
// are full-field replaces: omitted fields fall back to their base values.
type BrandRequest struct {
	Name               string   `json:"name" binding:"required"`
	Slug               string   `json:"slug"`
	FullName           string   `json:"fullName"`
	Description        string   `json:"description"`
	LongDescription    string   `json:"longDescription"`
	ContentDescription string   `json:"contentDescription"`
	Type               string   `json:"type" binding:"omitempty,oneof=truck pickup"`
	Models             string   `json:"models"`
	Image              string   `json:"image"`
	HeroImage          string   `json:"heroImage"`
	Gallery            string   `json:"gallery"`
	MetaTitle          string   `json:"metaTitle"`
	MetaDescription    string   `json:"metaDescription"`
	SortOrder          int      `json:"sortOrder"`
	Published          *bool    `json:"published"`
	CategoryIDs        []string `json:"categoryIds"`
}

// ApplyDefaults fills the base values for omitted fields.
func (r *BrandRequest) ApplyDefaults() {
	if r.Type == "" {
		r.Type = string(BrandTypeTruck)
	}
	if r.Models == "" {
		r.Models = "[]"
	}
	if r.Gallery == "" {
		r.Gallery = "[]"
	}
	if r.Published == nil {
		published := true
		r.Published = &published
	}
}

// CategoryRequest is the admin form payload for both create and update.
type CategoryRequest struct {
	Name               string   `json:"name" binding:"required"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description"`
	LongDescription    string   `json:"longDescription"`
	ContentDescription string   `json:"contentDescription"`
	Icon               string   `json:"icon"`
	Color              string   `json:"color"`
	Features           string   `json:"features"`
	Benefits           string   `json:"benefits"`
	Specifications     string   `json:"specifications"`
	Image              string   `json:"image"`
	HeroImage          string   `json:"heroImage"`
	Gallery            string   `json:"gallery"`
	MetaTitle          string   `json:"metaTitle"`
	MetaDescription    string   `json:"metaDescription"`
	SortOrder          int      `json:"sortOrder"`
	Published          *bool    `json:"published"`
	VehicleBrandIDs    []string `json:"vehicleBrandIds"`
}

// ApplyDefaults fills the base values for omitted fields.
func (r *CategoryRequest) ApplyDefaults() {
	if r.Color == "" {
		r.Color = "#3b82f6"
	}
	if r.Features == "" {
		r.Features = "[]"
	}
	if r.Benefits == "" {
		r.Benefits = "[]"
	}
	if r.Specifications == "" {
		r.Specifications = "[]"
	}
	if r.Gallery == "" {
		r.Gallery = "[]"
	}
	if r.Published == nil {
		published := true
		r.Published = &published
	}
}
