package project

// Request is the admin form payload for both create and update. Updates are
// full-field replaces; omitted fields fall back to their base values.
type Request struct {
	Title           string   `json:"title" binding:"required"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	Content         string   `json:"content"`
	CategoryID      string   `json:"categoryId"`
	VehicleBrand    string   `json:"vehicleBrand"`
	VehicleModel    string   `json:"vehicleModel"`
	Year            int      `json:"year"`
	Images          []string `json:"images"`
	Thumbnail       string   `json:"thumbnail"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Featured        bool     `json:"featured"`
	Published       bool     `json:"published"`
}

// ApplyDefaults fills the base values for omitted fields.
func (r *Request) ApplyDefaults() {
	if r.Images == nil {
		r.Images = []string{}
	}
}

// ListFilters narrows public project listings.
type ListFilters struct {
	CategorySlug string `form:"category"`
	Featured     bool   `form:"featured"`
	Limit        int    `form:"limit"`
}
