package settings

import "time"

// Setting is one key/value pair of site-wide configuration. Keys are unique;
// writes are upserts and there is no delete path.
type Setting struct {
	ID        string    `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UpsertRequest carries one or more settings to write in a single call.
type UpsertRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
