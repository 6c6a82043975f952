package seed

import (
	"net/http"

	"zabudowy-service/internal/middleware"
	"zabudowy-service/internal/pkg/response"
	"zabudowy-service/internal/seed"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seeder *seed.Seeder
}

func NewSeedHandler(seeder *seed.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Run loads the starter catalog. Existing rows are left untouched, so this
// is safe to call on a populated database.
func (h *SeedHandler) Run(c *gin.Context) {
	authorID, _ := middleware.GetUserID(c)

	if err := h.seeder.Run(c.Request.Context(), authorID); err != nil {
		response.FromError(c, err, "failed to seed database")
		return
	}
	response.Success(c, http.StatusOK, "database seeded", nil)
}
