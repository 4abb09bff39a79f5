package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/obsidianspecter/demo-delivery/internal/application/menu"
)

type MenuHandler struct {
	svc *app.Service
}

func NewMenuHandler(svc *app.Service) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// GetMenu handles GET /api/menu?restaurantId=<id>.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID is required"})
		return
	}

	items := h.svc.ListMenu(c.Request.Context(), restaurantID)
	c.JSON(http.StatusOK, gin.H{"menu": items})
}
