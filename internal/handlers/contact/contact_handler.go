package contact

import (
	"net/http"

	"zabudowy-service/internal/domain/contact"
	"zabudowy-service/internal/pkg/response"
	service "zabudowy-service/internal/service/contact"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.Service
}

func NewContactHandler(contactService *service.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit is the public contact form endpoint.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to submit message")
		return
	}
	response.Success(c, http.StatusCreated, "message received", msg)
}

// ========== Admin inbox ==========

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to list messages")
		return
	}
	response.Success(c, http.StatusOK, "messages retrieved", messages)
}

func (h *ContactHandler) UnreadCount(c *gin.Context) {
	count, err := h.contactService.UnreadCount(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to count unread messages")
		return
	}
	response.Success(c, http.StatusOK, "unread count retrieved", gin.H{"unread": count})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.contactService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err, "failed to mark message as read")
		return
	}
	response.Success(c, http.StatusOK, "message marked as read", nil)
}
