package ws

import (
	"net/http"
	"strings"

	"zabudowy-service/internal/middleware"
	"zabudowy-service/internal/pkg/response"
	authsvc "zabudowy-service/internal/service/auth"
	"zabudowy-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades authenticated admin connections and attaches
// them to the notification hub.
type WebSocketHandler struct {
	hub         *ws.Hub
	authService *authsvc.AuthService
	logger      *zap.Logger
}

func NewWebSocketHandler(hub *ws.Hub, authService *authsvc.AuthService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		logger:      logger,
	}
}

func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	token := h.extractToken(c)
	if token == "" {
		response.Unauthorized(c, "missing authentication token")
		return
	}

	claims, err := h.authService.ValidateSession(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("websocket authentication failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		response.Unauthorized(c, "authentication failed")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		return
	}

	if !ws.NewClient(h.hub, conn, claims.UserID).Attach() {
		conn.Close()
	}
}

// extractToken prefers the session cookie, then the query param browsers
// cannot set headers for, then a Bearer header.
func (h *WebSocketHandler) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	if token := c.Query("token"); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	return ""
}
