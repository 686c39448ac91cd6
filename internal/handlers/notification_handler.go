package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/notifications"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
)

// NotificationHandler serves a user's notification feed
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	identity               *notifications.IdentityResolver
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, identity *notifications.IdentityResolver) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: notifRepo,
		identity:               identity,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// EnrichedNotification includes the resolved related user, or null for
// system-generated rows.
type EnrichedNotification struct {
	models.Notification
	RelatedUser *notifications.Identity `json:"related_user"`
}

// enrichNotifications resolves each row's related user at read time, so the
// feed always shows current profile data. Identities are cached per request.
func (h *NotificationHandler) enrichNotifications(rows []models.Notification) []EnrichedNotification {
	enriched := make([]EnrichedNotification, len(rows))
	identityCache := make(map[uint]notifications.Identity)

	for i, n := range rows {
		enriched[i] = EnrichedNotification{Notification: n}
		if n.RelatedUserID == nil {
			continue
		}
		identity, ok := identityCache[*n.RelatedUserID]
		if !ok {
			identity = h.identity.Resolve(*n.RelatedUserID)
			identityCache[*n.RelatedUserID] = identity
		}
		enriched[i].RelatedUser = &identity
	}
	return enriched
}

// GetNotifications returns the caller's paginated feed, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit < 1 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	unreadOnly := c.QueryParam("unread_only") == "true"

	rows, total, err := h.notificationRepository.GetByUserID(currentUserID, limit, offset, unreadOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"notifications": h.enrichNotifications(rows),
		},
		"meta": echo.Map{
			"totalItems": total,
			"limit":      limit,
			"offset":     offset,
		},
	})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	count, err := h.notificationRepository.GetUnreadCount(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks one notification read. The write is scoped to the caller:
// an id owned by someone else affects zero rows and still returns success.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsRead(uint(notifID), currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"success": true}})
}

// MarkAllAsRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notificationRepository.MarkAllAsRead(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"success": true}})
}
