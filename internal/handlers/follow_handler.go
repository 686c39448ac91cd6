package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/notifications"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	coordinator      *notifications.Coordinator
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, coordinator *notifications.Coordinator) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		coordinator:      coordinator,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/students/:id/follow", h.FollowStudent)
	g.DELETE("/students/:id/follow", h.UnfollowStudent)
	g.GET("/students/:id/followers/count", h.GetFollowersCount)
}

// FollowStudent follows a student athlete
func (h *FollowHandler) FollowStudent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if currentUserID == uint(targetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	target, err := h.userRepository.GetUserByID(uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Student not found")
	}
	if target.Role != models.RoleStudent {
		return echo.NewHTTPError(http.StatusBadRequest, "Only students can be followed")
	}

	// Check if already following
	isFollowing, err := h.followRepository.IsFollowing(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusConflict, "Already following this student")
	}

	follow := &models.Follow{
		FollowerID: currentUserID,
		StudentID:  uint(targetID),
	}

	if err := h.followRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Fire-and-forget: the follow succeeds whether or not the notification does.
	h.coordinator.FollowerAdded(currentUserID, uint(targetID))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowStudent unfollows a student athlete
func (h *FollowHandler) UnfollowStudent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.followRepository.DeleteFollow(currentUserID, uint(targetID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowersCount returns how many users follow a student
func (h *FollowHandler) GetFollowersCount(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	count, err := h.followRepository.GetFollowersCount(uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}
