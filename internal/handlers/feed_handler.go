package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
)

// FeedHandler serves the posts of students the caller follows
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns recent posts from every student the caller follows
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	studentIDs, err := h.followRepository.GetFollowedStudentIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByUserIDs(studentIDs, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}
