package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/notifications"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
	"gorm.io/gorm"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
	coordinator    *notifications.Coordinator
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, coordinator *notifications.Coordinator) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
		coordinator:    coordinator,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	// Check if user has already liked the post
	hasLiked, err := h.likeRepository.HasUserLikedPost(postID, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if hasLiked {
		return echo.NewHTTPError(http.StatusConflict, "Post already liked by this user")
	}

	like := &models.Like{
		PostID: postID,
		UserID: currentUserID,
	}

	if err := h.likeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	go h.postRepository.IncrementLikesCount(postID)

	// Fire-and-forget; re-likes after an unlike are suppressed by the
	// notification dedup key, so the owner is pinged once per liker.
	h.coordinator.PostLiked(currentUserID, post.UserID, postID)

	return c.JSON(http.StatusCreated, like)
}

// UnlikePost handles unliking a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	if err := h.likeRepository.DeleteLike(postID, currentUserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Like not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	go h.postRepository.DecrementLikesCount(postID)

	return c.NoContent(http.StatusNoContent)
}

// GetLikesCountForPost retrieves the total number of likes for a specific post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID := c.Param("post_id")

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}
