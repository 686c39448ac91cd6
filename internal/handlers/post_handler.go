package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/notifications"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	coordinator    *notifications.Coordinator
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, coordinator *notifications.Coordinator) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		coordinator:    coordinator,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/users/:id/posts", h.GetPostsByUser)
}

// CreatePost creates a new post and notifies the author's followers
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if getRoleFromContext(c) != models.RoleStudent {
		return echo.NewHTTPError(http.StatusForbidden, "Only students can post")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		ID:       uuid.NewString(),
		UserID:   currentUserID,
		Content:  req.Content,
		MediaURL: req.MediaURL,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Fire-and-forget follower fan-out; the post succeeds regardless.
	h.coordinator.PostCreated(currentUserID, post.ID)

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// GetPostsByUser retrieves a user's posts, newest first
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	userID, limit, offset, err := parseUserPage(c)
	if err != nil {
		return err
	}

	posts, err := h.postRepository.GetPostsByUserID(userID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}
