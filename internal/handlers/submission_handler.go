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

// SubmissionHandler handles evaluation form submission HTTP requests
type SubmissionHandler struct {
	submissionRepository repositories.SubmissionRepository
	userRepository       repositories.UserRepository
	coordinator          *notifications.Coordinator
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionRepo repositories.SubmissionRepository, userRepo repositories.UserRepository, coordinator *notifications.Coordinator) *SubmissionHandler {
	return &SubmissionHandler{
		submissionRepository: submissionRepo,
		userRepository:       userRepo,
		coordinator:          coordinator,
	}
}

// RegisterSubmissionRoutes registers submission-related routes
func (h *SubmissionHandler) RegisterSubmissionRoutes(g *echo.Group) {
	g.POST("/submissions", h.CreateSubmission)
	g.GET("/submissions/:id", h.GetSubmission)
	g.PUT("/submissions/:id/assign", h.AssignScout)
	g.PUT("/submissions/:id/review", h.ReviewSubmission)
}

// CreateSubmission submits an evaluation form for the calling student
func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if getRoleFromContext(c) != models.RoleStudent {
		return echo.NewHTTPError(http.StatusForbidden, "Only students can submit evaluation forms")
	}

	var req models.CreateSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	submission := &models.EvaluationFormSubmission{
		ID:          uuid.NewString(),
		StudentID:   currentUserID,
		SubmittedBy: currentUserID,
		FormName:    req.FormName,
		Status:      models.SubmissionStatusPending,
	}

	if err := h.submissionRepository.CreateSubmission(submission); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Fire-and-forget admin fan-out.
	h.coordinator.FormSubmitted(currentUserID, submission.ID)

	return c.JSON(http.StatusCreated, submission)
}

// GetSubmission retrieves a single submission
func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	submission, err := h.submissionRepository.GetSubmissionByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Submission not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, submission)
}

// AssignScout assigns a scout to review a submission
func (h *SubmissionHandler) AssignScout(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	if getRoleFromContext(c) != models.RoleScoutAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Only scout admins can assign scouts")
	}

	var req models.AssignScoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	scout, err := h.userRepository.GetUserByID(req.ScoutID)
	if err != nil || scout.Role != models.RoleScout {
		return echo.NewHTTPError(http.StatusBadRequest, "Assignee must be a scout")
	}

	submission, err := h.submissionRepository.GetSubmissionByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Submission not found")
	}

	submission.AssignedScoutID = &req.ScoutID
	if err := h.submissionRepository.UpdateSubmission(submission); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.coordinator.ScoutAssigned(currentUserID, req.ScoutID, submission.StudentID, submission.ID)

	return c.JSON(http.StatusOK, submission)
}

// ReviewSubmission records a scout's review and notifies the student
func (h *SubmissionHandler) ReviewSubmission(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	role := getRoleFromContext(c)
	if role != models.RoleScout && role != models.RoleScoutAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Only scouts can review submissions")
	}

	var req models.ReviewSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	submission, err := h.submissionRepository.GetSubmissionByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Submission not found")
	}

	submission.Status = req.Status
	submission.ReviewNotes = req.ReviewNotes
	if err := h.submissionRepository.UpdateSubmission(submission); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.coordinator.SubmissionReviewed(currentUserID, submission.StudentID, submission.ID, submission.Status)

	return c.JSON(http.StatusOK, submission)
}
