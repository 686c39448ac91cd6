package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/notifications"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
)

// PaymentHandler handles school payment HTTP requests
type PaymentHandler struct {
	paymentRepository repositories.PaymentRepository
	schoolRepository  repositories.SchoolRepository
	coordinator       *notifications.Coordinator
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentRepo repositories.PaymentRepository, schoolRepo repositories.SchoolRepository, coordinator *notifications.Coordinator) *PaymentHandler {
	return &PaymentHandler{
		paymentRepository: paymentRepo,
		schoolRepository:  schoolRepo,
		coordinator:       coordinator,
	}
}

// RegisterPaymentRoutes registers payment-related routes
func (h *PaymentHandler) RegisterPaymentRoutes(g *echo.Group) {
	g.POST("/schools/:id/payments", h.RecordPayment)
	g.GET("/schools/:id/payments", h.GetPaymentsBySchool)
}

// RecordPayment books a payment against a school and notifies its admins
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	role := getRoleFromContext(c)
	if role != models.RoleSchoolAdmin && role != models.RoleSystemAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient role")
	}

	schoolID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid school ID")
	}
	if _, err := h.schoolRepository.GetSchoolByID(uint(schoolID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "School not found")
	}

	var req models.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment := &models.SchoolPaymentRecord{
		ID:         uuid.NewString(),
		SchoolID:   uint(schoolID),
		Amount:     req.Amount,
		Kind:       req.Kind,
		RecordedBy: currentUserID,
		Reference:  req.Reference,
	}

	if err := h.paymentRepository.CreatePayment(payment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Fire-and-forget: the payment is booked whether or not admins get notified.
	h.coordinator.SchoolPaymentRecorded(currentUserID, uint(schoolID), payment.ID, payment.Kind, payment.Amount)

	return c.JSON(http.StatusCreated, payment)
}

// GetPaymentsBySchool lists a school's payment records, newest first
func (h *PaymentHandler) GetPaymentsBySchool(c echo.Context) error {
	role := getRoleFromContext(c)
	if role != models.RoleSchoolAdmin && role != models.RoleSystemAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient role")
	}

	schoolID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid school ID")
	}

	payments, err := h.paymentRepository.GetPaymentsBySchoolID(uint(schoolID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"payments": payments}})
}
