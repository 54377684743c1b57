package handlers

import (
	"errors"
	"net/http"

	"brilho/models"
	"brilho/services/lifecycle"
	"brilho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the lifecycle engine over HTTP. Every transition
// endpoint maps onto exactly one row of the engine's transition table.
type ServiceHandler struct {
	Lifecycle lifecycle.LifecycleService
	Logger    *zap.Logger
}

func NewServiceHandler(svc lifecycle.LifecycleService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Lifecycle: svc, Logger: logger}
}

// CreateServiceHandler registers a new service request.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var input struct {
		ClientID   string `json:"clientId" binding:"required"`
		ClientName string `json:"clientName" binding:"required"`
		Type       string `json:"type" binding:"required"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		Address    string `json:"address"`
		Duration   string `json:"duration"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Lifecycle.Create(c.Request.Context(), models.Service{
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Type:       input.Type,
		Date:       input.Date,
		Time:       input.Time,
		Address:    input.Address,
		Duration:   input.Duration,
		Notes:      input.Notes,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListServicesHandler returns all services, newest first.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Lifecycle.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler returns one service by id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Lifecycle.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, lifecycle.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// TransitionServiceHandler applies an arbitrary transition with a patch.
// Status strings are normalized, so the legacy CONFIRMED alias lands on
// SCHEDULED.
func (h *ServiceHandler) TransitionServiceHandler(c *gin.Context) {
	var input struct {
		Status string              `json:"status" binding:"required"`
		Patch  models.ServicePatch `json:"patch"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	h.applyTransition(c, lifecycle.NormalizeStatus(input.Status), input.Patch)
}

// BudgetServiceHandler attaches a price and summary, moving the request to
// BUDGET_READY.
func (h *ServiceHandler) BudgetServiceHandler(c *gin.Context) {
	var input struct {
		Price             float64 `json:"price" binding:"required"`
		Summary           string  `json:"summary"`
		Duration          string  `json:"duration"`
		PaymentLinkSignal string  `json:"paymentLinkSignal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	patch := models.ServicePatch{Price: &input.Price, Summary: &input.Summary}
	if input.Duration != "" {
		patch.Duration = &input.Duration
	}
	if input.PaymentLinkSignal != "" {
		patch.PaymentLinkSignal = &input.PaymentLinkSignal
	}
	h.applyTransition(c, models.StatusBudgetReady, patch)
}

// ApproveBudgetHandler records the client accepting the budget.
func (h *ServiceHandler) ApproveBudgetHandler(c *gin.Context) {
	h.applyTransition(c, models.StatusWaitingSignal, models.ServicePatch{})
}

// RejectBudgetHandler sends the budget back; the engine appends the
// rejection marker to the notes.
func (h *ServiceHandler) RejectBudgetHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)

	patch := models.ServicePatch{}
	if input.Reason != "" {
		patch.Notes = &input.Reason
	}
	h.applyTransition(c, models.StatusPending, patch)
}

// ConfirmSignalPaymentHandler records the 50% signal payment, scheduling the
// service.
func (h *ServiceHandler) ConfirmSignalPaymentHandler(c *gin.Context) {
	var input struct {
		Proof string `json:"proof"`
	}
	_ = c.ShouldBindJSON(&input)

	signalPaid := models.PaymentSignalPaid
	patch := models.ServicePatch{PaymentStatus: &signalPaid}
	if input.Proof != "" {
		patch.PaymentProofSignal = &input.Proof
	}
	h.applyTransition(c, models.StatusScheduled, patch)
}

// ConfirmFinalPaymentHandler records the remaining 50%.
func (h *ServiceHandler) ConfirmFinalPaymentHandler(c *gin.Context) {
	var input struct {
		Proof string `json:"proof"`
	}
	_ = c.ShouldBindJSON(&input)

	fullPaid := models.PaymentFullPaid
	patch := models.ServicePatch{PaymentStatus: &fullPaid}
	if input.Proof != "" {
		patch.PaymentProofFinal = &input.Proof
	}
	h.applyTransition(c, models.StatusScheduled, patch)
}

// AssignCollaboratorHandler puts a collaborator on the scheduled service.
func (h *ServiceHandler) AssignCollaboratorHandler(c *gin.Context) {
	var input struct {
		CollaboratorID string `json:"collaboratorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	h.applyTransition(c, models.StatusScheduled, models.ServicePatch{CollaboratorID: &input.CollaboratorID})
}

// CheckInHandler stamps the collaborator's arrival and starts execution.
func (h *ServiceHandler) CheckInHandler(c *gin.Context) {
	var input struct {
		PhotosBefore []string `json:"photosBefore"`
	}
	_ = c.ShouldBindJSON(&input)

	h.applyTransition(c, models.StatusInProgress, models.ServicePatch{PhotosBefore: input.PhotosBefore})
}

// CompleteServiceHandler finalizes execution with the after photos; the
// collaborator payout settles off this transition.
func (h *ServiceHandler) CompleteServiceHandler(c *gin.Context) {
	var input struct {
		PhotosAfter []string `json:"photosAfter"`
	}
	_ = c.ShouldBindJSON(&input)

	h.applyTransition(c, models.StatusCompleted, models.ServicePatch{PhotosAfter: input.PhotosAfter})
}

// CancelServiceHandler aborts a non-terminal service.
func (h *ServiceHandler) CancelServiceHandler(c *gin.Context) {
	h.applyTransition(c, models.StatusCanceled, models.ServicePatch{})
}

func (h *ServiceHandler) applyTransition(c *gin.Context, status models.ServiceStatus, patch models.ServicePatch) {
	id := c.Param("id")
	svc, err := h.Lifecycle.Transition(c.Request.Context(), id, status, patch)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrServiceNotFound):
			utils.JSONError(c, http.StatusNotFound, "service not found", id)
		case errors.Is(err, lifecycle.ErrCollaboratorNotFound):
			utils.JSONError(c, http.StatusUnprocessableEntity, "collaborator not found", err.Error())
		case errors.Is(err, lifecycle.ErrInvalidTransition), errors.Is(err, lifecycle.ErrUnknownStatus):
			utils.JSONError(c, http.StatusConflict, "illegal status transition", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to apply transition", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, svc)
}
