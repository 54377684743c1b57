package handlers

import (
	"errors"
	"net/http"

	"brilho/models"
	"brilho/services/ledger"
	"brilho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LedgerHandler exposes the transaction ledger to the back office.
type LedgerHandler struct {
	Ledger ledger.LedgerService
	Logger *zap.Logger
}

func NewLedgerHandler(svc ledger.LedgerService, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{Ledger: svc, Logger: logger}
}

// ListTransactionsHandler returns every ledger entry, newest first.
func (h *LedgerHandler) ListTransactionsHandler(c *gin.Context) {
	txns, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

// CreateTransactionHandler records a manual ledger entry, e.g. an ad-hoc
// collaborator payout.
func (h *LedgerHandler) CreateTransactionHandler(c *gin.Context) {
	var input struct {
		Type            models.TransactionType   `json:"type" binding:"required"`
		Entity          string                   `json:"entity" binding:"required"`
		ServiceType     string                   `json:"serviceType"`
		Amount          float64                  `json:"amount" binding:"required"`
		Status          models.TransactionStatus `json:"status"`
		Method          string                   `json:"method"`
		SourceServiceID string                   `json:"sourceServiceId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	txn, err := h.Ledger.Append(c.Request.Context(), models.Transaction{
		Type:            input.Type,
		Entity:          input.Entity,
		ServiceType:     input.ServiceType,
		Amount:          input.Amount,
		Status:          input.Status,
		Method:          input.Method,
		SourceServiceID: input.SourceServiceID,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to record transaction", err.Error())
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// MarkTransactionPaidHandler confirms a pending entry.
func (h *LedgerHandler) MarkTransactionPaidHandler(c *gin.Context) {
	txn, err := h.Ledger.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "transaction not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark transaction paid", err.Error())
		return
	}
	c.JSON(http.StatusOK, txn)
}

// DeleteTransactionHandler removes an entry permanently.
func (h *LedgerHandler) DeleteTransactionHandler(c *gin.Context) {
	if err := h.Ledger.Remove(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "transaction not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
