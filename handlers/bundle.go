package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Service lifecycle endpoints.
	CreateService        gin.HandlerFunc
	ListServices         gin.HandlerFunc
	GetService           gin.HandlerFunc
	TransitionService    gin.HandlerFunc
	BudgetService        gin.HandlerFunc
	ApproveBudget        gin.HandlerFunc
	RejectBudget         gin.HandlerFunc
	ConfirmSignalPayment gin.HandlerFunc
	ConfirmFinalPayment  gin.HandlerFunc
	AssignCollaborator   gin.HandlerFunc
	CheckIn              gin.HandlerFunc
	CompleteService      gin.HandlerFunc
	CancelService        gin.HandlerFunc

	// Ledger endpoints.
	ListTransactions    gin.HandlerFunc
	CreateTransaction   gin.HandlerFunc
	MarkTransactionPaid gin.HandlerFunc
	DeleteTransaction   gin.HandlerFunc

	// Settings endpoints.
	GetSettings    gin.HandlerFunc
	UpdateSettings gin.HandlerFunc

	// Collaborator lookup endpoints.
	ListCollaborators  gin.HandlerFunc
	GetCollaborator    gin.HandlerFunc
	UpsertCollaborator gin.HandlerFunc
}
