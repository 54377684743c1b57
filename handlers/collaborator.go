package handlers

import (
	"errors"
	"net/http"

	collaboratorRepo "brilho/database/repository/collaborator"
	"brilho/models"
	"brilho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CollaboratorHandler serves the lookup surface the assignment screens use.
type CollaboratorHandler struct {
	Repo   collaboratorRepo.CollaboratorRepository
	Logger *zap.Logger
}

func NewCollaboratorHandler(repo collaboratorRepo.CollaboratorRepository, logger *zap.Logger) *CollaboratorHandler {
	return &CollaboratorHandler{Repo: repo, Logger: logger}
}

// ListCollaboratorsHandler returns all collaborators.
func (h *CollaboratorHandler) ListCollaboratorsHandler(c *gin.Context) {
	collabs, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list collaborators", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"collaborators": collabs})
}

// GetCollaboratorHandler returns one collaborator by id.
func (h *CollaboratorHandler) GetCollaboratorHandler(c *gin.Context) {
	collab, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, collaboratorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "collaborator not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load collaborator", err.Error())
		return
	}
	c.JSON(http.StatusOK, collab)
}

// UpsertCollaboratorHandler inserts or replaces a collaborator record.
func (h *CollaboratorHandler) UpsertCollaboratorHandler(c *gin.Context) {
	var input models.Collaborator
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, err := h.Repo.Upsert(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save collaborator", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
