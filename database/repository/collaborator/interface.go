package collaboratorRepo

import (
	"context"

	"brilho/models"
)

// CollaboratorRepository defines the lookup surface the engine needs.
// Address-book management proper lives in the back office, outside this core.
type CollaboratorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Collaborator, error)
	ListAll(ctx context.Context) ([]models.Collaborator, error)
	Upsert(ctx context.Context, collab models.Collaborator) (string, error)
}
