package lifecycle

import (
	"context"
	"errors"
	"fmt"

	collaboratorRepo "brilho/database/repository/collaborator"
	serviceRepo "brilho/database/repository/service"
	transactionRepo "brilho/database/repository/transaction"
	"brilho/models"
	"brilho/utils"

	"go.uber.org/zap"
)

// SettlementProcessor turns a settlement intent into ledger entries. Both
// the inline dispatcher and the queue worker run intents through it, so
// delivery mode never changes settlement semantics.
type SettlementProcessor struct {
	Services      serviceRepo.ServiceRepository
	Collaborators collaboratorRepo.CollaboratorRepository
	Ledger        transactionRepo.TransactionRepository
	Settings      SettingsSource
	Logger        *zap.Logger
}

// Process loads the post-transition service, resolves the collaborator and
// settings, evaluates the rules and appends the resulting entries. A
// returned error means the intent is worth redelivering; append failures on
// individual entries are logged and swallowed.
func (p *SettlementProcessor) Process(ctx context.Context, intent models.SettlementIntent) error {
	svc, err := p.Services.GetByID(ctx, intent.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			p.Logger.Warn("settlement intent for unknown service, dropping",
				zap.String("serviceId", intent.ServiceID))
			return nil
		}
		return fmt.Errorf("settlement: load service %s: %w", intent.ServiceID, err)
	}

	collab, err := p.resolveCollaborator(ctx, intent, svc)
	if err != nil {
		return err
	}

	settings, err := p.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("settlement: load platform settings: %w", err)
	}

	for _, entry := range Evaluate(intent, svc, collab, settings) {
		if _, err := p.Ledger.Append(ctx, entry); err != nil {
			p.Logger.Error("settlement: ledger append failed",
				zap.String("serviceId", svc.ID),
				zap.String("type", string(entry.Type)),
				zap.Float64("amount", entry.Amount),
				zap.Error(err))
			continue
		}
		p.Logger.Info("settlement entry appended",
			zap.String("serviceId", svc.ID),
			zap.String("type", string(entry.Type)),
			zap.String("entity", entry.Entity),
			zap.String("amount", utils.FormatBRL(entry.Amount)))
	}
	return nil
}

// resolveCollaborator picks the patch collaborator when present, falling
// back to the one already assigned. None resolved means no payout entry;
// that a completed service without a collaborator settles nothing is
// current product behavior, not an engine error.
func (p *SettlementProcessor) resolveCollaborator(ctx context.Context, intent models.SettlementIntent, svc *models.Service) (*models.Collaborator, error) {
	if intent.NewStatus != models.StatusCompleted || intent.PrevStatus == models.StatusCompleted {
		return nil, nil
	}

	id := svc.CollaboratorID
	if intent.CollaboratorID != nil && *intent.CollaboratorID != "" {
		id = *intent.CollaboratorID
	}
	if id == "" {
		p.Logger.Warn("service completed with no collaborator assigned, skipping payout",
			zap.String("serviceId", svc.ID))
		return nil, nil
	}

	collab, err := p.Collaborators.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, collaboratorRepo.ErrNotFound) {
			p.Logger.Warn("assigned collaborator not found, skipping payout",
				zap.String("serviceId", svc.ID),
				zap.String("collaboratorId", id))
			return nil, nil
		}
		return nil, fmt.Errorf("settlement: load collaborator %s: %w", id, err)
	}
	return collab, nil
}
