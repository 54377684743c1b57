package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	collaboratorRepo "brilho/database/repository/collaborator"
	serviceRepo "brilho/database/repository/service"
	"brilho/models"
	"brilho/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// rejectionMarker is appended to the service notes when a client sends a
// budget back. Existing notes are kept, never replaced.
const rejectionMarker = "Orçamento recusado pelo cliente"

// DefaultLifecycleService is the production lifecycle engine: it validates
// and applies status transitions, persists them, and hands the resulting
// settlement intent to the dispatcher.
type DefaultLifecycleService struct {
	Repo          serviceRepo.ServiceRepository
	Collaborators collaboratorRepo.CollaboratorRepository
	Dispatcher    SettlementDispatcher
	Events        notification.EventSink
	Logger        *zap.Logger
}

// Create registers a new service request in its initial state.
func (s *DefaultLifecycleService) Create(ctx context.Context, svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.Status = models.StatusPending
	svc.PaymentStatus = models.PaymentPending
	svc.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.emit(ctx, &svc, "service.requested", "New service requested",
		fmt.Sprintf("%s requested %s at %s", svc.ClientName, svc.Type, svc.Address))
	return &svc, nil
}

// Transition moves a service to newStatus, merging the patch. Persistence
// completes before settlement is dispatched, and a settlement failure is
// logged without failing or reversing the transition.
func (s *DefaultLifecycleService) Transition(ctx context.Context, id string, newStatus models.ServiceStatus, patch models.ServicePatch) (*models.Service, error) {
	if !IsValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("load service %s: %w", id, err)
	}

	if !CanTransition(svc.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, svc.Status, newStatus)
	}

	if err := s.preparePatch(ctx, svc, newStatus, &patch); err != nil {
		return nil, err
	}

	prevStatus := svc.Status
	prevPayment := svc.PaymentStatus

	if err := s.Repo.UpdateFields(ctx, id, &newStatus, patch); err != nil {
		return nil, fmt.Errorf("persist transition %s -> %s: %w", prevStatus, newStatus, err)
	}

	merged := mergePatch(*svc, newStatus, patch)

	intent := models.SettlementIntent{
		ServiceID:         merged.ID,
		PrevStatus:        prevStatus,
		NewStatus:         newStatus,
		PrevPaymentStatus: prevPayment,
		NewPaymentStatus:  merged.PaymentStatus,
		Price:             patch.Price,
		CollaboratorID:    patch.CollaboratorID,
	}
	if s.Dispatcher != nil {
		if err := s.Dispatcher.Dispatch(ctx, intent); err != nil {
			s.Logger.Error("settlement dispatch failed",
				zap.String("serviceId", merged.ID),
				zap.String("transition", fmt.Sprintf("%s -> %s", prevStatus, newStatus)),
				zap.Error(err))
		}
	}

	s.emitTransition(ctx, &merged, prevStatus)
	return &merged, nil
}

// List returns all services, most recently created first.
func (s *DefaultLifecycleService) List(ctx context.Context) ([]models.Service, error) {
	return s.Repo.ListAll(ctx)
}

// Get returns one service by id.
func (s *DefaultLifecycleService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

// preparePatch applies the transition-specific merge rules before
// persistence: rejection notes are appended, collaborator assignment
// resolves the name snapshot, and check-in is stamped exactly once.
func (s *DefaultLifecycleService) preparePatch(ctx context.Context, svc *models.Service, newStatus models.ServiceStatus, patch *models.ServicePatch) error {
	// Client rejection path: keep the original notes and append the marker.
	if svc.Status == models.StatusBudgetReady && newStatus == models.StatusPending {
		note := rejectionMarker
		if patch.Notes != nil && strings.TrimSpace(*patch.Notes) != "" {
			note += ": " + strings.TrimSpace(*patch.Notes)
		}
		combined := strings.TrimSpace(svc.Notes)
		if combined != "" {
			combined += "\n"
		}
		combined += note
		patch.Notes = &combined
	}

	// Collaborator assignment: the name snapshot is only ever resolved from
	// the id, so the two fields stay in lockstep. A caller-supplied name
	// without an id is discarded.
	if patch.CollaboratorID == nil || *patch.CollaboratorID == "" {
		patch.CollaboratorID = nil
		patch.CollaboratorName = nil
	} else {
		collab, err := s.Collaborators.GetByID(ctx, *patch.CollaboratorID)
		if err != nil {
			if errors.Is(err, collaboratorRepo.ErrNotFound) {
				return fmt.Errorf("%w: assign service %s: collaborator %s", ErrCollaboratorNotFound, svc.ID, *patch.CollaboratorID)
			}
			return fmt.Errorf("assign service %s: %w", svc.ID, err)
		}
		patch.CollaboratorName = &collab.Name
	}

	// Check-in is stamped once; no later transition moves it.
	if svc.CheckedInAt != nil {
		patch.CheckedInAt = nil
	} else if newStatus == models.StatusInProgress && patch.CheckedInAt == nil {
		now := time.Now()
		patch.CheckedInAt = &now
	}

	return nil
}

// mergePatch returns the post-transition view of the service. It mirrors
// what UpdateFields persisted, so settlement and events read the same state
// the store holds.
func mergePatch(svc models.Service, status models.ServiceStatus, patch models.ServicePatch) models.Service {
	svc.Status = status
	if patch.Price != nil {
		svc.Price = patch.Price
	}
	if patch.Summary != nil {
		svc.Summary = *patch.Summary
	}
	if patch.Notes != nil {
		svc.Notes = *patch.Notes
	}
	if patch.PaymentStatus != nil {
		svc.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentLinkSignal != nil {
		svc.PaymentLinkSignal = *patch.PaymentLinkSignal
	}
	if patch.PaymentLinkFinal != nil {
		svc.PaymentLinkFinal = *patch.PaymentLinkFinal
	}
	if patch.PaymentProofSignal != nil {
		svc.PaymentProofSignal = *patch.PaymentProofSignal
	}
	if patch.PaymentProofFinal != nil {
		svc.PaymentProofFinal = *patch.PaymentProofFinal
	}
	if patch.CheckedInAt != nil {
		svc.CheckedInAt = patch.CheckedInAt
	}
	if patch.PhotosBefore != nil {
		svc.PhotosBefore = patch.PhotosBefore
	}
	if patch.PhotosAfter != nil {
		svc.PhotosAfter = patch.PhotosAfter
	}
	if patch.CollaboratorID != nil {
		svc.CollaboratorID = *patch.CollaboratorID
	}
	if patch.CollaboratorName != nil {
		svc.CollaboratorName = *patch.CollaboratorName
	}
	if patch.Duration != nil {
		svc.Duration = *patch.Duration
	}
	return svc
}

func (s *DefaultLifecycleService) emitTransition(ctx context.Context, svc *models.Service, prev models.ServiceStatus) {
	titles := map[models.ServiceStatus]string{
		models.StatusBudgetReady:   "Budget ready",
		models.StatusWaitingSignal: "Budget approved",
		models.StatusScheduled:     "Service scheduled",
		models.StatusInProgress:    "Service in progress",
		models.StatusCompleted:     "Service completed",
		models.StatusCanceled:      "Service canceled",
		models.StatusPending:       "Budget rejected",
	}
	title, ok := titles[svc.Status]
	if !ok {
		return
	}
	s.emit(ctx, svc, "service."+strings.ToLower(string(svc.Status)), title,
		fmt.Sprintf("%s: %s (%s -> %s)", svc.Type, svc.ClientName, prev, svc.Status))
}

func (s *DefaultLifecycleService) emit(ctx context.Context, svc *models.Service, eventType, title, body string) {
	if s.Events == nil {
		return
	}
	event := models.LifecycleEvent{
		ID:        uuid.New().String(),
		ServiceID: svc.ID,
		Type:      eventType,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		s.Logger.Warn("event publish failed",
			zap.String("serviceId", svc.ID),
			zap.String("type", eventType),
			zap.Error(err))
	}
}
