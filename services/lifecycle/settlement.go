package lifecycle

import (
	"strings"
	"time"

	"brilho/models"
)

const (
	// MethodIncome labels how clients settle income entries.
	MethodIncome = "PIX/Link"
	// MethodPayout labels how collaborator payouts are transferred.
	MethodPayout = "Transferência"
	// PayoutServicePrefix marks payout entries in the ledger listing.
	PayoutServicePrefix = "Repasse: "
	// fallbackPayout applies when the collaborator level has no matrix row.
	fallbackPayout = 80
)

// Evaluate decides which ledger entries a transition produces. It is a pure
// function of the intent, the post-transition service, the resolved
// collaborator (nil when unassigned) and the current platform settings.
//
// Each rule guards on the relevant previous field differing from the new
// one, so replaying the same transition yields nothing.
func Evaluate(intent models.SettlementIntent, svc *models.Service, collab *models.Collaborator, settings *models.PlatformSettings) []models.Transaction {
	var entries []models.Transaction
	now := time.Now()

	// Signal payment received: half the price becomes income.
	if intent.NewPaymentStatus == models.PaymentSignalPaid && intent.PrevPaymentStatus != models.PaymentSignalPaid {
		if amount := halfPrice(intent, svc); amount > 0 {
			entries = append(entries, incomeEntry(svc, amount, now))
		}
	}

	// Final payment received: the second half.
	if intent.NewPaymentStatus == models.PaymentFullPaid && intent.PrevPaymentStatus != models.PaymentFullPaid {
		if amount := halfPrice(intent, svc); amount > 0 {
			entries = append(entries, incomeEntry(svc, amount, now))
		}
	}

	// Service completed: the collaborator is owed a payout. With no
	// collaborator resolved no payout is created.
	if intent.NewStatus == models.StatusCompleted && intent.PrevStatus != models.StatusCompleted && collab != nil {
		entries = append(entries, models.Transaction{
			Type:            models.TransactionExpense,
			Entity:          collab.Name,
			ServiceType:     PayoutServicePrefix + svc.Type,
			Amount:          PayoutAmount(settings.Payouts, collab.Level, svc.DurationHours()),
			Date:            now.Format("2006-01-02"),
			Status:          models.TransactionPending,
			Method:          MethodPayout,
			SourceServiceID: svc.ID,
			CreatedAt:       now,
		})
	}

	return entries
}

// PayoutAmount resolves the fixed payout for an experience level and a
// service duration. Unknown levels fall back to a flat amount.
func PayoutAmount(matrix models.PayoutMatrix, level models.CollaboratorLevel, hours int) float64 {
	var tier models.PayoutTier
	switch strings.ToLower(string(level)) {
	case "junior":
		tier = matrix.Junior
	case "senior":
		tier = matrix.Senior
	case "master":
		tier = matrix.Master
	default:
		return fallbackPayout
	}

	switch {
	case hours <= 4:
		return tier.Hours4
	case hours <= 6:
		return tier.Hours6
	default:
		return tier.Hours8
	}
}

// halfPrice computes one income installment: the patch price when present,
// the service price otherwise, halved. Never rounded here.
func halfPrice(intent models.SettlementIntent, svc *models.Service) float64 {
	price := 0.0
	switch {
	case intent.Price != nil:
		price = *intent.Price
	case svc.Price != nil:
		price = *svc.Price
	}
	return price / 2
}

func incomeEntry(svc *models.Service, amount float64, now time.Time) models.Transaction {
	return models.Transaction{
		Type:            models.TransactionIncome,
		Entity:          svc.ClientName,
		ServiceType:     svc.Type,
		Amount:          amount,
		Date:            now.Format("2006-01-02"),
		Status:          models.TransactionPaid, // Manual admin confirmation of receipt.
		Method:          MethodIncome,
		SourceServiceID: svc.ID,
		CreatedAt:       now,
	}
}
