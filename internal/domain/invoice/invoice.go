package invoice

import (
	"fmt"

	"github.com/threadfolio/threadfolio-api/internal/models"
)

// Summary is the derived invoice view for an order. Invoices are never
// stored; they are recomputed from line items and payments on every read.
type Summary struct {
	AmountDueCents     int64  `json:"amount_due_cents"`
	PaymentsTotalCents int64  `json:"payments_total_cents"`
	CreditBalanceCents int64  `json:"credit_balance_cents"`
	AmountDueDisplay   string `json:"amount_due_display"`
	CanCollectPayment  bool   `json:"can_collect_payment"`
	Message            string `json:"message,omitempty"`
}

// LineTotal computes a line item's total in integer cents. Money never
// touches floating point.
func LineTotal(quantity int, unitPriceCents int64) int64 {
	if quantity < 1 {
		quantity = 1
	}
	return int64(quantity) * unitPriceCents
}

// Summarize aggregates non-removed line items into the amount due and
// classifies the order:
//
//   - due > 0: show the due amount, payment collection enabled regardless
//     of payment history;
//   - due == 0 with recorded payments: the shop owes the client a credit
//     balance (items were removed after payment), collection suppressed;
//   - due == 0 without payments: $0.00 due, nothing to collect.
func Summarize(items []models.ServiceItem, payments []models.Payment) Summary {
	var due int64
	for _, it := range items {
		if it.Removed {
			continue
		}
		due += it.LineTotalCents
	}

	var paid int64
	for _, p := range payments {
		if p.Status != models.PaymentStatusCompleted {
			continue
		}
		paid += p.AmountCents
	}

	s := Summary{
		AmountDueCents:     due,
		PaymentsTotalCents: paid,
		AmountDueDisplay:   FormatCents(due),
	}

	switch {
	case due > 0:
		s.CanCollectPayment = true
	case paid > 0:
		s.CreditBalanceCents = paid - due
		s.Message = fmt.Sprintf(
			"All billed services were removed. The client has a credit balance of %s.",
			FormatCents(s.CreditBalanceCents),
		)
	}

	return s
}

// FormatCents renders integer cents as a dollar string, e.g. 1234 -> "$12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
