package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threadfolio/threadfolio-api/internal/models"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(4500), LineTotal(3, 1500))
	assert.Equal(t, int64(1500), LineTotal(1, 1500))
	// invalid quantities clamp to one
	assert.Equal(t, int64(1500), LineTotal(0, 1500))
	assert.Equal(t, int64(1500), LineTotal(-4, 1500))
}

func TestSummarizeAmountDue(t *testing.T) {
	items := []models.ServiceItem{
		{LineTotalCents: 2500},
		{LineTotalCents: 1000, Removed: true},
		{LineTotalCents: 500},
	}

	s := Summarize(items, nil)

	assert.Equal(t, int64(3000), s.AmountDueCents)
	assert.Equal(t, "$30.00", s.AmountDueDisplay)
	assert.True(t, s.CanCollectPayment)
	assert.Zero(t, s.CreditBalanceCents)
	assert.Empty(t, s.Message)
}

func TestSummarizeIgnoresPendingPayments(t *testing.T) {
	items := []models.ServiceItem{{LineTotalCents: 2000}}
	payments := []models.Payment{
		{AmountCents: 500, Status: models.PaymentStatusCompleted},
		{AmountCents: 1500, Status: models.PaymentStatusPending},
	}

	s := Summarize(items, payments)

	assert.Equal(t, int64(2000), s.AmountDueCents)
	assert.Equal(t, int64(500), s.PaymentsTotalCents)
	assert.True(t, s.CanCollectPayment)
}

func TestSummarizeCreditBalance(t *testing.T) {
	// every billed item removed after the client paid
	items := []models.ServiceItem{
		{LineTotalCents: 2500, Removed: true, RemovalReason: "not needed"},
	}
	payments := []models.Payment{
		{AmountCents: 2500, Status: models.PaymentStatusCompleted},
	}

	s := Summarize(items, payments)

	assert.Equal(t, int64(0), s.AmountDueCents)
	assert.Equal(t, "$0.00", s.AmountDueDisplay)
	assert.False(t, s.CanCollectPayment)
	assert.Equal(t, int64(2500), s.CreditBalanceCents)
	assert.Contains(t, s.Message, "credit balance of $25.00")
}

func TestSummarizeZeroDueNoPayments(t *testing.T) {
	s := Summarize(nil, nil)

	assert.Equal(t, int64(0), s.AmountDueCents)
	assert.Equal(t, "$0.00", s.AmountDueDisplay)
	assert.False(t, s.CanCollectPayment)
	assert.Zero(t, s.CreditBalanceCents)
	assert.Empty(t, s.Message)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.34", FormatCents(1234))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "-$3.50", FormatCents(-350))
	assert.Equal(t, "$100.00", FormatCents(10000))
}
