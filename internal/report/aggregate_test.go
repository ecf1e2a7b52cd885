package report

import (
	"math/rand"
	"testing"
	"time"

	"crescent-wallet/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateWorkedExample(t *testing.T) {
	txns := []domain.Transaction{
		{SenderWallet: "A", ReceiverWallet: "B", Amount: 10, Fee: 0.1, CreatedAt: ts("2025-03-05")},
		{SenderWallet: "B", ReceiverWallet: "A", Amount: 4, Fee: 0.05, CreatedAt: ts("2025-03-10")},
	}

	months := Aggregate(txns, "A")
	require.Len(t, months, 1)
	assert.Equal(t, domain.MonthlyAggregate{
		Month:    "2025-03",
		Incoming: 4,
		Outgoing: 10,
		Fee:      0.1,
		Balance:  -6,
	}, months[0])
}

func TestAggregateOrdersMonthsDescending(t *testing.T) {
	txns := []domain.Transaction{
		{SenderWallet: "B", ReceiverWallet: "A", Amount: 1, CreatedAt: ts("2025-01-15")},
		{SenderWallet: "B", ReceiverWallet: "A", Amount: 2, CreatedAt: ts("2025-02-01")},
		{SenderWallet: "A", ReceiverWallet: "B", Amount: 3, Fee: 0.01, CreatedAt: ts("2025-01-20")},
	}

	months := Aggregate(txns, "A")
	require.Len(t, months, 2)
	assert.Equal(t, "2025-02", months[0].Month)
	assert.Equal(t, "2025-01", months[1].Month)
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil, "A"))
}

func TestAggregateIncomingFeeIgnored(t *testing.T) {
	// the receiver does not pay the fee
	txns := []domain.Transaction{
		{SenderWallet: "B", ReceiverWallet: "A", Amount: 7, Fee: 0.5, CreatedAt: ts("2025-06-01")},
	}
	months := Aggregate(txns, "A")
	require.Len(t, months, 1)
	assert.Zero(t, months[0].Fee)
	assert.Equal(t, 7.0, months[0].Incoming)
	assert.Zero(t, months[0].Outgoing)
}

func TestConservationLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var txns []domain.Transaction
	base := ts("2024-01-01")
	for i := 0; i < 500; i++ {
		sender, receiver := "A", "B"
		if rng.Intn(2) == 0 {
			sender, receiver = receiver, sender
		}
		txns = append(txns, domain.Transaction{
			SenderWallet:   sender,
			ReceiverWallet: receiver,
			Amount:         float64(rng.Intn(1000)) / 4,
			Fee:            float64(rng.Intn(100)) / 1000,
			CreatedAt:      base.AddDate(0, rng.Intn(18), rng.Intn(28)),
		})
	}

	months := Aggregate(txns, "A")
	total := Totals(months)
	assert.InDelta(t, total.Incoming-total.Outgoing, total.Balance, 1e-9,
		"sum(incoming) - sum(outgoing) must equal sum(balance)")
}

func TestZakatExactness(t *testing.T) {
	now := ts("2025-07-14")
	for _, balance := range []float64{0, 1, 12.34, 99999.99, 0.004} {
		rec := CurrentZakat(balance, now)
		assert.Equal(t, balance*0.025, rec.ZakatAmount, "no rounding mid-computation")
		assert.Equal(t, 2.5, rec.Percentage)
		assert.Equal(t, "2025-07", rec.Month)
		assert.Equal(t, "2025-07-14", rec.DeductedDate)
	}
}
