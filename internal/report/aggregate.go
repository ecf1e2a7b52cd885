// Package report reduces a transaction stream into per-month financial
// summaries and zakat records. Everything here is pure: no stores, no
// network, recomputed on every report view.
package report

import (
	"sort"
	"time"

	"crescent-wallet/internal/core/domain"
)

const monthKeyFormat = "2006-01"

// MonthKey truncates a timestamp to its "YYYY-MM" month key.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyFormat)
}

// Aggregate reduces transactions into one summary per distinct month,
// classified from the point of view of walletAddress: a transaction is
// outgoing iff its sender is walletAddress. Outgoing amounts accumulate into
// Outgoing and Fee; incoming amounts into Incoming only. Balance is
// recomputed as Incoming - Outgoing per month. Result is ordered by month
// key descending; the fixed-width key makes lexicographic comparison
// chronological.
func Aggregate(txns []domain.Transaction, walletAddress string) []domain.MonthlyAggregate {
	byMonth := make(map[string]*domain.MonthlyAggregate)

	for _, tx := range txns {
		key := MonthKey(tx.CreatedAt)
		agg, ok := byMonth[key]
		if !ok {
			agg = &domain.MonthlyAggregate{Month: key}
			byMonth[key] = agg
		}

		if tx.IsOutgoing(walletAddress) {
			agg.Outgoing += tx.Amount
			agg.Fee += tx.Fee
		} else {
			agg.Incoming += tx.Amount
		}
	}

	out := make([]domain.MonthlyAggregate, 0, len(byMonth))
	for _, agg := range byMonth {
		agg.Balance = agg.Incoming - agg.Outgoing
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month > out[j].Month
	})
	return out
}

// Totals sums the aggregate columns; Balance obeys the conservation law
// sum(incoming) - sum(outgoing) == sum(balance).
func Totals(months []domain.MonthlyAggregate) domain.MonthlyAggregate {
	total := domain.MonthlyAggregate{Month: "TOTAL"}
	for _, m := range months {
		total.Incoming += m.Incoming
		total.Outgoing += m.Outgoing
		total.Fee += m.Fee
		total.Balance += m.Balance
	}
	return total
}
