// Package export renders report data as CSV text. Output is a plain string;
// delivering it to a file is the caller's concern.
package export

import (
	"strings"
	"time"

	"crescent-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

const dateTimeFormat = "2006-01-02 15:04:05"

// money renders a numeric column at exactly two decimal places.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// quote wraps a field in double quotes, doubling any embedded quote.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func row(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	return strings.Join(quoted, ",")
}

// join produces the final document: newline-joined rows, no carriage
// returns, no trailing newline.
func join(rows []string) string {
	return strings.Join(rows, "\n")
}

// Transactions renders a transaction export: header plus one row per
// transaction, no total row.
func Transactions(txns []domain.Transaction) string {
	rows := make([]string, 0, len(txns)+1)
	rows = append(rows, row(
		"Transaction Hash", "Date", "From", "To",
		"Amount (CRW)", "Fee (CRW)", "Type", "Status",
	))
	for _, tx := range txns {
		rows = append(rows, row(
			tx.TransactionHash,
			tx.CreatedAt.Format(dateTimeFormat),
			tx.SenderWallet,
			tx.ReceiverWallet,
			money(tx.Amount),
			money(tx.Fee),
			string(tx.TransactionType),
			string(tx.Status),
		))
	}
	return join(rows)
}

// Monthly renders the monthly report: header, one row per month, and a
// TOTAL row summing every numeric column.
func Monthly(months []domain.MonthlyAggregate) string {
	rows := make([]string, 0, len(months)+2)
	rows = append(rows, row("Month", "Incoming (CRW)", "Outgoing (CRW)", "Fees (CRW)", "Net (CRW)"))

	var inc, out, fee, bal decimal.Decimal
	for _, m := range months {
		rows = append(rows, row(
			m.Month, money(m.Incoming), money(m.Outgoing), money(m.Fee), money(m.Balance),
		))
		inc = inc.Add(decimal.NewFromFloat(m.Incoming))
		out = out.Add(decimal.NewFromFloat(m.Outgoing))
		fee = fee.Add(decimal.NewFromFloat(m.Fee))
		bal = bal.Add(decimal.NewFromFloat(m.Balance))
	}

	rows = append(rows, row(
		"TOTAL", inc.StringFixed(2), out.StringFixed(2), fee.StringFixed(2), bal.StringFixed(2),
	))
	return join(rows)
}

// Zakat renders the zakat report: header, one row per record, and a total
// row for the amount column.
func Zakat(records []domain.ZakatRecord) string {
	rows := make([]string, 0, len(records)+2)
	rows = append(rows, row("Month", "Amount (CRW)", "Percentage", "Date"))

	var total decimal.Decimal
	for _, r := range records {
		rows = append(rows, row(
			r.Month,
			money(r.ZakatAmount),
			decimal.NewFromFloat(r.Percentage).String()+"%",
			r.DeductedDate,
		))
		total = total.Add(decimal.NewFromFloat(r.ZakatAmount))
	}

	rows = append(rows, row("TOTAL ZAKAT", total.StringFixed(2), "", ""))
	return join(rows)
}

// WalletSnapshot renders a point-in-time wallet summary.
func WalletSnapshot(w domain.Wallet, zakatDeducted bool, now time.Time) string {
	status := "due"
	if zakatDeducted {
		status = "deducted"
	}
	rows := []string{
		"Wallet Snapshot Report",
		"",
		row("Wallet Address", w.WalletAddress),
		row("Balance (CRW)", money(w.Balance)),
		row("Zakat Status", status),
		row("Export Date", now.UTC().Format(time.RFC3339)),
	}
	return join(rows)
}
