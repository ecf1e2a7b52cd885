package domain

// ZakatPercentage is the fixed monthly levy rate applied to wallet balance.
const ZakatPercentage = 2.5

// MonthlyAggregate is a derived per-month financial summary. Month keys use
// the fixed-width "YYYY-MM" format, so lexicographic ordering is
// chronological. Never persisted; recomputed on every report view.
type MonthlyAggregate struct {
	Month    string  `json:"month"`
	Incoming float64 `json:"incoming"`
	Outgoing float64 `json:"outgoing"`
	Fee      float64 `json:"fee"`
	Balance  float64 `json:"balance"`
}

// ZakatRecord is a derived zakat line item for one month.
type ZakatRecord struct {
	Month        string  `json:"month"`
	ZakatAmount  float64 `json:"zakat_amount"`
	Percentage   float64 `json:"percentage"`
	DeductedDate string  `json:"deducted_date"`
}
