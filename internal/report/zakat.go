package report

import (
	"time"

	"crescent-wallet/internal/core/domain"
)

// CurrentZakat computes the 2.5% levy on the current wallet balance for the
// month containing now. It is deliberately independent of the monthly
// aggregation and deliberately not retrospective: the figure derives from the
// balance as it stands, not from any month's historical balance. The amount
// is exact (balance * 0.025); rounding happens only at display time.
func CurrentZakat(balance float64, now time.Time) domain.ZakatRecord {
	return domain.ZakatRecord{
		Month:        MonthKey(now),
		ZakatAmount:  balance * (domain.ZakatPercentage / 100),
		Percentage:   domain.ZakatPercentage,
		DeductedDate: now.Format("2006-01-02"),
	}
}
