package payroll

import (
	"time"

	"github.com/warp/salary-engine/generic"
)

// HasFifthMonday reports whether the month contains five Mondays.
func HasFifthMonday(year int, month time.Month) bool {
	return generic.MonthPeriod(year, month).CountWeekday(time.Monday) >= 5
}
