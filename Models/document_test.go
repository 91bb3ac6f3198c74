package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccruedValueTotal(t *testing.T) {
	doc := Document{
		Value:       30000,
		BillingType: BillingTotal,
		StartDate:   date(2023, time.January, 1),
		EndDate:     date(2023, time.December, 31),
	}
	assert.Equal(t, 30000.0, doc.AccruedValue())
}

func TestAccruedValueMonthlyFullYear(t *testing.T) {
	doc := Document{
		Value:       10000,
		BillingType: BillingMonthly,
		StartDate:   date(2023, time.January, 1),
		EndDate:     date(2023, time.December, 31),
	}
	assert.Equal(t, 120000.0, doc.AccruedValue())
}

func TestAccruedValueMonthlySameMonth(t *testing.T) {
	doc := Document{
		Value:       5000,
		BillingType: BillingMonthly,
		StartDate:   date(2023, time.March, 10),
		EndDate:     date(2023, time.March, 10),
	}
	assert.Equal(t, 5000.0, doc.AccruedValue())
}

// The month count is calendar arithmetic, not day-based: one day across a
// month boundary counts two months, while a full 31-day January counts one.
func TestAccruedValueMonthlyDayAlignment(t *testing.T) {
	acrossBoundary := Document{
		Value:       1000,
		BillingType: BillingMonthly,
		StartDate:   date(2023, time.January, 31),
		EndDate:     date(2023, time.February, 1),
	}
	assert.Equal(t, 2000.0, acrossBoundary.AccruedValue())

	fullJanuary := Document{
		Value:       1000,
		BillingType: BillingMonthly,
		StartDate:   date(2023, time.January, 1),
		EndDate:     date(2023, time.January, 31),
	}
	assert.Equal(t, 1000.0, fullJanuary.AccruedValue())
}

func TestAccruedValueMonthlyAcrossYears(t *testing.T) {
	doc := Document{
		Value:       2000,
		BillingType: BillingMonthly,
		StartDate:   date(2022, time.November, 15),
		EndDate:     date(2023, time.February, 15),
	}
	// Nov, Dec, Jan, Feb
	assert.Equal(t, 8000.0, doc.AccruedValue())
}

func TestPortfolioAccrualSkipsInactive(t *testing.T) {
	docs := []Document{
		{Active: true, Value: 100, BillingType: BillingTotal},
		{Active: false, Value: 900, BillingType: BillingTotal},
		{
			Active:      true,
			Value:       10,
			BillingType: BillingMonthly,
			StartDate:   date(2023, time.January, 1),
			EndDate:     date(2023, time.March, 1),
		},
	}
	assert.Equal(t, 130.0, PortfolioAccrual(docs))
}
