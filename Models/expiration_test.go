package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiringDocumentsWithinHorizon(t *testing.T) {
	today := date(2024, time.January, 1)
	docs := []Document{
		{Active: true, ProjectName: "Soon", EndDate: date(2024, time.January, 10)},
	}

	items := ExpiringDocuments(docs, today, DefaultExpirationHorizonDays)
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].DaysRemaining)
	assert.Equal(t, UrgencyCritical, items[0].Urgency)
	assert.Equal(t, "Soon", items[0].Name)
}

func TestExpiringDocumentsExcludesInactive(t *testing.T) {
	today := date(2024, time.January, 1)
	docs := []Document{
		{Active: false, EndDate: date(2024, time.January, 10)},
	}
	assert.Empty(t, ExpiringDocuments(docs, today, DefaultExpirationHorizonDays))
}

// An end date equal to today is already past the last billable day. The
// check is strictly-after-today, the classic off-by-one trap here.
func TestExpiringDocumentsExcludesToday(t *testing.T) {
	today := date(2024, time.January, 1)
	docs := []Document{
		{Active: true, EndDate: date(2024, time.January, 1)},
		{Active: true, EndDate: date(2023, time.December, 20)},
	}
	assert.Empty(t, ExpiringDocuments(docs, today, DefaultExpirationHorizonDays))
}

func TestExpiringDocumentsExcludesBeyondHorizon(t *testing.T) {
	today := date(2024, time.January, 1)
	docs := []Document{
		{Active: true, EndDate: date(2024, time.March, 1)},  // 60 days, kept
		{Active: true, EndDate: date(2024, time.March, 2)},  // 61 days, dropped
	}
	items := ExpiringDocuments(docs, today, DefaultExpirationHorizonDays)
	require.Len(t, items, 1)
	assert.Equal(t, 60, items[0].DaysRemaining)
	assert.Equal(t, UrgencyNormal, items[0].Urgency)
}

func TestExpiringDocumentsSortedStable(t *testing.T) {
	today := date(2024, time.January, 1)
	docs := []Document{
		{Active: true, ProjectName: "B", EndDate: date(2024, time.January, 20)},
		{Active: true, ProjectName: "A", EndDate: date(2024, time.January, 5)},
		{Active: true, ProjectName: "C", EndDate: date(2024, time.January, 20)},
	}
	items := ExpiringDocuments(docs, today, DefaultExpirationHorizonDays)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Name)
	// Same end date keeps insertion order
	assert.Equal(t, "B", items[1].Name)
	assert.Equal(t, "C", items[2].Name)
}

func TestClassifyUrgencyBands(t *testing.T) {
	assert.Equal(t, UrgencyCritical, ClassifyUrgency(1))
	assert.Equal(t, UrgencyCritical, ClassifyUrgency(15))
	assert.Equal(t, UrgencyWarning, ClassifyUrgency(16))
	assert.Equal(t, UrgencyWarning, ClassifyUrgency(30))
	assert.Equal(t, UrgencyNormal, ClassifyUrgency(31))
	assert.Equal(t, UrgencyNormal, ClassifyUrgency(60))
}

func TestExpirationProgress(t *testing.T) {
	assert.Equal(t, 0.0, ExpirationProgress(60, 60))
	assert.Equal(t, 100.0, ExpirationProgress(0, 60))
	assert.Equal(t, 100.0, ExpirationProgress(-5, 60))
	assert.InDelta(t, 75.0, ExpirationProgress(15, 60), 0.001)
	assert.Equal(t, 0.0, ExpirationProgress(90, 60))
}

func TestExpiringPurchaseOrders(t *testing.T) {
	today := date(2024, time.January, 1)
	pos := []PurchaseOrder{
		{PONumber: "PO-001", EndDate: date(2024, time.January, 25)},
		{PONumber: "PO-002", EndDate: date(2024, time.June, 1)},
	}
	items := ExpiringPurchaseOrders(pos, today, DefaultExpirationHorizonDays)
	require.Len(t, items, 1)
	assert.Equal(t, "PO-001", items[0].Name)
	assert.Equal(t, 24, items[0].DaysRemaining)
	assert.Equal(t, UrgencyWarning, items[0].Urgency)
	assert.Equal(t, "purchaseOrder", items[0].Kind)
}
