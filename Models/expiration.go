package Models

import (
	"sort"
	"time"
)

// DefaultExpirationHorizonDays is the look-ahead window for flagging
// soon-to-expire documents and purchase orders.
const DefaultExpirationHorizonDays = 60

// Urgency bands by days remaining until the end date.
type Urgency string

const (
	UrgencyCritical Urgency = "critical" // 15 days or fewer
	UrgencyWarning  Urgency = "warning"  // 16 to 30 days
	UrgencyNormal   Urgency = "normal"   // beyond 30, within the horizon
)

// ExpiringItem is one dashboard row: a document or PO approaching its end
// date, with the derived urgency and a 0-100 progress figure for meters.
type ExpiringItem struct {
	Kind           string    `json:"kind"` // "document" or "purchaseOrder"
	ID             uint      `json:"id"`
	ClientID       uint      `json:"clienteId"`
	Name           string    `json:"nome"`
	EndDate        time.Time `json:"dataFim"`
	DaysRemaining  int       `json:"diasRestantes"`
	Urgency        Urgency   `json:"urgencia"`
	Progress       float64   `json:"progresso"`
	RecipientEmail string    `json:"-"`
}

// DaysUntil counts whole calendar days from today to end, ignoring the
// time-of-day component of both values.
func DaysUntil(today, end time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// ClassifyUrgency maps days remaining onto a band.
func ClassifyUrgency(daysRemaining int) Urgency {
	switch {
	case daysRemaining <= 15:
		return UrgencyCritical
	case daysRemaining <= 30:
		return UrgencyWarning
	}
	return UrgencyNormal
}

// ExpirationProgress is 0 at the horizon, 100 at or past the deadline,
// clamped to [0, 100].
func ExpirationProgress(daysRemaining, horizonDays int) float64 {
	p := 100 - float64(daysRemaining)/float64(horizonDays)*100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ExpiringDocuments scans documents for active entries whose end date is
// strictly after today and at most horizonDays away, sorted earliest
// first. An end date equal to today is already past the last billable day
// and is excluded; the comparison is strictly-after, not on-or-after.
// The sort is stable, so same-day expirations keep their input order.
func ExpiringDocuments(docs []Document, today time.Time, horizonDays int) []ExpiringItem {
	items := make([]ExpiringItem, 0)
	for i := range docs {
		d := &docs[i]
		if !d.Active {
			continue
		}
		days := DaysUntil(today, d.EndDate)
		if days < 1 || days > horizonDays {
			continue
		}
		items = append(items, ExpiringItem{
			Kind:           "document",
			ID:             d.ID,
			ClientID:       d.ClientID,
			Name:           d.ProjectName,
			EndDate:        d.EndDate,
			DaysRemaining:  days,
			Urgency:        ClassifyUrgency(days),
			Progress:       ExpirationProgress(days, horizonDays),
			RecipientEmail: d.RecipientEmail,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EndDate.Before(items[j].EndDate)
	})
	return items
}

// ExpiringPurchaseOrders applies the same scan to purchase orders. POs
// carry no Active flag; every stored PO is in play until its end date.
func ExpiringPurchaseOrders(pos []PurchaseOrder, today time.Time, horizonDays int) []ExpiringItem {
	items := make([]ExpiringItem, 0)
	for i := range pos {
		po := &pos[i]
		days := DaysUntil(today, po.EndDate)
		if days < 1 || days > horizonDays {
			continue
		}
		items = append(items, ExpiringItem{
			Kind:           "purchaseOrder",
			ID:             po.ID,
			ClientID:       po.ClientID,
			Name:           po.PONumber,
			EndDate:        po.EndDate,
			DaysRemaining:  days,
			Urgency:        ClassifyUrgency(days),
			Progress:       ExpirationProgress(days, horizonDays),
			RecipientEmail: po.RecipientEmail,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EndDate.Before(items[j].EndDate)
	})
	return items
}
