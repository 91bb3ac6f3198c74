package CronJobs

import (
	"fmt"
	"log"
	"time"

	"DocuKeeper/Models"
	"DocuKeeper/email"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ExpirationChecker is the scheduled service that scans for documents and
// purchase orders approaching their end date and emails their NF
// recipients.
type ExpirationChecker struct {
	db             *gorm.DB
	cronScheduler  *cron.Cron
	horizonDays    int
	runImmediately bool
	jobID          cron.EntryID

	// Last band each item was alerted for, so the daily scan mails once
	// per band instead of nagging every run. Reset on restart, which
	// costs at most one repeat alert per item.
	lastNotified map[string]Models.Urgency
}

// NewExpirationChecker creates an expiration checker with the default
// horizon.
func NewExpirationChecker(db *gorm.DB, runImmediately bool) *ExpirationChecker {
	return &ExpirationChecker{
		db:             db,
		cronScheduler:  cron.New(cron.WithSeconds()),
		horizonDays:    Models.DefaultExpirationHorizonDays,
		runImmediately: runImmediately,
		lastNotified:   make(map[string]Models.Urgency),
	}
}

// Start schedules the daily scan.
func (e *ExpirationChecker) Start() error {
	var err error
	e.jobID, err = e.cronScheduler.AddFunc("0 0 7 * * *", func() {
		log.Println("Running scheduled expiration check")
		e.runExpirationCheck()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	e.cronScheduler.Start()
	log.Println("Expiration check scheduler started - will run daily at 7:00 AM")

	if e.runImmediately {
		go e.runExpirationCheck()
	}

	return nil
}

// Stop terminates the scheduler.
func (e *ExpirationChecker) Stop() {
	if e.cronScheduler != nil {
		e.cronScheduler.Stop()
	}
}

// runExpirationCheck scans and alerts. Mail failures are logged and never
// abort the scan.
func (e *ExpirationChecker) runExpirationCheck() {
	var docs []Models.Document
	if err := e.db.Find(&docs).Error; err != nil {
		log.Printf("Expiration check: failed to load documents: %v", err)
		return
	}
	var pos []Models.PurchaseOrder
	if err := e.db.Find(&pos).Error; err != nil {
		log.Printf("Expiration check: failed to load purchase orders: %v", err)
		return
	}

	now := time.Now()
	items := Models.ExpiringDocuments(docs, now, e.horizonDays)
	items = append(items, Models.ExpiringPurchaseOrders(pos, now, e.horizonDays)...)

	if len(items) == 0 {
		log.Println("Expiration check: nothing expiring within the horizon")
		return
	}

	config := Models.EmailConfigFromEnv()
	if config.SMTPServer == "" {
		log.Printf("Expiration check: %d item(s) expiring, SMTP not configured, skipping alerts", len(items))
		return
	}

	for _, item := range items {
		if item.RecipientEmail == "" {
			continue
		}
		if !e.shouldNotify(item) {
			continue
		}

		message := Models.EmailMessage{
			To:      []string{item.RecipientEmail},
			Subject: fmt.Sprintf("[DocuKeeper] %s vence em %d dia(s)", item.Name, item.DaysRemaining),
			Body: fmt.Sprintf(
				"%s (%s) vence em %s — %d dia(s) restante(s), urgência: %s.",
				item.Name, item.Kind, item.EndDate.Format("2006-01-02"),
				item.DaysRemaining, item.Urgency,
			),
		}
		if err := email.SendEmail(config, message); err != nil {
			log.Printf("Expiration check: failed to alert %s for %s %d: %v",
				item.RecipientEmail, item.Kind, item.ID, err)
			// Forget the band so the next run retries the alert.
			delete(e.lastNotified, notifyKey(item))
		}
	}

	log.Printf("Expiration check completed: %d item(s) within %d days", len(items), e.horizonDays)
}

func notifyKey(item Models.ExpiringItem) string {
	return fmt.Sprintf("%s/%d", item.Kind, item.ID)
}

// shouldNotify reports whether the item just entered a band it has not
// been alerted for yet. Normal-band items are never mailed; warning and
// critical each trigger one alert, so an item escalating from warning to
// critical is mailed again, but a stable band is not re-mailed daily.
func (e *ExpirationChecker) shouldNotify(item Models.ExpiringItem) bool {
	if item.Urgency == Models.UrgencyNormal {
		return false
	}
	key := notifyKey(item)
	if e.lastNotified[key] == item.Urgency {
		return false
	}
	e.lastNotified[key] = item.Urgency
	return true
}
