// services/summary_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"miednight-backend/config"
	"miednight-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// SummaryService closes out each business day: when the cutover hour passes
// it back-fills the finished day's DailyLog from the derived totals and sends
// the owner a WhatsApp summary via Twilio.
type SummaryService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &SummaryService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *SummaryService) StartScheduler() {
	c := cron.New()

	// Run just after the business day rolls over
	schedule := fmt.Sprintf("5 %d * * *", CutoverHour())
	c.AddFunc(schedule, func() {
		s.CloseOutPreviousDay()
	})

	c.Start()
	config.GetLogger().Info("Daily summary scheduler started")
}

// CloseOutPreviousDay processes the business date that just ended.
func (s *SummaryService) CloseOutPreviousDay() {
	date := BusinessDate(time.Now().Add(-24 * time.Hour))
	logg := config.GetLogger()

	var trxs []models.Transaction
	if err := s.db.Find(&trxs).Error; err != nil {
		config.LogError(logg, "summary", "CloseOutPreviousDay", "load transactions", err)
		return
	}
	var expenses []models.Expense
	if err := s.db.Where("date = ?", date).Find(&expenses).Error; err != nil {
		config.LogError(logg, "summary", "CloseOutPreviousDay", "load expenses", err)
		return
	}

	sales := DailySales(trxs, date)
	spent := ExpenseTotal(expenses, date)

	if err := s.backfillDailyLog(date, sales, spent); err != nil {
		config.LogError(logg, "summary", "CloseOutPreviousDay", "backfill daily log", err)
	}

	s.sendOwnerSummaries(date, sales, spent)
}

// backfillDailyLog snapshots the derived totals into the manual fields once
// the day is history, so the isToday-derived/otherwise-manual selection rule
// keeps reporting the same figures after rollover. Figures the owner already
// entered by hand win.
func (s *SummaryService) backfillDailyLog(date string, sales SalesSummary, spent decimal.Decimal) error {
	var log models.DailyLog
	err := s.db.Where(models.DailyLog{Date: date}).
		Attrs(models.DailyLog{ID: uuid.New()}).
		FirstOrInit(&log).Error
	if err != nil {
		return err
	}

	if log.ManualRevenue.IsZero() {
		log.ManualRevenue = sales.Total
	}
	if log.ManualExpenses.IsZero() {
		log.ManualExpenses = spent
	}

	return s.db.Save(&log).Error
}

func (s *SummaryService) sendOwnerSummaries(date string, sales SalesSummary, spent decimal.Decimal) {
	logg := config.GetLogger()

	var owners []models.User
	if err := s.db.Find(&owners, "is_active = ?", true).Error; err != nil {
		config.LogError(logg, "summary", "sendOwnerSummaries", "load owners", err)
		return
	}

	var log models.DailyLog
	s.db.Where("date = ?", date).First(&log)

	reconciliation := "drawer not reconciled"
	if log.CashReconciled {
		reconciliation = fmt.Sprintf("drawer reconciled, difference %s", log.CashDifference.StringFixed(0))
	}

	message := fmt.Sprintf(
		"Mie-dNight summary for %s\nRevenue: %s (cash %s, QRIS %s, %d orders)\nExpenses: %s\n%s",
		date,
		sales.Total.StringFixed(0), sales.CashTotal.StringFixed(0),
		sales.ElectronicTotal.StringFixed(0), sales.Count,
		spent.StringFixed(0),
		reconciliation,
	)

	for _, owner := range owners {
		to := owner.Phone
		if !strings.HasPrefix(to, "+") {
			continue
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			config.LogError(logg, "summary", "sendOwnerSummaries", "send message", err)
			continue
		}
		if resp.Sid != nil {
			logg.WithField("sid", *resp.Sid).Info("Daily summary sent")
		}
	}
}
