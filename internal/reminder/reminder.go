package reminder

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/notify"
	"github.com/barberflow/api/internal/timezone"
)

// Service reminds customers of tomorrow's confirmed bookings once a day.
type Service struct {
	repo     domain.Repository
	notifier notify.Sink
}

func NewService(repo domain.Repository, notifier notify.Sink) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *Service) StartScheduler() {
	c := cron.New()

	// every day at 9 AM
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *Service) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := timezone.Now().AddDate(0, 0, 1).Format(domain.DateLayout)

	bookings, err := s.repo.ListConfirmedForDate(context.Background(), tomorrow)
	if err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, bk := range bookings {
		s.notifier.Dispatch(notify.Event{
			UserID: bk.CustomerID,
			Message: fmt.Sprintf(
				"Reminder: your appointment with %s is tomorrow at %s.",
				bk.Barber.Name,
				bk.TimeSlot,
			),
			Type: models.NotificationInfo,
		})
	}

	log.Printf("Daily reminder processing completed (%d bookings)", len(bookings))
}
