package services

import (
	"context"
	"log"
	"time"

	"hrdesk/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs. Currently one: a daily
// headcount report per position, logged at 08:30.
type CronService struct {
	cron         *cron.Cron
	userRepo     repositories.UserRepository
	positionRepo repositories.PositionRepository
}

// NewCronService creates a new cron service
func NewCronService(
	userRepo repositories.UserRepository,
	positionRepo repositories.PositionRepository,
) *CronService {
	return &CronService{
		cron:         cron.New(),
		userRepo:     userRepo,
		positionRepo: positionRepo,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.reportHeadcount); err != nil {
		log.Printf("Failed to schedule headcount report: %v", err)
		return
	}

	s.cron.Start()
	log.Println("CronService started (headcount report daily at 08:30)")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("CronService stopped")
}

// reportHeadcount logs the number of users holding each position
func (s *CronService) reportHeadcount() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	positions, total, err := s.positionRepo.List(ctx, 0, 1000)
	if err != nil {
		log.Printf("Headcount report failed: %v", err)
		return
	}

	log.Printf("Headcount report (%d positions):", total)
	for _, position := range positions {
		count, err := s.userRepo.CountByPosition(ctx, position.ID)
		if err != nil {
			log.Printf("  %s: count failed: %v", position.Name, err)
			continue
		}
		status := "active"
		if !position.Active {
			status = "inactive"
		}
		log.Printf("  %s (%s): %d", position.Name, status, count)
	}
}
