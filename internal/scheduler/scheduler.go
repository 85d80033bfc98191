package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mherren/daymix-server/internal/db"
)

// Scheduler manages the maintenance jobs: audit retention and periodic
// database health checks
type Scheduler struct {
	scheduler     gocron.Scheduler
	db            *db.DB
	timezone      *time.Location
	retentionDays int
}

// Config holds scheduler configuration
type Config struct {
	Timezone      string
	RetentionDays int
}

// New creates a new scheduler
func New(database *db.DB, cfg Config) (*Scheduler, error) {
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		tz = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(tz))
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		scheduler:     s,
		db:            database,
		timezone:      tz,
		retentionDays: cfg.RetentionDays,
	}, nil
}

// Start starts the scheduler and registers all jobs
func (s *Scheduler) Start() error {
	// Purge expired audit rows nightly at 03:30
	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 30, 0))),
		gocron.NewTask(s.purgeAuditLog),
		gocron.WithName("purge-audit-log"),
	)
	if err != nil {
		return err
	}

	// Database health check every 5 minutes
	_, err = s.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(s.healthCheck),
		gocron.WithName("health-check"),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Println("Scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) purgeAuditLog() {
	runID, err := s.db.StartSchedulerRun("purge-audit-log")
	if err != nil {
		log.Printf("Error recording purge run: %v", err)
	}

	cutoff := RetentionCutoff(time.Now().In(s.timezone), s.retentionDays)
	removed, err := s.db.PurgeParseLog(cutoff)

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
		log.Printf("Error purging audit log: %v", err)
	} else if removed > 0 {
		log.Printf("Purged %d audit rows older than %s", removed, cutoff.Format("2006-01-02"))
	}

	if runID > 0 {
		if err := s.db.CompleteSchedulerRun(runID, errMsg); err != nil {
			log.Printf("Error completing purge run: %v", err)
		}
	}
}

func (s *Scheduler) healthCheck() {
	if err := s.db.Ping(); err != nil {
		log.Printf("Health check failed - database unreachable: %v", err)
	}
}

// RetentionCutoff returns the timestamp before which audit rows are
// eligible for deletion
func RetentionCutoff(now time.Time, retentionDays int) time.Time {
	return now.AddDate(0, 0, -retentionDays)
}

// PurgeNow triggers a retention purge immediately (for testing)
func (s *Scheduler) PurgeNow() {
	s.purgeAuditLog()
}
