package services

import (
	"log"
	"time"
)

// ExpiryService is the background worker that closes postings past their
// deadline so the dashboard never recommends a job nobody can apply to.
type ExpiryService struct {
	Jobs     *JobService
	Interval time.Duration
}

func NewExpiryService(jobs *JobService, interval time.Duration) *ExpiryService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &ExpiryService{Jobs: jobs, Interval: interval}
}

// StartWatcher starts the background polling. Runs one sweep immediately,
// then on every tick.
func (s *ExpiryService) StartWatcher() {
	ticker := time.NewTicker(s.Interval)

	go s.Sweep()

	go func() {
		for range ticker.C {
			s.Sweep()
		}
	}()
}

// Sweep closes all expired postings once.
func (s *ExpiryService) Sweep() {
	closed, err := s.Jobs.CloseExpiredJobs(time.Now())
	if err != nil {
		log.Printf("Expiry Watcher: sweep failed: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("Expiry Watcher: closed %d expired job(s)", closed)
	}
}
