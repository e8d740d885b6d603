package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Payload carries everything needed to deliver a reminder notification.
type Payload struct {
	UserID int64
	ChatID int64
	Note   string
}

// NotifyFunc delivers a fired reminder. Errors are logged and dropped;
// there is no retry.
type NotifyFunc func(p Payload) error

type entry struct {
	timer *time.Timer
	seq   uint64
}

// Scheduler holds pending one-shot timers keyed by reminder id.
// Timers fire on their own goroutines and never block message handling.
type Scheduler struct {
	notify NotifyFunc
	logger *zap.Logger

	mu     sync.Mutex
	seq    uint64
	timers map[int64]entry
}

// New creates a scheduler delivering through notify.
func New(notify NotifyFunc, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		notify: notify,
		logger: logger,
		timers: make(map[int64]entry),
	}
}

// ScheduleOnce arms a timer that fires once at or after dueAt.
// A dueAt already in the past fires promptly. Re-scheduling an
// existing id replaces the previous timer.
func (s *Scheduler) ScheduleOnce(id int64, dueAt time.Time, p Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[id]; ok {
		old.timer.Stop()
	}

	s.seq++
	seq := s.seq

	d := time.Until(dueAt)
	if d < 0 {
		d = 0
	}

	s.timers[id] = entry{
		timer: time.AfterFunc(d, func() {
			s.fire(id, seq, p)
		}),
		seq: seq,
	}

	s.logger.Info("Reminder scheduled",
		zap.Int64("reminder_id", id),
		zap.Time("due_at", dueAt),
		zap.Duration("in", d),
	)
}

// fire delivers the notification and forgets the timer. The sequence
// check keeps a replaced timer from consuming its successor's slot, so
// a key fires at most once per arming.
func (s *Scheduler) fire(id int64, seq uint64, p Payload) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok || e.seq != seq {
		// Stopped or replaced while this callback was starting.
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.mu.Unlock()

	if err := s.notify(p); err != nil {
		s.logger.Error("Failed to deliver reminder",
			zap.Int64("reminder_id", id),
			zap.Int64("chat_id", p.ChatID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Reminder delivered",
		zap.Int64("reminder_id", id),
		zap.Int64("user_id", p.UserID),
	)
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending timers. Called on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.timers {
		e.timer.Stop()
		delete(s.timers, id)
	}
}
