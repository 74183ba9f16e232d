package carousel

import (
	"sync"
	"time"
)

// MinInterval is the smallest autoplay period the scheduler will run with.
const MinInterval = 100 * time.Millisecond

// NormalizeInterval raises non-positive and too-short periods to MinInterval.
func NormalizeInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// Ticker is the subset of time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Tests substitute a manual clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

type realTicker struct{ t *time.Ticker }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{t: time.NewTicker(d)} }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// SystemClock returns a Clock backed by time.NewTicker.
func SystemClock() Clock { return realClock{} }

type SchedulerState string

const (
	SchedulerIdle    SchedulerState = "idle"
	SchedulerRunning SchedulerState = "running"
)

// Scheduler runs at most one periodic ticker. Every Start/Stop moves the
// generation forward; a tick carries the generation it was started with and
// is only honoured while that generation is current.
type Scheduler struct {
	clock  Clock
	onTick func(gen uint64)

	mu       sync.Mutex
	running  bool
	interval time.Duration
	gen      uint64
	ticker   Ticker
	stop     chan struct{}
}

func NewScheduler(clock Clock, onTick func(gen uint64)) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{clock: clock, onTick: onTick}
}

// Start begins ticking every interval. Starting an already running scheduler
// with the same interval does nothing; a different interval replaces the ticker.
func (s *Scheduler) Start(interval time.Duration) {
	interval = NormalizeInterval(interval)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && s.interval == interval {
		return
	}
	s.stopLocked()

	s.gen++
	s.running = true
	s.interval = interval
	stop := make(chan struct{})
	s.stop = stop
	s.ticker = s.clock.NewTicker(interval)
	go s.loop(s.ticker, stop, s.gen)
}

func (s *Scheduler) loop(t Ticker, stop <-chan struct{}, gen uint64) {
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			select {
			case <-stop:
				return
			default:
			}
			if s.onTick != nil {
				s.onTick(gen)
			}
		}
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if !s.running {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.ticker = nil
	s.stop = nil
	s.running = false
	s.gen++
}

// Reevaluate starts or stops the ticker to match run.
func (s *Scheduler) Reevaluate(run bool, interval time.Duration) {
	if run {
		s.Start(interval)
		return
	}
	s.Stop()
}

// Valid reports whether a tick from generation gen may still act.
func (s *Scheduler) Valid(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && s.gen == gen
}

func (s *Scheduler) State() SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return SchedulerRunning
	}
	return SchedulerIdle
}

func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}
