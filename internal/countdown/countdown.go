package countdown

import (
	"sync"
	"time"
)

// State is the decomposition of the time remaining until a target instant.
// Once Expired is true the countdown is terminal; no further states follow.
type State struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Expired bool
}

// ExpiredState is the terminal all-zero state.
func ExpiredState() State {
	return State{Expired: true}
}

// Remaining returns the total duration the state represents.
func (s State) Remaining() time.Duration {
	return time.Duration(s.Days)*24*time.Hour +
		time.Duration(s.Hours)*time.Hour +
		time.Duration(s.Minutes)*time.Minute +
		time.Duration(s.Seconds)*time.Second
}

// TimeLeft decomposes the difference between target and now into days,
// hours, minutes and seconds. A zero or past target, including an unparsed
// instant that arrives as the zero time, yields the expired state.
func TimeLeft(target, now time.Time) State {
	if target.IsZero() {
		return ExpiredState()
	}
	difference := target.Sub(now)
	if difference <= 0 {
		return ExpiredState()
	}

	ms := difference.Milliseconds()
	return State{
		Days:    int(ms / 86_400_000),
		Hours:   int(ms / 3_600_000 % 24),
		Minutes: int(ms / 60_000 % 60),
		Seconds: int(ms / 1_000 % 60),
	}
}

// Countdown ticks once per second toward a target instant. The stream on C
// ends after the expired state is delivered; a new target needs a new
// Countdown.
type Countdown struct {
	C <-chan State

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Start begins ticking toward target. The first state is emitted
// immediately, so a consumer sees the current remaining time without waiting
// a second; if the target is already past (or invalid) the expired state is
// the only emission.
func Start(target time.Time) *Countdown {
	out := make(chan State, 1)
	c := &Countdown{
		C:    out,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(c.done)
		defer close(out)

		state := TimeLeft(target, time.Now())
		if !c.emit(out, state) || state.Expired {
			return
		}

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				state = TimeLeft(target, time.Now())
				if !c.emit(out, state) || state.Expired {
					return
				}
			}
		}
	}()

	return c
}

// emit delivers a state unless the countdown was stopped first.
func (c *Countdown) emit(out chan<- State, state State) bool {
	select {
	case out <- state:
		return true
	case <-c.stop:
		return false
	}
}

// Stop cancels the countdown and releases its ticker. Safe to call more than
// once and after expiry.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	// Drain so the goroutine is never stuck on a full channel.
	for range c.C {
	}
	<-c.done
}
