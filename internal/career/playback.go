package career

import (
	"sync"
	"time"
)

// Playback replays a finalized match result minute by minute. It owns no
// scheduling of its own: Tick advances the logical clock by one minute,
// so tests can drive a whole match synchronously, while Run adapts it to
// a wall-clock ticker. The completion callback fires exactly once, only
// when minute 95 is reached naturally; cancellation never triggers it.
type Playback struct {
	mu        sync.Mutex
	result    MatchResult
	minute    int
	homeScore int
	awayScore int
	revealed  []MatchEvent
	done      bool
	cancelled bool
	stop      chan struct{}
	stopOnce  sync.Once
	onDone    func(MatchResult)
}

func NewPlayback(result MatchResult, onDone func(MatchResult)) *Playback {
	return &Playback{
		result: result,
		stop:   make(chan struct{}),
		onDone: onDone,
	}
}

// Tick advances the clock one minute, revealing every event stamped with
// the new minute in its original order and scoring revealed goals. It
// reports whether the playback has finished. The completion callback is
// invoked outside the playback lock.
func (p *Playback) Tick() bool {
	p.mu.Lock()
	if p.done || p.cancelled {
		p.mu.Unlock()
		return p.done
	}
	p.minute++
	for _, ev := range p.result.Events {
		if ev.Minute != p.minute {
			continue
		}
		p.revealed = append([]MatchEvent{ev}, p.revealed...)
		if ev.Type == EventGoal {
			if ev.Side == SideHome {
				p.homeScore++
			} else {
				p.awayScore++
			}
		}
	}
	finished := p.minute >= FullTimeMinute
	if finished {
		p.done = true
	}
	onDone := p.onDone
	result := p.result
	p.mu.Unlock()

	if finished {
		p.stopOnce.Do(func() { close(p.stop) })
		if onDone != nil {
			onDone(result)
		}
	}
	return finished
}

// Cancel stops the playback without resolving the match. Safe to call
// any number of times, including after natural completion.
func (p *Playback) Cancel() {
	p.mu.Lock()
	if !p.done {
		p.cancelled = true
	}
	p.mu.Unlock()
	p.stopOnce.Do(func() { close(p.stop) })
}

// Run drives Tick on a real clock until completion or cancellation.
// period is the wall time per match minute.
func (p *Playback) Run(period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			if p.Tick() {
				return
			}
		}
	}
}

// Live snapshots the playback state for presentation. Revealed events are
// ordered most-recent-first.
func (p *Playback) Live() LiveMatch {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]MatchEvent, len(p.revealed))
	copy(events, p.revealed)
	return LiveMatch{
		Active:    !p.done && !p.cancelled,
		Minute:    p.minute,
		HomeTeam:  p.result.HomeTeam,
		AwayTeam:  p.result.AwayTeam,
		HomeScore: p.homeScore,
		AwayScore: p.awayScore,
		Events:    events,
	}
}

func (p *Playback) finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *Playback) active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.done && !p.cancelled
}
