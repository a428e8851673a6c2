package career

import "testing"

func playbackResult() MatchResult {
	return MatchResult{
		HomeTeam:  "Touchline United",
		AwayTeam:  "Leeds White",
		HomeScore: 2,
		AwayScore: 1,
		Events: []MatchEvent{
			{Minute: 10, Type: EventGoal, Side: SideHome, Player: "Mohamed Sadiq"},
			{Minute: 34, Type: EventYellow, Side: SideAway, Player: "Some Defender"},
			{Minute: 58, Type: EventGoal, Side: SideAway, Player: "Their Striker"},
			{Minute: 90, Type: EventGoal, Side: SideHome, Player: "Luis Diarte"},
		},
	}
}

func TestPlaybackScoreMatchesRevealedGoals(t *testing.T) {
	pb := NewPlayback(playbackResult(), nil)
	for minute := 1; minute <= FullTimeMinute; minute++ {
		pb.Tick()
		live := pb.Live()
		if live.Minute != minute {
			t.Fatalf("minute got=%d want=%d", live.Minute, minute)
		}
		home, away := 0, 0
		for _, ev := range live.Events {
			if ev.Type != EventGoal {
				continue
			}
			if ev.Side == SideHome {
				home++
			} else {
				away++
			}
		}
		if live.HomeScore != home || live.AwayScore != away {
			t.Fatalf("minute %d: score %d-%d, revealed goals %d-%d",
				minute, live.HomeScore, live.AwayScore, home, away)
		}
	}
	live := pb.Live()
	if live.HomeScore != 2 || live.AwayScore != 1 {
		t.Fatalf("final score got=%d-%d want=2-1", live.HomeScore, live.AwayScore)
	}
	if live.Active {
		t.Fatalf("playback still active after full time")
	}
}

func TestPlaybackEventsMostRecentFirst(t *testing.T) {
	pb := NewPlayback(playbackResult(), nil)
	for minute := 1; minute <= 60; minute++ {
		pb.Tick()
	}
	live := pb.Live()
	if len(live.Events) != 3 {
		t.Fatalf("expected 3 revealed events, got %d", len(live.Events))
	}
	if live.Events[0].Minute != 58 || live.Events[2].Minute != 10 {
		t.Fatalf("events not most-recent-first: %v", live.Events)
	}
}

func TestPlaybackResolvesExactlyOnce(t *testing.T) {
	resolved := 0
	pb := NewPlayback(playbackResult(), func(MatchResult) { resolved++ })
	for minute := 1; minute <= FullTimeMinute+10; minute++ {
		pb.Tick()
	}
	if resolved != 1 {
		t.Fatalf("resolution count got=%d want=1", resolved)
	}
}

func TestPlaybackCancelNeverResolves(t *testing.T) {
	resolved := 0
	pb := NewPlayback(playbackResult(), func(MatchResult) { resolved++ })
	for minute := 1; minute <= 40; minute++ {
		pb.Tick()
	}
	pb.Cancel()
	pb.Cancel() // idempotent

	// Ticks after cancellation are inert.
	for minute := 0; minute < 200; minute++ {
		pb.Tick()
	}
	if resolved != 0 {
		t.Fatalf("cancelled match must not resolve, got %d resolutions", resolved)
	}
	live := pb.Live()
	if live.Active {
		t.Fatalf("cancelled playback still reports active")
	}
	if live.Minute != 40 {
		t.Fatalf("clock moved after cancel: %d", live.Minute)
	}
}

func TestPlaybackCancelAfterCompletionIsNoop(t *testing.T) {
	resolved := 0
	pb := NewPlayback(playbackResult(), func(MatchResult) { resolved++ })
	for minute := 1; minute <= FullTimeMinute; minute++ {
		pb.Tick()
	}
	pb.Cancel()
	if resolved != 1 {
		t.Fatalf("late cancel must not undo resolution, got %d", resolved)
	}
	if !pb.finished() {
		t.Fatalf("completed playback must stay finished")
	}
}
