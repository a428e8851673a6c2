package oracle

import (
	"context"
	"testing"

	"touchline/internal/career"
)

func simRequest() career.MatchRequest {
	roster := make([]career.RosterEntry, 0, 14)
	for i := 0; i < 14; i++ {
		entry := career.RosterEntry{
			ID:       string(rune('a' + i)),
			Name:     "Player " + string(rune('A'+i)),
			Position: string(career.Midfield),
			Rating:   78 + i%6,
			Starting: i < 11,
		}
		if i == 0 {
			entry.Position = string(career.Keeper)
		}
		roster = append(roster, entry)
	}
	return career.MatchRequest{
		ClubName:         "Touchline United",
		Tier:             2,
		Opponent:         "Leeds White",
		OpponentStrength: 74,
		Mentality:        career.MentalityBalanced,
		Focus:            career.FocusMixed,
		Roster:           roster,
		StadiumCapacity:  25_000,
	}
}

func TestSimulateMatchInvariants(t *testing.T) {
	sim := NewSimulator()
	for run := 0; run < 25; run++ {
		result, err := sim.SimulateMatch(context.Background(), simRequest())
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		if result.HomeTeam != "Touchline United" || result.AwayTeam != "Leeds White" {
			t.Fatalf("teams wrong: %s vs %s", result.HomeTeam, result.AwayTeam)
		}
		if result.HomeScore < 0 || result.AwayScore < 0 {
			t.Fatalf("negative score: %d-%d", result.HomeScore, result.AwayScore)
		}

		home, away := 0, 0
		lastMinute := 0
		for _, ev := range result.Events {
			if ev.Minute < 1 || ev.Minute >= career.FullTimeMinute {
				t.Fatalf("event minute %d out of range", ev.Minute)
			}
			if ev.Minute < lastMinute {
				t.Fatalf("events not in minute order")
			}
			lastMinute = ev.Minute
			if ev.Type == career.EventGoal {
				if ev.Side == career.SideHome {
					home++
				} else {
					away++
				}
			}
		}
		if home != result.HomeScore || away != result.AwayScore {
			t.Fatalf("timeline goals %d-%d do not match score %d-%d",
				home, away, result.HomeScore, result.AwayScore)
		}

		if len(result.PlayerRatings) != 11 {
			t.Fatalf("expected 11 rated starters, got %d", len(result.PlayerRatings))
		}
		for id, rating := range result.PlayerRatings {
			if rating < 4.0 || rating > 10.0 {
				t.Fatalf("rating %f for %s out of range", rating, id)
			}
		}
		if result.Revenue <= 0 {
			t.Fatalf("no gate revenue")
		}
		if result.Summary == "" {
			t.Fatalf("missing summary")
		}
	}
}

func TestTransferCandidates(t *testing.T) {
	sim := NewSimulator()
	players, err := sim.TransferCandidates(context.Background(), 4, 82)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(players))
	}
	for _, p := range players {
		if p.Name == "" || p.Rating <= 0 {
			t.Fatalf("blank candidate: %+v", p)
		}
		if p.Potential < p.Rating {
			t.Fatalf("potential below rating: %+v", p)
		}
	}
}

func TestAcademyProspectScalesWithFacility(t *testing.T) {
	sim := NewSimulator()
	low, err := sim.AcademyProspect(context.Background(), 1)
	if err != nil {
		t.Fatalf("prospect: %v", err)
	}
	if low.Rating < 50 || low.Potential > 99 {
		t.Fatalf("prospect out of range: %+v", low)
	}
	high, err := sim.AcademyProspect(context.Background(), 5)
	if err != nil {
		t.Fatalf("prospect: %v", err)
	}
	if high.Rating < low.Rating-11 {
		t.Fatalf("top facility floor too low: %d vs %d", high.Rating, low.Rating)
	}
}
