package oracle

import (
	"context"
	"fmt"
	"math"
	mathrand "math/rand"
	"sort"
	"sync"
	"time"

	"touchline/internal/career"
)

// Simulator is the in-process oracle. It produces full match results with
// an event timeline and per-player ratings from Poisson-sampled
// scorelines, and generates transfer and academy candidates. The API
// server falls back to it when no remote oracle is configured; the
// touchline-oracle binary serves it over HTTP.
type Simulator struct {
	mu   sync.Mutex
	rand *mathrand.Rand
}

func NewSimulator() *Simulator {
	return &Simulator{
		rand: mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
	}
}

var firstNames = []string{
	"Marco", "Julian", "Andre", "Tomas", "Rafael", "Emil", "Noah", "Bruno",
	"Felix", "Hugo", "Ivan", "Jakub", "Kylian", "Leon", "Mateo", "Nico",
	"Oscar", "Pedro", "Sergio", "Theo",
}

var lastNames = []string{
	"Alves", "Becker", "Costa", "Dubois", "Eriksen", "Fischer", "Garcia",
	"Hansen", "Ibanez", "Jansen", "Keller", "Lombardi", "Moreira", "Novak",
	"Olsen", "Pereira", "Quintero", "Rossi", "Silva", "Torres",
}

var commentaryLines = []string{
	"The tempo drops as both sides probe for an opening.",
	"A slick passing move breaks down at the edge of the box.",
	"The crowd urges the home side forward.",
	"Midfield battle, neither side giving an inch.",
	"A long ball over the top is read well by the defence.",
}

// SimulateMatch builds a finished result for the requested fixture. The
// scoreline comes from Poisson sampling over the two sides' strengths,
// with the user's mentality shifting both means.
func (s *Simulator) SimulateMatch(ctx context.Context, req career.MatchRequest) (career.MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	starters := make([]career.RosterEntry, 0, career.StartersRequired)
	for _, entry := range req.Roster {
		if entry.Starting {
			starters = append(starters, entry)
		}
	}
	if len(starters) == 0 {
		// A relaxed lineup rule can send an empty eleven; play the
		// strongest available players instead.
		pool := append([]career.RosterEntry(nil), req.Roster...)
		sort.Slice(pool, func(i, j int) bool { return pool[i].Rating > pool[j].Rating })
		if len(pool) > career.StartersRequired {
			pool = pool[:career.StartersRequired]
		}
		starters = pool
	}

	homeStrength := averageStrength(starters)
	awayStrength := float64(req.OpponentStrength)
	if awayStrength <= 0 {
		awayStrength = 75
	}

	attackBias, defenceBias := mentalityBias(req.Mentality)
	total := homeStrength + awayStrength
	lambdaHome := homeStrength/total*3.0*attackBias + 0.15
	lambdaAway := awayStrength/total*3.0*defenceBias + 0.15

	homeGoals := s.samplePoisson(lambdaHome)
	awayGoals := s.samplePoisson(lambdaAway)
	if s.rand.Intn(6) == 0 {
		homeGoals++
	}
	if s.rand.Intn(7) == 0 {
		awayGoals++
	}

	result := career.MatchResult{
		HomeTeam:  req.ClubName,
		AwayTeam:  req.Opponent,
		HomeScore: homeGoals,
		AwayScore: awayGoals,
		Revenue:   s.gateRevenue(req.StadiumCapacity, req.Tier),
	}
	result.Events = s.buildTimeline(starters, req.Opponent, homeGoals, awayGoals)
	result.PlayerRatings = s.ratePlayers(starters, result)
	result.Summary = summarize(result)
	return result, nil
}

// TransferCandidates generates signable players around the squad's
// average rating, one standout included.
func (s *Simulator) TransferCandidates(ctx context.Context, count int, averageRating float64) ([]career.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count <= 0 {
		count = 4
	}
	base := int(averageRating)
	if base < 55 {
		base = 70
	}
	positions := []career.Position{career.Defender, career.Midfield, career.Attacker, career.Keeper}
	players := make([]career.Player, 0, count)
	for i := 0; i < count; i++ {
		rating := base - 4 + s.rand.Intn(9)
		if i == 0 {
			rating = base + 2 + s.rand.Intn(5)
		}
		if rating > 99 {
			rating = 99
		}
		players = append(players, career.Player{
			Name:        s.playerName(),
			Age:         21 + s.rand.Intn(10),
			Nationality: s.nationality(),
			Position:    positions[s.rand.Intn(len(positions))],
			Rating:      rating,
			Potential:   rating + s.rand.Intn(8),
		})
	}
	return players, nil
}

// AcademyProspect generates one youth intake. A better facility raises
// both the floor and the ceiling.
func (s *Simulator) AcademyProspect(ctx context.Context, academyLevel int) (career.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if academyLevel < 1 {
		academyLevel = 1
	}
	rating := 48 + 2*academyLevel + s.rand.Intn(10)
	potential := rating + 10 + 3*academyLevel + s.rand.Intn(15)
	if potential > 99 {
		potential = 99
	}
	positions := []career.Position{career.Defender, career.Midfield, career.Attacker}
	return career.Player{
		Name:        s.playerName(),
		Nationality: s.nationality(),
		Position:    positions[s.rand.Intn(len(positions))],
		Rating:      rating,
		Potential:   potential,
	}, nil
}

func (s *Simulator) buildTimeline(starters []career.RosterEntry, opponent string, homeGoals, awayGoals int) []career.MatchEvent {
	var events []career.MatchEvent

	scorers := preferredScorers(starters)
	for i := 0; i < homeGoals; i++ {
		scorer := "Unknown"
		if len(scorers) > 0 {
			scorer = scorers[s.rand.Intn(len(scorers))].Name
		}
		events = append(events, career.MatchEvent{
			Minute:      s.goalMinute(),
			Type:        career.EventGoal,
			Side:        career.SideHome,
			Player:      scorer,
			Description: fmt.Sprintf("GOAL! %s finds the net!", scorer),
		})
	}
	for i := 0; i < awayGoals; i++ {
		events = append(events, career.MatchEvent{
			Minute:      s.goalMinute(),
			Type:        career.EventGoal,
			Side:        career.SideAway,
			Player:      opponent,
			Description: fmt.Sprintf("%s score against the run of play.", opponent),
		})
	}

	filler := []career.EventType{
		career.EventShotOffTarget, career.EventFoul, career.EventSave,
		career.EventYellow, career.EventWoodwork, career.EventCommentary,
	}
	for i, n := 0, 8+s.rand.Intn(6); i < n; i++ {
		minute := 1 + s.rand.Intn(career.FullTimeMinute-1)
		evType := filler[s.rand.Intn(len(filler))]
		side := career.SideHome
		if s.rand.Intn(2) == 1 {
			side = career.SideAway
		}
		ev := career.MatchEvent{Minute: minute, Type: evType, Side: side}
		switch evType {
		case career.EventSave:
			ev.Description = "A smart stop keeps the score level."
			if side == career.SideHome && len(starters) > 0 {
				for _, st := range starters {
					if st.Position == string(career.Keeper) {
						ev.Player = st.Name
						break
					}
				}
			}
		case career.EventCommentary:
			ev.Description = commentaryLines[s.rand.Intn(len(commentaryLines))]
		case career.EventYellow:
			ev.Description = "A cynical foul earns a booking."
			if side == career.SideHome && len(starters) > 0 {
				ev.Player = starters[s.rand.Intn(len(starters))].Name
			}
		case career.EventWoodwork:
			ev.Description = "The frame of the goal rattles!"
		case career.EventShotOffTarget:
			ev.Description = "A shot whistles just wide."
		case career.EventFoul:
			ev.Description = "The referee calls play back for a foul."
		}
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Minute < events[j].Minute })
	return events
}

// ratePlayers scores every starter 4.0-10.0, biased by the result and
// bumped for scorers.
func (s *Simulator) ratePlayers(starters []career.RosterEntry, result career.MatchResult) map[string]float64 {
	bias := 0.0
	switch result.Outcome() {
	case career.OutcomeWin:
		bias = 0.8
	case career.OutcomeLoss:
		bias = -0.8
	}
	scorerBonus := make(map[string]float64)
	for _, ev := range result.Events {
		if ev.Type == career.EventGoal && ev.Side == career.SideHome {
			scorerBonus[ev.Player] += 1.0
		}
	}
	ratings := make(map[string]float64, len(starters))
	for _, entry := range starters {
		r := 6.0 + bias + (s.rand.Float64()*2 - 1) + scorerBonus[entry.Name]
		r += (float64(entry.Rating) - 80) / 40
		ratings[entry.ID] = math.Round(clamp(r, 4.0, 10.0)*10) / 10
	}
	return ratings
}

func (s *Simulator) gateRevenue(capacity, tier int) int64 {
	if capacity <= 0 {
		capacity = 20_000
	}
	fill := 0.65 + s.rand.Float64()*0.3
	ticket := int64(28)
	if tier == 1 {
		ticket = 45
	}
	return int64(float64(capacity)*fill) * ticket
}

func (s *Simulator) goalMinute() int {
	// Goals cluster in the second half; never stamped past full time.
	m := 1 + s.rand.Intn(career.FullTimeMinute-1)
	if s.rand.Intn(3) > 0 && m < 45 {
		m += 45
	}
	if m >= career.FullTimeMinute {
		m = career.FullTimeMinute - 1
	}
	return m
}

func (s *Simulator) samplePoisson(lambda float64) int {
	L := math.Exp(-lambda)
	p := 1.0
	k := 0
	for p > L {
		k++
		p *= s.rand.Float64()
	}
	return k - 1
}

func (s *Simulator) playerName() string {
	return firstNames[s.rand.Intn(len(firstNames))] + " " + lastNames[s.rand.Intn(len(lastNames))]
}

func (s *Simulator) nationality() string {
	pool := []string{"England", "France", "Brazil", "Spain", "Germany", "Argentina", "Portugal", "Netherlands", "Italy", "Uruguay"}
	return pool[s.rand.Intn(len(pool))]
}

func preferredScorers(starters []career.RosterEntry) []career.RosterEntry {
	var attackers, others []career.RosterEntry
	for _, entry := range starters {
		switch entry.Position {
		case string(career.Attacker), string(career.Midfield):
			attackers = append(attackers, entry)
		case string(career.Keeper):
		default:
			others = append(others, entry)
		}
	}
	if len(attackers) > 0 {
		return attackers
	}
	return others
}

func averageStrength(starters []career.RosterEntry) float64 {
	if len(starters) == 0 {
		return 70
	}
	sum := 0
	for _, entry := range starters {
		sum += entry.Rating
	}
	return float64(sum) / float64(len(starters))
}

func mentalityBias(m career.Mentality) (attack, concede float64) {
	switch m {
	case career.MentalityDefensive:
		return 0.85, 0.8
	case career.MentalityAttacking:
		return 1.15, 1.1
	case career.MentalityGungHo:
		return 1.3, 1.3
	default:
		return 1.0, 1.0
	}
}

func summarize(r career.MatchResult) string {
	switch r.Outcome() {
	case career.OutcomeWin:
		return fmt.Sprintf("%s beat %s %d-%d.", r.HomeTeam, r.AwayTeam, r.HomeScore, r.AwayScore)
	case career.OutcomeLoss:
		return fmt.Sprintf("%s fall %d-%d to %s.", r.HomeTeam, r.HomeScore, r.AwayScore, r.AwayTeam)
	default:
		return fmt.Sprintf("%s and %s share the points at %d-%d.", r.HomeTeam, r.AwayTeam, r.HomeScore, r.AwayScore)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
