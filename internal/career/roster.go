package career

// ResolveRoster applies a finished match to the squad and returns the
// post-match players. Players absent from the rating map recover fitness;
// players who took part pay fitness, gain an appearance, and have their
// running average rating and form re-blended from the new rating.
//
// intn supplies the cosmetic save filler for keepers when the oracle
// reported no save events; pass a deterministic func in tests.
func ResolveRoster(players []Player, result MatchResult, intn func(int) int) []Player {
	goalsByPlayer := make(map[string]int)
	homeSaves := 0
	for _, ev := range result.Events {
		if ev.Side != SideHome {
			continue
		}
		switch ev.Type {
		case EventGoal:
			goalsByPlayer[normalizeName(ev.Player)]++
		case EventSave:
			homeSaves++
		}
	}

	out := make([]Player, len(players))
	for i, p := range players {
		rating, played := result.PlayerRatings[p.ID]
		if !played {
			p.Fitness = clampInt(p.Fitness+FitnessRecovery, 0, FitnessCap)
			out[i] = p
			continue
		}

		p.Fitness = clampInt(p.Fitness-FitnessMatchCost, FitnessFloor, FitnessCap)
		p.Form = clampForm((p.Form + rating/5) / 2)

		history := make([]float64, len(p.MatchHistory), len(p.MatchHistory)+1)
		copy(history, p.MatchHistory)
		p.MatchHistory = append(history, rating)

		apps := p.Stats.Appearances
		p.Stats.AvgRating = (p.Stats.AvgRating*float64(apps) + rating) / float64(apps+1)
		p.Stats.Appearances = apps + 1
		p.Stats.Goals += goalsByPlayer[normalizeName(p.Name)]

		if p.Position == Keeper {
			if result.AwayScore == 0 {
				p.Stats.CleanSheets++
			}
			if homeSaves > 0 {
				p.Stats.Saves += homeSaves
			} else if intn != nil {
				p.Stats.Saves += intn(3)
			}
		}
		out[i] = p
	}
	return out
}
