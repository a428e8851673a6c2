package career

import "sort"

// ClubStanding derives the user club's live table row from club state.
// The row is never stored alongside the opponent rows, so the two
// representations cannot drift.
func ClubStanding(c *Club) Standing {
	return Standing{
		Name:         c.Name,
		Tier:         c.Tier,
		Played:       c.Wins + c.Draws + c.Losses,
		Wins:         c.Wins,
		Draws:        c.Draws,
		Losses:       c.Losses,
		GoalsFor:     c.GoalsFor,
		GoalsAgainst: c.GoalsAgainst,
		Points:       SeasonPoints(c.Wins, c.Draws, c.PointDeduction),
	}
}

// SortedStandings returns the table for one tier, points descending with
// goal difference as the tie-break, stable beyond that. When the user
// club plays in the tier its live row replaces any placeholder of the
// same name, or is appended if absent. Pass includeClub=false while the
// manager is unemployed.
func SortedStandings(rows []Standing, c *Club, tier int, includeClub bool) []Standing {
	table := make([]Standing, 0, len(rows)+1)
	for _, r := range rows {
		if r.Tier == tier {
			table = append(table, r)
		}
	}
	if includeClub && c != nil && c.Tier == tier {
		live := ClubStanding(c)
		replaced := false
		for i := range table {
			if table[i].Name == live.Name {
				table[i] = live
				replaced = true
				break
			}
		}
		if !replaced {
			table = append(table, live)
		}
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].GoalDiff() > table[j].GoalDiff()
	})
	return table
}
