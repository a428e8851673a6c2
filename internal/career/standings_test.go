package career

import "testing"

func TestSortedStandingsOrdering(t *testing.T) {
	rows := []Standing{
		{Name: "Alpha", Tier: 1, Points: 10, GoalsFor: 12, GoalsAgainst: 10},
		{Name: "Beta", Tier: 1, Points: 15, GoalsFor: 20, GoalsAgainst: 8},
		{Name: "Gamma", Tier: 1, Points: 15, GoalsFor: 25, GoalsAgainst: 5},
		{Name: "Delta", Tier: 2, Points: 30},
	}
	table := SortedStandings(rows, nil, 1, false)

	if len(table) != 3 {
		t.Fatalf("tier filter failed: got %d rows", len(table))
	}
	want := []string{"Gamma", "Beta", "Alpha"}
	for i, name := range want {
		if table[i].Name != name {
			t.Fatalf("position %d got=%s want=%s", i+1, table[i].Name, name)
		}
	}
}

func TestSortedStandingsStableOnFullTie(t *testing.T) {
	rows := []Standing{
		{Name: "First", Tier: 1, Points: 10, GoalsFor: 5, GoalsAgainst: 3},
		{Name: "Second", Tier: 1, Points: 10, GoalsFor: 7, GoalsAgainst: 5},
	}
	table := SortedStandings(rows, nil, 1, false)
	if table[0].Name != "First" || table[1].Name != "Second" {
		t.Fatalf("tied rows must keep input order: %v, %v", table[0].Name, table[1].Name)
	}
}

func TestSortedStandingsLiveClubReplacesPlaceholder(t *testing.T) {
	rows := []Standing{
		{Name: "Touchline United", Tier: 2, Points: 0},
		{Name: "Leeds White", Tier: 2, Points: 6, GoalsFor: 5, GoalsAgainst: 1},
	}
	club := Club{Name: "Touchline United", Tier: 2, Wins: 4, Draws: 1, GoalsFor: 10, GoalsAgainst: 2}

	table := SortedStandings(rows, &club, 2, true)
	if len(table) != 2 {
		t.Fatalf("live row must replace the placeholder, got %d rows", len(table))
	}
	if table[0].Name != "Touchline United" || table[0].Points != 13 {
		t.Fatalf("live row wrong: %+v", table[0])
	}
	if table[0].Played != 5 {
		t.Fatalf("played got=%d want=5", table[0].Played)
	}
}

func TestSortedStandingsLiveClubAppendedWhenAbsent(t *testing.T) {
	rows := []Standing{
		{Name: "Leeds White", Tier: 2, Points: 6},
	}
	club := Club{Name: "Touchline United", Tier: 2, Wins: 1}
	table := SortedStandings(rows, &club, 2, true)
	if len(table) != 2 {
		t.Fatalf("live row must be appended, got %d rows", len(table))
	}
}

func TestSortedStandingsUnemployedHidesClub(t *testing.T) {
	rows := []Standing{
		{Name: "Leeds White", Tier: 2, Points: 6},
	}
	club := Club{Name: "Touchline United", Tier: 2, Wins: 10}
	table := SortedStandings(rows, &club, 2, false)
	if len(table) != 1 {
		t.Fatalf("unemployed manager's club must not appear, got %d rows", len(table))
	}
}

func TestClubStandingAppliesDeduction(t *testing.T) {
	club := Club{Name: "Touchline United", Tier: 2, Wins: 4, Draws: 2, PointDeduction: 6}
	row := ClubStanding(&club)
	if row.Points != 8 {
		t.Fatalf("points got=%d want=8", row.Points)
	}
}
