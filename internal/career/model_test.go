package career

import (
	"errors"
	"testing"
)

func TestFFPStatusFor(t *testing.T) {
	tests := []struct {
		netSpend int64
		want     FFPStatus
	}{
		{netSpend: -5_000_000, want: FFPHealthy},
		{netSpend: 0, want: FFPHealthy},
		{netSpend: 15_000_000, want: FFPHealthy},
		{netSpend: 15_000_001, want: FFPWarning},
		{netSpend: 30_000_000, want: FFPWarning},
		{netSpend: 30_000_001, want: FFPViolation},
	}
	for _, tc := range tests {
		if got := FFPStatusFor(tc.netSpend); got != tc.want {
			t.Fatalf("netSpend=%d got=%s want=%s", tc.netSpend, got, tc.want)
		}
	}
}

func TestSeasonPoints(t *testing.T) {
	tests := []struct {
		wins, draws, deduction int
		want                   int
	}{
		{wins: 10, draws: 4, deduction: 0, want: 34},
		{wins: 2, draws: 1, deduction: 6, want: 1},
		{wins: 1, draws: 0, deduction: 9, want: 0},
		{wins: 0, draws: 0, deduction: 0, want: 0},
	}
	for _, tc := range tests {
		got := SeasonPoints(tc.wins, tc.draws, tc.deduction)
		if got != tc.want {
			t.Fatalf("wins=%d draws=%d deduction=%d got=%d want=%d",
				tc.wins, tc.draws, tc.deduction, got, tc.want)
		}
	}
}

func TestRenewalTerms(t *testing.T) {
	newSalary, fee := RenewalTerms(100_000)
	if newSalary != 115_000 {
		t.Fatalf("new salary got=%d want=115000", newSalary)
	}
	if fee != 460_000 {
		t.Fatalf("fee got=%d want=460000", fee)
	}
}

func TestValidateLineup(t *testing.T) {
	club := SeedClub(func(int) int { return 0 })
	if err := ValidateLineup(&club); err != nil {
		t.Fatalf("seeded club should have a valid lineup: %v", err)
	}

	short := club
	short.Tactics.StartingXI = club.Tactics.StartingXI[:10]
	if err := ValidateLineup(&short); !errors.Is(err, ErrInvalidLineup) {
		t.Fatalf("expected ErrInvalidLineup for 10 starters, got %v", err)
	}

	ghost := club
	ghost.Tactics.StartingXI = append([]string(nil), club.Tactics.StartingXI...)
	ghost.Tactics.StartingXI[3] = "not-a-player"
	if err := ValidateLineup(&ghost); !errors.Is(err, ErrInvalidLineup) {
		t.Fatalf("expected ErrInvalidLineup for unknown starter, got %v", err)
	}

	dup := club
	dup.Tactics.StartingXI = append([]string(nil), club.Tactics.StartingXI...)
	dup.Tactics.StartingXI[5] = dup.Tactics.StartingXI[4]
	if err := ValidateLineup(&dup); !errors.Is(err, ErrInvalidLineup) {
		t.Fatalf("expected ErrInvalidLineup for duplicate starter, got %v", err)
	}
}

func TestWeeklyWagesIncludesManager(t *testing.T) {
	c := Club{
		ManagerSalary: 50_000,
		Players: []Player{
			{Salary: 80_000},
			{Salary: 70_000},
		},
	}
	if got := WeeklyWages(&c); got != 200_000 {
		t.Fatalf("got %d want 200000", got)
	}
}

func TestAcademyPricing(t *testing.T) {
	if got := RecruitFee(3); got != 3_000_000 {
		t.Fatalf("recruit fee got=%d want=3000000", got)
	}
	if got := UpgradeCost(2); got != 15_000_000 {
		t.Fatalf("upgrade cost got=%d want=15000000", got)
	}
}

func TestRecentForm(t *testing.T) {
	p := Player{MatchHistory: []float64{6, 7, 8, 9, 5, 6.5, 7.5}}
	got := p.RecentForm()
	if len(got) != 5 {
		t.Fatalf("expected 5 ratings, got %d", len(got))
	}
	if got[0] != 8 || got[4] != 7.5 {
		t.Fatalf("wrong window: %v", got)
	}
}
