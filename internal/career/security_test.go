package career

import (
	"errors"
	"testing"
)

func TestSecurityDelta(t *testing.T) {
	tests := []struct {
		status  CareerStatus
		outcome Outcome
		want    int
	}{
		{StatusEmployed, OutcomeWin, 4},
		{StatusEmployed, OutcomeDraw, 0},
		{StatusEmployed, OutcomeLoss, -12},
		{StatusPledged, OutcomeLoss, -24},
		{StatusPledged, OutcomeWin, 4},
		{StatusCrisis, OutcomeLoss, -12},
	}
	for _, tc := range tests {
		got := SecurityDelta(tc.status, tc.outcome)
		if got != tc.want {
			t.Fatalf("status=%s outcome=%s got=%d want=%d", tc.status, tc.outcome, got, tc.want)
		}
	}
}

func TestEvaluateSecurityNoCrisisAboveThreshold(t *testing.T) {
	status, security := EvaluateSecurity(StatusEmployed, 80, OutcomeLoss)
	if status != StatusEmployed || security != 68 {
		t.Fatalf("got status=%s security=%d, want employed/68", status, security)
	}
}

func TestEvaluateSecurityCrisisFiresOnce(t *testing.T) {
	status, security := EvaluateSecurity(StatusEmployed, 18, OutcomeLoss)
	if status != StatusCrisis || security != 6 {
		t.Fatalf("got status=%s security=%d, want crisis/6", status, security)
	}

	// Already in crisis: another bad result must not re-trigger anything
	// while the ultimatum is unresolved, short of a sacking.
	status, security = EvaluateSecurity(StatusCrisis, 6, OutcomeDraw)
	if status != StatusCrisis || security != 6 {
		t.Fatalf("got status=%s security=%d, want crisis/6", status, security)
	}
}

func TestEvaluateSecuritySackPrecedesCrisis(t *testing.T) {
	// From 8 a loss lands at zero: sacked, not a second crisis.
	status, security := EvaluateSecurity(StatusCrisis, 8, OutcomeLoss)
	if status != StatusSacked {
		t.Fatalf("got status=%s, want sacked", status)
	}
	if security != 0 {
		t.Fatalf("security floors at 0, got %d", security)
	}
}

func TestEvaluateSecurityLossLadder(t *testing.T) {
	status := StatusEmployed
	security := 44
	status, security = EvaluateSecurity(status, security, OutcomeLoss)
	if status != StatusEmployed || security != 32 {
		t.Fatalf("step 1: got %s/%d", status, security)
	}
	status, security = EvaluateSecurity(status, security, OutcomeLoss)
	if status != StatusEmployed || security != 20 {
		t.Fatalf("step 2: got %s/%d", status, security)
	}
	status, security = EvaluateSecurity(status, security, OutcomeLoss)
	if status != StatusCrisis || security != 8 {
		t.Fatalf("step 3: got %s/%d", status, security)
	}
	status, security = EvaluateSecurity(status, security, OutcomeLoss)
	if status != StatusSacked || security != 0 {
		t.Fatalf("step 4: got %s/%d", status, security)
	}
}

func TestEvaluateSecurityPledgedNeverReenterCrisis(t *testing.T) {
	// 35 - 24 = 11, below the crisis threshold, but a pledged manager
	// plays on until sacked.
	status, security := EvaluateSecurity(StatusPledged, PledgeSecurity, OutcomeLoss)
	if status != StatusPledged || security != 11 {
		t.Fatalf("got %s/%d, want pledged/11", status, security)
	}
	status, security = EvaluateSecurity(status, security, OutcomeLoss)
	if status != StatusSacked || security != 0 {
		t.Fatalf("got %s/%d, want sacked/0", status, security)
	}
}

func TestPledgeAndResignRequireCrisis(t *testing.T) {
	if _, _, err := Pledge(StatusEmployed); !errors.Is(err, ErrNoCrisis) {
		t.Fatalf("expected ErrNoCrisis, got %v", err)
	}
	status, security, err := Pledge(StatusCrisis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusPledged || security != PledgeSecurity {
		t.Fatalf("got %s/%d, want pledged/%d", status, security, PledgeSecurity)
	}

	if _, err := Resign(StatusPledged); !errors.Is(err, ErrNoCrisis) {
		t.Fatalf("expected ErrNoCrisis, got %v", err)
	}
	status, err = Resign(StatusCrisis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusUnemployed {
		t.Fatalf("got %s, want unemployed", status)
	}
}

func TestGenerateOffers(t *testing.T) {
	offers := GenerateOffers(OpponentClubs, func(int) int { return 0 })
	if len(offers) != 4 {
		t.Fatalf("expected 4 offers, got %d", len(offers))
	}
	wantSalaries := []int64{120_000, 85_000, 45_000, 30_000}
	wantTiers := []int{1, 1, 2, 2}
	for i, offer := range offers {
		if offer.Salary != wantSalaries[i] {
			t.Fatalf("offer %d salary got=%d want=%d", i, offer.Salary, wantSalaries[i])
		}
		if offer.Tier != wantTiers[i] {
			t.Fatalf("offer %d tier got=%d want=%d", i, offer.Tier, wantTiers[i])
		}
		if offer.ID == "" {
			t.Fatalf("offer %d has no id", i)
		}
	}
	if offers[0].ClubName != OpponentClubs[0] || offers[3].ClubName != OpponentClubs[30] {
		t.Fatalf("offers drawn from wrong pool slots: %v", offers)
	}
}

func TestAcceptOfferKeepsSquadResetsClub(t *testing.T) {
	club := SeedClub(func(int) int { return 1 })
	club.Wins, club.Draws, club.Losses = 10, 3, 5
	club.GoalsFor, club.GoalsAgainst = 30, 20
	club.Matchday = 18
	club.JobSecurity = 0
	club.PointDeduction = 3
	club.Financials.Expenditure = 40_000_000
	squadSize := len(club.Players)
	funds := club.Funds

	AcceptOffer(&club, JobOffer{ID: "x", ClubName: "Arsenal London", Tier: 1, Salary: 120_000})

	if club.Name != "Arsenal London" || club.Tier != 1 || club.ManagerSalary != 120_000 {
		t.Fatalf("club identity not updated: %+v", club)
	}
	if club.JobSecurity != StartingSecurity {
		t.Fatalf("security got=%d want=%d", club.JobSecurity, StartingSecurity)
	}
	if club.Matchday != 0 || club.Wins != 0 || club.GoalsFor != 0 || club.PointDeduction != 0 {
		t.Fatalf("season record not reset: %+v", club)
	}
	if club.Financials.Expenditure != 0 || club.Financials.FFPStatus != FFPHealthy {
		t.Fatalf("financials not reset: %+v", club.Financials)
	}
	if len(club.Players) != squadSize {
		t.Fatalf("squad must follow the manager: got %d want %d", len(club.Players), squadSize)
	}
	if club.Funds != funds {
		t.Fatalf("funds must survive the move: got %d want %d", club.Funds, funds)
	}
}
