package career

import (
	"errors"
	"fmt"
	"strings"
)

const (
	SeasonLength     = 38
	FullTimeMinute   = 95
	StartersRequired = 11

	StartingSecurity = 80
	PledgeSecurity   = 35
	CrisisThreshold  = 20
	WarnThreshold    = 25

	SecurityWinDelta  = 4
	SecurityDrawDelta = 0
	SecurityLossDelta = -12

	FitnessMatchCost = 12
	FitnessFloor     = 50
	FitnessRecovery  = 5
	FitnessCap       = 100

	SeasonEndBonus = int64(20_000_000)

	FFPWarningNetSpend   = int64(15_000_000)
	FFPViolationNetSpend = int64(30_000_000)

	MaxAcademyLevel = 5
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidLineup     = errors.New("starting lineup must name exactly 11 players")
	ErrLineupFull        = errors.New("starting lineup already has 11 players")
	ErrMatchInProgress   = errors.New("a match is already in progress")
	ErrSeasonComplete    = errors.New("season is complete")
	ErrOracleFailure     = errors.New("oracle request failed")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrOfferNotFound     = errors.New("job offer not found")
	ErrNotEmployed       = errors.New("manager is not employed")
	ErrNoCrisis          = errors.New("no crisis talk is pending")
	ErrNotUnemployed     = errors.New("manager still holds a job")
	ErrAcademyMaxed      = errors.New("academy facility is already at max level")
	ErrNoTransfer        = errors.New("transfer target not found")
)

// FFPStatusFor derives the compliance tier from season net spend. It is
// recomputed from totals on every read so the status can never drift.
func FFPStatusFor(netSpend int64) FFPStatus {
	switch {
	case netSpend <= FFPWarningNetSpend:
		return FFPHealthy
	case netSpend <= FFPViolationNetSpend:
		return FFPWarning
	default:
		return FFPViolation
	}
}

// WeeklyWages is the full squad wage bill plus the manager's own salary.
func WeeklyWages(c *Club) int64 {
	total := c.ManagerSalary
	for _, p := range c.Players {
		total += p.Salary
	}
	return total
}

// SeasonPoints applies the 3/1/0 scheme minus any board-imposed deduction.
func SeasonPoints(wins, draws, deduction int) int {
	pts := wins*3 + draws - deduction
	if pts < 0 {
		return 0
	}
	return pts
}

// ValidateLineup enforces the exactly-11 starters rule against the squad.
func ValidateLineup(c *Club) error {
	if len(c.Tactics.StartingXI) != StartersRequired {
		return ErrInvalidLineup
	}
	squad := make(map[string]struct{}, len(c.Players))
	for _, p := range c.Players {
		squad[p.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, StartersRequired)
	for _, id := range c.Tactics.StartingXI {
		if _, ok := squad[id]; !ok {
			return fmt.Errorf("%w: starter %s is not in the squad", ErrInvalidLineup, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate starter %s", ErrInvalidLineup, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// RecruitFee is the academy intake fee at a given facility level.
func RecruitFee(academyLevel int) int64 {
	return int64(academyLevel) * 1_000_000
}

// UpgradeCost prices the next academy facility level.
func UpgradeCost(currentLevel int) int64 {
	return int64(currentLevel+1) * 5_000_000
}

// RenewalTerms computes the salary bump and signing fee for a contract
// renewal: 15% raise, fee of four weeks of the new salary.
func RenewalTerms(salary int64) (newSalary, fee int64) {
	newSalary = salary * 115 / 100
	return newSalary, newSalary * 4
}

func clampForm(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func findPlayer(players []Player, id string) (int, bool) {
	for i := range players {
		if players[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
