package career

import "github.com/google/uuid"

// SecurityDelta maps a match outcome onto the board-confidence change.
// A loss after a pledge costs double.
func SecurityDelta(status CareerStatus, outcome Outcome) int {
	switch outcome {
	case OutcomeWin:
		return SecurityWinDelta
	case OutcomeLoss:
		if status == StatusPledged {
			return 2 * SecurityLossDelta
		}
		return SecurityLossDelta
	default:
		return SecurityDrawDelta
	}
}

// EvaluateSecurity runs the once-per-resolution job security transition.
// The sack check takes precedence over the crisis check: a security value
// driven to zero sacks the manager even while an ultimatum is unresolved.
// A crisis fires at most once; it does not re-trigger while pending, and
// never for a manager who already pledged.
func EvaluateSecurity(status CareerStatus, security int, outcome Outcome) (CareerStatus, int) {
	next := security + SecurityDelta(status, outcome)
	if next < 0 {
		next = 0
	}
	switch {
	case next <= 0:
		return StatusSacked, next
	case next < CrisisThreshold && status == StatusEmployed:
		return StatusCrisis, next
	default:
		return status, next
	}
}

// Pledge resolves a pending crisis talk: security resets to the pledge
// level and the doubled-loss-penalty rule arms.
func Pledge(status CareerStatus) (CareerStatus, int, error) {
	if status != StatusCrisis {
		return status, 0, ErrNoCrisis
	}
	return StatusPledged, PledgeSecurity, nil
}

// Resign walks away from a pending crisis talk, independent of the
// current security value.
func Resign(status CareerStatus) (CareerStatus, error) {
	if status != StatusCrisis {
		return status, ErrNoCrisis
	}
	return StatusUnemployed, nil
}

// GenerateOffers builds the four-job shortlist shown to a sacked or
// unemployed manager: two top-tier posts, two from the lower division.
// clubs is the opponent name pool, ordered strongest first.
func GenerateOffers(clubs []string, intn func(int) int) []JobOffer {
	if len(clubs) < 40 {
		return nil
	}
	picks := []struct {
		base   int
		tier   int
		salary int64
	}{
		{0, 1, 120_000},
		{10, 1, 85_000},
		{20, 2, 45_000},
		{30, 2, 30_000},
	}
	offers := make([]JobOffer, 0, len(picks))
	for _, p := range picks {
		offers = append(offers, JobOffer{
			ID:       uuid.NewString(),
			ClubName: clubs[p.base+intn(10)],
			Tier:     p.tier,
			Salary:   p.salary,
		})
	}
	return offers
}

// AcceptOffer re-employs the manager at the offered club. The squad
// travels with the manager; club identity, season record, financials and
// security are reset for the new post.
func AcceptOffer(c *Club, offer JobOffer) {
	c.Name = offer.ClubName
	c.Tier = offer.Tier
	c.ManagerSalary = offer.Salary
	c.JobSecurity = StartingSecurity
	c.Matchday = 0
	c.Wins, c.Draws, c.Losses = 0, 0, 0
	c.GoalsFor, c.GoalsAgainst = 0, 0
	c.PointDeduction = 0
	c.Financials = Financials{FFPStatus: FFPHealthy}
}
