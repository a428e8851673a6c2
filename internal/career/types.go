package career

type Position string

const (
	Keeper   Position = "GK"
	Defender Position = "DEF"
	Midfield Position = "MID"
	Attacker Position = "ATT"
)

type Mentality string

const (
	MentalityDefensive Mentality = "Defensive"
	MentalityBalanced  Mentality = "Balanced"
	MentalityAttacking Mentality = "Attacking"
	MentalityGungHo    Mentality = "Gung-Ho"
)

type Focus string

const (
	FocusMixed   Focus = "Mixed"
	FocusWings   Focus = "Wings"
	FocusCentral Focus = "Central"
)

type Role string

type PlayerStats struct {
	Appearances int     `json:"appearances"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	CleanSheets int     `json:"clean_sheets"`
	Saves       int     `json:"saves"`
	AvgRating   float64 `json:"avg_rating"`
}

type Player struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Nationality   string      `json:"nationality"`
	Position      Position    `json:"position"`
	Rating        int         `json:"rating"`
	Potential     int         `json:"potential"`
	Form          float64     `json:"form"`
	Fitness       int         `json:"fitness"`
	MarketValue   int64       `json:"market_value"`
	Salary        int64       `json:"salary"`
	ContractYears int         `json:"contract_years"`
	Academy       bool        `json:"academy,omitempty"`
	MatchHistory  []float64   `json:"match_history"`
	Stats         PlayerStats `json:"stats"`
}

// RecentForm returns the last five match ratings, newest last.
func (p Player) RecentForm() []float64 {
	if len(p.MatchHistory) <= 5 {
		return p.MatchHistory
	}
	return p.MatchHistory[len(p.MatchHistory)-5:]
}

type Stadium struct {
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	FacilityLevel int    `json:"facility_level"`
}

type FFPStatus string

const (
	FFPHealthy   FFPStatus = "Healthy"
	FFPWarning   FFPStatus = "Warning"
	FFPViolation FFPStatus = "Violation"
)

type Financials struct {
	Revenue       int64     `json:"revenue"`
	Expenditure   int64     `json:"expenditure"`
	TransferSpend int64     `json:"transfer_spend"`
	WageBill      int64     `json:"wage_bill"`
	FFPStatus     FFPStatus `json:"ffp_status"`
}

type Tactics struct {
	Formation       string          `json:"formation"`
	Mentality       Mentality       `json:"mentality"`
	Focus           Focus           `json:"focus"`
	RoleAssignments map[string]Role `json:"role_assignments"`
	StartingXI      []string        `json:"starting_xi"`
}

// TacticsUpdate carries a partial tactics change; nil fields are left alone.
type TacticsUpdate struct {
	Formation *string    `json:"formation,omitempty"`
	Mentality *Mentality `json:"mentality,omitempty"`
	Focus     *Focus     `json:"focus,omitempty"`
	Roles     map[string]Role
}

type ObjectiveType string

const (
	ObjectiveWins      ObjectiveType = "wins"
	ObjectiveGoals     ObjectiveType = "goals"
	ObjectiveStability ObjectiveType = "stability"
)

type Objective struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ObjectiveType `json:"type"`
	Target      int           `json:"target"`
	Current     int           `json:"current"`
	Reward      int64         `json:"reward"`
	Completed   bool          `json:"completed"`
}

type Club struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	ManagerName          string      `json:"manager_name"`
	Players              []Player    `json:"players"`
	Funds                int64       `json:"funds"`
	Wins                 int         `json:"wins"`
	Draws                int         `json:"draws"`
	Losses               int         `json:"losses"`
	GoalsFor             int         `json:"goals_for"`
	GoalsAgainst         int         `json:"goals_against"`
	Tier                 int         `json:"tier"`
	Matchday             int         `json:"matchday"`
	AcademyLevel         int         `json:"academy_level"`
	Stadium              Stadium     `json:"stadium"`
	Tactics              Tactics     `json:"tactics"`
	Objectives           []Objective `json:"objectives"`
	JobSecurity          int         `json:"job_security"`
	ManagerSalary        int64       `json:"manager_salary"`
	ManagerContractYears int         `json:"manager_contract_years"`
	PointDeduction       int         `json:"point_deduction,omitempty"`
	Financials           Financials  `json:"financials"`
}

type Standing struct {
	Name         string `json:"name"`
	Tier         int    `json:"tier"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

func (s Standing) GoalDiff() int {
	return s.GoalsFor - s.GoalsAgainst
}

type EventType string

const (
	EventGoal          EventType = "goal"
	EventYellow        EventType = "yellow"
	EventRed           EventType = "red"
	EventSub           EventType = "sub"
	EventCommentary    EventType = "commentary"
	EventShotOffTarget EventType = "shot_off_target"
	EventFoul          EventType = "foul"
	EventSave          EventType = "save"
	EventWoodwork      EventType = "woodwork"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

type MatchEvent struct {
	Minute      int       `json:"minute"`
	Type        EventType `json:"type"`
	Side        Side      `json:"side"`
	Description string    `json:"description"`
	Player      string    `json:"player,omitempty"`
}

// MatchResult is the finalized outcome handed back by the match oracle.
// Ratings are keyed by player ID on a 4.0-10.0 scale.
type MatchResult struct {
	HomeTeam      string             `json:"home_team"`
	AwayTeam      string             `json:"away_team"`
	HomeScore     int                `json:"home_score"`
	AwayScore     int                `json:"away_score"`
	Events        []MatchEvent       `json:"events"`
	Summary       string             `json:"summary"`
	Revenue       int64              `json:"revenue"`
	PlayerRatings map[string]float64 `json:"player_ratings"`
}

type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

func (r MatchResult) Outcome() Outcome {
	switch {
	case r.HomeScore > r.AwayScore:
		return OutcomeWin
	case r.HomeScore < r.AwayScore:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

type CareerStatus string

const (
	// StatusEmployed is the ordinary in-post state.
	StatusEmployed CareerStatus = "employed"
	// StatusCrisis means a board ultimatum is owed to the manager; the
	// next transition must come from Pledge or Resign, not a match.
	StatusCrisis CareerStatus = "crisis"
	// StatusPledged is employed under a reduced-security pledge; losses
	// carry a doubled security penalty.
	StatusPledged CareerStatus = "pledged"
	StatusSacked  CareerStatus = "sacked"
	// StatusUnemployed always resolves back to Employed via a job offer.
	StatusUnemployed CareerStatus = "unemployed"
)

func (s CareerStatus) Employed() bool {
	return s == StatusEmployed || s == StatusCrisis || s == StatusPledged
}

type JobOffer struct {
	ID       string `json:"id"`
	ClubName string `json:"club_name"`
	Tier     int    `json:"tier"`
	Salary   int64  `json:"salary"`
}

// LiveMatch is the read-only playback state exposed to presentation.
// Events are ordered most-recent-first.
type LiveMatch struct {
	Active    bool         `json:"active"`
	Minute    int          `json:"minute"`
	HomeTeam  string       `json:"home_team"`
	AwayTeam  string       `json:"away_team"`
	HomeScore int          `json:"home_score"`
	AwayScore int          `json:"away_score"`
	Events    []MatchEvent `json:"events"`
}

// Snapshot is the full persisted career state.
type Snapshot struct {
	Version   int          `json:"version"`
	Club      Club         `json:"club"`
	Standings []Standing   `json:"standings"`
	Status    CareerStatus `json:"status"`
	Offers    []JobOffer   `json:"offers,omitempty"`
}

// CareerView is what the presentation layer reads.
type CareerView struct {
	Club        Club         `json:"club"`
	Status      CareerStatus `json:"status"`
	Warned      bool         `json:"warned"`
	Offers      []JobOffer   `json:"offers,omitempty"`
	Transfers   []Player     `json:"transfers,omitempty"`
	WeeklyWages int64        `json:"weekly_wages"`
	Simulating  bool         `json:"simulating"`
	LastSavedAt string       `json:"last_saved_at,omitempty"`
}

type StartMatchOutcome struct {
	SeasonComplete bool   `json:"season_complete"`
	Opponent       string `json:"opponent,omitempty"`
}
