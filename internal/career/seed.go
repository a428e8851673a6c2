package career

import "github.com/google/uuid"

// OpponentClubs is the fixed opponent pool: the first 17 play in tier 1,
// the rest in tier 2. Job offers are drawn from the same pool.
var OpponentClubs = []string{
	"Manchester Blue", "Arsenal London", "Real Madrid", "FC Bayern",
	"Paris SG", "Juventus", "Inter Milan", "Bayer Leverkusen",
	"FC Barcelona", "Atletico Madrid", "AC Milan", "Dortmund",
	"Napoli", "Chelsea Blue", "Tottenham White", "Aston Villa",
	"Newcastle Black", "Brighton Sea", "West Ham Hammer", "Monaco Prince",
	"Leicester Fox", "Leeds White", "Southampton Saint", "Ipswich Tractor",
	"Sunderland Light", "Hull Tiger", "Middlesbrough Red", "Norwich Canary",
	"Coventry Sky", "Preston Lily", "Bristol City", "Cardiff Blue",
	"Watford Hornet", "Swansea Jack", "Sheffield Steel", "Blackburn Rose",
	"Millwall Lion", "QPR Hoop", "Stoke Potters", "Plymouth Green",
}

const tierOneClubs = 17

var nationalities = []string{
	"England", "France", "Brazil", "Spain",
	"Germany", "Argentina", "Portugal", "Netherlands",
}

// SeedStandings builds the fresh two-tier league table.
func SeedStandings() []Standing {
	rows := make([]Standing, 0, len(OpponentClubs))
	for i, name := range OpponentClubs {
		tier := 1
		if i >= tierOneClubs {
			tier = 2
		}
		rows = append(rows, Standing{Name: name, Tier: tier})
	}
	return rows
}

func SeedObjectives() []Objective {
	return []Objective{
		{
			ID:          "season-target",
			Title:       "Season Target",
			Description: "Reach the board's performance goals.",
			Type:        ObjectiveWins,
			Target:      4,
			Reward:      15_000_000,
		},
		{
			ID:          "financial-stability",
			Title:       "Financial Stability",
			Description: "Avoid FFP sanctions.",
			Type:        ObjectiveStability,
			Target:      SeasonLength,
			Reward:      5_000_000,
		},
	}
}

// SeedClub creates the career-start club with its 22-player squad and the
// first eleven pre-selected as starters.
func SeedClub(intn func(int) int) Club {
	seed := []struct {
		name   string
		pos    Position
		rating int
	}{
		{"Jonas Hellqvist", Keeper, 87},
		{"Tomas Brady", Keeper, 77},
		{"Viktor Dane", Defender, 89},
		{"Ibrahim Kone", Defender, 83},
		{"Tristan Archer", Defender, 86},
		{"Aiden Roberts", Defender, 84},
		{"Joel Gomes", Defender, 80},
		{"Jarell Quaye", Defender, 76},
		{"Connor Bradley", Defender, 75},
		{"Kostas Tsiolis", Defender, 77},
		{"Alexis Madera", Midfield, 86},
		{"Dominik Szalai", Midfield, 83},
		{"Ryan Graaf", Midfield, 79},
		{"Harvey Ellison", Midfield, 81},
		{"Wataru Endo", Midfield, 80},
		{"Curtis James", Midfield, 79},
		{"Mohamed Sadiq", Attacker, 91},
		{"Luis Diarte", Attacker, 85},
		{"Darwin Nunes", Attacker, 82},
		{"Diogo Jorge", Attacker, 84},
		{"Cody Gakken", Attacker, 83},
		{"Federico Chiello", Attacker, 82},
	}

	players := make([]Player, 0, len(seed))
	for _, row := range seed {
		players = append(players, newSquadPlayer(row.name, row.pos, row.rating, intn))
	}
	xi := make([]string, 0, StartersRequired)
	for _, p := range players[:StartersRequired] {
		xi = append(xi, p.ID)
	}

	return Club{
		ID:           uuid.NewString(),
		Name:         "Touchline United",
		ManagerName:  "Gaffer",
		Players:      players,
		Funds:        55_000_000,
		Tier:         2,
		AcademyLevel: 1,
		Stadium: Stadium{
			Name:          "Touchline Park",
			Capacity:      25_000,
			FacilityLevel: 1,
		},
		Tactics: Tactics{
			Formation:       "4-3-3",
			Mentality:       MentalityBalanced,
			Focus:           FocusMixed,
			RoleAssignments: map[string]Role{},
			StartingXI:      xi,
		},
		Objectives:           SeedObjectives(),
		JobSecurity:          StartingSecurity,
		ManagerSalary:        50_000,
		ManagerContractYears: 3,
		Financials:           Financials{FFPStatus: FFPHealthy},
	}
}

func newSquadPlayer(name string, pos Position, rating int, intn func(int) int) Player {
	return Player{
		ID:            uuid.NewString(),
		Name:          name,
		Age:           18 + intn(15),
		Nationality:   nationalities[intn(len(nationalities))],
		Position:      pos,
		Rating:        rating,
		Potential:     rating + intn(12),
		Form:          7,
		Fitness:       FitnessCap,
		MarketValue:   int64(rating) * int64(rating) * 12_000,
		Salary:        int64(rating) * 1_200,
		ContractYears: 1 + intn(4),
	}
}

// PrepareSigning fills in the identity and derived defaults the candidate
// generator leaves blank on a transfer-market player.
func PrepareSigning(p Player, intn func(int) int) Player {
	p.ID = uuid.NewString()
	if p.Potential < p.Rating {
		p.Potential = p.Rating + intn(15)
	}
	p.Form = 7
	p.Fitness = FitnessCap
	p.MarketValue = int64(p.Rating) * int64(p.Rating) * 10_000
	p.Salary = int64(p.Rating) * 1_000
	p.ContractYears = 3
	p.MatchHistory = nil
	p.Stats = PlayerStats{}
	return p
}

// PrepareProspect fills in identity and derived defaults on an academy
// intake: age sixteen, long first deal, nominal wage.
func PrepareProspect(p Player) Player {
	p.ID = uuid.NewString()
	p.Age = 16
	if p.Potential < p.Rating {
		p.Potential = p.Rating
	}
	p.Form = 7
	p.Fitness = FitnessCap
	p.MarketValue = int64(p.Rating) * int64(p.Potential) * 500
	p.Salary = 500
	p.ContractYears = 5
	p.Academy = true
	p.MatchHistory = nil
	p.Stats = PlayerStats{}
	return p
}
