package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"touchline/internal/career"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printError(msg string) {
	danger.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	normalized := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized[strings.ToLower(strings.TrimSpace(opt))] = struct{}{}
	}
	for {
		fmt.Printf("%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			text = strings.ToLower(strings.TrimSpace(defaultValue))
		}
		if _, ok := normalized[text]; ok {
			return text, nil
		}
		printWarn("Invalid option. Please pick one of the listed values.")
	}
}

func money(v int64) string {
	switch {
	case v >= 1_000_000 || v <= -1_000_000:
		return fmt.Sprintf("£%.1fM", float64(v)/1_000_000)
	case v >= 1_000 || v <= -1_000:
		return fmt.Sprintf("£%.0fK", float64(v)/1_000)
	default:
		return fmt.Sprintf("£%d", v)
	}
}

func renderCareer(view career.CareerView) {
	c := view.Club
	accent.Printf("%s  (Tier %d)\n", c.Name, c.Tier)
	neutral.Printf("Manager: %s  Stadium: %s (%d)\n", c.ManagerName, c.Stadium.Name, c.Stadium.Capacity)
	neutral.Printf("Matchday %d/%d  Record %dW-%dD-%dL  GF %d GA %d\n",
		c.Matchday, career.SeasonLength, c.Wins, c.Draws, c.Losses, c.GoalsFor, c.GoalsAgainst)
	neutral.Printf("Funds: %s  Weekly wages: %s  Academy level: %d\n",
		money(c.Funds), money(view.WeeklyWages), c.AcademyLevel)

	ffp := c.Financials.FFPStatus
	switch ffp {
	case career.FFPViolation:
		danger.Printf("FFP: %s\n", ffp)
	case career.FFPWarning:
		warn.Printf("FFP: %s\n", ffp)
	default:
		success.Printf("FFP: %s\n", ffp)
	}

	switch view.Status {
	case career.StatusCrisis:
		danger.Printf("Job security: %d — the board demands a meeting. Run `tch board pledge` or `tch board resign`.\n", c.JobSecurity)
	case career.StatusPledged:
		warn.Printf("Job security: %d (pledge active — losses cost double)\n", c.JobSecurity)
	case career.StatusSacked:
		danger.Println("You have been sacked. Run `tch board offers`.")
	case career.StatusUnemployed:
		warn.Println("Between jobs. Run `tch board offers`.")
	default:
		if view.Warned {
			warn.Printf("Job security: %d (the board is restless)\n", c.JobSecurity)
		} else {
			neutral.Printf("Job security: %d\n", c.JobSecurity)
		}
	}

	if len(c.Objectives) > 0 {
		accent.Println("\nBoard objectives:")
		for _, obj := range c.Objectives {
			mark := " "
			if obj.Completed {
				mark = "x"
			}
			neutral.Printf("  [%s] %s — %d/%d (reward %s)\n", mark, obj.Title, obj.Current, obj.Target, money(obj.Reward))
		}
	}
	if view.Simulating {
		warn.Println("\nA match is in progress. Run `tch watch`.")
	}
}

func renderTable(tier int, rows []career.Standing, clubName string) {
	accent.Printf("Tier %d table\n", tier)
	neutral.Printf("%-3s %-22s %3s %3s %3s %3s %4s %4s %4s\n",
		"#", "Club", "P", "W", "D", "L", "GF", "GA", "Pts")
	for i, row := range rows {
		line := fmt.Sprintf("%-3d %-22s %3d %3d %3d %3d %4d %4d %4d",
			i+1, row.Name, row.Played, row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.Points)
		if row.Name == clubName {
			accent.Println(line)
		} else {
			neutral.Println(line)
		}
	}
}

func renderSquad(view career.CareerView) {
	starters := make(map[string]struct{}, len(view.Club.Tactics.StartingXI))
	for _, id := range view.Club.Tactics.StartingXI {
		starters[id] = struct{}{}
	}
	t := view.Club.Tactics
	accent.Printf("%s — %s, %s, focus %s\n", view.Club.Name, t.Formation, t.Mentality, t.Focus)
	neutral.Printf("%-2s %-20s %-4s %3s %4s %4s %3s %-10s %s\n",
		"XI", "Name", "Pos", "Rat", "Form", "Fit", "Yrs", "Wage", "ID")
	for _, p := range view.Club.Players {
		mark := " "
		if _, ok := starters[p.ID]; ok {
			mark = "*"
		}
		line := fmt.Sprintf("%-2s %-20s %-4s %3d %4.1f %3d%% %3d %-10s %s",
			mark, p.Name, p.Position, p.Rating, p.Form, p.Fitness, p.ContractYears,
			money(p.Salary), p.ID)
		switch {
		case p.Fitness < career.FitnessFloor+10:
			warn.Println(line)
		case p.ContractYears <= 1:
			danger.Println(line)
		default:
			neutral.Println(line)
		}
	}
	neutral.Printf("\n* starter  red: contract expiring  yellow: low fitness\n")
}

func renderOffers(offers []career.JobOffer) {
	if len(offers) == 0 {
		printInfo("No offers on the table.")
		return
	}
	neutral.Printf("%-36s %-22s %4s %s\n", "ID", "Club", "Tier", "Salary")
	for _, offer := range offers {
		neutral.Printf("%-36s %-22s %4d %s\n", offer.ID, offer.ClubName, offer.Tier, money(offer.Salary))
	}
	printInfo("Accept with `tch board accept <id>`.")
}

func renderTransfers(targets []career.Player) {
	if len(targets) == 0 {
		printInfo("The shortlist is empty.")
		return
	}
	neutral.Printf("%-20s %-4s %3s %3s %4s %-10s %s\n",
		"Name", "Pos", "Age", "Rat", "Pot", "Fee", "ID")
	for _, p := range targets {
		neutral.Printf("%-20s %-4s %3d %3d %4d %-10s %s\n",
			p.Name, p.Position, p.Age, p.Rating, p.Potential, money(p.MarketValue), p.ID)
	}
	printInfo("Sign with `tch transfers --buy <id>`.")
}

func renderResult(result career.MatchResult) {
	headline := fmt.Sprintf("%s %d - %d %s", result.HomeTeam, result.HomeScore, result.AwayScore, result.AwayTeam)
	switch result.Outcome() {
	case career.OutcomeWin:
		success.Println(headline)
	case career.OutcomeLoss:
		danger.Println(headline)
	default:
		warn.Println(headline)
	}
	if result.Summary != "" {
		neutral.Println(result.Summary)
	}
	neutral.Printf("Gate revenue: %s\n", money(result.Revenue))
	for _, ev := range result.Events {
		if ev.Type != career.EventGoal {
			continue
		}
		neutral.Printf("  %d' GOAL %s\n", ev.Minute, ev.Player)
	}
}
