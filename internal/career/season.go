package career

// RolloverSeason closes out a finished season: matchday and season
// tallies reset for the club and every standings row, contracts age by a
// year, players whose deals expire leave the squad, and the board's
// end-of-season bonus is credited. Returns the released players.
func RolloverSeason(c *Club, rows []Standing) []Player {
	c.Matchday = 0
	c.Wins, c.Draws, c.Losses = 0, 0, 0
	c.GoalsFor, c.GoalsAgainst = 0, 0

	kept := c.Players[:0:0]
	var released []Player
	for _, p := range c.Players {
		p.ContractYears--
		// Career stats carry over; the per-season rating history does not.
		p.MatchHistory = nil
		if p.ContractYears <= 0 {
			released = append(released, p)
			continue
		}
		kept = append(kept, p)
	}
	c.Players = kept
	pruneLineup(c)

	for i := range rows {
		rows[i].Played = 0
		rows[i].Wins, rows[i].Draws, rows[i].Losses = 0, 0, 0
		rows[i].GoalsFor, rows[i].GoalsAgainst = 0, 0
		rows[i].Points = 0
	}

	Credit(c, SeasonEndBonus)
	return released
}

// pruneLineup drops starters who are no longer in the squad.
func pruneLineup(c *Club) {
	squad := make(map[string]struct{}, len(c.Players))
	for _, p := range c.Players {
		squad[p.ID] = struct{}{}
	}
	xi := c.Tactics.StartingXI[:0:0]
	for _, id := range c.Tactics.StartingXI {
		if _, ok := squad[id]; ok {
			xi = append(xi, id)
		}
	}
	c.Tactics.StartingXI = xi
}
