package career

// Ledger mutations are the only way club funds move; every change books a
// revenue or expenditure line so the balance stays attributable.

// SettleMatch applies the post-match money movement: gate revenue in,
// weekly wages out. Settlement always applies, so funds may go negative.
func SettleMatch(c *Club, matchRevenue, weeklyWages int64) {
	c.Funds += matchRevenue - weeklyWages
	c.Financials.Revenue += matchRevenue
	c.Financials.Expenditure += weeklyWages
	c.Financials.WageBill += weeklyWages
	refreshFFP(c)
}

// Spend debits funds for a discretionary purchase (transfer, renewal fee,
// academy intake or upgrade). Unlike wage settlement it is rejected with
// no mutation when the club cannot cover the cost.
func Spend(c *Club, amount int64, transfer bool) error {
	if amount > c.Funds {
		return ErrInsufficientFunds
	}
	c.Funds -= amount
	c.Financials.Expenditure += amount
	if transfer {
		c.Financials.TransferSpend += amount
	}
	refreshFFP(c)
	return nil
}

// Credit books non-match income such as objective rewards and the
// end-of-season bonus.
func Credit(c *Club, amount int64) {
	c.Funds += amount
	c.Financials.Revenue += amount
	refreshFFP(c)
}

func refreshFFP(c *Club) {
	c.Financials.FFPStatus = FFPStatusFor(c.Financials.Expenditure - c.Financials.Revenue)
}
