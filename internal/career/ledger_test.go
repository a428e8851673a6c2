package career

import (
	"errors"
	"testing"
)

func TestSettleMatchConservesFunds(t *testing.T) {
	c := Club{Funds: 1_000_000, Financials: Financials{FFPStatus: FFPHealthy}}
	SettleMatch(&c, 450_000, 300_000)
	if c.Funds != 1_150_000 {
		t.Fatalf("funds got=%d want=1150000", c.Funds)
	}
	if c.Financials.Revenue != 450_000 || c.Financials.Expenditure != 300_000 {
		t.Fatalf("ledger lines wrong: %+v", c.Financials)
	}
	if c.Financials.WageBill != 300_000 {
		t.Fatalf("wage bill got=%d want=300000", c.Financials.WageBill)
	}
}

func TestSettleMatchAllowsNegativeFunds(t *testing.T) {
	c := Club{Funds: 100_000}
	SettleMatch(&c, 50_000, 400_000)
	if c.Funds != -250_000 {
		t.Fatalf("wages settle unconditionally: funds got=%d want=-250000", c.Funds)
	}
}

func TestSpendRejectedLeavesStateUntouched(t *testing.T) {
	c := Club{Funds: 1_000_000, Financials: Financials{FFPStatus: FFPHealthy}}
	err := Spend(&c, 2_000_000, true)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if c.Funds != 1_000_000 {
		t.Fatalf("rejected spend moved funds: %d", c.Funds)
	}
	if c.Financials != (Financials{FFPStatus: FFPHealthy}) {
		t.Fatalf("rejected spend booked ledger lines: %+v", c.Financials)
	}
}

func TestSpendBooksTransferLine(t *testing.T) {
	c := Club{Funds: 10_000_000}
	if err := Spend(&c, 4_000_000, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Funds != 6_000_000 {
		t.Fatalf("funds got=%d want=6000000", c.Funds)
	}
	if c.Financials.TransferSpend != 4_000_000 {
		t.Fatalf("transfer spend got=%d want=4000000", c.Financials.TransferSpend)
	}

	if err := Spend(&c, 1_000_000, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Financials.TransferSpend != 4_000_000 {
		t.Fatalf("non-transfer spend must not book transfer line")
	}
	if c.Financials.Expenditure != 5_000_000 {
		t.Fatalf("expenditure got=%d want=5000000", c.Financials.Expenditure)
	}
}

func TestFFPRecomputedOnEveryMove(t *testing.T) {
	c := Club{Funds: 100_000_000}
	if err := Spend(&c, 16_000_000, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Financials.FFPStatus != FFPWarning {
		t.Fatalf("got %s want Warning", c.Financials.FFPStatus)
	}
	if err := Spend(&c, 20_000_000, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Financials.FFPStatus != FFPViolation {
		t.Fatalf("got %s want Violation", c.Financials.FFPStatus)
	}
	// Income pulls net spend back under the threshold.
	Credit(&c, 25_000_000)
	if c.Financials.FFPStatus != FFPHealthy {
		t.Fatalf("got %s want Healthy after credit", c.Financials.FFPStatus)
	}
}
