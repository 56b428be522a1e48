package engine

import (
	"errors"
	"testing"
)

func TestBankruptcyToBankRevertsProperties(t *testing.T) {
	g := newTestGame(t)
	g.Properties[1].OwnerId = 0
	g.Properties[1].Houses = 2
	g.Properties[5].OwnerId = 0
	g.Properties[5].Mortgaged = true
	g.HousesAvailable = 30
	g.Players[0].Cash = 100

	if err := g.DeclareBankruptcy(0, -1); err != nil {
		t.Fatal(err)
	}
	if !g.Players[0].Bankrupt {
		t.Fatal("player should be marked bankrupt")
	}
	if g.Properties[1].OwnerId != -1 || g.Properties[1].Houses != 0 {
		t.Fatal("street should revert to the bank cleared")
	}
	if g.Properties[5].OwnerId != -1 || g.Properties[5].Mortgaged {
		t.Fatal("railroad should revert unmortgaged")
	}
	if g.HousesAvailable != 32 {
		t.Fatalf("liquidated houses should return to pool, got %d", g.HousesAvailable)
	}
	if len(g.Players) != 2 {
		t.Fatal("bankrupt players stay in the player list")
	}
}

func TestBankruptcyToCreditorTransfersEverything(t *testing.T) {
	g := newTestGame(t)
	g.Properties[1].OwnerId = 0
	g.Properties[1].Houses = 2
	g.Properties[5].OwnerId = 0
	g.Properties[5].Mortgaged = true
	g.HousesAvailable = 30
	g.Players[0].Cash = 100

	if err := g.DeclareBankruptcy(0, 1); err != nil {
		t.Fatal(err)
	}
	if g.Players[0].Cash != 0 {
		t.Fatalf("bankrupt player keeps no cash, got %d", g.Players[0].Cash)
	}
	// Liquidation: 2 houses at $25 each. Creditor receives 100+50, then pays
	// $10 transfer interest on the mortgaged railroad.
	if g.Players[1].Cash != 1500+150-10 {
		t.Fatalf("expected creditor cash 1640, got %d", g.Players[1].Cash)
	}
	if g.Properties[1].OwnerId != 1 || g.Properties[5].OwnerId != 1 {
		t.Fatal("properties should transfer to the creditor")
	}
	if !g.Properties[5].Mortgaged {
		t.Fatal("mortgage survives the transfer")
	}
	if g.Properties[1].Houses != 0 {
		t.Fatal("houses are liquidated before transfer")
	}
}

func TestBankruptcyLiquidatesHotelsIgnoringEvenness(t *testing.T) {
	g := newTestGame(t)
	g.Properties[1].OwnerId = 0
	g.Properties[1].Houses = 5
	g.Properties[3].OwnerId = 0
	g.Properties[3].Houses = 2
	g.HousesAvailable = 26
	g.HotelsAvailable = 11

	if err := g.DeclareBankruptcy(0, -1); err != nil {
		t.Fatal(err)
	}
	if g.HotelsAvailable != 12 {
		t.Fatalf("hotel should return to pool, got %d", g.HotelsAvailable)
	}
	if g.HousesAvailable != 32 {
		t.Fatalf("houses should return to pool, got %d", g.HousesAvailable)
	}
}

func TestBankruptcyClearsJailAndSkipsRotation(t *testing.T) {
	g := newTestGame(t, "A", "B", "C")
	g.sendToJail(1)
	if err := g.DeclareBankruptcy(1, -1); err != nil {
		t.Fatal(err)
	}
	if g.Players[1].InJail {
		t.Fatal("bankruptcy clears jail state")
	}
	g.Turn.Phase = TurnOver
	if err := g.EndTurn(); err != nil {
		t.Fatal(err)
	}
	if g.CurrentIndex != 2 {
		t.Fatalf("rotation should skip the bankrupt player, at %d", g.CurrentIndex)
	}
}

func TestDoubleBankruptcyRejected(t *testing.T) {
	g := newTestGame(t)
	if err := g.DeclareBankruptcy(0, -1); err != nil {
		t.Fatal(err)
	}
	var rule *RuleError
	if err := g.DeclareBankruptcy(0, -1); !errors.As(err, &rule) {
		t.Fatalf("expected rejection, got %v", err)
	}
}
