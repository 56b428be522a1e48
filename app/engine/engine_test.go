package engine

import (
	"errors"
	"reflect"
	"testing"
)

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	if len(names) == 0 {
		names = []string{"A", "B"}
	}
	g, err := New(names, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.StartTurn(); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewValidatesPlayerCount(t *testing.T) {
	if _, err := New([]string{"A"}, 1); err == nil {
		t.Fatal("expected error for 1 player")
	}
	if _, err := New([]string{"A", "B", "C", "D", "E"}, 1); err == nil {
		t.Fatal("expected error for 5 players")
	}
	var rule *RuleError
	_, err := New([]string{"A"}, 1)
	if !errors.As(err, &rule) {
		t.Fatalf("expected RuleError, got %T", err)
	}
}

func TestNewTrimsAndRejectsEmptyNames(t *testing.T) {
	g, err := New([]string{"  A  ", "B"}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Players[0].Name != "A" {
		t.Fatalf("expected trimmed name, got %q", g.Players[0].Name)
	}
	if _, err := New([]string{"A", "   "}, 1); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestNewInitialState(t *testing.T) {
	g := newTestGame(t)
	for _, player := range g.Players {
		if player.Cash != 1500 {
			t.Fatalf("expected starting cash 1500, got %d", player.Cash)
		}
		if player.Position != 0 {
			t.Fatalf("expected starting position 0, got %d", player.Position)
		}
	}
	if len(g.ChanceDeck) != 16 || len(g.CommunityDeck) != 16 {
		t.Fatalf("expected 16-card decks, got %d and %d", len(g.ChanceDeck), len(g.CommunityDeck))
	}
	if g.HousesAvailable != 32 || g.HotelsAvailable != 12 {
		t.Fatalf("unexpected supply pools %d/%d", g.HousesAvailable, g.HotelsAvailable)
	}
	for id, state := range g.Properties {
		if state.OwnerId != -1 || state.Houses != 0 || state.Mortgaged {
			t.Fatalf("property %d not pristine: %+v", id, state)
		}
	}
}

func TestSameSeedSameTrace(t *testing.T) {
	drive := func() Snapshot {
		g, err := New([]string{"A", "B"}, 42)
		if err != nil {
			t.Fatal(err)
		}
		if err := g.StartTurn(); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			if g.Turn.Phase == AwaitRoll {
				if _, _, err := g.RollDice(); err != nil {
					t.Fatal(err)
				}
			}
			if g.Turn.Phase == AwaitBuyDecision {
				if err := g.BuyProperty(); err != nil {
					t.Fatal(err)
				}
			}
			if g.Turn.Phase == TurnOver {
				if err := g.EndTurn(); err != nil {
					t.Fatal(err)
				}
			}
		}
		return g.Snapshot(-1)
	}
	first := drive()
	second := drive()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed and operations produced different state")
	}
}

func TestFailedOperationsLeaveStateUnchanged(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot(-1)

	cases := []struct {
		name string
		op   func() error
	}{
		{"buy outside phase", func() error { return g.BuyProperty() }},
		{"decline outside phase", func() error { return g.DeclineProperty() }},
		{"bid without auction", func() error { return g.PlaceBid(0, 10) }},
		{"pass without auction", func() error { return g.PassBid(0) }},
		{"end turn early", func() error { return g.EndTurn() }},
		{"jail fine while free", func() error { return g.PayJailFine() }},
		{"jail card without card", func() error { return g.UseGetOutOfJailCard("chance") }},
		{"build unowned", func() error { return g.BuildHouse(0, 1) }},
		{"sell without houses", func() error { return g.SellHouse(0, 1) }},
		{"mortgage unowned", func() error { return g.MortgageProperty(0, 1) }},
		{"unmortgage unowned", func() error { return g.UnmortgageProperty(0, 1) }},
		{"accept unknown offer", func() error { return g.AcceptTradeOffer(99, 0) }},
		{"cancel unknown offer", func() error { return g.CancelTradeOffer(99, 0) }},
		{"bankrupt unknown player", func() error { return g.DeclareBankruptcy(9, -1) }},
	}
	for _, tc := range cases {
		err := tc.op()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var rule *RuleError
		if !errors.As(err, &rule) {
			t.Fatalf("%s: expected RuleError, got %T", tc.name, err)
		}
		if !reflect.DeepEqual(before, g.Snapshot(-1)) {
			t.Fatalf("%s: state changed on failed operation", tc.name)
		}
	}
}

func TestInsufficientFundsLeavesStateUnchanged(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Cash = 10
	g.Players[0].Position = 1
	if err := g.resolveLanding(); err != nil {
		t.Fatal(err)
	}
	before := g.Snapshot(-1)

	err := g.BuyProperty()
	var funds *InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if funds.PlayerId != 0 || funds.AmountDue != 60 {
		t.Fatalf("unexpected error payload: %+v", funds)
	}
	if !reflect.DeepEqual(before, g.Snapshot(-1)) {
		t.Fatal("state changed on failed purchase")
	}
}

func TestSnapshotEventLogWindow(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		g.logf("event %d", i)
	}
	snapshot := g.Snapshot(10)
	if len(snapshot.EventLog) != 10 {
		t.Fatalf("expected trailing window of 10, got %d", len(snapshot.EventLog))
	}
	if snapshot.EventLog[9] != "event 29" {
		t.Fatalf("expected newest event last, got %q", snapshot.EventLog[9])
	}
	full := g.Snapshot(-1)
	if len(full.EventLog) != len(g.EventLog) {
		t.Fatal("negative window should return full log")
	}
}
