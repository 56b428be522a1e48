package engine

import (
	"errors"
	"testing"
)

func startAuction(t *testing.T, g *Game) *AuctionState {
	t.Helper()
	g.currentPlayer().Position = 1
	if err := g.resolveLanding(); err != nil {
		t.Fatal(err)
	}
	if err := g.DeclineProperty(); err != nil {
		t.Fatal(err)
	}
	if g.Turn.Phase != AwaitAuction {
		t.Fatalf("expected auction phase, got %s", g.Turn.Phase)
	}
	return g.Turn.PendingAuction
}

func TestDeclineOpensAuctionForAllActivePlayers(t *testing.T) {
	g := newTestGame(t, "A", "B", "C")
	g.Players[2].Bankrupt = true
	auction := startAuction(t, g)
	if auction.PropertyId != 1 {
		t.Fatalf("expected auction for property 1, got %d", auction.PropertyId)
	}
	bidders := auction.BidderIds()
	if len(bidders) != 2 || bidders[0] != 0 || bidders[1] != 1 {
		t.Fatalf("expected bidders [0 1], got %v", bidders)
	}
	if g.Turn.PendingPropertyId != -1 {
		t.Fatal("pending property should be cleared")
	}
}

func TestPlaceBidValidation(t *testing.T) {
	g := newTestGame(t, "A", "B", "C")
	auction := startAuction(t, g)

	if err := g.PlaceBid(1, 100); err != nil {
		t.Fatal(err)
	}
	if auction.HighestBid != 100 || auction.HighestBidder != 1 {
		t.Fatalf("leader not updated: %+v", auction)
	}

	var rule *RuleError
	if err := g.PlaceBid(2, 100); !errors.As(err, &rule) {
		t.Fatalf("equal bid must be rejected, got %v", err)
	}
	if err := g.PlaceBid(2, 50); !errors.As(err, &rule) {
		t.Fatalf("lower bid must be rejected, got %v", err)
	}

	var funds *InsufficientFundsError
	if err := g.PlaceBid(2, 2000); !errors.As(err, &funds) {
		t.Fatalf("bid beyond cash must fail with insufficient funds, got %v", err)
	}

	if err := g.PassBid(2); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceBid(2, 200); !errors.As(err, &rule) {
		t.Fatalf("passed bidder must not bid, got %v", err)
	}
	if err := g.PassBid(2); !errors.As(err, &rule) {
		t.Fatalf("passed bidder must not pass again, got %v", err)
	}
}

func TestAuctionResolvesToLastBidder(t *testing.T) {
	g := newTestGame(t, "A", "B", "C")
	startAuction(t, g)
	if err := g.PlaceBid(1, 120); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(2); err != nil {
		t.Fatal(err)
	}
	if g.Properties[1].OwnerId != 1 {
		t.Fatal("winner should own the property")
	}
	if g.Players[1].Cash != 1500-120 {
		t.Fatalf("winner should pay the bid, has %d", g.Players[1].Cash)
	}
	if g.Turn.PendingAuction != nil {
		t.Fatal("auction state should be destroyed")
	}
	if g.Turn.Phase != TurnOver {
		t.Fatalf("expected turn over, got %s", g.Turn.Phase)
	}
}

func TestZeroBidAuctionLeavesPropertyUnowned(t *testing.T) {
	g := newTestGame(t)
	startAuction(t, g)
	if err := g.PassBid(0); err != nil {
		t.Fatal(err)
	}
	if g.Properties[1].OwnerId != -1 {
		t.Fatal("property should stay with the bank")
	}
	if g.Turn.Phase != TurnOver {
		t.Fatalf("expected turn over, got %s", g.Turn.Phase)
	}
	if g.Players[0].Cash != 1500 || g.Players[1].Cash != 1500 {
		t.Fatal("no cash should move in a zero-bid auction")
	}
}

func TestLeaderPassKeepsBidStanding(t *testing.T) {
	g := newTestGame(t, "A", "B", "C")
	auction := startAuction(t, g)
	if err := g.PlaceBid(1, 80); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(1); err != nil {
		t.Fatal(err)
	}
	if auction.HighestBid != 80 || auction.HighestBidder != 1 {
		t.Fatal("a leader passing keeps the standing bid")
	}
	if err := g.PassBid(0); err != nil {
		t.Fatal(err)
	}
	// Only player 2 remains active; the standing bid still wins.
	if g.Properties[1].OwnerId != 1 {
		t.Fatal("standing bid should win the auction")
	}
	if g.Players[1].Cash != 1500-80 {
		t.Fatalf("winner should pay the standing bid, has %d", g.Players[1].Cash)
	}
}
