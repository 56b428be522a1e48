package engine

import (
	"sort"

	"monopoly-engine/platform/board"
)

// BidderIds lists the still-active bidders in stable order.
func (a *AuctionState) BidderIds() []int {
	ids := make([]int, 0, len(a.ActiveBidders))
	for id := range a.ActiveBidders {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (g *Game) BuyProperty() error {
	if g.Turn.Phase != AwaitBuyDecision {
		return ruleErr("no property available to buy")
	}
	propertyId := g.Turn.PendingPropertyId
	if propertyId < 0 {
		return ruleErr("no property pending")
	}
	player := g.currentPlayer()
	data := board.Properties[propertyId]
	if err := g.payBank(player.Id, data.Price); err != nil {
		return err
	}
	g.Properties[propertyId].OwnerId = player.Id
	g.Turn.PendingPropertyId = -1
	g.Turn.Phase = TurnOver
	g.logf("%s bought %s for $%d.", player.Name, data.Name, data.Price)
	return nil
}

// DeclineProperty opens an auction with every non-bankrupt player as an
// active bidder.
func (g *Game) DeclineProperty() error {
	if g.Turn.Phase != AwaitBuyDecision {
		return ruleErr("no property to decline")
	}
	propertyId := g.Turn.PendingPropertyId
	if propertyId < 0 {
		return ruleErr("no property pending")
	}
	auction := &AuctionState{
		PropertyId:    propertyId,
		HighestBidder: -1,
		ActiveBidders: make(map[int]bool),
	}
	for _, player := range g.Players {
		if !player.Bankrupt {
			auction.ActiveBidders[player.Id] = true
		}
	}
	g.Turn.PendingPropertyId = -1
	g.Turn.PendingAuction = auction
	g.Turn.Phase = AwaitAuction
	g.logf("Auction started for %s.", board.Properties[propertyId].Name)
	return nil
}

func (g *Game) PlaceBid(playerId, amount int) error {
	if g.Turn.Phase != AwaitAuction {
		return ruleErr("no auction running")
	}
	auction := g.Turn.PendingAuction
	if auction == nil {
		return ruleErr("no auction state")
	}
	if !auction.ActiveBidders[playerId] {
		return ruleErr("player %d not in auction", playerId)
	}
	player := g.Players[playerId]
	if player.Cash < amount {
		return &InsufficientFundsError{PlayerId: playerId, AmountDue: amount}
	}
	if amount <= auction.HighestBid {
		return ruleErr("bid must exceed highest bid of $%d", auction.HighestBid)
	}
	auction.HighestBid = amount
	auction.HighestBidder = playerId
	g.logf("%s bid $%d.", player.Name, amount)
	return nil
}

// PassBid drops a bidder; once at most one bidder remains the auction
// resolves itself.
func (g *Game) PassBid(playerId int) error {
	if g.Turn.Phase != AwaitAuction {
		return ruleErr("no auction running")
	}
	auction := g.Turn.PendingAuction
	if auction == nil {
		return ruleErr("no auction state")
	}
	if !auction.ActiveBidders[playerId] {
		return ruleErr("player %d not in auction", playerId)
	}
	delete(auction.ActiveBidders, playerId)
	g.logf("Player %d passed in auction.", playerId)
	if len(auction.ActiveBidders) <= 1 {
		return g.finalizeAuction(auction)
	}
	return nil
}

// finalizeAuction pays out a standing bid; with no bids the property stays
// with the bank. Either way the turn is over.
func (g *Game) finalizeAuction(auction *AuctionState) error {
	if auction.HighestBidder >= 0 {
		winner := g.Players[auction.HighestBidder]
		if err := g.payBank(winner.Id, auction.HighestBid); err != nil {
			return err
		}
		g.Properties[auction.PropertyId].OwnerId = winner.Id
		g.logf("%s won auction for $%d.", winner.Name, auction.HighestBid)
	} else {
		g.logf("Auction ended with no bids.")
	}
	g.Turn.PendingAuction = nil
	g.Turn.Phase = TurnOver
	return nil
}
