package engine

import "monopoly-engine/platform/board"

// drawCard takes the front card of the named deck. Non-keep cards recycle to
// the bottom before their effect runs; a Get Out of Jail Free card is held by
// the player until used.
func (g *Game) drawCard(deckName string) error {
	deck := &g.CommunityDeck
	if deckName == "chance" {
		deck = &g.ChanceDeck
	}
	card := (*deck)[0]
	*deck = (*deck)[1:]
	player := g.currentPlayer()
	g.logf("%s drew card: %s.", player.Name, card.Description)
	if card.Action == board.ActionGetOutOfJail {
		player.JailCards = append(player.JailCards, JailCard{Deck: deckName, Card: card})
		g.logf("%s kept a Get Out of Jail Free card.", player.Name)
	} else {
		*deck = append(*deck, card)
		if err := g.applyCard(card, player.Id); err != nil {
			return err
		}
	}
	if g.Turn.Phase != AwaitBuyDecision {
		g.Turn.Phase = TurnOver
	}
	return nil
}

// applyCard dispatches on the closed action set. Every variant is handled
// here; effects that move the player re-enter landing resolution.
func (g *Game) applyCard(card board.Card, playerId int) error {
	switch card.Action {
	case board.ActionMove:
		g.movePlayerTo(playerId, card.Destination, card.CollectGo)
		return g.resolveLanding()
	case board.ActionMoveNearestRailroad:
		destination := g.findNearest(playerId, board.Railroads)
		g.movePlayerTo(playerId, destination, true)
		return g.resolveLandingWithRentMultiplier(2)
	case board.ActionMoveNearestUtility:
		destination := g.findNearest(playerId, board.Utilities)
		g.movePlayerTo(playerId, destination, true)
		return g.resolveLandingWithUtilityMultiplier(10)
	case board.ActionMoveBack:
		player := g.Players[playerId]
		player.Position = (player.Position - card.Amount + board.Size) % board.Size
		return g.resolveLanding()
	case board.ActionCollect:
		g.Players[playerId].Cash += card.Amount
		return nil
	case board.ActionPay:
		return g.payBank(playerId, card.Amount)
	case board.ActionPayEach:
		// Per-pair transfers in player order; an insufficient-funds failure
		// mid-way leaves earlier transfers applied.
		for _, other := range g.Players {
			if other.Id == playerId || other.Bankrupt {
				continue
			}
			if err := g.transferCash(playerId, other.Id, card.Amount); err != nil {
				return err
			}
		}
		return nil
	case board.ActionCollectEach:
		for _, other := range g.Players {
			if other.Id == playerId || other.Bankrupt {
				continue
			}
			if err := g.transferCash(other.Id, playerId, card.Amount); err != nil {
				return err
			}
		}
		return nil
	case board.ActionGoToJail:
		g.sendToJail(playerId)
		return nil
	case board.ActionRepair:
		houses, hotels := g.countHousesHotels(playerId)
		return g.payBank(playerId, card.PerHouse*houses+card.PerHotel*hotels)
	case board.ActionGetOutOfJail:
		// Keep-type cards never reach dispatch; drawCard holds them.
		return nil
	}
	return ruleErr("unhandled card action %d", card.Action)
}

// resolveLandingWithRentMultiplier is the nearest-railroad card path: rent at
// a multiple, or a buy decision when unowned.
func (g *Game) resolveLandingWithRentMultiplier(multiplier int) error {
	player := g.currentPlayer()
	space := board.Spaces[player.Position]
	if space.PropertyId < 0 {
		return nil
	}
	state := g.Properties[space.PropertyId]
	if state.OwnerId >= 0 && state.OwnerId != player.Id {
		rent := g.calculateRent(space.PropertyId, player.Id) * multiplier
		if err := g.transferCash(player.Id, state.OwnerId, rent); err != nil {
			return err
		}
		g.logf("%s paid $%d rent to %s.", player.Name, rent, g.Players[state.OwnerId].Name)
		g.Turn.Phase = TurnOver
	} else if state.OwnerId < 0 {
		g.Turn.Phase = AwaitBuyDecision
		g.Turn.PendingPropertyId = space.PropertyId
	}
	return nil
}

// resolveLandingWithUtilityMultiplier is the nearest-utility card path: the
// dice sum at a fixed multiplier instead of the utility table.
func (g *Game) resolveLandingWithUtilityMultiplier(multiplier int) error {
	player := g.currentPlayer()
	space := board.Spaces[player.Position]
	if space.PropertyId < 0 {
		return nil
	}
	state := g.Properties[space.PropertyId]
	if state.OwnerId >= 0 && state.OwnerId != player.Id {
		rent := g.lastRollSum() * multiplier
		if err := g.transferCash(player.Id, state.OwnerId, rent); err != nil {
			return err
		}
		g.logf("%s paid $%d rent to %s.", player.Name, rent, g.Players[state.OwnerId].Name)
		g.Turn.Phase = TurnOver
	} else if state.OwnerId < 0 {
		g.Turn.Phase = AwaitBuyDecision
		g.Turn.PendingPropertyId = space.PropertyId
	}
	return nil
}

func (g *Game) findNearest(playerId int, targets []int) int {
	position := g.Players[playerId].Position
	best := targets[0]
	bestDistance := board.Size + 1
	for _, target := range targets {
		distance := (target - position + board.Size) % board.Size
		if distance < bestDistance {
			bestDistance = distance
			best = target
		}
	}
	return best
}
