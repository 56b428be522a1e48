package engine

import "monopoly-engine/platform/board"

// StartTurn derives the opening phase for the active player, rotating past
// bankrupt players first.
func (g *Game) StartTurn() error {
	player := g.currentPlayer()
	if player.Bankrupt {
		if err := g.advanceTurnIndex(); err != nil {
			return err
		}
		player = g.currentPlayer()
	}
	if player.InJail {
		g.Turn = newTurnState(AwaitJailAction)
	} else {
		g.Turn = newTurnState(AwaitRoll)
	}
	g.logf("Turn started for %s.", player.Name)
	return nil
}

// RollDice moves the active player and resolves the landing. The third
// consecutive doubles jails the player without moving and ends the turn.
func (g *Game) RollDice() (int, int, error) {
	if g.Turn.Phase != AwaitRoll {
		return 0, 0, ruleErr("not ready to roll dice")
	}
	die1 := g.rng.Intn(6) + 1
	die2 := g.rng.Intn(6) + 1
	g.Turn.LastRoll = []int{die1, die2}
	g.logf("%s rolled %d and %d.", g.currentPlayer().Name, die1, die2)
	if die1 == die2 {
		g.Turn.DoublesCount++
		if g.Turn.DoublesCount == 3 {
			g.sendToJail(g.currentPlayer().Id)
			g.Turn.Phase = TurnOver
			return die1, die2, nil
		}
	} else {
		// The count only tracks consecutive doubles; a plain roll both ends
		// the bonus chain and keeps the third-doubles rule honest.
		g.Turn.DoublesCount = 0
	}
	g.moveCurrentPlayer(die1+die2, true)
	if err := g.resolveLanding(); err != nil {
		return die1, die2, err
	}
	return die1, die2, nil
}

// AttemptJailRoll frees the player on doubles. The third failed attempt
// forces payment of the fine and the player moves by the dice just rolled.
func (g *Game) AttemptJailRoll() (int, int, error) {
	if g.Turn.Phase != AwaitJailAction {
		return 0, 0, ruleErr("not awaiting jail action")
	}
	player := g.currentPlayer()
	die1 := g.rng.Intn(6) + 1
	die2 := g.rng.Intn(6) + 1
	g.logf("%s rolled %d and %d in jail.", player.Name, die1, die2)
	if die1 == die2 {
		player.InJail = false
		player.JailTurns = 0
		g.Turn = newTurnState(AwaitRoll)
		g.Turn.LastRoll = []int{die1, die2}
		g.moveCurrentPlayer(die1+die2, true)
		if err := g.resolveLanding(); err != nil {
			return die1, die2, err
		}
		return die1, die2, nil
	}
	player.JailTurns++
	g.Turn.LastRoll = []int{die1, die2}
	if player.JailTurns >= 3 {
		if err := g.payBank(player.Id, board.JailFine); err != nil {
			return die1, die2, err
		}
		player.InJail = false
		player.JailTurns = 0
		g.Turn = newTurnState(AwaitRoll)
		g.Turn.LastRoll = []int{die1, die2}
		g.moveCurrentPlayer(die1+die2, true)
		if err := g.resolveLanding(); err != nil {
			return die1, die2, err
		}
		return die1, die2, nil
	}
	g.Turn.Phase = TurnOver
	return die1, die2, nil
}

func (g *Game) PayJailFine() error {
	if g.Turn.Phase != AwaitJailAction {
		return ruleErr("not awaiting jail action")
	}
	player := g.currentPlayer()
	if err := g.payBank(player.Id, board.JailFine); err != nil {
		return err
	}
	player.InJail = false
	player.JailTurns = 0
	g.Turn.Phase = AwaitRoll
	g.logf("%s paid the $%d jail fine.", player.Name, board.JailFine)
	return nil
}

// UseGetOutOfJailCard consumes a held card from the named deck and returns it
// to the bottom of that deck's draw pile.
func (g *Game) UseGetOutOfJailCard(deckName string) error {
	player := g.currentPlayer()
	for idx, held := range player.JailCards {
		if held.Deck != deckName {
			continue
		}
		player.JailCards = append(player.JailCards[:idx], player.JailCards[idx+1:]...)
		if deckName == "chance" {
			g.ChanceDeck = append(g.ChanceDeck, held.Card)
		} else {
			g.CommunityDeck = append(g.CommunityDeck, held.Card)
		}
		player.InJail = false
		player.JailTurns = 0
		g.Turn.Phase = AwaitRoll
		g.logf("%s used a Get Out of Jail Free card.", player.Name)
		return nil
	}
	return ruleErr("no matching Get Out of Jail Free card")
}

// EndTurn grants a bonus roll after doubles (the doubles count carries over,
// so a third consecutive pair still jails) or rotates to the next player.
func (g *Game) EndTurn() error {
	if g.Turn.Phase != TurnOver {
		return ruleErr("turn not complete")
	}
	if g.Turn.DoublesCount > 0 && !g.currentPlayer().InJail {
		doubles := g.Turn.DoublesCount
		g.Turn = newTurnState(AwaitRoll)
		g.Turn.DoublesCount = doubles
		g.logf("%s rolls again for doubles.", g.currentPlayer().Name)
		return nil
	}
	if err := g.advanceTurnIndex(); err != nil {
		return err
	}
	return g.StartTurn()
}

func (g *Game) sendToJail(playerId int) {
	player := g.Players[playerId]
	player.Position = board.JailPosition
	player.InJail = true
	player.JailTurns = 0
	g.logf("%s sent to jail.", player.Name)
}

func (g *Game) moveCurrentPlayer(steps int, collectGo bool) {
	player := g.currentPlayer()
	start := player.Position
	if collectGo && start+steps >= board.Size {
		player.Cash += board.GoSalary
		g.logf("%s collected $%d for passing GO.", player.Name, board.GoSalary)
	}
	player.Position = (start + steps) % board.Size
}

func (g *Game) movePlayerTo(playerId, destination int, collectGo bool) {
	player := g.Players[playerId]
	if collectGo && destination < player.Position {
		player.Cash += board.GoSalary
		g.logf("%s collected $%d for passing GO.", player.Name, board.GoSalary)
	}
	player.Position = destination
}

// resolveLanding dispatches on the space the active player now occupies.
func (g *Game) resolveLanding() error {
	player := g.currentPlayer()
	space := board.Spaces[player.Position]
	switch space.Type {
	case board.Property, board.Railroad, board.Utility:
		state := g.Properties[space.PropertyId]
		if state.OwnerId < 0 {
			g.Turn.Phase = AwaitBuyDecision
			g.Turn.PendingPropertyId = space.PropertyId
			return nil
		}
		if state.OwnerId != player.Id && !state.Mortgaged {
			rent := g.calculateRent(space.PropertyId, player.Id)
			if err := g.transferCash(player.Id, state.OwnerId, rent); err != nil {
				return err
			}
			g.logf("%s paid $%d rent to %s.", player.Name, rent, g.Players[state.OwnerId].Name)
		}
		g.Turn.Phase = TurnOver
	case board.Chance:
		return g.drawCard("chance")
	case board.CommunityChest:
		return g.drawCard("community")
	case board.Tax:
		if err := g.payBank(player.Id, space.TaxAmount); err != nil {
			return err
		}
		g.logf("%s paid $%d tax.", player.Name, space.TaxAmount)
		g.Turn.Phase = TurnOver
	case board.GoToJail:
		g.sendToJail(player.Id)
		g.Turn.Phase = TurnOver
	default:
		g.Turn.Phase = TurnOver
	}
	return nil
}

// calculateRent applies the rent formula: railroads scale with unmortgaged
// railroads held, utilities with the dice sum, streets with the house table
// (doubled on a bare full group).
func (g *Game) calculateRent(propertyId, tenantId int) int {
	data := board.Properties[propertyId]
	state := g.Properties[propertyId]
	ownerId := state.OwnerId
	if ownerId < 0 || ownerId == tenantId {
		return 0
	}
	switch data.Type {
	case board.Railroad:
		count := g.countOwnedUnmortgaged(ownerId, board.Railroads)
		return data.Rents[count-1]
	case board.Utility:
		multiplier := 4
		if g.countOwnedUnmortgaged(ownerId, board.Utilities) == 2 {
			multiplier = 10
		}
		return g.lastRollSum() * multiplier
	}
	rent := data.Rents[state.Houses]
	if state.Houses == 0 && g.ownsGroup(ownerId, data.Group) {
		rent *= 2
	}
	return rent
}

func (g *Game) lastRollSum() int {
	sum := 0
	for _, die := range g.Turn.LastRoll {
		sum += die
	}
	return sum
}
