package engine

import "monopoly-engine/platform/board"

// DeclareBankruptcy liquidates the player's buildings, then hands everything
// to the creditor (creditorId >= 0) or back to the bank. The player stays in
// the player list but leaves the turn rotation.
func (g *Game) DeclareBankruptcy(playerId, creditorId int) error {
	player, err := g.player(playerId)
	if err != nil {
		return err
	}
	if player.Bankrupt {
		return ruleErr("player %d already bankrupt", playerId)
	}
	if creditorId >= 0 {
		if _, err := g.player(creditorId); err != nil {
			return err
		}
	}
	g.liquidateHouses(playerId)
	if creditorId >= 0 {
		creditor := g.Players[creditorId]
		creditor.Cash += player.Cash
		player.Cash = 0
		for _, propertyId := range g.sortedPropertyIds() {
			state := g.Properties[propertyId]
			if state.OwnerId != playerId {
				continue
			}
			state.OwnerId = creditorId
			if err := g.chargeMortgageTransfer(creditorId, propertyId); err != nil {
				return err
			}
		}
		g.logf("Player %d bankrupt to player %d.", playerId, creditorId)
	} else {
		for _, propertyId := range g.sortedPropertyIds() {
			state := g.Properties[propertyId]
			if state.OwnerId != playerId {
				continue
			}
			state.OwnerId = -1
			state.Mortgaged = false
			state.Houses = 0
		}
		g.logf("Player %d bankrupt to bank.", playerId)
	}
	player.Bankrupt = true
	player.InJail = false
	return nil
}

// liquidateHouses sells every building back to the bank at half cost,
// ignoring the even-selling constraint.
func (g *Game) liquidateHouses(playerId int) {
	for _, propertyId := range g.sortedPropertyIds() {
		state := g.Properties[propertyId]
		if state.OwnerId != playerId || state.Houses == 0 {
			continue
		}
		data := board.Properties[propertyId]
		if state.Houses == 5 {
			saleValue := int(float64(data.HouseCost) * 5 * board.HouseSellValue)
			g.HotelsAvailable = min(board.MaxHotels, g.HotelsAvailable+1)
			g.HousesAvailable = min(board.MaxHouses, g.HousesAvailable+4)
			g.Players[playerId].Cash += saleValue
		} else {
			saleValue := int(float64(data.HouseCost) * board.HouseSellValue)
			g.HousesAvailable = min(board.MaxHouses, g.HousesAvailable+state.Houses)
			g.Players[playerId].Cash += saleValue * state.Houses
		}
		state.Houses = 0
	}
}
