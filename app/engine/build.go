package engine

import "monopoly-engine/platform/board"

// MortgageProperty credits the principal; blocked while any house stands in
// the color group.
func (g *Game) MortgageProperty(playerId, propertyId int) error {
	if _, err := g.player(playerId); err != nil {
		return err
	}
	if err := g.requireOwner(playerId, propertyId); err != nil {
		return err
	}
	state := g.Properties[propertyId]
	if state.Mortgaged {
		return ruleErr("property %d already mortgaged", propertyId)
	}
	if g.groupHasHouses(propertyId) {
		return ruleErr("cannot mortgage while houses exist in group")
	}
	principal := board.Properties[propertyId].Mortgage
	state.Mortgaged = true
	g.Players[playerId].Cash += principal
	g.logf("Player %d mortgaged %s for $%d.", playerId, board.Properties[propertyId].Name, principal)
	return nil
}

// UnmortgageProperty charges principal plus interest, truncated to an
// integer.
func (g *Game) UnmortgageProperty(playerId, propertyId int) error {
	if _, err := g.player(playerId); err != nil {
		return err
	}
	if err := g.requireOwner(playerId, propertyId); err != nil {
		return err
	}
	state := g.Properties[propertyId]
	if !state.Mortgaged {
		return ruleErr("property %d is not mortgaged", propertyId)
	}
	cost := int(float64(board.Properties[propertyId].Mortgage) * (1 + board.MortgageInterestRate))
	if err := g.payBank(playerId, cost); err != nil {
		return err
	}
	state.Mortgaged = false
	g.logf("Player %d unmortgaged %s for $%d.", playerId, board.Properties[propertyId].Name, cost)
	return nil
}

// BuildHouse adds one house (or upgrades 4 houses to a hotel) under the
// full-group, no-mortgage, even-building, and supply constraints.
func (g *Game) BuildHouse(playerId, propertyId int) error {
	if _, err := g.player(playerId); err != nil {
		return err
	}
	if err := g.requireOwner(playerId, propertyId); err != nil {
		return err
	}
	data := board.Properties[propertyId]
	if data.Type != board.Property {
		return ruleErr("can only build on color properties")
	}
	if !g.ownsGroup(playerId, data.Group) {
		return ruleErr("must own full color group to build")
	}
	if g.groupHasMortgage(data.Group) {
		return ruleErr("cannot build with mortgaged property in group")
	}
	state := g.Properties[propertyId]
	if state.Houses >= 5 {
		return ruleErr("property %d already has a hotel", propertyId)
	}
	if !g.canBuildEvenly(propertyId) {
		return ruleErr("must build evenly across the group")
	}
	if state.Houses == 4 {
		if g.HotelsAvailable < 1 {
			return ruleErr("no hotels available")
		}
	} else {
		if g.HousesAvailable < 1 {
			return ruleErr("no houses available")
		}
	}
	if err := g.payBank(playerId, data.HouseCost); err != nil {
		return err
	}
	if state.Houses == 4 {
		// Hotel swap: one hotel out of the pool, the four houses go back.
		g.HotelsAvailable--
		g.HousesAvailable = min(board.MaxHouses, g.HousesAvailable+4)
		state.Houses = 5
	} else {
		g.HousesAvailable--
		state.Houses++
	}
	g.logf("Player %d built on %s.", playerId, data.Name)
	return nil
}

// SellHouse refunds half the build cost; selling a hotel needs four houses
// back from the pool.
func (g *Game) SellHouse(playerId, propertyId int) error {
	if _, err := g.player(playerId); err != nil {
		return err
	}
	if err := g.requireOwner(playerId, propertyId); err != nil {
		return err
	}
	data := board.Properties[propertyId]
	state := g.Properties[propertyId]
	if state.Houses == 0 {
		return ruleErr("no houses to sell on property %d", propertyId)
	}
	if !g.canSellEvenly(propertyId) {
		return ruleErr("must sell evenly across the group")
	}
	var saleValue int
	if state.Houses == 5 {
		if g.HousesAvailable < 4 {
			return ruleErr("not enough houses available to sell a hotel")
		}
		state.Houses = 4
		g.HotelsAvailable = min(board.MaxHotels, g.HotelsAvailable+1)
		g.HousesAvailable -= 4
		saleValue = int(float64(data.HouseCost) * 5 * board.HouseSellValue)
	} else {
		state.Houses--
		g.HousesAvailable = min(board.MaxHouses, g.HousesAvailable+1)
		saleValue = int(float64(data.HouseCost) * board.HouseSellValue)
	}
	g.Players[playerId].Cash += saleValue
	g.logf("Player %d sold a house on %s for $%d.", playerId, data.Name, saleValue)
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
