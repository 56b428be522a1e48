package engine

import "monopoly-engine/platform/board"

// CreateTradeOffer validates the proposer's side and records the offer.
// toPlayer -1 leaves the offer open to anyone.
func (g *Game) CreateTradeOffer(fromPlayer, toPlayer, giveCash int, giveProperties []int, receiveCash int, receiveProperties []int) (*TradeOffer, error) {
	if _, err := g.player(fromPlayer); err != nil {
		return nil, err
	}
	if toPlayer >= 0 {
		if _, err := g.player(toPlayer); err != nil {
			return nil, err
		}
	} else {
		toPlayer = -1
	}
	if err := g.validateTradeAssets(fromPlayer, giveCash, giveProperties); err != nil {
		return nil, err
	}
	offer := &TradeOffer{
		Id:                g.NextOfferId,
		FromPlayer:        fromPlayer,
		ToPlayer:          toPlayer,
		GiveCash:          giveCash,
		GiveProperties:    giveProperties,
		ReceiveCash:       receiveCash,
		ReceiveProperties: receiveProperties,
		Status:            TradeOpen,
	}
	g.TradeOffers[offer.Id] = offer
	g.NextOfferId++
	g.logf("Trade offer %d created by player %d.", offer.Id, fromPlayer)
	return offer, nil
}

func (g *Game) CancelTradeOffer(offerId, playerId int) error {
	offer, err := g.getOffer(offerId)
	if err != nil {
		return err
	}
	if offer.FromPlayer != playerId {
		return ruleErr("only offer creator can cancel")
	}
	offer.Status = TradeCancelled
	g.logf("Trade offer %d cancelled.", offerId)
	return nil
}

// AcceptTradeOffer re-validates both sides against current state, including
// the mortgage-transfer interest each recipient will owe, before any asset
// moves; a failed validation leaves the game untouched.
func (g *Game) AcceptTradeOffer(offerId, acceptingPlayer int) error {
	offer, err := g.getOffer(offerId)
	if err != nil {
		return err
	}
	if offer.Status != TradeOpen {
		return ruleErr("offer %d is not open", offerId)
	}
	if offer.ToPlayer >= 0 && offer.ToPlayer != acceptingPlayer {
		return ruleErr("offer %d not addressed to player %d", offerId, acceptingPlayer)
	}
	if _, err := g.player(acceptingPlayer); err != nil {
		return err
	}
	// Interest is validated without netting incoming cash, so the transfer
	// below can never fail halfway through.
	fromNeeds := offer.GiveCash + g.mortgageInterest(offer.ReceiveProperties)
	acceptingNeeds := offer.ReceiveCash + g.mortgageInterest(offer.GiveProperties)
	if err := g.validateTradeAssets(offer.FromPlayer, fromNeeds, offer.GiveProperties); err != nil {
		return err
	}
	if err := g.validateTradeAssets(acceptingPlayer, acceptingNeeds, offer.ReceiveProperties); err != nil {
		return err
	}
	if err := g.transferCash(offer.FromPlayer, acceptingPlayer, offer.GiveCash); err != nil {
		return err
	}
	if err := g.transferCash(acceptingPlayer, offer.FromPlayer, offer.ReceiveCash); err != nil {
		return err
	}
	if err := g.transferProperties(offer.FromPlayer, acceptingPlayer, offer.GiveProperties); err != nil {
		return err
	}
	if err := g.transferProperties(acceptingPlayer, offer.FromPlayer, offer.ReceiveProperties); err != nil {
		return err
	}
	offer.Status = TradeAccepted
	g.logf("Trade offer %d accepted by player %d.", offerId, acceptingPlayer)
	return nil
}

func (g *Game) validateTradeAssets(playerId, cash int, propertyIds []int) error {
	player, err := g.player(playerId)
	if err != nil {
		return err
	}
	if player.Cash < cash {
		return &InsufficientFundsError{PlayerId: playerId, AmountDue: cash}
	}
	for _, propertyId := range propertyIds {
		if err := g.requireOwner(playerId, propertyId); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) transferProperties(from, to int, propertyIds []int) error {
	for _, propertyId := range propertyIds {
		if err := g.requireOwner(from, propertyId); err != nil {
			return err
		}
		g.Properties[propertyId].OwnerId = to
		if err := g.chargeMortgageTransfer(to, propertyId); err != nil {
			return err
		}
	}
	return nil
}

// chargeMortgageTransfer bills the new owner of a mortgaged property the
// transfer interest, distinct from the unmortgage payoff.
func (g *Game) chargeMortgageTransfer(newOwnerId, propertyId int) error {
	if !g.Properties[propertyId].Mortgaged {
		return nil
	}
	interest := int(float64(board.Properties[propertyId].Mortgage) * board.MortgageInterestRate)
	if err := g.payBank(newOwnerId, interest); err != nil {
		return err
	}
	g.logf("Player %d paid $%d mortgage interest on %s.", newOwnerId, interest, board.Properties[propertyId].Name)
	return nil
}

func (g *Game) mortgageInterest(propertyIds []int) int {
	total := 0
	for _, propertyId := range propertyIds {
		if g.Properties[propertyId] != nil && g.Properties[propertyId].Mortgaged {
			total += int(float64(board.Properties[propertyId].Mortgage) * board.MortgageInterestRate)
		}
	}
	return total
}

func (g *Game) getOffer(offerId int) (*TradeOffer, error) {
	offer, ok := g.TradeOffers[offerId]
	if !ok {
		return nil, ruleErr("offer %d not found", offerId)
	}
	return offer, nil
}
