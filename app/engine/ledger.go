package engine

// payBank charges a player. The bank has infinite cash, so credits never
// fail; only debits are solvency-checked.
func (g *Game) payBank(playerId, amount int) error {
	if amount <= 0 {
		return nil
	}
	player := g.Players[playerId]
	if player.Cash < amount {
		return &InsufficientFundsError{PlayerId: playerId, AmountDue: amount}
	}
	player.Cash -= amount
	return nil
}

// transferCash moves cash between players, failing without any mutation when
// the payer cannot cover the amount.
func (g *Game) transferCash(from, to, amount int) error {
	if amount <= 0 {
		return nil
	}
	payer := g.Players[from]
	if payer.Cash < amount {
		return &InsufficientFundsError{PlayerId: from, AmountDue: amount}
	}
	payer.Cash -= amount
	g.Players[to].Cash += amount
	return nil
}
