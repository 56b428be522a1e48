package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"monopoly-engine/app/engine"
)

// runSimulation drives one engine with a scripted policy: try to leave jail
// by rolling, roll, buy or decline, pass everyone out of auctions, end the
// turn. Bankrupt current players just pass the turn along.
func runSimulation(players []string, turns int, seed int64, autoBuy bool) (*engine.Game, error) {
	game, err := engine.New(players, seed)
	if err != nil {
		return nil, err
	}
	if err := game.StartTurn(); err != nil {
		return nil, err
	}
	for i := 0; i < turns; i++ {
		if game.Players[game.CurrentIndex].Bankrupt {
			if err := endTurn(game); err != nil {
				return game, err
			}
			continue
		}
		if game.Turn.Phase == engine.AwaitJailAction {
			if _, _, err := game.AttemptJailRoll(); err != nil {
				if err := resolveShortfall(game, err); err != nil {
					return game, err
				}
			}
		}
		if game.Turn.Phase == engine.AwaitRoll {
			if _, _, err := game.RollDice(); err != nil {
				if err := resolveShortfall(game, err); err != nil {
					return game, err
				}
			}
		}
		if game.Turn.Phase == engine.AwaitBuyDecision {
			if err := resolveBuy(game, autoBuy); err != nil {
				return game, err
			}
		}
		for game.Turn.Phase == engine.AwaitAuction {
			auction := game.Turn.PendingAuction
			if auction == nil {
				break
			}
			for _, bidder := range auction.BidderIds() {
				if bidder == auction.HighestBidder {
					continue
				}
				if err := game.PassBid(bidder); err != nil {
					return game, err
				}
				if game.Turn.Phase != engine.AwaitAuction {
					break
				}
			}
		}
		if game.Turn.Phase == engine.TurnOver {
			if err := endTurn(game); err != nil {
				return game, err
			}
		}
	}
	return game, nil
}

// resolveShortfall is the scripted answer to a charge the debtor cannot
// cover: declare bankruptcy to the bank and close out the turn.
func resolveShortfall(game *engine.Game, err error) error {
	var funds *engine.InsufficientFundsError
	if !errors.As(err, &funds) {
		return err
	}
	if err := game.DeclareBankruptcy(funds.PlayerId, -1); err != nil {
		return err
	}
	game.Turn.Phase = engine.TurnOver
	return nil
}

func resolveBuy(game *engine.Game, autoBuy bool) error {
	if !autoBuy {
		return game.DeclineProperty()
	}
	err := game.BuyProperty()
	var funds *engine.InsufficientFundsError
	if errors.As(err, &funds) {
		return game.DeclineProperty()
	}
	return err
}

func endTurn(game *engine.Game) error {
	err := game.EndTurn()
	if errors.Is(err, engine.ErrGameOver) {
		pterm.Warning.Println("game over: no active players remain")
		return nil
	}
	return err
}

func main() {
	playersFlag := flag.String("players", "", "comma-separated player names (2-4)")
	turnsFlag := flag.Int("turns", 20, "number of turns to simulate")
	seedFlag := flag.Int64("seed", 1, "rng seed")
	autoBuyFlag := flag.Bool("auto-buy", false, "buy every affordable property")
	flag.Parse()

	players := strings.Split(*playersFlag, ",")
	if *playersFlag == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -players A,B [-turns N] [-seed N] [-auto-buy]\n", os.Args[0])
		os.Exit(1)
	}

	game, err := runSimulation(players, *turnsFlag, *seedFlag, *autoBuyFlag)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	snapshot := game.Snapshot(20)
	pterm.DefaultSection.Println("Event log")
	for _, event := range snapshot.EventLog {
		pterm.Info.Println(event)
	}

	pterm.DefaultSection.Println("Final standings")
	rows := pterm.TableData{{"Player", "Cash", "Position", "Status"}}
	for _, player := range snapshot.Players {
		status := "active"
		if player.Bankrupt {
			status = "bankrupt"
		} else if player.InJail {
			status = "in jail"
		}
		rows = append(rows, []string{
			player.Name,
			fmt.Sprintf("$%d", player.Cash),
			fmt.Sprintf("%d", player.Position),
			status,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
