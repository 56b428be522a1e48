package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"monopoly-engine/platform/board"
)

type TurnPhase string

const (
	AwaitJailAction  TurnPhase = "await_jail_action"
	AwaitRoll        TurnPhase = "await_roll"
	AwaitBuyDecision TurnPhase = "await_buy_decision"
	AwaitAuction     TurnPhase = "await_auction"
	TurnOver         TurnPhase = "turn_over"
)

// JailCard is a held Get Out of Jail Free card, tagged with the deck it came
// from so it can be returned to the right draw pile.
type JailCard struct {
	Deck string
	Card board.Card
}

type Player struct {
	Id        int
	Name      string
	Cash      int
	Position  int
	InJail    bool
	JailTurns int
	JailCards []JailCard
	Bankrupt  bool
}

// PropertyState tracks the mutable side of an ownable space. OwnerId is -1
// while the bank holds the deed. Houses 5 means a hotel.
type PropertyState struct {
	OwnerId   int
	Houses    int
	Mortgaged bool
}

type AuctionState struct {
	PropertyId    int
	HighestBid    int
	HighestBidder int // -1 while no bid stands
	ActiveBidders map[int]bool
}

type TradeStatus string

const (
	TradeOpen      TradeStatus = "open"
	TradeAccepted  TradeStatus = "accepted"
	TradeCancelled TradeStatus = "cancelled"
)

// TradeOffer is immutable after creation except for Status; offers are kept
// around after resolution for the audit trail.
type TradeOffer struct {
	Id                int
	FromPlayer        int
	ToPlayer          int // -1 = open offer, anyone may accept
	GiveCash          int
	GiveProperties    []int
	ReceiveCash       int
	ReceiveProperties []int
	Status            TradeStatus
}

// TurnState is replaced wholesale at the start of each turn.
type TurnState struct {
	Phase             TurnPhase
	PendingPropertyId int // -1 when no buy decision is pending
	PendingAuction    *AuctionState
	LastRoll          []int // nil until the first roll of the game
	DoublesCount      int
}

func newTurnState(phase TurnPhase) TurnState {
	return TurnState{Phase: phase, PendingPropertyId: -1}
}

// Game is the aggregate root. One logical thread of control mutates it at a
// time; the embedding layer is responsible for serializing calls.
type Game struct {
	Players         []*Player
	Properties      map[int]*PropertyState
	ChanceDeck      []board.Card
	CommunityDeck   []board.Card
	CurrentIndex    int
	Turn            TurnState
	TradeOffers     map[int]*TradeOffer
	EventLog        []string
	NextOfferId     int
	HousesAvailable int
	HotelsAvailable int

	rng *rand.Rand
	log *logrus.Entry
}

// New builds a game for 2-4 players. The seed drives every dice roll and deck
// shuffle, so equal seeds plus equal operation sequences give equal state.
func New(playerNames []string, seed int64) (*Game, error) {
	names := make([]string, 0, len(playerNames))
	for _, name := range playerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ruleErr("player names must be non-empty")
		}
		names = append(names, name)
	}
	if len(names) < 2 || len(names) > 4 {
		return nil, ruleErr("game supports 2-4 players")
	}

	rng := rand.New(rand.NewSource(seed))
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{Id: i, Name: name, Cash: board.StartCash}
	}
	properties := make(map[int]*PropertyState, len(board.Properties))
	for id := range board.Properties {
		properties[id] = &PropertyState{OwnerId: -1}
	}
	chance := board.ChanceCards()
	rng.Shuffle(len(chance), func(i, j int) { chance[i], chance[j] = chance[j], chance[i] })
	community := board.CommunityChestCards()
	rng.Shuffle(len(community), func(i, j int) { community[i], community[j] = community[j], community[i] })

	g := &Game{
		Players:         players,
		Properties:      properties,
		ChanceDeck:      chance,
		CommunityDeck:   community,
		Turn:            newTurnState(AwaitRoll),
		TradeOffers:     make(map[int]*TradeOffer),
		NextOfferId:     1,
		HousesAvailable: board.MaxHouses,
		HotelsAvailable: board.MaxHotels,
		rng:             rng,
		log:             logrus.WithField("component", "engine"),
	}
	g.logf("Game started.")
	return g, nil
}

func (g *Game) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	g.EventLog = append(g.EventLog, msg)
	g.log.Debug(msg)
}

func (g *Game) currentPlayer() *Player {
	return g.Players[g.CurrentIndex]
}

func (g *Game) player(id int) (*Player, error) {
	if id < 0 || id >= len(g.Players) {
		return nil, ruleErr("unknown player %d", id)
	}
	return g.Players[id], nil
}

func (g *Game) advanceTurnIndex() error {
	total := len(g.Players)
	for i := 0; i < total; i++ {
		g.CurrentIndex = (g.CurrentIndex + 1) % total
		if !g.currentPlayer().Bankrupt {
			return nil
		}
	}
	return ErrGameOver
}
