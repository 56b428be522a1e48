package engine

import (
	"sort"

	"monopoly-engine/platform/board"
)

type PlayerSnapshot struct {
	Id        int      `json:"id"`
	Name      string   `json:"name"`
	Cash      int      `json:"cash"`
	Position  int      `json:"position"`
	InJail    bool     `json:"in_jail"`
	JailTurns int      `json:"jail_turns"`
	JailCards []string `json:"jail_cards"`
	Bankrupt  bool     `json:"bankrupt"`
}

type PropertySnapshot struct {
	Name      string `json:"name"`
	OwnerId   int    `json:"owner_id"` // -1 when unowned
	Houses    int    `json:"houses"`
	Mortgaged bool   `json:"mortgaged"`
}

type AuctionSnapshot struct {
	PropertyId    int   `json:"property_id"`
	HighestBid    int   `json:"highest_bid"`
	HighestBidder int   `json:"highest_bidder"`
	ActiveBidders []int `json:"active_bidders"`
}

type TradeOfferSnapshot struct {
	Id                int         `json:"id"`
	FromPlayer        int         `json:"from_player"`
	ToPlayer          int         `json:"to_player"`
	GiveCash          int         `json:"give_cash"`
	GiveProperties    []int       `json:"give_properties"`
	ReceiveCash       int         `json:"receive_cash"`
	ReceiveProperties []int       `json:"receive_properties"`
	Status            TradeStatus `json:"status"`
}

type Snapshot struct {
	Players           []PlayerSnapshot         `json:"players"`
	CurrentPlayer     int                      `json:"current_player"`
	TurnPhase         TurnPhase                `json:"turn_phase"`
	PendingPropertyId int                      `json:"pending_property_id"`
	Auction           *AuctionSnapshot         `json:"auction"`
	LastRoll          []int                    `json:"last_roll"`
	EventLog          []string                 `json:"event_log"`
	Properties        map[int]PropertySnapshot `json:"properties"`
	TradeOffers       []TradeOfferSnapshot     `json:"trade_offers"`
	HousesAvailable   int                      `json:"houses_available"`
	HotelsAvailable   int                      `json:"hotels_available"`
}

// Snapshot copies the externally visible state. logWindow bounds the trailing
// event-log slice; pass a negative value for the full log.
func (g *Game) Snapshot(logWindow int) Snapshot {
	players := make([]PlayerSnapshot, len(g.Players))
	for i, player := range g.Players {
		cards := make([]string, len(player.JailCards))
		for j, held := range player.JailCards {
			cards[j] = held.Deck
		}
		players[i] = PlayerSnapshot{
			Id:        player.Id,
			Name:      player.Name,
			Cash:      player.Cash,
			Position:  player.Position,
			InJail:    player.InJail,
			JailTurns: player.JailTurns,
			JailCards: cards,
			Bankrupt:  player.Bankrupt,
		}
	}

	properties := make(map[int]PropertySnapshot, len(g.Properties))
	for id, state := range g.Properties {
		properties[id] = PropertySnapshot{
			Name:      board.Properties[id].Name,
			OwnerId:   state.OwnerId,
			Houses:    state.Houses,
			Mortgaged: state.Mortgaged,
		}
	}

	var auction *AuctionSnapshot
	if g.Turn.PendingAuction != nil {
		auction = &AuctionSnapshot{
			PropertyId:    g.Turn.PendingAuction.PropertyId,
			HighestBid:    g.Turn.PendingAuction.HighestBid,
			HighestBidder: g.Turn.PendingAuction.HighestBidder,
			ActiveBidders: g.Turn.PendingAuction.BidderIds(),
		}
	}

	offerIds := make([]int, 0, len(g.TradeOffers))
	for id := range g.TradeOffers {
		offerIds = append(offerIds, id)
	}
	sort.Ints(offerIds)
	offers := make([]TradeOfferSnapshot, 0, len(offerIds))
	for _, id := range offerIds {
		offer := g.TradeOffers[id]
		offers = append(offers, TradeOfferSnapshot{
			Id:                offer.Id,
			FromPlayer:        offer.FromPlayer,
			ToPlayer:          offer.ToPlayer,
			GiveCash:          offer.GiveCash,
			GiveProperties:    append([]int(nil), offer.GiveProperties...),
			ReceiveCash:       offer.ReceiveCash,
			ReceiveProperties: append([]int(nil), offer.ReceiveProperties...),
			Status:            offer.Status,
		})
	}

	log := g.EventLog
	if logWindow >= 0 && len(log) > logWindow {
		log = log[len(log)-logWindow:]
	}

	return Snapshot{
		Players:           players,
		CurrentPlayer:     g.CurrentIndex,
		TurnPhase:         g.Turn.Phase,
		PendingPropertyId: g.Turn.PendingPropertyId,
		Auction:           auction,
		LastRoll:          append([]int(nil), g.Turn.LastRoll...),
		EventLog:          append([]string(nil), log...),
		Properties:        properties,
		TradeOffers:       offers,
		HousesAvailable:   g.HousesAvailable,
		HotelsAvailable:   g.HotelsAvailable,
	}
}
