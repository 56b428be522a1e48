package board

// CardAction is a closed set; the engine switches over every variant so a new
// action kind fails loudly at review time instead of silently at runtime.
type CardAction int

const (
	ActionMove CardAction = iota
	ActionMoveNearestRailroad
	ActionMoveNearestUtility
	ActionMoveBack
	ActionCollect
	ActionPay
	ActionPayEach
	ActionCollectEach
	ActionGoToJail
	ActionRepair
	ActionGetOutOfJail
)

type Card struct {
	Description string     `json:"description"`
	Action      CardAction `json:"action"`
	Amount      int        `json:"amount"`
	Destination int        `json:"destination"`
	PerHouse    int        `json:"per_house"`
	PerHotel    int        `json:"per_hotel"`
	CollectGo   bool       `json:"collect_go"`
}

func ChanceCards() []Card {
	return []Card{
		{Description: "Advance to GO (Collect $200)", Action: ActionMove, Destination: 0, CollectGo: true},
		{Description: "Advance to Illinois Avenue", Action: ActionMove, Destination: 24, CollectGo: true},
		{Description: "Advance to St. Charles Place", Action: ActionMove, Destination: 11, CollectGo: true},
		{Description: "Advance to nearest Utility", Action: ActionMoveNearestUtility},
		{Description: "Advance to nearest Railroad", Action: ActionMoveNearestRailroad},
		{Description: "Advance to nearest Railroad", Action: ActionMoveNearestRailroad},
		{Description: "Bank pays you dividend of $50", Action: ActionCollect, Amount: 50},
		{Description: "Get Out of Jail Free", Action: ActionGetOutOfJail},
		{Description: "Go Back 3 Spaces", Action: ActionMoveBack, Amount: 3},
		{Description: "Go to Jail. Go directly to Jail", Action: ActionGoToJail},
		{Description: "Make general repairs on all your property", Action: ActionRepair, PerHouse: 25, PerHotel: 100},
		{Description: "Pay poor tax of $15", Action: ActionPay, Amount: 15},
		{Description: "Take a trip to Reading Railroad", Action: ActionMove, Destination: 5, CollectGo: true},
		{Description: "Take a walk on the Boardwalk", Action: ActionMove, Destination: 39, CollectGo: true},
		{Description: "You have been elected Chairman of the Board", Action: ActionPayEach, Amount: 50},
		{Description: "Your building loan matures", Action: ActionCollect, Amount: 150},
	}
}

func CommunityChestCards() []Card {
	return []Card{
		{Description: "Advance to GO (Collect $200)", Action: ActionMove, Destination: 0, CollectGo: true},
		{Description: "Bank error in your favor. Collect $200", Action: ActionCollect, Amount: 200},
		{Description: "Doctor's fees. Pay $50", Action: ActionPay, Amount: 50},
		{Description: "From sale of stock you get $50", Action: ActionCollect, Amount: 50},
		{Description: "Get Out of Jail Free", Action: ActionGetOutOfJail},
		{Description: "Go to Jail. Go directly to Jail", Action: ActionGoToJail},
		{Description: "Grand Opera Night. Collect $50 from every player", Action: ActionCollectEach, Amount: 50},
		{Description: "Income tax refund. Collect $20", Action: ActionCollect, Amount: 20},
		{Description: "Life insurance matures. Collect $100", Action: ActionCollect, Amount: 100},
		{Description: "Pay hospital fees of $100", Action: ActionPay, Amount: 100},
		{Description: "Pay school fees of $150", Action: ActionPay, Amount: 150},
		{Description: "Receive $25 consultancy fee", Action: ActionCollect, Amount: 25},
		{Description: "You are assessed for street repairs", Action: ActionRepair, PerHouse: 40, PerHotel: 115},
		{Description: "You have won second prize in a beauty contest. Collect $10", Action: ActionCollect, Amount: 10},
		{Description: "You inherit $100", Action: ActionCollect, Amount: 100},
		{Description: "Holiday fund matures. Receive $100", Action: ActionCollect, Amount: 100},
	}
}
