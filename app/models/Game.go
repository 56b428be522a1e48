package models

type GameCreateDto struct {
	Players []string `json:"players"`
	Seed    *int64   `json:"seed"`
}

type PropertyActionDto struct {
	Player   int `json:"player"`
	Property int `json:"property"`
}

type BidDto struct {
	Player int `json:"player"`
	Amount int `json:"amount"`
}

type PassDto struct {
	Player int `json:"player"`
}

type JailCardDto struct {
	Deck string `json:"deck"`
}

type TradeCreateDto struct {
	From              int   `json:"from"`
	To                *int  `json:"to"` // null = open offer
	GiveCash          int   `json:"give_cash"`
	GiveProperties    []int `json:"give_properties"`
	ReceiveCash       int   `json:"receive_cash"`
	ReceiveProperties []int `json:"receive_properties"`
}

type TradeActionDto struct {
	Offer  int `json:"offer"`
	Player int `json:"player"`
}

type BankruptcyDto struct {
	Player   int  `json:"player"`
	Creditor *int `json:"creditor"` // null = assets revert to the bank
}
