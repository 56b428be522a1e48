package controllers

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"monopoly-engine/app/engine"
	"monopoly-engine/app/models"
)

// eventLogWindow bounds the trailing event-log slice in state responses.
const eventLogWindow = 10

// gameSession pairs an engine with the single lock that serializes every
// call against it. Reads take the lock too: transactions read-modify-write
// several entities and a snapshot must not observe a half-applied one.
type gameSession struct {
	game *engine.Game
	mu   sync.Mutex
}

var (
	sessions   = map[string]*gameSession{}
	sessionsMu sync.RWMutex
)

func getSession(id string) *gameSession {
	sessionsMu.RLock()
	defer sessionsMu.RUnlock()
	return sessions[id]
}

// rejected maps engine errors to responses: recoverable conditions become
// 400s, the fatal game-over condition a 409.
func rejected(c *fiber.Ctx, err error) error {
	if errors.Is(err, engine.ErrGameOver) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "game_over": true})
	}
	var funds *engine.InsufficientFundsError
	if errors.As(err, &funds) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      funds.Error(),
			"player":     funds.PlayerId,
			"amount_due": funds.AmountDue,
		})
	}
	var rule *engine.RuleError
	if errors.As(err, &rule) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": rule.Error()})
	}
	logrus.WithError(err).Error("unexpected engine failure")
	return c.SendStatus(fiber.StatusInternalServerError)
}

// withGame runs one mutating engine operation under the game's lock.
func withGame(c *fiber.Ctx, fn func(g *engine.Game) error) error {
	session := getSession(c.Params("id"))
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	session.mu.Lock()
	err := fn(session.game)
	session.mu.Unlock()
	if err != nil {
		return rejected(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func CreateGame(c *fiber.Ctx) error {
	dto := new(models.GameCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	seed := time.Now().UnixNano()
	if dto.Seed != nil {
		seed = *dto.Seed
	}
	game, err := engine.New(dto.Players, seed)
	if err != nil {
		return rejected(c, err)
	}
	if err := game.StartTurn(); err != nil {
		return rejected(c, err)
	}
	id := uuid.NewV4().String()
	sessionsMu.Lock()
	sessions[id] = &gameSession{game: game}
	sessionsMu.Unlock()
	logrus.WithFields(logrus.Fields{"game": id, "players": len(dto.Players)}).Info("game created")
	return c.JSON(fiber.Map{"id": id})
}

func GetState(c *fiber.Ctx) error {
	session := getSession(c.Params("id"))
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	session.mu.Lock()
	snapshot := session.game.Snapshot(eventLogWindow)
	session.mu.Unlock()
	return c.JSON(snapshot)
}

func Roll(c *fiber.Ctx) error {
	return withGame(c, func(g *engine.Game) error {
		_, _, err := g.RollDice()
		return err
	})
}

func JailRoll(c *fiber.Ctx) error {
	return withGame(c, func(g *engine.Game) error {
		_, _, err := g.AttemptJailRoll()
		return err
	})
}

func JailPay(c *fiber.Ctx) error {
	return withGame(c, func(g *engine.Game) error {
		return g.PayJailFine()
	})
}

func JailCard(c *fiber.Ctx) error {
	dto := new(models.JailCardDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.UseGetOutOfJailCard(dto.Deck)
	})
}

func Buy(c *fiber.Ctx) error {
	return withGame(c, func(g *engine.Game) error {
		return g.BuyProperty()
	})
}

func Decline(c *fiber.Ctx) error {
	return withGame(c, func(g *engine.Game) error {
		return g.DeclineProperty()
	})
}

func Bid(c *fiber.Ctx) error {
	dto := new(models.BidDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.PlaceBid(dto.Player, dto.Amount)
	})
}

func Pass(c *fiber.Ctx) error {
	dto := new(models.PassDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.PassBid(dto.Player)
	})
}

func TradeCreate(c *fiber.Ctx) error {
	dto := new(models.TradeCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	to := -1
	if dto.To != nil {
		to = *dto.To
	}
	session := getSession(c.Params("id"))
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	session.mu.Lock()
	offer, err := session.game.CreateTradeOffer(dto.From, to, dto.GiveCash, dto.GiveProperties, dto.ReceiveCash, dto.ReceiveProperties)
	session.mu.Unlock()
	if err != nil {
		return rejected(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "offer": offer.Id})
}

func TradeCancel(c *fiber.Ctx) error {
	dto := new(models.TradeActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.CancelTradeOffer(dto.Offer, dto.Player)
	})
}

func TradeAccept(c *fiber.Ctx) error {
	dto := new(models.TradeActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.AcceptTradeOffer(dto.Offer, dto.Player)
	})
}

func Mortgage(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.MortgageProperty(dto.Player, dto.Property)
	})
}

func Unmortgage(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.UnmortgageProperty(dto.Player, dto.Property)
	})
}

func Build(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.BuildHouse(dto.Player, dto.Property)
	})
}

func Sell(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return withGame(c, func(g *engine.Game) error {
		return g.SellHouse(dto.Player, dto.Property)
	})
}

func Bankruptcy(c *fiber.Ctx) error {
	dto := new(models.BankruptcyDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	creditor := -1
	if dto.Creditor != nil {
		creditor = *dto.Creditor
	}
	return withGame(c, func(g *engine.Game) error {
		return g.DeclareBankruptcy(dto.Player, creditor)
	})
}

func EndTurn(c *fiber.Ctx) error {
	return withGame(c, func(g *engine.Game) error {
		return g.EndTurn()
	})
}
