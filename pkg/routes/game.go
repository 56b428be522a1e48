package routes

import (
	"monopoly-engine/app/controllers"

	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")
	route.Post("create", controllers.CreateGame)
	route.Get("/:id/state", controllers.GetState)
	route.Post("/:id/roll", controllers.Roll)
	route.Post("/:id/jail/roll", controllers.JailRoll)
	route.Post("/:id/jail/pay", controllers.JailPay)
	route.Post("/:id/jail/card", controllers.JailCard)
	route.Post("/:id/buy", controllers.Buy)
	route.Post("/:id/decline", controllers.Decline)
	route.Post("/:id/bid", controllers.Bid)
	route.Post("/:id/pass", controllers.Pass)
	route.Post("/:id/trade/create", controllers.TradeCreate)
	route.Post("/:id/trade/cancel", controllers.TradeCancel)
	route.Post("/:id/trade/accept", controllers.TradeAccept)
	route.Post("/:id/mortgage", controllers.Mortgage)
	route.Post("/:id/unmortgage", controllers.Unmortgage)
	route.Post("/:id/build", controllers.Build)
	route.Post("/:id/sell", controllers.Sell)
	route.Post("/:id/bankruptcy", controllers.Bankruptcy)
	route.Post("/:id/end-turn", controllers.EndTurn)
}
