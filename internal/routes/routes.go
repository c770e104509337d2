package routes

import (
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/auth"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/handlers"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, issuer *auth.Issuer, portfolioHandler *handlers.PortfolioHandler, authHandler *handlers.AuthHandler) {
	// Liveness route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	app.Post("/login", authHandler.Login)

	// Public read routes
	app.Get("/portfolios", portfolioHandler.ListPortfolios)
	app.Get("/portfolios-preview", portfolioHandler.PreviewPortfolios)
	app.Get("/portfolios/:slug", portfolioHandler.GetPortfolio)
	app.Get("/files/:name", portfolioHandler.DownloadFile)

	// Token-gated mutation routes
	requireToken := middleware.RequireToken(issuer)
	app.Post("/portfolios", requireToken, portfolioHandler.CreatePortfolio)
	app.Put("/portfolios/:id", requireToken, portfolioHandler.UpdatePortfolio)
	app.Delete("/portfolios/:id", requireToken, portfolioHandler.DeletePortfolio)
}
