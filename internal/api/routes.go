package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.Session)

	contents := api.Group("/contents", handler.AuthRequired)
	contents.Get("", handler.GetContents)
	contents.Post("", handler.AdminOnly, handler.CreateContent)
	contents.Put("/:id", handler.AdminOnly, handler.UpdateContent)

	members := api.Group("/members", handler.AuthRequired)
	members.Get("", handler.GetMembers)
	members.Post("", handler.AdminOnly, handler.CreateMember)

	trainees := api.Group("/trainees", handler.AuthRequired)
	trainees.Get("", handler.GetTrainees)
	trainees.Put("/:id", handler.AdminOnly, handler.UpdateTrainee)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
