package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/request-otp", h.RequestOtp)
	auth.Post("/verify-otp", h.VerifyOtp)
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)

	auth.Patch("/password", h.RequireAuth(), h.ChangePassword)
}
