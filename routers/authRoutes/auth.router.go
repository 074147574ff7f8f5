package authRoutes

import (
	authControllers "academy/controllers/auth"
	authValidators "academy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authControllers.Login)
	authGroup.Post("/send/otp", authControllers.SendOTP)
	authGroup.Patch("/verify/otp", authControllers.VerifyOTP)
	authGroup.Post("/login/send/otp", authControllers.LoginSendOTP)
	authGroup.Post("/login/verify/otp", authControllers.LoginVerifyOTP)
	authGroup.Post("/forgot/password/send/otp", authControllers.ForgotPasswordSendOTP)
	authGroup.Patch("/reset/password", authControllers.ResetPassword)
}
