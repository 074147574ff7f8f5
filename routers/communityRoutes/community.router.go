package communityRoutes

import (
	controllers "academy/controllers/community"
	"academy/middleware"
	validators "academy/validators/community"

	"github.com/gofiber/fiber/v2"
)

func SetupCommunityRoutes(app *fiber.App) {
	communityGroup := app.Group("/community")

	communityGroup.Get("/posts", middleware.JWTMiddleware, controllers.GetPostFeed)
	communityGroup.Post("/post", middleware.JWTMiddleware, controllers.CreatePost)
	communityGroup.Get("/post/:postId/replies", middleware.JWTMiddleware, validators.PostParams(), controllers.GetPostReplies)
	communityGroup.Post("/post/:postId/reply", middleware.JWTMiddleware, validators.PostParams(), controllers.CreateReply)
	communityGroup.Post("/post/:postId/like", middleware.JWTMiddleware, validators.PostParams(), controllers.LikePost)
}
