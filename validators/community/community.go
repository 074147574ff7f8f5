package communityValidator

import (
	"academy/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PostParams validates the :postId path parameter.
func PostParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("postId"))
		postID, err := strconv.Atoi(raw)
		if err != nil || postID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
		}
		c.Locals("postID", postID)
		return c.Next()
	}
}
