package courseRoutes

import (
	controllers "academy/controllers/course"
	"academy/middleware"
	validators "academy/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

// SetupCourseRoutes sets up the learner-facing course, chapter and
// progress routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course catalog changes rarely; cache the listing briefly.
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), cache.New(cache.Config{
		Expiration:   30 * time.Second,
		CacheControl: true,
	}), controllers.GetAllCourses)

	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseParams(), controllers.GetCourseDetails)
	courseGroup.Post("/:courseId/enroll", middleware.JWTMiddleware, validators.CourseParams(), controllers.EnrollInCourse)
	courseGroup.Get("/:courseId/module/:moduleId/chapters", middleware.JWTMiddleware, validators.ModuleParams(), controllers.GetModuleChapters)
	courseGroup.Get("/:courseId/module/:moduleId/chapter/:chapterId", middleware.JWTMiddleware, validators.ChapterParams(), controllers.ViewChapter)

	// Chapter interactions
	courseGroup.Post("/:courseId/chapter/:chapterId/quiz/submit", middleware.JWTMiddleware, validators.ChapterActionParams(), controllers.SubmitQuiz)
	courseGroup.Post("/:courseId/chapter/:chapterId/lab/attempt", middleware.JWTMiddleware, validators.ChapterActionParams(), controllers.SubmitLabAttempt)
	courseGroup.Post("/:courseId/chapter/:chapterId/complete", middleware.JWTMiddleware, validators.ChapterActionParams(), controllers.MarkChapterComplete)

	// Progress
	courseGroup.Get("/:courseId/progress", middleware.JWTMiddleware, validators.CourseParams(), controllers.GetCourseProgress)

	enrollmentGroup := app.Group("/enrollment")
	enrollmentGroup.Get("/list", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
}
