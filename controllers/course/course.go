package controllers

import (
	"academy/database"
	"academy/lesson"
	"academy/middleware"
	"academy/models"
	courseModels "academy/models/course"

	"github.com/gofiber/fiber/v2"
)

// currentUser resolves the authenticated user set by the JWT middleware.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// progressTracker wires the lesson tracker to the live database.
func progressTracker() *lesson.Tracker {
	return lesson.NewTracker(database.NewProgressStore(database.Database.Db))
}

func GetAllCourses(c *fiber.Ctx) error {
	_, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated pagination request
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// ModuleSummary is one row of the course detail screen: the module plus
// its chapter count.
type ModuleSummary struct {
	courseModels.Module
	TotalChapters int64 `json:"totalChapters"`
}

// GetCourseDetails returns a course with its modules ordered by
// moduleno, the user's completed chapter ids and the course completion
// percentage.
func GetCourseDetails(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("module_no asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	totalChapters := 0
	summaries := make([]ModuleSummary, len(modules))
	for i, mod := range modules {
		var count int64
		database.Database.Db.Model(&courseModels.Chapter{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Count(&count)
		summaries[i] = ModuleSummary{Module: mod, TotalChapters: count}
		totalChapters += int(count)
	}

	// Progress fetch failure must not blank the course section; the
	// completion circle just shows zero.
	completed, err := progressTracker().CompletedChapters(c.UserContext(), user.ID, course.ID)
	if err != nil {
		completed = nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":                course,
		"modules":               summaries,
		"total_chapters":        totalChapters,
		"completed_chapters":    completed,
		"completion_percentage": lesson.ComputeCompletionPercentage(completed, totalChapters),
	})
}
