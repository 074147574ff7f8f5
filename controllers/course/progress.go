package controllers

import (
	"academy/database"
	"academy/lesson"
	"academy/middleware"
	courseModels "academy/models/course"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
)

// MarkChapterComplete records a chapter in the user's per-course
// completion set. Text and video chapters complete through this
// endpoint; quiz and lab chapters also complete through their engines.
func MarkChapterComplete(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", chapterID, courseID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if err := progressTracker().MarkChapterComplete(c.UserContext(), user.ID, uint(courseID), uint(chapterID)); err != nil {
		log.Printf("Error marking chapter %d complete for user %d: %v", chapterID, user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark chapter as completed!", nil)
	}

	updateEnrollmentProgress(user.ID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter marked as completed!", nil)
}

// GetCourseProgress returns the user's completed chapter ids, the
// per-module breakdown and the overall completion percentage.
func GetCourseProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	completed, err := progressTracker().CompletedChapters(c.UserContext(), user.ID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("module_no asc").Find(&modules)

	type ModuleProgress struct {
		ModuleID          uint   `json:"module_id"`
		ModuleName        string `json:"module_name"`
		TotalChapters     int    `json:"total_chapters"`
		CompletedChapters int    `json:"completed_chapters"`
		Progress          int    `json:"progress"`
	}

	totalChapters := 0
	moduleProgress := make([]ModuleProgress, len(modules))
	for i, mod := range modules {
		var chapterIDs []uint
		database.Database.Db.Model(&courseModels.Chapter{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Pluck("id", &chapterIDs)

		completedInModule := 0
		for _, id := range chapterIDs {
			if lesson.IsChapterComplete(id, completed) {
				completedInModule++
			}
		}

		moduleProgress[i] = ModuleProgress{
			ModuleID:          mod.ID,
			ModuleName:        mod.ModuleName,
			TotalChapters:     len(chapterIDs),
			CompletedChapters: completedInModule,
			Progress:          modulePercent(completedInModule, len(chapterIDs)),
		}
		totalChapters += len(chapterIDs)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completed_ids":         completed,
		"module_progress":       moduleProgress,
		"total_chapters":        totalChapters,
		"completion_percentage": lesson.ComputeCompletionPercentage(completed, totalChapters),
	})
}

func modulePercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// updateEnrollmentProgress refreshes the enrollment row after a chapter
// completion. Users browsing without an enrollment simply have no row
// to update.
func updateEnrollmentProgress(userID, courseID uint) {
	var totalChapters int64
	var completedChapters int64

	database.Database.Db.Model(&courseModels.Chapter{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalChapters)
	database.Database.Db.Model(&courseModels.ChapterCompletion{}).Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Count(&completedChapters)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	enrollment.CompletedChapters = int(completedChapters)
	enrollment.TotalChapters = int(totalChapters)
	enrollment.Progress = modulePercent(int(completedChapters), int(totalChapters))

	if enrollment.Progress >= 100 {
		enrollment.Status = "COMPLETED"
		if enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else if enrollment.Progress > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	database.Database.Db.Save(&enrollment)
}
