package controllers

import (
	"academy/database"
	"academy/lesson"
	"academy/middleware"
	courseModels "academy/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ChapterSummary is one row of the module chapter list.
type ChapterSummary struct {
	ID          uint   `json:"id"`
	ChapterNo   int    `json:"chapterno"`
	ChapterName string `json:"chapterName"`
	Type        string `json:"type"`
	Completed   bool   `json:"completed"`
}

// GetModuleChapters lists a module's chapters ordered by chapterno with
// the user's completion badge on each.
func GetModuleChapters(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var chapters []courseModels.Chapter
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("chapter_no asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	// A failed progress read degrades to no badges, not an error page.
	completed, err := progressTracker().CompletedChapters(c.UserContext(), user.ID, uint(courseID))
	if err != nil {
		log.Printf("Error fetching completed chapters for user %d course %d: %v", user.ID, courseID, err)
		completed = nil
	}

	summaries := make([]ChapterSummary, len(chapters))
	for i, ch := range chapters {
		summaries[i] = ChapterSummary{
			ID:          ch.ID,
			ChapterNo:   ch.ChapterNo,
			ChapterName: ch.ChapterName,
			Type:        ch.Type,
			Completed:   lesson.IsChapterComplete(ch.ID, completed),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", fiber.Map{
		"module":   module,
		"chapters": summaries,
	})
}

// ViewChapter resolves a chapter and dispatches it to its content
// handler. Unrenderable content comes back as an explicit fallback view
// with HTTP 200; the screen stays navigable either way.
func ViewChapter(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)
	chapterID := c.Locals("chapterID").(int)
	totalChapters := c.QueryInt("total_chapters", 0)

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND module_id = ? AND course_id = ? AND is_deleted = ?", chapterID, moduleID, courseID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	view := lesson.SelectView(lesson.ChapterType(chapter.Type), chapter.Details)
	if view.Kind == lesson.ViewFallback {
		log.Printf("Chapter %d (type %q) fell back to the missing-content view", chapter.ID, chapter.Type)
	}

	completed, err := progressTracker().CompletedChapters(c.UserContext(), user.ID, uint(courseID))
	if err != nil {
		log.Printf("Error fetching completed chapters for user %d course %d: %v", user.ID, courseID, err)
		completed = nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", fiber.Map{
		"id":             chapter.ID,
		"chapterno":      chapter.ChapterNo,
		"chapterName":    chapter.ChapterName,
		"type":           chapter.Type,
		"view":           view,
		"completed":      lesson.IsChapterComplete(chapter.ID, completed),
		"total_chapters": totalChapters,
	})
}
