package controllers

import (
	"academy/database"
	"academy/lesson"
	"academy/middleware"
	courseModels "academy/models/course"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitLabAttempt hit-tests one tap against a lab chapter's answer
// area. Every tap is recorded; a hit completes the chapter and returns
// the success message with the attempts taken.
func SubmitLabAttempt(c *fiber.Ctx) error {
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

	content, err := lesson.ParseContent(lesson.ChapterType(chapter.Type), chapter.Details)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Chapter is not a playable lab!", nil)
	}
	lab, ok := content.(lesson.LabContent)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Chapter is not a lab!", nil)
	}

	var tap lesson.TapInput
	if err := c.BodyParser(&tap); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	native := lesson.ProjectToNative(tap)
	hit, distance := lesson.HitTest(lab, tap)

	var attemptCount int64
	database.Database.Db.Model(&courseModels.LabAttempt{}).Where("user_id = ? AND chapter_id = ? AND is_deleted = ?", user.ID, chapterID, false).Count(&attemptCount)
	attemptNumber := int(attemptCount) + 1

	attempt := courseModels.LabAttempt{
		UserID:        user.ID,
		ChapterID:     uint(chapterID),
		TapX:          native.X,
		TapY:          native.Y,
		Distance:      distance,
		IsHit:         hit,
		AttemptNumber: attemptNumber,
	}
	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	response := fiber.Map{
		"hit":      hit,
		"attempts": attemptNumber,
		"feedback": lesson.Feedback{
			X:       tap.X,
			Y:       tap.Y,
			Scale:   1.2,
			Opacity: 1.0,
			Dwell:   lesson.FeedbackDwell,
		},
	}

	if hit {
		if err := progressTracker().MarkChapterComplete(c.UserContext(), user.ID, uint(courseID), uint(chapterID)); err != nil {
			log.Printf("Error marking chapter %d complete for user %d: %v", chapterID, user.ID, err)
		} else {
			updateEnrollmentProgress(user.ID, uint(courseID))
		}

		noun := "attempts"
		if attemptNumber == 1 {
			noun = "attempt"
		}
		response["message"] = fmt.Sprintf("Congratulations! You found the correct spot in %d %s!", attemptNumber, noun)
		if lab.VideoURL != "" {
			response["explainer_video_url"] = lab.VideoURL
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt recorded!", response)
}
