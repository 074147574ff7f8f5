package controllers

import (
	"academy/database"
	"academy/lesson"
	"academy/middleware"
	courseModels "academy/models/course"
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades a full quiz submission against the chapter's
// questions, stores the attempt and marks the chapter complete.
func SubmitQuiz(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Chapter is not a playable quiz!", nil)
	}
	quiz, ok := content.(lesson.QuizContent)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Chapter is not a quiz!", nil)
	}

	reqData := new(struct {
		// question index (as string key) -> selected option index
		Answers map[string]int `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if len(reqData.Answers) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer at least one question!", nil)
	}

	answers := make(map[int]int, len(reqData.Answers))
	for k, v := range reqData.Answers {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 || idx >= len(quiz.Questions) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
		}
		answers[idx] = v
	}

	correct, percent := lesson.Grade(quiz.Questions, answers)
	results := lesson.Summarize(quiz.Questions, answers)

	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND chapter_id = ? AND is_deleted = ?", user.ID, chapterID, false).Count(&attemptCount)

	answersJSON, _ := json.Marshal(reqData.Answers)
	attempt := courseModels.QuizAttempt{
		UserID:        user.ID,
		ChapterID:     uint(chapterID),
		Answers:       answersJSON,
		Score:         correct,
		MaxScore:      len(quiz.Questions),
		Percentage:    percent,
		AttemptNumber: int(attemptCount) + 1,
	}
	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// Finishing the quiz completes the chapter regardless of score.
	if err := progressTracker().MarkChapterComplete(c.UserContext(), user.ID, uint(courseID), uint(chapterID)); err != nil {
		log.Printf("Error marking chapter %d complete for user %d: %v", chapterID, user.ID, err)
	} else {
		updateEnrollmentProgress(user.ID, uint(courseID))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt":    attempt,
		"score":      correct,
		"max_score":  len(quiz.Questions),
		"percentage": percent,
		"results":    results,
	})
}
