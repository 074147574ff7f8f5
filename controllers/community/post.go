package communityController

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	communityModels "academy/models/community"
	"academy/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPostFeed returns community posts newest first. Pagination is
// cursor based: pass created_before (RFC3339) to fetch the page
// older than a previously returned post.
func GetPostFeed(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	query := database.Database.Db.Where("is_deleted = ?", false)

	if before := c.Query("created_before"); before != "" {
		cursor, err := time.Parse(time.RFC3339, before)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid created_before cursor!", nil)
		}
		query = query.Where("created_at < ?", cursor)
	}

	var posts []communityModels.Post
	if err := query.Order("created_at desc").Limit(limit).Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	var nextCursor string
	if len(posts) == limit {
		nextCursor = posts[len(posts)-1].CreatedAt.Format(time.RFC3339)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"posts":       posts,
		"next_cursor": nextCursor,
	})
}

// CreatePost creates a community post for the logged in user. An image
// can be attached as multipart field "image".
func CreatePost(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	content := c.FormValue("content")
	if content == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post content is required!", nil)
	}

	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		savedPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		imageURL = savedPath
	}

	post := communityModels.Post{
		UserID:     user.ID,
		PostBy:     user.Name,
		ProfileURL: user.ProfileImage,
		Content:    content,
		ImageURL:   imageURL,
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

// GetPostReplies returns replies for a post, oldest first, cursor
// paginated on created_after.
func GetPostReplies(c *fiber.Ctx) error {
	postID := c.Locals("postID").(int)

	var post communityModels.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	query := database.Database.Db.Where("post_id = ? AND is_deleted = ?", postID, false)
	if after := c.Query("created_after"); after != "" {
		cursor, err := time.Parse(time.RFC3339, after)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid created_after cursor!", nil)
		}
		query = query.Where("created_at > ?", cursor)
	}

	var replies []communityModels.Reply
	if err := query.Order("created_at asc").Limit(limit).Find(&replies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch replies!", nil)
	}

	var nextCursor string
	if len(replies) == limit {
		nextCursor = replies[len(replies)-1].CreatedAt.Format(time.RFC3339)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Replies fetched successfully!", fiber.Map{
		"replies":     replies,
		"next_cursor": nextCursor,
	})
}

// CreateReply adds a reply to a post and bumps its reply counter.
func CreateReply(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	postID := c.Locals("postID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var post communityModels.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	reqData := new(struct {
		Content string `json:"content"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Content == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reply content is required!", nil)
	}

	reply := communityModels.Reply{
		PostID:  post.ID,
		UserID:  user.ID,
		ReplyBy: user.Name,
		Content: reqData.Content,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}
		return tx.Model(&communityModels.Post{}).Where("id = ?", post.ID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply added successfully!", reply)
}

// LikePost records a like. A user can like a post once; the unique
// index backs this up at the database level.
func LikePost(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	postID := c.Locals("postID").(int)

	var post communityModels.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	var existing communityModels.PostLike
	err := database.Database.Db.Where("post_id = ? AND user_id = ?", post.ID, userId).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already liked this post!", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to like post!", nil)
	}

	like := communityModels.PostLike{PostID: post.ID, UserID: userId}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&communityModels.Post{}).Where("id = ?", post.ID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to like post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post liked successfully!", fiber.Map{
		"post_id":    post.ID,
		"like_count": post.LikeCount + 1,
	})
}
