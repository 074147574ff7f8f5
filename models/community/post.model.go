package community

import "gorm.io/gorm"

// Post is one entry of the community feed.
type Post struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	PostBy     string `json:"post_by"`
	ProfileURL string `json:"post_by_profile_url"`
	Content    string `json:"post_content" gorm:"type:text"`
	ImageURL   string `json:"image_url"`
	LikeCount  int    `json:"post_like" gorm:"default:0"`
	ReplyCount int    `json:"post_reply" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// Reply belongs to a post, newest first in the feed.
type Reply struct {
	gorm.Model
	PostID    uint   `json:"post_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	ReplyBy   string `json:"reply_by"`
	Content   string `json:"reply_content" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}

// PostLike keeps likes one-per-user-per-post.
type PostLike struct {
	gorm.Model
	PostID    uint `json:"post_id" gorm:"index;not null;uniqueIndex:idx_post_user_like"`
	UserID    uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_post_user_like"`
	IsDeleted bool `gorm:"default:false"`
}
