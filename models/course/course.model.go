package course

import "gorm.io/gorm"

// Course represents a learning course authored outside the app.
// Read-only from the learner's perspective.
type Course struct {
	gorm.Model
	CourseName   string `json:"courseName"`
	CourseDesc   string `json:"courseDesc"`
	TutorName    string `json:"tutorName"`
	ThumbnailURL string `json:"thumbnailUrl"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
