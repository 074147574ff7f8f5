package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chapter is the smallest content unit within a module. ChapterNo is
// 1-based and unique within a module. Details carries the type-specific
// payload (text body, video url, quiz questions, lab target) as JSON;
// the lesson package parses it into a typed variant.
type Chapter struct {
	gorm.Model
	CourseID    uint           `json:"course_id" gorm:"index;not null"`
	ModuleID    uint           `json:"module_id" gorm:"index;not null"`
	ChapterNo   int            `json:"chapterno" gorm:"default:1"`
	ChapterName string         `json:"chapterName"`
	Type        string         `json:"type" gorm:"default:'text'"` // text, video, quiz, match, lab
	Details     datatypes.JSON `json:"details"`
	IsDeleted   bool           `gorm:"default:false"`
}
