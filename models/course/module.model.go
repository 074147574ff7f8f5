package course

import "gorm.io/gorm"

// Module represents an ordered group of chapters within a course.
// ModuleNo is 1-based and unique within a course.
type Module struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	ModuleNo   int    `json:"moduleno" gorm:"default:1"`
	ModuleName string `json:"moduleName"`
	Type       string `json:"type"` // informational tag only
	IsDeleted  bool   `gorm:"default:false"`
}
