package types

import (
	"time"

	"gorm.io/datatypes"
)

// LearnerProfile is created once per generation request and owns the paths
// generated for it. Deleting a profile cascades to its paths.
type LearnerProfile struct {
	ID               uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string                      `gorm:"column:name;not null" json:"name"`
	OrgansOfInterest datatypes.JSONSlice[string] `gorm:"column:organs_of_interest" json:"organs_of_interest"`
	Level            string                      `gorm:"column:level;size:20;default:beginner" json:"level"`
	CompletedModules datatypes.JSONSlice[string] `gorm:"column:completed_modules" json:"completed_modules"`
	CreatedAt        time.Time                   `gorm:"not null" json:"created_at"`

	Paths []LearningPath `gorm:"foreignKey:LearnerID;constraint:OnDelete:CASCADE" json:"paths,omitempty"`
}

func (LearnerProfile) TableName() string { return "syllabus_learner_profiles" }

// LearningPath owns an ordered sequence of modules. PathID is the short
// public token; ID is the internal row key modules reference.
type LearningPath struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PathID     string    `gorm:"column:path_id;size:32;uniqueIndex;not null" json:"path_id"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	LearnerID  uint      `gorm:"column:learner_id;not null;index" json:"learner_id"`
	TotalHours float64   `gorm:"column:total_hours;default:0" json:"total_hours"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`

	Modules []LearningModule `gorm:"foreignKey:PathID;references:ID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

func (LearningPath) TableName() string { return "syllabus_learning_paths" }

type LearningModule struct {
	ID             uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	PathID         uint                        `gorm:"column:path_id;not null;index" json:"path_id"`
	ModuleID       string                      `gorm:"column:module_id;size:100;not null" json:"module_id"`
	Title          string                      `gorm:"column:title;not null" json:"title"`
	Organ          string                      `gorm:"column:organ;size:50;not null" json:"organ"`
	Difficulty     string                      `gorm:"column:difficulty;size:20;default:beginner" json:"difficulty"`
	Readings       datatypes.JSONSlice[string] `gorm:"column:readings" json:"readings"`
	Questions      datatypes.JSONSlice[string] `gorm:"column:questions" json:"questions"`
	EstimatedHours float64                     `gorm:"column:estimated_hours;default:2" json:"estimated_hours"`
	Seq            int                         `gorm:"column:seq;default:0" json:"seq"`
}

func (LearningModule) TableName() string { return "syllabus_learning_modules" }
