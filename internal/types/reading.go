package types

import (
	"time"

	"gorm.io/datatypes"
)

// Curriculum is a themed multi-week reading plan.
type Curriculum struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	Theme         string    `gorm:"column:theme;size:100;default:general" json:"theme"`
	OrganFocus    string    `gorm:"column:organ_focus;size:50" json:"organ_focus,omitempty"`
	DurationWeeks int       `gorm:"column:duration_weeks;not null" json:"duration_weeks"`
	Description   string    `gorm:"column:description;default:''" json:"description"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`

	Sessions []ReadingSession `gorm:"foreignKey:CurriculumID;constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
}

func (Curriculum) TableName() string { return "reading_curricula" }

type ReadingSession struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CurriculumID    uint       `gorm:"column:curriculum_id;not null;index" json:"curriculum_id"`
	Week            int        `gorm:"column:week;not null" json:"week"`
	Title           string     `gorm:"column:title;not null" json:"title"`
	DurationMinutes int        `gorm:"column:duration_minutes;default:90" json:"duration_minutes"`
	Completed       bool       `gorm:"column:completed;default:false" json:"completed"`
	DateScheduled   *time.Time `gorm:"column:date_scheduled" json:"date_scheduled,omitempty"`

	Entries             []Entry              `gorm:"many2many:reading_session_entries;joinForeignKey:SessionID;joinReferences:EntryID" json:"entries,omitempty"`
	DiscussionQuestions []DiscussionQuestion `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"discussion_questions,omitempty"`
	Guide               *Guide               `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"guide,omitempty"`
}

func (ReadingSession) TableName() string { return "reading_sessions" }

// Entry is one tagged source in the reading catalog. OrganTags holds
// taxonomy slugs (or slug prefixes) the source relates to.
type Entry struct {
	ID         uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string                      `gorm:"column:title;not null" json:"title"`
	Author     string                      `gorm:"column:author;not null" json:"author"`
	SourceType string                      `gorm:"column:source_type;size:50;default:book" json:"source_type"`
	URL        string                      `gorm:"column:url" json:"url,omitempty"`
	Pages      string                      `gorm:"column:pages;size:100" json:"pages,omitempty"`
	Difficulty string                      `gorm:"column:difficulty;size:20;default:intermediate" json:"difficulty"`
	OrganTags  datatypes.JSONSlice[string] `gorm:"column:organ_tags" json:"organ_tags"`
}

func (Entry) TableName() string { return "reading_entries" }

type SessionEntry struct {
	SessionID uint `gorm:"column:session_id;primaryKey" json:"session_id"`
	EntryID   uint `gorm:"column:entry_id;primaryKey" json:"entry_id"`
}

func (SessionEntry) TableName() string { return "reading_session_entries" }

type DiscussionQuestion struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID    uint   `gorm:"column:session_id;not null;index" json:"session_id"`
	QuestionText string `gorm:"column:question_text;not null" json:"question_text"`
	Category     string `gorm:"column:category;size:50;default:deep_dive" json:"category"`
}

func (DiscussionQuestion) TableName() string { return "reading_discussion_questions" }

type Guide struct {
	ID                uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID         uint                        `gorm:"column:session_id;not null;index" json:"session_id"`
	OpeningQuestions  datatypes.JSONSlice[string] `gorm:"column:opening_questions" json:"opening_questions"`
	DeepDiveQuestions datatypes.JSONSlice[string] `gorm:"column:deep_dive_questions" json:"deep_dive_questions"`
	Activities        datatypes.JSONSlice[string] `gorm:"column:activities" json:"activities"`
	ClosingReflection string                      `gorm:"column:closing_reflection;default:''" json:"closing_reflection"`
}

func (Guide) TableName() string { return "reading_guides" }
