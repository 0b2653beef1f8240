package types

import (
	"time"

	"gorm.io/datatypes"
)

// SalonSession is one recorded discussion session in the salon archive.
type SalonSession struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string                      `gorm:"column:title;not null" json:"title"`
	Date         time.Time                   `gorm:"column:date;not null" json:"date"`
	Format       string                      `gorm:"column:format;size:50;default:deep_dive" json:"format"`
	Facilitator  string                      `gorm:"column:facilitator" json:"facilitator,omitempty"`
	RecordingURL string                      `gorm:"column:recording_url" json:"recording_url,omitempty"`
	Notes        string                      `gorm:"column:notes;default:''" json:"notes"`
	OrganTags    datatypes.JSONSlice[string] `gorm:"column:organ_tags" json:"organ_tags"`
	CreatedAt    time.Time                   `gorm:"not null" json:"created_at"`

	Participants []Participant `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Segments     []Segment     `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"segments,omitempty"`
}

func (SalonSession) TableName() string { return "salon_sessions" }

type Participant struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID    uint   `gorm:"column:session_id;not null;index" json:"session_id"`
	Name         string `gorm:"column:name;not null" json:"name"`
	Role         string `gorm:"column:role;size:50;default:participant" json:"role"`
	ConsentGiven bool   `gorm:"column:consent_given;default:false" json:"consent_given"`
}

func (Participant) TableName() string { return "salon_participants" }

// Segment is one transcribed span of a salon session recording.
type Segment struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID    uint    `gorm:"column:session_id;not null;index" json:"session_id"`
	Speaker      string  `gorm:"column:speaker;not null" json:"speaker"`
	Text         string  `gorm:"column:text;not null" json:"text"`
	StartSeconds float64 `gorm:"column:start_seconds;not null" json:"start_seconds"`
	EndSeconds   float64 `gorm:"column:end_seconds;not null" json:"end_seconds"`
	Confidence   float64 `gorm:"column:confidence;default:0" json:"confidence"`
}

func (Segment) TableName() string { return "salon_segments" }

// TaxonomyNode is a labeled topic. Roots (nil ParentID) are the eight
// organs; children are sub-topics. Slugs are globally unique.
type TaxonomyNode struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"column:slug;size:100;uniqueIndex;not null" json:"slug"`
	Label       string `gorm:"column:label;not null" json:"label"`
	ParentID    *uint  `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	Description string `gorm:"column:description;default:''" json:"description"`
	OrganID     *uint  `gorm:"column:organ_id" json:"organ_id,omitempty"`

	Children []TaxonomyNode `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
}

func (TaxonomyNode) TableName() string { return "taxonomy_nodes" }
