package types

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type            string    `gorm:"column:type;size:50;not null" json:"type"`
	Title           string    `gorm:"column:title;not null" json:"title"`
	Date            time.Time `gorm:"column:date;not null" json:"date"`
	Description     string    `gorm:"column:description;default:''" json:"description"`
	Format          string    `gorm:"column:format;size:50;default:virtual" json:"format"`
	Capacity        *int      `gorm:"column:capacity" json:"capacity,omitempty"`
	RegistrationURL string    `gorm:"column:registration_url" json:"registration_url,omitempty"`
	Status          string    `gorm:"column:status;size:30;default:planned" json:"status"`
}

func (Event) TableName() string { return "community_events" }

type Contributor struct {
	ID                    uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	GithubHandle          string                      `gorm:"column:github_handle;size:100;uniqueIndex;not null" json:"github_handle"`
	Name                  string                      `gorm:"column:name;not null" json:"name"`
	OrgansActive          datatypes.JSONSlice[string] `gorm:"column:organs_active" json:"organs_active"`
	FirstContributionDate time.Time                   `gorm:"column:first_contribution_date" json:"first_contribution_date"`

	Contributions []Contribution `gorm:"foreignKey:ContributorID;constraint:OnDelete:CASCADE" json:"contributions,omitempty"`
}

func (Contributor) TableName() string { return "community_contributors" }

type Contribution struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ContributorID uint      `gorm:"column:contributor_id;not null;index" json:"contributor_id"`
	Repo          string    `gorm:"column:repo;size:200;not null" json:"repo"`
	Type          string    `gorm:"column:type;size:50;not null" json:"type"`
	URL           string    `gorm:"column:url" json:"url,omitempty"`
	Date          time.Time `gorm:"column:date" json:"date"`
	Description   string    `gorm:"column:description;default:''" json:"description"`
}

func (Contribution) TableName() string { return "community_contributions" }
