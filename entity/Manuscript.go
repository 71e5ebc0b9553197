package entity

import (
	"time"

	"gorm.io/gorm"
)

type ManuscriptStatus string

const (
	// waiting for an editor to pick an expert
	StatusPendingAssign ManuscriptStatus = "pending_assign"
	// assigned, waiting for the expert's verdict
	StatusPendingReview ManuscriptStatus = "pending_review"
	// expert declined to review; editor may reassign
	StatusRejectedReview ManuscriptStatus = "rejected_review"
	// expert submitted a score; waiting for the editor's decision
	StatusReviewed ManuscriptStatus = "reviewed"
	// terminal: editor turned the manuscript down
	StatusRejected ManuscriptStatus = "rejected"
	// editor accepted; waiting for chief publication
	StatusAccepted ManuscriptStatus = "accepted"
	// terminal
	StatusPublished ManuscriptStatus = "published"
)

type Manuscript struct {
	gorm.Model
	Title      string           `gorm:"not null" json:"title"`
	AuthorName string           `gorm:"not null" json:"authorName"`
	Keywords   string           `gorm:"not null" json:"keywords"`
	FilePath   string           `gorm:"not null" json:"filePath"`
	Status     ManuscriptStatus `gorm:"not null;default:pending_assign" json:"status"`

	AuthorID uint `gorm:"not null" json:"authorId"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`

	ExpertID *uint `json:"expertId"`
	Expert   *User `gorm:"foreignKey:ExpertID" json:"-"`

	// set only when the chief publishes
	SortNum     *int       `json:"sortNum"`
	PublishTime *time.Time `json:"publishTime"`

	// at most one review per manuscript; latest write overwrites
	Review *Review `gorm:"foreignKey:ManuscriptID" json:"review,omitempty"`
}
