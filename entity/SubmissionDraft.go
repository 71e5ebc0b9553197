package entity

import (
	"gorm.io/gorm"
)

// SubmissionDraft is the author's in-progress submission, one per author,
// filled step by step and validated as a whole before it becomes a
// Manuscript.
type SubmissionDraft struct {
	gorm.Model
	AuthorID   uint   `gorm:"uniqueIndex;not null" json:"authorId"`
	Title      string `json:"title"`
	AuthorName string `json:"authorName"`
	Keywords   string `json:"keywords"`
	FilePath   string `json:"filePath"`
}
