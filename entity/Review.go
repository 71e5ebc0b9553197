package entity

import (
	"gorm.io/gorm"
)

// Review carries either a score+opinion (reviewed) or a reject reason
// (expert declined), never both.
type Review struct {
	gorm.Model
	ManuscriptID uint   `gorm:"uniqueIndex;not null" json:"manuscriptId"`
	Score        int    `gorm:"default:0" json:"score"`
	Opinion      string `gorm:"size:200" json:"opinion"`
	RejectReason string `gorm:"size:200" json:"rejectReason"`
}
