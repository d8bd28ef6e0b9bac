package models

import "time"

// Issue is a dated volume/number grouping of published articles.
type Issue struct {
	IssueID     int        `gorm:"primaryKey;column:issue_id" json:"issue_id"`
	Volume      int        `gorm:"column:volume" json:"volume"`
	Number      int        `gorm:"column:number" json:"number"`
	Title       string     `gorm:"column:title" json:"title"`
	Published   bool       `gorm:"column:published" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	CreateAt    time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time  `gorm:"column:update_at" json:"update_at"`
}

// TableName specifies the table for Issue.
func (Issue) TableName() string {
	return "issues"
}
