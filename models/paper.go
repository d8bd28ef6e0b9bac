package models

import (
	"fmt"
	"time"
)

// PaperStatus is the rendering state of a typeset paper.
type PaperStatus string

const (
	PaperDraft PaperStatus = "draft"
	PaperFinal PaperStatus = "final"
)

// ParsePaperStatus validates a raw paper status string.
func ParsePaperStatus(raw string) (PaperStatus, error) {
	switch PaperStatus(raw) {
	case PaperDraft, PaperFinal:
		return PaperStatus(raw), nil
	}
	return "", fmt.Errorf("invalid paper status '%s'", raw)
}

// Paper binds one submission and one template into a structured content tree
// (title, authors, abstract, ordered body sections, tables, references, end
// matter) ready for typesetting.
type Paper struct {
	PaperID      int         `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	SubmissionID int         `gorm:"column:submission_id;index:idx_papers_by_manuscript" json:"submission_id"`
	TemplateID   int         `gorm:"column:template_id" json:"template_id"`
	Content      JSONConfig  `gorm:"column:content;type:json" json:"content"`
	Status       PaperStatus `gorm:"column:status;type:varchar(16)" json:"status"`
	CreatedBy    int         `gorm:"column:created_by" json:"created_by"`
	CreateAt     time.Time   `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time   `gorm:"column:update_at" json:"update_at"`

	Template *Template `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}

// TableName specifies the table for Paper.
func (Paper) TableName() string {
	return "papers"
}
