package models

import "time"

// Article is the public projection of an accepted submission assigned to an
// issue. It is denormalized on promotion and does not track later edits to
// the submission.
type Article struct {
	ArticleID    int        `gorm:"primaryKey;column:article_id" json:"article_id"`
	SubmissionID int        `gorm:"column:submission_id;uniqueIndex" json:"submission_id"`
	IssueID      int        `gorm:"column:issue_id;index:idx_articles_by_issue" json:"issue_id"`
	Title        string     `gorm:"column:title" json:"title"`
	Slug         string     `gorm:"column:slug;uniqueIndex:idx_articles_by_slug" json:"slug"`
	AuthorNames  StringList `gorm:"column:author_names;type:json" json:"author_names"`
	FirstPage    int        `gorm:"column:first_page" json:"first_page"`
	LastPage     int        `gorm:"column:last_page" json:"last_page"`
	DOI          *string    `gorm:"column:doi" json:"doi,omitempty"`
	Published    bool       `gorm:"column:published" json:"published"`
	PublishedAt  time.Time  `gorm:"column:published_at" json:"published_at"`
	ViewCount    int64      `gorm:"column:view_count" json:"view_count"`
	Downloads    int64      `gorm:"column:downloads" json:"downloads"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`

	Issue *Issue `gorm:"foreignKey:IssueID" json:"issue,omitempty"`
}

// TableName specifies the table for Article.
func (Article) TableName() string {
	return "articles"
}
