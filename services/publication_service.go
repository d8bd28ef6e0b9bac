package services

import (
	"errors"
	"fmt"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/search"
	"journal-portal-api/utils"

	"gorm.io/gorm"
)

// PromoteRequest carries the admin parameters for projecting an accepted
// submission into a public article.
type PromoteRequest struct {
	SubmissionID int
	IssueID      int
	FirstPage    int
	LastPage     int
	DOI          *string
	ActorRole    models.Role

	// Force re-projects a submission that already has an article, refreshing
	// the article's title, authors and slug from the current submission row.
	Force bool
}

// PromoteToArticle denormalizes an accepted (or pre-publication) submission
// into an Article within an issue. The projection is one-way: later edits to
// the submission do not update the article until it is re-promoted with
// Force. The returned flag reports whether a new article was created.
func PromoteToArticle(req PromoteRequest) (*models.Article, bool, error) {
	if !CanPerform(req.ActorRole, ActionPublishArticle) {
		return nil, false, ErrForbidden
	}

	var article *models.Article
	created := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Where("submission_id = ?", req.SubmissionID).First(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		promotable := submission.Status == models.StatusAccepted ||
			submission.Status == models.StatusPrePublication
		if req.Force {
			// Re-projection is also legal after publication; that is when
			// the denormalized article is most likely stale.
			promotable = promotable ||
				submission.Status == models.StatusPublished ||
				submission.Status == models.StatusUnpublished
		}
		if !promotable {
			return fmt.Errorf("%w: submission must be accepted before promotion, got %s",
				ErrInvalidTransition, submission.Status)
		}

		var issue models.Issue
		if err := tx.Where("issue_id = ?", req.IssueID).First(&issue).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: issue %d", ErrNotFound, req.IssueID)
			}
			return err
		}

		var existing models.Article
		err := tx.Where("submission_id = ?", req.SubmissionID).First(&existing).Error
		if err == nil {
			if !req.Force {
				return fmt.Errorf("%w: submission %d already has article '%s'",
					ErrConflict, req.SubmissionID, existing.Slug)
			}
			refreshed, err := refreshArticle(tx, &existing, &submission, req, time.Now())
			if err != nil {
				return err
			}
			article = refreshed
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		fresh, err := createArticle(tx, &submission, req, time.Now())
		if err != nil {
			return err
		}
		article = fresh
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if article.Published {
		indexArticle(article)
	} else {
		deindexArticle(article.ArticleID)
	}
	return article, created, nil
}

func createArticle(tx *gorm.DB, submission *models.Submission, req PromoteRequest, now time.Time) (*models.Article, error) {
	names := make(models.StringList, 0, len(submission.Authors))
	for _, author := range submission.Authors {
		names = append(names, author.Name)
	}

	slug, err := uniqueSlug(tx, submission.Title)
	if err != nil {
		return nil, err
	}

	article := models.Article{
		SubmissionID: submission.SubmissionID,
		IssueID:      req.IssueID,
		Title:        submission.Title,
		Slug:         slug,
		AuthorNames:  names,
		FirstPage:    req.FirstPage,
		LastPage:     req.LastPage,
		DOI:          req.DOI,
		Published:    true,
		PublishedAt:  now,
		CreateAt:     now,
		UpdateAt:     now,
	}
	if err := tx.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// refreshArticle re-projects the submission's current title, authors and
// pagination onto its existing article. The slug is recomputed; the
// article's own row counts as a collision, so every refresh lands on a new
// slug and old links go stale rather than dangling onto changed content.
func refreshArticle(tx *gorm.DB, article *models.Article, submission *models.Submission, req PromoteRequest, now time.Time) (*models.Article, error) {
	names := make(models.StringList, 0, len(submission.Authors))
	for _, author := range submission.Authors {
		names = append(names, author.Name)
	}

	slug, err := uniqueSlug(tx, submission.Title)
	if err != nil {
		return nil, err
	}

	article.IssueID = req.IssueID
	article.Title = submission.Title
	article.Slug = slug
	article.AuthorNames = names
	article.FirstPage = req.FirstPage
	article.LastPage = req.LastPage
	article.DOI = req.DOI
	article.UpdateAt = now

	if err := tx.Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func uniqueSlug(tx *gorm.DB, title string) (string, error) {
	return nextSlug(title, func(candidate string) (bool, error) {
		var count int64
		if err := tx.Model(&models.Article{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

// nextSlug derives a slug from the title and walks -2, -3, ... suffixes
// until taken reports no collision.
func nextSlug(title string, taken func(string) (bool, error)) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		return "", fmt.Errorf("%w: title yields an empty slug", ErrValidation)
	}

	candidate := base
	for i := 2; ; i++ {
		collides, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !collides {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// publishArticle backs the lifecycle engine's published target. When the
// submission already has an article the visibility flag flips back on;
// otherwise an issue id must accompany the transition so the article can be
// created inside the same transaction. The affected article is returned so
// the caller can feed the search index once the transaction has committed.
func publishArticle(tx *gorm.DB, submission *models.Submission, issueID *int, now time.Time) (*models.Article, error) {
	var existing models.Article
	err := tx.Where("submission_id = ?", submission.SubmissionID).First(&existing).Error
	if err == nil {
		return setArticleVisibility(tx, submission.SubmissionID, true, now)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if issueID == nil {
		return nil, fmt.Errorf("%w: an issue_id is required to publish a submission without an article", ErrValidation)
	}

	var issue models.Issue
	if err := tx.Where("issue_id = ?", *issueID).First(&issue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: issue %d", ErrNotFound, *issueID)
		}
		return nil, err
	}

	return createArticle(tx, submission, PromoteRequest{IssueID: *issueID}, now)
}

// setArticleVisibility flips the published flag and returns the affected
// article, or nil when the submission has none.
func setArticleVisibility(tx *gorm.DB, submissionID int, published bool, now time.Time) (*models.Article, error) {
	var article models.Article
	err := tx.Where("submission_id = ?", submissionID).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	article.Published = published
	article.UpdateAt = now
	if err := tx.Model(&models.Article{}).
		Where("article_id = ?", article.ArticleID).
		Updates(map[string]interface{}{"published": published, "update_at": now}).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// indexArticle feeds the search_title index; index failures are logged by
// the search layer and never fail the write path. Callers invoke it after
// the surrounding transaction commits so a rollback cannot leave a ghost
// document behind.
func indexArticle(article *models.Article) {
	if article == nil || search.Articles == nil {
		return
	}
	search.Articles.Index(article)
}

// deindexArticle drops a retracted article from the search_title index.
func deindexArticle(articleID int) {
	if search.Articles == nil {
		return
	}
	search.Articles.Delete(articleID)
}
