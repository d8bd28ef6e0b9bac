package search

import (
	"path/filepath"
	"testing"

	"journal-portal-api/models"
)

func createIndex(t *testing.T) *ArticleIndex {
	index, err := Open(filepath.Join(t.TempDir(), "articles.bleve"))
	if err != nil {
		t.Fatal("error creating index:", err)
	}
	t.Cleanup(func() {
		if err := index.index.Close(); err != nil {
			t.Log(err)
		}
	})
	return index
}

func TestSearchTitles(t *testing.T) {
	index := createIndex(t)

	articles := []*models.Article{
		{ArticleID: 1, IssueID: 1, Title: "Peer review at scale"},
		{ArticleID: 2, IssueID: 1, Title: "Reinforcement learning for typesetting"},
		{ArticleID: 3, IssueID: 2, Title: "A survey of peer effects"},
		{ArticleID: 4, IssueID: 2, Title: "Monte carlo methods"},
	}
	for _, a := range articles {
		index.Index(a)
	}

	result, err := index.Search("peer", nil, 10, 0)
	if err != nil {
		t.Fatal("search failed:", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 hits for 'peer', got %d (%v)", result.Total, result.IDs)
	}

	issue := 1
	result, err = index.Search("peer", &issue, 10, 0)
	if err != nil {
		t.Fatal("filtered search failed:", err)
	}
	if result.Total != 1 || result.IDs[0] != 1 {
		t.Fatalf("expected only article 1 in issue 1, got %v", result.IDs)
	}
}

func TestSearchMatchAllWithIssueFilter(t *testing.T) {
	index := createIndex(t)

	index.Index(&models.Article{ArticleID: 1, IssueID: 1, Title: "First article"})
	index.Index(&models.Article{ArticleID: 2, IssueID: 2, Title: "Second article"})
	index.Index(&models.Article{ArticleID: 3, IssueID: 2, Title: "Third article"})

	issue := 2
	result, err := index.Search("", &issue, 10, 0)
	if err != nil {
		t.Fatal("search failed:", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 articles in issue 2, got %d", result.Total)
	}
}

func TestSearchReindexReplaces(t *testing.T) {
	index := createIndex(t)

	article := &models.Article{ArticleID: 1, IssueID: 1, Title: "Original title"}
	index.Index(article)

	article.Title = "Corrected title"
	index.Index(article)

	result, err := index.Search("original", nil, 10, 0)
	if err != nil {
		t.Fatal("search failed:", err)
	}
	if result.Total != 0 {
		t.Fatalf("stale title still indexed: %v", result.IDs)
	}

	result, err = index.Search("corrected", nil, 10, 0)
	if err != nil {
		t.Fatal("search failed:", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected replacement title to match, got %d", result.Total)
	}
}

func TestDeleteRemovesFromIndex(t *testing.T) {
	index := createIndex(t)

	index.Index(&models.Article{ArticleID: 1, IssueID: 1, Title: "Retracted findings"})
	index.Index(&models.Article{ArticleID: 2, IssueID: 1, Title: "Surviving findings"})

	index.Delete(1)

	result, err := index.Search("findings", nil, 10, 0)
	if err != nil {
		t.Fatal("search failed:", err)
	}
	if result.Total != 1 || result.IDs[0] != 2 {
		t.Fatalf("expected only article 2 after delete, got %v", result.IDs)
	}
}
