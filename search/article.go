// Package search maintains the full-text index over published article
// titles (the search_title index).
package search

import (
	"log"
	"os"
	"strconv"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	"journal-portal-api/models"
)

// Articles is the process-wide article index, set up by Init in main.
var Articles *ArticleIndex

type ArticleIndex struct {
	index bleve.Index
}

// Result is one page of matching article ids.
type Result struct {
	IDs   []int  `json:"ids"`
	Total uint64 `json:"total"`
}

func indexMapping() *mapping.IndexMappingImpl {
	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = en.AnalyzerName

	issueField := bleve.NewTextFieldMapping()
	issueField.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", titleField)
	doc.AddFieldMappingsAt("issue", issueField)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// Open opens the index at path, creating it when absent.
func Open(path string) (*ArticleIndex, error) {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, indexMapping())
	}
	if err != nil {
		return nil, err
	}
	return &ArticleIndex{index: index}, nil
}

// Init wires the package-level index used by the services layer.
func Init() error {
	path := os.Getenv("SEARCH_INDEX_PATH")
	if path == "" {
		path = "./search-index"
	}

	idx, err := Open(path)
	if err != nil {
		return err
	}
	Articles = idx
	return nil
}

func Close() {
	if Articles == nil {
		return
	}
	if err := Articles.index.Close(); err != nil {
		log.Printf("Warning: failed to close search index: %v", err)
	}
}

// Index adds or replaces one article. Failures are logged; the search index
// is a projection and never blocks the write path that feeds it.
func (s *ArticleIndex) Index(article *models.Article) {
	data := map[string]interface{}{
		"title": article.Title,
		"issue": strconv.Itoa(article.IssueID),
	}
	if err := s.index.Index(strconv.Itoa(article.ArticleID), data); err != nil {
		log.Printf("Warning: failed to index article %d: %v", article.ArticleID, err)
	}
}

// Delete removes one article from the index.
func (s *ArticleIndex) Delete(articleID int) {
	if err := s.index.Delete(strconv.Itoa(articleID)); err != nil {
		log.Printf("Warning: failed to delete article %d from index: %v", articleID, err)
	}
}

// Search matches q against article titles, optionally restricted to one
// issue. An empty q matches everything so issue-only filtering works.
func (s *ArticleIndex) Search(q string, issueID *int, limit, offset int) (Result, error) {
	var parts []query.Query

	if q != "" {
		match := bleve.NewMatchQuery(q)
		match.SetField("title")
		parts = append(parts, match)
	} else {
		parts = append(parts, bleve.NewMatchAllQuery())
	}

	if issueID != nil {
		term := bleve.NewTermQuery(strconv.Itoa(*issueID))
		term.SetField("issue")
		parts = append(parts, term)
	}

	request := bleve.NewSearchRequest(bleve.NewConjunctionQuery(parts...))
	if limit > 0 {
		request.Size = limit
	}
	request.From = offset

	results, err := s.index.Search(request)
	if err != nil {
		return Result{}, err
	}

	ids := make([]int, 0, len(results.Hits))
	for _, hit := range results.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			return Result{}, err
		}
		ids = append(ids, id)
	}

	return Result{IDs: ids, Total: results.Total}, nil
}
