// Package aggregator turns the selected search queries into a deduplicated,
// size-bounded news context for the prompt.
package aggregator

import (
	"strings"
	"time"

	"github.com/dyike/BriefingGo/pkg/dataflows"
	"github.com/ternarybob/arbor"
)

// Article is one included news item. Content is empty when extraction
// failed; the article is still included with the failure marker.
type Article struct {
	Title            string    `json:"title"`
	Link             string    `json:"link"`
	Source           string    `json:"source"`
	Published        string    `json:"published"`
	PublishedAt      time.Time `json:"published_at"`
	Content          string    `json:"content,omitempty"`
	ExtractionFailed bool      `json:"extraction_failed,omitempty"`
}

// NewsContext is the aggregation result for one run: the article list in
// discovery order and the delimited text blob handed to the composer.
type NewsContext struct {
	Articles []Article
	Blob     string
}

// Aggregator drives feed search and content extraction for a run.
type Aggregator struct {
	feed      dataflows.NewsFeed
	extractor dataflows.ContentExtractor
	perQuery  int
	maxChars  int
	logger    arbor.ILogger
}

func New(feed dataflows.NewsFeed, extractor dataflows.ContentExtractor, perQuery, maxChars int, logger arbor.ILogger) *Aggregator {
	if perQuery <= 0 {
		perQuery = 1
	}
	if maxChars <= 0 {
		maxChars = 800
	}
	return &Aggregator{
		feed:      feed,
		extractor: extractor,
		perQuery:  perQuery,
		maxChars:  maxChars,
		logger:    logger,
	}
}

// Collect runs every query in order, takes the top entries per query,
// dedups by link across the whole run (first occurrence wins) and extracts
// bounded article text. Query and extraction failures never abort the run.
func (a *Aggregator) Collect(queries []string) NewsContext {
	seen := make(map[string]struct{})
	var articles []Article

	for _, query := range queries {
		entries, err := a.feed.Search(query, a.perQuery)
		if err != nil {
			a.logger.Warn().Err(err).Str("query", query).Msg("news search failed, skipping query")
			continue
		}

		for _, entry := range entries {
			if _, ok := seen[entry.Link]; ok {
				continue
			}
			seen[entry.Link] = struct{}{}

			a.logger.Info().Str("title", entry.Title).Msg("processing article")

			article := Article{
				Title:       entry.Title,
				Link:        entry.Link,
				Source:      entry.Source,
				Published:   entry.Published,
				PublishedAt: entry.PublishedAt,
			}

			content, err := a.extractor.GetArticleContent(entry.Link, a.maxChars)
			if err != nil {
				a.logger.Warn().Err(err).Str("link", entry.Link).Msg("content extraction failed, keeping title only")
				article.ExtractionFailed = true
			} else {
				article.Content = content
			}

			articles = append(articles, article)
		}
	}

	return NewsContext{
		Articles: articles,
		Blob:     buildBlob(articles),
	}
}

// buildBlob concatenates articles in discovery order with explicit
// per-article delimiters and labeled fields.
func buildBlob(articles []Article) string {
	var b strings.Builder

	for _, article := range articles {
		if article.ExtractionFailed {
			b.WriteString("\nTitle: " + article.Title)
			b.WriteString("\nLink: " + article.Link)
			b.WriteString("\n(Content scraping failed)\n")
			continue
		}

		b.WriteString("\n\n--- ARTICLE START ---\n")
		b.WriteString("Title: " + article.Title + "\n")
		b.WriteString("Link: " + article.Link + "\n")
		b.WriteString("Date: " + article.Published + "\n")
		b.WriteString("Content:\n" + article.Content + "\n")
		b.WriteString("--- ARTICLE END ---\n")
	}

	return b.String()
}
