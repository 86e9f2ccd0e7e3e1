package aggregator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dyike/BriefingGo/pkg/dataflows"
	"github.com/ternarybob/arbor"
)

type fakeFeed struct {
	results map[string][]dataflows.FeedEntry
	err     map[string]error
}

func (f *fakeFeed) Search(query string, maxResults int) ([]dataflows.FeedEntry, error) {
	if err := f.err[query]; err != nil {
		return nil, err
	}
	entries := f.results[query]
	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}
	return entries, nil
}

type fakeExtractor struct {
	content map[string]string
}

func (f *fakeExtractor) GetArticleContent(url string, maxChars int) (string, error) {
	content, ok := f.content[url]
	if !ok {
		return "", fmt.Errorf("fetch %s: connection refused", url)
	}
	return dataflows.TruncateRunes(content, maxChars), nil
}

func entry(title, link string) dataflows.FeedEntry {
	return dataflows.FeedEntry{Title: title, Link: link, Published: "Mon, 24 Aug 2026 22:10:00 +0900"}
}

func TestCollectDedupsByLinkAcrossQueries(t *testing.T) {
	feed := &fakeFeed{results: map[string][]dataflows.FeedEntry{
		"q1": {entry("기사 하나", "https://example.com/1")},
		"q2": {entry("기사 하나 (재전송)", "https://example.com/1")},
		"q3": {entry("기사 둘", "https://example.com/2")},
	}}
	ex := &fakeExtractor{content: map[string]string{
		"https://example.com/1": "본문 하나",
		"https://example.com/2": "본문 둘",
	}}

	got := New(feed, ex, 1, 800, arbor.NewLogger()).Collect([]string{"q1", "q2", "q3"})

	if len(got.Articles) != 2 {
		t.Fatalf("expected 2 deduped articles, got %d", len(got.Articles))
	}
	// First occurrence wins, discovery order preserved.
	if got.Articles[0].Title != "기사 하나" || got.Articles[1].Title != "기사 둘" {
		t.Errorf("wrong order or dedup choice: %+v", got.Articles)
	}
}

func TestCollectKeepsArticleOnExtractionFailure(t *testing.T) {
	feed := &fakeFeed{results: map[string][]dataflows.FeedEntry{
		"q": {entry("막힌 기사", "https://example.com/blocked")},
	}}
	ex := &fakeExtractor{content: map[string]string{}}

	got := New(feed, ex, 1, 800, arbor.NewLogger()).Collect([]string{"q"})

	if len(got.Articles) != 1 {
		t.Fatalf("article must not be dropped on extraction failure")
	}
	if !got.Articles[0].ExtractionFailed {
		t.Error("extraction failure not marked")
	}
	if !strings.Contains(got.Blob, "(Content scraping failed)") {
		t.Errorf("blob missing failure marker:\n%s", got.Blob)
	}
	if !strings.Contains(got.Blob, "막힌 기사") {
		t.Errorf("blob missing title:\n%s", got.Blob)
	}
}

func TestCollectSkipsFailedQuery(t *testing.T) {
	feed := &fakeFeed{
		results: map[string][]dataflows.FeedEntry{
			"ok": {entry("정상 기사", "https://example.com/ok")},
		},
		err: map[string]error{"broken": fmt.Errorf("HTTP error 503")},
	}
	ex := &fakeExtractor{content: map[string]string{"https://example.com/ok": "본문"}}

	got := New(feed, ex, 1, 800, arbor.NewLogger()).Collect([]string{"broken", "ok"})

	if len(got.Articles) != 1 || got.Articles[0].Link != "https://example.com/ok" {
		t.Fatalf("failed query should be skipped, got %+v", got.Articles)
	}
}

func TestBlobFieldsLabeled(t *testing.T) {
	feed := &fakeFeed{results: map[string][]dataflows.FeedEntry{
		"q": {entry("제목", "https://example.com/a")},
	}}
	ex := &fakeExtractor{content: map[string]string{"https://example.com/a": "본문 텍스트"}}

	got := New(feed, ex, 3, 800, arbor.NewLogger()).Collect([]string{"q"})

	for _, want := range []string{"--- ARTICLE START ---", "Title: 제목", "Link: https://example.com/a", "Date: ", "Content:\n본문 텍스트", "--- ARTICLE END ---"} {
		if !strings.Contains(got.Blob, want) {
			t.Errorf("blob missing %q:\n%s", want, got.Blob)
		}
	}
}
