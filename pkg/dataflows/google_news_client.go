package dataflows

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// RSS 结构体定义
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Items       []Item `xml:"item"`
}

type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	Source      Source `xml:"source"`
	GUID        string `xml:"guid"`
}

type Source struct {
	URL  string `xml:"url,attr"`
	Text string `xml:",chardata"`
}

// GoogleNewsClient searches Google News RSS (Korean edition) and extracts
// article text.
type GoogleNewsClient struct {
	client *resty.Client
	cache  *CacheManager
}

// NewGoogleNewsClient creates a new Google News client
func NewGoogleNewsClient(config *Config) *GoogleNewsClient {
	cacheDir := filepath.Join(config.DataCacheDir, "google_news")
	cache := NewCacheManager(cacheDir, 30*time.Minute, config.CacheEnabled) // 30 minute cache for news

	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	return &GoogleNewsClient{
		client: client,
		cache:  cache,
	}
}

// Search fetches the RSS search feed for a query and returns up to
// maxResults entries in feed order.
func (gnc *GoogleNewsClient) Search(query string, maxResults int) ([]FeedEntry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 1
	}

	cacheKey := fmt.Sprintf("%s_%d", query, maxResults)
	var cached []FeedEntry
	if gnc.cache.Get("google_news_rss", "query", cacheKey, &cached) {
		return cached, nil
	}

	rssURL := buildSearchURL(query)

	var entries []FeedEntry
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := gnc.client.R().Get(rssURL)
		if err != nil {
			return fmt.Errorf("failed to fetch RSS feed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return fmt.Errorf("HTTP error %d when fetching RSS feed", resp.StatusCode())
		}

		var rss RSS
		if err := xml.Unmarshal(resp.Body(), &rss); err != nil {
			return fmt.Errorf("failed to parse RSS XML: %w", err)
		}

		entries = convertItems(rss.Channel.Items, maxResults)
		return nil
	})

	if err != nil {
		return nil, err
	}

	gnc.cache.Set("google_news_rss", "query", cacheKey, entries)

	return entries, nil
}

// buildSearchURL constructs the Korean-edition Google News RSS search URL.
func buildSearchURL(query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", "ko")
	v.Set("gl", "KR")
	v.Set("ceid", "KR:ko")
	return "https://news.google.com/rss/search?" + v.Encode()
}

func convertItems(items []Item, maxResults int) []FeedEntry {
	entries := make([]FeedEntry, 0, maxResults)
	for i, item := range items {
		if i >= maxResults {
			break
		}

		pubTime, err := time.Parse(time.RFC1123Z, item.PubDate)
		if err != nil {
			pubTime, _ = time.Parse(time.RFC1123, item.PubDate)
		}

		source := item.Source.Text
		if source == "" && item.Source.URL != "" {
			if u, err := url.Parse(item.Source.URL); err == nil {
				source = u.Host
			}
		}

		entries = append(entries, FeedEntry{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Source:      source,
			PublishedAt: pubTime,
			Published:   item.PubDate,
		})
	}
	return entries
}

// GetArticleContent fetches an article URL and returns at most maxChars of
// cleaned body text.
func (gnc *GoogleNewsClient) GetArticleContent(articleURL string, maxChars int) (string, error) {
	if strings.TrimSpace(articleURL) == "" {
		return "", fmt.Errorf("article URL cannot be empty")
	}

	cacheKey := fmt.Sprintf("%s_%d", articleURL, maxChars)
	var cached string
	if gnc.cache.Get("article_content", "url", cacheKey, &cached) {
		return cached, nil
	}

	var content string
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := gnc.client.R().Get(articleURL)
		if err != nil {
			return fmt.Errorf("failed to fetch article: %w", err)
		}
		if resp.StatusCode() != 200 {
			return fmt.Errorf("HTTP error %d when fetching article", resp.StatusCode())
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
		if err != nil {
			return fmt.Errorf("failed to parse HTML: %w", err)
		}

		content = extractArticleText(doc, maxChars)
		return nil
	})

	if err != nil {
		return "", err
	}
	if content == "" {
		return "", fmt.Errorf("no readable content at %s", articleURL)
	}

	gnc.cache.Set("article_content", "url", cacheKey, content)

	return content, nil
}

// extractArticleText strips page chrome and returns the visible text bounded
// to maxChars.
func extractArticleText(doc *goquery.Document, maxChars int) string {
	doc.Find("script, style, nav, footer, header").Remove()

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Multi-headline lines come glued with wide runs of spaces.
		for _, chunk := range strings.Split(line, "  ") {
			if chunk = strings.TrimSpace(chunk); chunk != "" {
				lines = append(lines, chunk)
			}
		}
	}

	return TruncateRunes(strings.Join(lines, "\n"), maxChars)
}

// TruncateRunes bounds a string to n runes without splitting a multibyte
// character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// CleanHTMLContent strips markup from an HTML fragment and returns plain
// text. Falls back to a regex strip when the fragment does not parse.
func CleanHTMLContent(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return stripHTMLTags(htmlContent)
	}

	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return stripHTMLTags(htmlContent)
	}

	return text
}

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	spaceRegex   = regexp.MustCompile(`\s+`)
)

func stripHTMLTags(content string) string {
	content = htmlTagRegex.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "&nbsp;", " ")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	content = strings.ReplaceAll(content, "&quot;", "\"")
	content = strings.ReplaceAll(content, "&#39;", "'")

	return strings.TrimSpace(spaceRegex.ReplaceAllString(content, " "))
}
