// Package knowledge turns web pages into markdown files that can be uploaded
// as retrieval sources for an assistant.
package knowledge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
)

// MaxPageSize is the largest response body read from a page.
const MaxPageSize = 5 * 1024 * 1024

// Fetcher downloads pages and stores their markdown rendition in Fs under Dir.
type Fetcher struct {
	HTTPClient *http.Client
	Fs         afero.Fs
	Dir        string
	Logger     *slog.Logger
}

// Page is one fetched source.
type Page struct {
	URL   string
	Title string
	Path  string
	Bytes int
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.Default()
	}
	return f.Logger
}

// Fetch downloads rawURL, converts it to markdown and writes it to the
// filesystem. Non-HTML bodies are stored in a fenced block.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url must start with http:// or https://: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "chatsamples/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}

	page := &Page{URL: resp.Request.URL.String()}
	var content string
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		page.Title, content, err = ToMarkdown(string(body))
		if err != nil {
			return nil, err
		}
	} else {
		content = "```\n" + strings.TrimSpace(string(body)) + "\n```"
	}
	if page.Title != "" {
		content = "# " + page.Title + "\n\n" + content
	}
	content += "\n\nSource: " + page.URL + "\n"

	page.Path = path.Join(f.Dir, FileName(u))
	if err := f.Fs.MkdirAll(f.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", f.Dir, err)
	}
	if err := afero.WriteFile(f.Fs, page.Path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", page.Path, err)
	}
	page.Bytes = len(content)

	f.logger().Info("fetched page", "url", page.URL, "path", page.Path, "bytes", page.Bytes)
	return page, nil
}

// FetchAll fetches urls in order and returns the written paths.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]string, error) {
	paths := make([]string, 0, len(urls))
	for _, u := range urls {
		page, err := f.Fetch(ctx, u)
		if err != nil {
			return nil, err
		}
		paths = append(paths, page.Path)
	}
	return paths, nil
}

// ToMarkdown extracts the page title and converts the body, without scripts,
// styles and navigation, to markdown.
func ToMarkdown(html string) (title, markdown string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	title = strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("script, style, noscript, nav, header, footer").Remove()

	content := doc.Find("main, article").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	converter := md.NewConverter("", true, nil)
	markdown = converter.Convert(content)
	markdown = strings.TrimSpace(markdown)
	for strings.Contains(markdown, "\n\n\n") {
		markdown = strings.ReplaceAll(markdown, "\n\n\n", "\n\n")
	}
	return title, markdown, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// FileName derives a stable markdown file name from the host and path of u.
func FileName(u *url.URL) string {
	name := unsafeChars.ReplaceAllString(u.Host+u.Path, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "page"
	}
	return strings.ToLower(name) + ".md"
}
