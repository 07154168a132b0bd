/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package results

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeb26/marginelo/internal"
	"golang.org/x/sync/errgroup"
)

// Format identifies how a results source is encoded.
type Format int

const (
	FormatCSV Format = iota
	FormatHTML
)

func (f Format) String() string {
	if f == FormatCSV {
		return "csv"
	} else if f == FormatHTML {
		return "html"
	} else {
		return "?"
	}
}

// Loader reads matches from local files and remote URLs.
type Loader struct {
	httpClient *http.Client
}

// NewLoader returns a Loader fetching remote sources with httpClient. A nil
// client means http.DefaultClient.
func NewLoader(httpClient *http.Client) *Loader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Loader{httpClient: httpClient}
}

// Load reads every source concurrently and returns all matches sorted by
// date. Sources beginning with http:// or https:// are fetched; anything
// else is read as a local file. Matches sharing a date keep the order in
// which their sources were given.
func (l *Loader) Load(ctx context.Context, sources ...string) ([]Match, error) {
	perSource := make([][]Match, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			var err error
			if IsURL(src) {
				perSource[i], err = l.fetch(ctx, src)
			} else {
				perSource[i], err = loadFile(src)
			}
			if err != nil {
				return fmt.Errorf("loading %v: %w", src, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var matches []Match
	for _, ms := range perSource {
		matches = append(matches, ms...)
	}
	SortByDate(matches)

	return matches, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]Match, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch results (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "text/csv, text/html;q=0.9, */*;q=0.1")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch results (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unable to fetch results (http): %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parse(resp.Body, formatFromResponse(url, resp.Header.Get("Content-Type")))
}

func loadFile(path string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f, formatFromName(path))
}

func parse(r io.Reader, format Format) ([]Match, error) {
	if format == FormatHTML {
		return ParseHTML(r)
	}
	return ParseCSV(r)
}

// IsURL reports whether src names a remote source rather than a local file.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://")
}

func formatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatCSV
	}
}

// formatFromResponse prefers the declared content type and falls back to the
// URL's extension.
func formatFromResponse(url string, contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		switch mediaType {
		case "text/html", "application/xhtml+xml":
			return FormatHTML
		case "text/csv", "application/csv":
			return FormatCSV
		}
	}
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return formatFromName(url)
}
