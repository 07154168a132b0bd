/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package results

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mikeb26/marginelo/internal"
)

func newResultsServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != internal.UserAgent {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		switch r.URL.Path {
		case "/week1":
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			_, _ = w.Write([]byte("2024-03-02,A,B,1,0\n2024-03-05,B,C,2,2\n"))
		case "/week2":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<table class="results">
<tr><td>2024-03-03</td><td>C</td><td>A</td><td>0</td><td>3</td><td>C</td></tr>
</table>`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no such results"))
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestLoader_LoadMergesAndSorts(t *testing.T) {
	ts := newResultsServer(t)

	dir := t.TempDir()
	local := filepath.Join(dir, "extra.csv")
	if err := os.WriteFile(local, []byte("2024-03-01,A,C,1,1\n"), 0o644); err != nil {
		t.Fatalf("writing %v: %v", local, err)
	}

	l := NewLoader(ts.Client())
	matches, err := l.Load(context.Background(), ts.URL+"/week1",
		ts.URL+"/week2", local)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var got []string
	for _, m := range matches {
		got = append(got, m.Date.Format("01-02")+" "+m.String())
	}
	want := []string{
		"03-01 A 1-1 C",
		"03-02 A 1-0 B",
		"03-03 C 0-3 A",
		"03-05 B 2-2 C",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Load order:\n got %v\nwant %v", got, want)
	}
	if matches[2].Location != "C" {
		t.Errorf("html location = %q; want C", matches[2].Location)
	}
}

func TestLoader_HTTPError(t *testing.T) {
	ts := newResultsServer(t)

	_, err := NewLoader(ts.Client()).Load(context.Background(), ts.URL+"/missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "no such results") {
		t.Errorf("error %q lacks status/body", err)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(),
		filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFormatDetection(t *testing.T) {
	cases := []struct {
		url, contentType string
		want             Format
	}{
		{"https://x/r.csv", "text/csv", FormatCSV},
		{"https://x/r", "text/html; charset=utf-8", FormatHTML},
		{"https://x/r.html?week=2", "", FormatHTML},
		{"https://x/r.htm", "application/octet-stream", FormatHTML},
		{"https://x/r.txt", "text/plain", FormatCSV},
	}
	for _, c := range cases {
		if got := formatFromResponse(c.url, c.contentType); got != c.want {
			t.Errorf("formatFromResponse(%q, %q) = %v; want %v", c.url,
				c.contentType, got, c.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	for src, want := range map[string]bool{
		"https://x/r.csv": true,
		"http://x/r.html": true,
		"results.csv":     false,
		"./http/r.csv":    false,
	} {
		if got := IsURL(src); got != want {
			t.Errorf("IsURL(%q) = %v; want %v", src, got, want)
		}
	}
}
