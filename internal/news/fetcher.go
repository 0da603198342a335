// Package news pipeline ingest berita: tarik RSS per sumber, normalisasi
// ke bentuk Feed bergaya chat, beri ID berurutan melanjutkan penomoran
// yang sudah ada. Kegagalan satu sumber tidak menggagalkan sumber lain.
package news

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

const (
	maxItemsPerSource = 5
	maxAnswerLines    = 3
	takeawayMaxLen    = 160
)

// SourceResult ringkasan per sumber dalam satu run ingest.
type SourceResult struct {
	Source  string `json:"source"`
	Fetched int    `json:"fetched"`
	Error   string `json:"error,omitempty"`
}

type Fetcher struct {
	sources []Source
	// client memegang timeout per sumber
	client *http.Client
}

func NewFetcher(sources []Source, timeout time.Duration) *Fetcher {
	return &Fetcher{
		sources: sources,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch menarik semua sumber paralel lalu menggabungkan hasilnya. ID
// diberikan setelah semua sumber selesai supaya urutannya rapat dan unik
// dalam satu batch. Semua sumber gagal bukan error: hasil kosong plus
// ringkasan kegagalannya.
func (f *Fetcher) Fetch(ctx context.Context, startID uint) ([]models.Feed, []SourceResult) {
	type outcome struct {
		items []*gofeed.Item
		err   error
	}

	outcomes := make([]outcome, len(f.sources))
	var wg sync.WaitGroup
	for i, src := range f.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			items, err := f.fetchSource(ctx, src)
			outcomes[i] = outcome{items: items, err: err}
		}(i, src)
	}
	wg.Wait()

	var (
		feeds   []models.Feed
		results []SourceResult
		nextID  = startID
		seen    = map[string]bool{} // dedup lintas sumber per batch
	)

	// iterasi mengikuti urutan konfigurasi supaya penomoran deterministik
	for i, src := range f.sources {
		oc := outcomes[i]
		if oc.err != nil {
			logrus.WithError(oc.err).WithField("source", src.Name).Warn("sumber berita gagal")
			results = append(results, SourceResult{Source: src.Name, Error: oc.err.Error()})
			continue
		}

		accepted := 0
		for _, item := range oc.items {
			if accepted >= maxItemsPerSource {
				break
			}
			key := dedupKey(item)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			feed := normalize(item, src)
			feed.ID = nextID
			nextID++
			feeds = append(feeds, feed)
			accepted++
		}
		results = append(results, SourceResult{Source: src.Name, Fetched: accepted})
	}

	return feeds, results
}

// fetchSource satu kali tarik + parse, dengan satu retry backoff untuk
// error transien (jaringan / 5xx). Timeout per sumber dipegang http.Client.
func (f *Fetcher) fetchSource(ctx context.Context, src Source) ([]*gofeed.Item, error) {
	var parsed *gofeed.Feed

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", "portal-konten-bot/1.0")

		resp, err := f.client.Do(req)
		if err != nil {
			return err // transien, boleh retry
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}

		parsed, err = gofeed.NewParser().Parse(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("gagal parse feed: %w", err))
		}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 1), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}

	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("respon kosong")
	}
	return parsed.Items, nil
}

func dedupKey(item *gofeed.Item) string {
	if item.Link != "" {
		return item.Link
	}
	return strings.ToLower(strings.TrimSpace(item.Title))
}

// normalize membentuk satu Feed dari item RSS: judul jadi baris tanya,
// kalimat deskripsi jadi baris jawab, kalimat pertama jadi takeaway.
func normalize(item *gofeed.Item, src Source) models.Feed {
	title := strings.TrimSpace(item.Title)
	body := stripHTML(item.Description)
	if body == "" {
		body = stripHTML(item.Content)
	}

	lines := []models.FeedLine{{Role: "q", Text: title}}
	sentences := splitSentences(body)
	for i, s := range sentences {
		if i >= maxAnswerLines {
			break
		}
		lines = append(lines, models.FeedLine{Role: "a", Text: s})
	}
	if len(lines) == 1 {
		lines = append(lines, models.FeedLine{Role: "a", Text: "Baca selengkapnya di sumber aslinya."})
	}

	takeaway := title
	if len(sentences) > 0 {
		takeaway = sentences[0]
	}
	takeaway = truncate(takeaway, takeawayMaxLen)

	createdAt := time.Now()
	if item.PublishedParsed != nil {
		createdAt = *item.PublishedParsed
	}

	source := datatypes.NewJSONType(models.FeedSource{Title: src.Name, URL: item.Link})

	return models.Feed{
		Title:      title,
		Category:   src.Category,
		Popularity: 50,
		Image:      itemImage(item, src),
		Lines:      datatypes.NewJSONSlice(lines),
		Takeaway:   takeaway,
		Source:     &source,
		CreatedAt:  createdAt,
	}
}

func itemImage(item *gofeed.Item, src Source) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return src.Image
}

var (
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

func stripHTML(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&quot;", `"`, "&#39;", "'", "&lt;", "<", "&gt;", ">").Replace(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func splitSentences(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) < 10 {
			continue
		}
		out = append(out, p+".")
	}
	return out
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
