// Package inspect looks inside individual dataset items. The splitter never
// does this; it exists for checking what landed in a subset.
package inspect

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/dataset-split/pkg/analytics"
	"github.com/dtnitsch/dataset-split/pkg/caching"
	"github.com/dtnitsch/dataset-split/pkg/dataset"
	"github.com/dtnitsch/dataset-split/pkg/storage"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
	"gopkg.in/yaml.v3"
)

const (
	UnknownLanguage = "unknown"
	topKeywordCount = 10
)

// DefaultLanguages is the candidate set for language detection.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Document summarizes one decompressed dataset item.
type Document struct {
	Identifier       string   `yaml:"identifier"`
	Path             string   `yaml:"path"`
	CompressedBytes  int64    `yaml:"compressed_bytes"`
	UncompressedSize int      `yaml:"uncompressed_bytes"`
	Title            string   `yaml:"title,omitempty"`
	Excerpt          string   `yaml:"excerpt,omitempty"`
	HeadingCount     int      `yaml:"heading_count"`
	WordCount        int      `yaml:"word_count"`
	Language         string   `yaml:"language"`
	TopKeywords      []string `yaml:"top_keywords,omitempty"`
}

// Inspector summarizes dataset items, optionally through a file cache.
type Inspector struct {
	logger    *slog.Logger
	detector  lingua.LanguageDetector
	analytics *analytics.Analytics
	store     *storage.Storage
	cache     *caching.Cache
}

// NewInspector builds an Inspector detecting among languages
// (DefaultLanguages when empty).
func NewInspector(logger *slog.Logger, languages ...lingua.Language) *Inspector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}
	return &Inspector{
		logger:    logger,
		detector:  lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build(),
		analytics: &analytics.Analytics{},
		store:     &storage.Storage{},
	}
}

// WithCache makes Inspect reuse documents for files that have not changed.
func (in *Inspector) WithCache(c *caching.Cache) *Inspector {
	in.cache = c
	return in
}

// Inspect decompresses the item at path and extracts its title, text
// statistics and language.
func (in *Inspector) Inspect(path string) (*Document, error) {
	if in.cache == nil {
		return in.inspect(path)
	}

	key, err := caching.FileKey(path)
	if err != nil {
		return nil, err
	}
	if data, ok := in.cache.Get(key); ok {
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err == nil {
			in.logger.Debug("inspect cache hit", "path", path)
			return &doc, nil
		}
	}

	doc, err := in.inspect(path)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(doc)
	if err == nil {
		err = in.cache.Set(key, data)
	}
	if err != nil {
		in.logger.Warn("failed to cache document", "path", path, "error", err)
	}
	return doc, nil
}

func (in *Inspector) inspect(path string) (*Document, error) {
	stats, err := in.store.GetFileStats(path)
	if err != nil {
		return nil, err
	}

	html, err := ReadGzip(path)
	if err != nil {
		return nil, err
	}
	in.logger.Debug("decompressed item", "path", path, "uncompressed_bytes", len(html))

	raw, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML in %s: %w", path, err)
	}

	doc := &Document{
		Identifier:       dataset.Identifier(filepath.Base(path)),
		Path:             path,
		CompressedBytes:  stats.SizeBytes,
		UncompressedSize: len(html),
		HeadingCount:     raw.Find("h1,h2,h3,h4,h5,h6").Length(),
	}

	text := in.articleText(path, html, doc)
	if text == "" {
		doc.Title = normalizeText(raw.Find("title").First().Text())
		text = normalizeText(raw.Find("body").Text())
	}

	doc.WordCount = len(strings.Fields(text))
	doc.TopKeywords = analytics.TopKeywords(in.analytics.WordFrequency(text), topKeywordCount)
	doc.Language = UnknownLanguage
	if lang, ok := in.detector.DetectLanguageOf(text); ok {
		doc.Language = strings.ToLower(lang.String())
	}

	return doc, nil
}

// articleText runs readability over the page and fills in title and
// excerpt. It returns "" when readability finds no usable content.
func (in *Inspector) articleText(path string, html []byte, doc *Document) string {
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), pageURL)
	if err != nil {
		in.logger.Debug("readability failed, using raw document", "path", path, "error", err)
		return ""
	}

	content, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return ""
	}
	text := normalizeText(content.Text())
	if text == "" {
		return ""
	}

	doc.Title = normalizeText(article.Title)
	doc.Excerpt = normalizeText(article.Excerpt)
	return text
}

// InspectFiles inspects the named items of dir in the given order.
// Names that turn out to be directories are skipped.
func (in *Inspector) InspectFiles(dir string, names []string) ([]*Document, error) {
	var docs []*Document
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			in.logger.Debug("skipping directory", "path", path)
			continue
		}
		doc, err := in.Inspect(path)
		if err != nil {
			return docs, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// normalizeText collapses all whitespace runs into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
