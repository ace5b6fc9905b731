// Package catalog loads hashtag categories from a directory of text files and
// builds capped, deduplicated hashtag strings for social-media posts.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"hashtagset/internal/fileingest"
	"hashtagset/internal/util"
)

const (
	// DefaultMaxCount is the number of hashtags Instagram allows in one post.
	DefaultMaxCount = 30
	// DefaultReservedName is the fixture category hidden from Categories.
	DefaultReservedName = "test"
	// DefaultExtension is the extension of category files.
	DefaultExtension = ".txt"
)

// Catalog is an immutable view of the categories found in a data directory.
type Catalog struct {
	dataDir    string
	categories []string
	paths      map[string]string // category -> file as found on disk
	reserved   string
	ext        string
	maxCount   int
	logger     log.FieldLogger

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithReservedName sets the fixture category name. An empty name disables it.
func WithReservedName(name string) Option {
	return func(c *Catalog) { c.reserved = name }
}

// WithExtension sets the category file extension, e.g. ".txt".
func WithExtension(ext string) Option {
	return func(c *Catalog) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.ext = ext
	}
}

// WithMaxCount sets the cap used when BuildPost is called without one.
func WithMaxCount(n int) Option {
	return func(c *Catalog) { c.maxCount = n }
}

// WithRand injects the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) { c.rnd = r }
}

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(c *Catalog) { c.logger = l }
}

// New scans dataDir once and returns a catalog of the categories found there.
// Later changes to the directory are not observed.
func New(dataDir string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		dataDir:  dataDir,
		reserved: DefaultReservedName,
		ext:      DefaultExtension,
		maxCount: DefaultMaxCount,
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ext == "" {
		c.ext = DefaultExtension
	}
	if c.maxCount <= 0 {
		c.maxCount = DefaultMaxCount
	}
	if c.rnd == nil {
		c.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	info, err := os.Stat(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidDirectory, dataDir)
	}

	files, err := fileingest.DiscoverCategoryFiles(dataDir, c.ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, dataDir, err)
	}
	c.categories = make([]string, 0, len(files))
	c.paths = make(map[string]string, len(files))
	for _, f := range files {
		name := fileingest.BaseName(f.Path)
		if name == "" {
			continue
		}
		if _, dup := c.paths[name]; dup {
			continue
		}
		c.paths[name] = f.Path
		if name == c.reserved {
			continue
		}
		c.categories = append(c.categories, name)
	}

	c.logger.WithFields(log.Fields{
		"data_dir":   dataDir,
		"categories": len(c.categories),
	}).Debug("hashtag catalog loaded")
	return c, nil
}

// DataDir returns the directory the catalog was built from.
func (c *Catalog) DataDir() string { return c.dataDir }

// MaxCount returns the default cap.
func (c *Catalog) MaxCount() int { return c.maxCount }

// ReservedName returns the fixture category name.
func (c *Catalog) ReservedName() string { return c.reserved }

// Categories returns the discovered category names in directory-scan order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// HasCategory reports whether name can be resolved.
func (c *Catalog) HasCategory(name string) bool {
	if c.reserved != "" && name == c.reserved {
		return true
	}
	return slices.Contains(c.categories, name)
}

// CategoryPath returns the backing file of a category. A reserved category
// with no file on disk maps to where its file would be.
func (c *Catalog) CategoryPath(name string) string {
	if path, ok := c.paths[name]; ok {
		return path
	}
	return filepath.Join(c.dataDir, name+c.ext)
}

// HashtagsForCategory reads the category file and returns its normalized
// hashtags without duplicates. Blank lines are skipped.
func (c *Catalog) HashtagsForCategory(category string) ([]string, error) {
	if !c.HasCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	path := c.CategoryPath(category)
	raw, err := fileingest.ReadFileContent(path)
	if err != nil {
		if category == c.reserved && errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		c.logger.WithError(err).WithField("category", category).Warn("failed to read category file")
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
	}
	content, err := util.CleanFileContent(raw, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
	}

	hashtags := make([]string, 0, len(lines))
	for _, line := range dedupe(lines) {
		tag := NormalizeHashtag(line)
		if isEmptyTag(tag) {
			continue
		}
		hashtags = append(hashtags, tag)
	}
	return dedupe(hashtags), nil
}

// Post is the result of one hashtag selection.
type Post struct {
	Hashtags []string `json:"hashtags"`
	String   string   `json:"post"`
}

// BuildPost blends the hashtags of the given categories, samples up to
// maxCount of them at random and formats the result. maxCount <= 0 uses the
// catalog default. Any category error fails the whole call.
func (c *Catalog) BuildPost(categories []string, maxCount int) (Post, error) {
	if maxCount <= 0 {
		maxCount = c.maxCount
	}

	var blended []string
	for _, category := range categories {
		hashtags, err := c.HashtagsForCategory(category)
		if err != nil {
			return Post{}, err
		}
		blended = append(blended, hashtags...)
	}
	if len(blended) == 0 {
		return Post{Hashtags: []string{}}, nil
	}

	keys := c.perm(len(blended))
	if len(keys) > maxCount {
		keys = keys[:maxCount]
	}
	selected := make([]string, 0, len(keys))
	for _, k := range keys {
		selected = append(selected, blended[k])
	}
	selected = dedupe(selected)

	var sb strings.Builder
	for i, tag := range selected {
		selected[i] = reformat(tag)
		sb.WriteString(selected[i])
		sb.WriteByte(' ')
	}
	return Post{Hashtags: selected, String: sb.String()}, nil
}

// BuildPostString is BuildPost returning only the formatted string.
func (c *Catalog) BuildPostString(categories []string, maxCount int) (string, error) {
	post, err := c.BuildPost(categories, maxCount)
	if err != nil {
		return "", err
	}
	return post.String, nil
}

func (c *Catalog) perm(n int) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Perm(n)
}
