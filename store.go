package docsite

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/eringen/docsite/views"
)

// ErrDocNotFound is returned when a requested doc does not exist.
var ErrDocNotFound = errors.New("docsite: doc not found")

// frontMatter is the YAML header of a doc file.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

// DocStore loads Markdown docs from a directory tree. A file at
// <root>/guides/setup.md has the slug "guides/setup".
type DocStore struct {
	root string
	md   goldmark.Markdown
}

// NewDocStore creates a DocStore rooted at dir. The directory does not
// need to exist yet.
func NewDocStore(dir string) *DocStore {
	return &DocStore{
		root: dir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Root returns the docs directory.
func (s *DocStore) Root() string {
	return s.root
}

// ListDocs returns every doc, drafts included, sorted by slug.
// A missing docs directory yields no docs and no error.
func (s *DocStore) ListDocs() ([]views.Doc, error) {
	var docs []views.Doc
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == s.root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if p != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		slug := strings.TrimSuffix(filepath.ToSlash(rel), ".md")
		doc, err := s.load(slug, p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Slug < docs[j].Slug })
	return docs, nil
}

// GetDoc loads a single doc by slug, drafts included.
func (s *DocStore) GetDoc(slug string) (views.Doc, error) {
	clean, ok := cleanSlug(slug)
	if !ok {
		return views.Doc{}, ErrDocNotFound
	}
	doc, err := s.load(clean, filepath.Join(s.root, filepath.FromSlash(clean)+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return views.Doc{}, ErrDocNotFound
	}
	return doc, err
}

// cleanSlug normalizes a request slug and rejects anything that would
// escape the docs root.
func cleanSlug(slug string) (string, bool) {
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "\\") {
		return "", false
	}
	clean := path.Clean(slug)
	if clean != slug || clean == "." || strings.HasPrefix(clean, "..") {
		return "", false
	}
	for _, part := range strings.Split(clean, "/") {
		if strings.HasPrefix(part, ".") {
			return "", false
		}
	}
	return clean, true
}

func (s *DocStore) load(slug, file string) (views.Doc, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return views.Doc{}, err
	}
	doc, err := s.parse(slug, src)
	if err != nil {
		return views.Doc{}, fmt.Errorf("docsite: %s: %w", file, err)
	}
	return doc, nil
}

func (s *DocStore) parse(slug string, src []byte) (views.Doc, error) {
	fmRaw, body := splitFrontMatter(src)
	var fm frontMatter
	if len(fmRaw) > 0 {
		if err := yaml.Unmarshal(fmRaw, &fm); err != nil {
			return views.Doc{}, fmt.Errorf("front matter: %w", err)
		}
	}

	root := s.md.Parser().Parse(text.NewReader(body))
	var buf bytes.Buffer
	if err := s.md.Renderer().Render(&buf, body, root); err != nil {
		return views.Doc{}, fmt.Errorf("render markdown: %w", err)
	}

	title := fm.Title
	if title == "" {
		title = firstHeading(root, body)
	}
	if title == "" {
		title = path.Base(slug)
	}
	return views.Doc{
		Slug:        slug,
		Title:       title,
		Description: fm.Description,
		HTML:        buf.String(),
		Draft:       fm.Draft,
	}, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from
// the Markdown body. Without one, the whole input is the body.
func splitFrontMatter(src []byte) (fm, body []byte) {
	src = bytes.TrimPrefix(src, []byte("\ufeff"))
	normalized := bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return nil, src
	}
	rest := normalized[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):]
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")], nil
		}
		return nil, src
	}
	return rest[:end], rest[end+len("\n---\n"):]
}

// firstHeading returns the text of the first level one heading.
func firstHeading(root gmast.Node, src []byte) string {
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		var b strings.Builder
		_ = gmast.Walk(h, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
			if t, ok := c.(*gmast.Text); ok && entering {
				b.Write(t.Segment.Value(src))
				if t.SoftLineBreak() {
					b.WriteByte(' ')
				}
			}
			return gmast.WalkContinue, nil
		})
		title = strings.TrimSpace(b.String())
		return gmast.WalkStop, nil
	})
	return title
}
