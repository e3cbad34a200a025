package toc

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// Indent is the string repeated once per nesting level in rendered output.
const Indent = "  "

// DefaultSkipKeywords are matched case-insensitively against heading lines.
// Headings containing one of them are treated as an existing table of
// contents and never listed.
var DefaultSkipKeywords = []string{"оглавление", "table of contents"}

// Heading is a Markdown heading line split into its level and title.
type Heading struct {
	Level int
	Title string
}

// Entry is one line of the generated table of contents.
type Entry struct {
	Indent int
	Title  string
	Anchor string
}

// ParseHeading parses a line starting with '#' at column 0.
// Indented or quoted headings are not recognised.
func ParseHeading(line string) (Heading, bool) {
	if !strings.HasPrefix(line, "#") {
		return Heading{}, false
	}
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	return Heading{
		Level: len(line) - len(strings.TrimLeft(line, "#")),
		Title: stripHeadingMarker(line),
	}, true
}

// Builder turns a stream of Markdown lines into table of contents entries.
type Builder struct {
	skipKeywords []string
	baseLevel    int
	logger       *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSkipKeywords replaces the table of contents keywords.
func WithSkipKeywords(keywords ...string) Option {
	return func(b *Builder) {
		b.skipKeywords = b.skipKeywords[:0]
		for _, k := range keywords {
			if k = strings.TrimSpace(k); k != "" {
				b.skipKeywords = append(b.skipKeywords, strings.ToLower(k))
			}
		}
	}
}

// WithBaseLevel sets the heading level rendered without indentation.
// Shallower headings are clamped to zero indent. Values below 1 mean 1.
func WithBaseLevel(level int) Option {
	return func(b *Builder) {
		b.baseLevel = max(1, level)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder with the default skip keywords.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		skipKeywords: append([]string(nil), DefaultSkipKeywords...),
		baseLevel:    1,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build consumes lines once, front to back, and returns the entries in
// document order. The first "# " heading is taken as the document title and
// skipped; later top-level headings are listed.
func (b *Builder) Build(lines iter.Seq[string]) []Entry {
	var entries []Entry
	titleSeen := false

	for line := range lines {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)

		if b.isTOCHeading(line) {
			b.logger.Debug("skipping table of contents heading", "line", line)
			continue
		}

		if strings.HasPrefix(line, "# ") && !titleSeen {
			titleSeen = true
			b.logger.Debug("skipping document title", "line", line)
			continue
		}

		h, _ := ParseHeading(line)
		entries = append(entries, Entry{
			Indent: max(0, h.Level-b.baseLevel),
			Title:  h.Title,
			Anchor: Slugify(line),
		})
	}

	return entries
}

func (b *Builder) isTOCHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range b.skipKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Read scans Markdown from r and returns its entries. Lines have no
// length limit.
func (b *Builder) Read(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)
	var readErr error

	entries := b.Build(func(yield func(string) bool) {
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(line) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					readErr = err
				}
				return
			}
		}
	})
	if readErr != nil {
		return nil, fmt.Errorf("failed to read markdown: %w", readErr)
	}

	b.logger.Debug("collected headings", "entries", len(entries))
	return entries, nil
}

// ReadFile reads the Markdown file at path. A path that cannot be opened,
// or that names a directory, yields a *SourceNotFoundError.
func (b *Builder) ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceNotFoundError{Path: path, Err: errIsDir}
	}

	entries, err := b.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Generate reads Markdown from r and returns the rendered table of contents.
func (b *Builder) Generate(r io.Reader) (string, error) {
	entries, err := b.Read(r)
	if err != nil {
		return "", err
	}
	return Render(entries), nil
}

// GenerateFile is Generate for the file at path.
func (b *Builder) GenerateFile(path string) (string, error) {
	entries, err := b.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Render(entries), nil
}

// Render formats entries as an indented Markdown link list joined by
// newlines, without a trailing newline.
func Render(entries []Entry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat(Indent, e.Indent))
		sb.WriteString("- [")
		sb.WriteString(e.Title)
		sb.WriteString("](")
		sb.WriteString(e.Anchor)
		sb.WriteString(")")
	}
	return sb.String()
}

// Lines splits text into lines the way a line scanner would.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}
