// Package site builds the static syllabus site for a course: it renders the
// page sources, mounts the navigation fragments into each page, and writes
// the styling and behavior assets alongside them.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/syllabuild/syllabuild/internal/config"
	"github.com/syllabuild/syllabuild/internal/nav"
	"github.com/syllabuild/syllabuild/internal/progress"
)

// Builder turns a directory of page sources into the course output
// directory. Pages may be hand-written HTML (used as-is) or markdown
// (rendered into the page shell); both get the navigation mounted before
// they are written out.
type Builder struct {
	PagesDir   string
	OutputDir  string
	CourseName string
	Term       string
	CourseSlug string
	Exclude    []string
	Renderer   *nav.Renderer
	Reporter   progress.Reporter
}

// NewBuilder creates a Builder for the given course configuration.
// outputDir is the course-specific output path, e.g. docs/sp26/math140b.
func NewBuilder(cfg *config.Config, outputDir string) *Builder {
	name := cfg.Course.Name
	if name == "" {
		name = "Course Syllabus"
	}
	return &Builder{
		PagesDir:   cfg.PagesDir,
		OutputDir:  outputDir,
		CourseName: name,
		Term:       cfg.Course.Term,
		CourseSlug: cfg.Course.Number,
		Exclude:    cfg.Exclude,
		Renderer:   nav.NewRenderer(nav.FromConfig(cfg)),
		Reporter:   progress.Quiet{},
	}
}

// shellData holds the data passed to the page shell template for markdown
// pages.
type shellData struct {
	Title       string
	CourseName  string
	AssetPrefix string
	Content     template.HTML
}

// Build renders every page and writes the site. Returns the number of pages
// generated.
func (b *Builder) Build() (int, error) {
	var pages []string
	var assets []string
	err := filepath.Walk(b.PagesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(b.PagesDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluded(rel, b.Exclude) {
			return nil
		}
		switch {
		case strings.HasSuffix(rel, ".md") || strings.HasSuffix(rel, ".html"):
			pages = append(pages, rel)
		default:
			assets = append(assets, rel)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking pages dir: %w", err)
	}

	if len(pages) == 0 {
		return 0, fmt.Errorf("no pages found in %s", b.PagesDir)
	}

	if err := os.MkdirAll(filepath.Join(b.OutputDir, "static"), 0o755); err != nil {
		return 0, err
	}

	// Write navigation assets.
	if err := os.WriteFile(filepath.Join(b.OutputDir, "static", "navigation.css"), []byte(nav.NavCSS), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "static", "navigation.js"), []byte(nav.NavJS), 0o644); err != nil {
		return 0, err
	}

	// Initialize goldmark for markdown pages.
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page shell: %w", err)
	}

	manifest := NewManifest(b.Term, b.CourseSlug, b.CourseName)

	b.Reporter.Start(len(pages))
	for i, relPath := range pages {
		b.Reporter.Update(i+1, relPath)
		outRel, err := b.renderPage(md, tmpl, relPath)
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", relPath, err)
		}
		manifest.AddPage(relPath, outRel)
	}
	b.Reporter.Finish()

	// Copy non-page files (images, PDFs) verbatim.
	for _, relPath := range assets {
		if err := b.copyAsset(relPath); err != nil {
			return 0, fmt.Errorf("copying %s: %w", relPath, err)
		}
	}

	if err := manifest.Write(filepath.Join(b.OutputDir, ManifestName)); err != nil {
		return 0, fmt.Errorf("writing manifest: %w", err)
	}

	return len(pages), nil
}

// renderPage builds a single page and returns its output-relative path.
func (b *Builder) renderPage(md goldmark.Markdown, tmpl *template.Template, relPath string) (string, error) {
	srcPath := filepath.Join(b.PagesDir, filepath.FromSlash(relPath))
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}

	outRel := relPath
	var pageHTML string

	if strings.HasSuffix(relPath, ".md") {
		var htmlBuf bytes.Buffer
		if err := md.Convert(content, &htmlBuf); err != nil {
			return "", fmt.Errorf("converting markdown: %w", err)
		}

		var shellBuf bytes.Buffer
		data := shellData{
			Title:      extractTitle(string(content), relPath),
			CourseName: b.CourseName,
			// Pages in subdirectories reach the shared assets through a
			// relative prefix matching their depth.
			AssetPrefix: strings.Repeat("../", strings.Count(relPath, "/")),
			Content:     template.HTML(rewriteMDLinks(htmlBuf.String())),
		}
		if err := tmpl.Execute(&shellBuf, data); err != nil {
			return "", fmt.Errorf("executing page shell: %w", err)
		}
		pageHTML = shellBuf.String()
		outRel = mdPathToHTML(relPath)
	} else {
		pageHTML = string(content)
	}

	// Mount the navigation fragments.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}
	currentPage := nav.CurrentPageFromPath(outRel)
	if err := b.Renderer.Apply(doc, currentPage); err != nil {
		return "", err
	}
	rendered, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing page: %w", err)
	}

	outPath := filepath.Join(b.OutputDir, filepath.FromSlash(outRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return "", err
	}
	return outRel, nil
}

// copyAsset copies a non-page file from the pages dir to the output dir.
func (b *Builder) copyAsset(relPath string) error {
	data, err := os.ReadFile(filepath.Join(b.PagesDir, filepath.FromSlash(relPath)))
	if err != nil {
		return err
	}
	outPath := filepath.Join(b.OutputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

// Clean removes the generated output directory.
func Clean(outputDir string) error {
	if outputDir == "" || outputDir == "/" {
		return fmt.Errorf("refusing to clean %q", outputDir)
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("cleaning %s: %w", outputDir, err)
	}
	return nil
}

// extractTitle pulls the first # heading from markdown content, or falls
// back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}

// rewriteMDLinks changes .md links in rendered HTML to .html links so
// markdown pages can link to each other by source name.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	result = strings.ReplaceAll(result, `.md#`, `.html#`)
	return result
}

// mdPathToHTML converts a markdown source path to its output equivalent.
func mdPathToHTML(p string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ".html"
	}
	return p
}
