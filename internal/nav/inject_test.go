package nav

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestCurrentPageFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/courses/sp26/math140b/", "index.html"},
		{"/courses/sp26/math140b/grading.html", "grading.html"},
		{"grading.html", "grading.html"},
		{"/exams.html?draft=1", "exams.html"},
		{"/exams.html#midterm1", "exams.html"},
	}

	for _, tt := range tests {
		if got := CurrentPageFromPath(tt.path); got != tt.want {
			t.Errorf("CurrentPageFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

const hostPage = `<!DOCTYPE html>
<html>
<head><title>Grading</title></head>
<body>
<nav id="main-nav"></nav>
<nav id="sidebar-nav"></nav>
<main>Grading breakdown lives here.</main>
<aside id="quick-links"></aside>
</body>
</html>`

func parseDocument(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parsing document: %v", err)
	}
	return doc
}

func TestApplyFillsAllMountPoints(t *testing.T) {
	r := NewRenderer(DefaultData())
	doc := parseDocument(t, hostPage)

	if err := r.Apply(doc, "grading.html"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if doc.Find("#main-nav ul.nav-menu").Length() != 1 {
		t.Error("top nav not mounted")
	}
	if doc.Find("#sidebar-nav ul.sidebar-menu").Length() != 1 {
		t.Error("sidebar not mounted")
	}
	if doc.Find("#quick-links .quick-links-panel").Length() != 1 {
		t.Error("quick links not mounted")
	}

	active := doc.Find("#main-nav a.nav-link.active")
	if active.Length() != 1 || active.Text() != "How Your Grade is Determined" {
		t.Errorf("active top-nav entry = %q (n=%d), want exactly one grading entry", active.Text(), active.Length())
	}

	// Host content outside the mount points is untouched.
	if got := doc.Find("main").Text(); got != "Grading breakdown lives here." {
		t.Errorf("host content = %q, want preserved", got)
	}
}

func TestApplyWithoutMountPointsIsNoOp(t *testing.T) {
	const bare = `<!DOCTYPE html><html><head></head><body><p>No mounts here.</p></body></html>`

	r := NewRenderer(DefaultData())
	doc := parseDocument(t, bare)

	before, err := doc.Html()
	if err != nil {
		t.Fatalf("serializing before: %v", err)
	}

	if err := r.Apply(doc, "index.html"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	after, err := doc.Html()
	if err != nil {
		t.Fatalf("serializing after: %v", err)
	}
	if before != after {
		t.Error("document without mount points must not change")
	}
}

func TestApplySkipsMissingMountPoints(t *testing.T) {
	const partial = `<!DOCTYPE html><html><head></head><body><nav id="sidebar-nav"></nav></body></html>`

	r := NewRenderer(DefaultData())
	doc := parseDocument(t, partial)

	if err := r.Apply(doc, "index.html"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if doc.Find("#sidebar-nav ul.sidebar-menu").Length() != 1 {
		t.Error("present mount point should be filled")
	}
	if doc.Find("ul.nav-menu").Length() != 0 {
		t.Error("top nav markup rendered despite missing mount point")
	}
	if doc.Find(".quick-links-panel").Length() != 0 {
		t.Error("quick links markup rendered despite missing mount point")
	}
}
