package nav

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Mount point element IDs the hosting page may expose. Each one that exists
// has its contents replaced; missing mount points are skipped so a page can
// opt in per section.
const (
	TopNavMountID     = "main-nav"
	SidebarMountID    = "sidebar-nav"
	QuickLinksMountID = "quick-links"
)

// CurrentPageFromPath derives the current page identifier from a URL path by
// taking the final segment. A root path (or any path ending in a slash)
// resolves to "index.html".
func CurrentPageFromPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return "index.html"
	}
	return path
}

// Apply renders all three navigation fragments into the document's mount
// points. Mount points that are absent are silently skipped; a document with
// none of them is left untouched. The only errors are template failures,
// which do not occur for well-formed model data.
func (r *Renderer) Apply(doc *goquery.Document, currentPage string) error {
	if err := r.mount(doc, TopNavMountID, func() (string, error) {
		return r.TopNav(currentPage)
	}); err != nil {
		return err
	}
	if err := r.mount(doc, SidebarMountID, func() (string, error) {
		return r.SidebarNav(currentPage)
	}); err != nil {
		return err
	}
	return r.mount(doc, QuickLinksMountID, r.QuickLinks)
}

func (r *Renderer) mount(doc *goquery.Document, id string, render func() (string, error)) error {
	sel := doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil
	}
	fragment, err := render()
	if err != nil {
		return fmt.Errorf("mount #%s: %w", id, err)
	}
	sel.SetHtml(fragment)
	return nil
}
