package nav

import (
	"bytes"
	"fmt"
)

// Renderer turns the shared navigation model into HTML fragments. The
// model is read-only; a Renderer can be shared freely once constructed.
type Renderer struct {
	data *Data

	// dropdowns indexes TopNav dropdowns by href so the sidebar renderer can
	// borrow them without a per-render scan. Built front-to-back and never
	// overwritten, so the first TopNav match wins on duplicate hrefs.
	dropdowns map[string][]MenuItem
}

// NewRenderer creates a Renderer over the given navigation data.
func NewRenderer(data *Data) *Renderer {
	dropdowns := make(map[string][]MenuItem)
	for _, item := range data.TopNav {
		if len(item.Dropdown) == 0 {
			continue
		}
		if _, ok := dropdowns[item.Href]; ok {
			continue
		}
		dropdowns[item.Href] = item.Dropdown
	}
	return &Renderer{data: data, dropdowns: dropdowns}
}

// navEntry is the per-item view model shared by the top nav and sidebar
// templates.
type navEntry struct {
	Title    string
	Href     string
	Active   bool
	Dropdown []MenuItem
}

// TopNav renders the primary menu. The entry whose Href equals currentPage
// (exact match) is marked active; no entry is marked when nothing matches.
// Output is deterministic: identical model and currentPage yield identical
// markup.
func (r *Renderer) TopNav(currentPage string) (string, error) {
	entries := make([]navEntry, 0, len(r.data.TopNav))
	for _, item := range r.data.TopNav {
		entries = append(entries, navEntry{
			Title:    item.Title,
			Href:     item.Href,
			Active:   item.Href == currentPage,
			Dropdown: item.Dropdown,
		})
	}

	var buf bytes.Buffer
	if err := topNavTmpl.Execute(&buf, entries); err != nil {
		return "", fmt.Errorf("rendering top nav: %w", err)
	}
	return buf.String(), nil
}

// SidebarNav renders the sidebar menu. A sidebar entry whose href matches a
// TopNav entry with a dropdown gets the same dropdown affordance and child
// list; entries without a match render as plain links. Dropdowns start
// collapsed; the toggle behavior lives in the shipped NavJS asset.
func (r *Renderer) SidebarNav(currentPage string) (string, error) {
	entries := make([]navEntry, 0, len(r.data.SidebarNav))
	for _, item := range r.data.SidebarNav {
		entries = append(entries, navEntry{
			Title:    item.Title,
			Href:     item.Href,
			Active:   item.Href == currentPage,
			Dropdown: r.dropdowns[item.Href],
		})
	}

	var buf bytes.Buffer
	if err := sidebarTmpl.Execute(&buf, entries); err != nil {
		return "", fmt.Errorf("rendering sidebar nav: %w", err)
	}
	return buf.String(), nil
}

// quickLinksData is the view model for the quick-links template.
type quickLinksData struct {
	Links []QuickLink
	Dates []string
}

// QuickLinks renders the quick-links panel followed by the important dates
// list. Entries with an empty Href are placeholders awaiting build-time
// injection and are omitted.
func (r *Renderer) QuickLinks() (string, error) {
	links := make([]QuickLink, 0, len(r.data.QuickLinks))
	for _, link := range r.data.QuickLinks {
		if link.Href == "" {
			continue
		}
		links = append(links, link)
	}

	var buf bytes.Buffer
	err := quickLinksTmpl.Execute(&buf, quickLinksData{
		Links: links,
		Dates: r.data.ImportantDates,
	})
	if err != nil {
		return "", fmt.Errorf("rendering quick links: %w", err)
	}
	return buf.String(), nil
}
