package nav

import "html/template"

// The fragment templates are parsed once at init and shared by every
// Renderer. Class and data-attribute names here are a stable contract with
// NavCSS and NavJS; change them together.

var (
	topNavTmpl     = template.Must(template.New("topnav").Parse(topNavTemplate))
	sidebarTmpl    = template.Must(template.New("sidebar").Parse(sidebarTemplate))
	quickLinksTmpl = template.Must(template.New("quicklinks").Parse(quickLinksTemplate))
)

const topNavTemplate = `<ul class="nav-menu">
{{- range . }}
<li class="nav-item{{if .Dropdown}} has-dropdown{{end}}{{if .Active}} active{{end}}">
<a href="{{.Href}}" class="nav-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Title}}</a>
{{- if .Dropdown }}
<button type="button" class="dropdown-toggle" aria-expanded="false" aria-label="Toggle {{.Title}} submenu">▾</button>
<ul class="dropdown-menu">
{{- range .Dropdown }}
<li><a href="{{.Href}}" class="dropdown-link">{{.Title}}</a></li>
{{- end }}
</ul>
{{- end }}
</li>
{{- end }}
</ul>
`

const sidebarTemplate = `<ul class="sidebar-menu">
{{- range . }}
<li class="sidebar-item{{if .Dropdown}} has-dropdown{{end}}{{if .Active}} active{{end}}">
<a href="{{.Href}}" class="sidebar-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Title}}</a>
{{- if .Dropdown }}
<button type="button" class="dropdown-toggle" aria-expanded="false" aria-label="Toggle {{.Title}} submenu">▾</button>
<ul class="dropdown-menu">
{{- range .Dropdown }}
<li><a href="{{.Href}}" class="dropdown-link">{{.Title}}</a></li>
{{- end }}
</ul>
{{- end }}
</li>
{{- end }}
</ul>
`

const quickLinksTemplate = `<div class="quick-links-panel">
<h3 class="panel-title">Quick Links</h3>
<ul class="quick-links">
{{- range .Links }}
<li class="quick-link"><a href="{{.Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}><span class="quick-link-icon">{{.Icon}}</span><span class="quick-link-title">{{.Title}}</span></a></li>
{{- end }}
</ul>
{{- if .Dates }}
<h3 class="panel-title">Important Dates</h3>
<ol class="important-dates">
{{- range .Dates }}
<li>{{.}}</li>
{{- end }}
</ol>
{{- end }}
</div>
`
