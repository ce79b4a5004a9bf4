package site

// pageTemplate is the Go html/template shell for pages authored in markdown.
// It exposes the three navigation mount points; the builder fills them in
// after rendering, the same way it does for hand-written HTML pages.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.CourseName}}</title>
  <link rel="stylesheet" href="{{.AssetPrefix}}static/navigation.css">
</head>
<body>
  <header class="site-header">
    <div class="course-title">{{.CourseName}}</div>
    <nav id="main-nav" aria-label="Primary"></nav>
  </header>
  <div class="layout">
    <nav id="sidebar-nav" class="sidebar" aria-label="Sections"></nav>
    <main class="page-content">
      {{.Content}}
    </main>
    <aside id="quick-links" class="panel" aria-label="Quick links"></aside>
  </div>
  <script src="{{.AssetPrefix}}static/navigation.js"></script>
</body>
</html>`
