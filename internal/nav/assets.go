package nav

// NavCSS is the stylesheet for the three navigation surfaces. It is written
// out as a static asset (static/navigation.css) by the site builder.
const NavCSS = `/* ============ Top navigation ============ */
.nav-menu {
  list-style: none;
  margin: 0;
  padding: 0;
  display: flex;
  gap: 0.25rem;
}

.nav-item {
  position: relative;
}

.nav-link {
  display: block;
  padding: 0.6rem 0.9rem;
  color: #1f2937;
  text-decoration: none;
  border-radius: 6px;
}

.nav-link:hover {
  background: #eef2f7;
}

.nav-link.active {
  background: #1d4ed8;
  color: #ffffff;
  font-weight: 600;
}

/* ============ Sidebar navigation ============ */
.sidebar-menu {
  list-style: none;
  margin: 0;
  padding: 0;
}

.sidebar-item {
  border-bottom: 1px solid #e5e7eb;
}

.sidebar-link {
  display: block;
  padding: 0.55rem 0.75rem;
  color: #374151;
  text-decoration: none;
}

.sidebar-link:hover {
  background: #f3f4f6;
}

.sidebar-link.active {
  border-left: 3px solid #1d4ed8;
  background: #eff6ff;
  color: #1d4ed8;
  font-weight: 600;
}

/* ============ Dropdowns ============ */
.dropdown-toggle {
  background: none;
  border: none;
  cursor: pointer;
  padding: 0.25rem 0.5rem;
  color: #6b7280;
}

.dropdown-menu {
  display: none;
  list-style: none;
  margin: 0;
  padding: 0.25rem 0 0.25rem 1rem;
}

.has-dropdown.open > .dropdown-menu {
  display: block;
}

.has-dropdown.open > .dropdown-toggle {
  transform: rotate(180deg);
}

.dropdown-link {
  display: block;
  padding: 0.35rem 0.6rem;
  color: #4b5563;
  text-decoration: none;
  font-size: 0.92em;
}

.dropdown-link:hover {
  background: #f3f4f6;
}

/* ============ Quick links panel ============ */
.quick-links-panel {
  padding: 0.75rem;
}

.panel-title {
  margin: 0 0 0.5rem;
  font-size: 0.8rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: #6b7280;
}

.quick-links {
  list-style: none;
  margin: 0 0 1rem;
  padding: 0;
}

.quick-link a {
  display: flex;
  align-items: center;
  gap: 0.5rem;
  padding: 0.4rem 0.25rem;
  color: #1f2937;
  text-decoration: none;
}

.quick-link a:hover {
  color: #1d4ed8;
}

.important-dates {
  margin: 0;
  padding-left: 1.25rem;
  color: #374151;
  font-size: 0.92em;
}

.important-dates li {
  margin-bottom: 0.3rem;
}
`

// NavJS is the behavior script for dropdown toggling. The renderers only
// emit the markup; all interaction lives here.
const NavJS = `document.addEventListener('click', function (event) {
  var toggle = event.target.closest('.dropdown-toggle');
  if (!toggle) return;

  var item = toggle.closest('.has-dropdown');
  if (!item) return;

  var open = item.classList.toggle('open');
  toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
});
`
