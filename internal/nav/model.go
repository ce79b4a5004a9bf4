// Package nav holds the navigation data model for course-syllabus pages and
// the renderers that turn it into HTML fragments for the three navigation
// surfaces: the top menu, the sidebar, and the quick-links panel.
package nav

// MenuItem is one clickable entry in the primary (top) navigation. Href is a
// page-relative path, optionally with a fragment (e.g. "grading.html#quizzes").
// Dropdown children are plain links and never carry their own dropdown.
type MenuItem struct {
	Title    string
	Href     string
	Dropdown []MenuItem
}

// SidebarItem is one entry in the secondary (sidebar) navigation. It is
// intentionally simpler than MenuItem: when a sidebar entry needs a dropdown,
// the children are borrowed from the TopNav item with the same Href.
type SidebarItem struct {
	Title string
	Href  string
}

// QuickLink is one entry in the quick-links panel. An empty Href marks a
// placeholder that is waiting for build-time injection; the renderer omits
// such entries. External links open in a new tab.
type QuickLink struct {
	Icon     string // a single glyph/emoji
	Title    string
	Href     string
	External bool
}

// Data is the aggregate navigation model. It is built once, shared by all
// renderers, and never mutated after construction. Sequence order is display
// order throughout.
type Data struct {
	TopNav         []MenuItem
	SidebarNav     []SidebarItem
	QuickLinks     []QuickLink
	ImportantDates []string
}

// courseHubTitle is the quick-link whose Href is filled in from course
// configuration at build time.
const courseHubTitle = "Course Hub"

// DefaultData returns the built-in navigation set for a course-syllabus site.
// Callers that need course-specific values (hub URL, important dates) should
// use FromConfig instead.
func DefaultData() *Data {
	return &Data{
		TopNav: []MenuItem{
			{Title: "Home", Href: "index.html"},
			{Title: "Schedule", Href: "schedule.html"},
			{Title: "How Your Grade is Determined", Href: "grading.html", Dropdown: []MenuItem{
				{Title: "Homework", Href: "grading.html#homework"},
				{Title: "Quizzes", Href: "grading.html#quizzes"},
				{Title: "Midterm Exams", Href: "grading.html#midterms"},
				{Title: "Final Exam", Href: "grading.html#final"},
			}},
			{Title: "Exams", Href: "exams.html", Dropdown: []MenuItem{
				{Title: "Midterm One", Href: "exams.html#midterm1"},
				{Title: "Midterm Two", Href: "exams.html#midterm2"},
				{Title: "Final Exam", Href: "exams.html#final"},
				{Title: "Make-up Policy", Href: "exams.html#makeup"},
			}},
			{Title: "Course Policies", Href: "policies.html"},
			{Title: "Resources", Href: "resources.html", Dropdown: []MenuItem{
				{Title: "Office Hours", Href: "resources.html#office-hours"},
				{Title: "Tutoring", Href: "resources.html#tutoring"},
				{Title: "Accommodations", Href: "resources.html#accommodations"},
			}},
		},
		SidebarNav: []SidebarItem{
			{Title: "Home", Href: "index.html"},
			{Title: "Schedule", Href: "schedule.html"},
			{Title: "How Your Grade is Determined", Href: "grading.html"},
			{Title: "Exams", Href: "exams.html"},
			{Title: "Course Policies", Href: "policies.html"},
			{Title: "Resources", Href: "resources.html"},
			{Title: "Contact", Href: "contact.html"},
		},
		QuickLinks: []QuickLink{
			{Icon: "🎯", Title: courseHubTitle, Href: "", External: true},
			{Icon: "📊", Title: "Canvas", Href: "https://canvas.instructure.com", External: true},
			{Icon: "📝", Title: "Gradescope", Href: "https://www.gradescope.com", External: true},
			{Icon: "💬", Title: "Discussion Board", Href: "https://edstem.org", External: true},
			{Icon: "📖", Title: "Textbook", Href: "resources.html#textbook"},
		},
	}
}
