package nav

import (
	"testing"

	"github.com/syllabuild/syllabuild/internal/config"
)

func fullConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Course = config.Course{
		Name:   "Calculus II",
		Number: "math140b",
		Term:   "sp26",
		HubURL: "https://hub.example.edu/math140b",
	}
	cfg.ImportantDates = config.ImportantDates{
		RegularDrop: "January 30",
		LateDrop:    "February 27",
		FinalsWeek:  "March 16-20",
	}
	cfg.Exams = config.Exams{
		Midterm1: config.Exam{Display: "February 6, in class"},
		Midterm2: config.Exam{Display: "March 6, in class"},
		MakeupQuizSessions: []config.MakeupSession{
			{Date: "February 13"},
			{Date: "March 13"},
		},
	}
	return cfg
}

func TestDatesFromConfigOrder(t *testing.T) {
	got := DatesFromConfig(fullConfig())

	want := []string{
		"Regular Drop Deadline: January 30",
		"Midterm One: February 6, in class",
		"Midterm Two: March 6, in class",
		"Make-up Quiz Session: February 13",
		"Make-up Quiz Session: March 13",
		"Late Drop: February 27",
		"Finals Week: March 16-20",
	}

	if len(got) != len(want) {
		t.Fatalf("dates = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("date %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDatesFromConfigSkipsUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ImportantDates.FinalsWeek = "March 16-20"

	got := DatesFromConfig(cfg)
	if len(got) != 1 {
		t.Fatalf("dates = %d, want 1", len(got))
	}
	if got[0] != "Finals Week: March 16-20" {
		t.Errorf("date = %q, want finals week only", got[0])
	}
}

func TestFromConfigFillsHubURL(t *testing.T) {
	data := FromConfig(fullConfig())

	var hub *QuickLink
	for i := range data.QuickLinks {
		if data.QuickLinks[i].Title == "Course Hub" {
			hub = &data.QuickLinks[i]
		}
	}
	if hub == nil {
		t.Fatal("Course Hub entry missing")
	}
	if hub.Href != "https://hub.example.edu/math140b" {
		t.Errorf("hub href = %q, want configured URL", hub.Href)
	}
	if !hub.External {
		t.Error("hub link should stay external")
	}
}

func TestFromConfigKeepsPlaceholderWithoutHubURL(t *testing.T) {
	cfg := fullConfig()
	cfg.Course.HubURL = ""

	r := NewRenderer(FromConfig(cfg))
	fragment, err := r.QuickLinks()
	if err != nil {
		t.Fatalf("QuickLinks: %v", err)
	}

	// The placeholder survives in the model but the renderer omits it.
	doc := parseFragment(t, fragment)
	if doc.Find(`a:contains("Course Hub")`).Length() != 0 {
		t.Error("unfilled placeholder must not render")
	}
}
