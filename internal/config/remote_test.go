package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const testRoster = `courses:
  sp26:
    math140b:
      course:
        name: Calculus II
        hub_url: https://hub.example.edu/math140b
      important_dates:
        regular_drop: January 30
    math140a:
      course:
        name: Calculus I
  fa25:
    math115:
      course:
        name: Precalculus
        term: fall-2025
`

func TestFetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(testRoster))
	}))
	defer srv.Close()

	configs, err := FetchRemote(srv.URL)
	if err != nil {
		t.Fatalf("FetchRemote failed: %v", err)
	}
	if len(configs) != 3 {
		t.Fatalf("courses = %d, want 3", len(configs))
	}

	cfg := configs[CourseRef{Term: "sp26", Course: "math140b"}]
	if cfg == nil {
		t.Fatal("sp26/math140b missing from roster")
	}
	if cfg.Course.Name != "Calculus II" {
		t.Errorf("name = %q, want %q", cfg.Course.Name, "Calculus II")
	}
	if cfg.Course.HubURL != "https://hub.example.edu/math140b" {
		t.Errorf("hub_url = %q", cfg.Course.HubURL)
	}
	if cfg.ImportantDates.RegularDrop != "January 30" {
		t.Errorf("regular_drop = %q", cfg.ImportantDates.RegularDrop)
	}

	// Roster keys fill in blank term/number; defaults apply to the rest.
	if cfg.Course.Term != "sp26" || cfg.Course.Number != "math140b" {
		t.Errorf("term/number = %s/%s, want sp26/math140b", cfg.Course.Term, cfg.Course.Number)
	}
	if cfg.PagesDir != "pages" {
		t.Errorf("pages_dir = %q, want default", cfg.PagesDir)
	}

	// An explicit term is kept.
	if got := configs[CourseRef{Term: "fa25", Course: "math115"}].Course.Term; got != "fall-2025" {
		t.Errorf("explicit term = %q, want %q", got, "fall-2025")
	}

	refs := RemoteCourses(configs)
	want := []CourseRef{
		{Term: "fa25", Course: "math115"},
		{Term: "sp26", Course: "math140a"},
		{Term: "sp26", Course: "math140b"},
	}
	if len(refs) != len(want) {
		t.Fatalf("refs = %d, want %d", len(refs), len(want))
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("ref %d = %v, want %v", i, refs[i], want[i])
		}
	}
}

func TestFetchRemoteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchRemote(srv.URL); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestFetchRemoteEmptyRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("courses: {}\n"))
	}))
	defer srv.Close()

	if _, err := FetchRemote(srv.URL); err == nil {
		t.Error("expected error for empty roster")
	}
}
