package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PagesDir != "pages" {
		t.Errorf("expected default pages_dir %q, got %q", "pages", cfg.PagesDir)
	}
	if cfg.OutputDir != "docs" {
		t.Errorf("expected default output_dir %q, got %q", "docs", cfg.OutputDir)
	}
	if len(cfg.Exclude) == 0 {
		t.Error("expected default exclude patterns")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "math140b.yaml")

	original := DefaultConfig()
	original.Course = Course{
		Name:   "Calculus II",
		Number: "math140b",
		Term:   "sp26",
		HubURL: "https://hub.example.edu/math140b",
	}
	original.ImportantDates = ImportantDates{
		RegularDrop: "January 30",
		LateDrop:    "February 27",
		FinalsWeek:  "March 16-20",
	}
	original.Exams = Exams{
		Midterm1:           Exam{Display: "February 6, in class"},
		MakeupQuizSessions: []MakeupSession{{Date: "February 13"}},
	}
	original.OutputDir = "out"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Course != original.Course {
		t.Errorf("course: got %+v, want %+v", loaded.Course, original.Course)
	}
	if loaded.ImportantDates != original.ImportantDates {
		t.Errorf("important_dates: got %+v, want %+v", loaded.ImportantDates, original.ImportantDates)
	}
	if loaded.Exams.Midterm1 != original.Exams.Midterm1 {
		t.Errorf("midterm1: got %+v, want %+v", loaded.Exams.Midterm1, original.Exams.Midterm1)
	}
	if len(loaded.Exams.MakeupQuizSessions) != 1 || loaded.Exams.MakeupQuizSessions[0].Date != "February 13" {
		t.Errorf("makeup sessions: got %+v", loaded.Exams.MakeupQuizSessions)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PagesDir != "pages" {
		t.Errorf("pages_dir = %q, want default", cfg.PagesDir)
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course.yaml")

	cfg := DefaultConfig()
	cfg.Course.Name = "Calculus II"
	cfg.Course.Term = "sp26"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SYLLABUILD_COURSE__HUB_URL", "https://override.example.edu")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Course.HubURL != "https://override.example.edu" {
		t.Errorf("hub_url = %q, want env override", loaded.Course.HubURL)
	}
	if loaded.Course.Name != "Calculus II" {
		t.Errorf("name = %q, want file value preserved", loaded.Course.Name)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Course.Name = "Calculus II"
	valid.Course.Term = "sp26"
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing name", func(c *Config) { c.Course.Name = "" }},
		{"missing term", func(c *Config) { c.Course.Term = "" }},
		{"missing pages_dir", func(c *Config) { c.PagesDir = "" }},
		{"missing output_dir", func(c *Config) { c.OutputDir = "" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Course.Name = "Calculus II"
		cfg.Course.Term = "sp26"
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Course = Course{Name: "Calculus II", Number: "math140b", Term: "sp26"}
	cfg.ImportantDates.RegularDrop = "January 30"

	if err := cfg.SaveCache(dataDir, "sp26", "math140b"); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(dataDir, "sp26", "math140b")
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded.Course != cfg.Course {
		t.Errorf("course: got %+v, want %+v", loaded.Course, cfg.Course)
	}
	if loaded.ImportantDates.RegularDrop != "January 30" {
		t.Errorf("regular_drop = %q, want cached value", loaded.ImportantDates.RegularDrop)
	}
}

func TestLoadCacheMissing(t *testing.T) {
	if _, err := LoadCache(t.TempDir(), "sp26", "math140b"); err == nil {
		t.Error("expected error for missing cache file")
	}
}

func TestCourseListing(t *testing.T) {
	dataDir := t.TempDir()

	mk := func(term, course string) {
		cfg := DefaultConfig()
		cfg.Course = Course{Name: course, Number: course, Term: term}
		if err := cfg.SaveCache(dataDir, term, course); err != nil {
			t.Fatalf("SaveCache: %v", err)
		}
		if err := cfg.Save(filepath.Join(dataDir, term, course+".yaml")); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	mk("sp26", "math141b")
	mk("sp26", "math140b")
	mk("fa25", "math198")

	courses, err := Courses(dataDir)
	if err != nil {
		t.Fatalf("Courses failed: %v", err)
	}
	want := []CourseRef{
		{Term: "fa25", Course: "math198"},
		{Term: "sp26", Course: "math140b"},
		{Term: "sp26", Course: "math141b"},
	}
	if len(courses) != len(want) {
		t.Fatalf("courses = %d, want %d", len(courses), len(want))
	}
	for i := range want {
		if courses[i] != want[i] {
			t.Errorf("course %d = %v, want %v", i, courses[i], want[i])
		}
	}

	cached, err := CachedCourses(dataDir)
	if err != nil {
		t.Fatalf("CachedCourses failed: %v", err)
	}
	if len(cached) != len(want) {
		t.Errorf("cached courses = %d, want %d", len(cached), len(want))
	}
}

func TestCourseListingMissingDir(t *testing.T) {
	courses, err := Courses(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Courses failed: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("courses = %d, want 0", len(courses))
	}
}
