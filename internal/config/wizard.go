package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive setup for a new course and returns the
// resulting Config. The config is saved to data/<term>/<course>.yaml.
func RunWizard(dataDir string) (*Config, error) {
	fmt.Println("Welcome to syllabuild! Let's set up a course.")
	fmt.Println()

	cfg := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label: "Course name (e.g. Calculus II)",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("course name is required")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("course name: %w", err)
	}
	cfg.Course.Name = strings.TrimSpace(name)

	numberPrompt := promptui.Prompt{
		Label: "Course number (e.g. math140b)",
		Validate: func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return fmt.Errorf("course number is required")
			}
			if strings.ContainsAny(s, "/ ") {
				return fmt.Errorf("course number must not contain slashes or spaces")
			}
			return nil
		},
	}
	number, err := numberPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("course number: %w", err)
	}
	cfg.Course.Number = strings.ToLower(strings.TrimSpace(number))

	termPrompt := promptui.Prompt{
		Label:   "Term directory (e.g. sp26)",
		Default: "sp26",
	}
	term, err := termPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	cfg.Course.Term = strings.TrimSpace(term)

	hubPrompt := promptui.Prompt{
		Label:   "Course hub URL (leave blank to fill in later)",
		Default: "",
	}
	hub, err := hubPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hub url: %w", err)
	}
	cfg.Course.HubURL = strings.TrimSpace(hub)

	dir := filepath.Join(dataDir, cfg.Course.Term)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, cfg.Course.Number+".yaml")
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nSaved %s\n", path)
	return cfg, nil
}
