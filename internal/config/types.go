package config

// Course identifies the course a syllabus site is built for.
type Course struct {
	Name   string `yaml:"name" koanf:"name"`
	Number string `yaml:"number" koanf:"number"`
	Term   string `yaml:"term" koanf:"term"`
	HubURL string `yaml:"hub_url" koanf:"hub_url"`
}

// Exam holds the display string for a single scheduled exam.
// Dates are opaque labels; no parsing happens anywhere downstream.
type Exam struct {
	Display string `yaml:"display" koanf:"display"`
}

// MakeupSession is one scheduled make-up quiz session.
type MakeupSession struct {
	Date string `yaml:"date" koanf:"date"`
}

// Exams groups the exam schedule for a course.
type Exams struct {
	Midterm1           Exam            `yaml:"midterm1" koanf:"midterm1"`
	Midterm2           Exam            `yaml:"midterm2" koanf:"midterm2"`
	MakeupQuizSessions []MakeupSession `yaml:"makeup_quiz_sessions" koanf:"makeup_quiz_sessions"`
}

// ImportantDates holds the registrar deadlines shown in the quick-links panel.
type ImportantDates struct {
	RegularDrop string `yaml:"regular_drop" koanf:"regular_drop"`
	LateDrop    string `yaml:"late_drop" koanf:"late_drop"`
	FinalsWeek  string `yaml:"finals_week" koanf:"finals_week"`
}

// Config is the per-course configuration, corresponding to
// data/<term>/<course>.yaml.
type Config struct {
	Course         Course         `yaml:"course" koanf:"course"`
	ImportantDates ImportantDates `yaml:"important_dates" koanf:"important_dates"`
	Exams          Exams          `yaml:"exams" koanf:"exams"`
	PagesDir       string         `yaml:"pages_dir" koanf:"pages_dir"`
	Exclude        []string       `yaml:"exclude" koanf:"exclude"`
	OutputDir      string         `yaml:"output_dir" koanf:"output_dir"`
}
