package nav

import "github.com/syllabuild/syllabuild/internal/config"

// DatesFromConfig assembles the important-dates display strings from course
// configuration. The order is fixed: regular drop, midterms, make-up quiz
// sessions, late drop, finals week. Unset fields are skipped. The strings
// are opaque labels; nothing downstream parses them.
func DatesFromConfig(cfg *config.Config) []string {
	var dates []string
	if cfg.ImportantDates.RegularDrop != "" {
		dates = append(dates, "Regular Drop Deadline: "+cfg.ImportantDates.RegularDrop)
	}
	if cfg.Exams.Midterm1.Display != "" {
		dates = append(dates, "Midterm One: "+cfg.Exams.Midterm1.Display)
	}
	if cfg.Exams.Midterm2.Display != "" {
		dates = append(dates, "Midterm Two: "+cfg.Exams.Midterm2.Display)
	}
	for _, session := range cfg.Exams.MakeupQuizSessions {
		if session.Date != "" {
			dates = append(dates, "Make-up Quiz Session: "+session.Date)
		}
	}
	if cfg.ImportantDates.LateDrop != "" {
		dates = append(dates, "Late Drop: "+cfg.ImportantDates.LateDrop)
	}
	if cfg.ImportantDates.FinalsWeek != "" {
		dates = append(dates, "Finals Week: "+cfg.ImportantDates.FinalsWeek)
	}
	return dates
}

// FromConfig returns the default navigation set customized for a course:
// the Course Hub quick-link gets its href from configuration and the
// important dates are filled in. With no hub URL configured the entry keeps
// its empty placeholder href, and the renderer's skip rule hides it.
func FromConfig(cfg *config.Config) *Data {
	data := DefaultData()

	if cfg.Course.HubURL != "" {
		for i := range data.QuickLinks {
			if data.QuickLinks[i].Title == courseHubTitle {
				data.QuickLinks[i].Href = cfg.Course.HubURL
				break
			}
		}
	}

	data.ImportantDates = DatesFromConfig(cfg)
	return data
}
