package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode"

	"github.com/Adarshkumar111/Maintenance/internal/utils"
)

//go:embed *.html
var files embed.FS

// Load parses every page template together with the shared layout
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Funcs returns the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatTime": utils.FormatDateTime,
		"formatTimePtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return utils.FormatDateTime(*t)
		},
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"hours": func(d time.Duration) int {
			return int(d / time.Hour)
		},
		"title":      capitalize,
		"badgeClass": badgeClass,
		"add": func(a, b int) int {
			return a + b
		},
		"percent": func(part, total int) int {
			if total <= 0 {
				return 0
			}
			return part * 100 / total
		},
	}
}

// capitalize upper-cases the first letter, so "in-progress" becomes "In-progress"
func capitalize(v any) string {
	s := fmt.Sprint(v)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// badgeClass maps a status or urgency value to its badge colour class
func badgeClass(v any) string {
	switch strings.ToLower(fmt.Sprint(v)) {
	case "pending", "medium", "requested":
		return "badge badge-yellow"
	case "in-progress", "available":
		return "badge badge-blue"
	case "completed", "approved", "collected", "low":
		return "badge badge-green"
	case "high", "rejected":
		return "badge badge-red"
	default:
		return "badge"
	}
}
