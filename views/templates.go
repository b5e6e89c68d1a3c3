package views

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"sync"

	"tierranativa/itinerary"
	"tierranativa/utils"
)

// Templates holds parsed templates. Every page file is parsed against the
// shared base/nav/footer partials and cached at startup.
type Templates struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
}

var funcs = template.FuncMap{
	"formatCurrency": utils.FormatCurrency,
	"capitalize":     utils.Capitalize,
	"slugify":        utils.Slugify,
	"parseDays":      itinerary.ParseDays,
	"splitSentences": itinerary.SplitSentences,
	"add":            func(a, b int) int { return a + b },
	"sub":            func(a, b int) int { return a - b },
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
}

// LoadTemplates parses every page under dir/pages against the partials
// under dir/partials.
func LoadTemplates(dir string) (*Templates, error) {
	partials, err := filepath.Glob(filepath.Join(dir, "partials", "*.html"))
	if err != nil {
		return nil, err
	}
	pages, err := filepath.Glob(filepath.Join(dir, "pages", "*.html"))
	if err != nil {
		return nil, err
	}

	t := &Templates{cache: make(map[string]*template.Template)}
	for _, page := range pages {
		name := filepath.Base(page)
		files := append(append([]string{}, partials...), page)
		tmpl, err := template.New(name).Funcs(funcs).ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		t.cache[name] = tmpl
	}
	return t, nil
}

// Get returns a parsed page template by file name.
func (t *Templates) Get(name string) *template.Template {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cache[name]
}

// Execute renders a page through its base layout.
func (t *Templates) Execute(w http.ResponseWriter, name string, data any) {
	tmpl := t.Get(name)
	if tmpl == nil {
		log.Printf("template %s not found", name)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
