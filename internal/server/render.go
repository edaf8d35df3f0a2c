package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// md escapes raw HTML in its input; descriptions are typed by admins.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

var funcs = template.FuncMap{
	"renderMarkdown":  renderMarkdown,
	"competitionType": func(c models.CompetitionType) string { return c.Label() },
	"gender":          func(g models.Gender) string { return g.Label() },
	"isAll":           func(v string) bool { return v == collection.AllValue },
	"sortMark": func(field, active string, dir collection.Direction) string {
		switch {
		case field != active:
			return ""
		case dir == collection.Desc:
			return "▼"
		}
		return "▲"
	},
}

type navItem struct {
	Path  string
	Label string
}

var nav = []navItem{
	{Path: "/protocol", Label: "Протокол"},
	{Path: "/participants", Label: "Участники"},
	{Path: "/teams", Label: "Команды"},
	{Path: "/awards", Label: "Награждение"},
	{Path: "/regulations", Label: "Регламент"},
}

// pageData is what layout.html sees; View is the page's own data.
type pageData struct {
	Path   string
	Title  string
	Nav    []navItem
	Notice string
	View   any
}

type views map[string]*template.Template

var pages = []string{
	"home.html",
	"participants.html",
	"teams.html",
	"protocol.html",
	"awards.html",
	"regulations.html",
}

// parseViews pairs every page with the shared layout.
func parseViews() (views, error) {
	v := views{}
	for _, name := range pages {
		tpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		v[name] = tpl
	}
	return v, nil
}

// render executes into a buffer so a template error never leaves a half
// written page behind a 200.
func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	tpl, ok := s.views[name]
	if !ok {
		s.internalError(w, fmt.Errorf("unknown view %q", name))
		return
	}
	data.Nav = nav
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		s.internalError(w, fmt.Errorf("render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
