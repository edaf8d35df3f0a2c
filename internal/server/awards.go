package server

import (
	"net/http"

	"flounder-swim/internal/portal"
)

func (s *Server) getAwards(w http.ResponseWriter, r *http.Request) {
	var v portal.AwardsView
	s.app.Awards(func(a *portal.Awards) {
		if r.URL.Query().Has("discipline") {
			a.SetDiscipline(r.URL.Query().Get("discipline"))
		}
		v = a.View()
	})
	s.render(w, http.StatusOK, "awards.html", pageData{Path: "/awards", Title: "Награждение", View: v})
}
