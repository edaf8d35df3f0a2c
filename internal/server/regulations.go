package server

import (
	"net/http"

	"flounder-swim/internal/portal"
)

const regulationsPath = "/regulations"

func (s *Server) getRegulations(w http.ResponseWriter, r *http.Request) {
	var v portal.RegulationsView
	s.app.Regulations(func(reg *portal.Regulations) { v = reg.View() })
	s.render(w, http.StatusOK, "regulations.html", pageData{Path: regulationsPath, Title: "Регламент", View: v})
}

func (s *Server) regulations(w http.ResponseWriter, r *http.Request, fn func(reg *portal.Regulations)) {
	s.app.Regulations(fn)
	seeOther(w, r, regulationsPath)
}

func (s *Server) addHeatName(w http.ResponseWriter, r *http.Request) {
	s.regulations(w, r, func(reg *portal.Regulations) { reg.AddHeat() })
}

func (s *Server) cancelHeatName(w http.ResponseWriter, r *http.Request) {
	s.regulations(w, r, func(reg *portal.Regulations) { reg.CancelHeat() })
}

func (s *Server) editHeatName(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.regulations(w, r, func(reg *portal.Regulations) { reg.EditHeat(id) })
}

func (s *Server) saveHeatName(w http.ResponseWriter, r *http.Request) {
	id, fields := r.PathValue("id"), formFields(r)
	s.regulations(w, r, func(reg *portal.Regulations) { reg.SubmitHeat(id, fields) })
}

func (s *Server) deleteHeatName(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.regulations(w, r, func(reg *portal.Regulations) { reg.DeleteHeat(id) })
}

func (s *Server) addAge(w http.ResponseWriter, r *http.Request) {
	s.regulations(w, r, func(reg *portal.Regulations) { reg.AddAge() })
}

func (s *Server) cancelAge(w http.ResponseWriter, r *http.Request) {
	s.regulations(w, r, func(reg *portal.Regulations) { reg.CancelAge() })
}

func (s *Server) editAge(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.regulations(w, r, func(reg *portal.Regulations) { reg.EditAge(id) })
}

func (s *Server) saveAge(w http.ResponseWriter, r *http.Request) {
	id, fields := r.PathValue("id"), formFields(r)
	s.regulations(w, r, func(reg *portal.Regulations) { reg.SubmitAge(id, fields) })
}

func (s *Server) deleteAge(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.regulations(w, r, func(reg *portal.Regulations) { reg.DeleteAge(id) })
}
