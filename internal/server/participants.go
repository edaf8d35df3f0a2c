package server

import (
	"net/http"

	"flounder-swim/internal/portal"
)

func (s *Server) getHome(w http.ResponseWriter, r *http.Request) {
	s.app.Home()
	s.render(w, http.StatusOK, "home.html", pageData{Path: "/", Title: "Flounder Swimming", View: heroText})
}

// heroText is markdown rendered on the landing page.
const heroText = "Система управления соревнованиями по плаванию. **Протоколы, участники, команды и награждение.**"

const participantsPath = "/participants"

func (s *Server) participants(w http.ResponseWriter, r *http.Request, fn func(p *portal.Participants)) {
	s.app.Participants(fn)
	seeOther(w, r, participantsPath)
}

func (s *Server) getParticipants(w http.ResponseWriter, r *http.Request) {
	var v portal.ParticipantsView
	s.app.Participants(func(p *portal.Participants) { v = p.View() })
	s.render(w, http.StatusOK, "participants.html", pageData{Path: participantsPath, Title: "Участники", View: v})
}

func (s *Server) addParticipant(w http.ResponseWriter, r *http.Request) {
	s.participants(w, r, func(p *portal.Participants) { p.Add() })
}

// filterParticipants changes only the filters present in the form.
func (s *Server) filterParticipants(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.participants(w, r, func(p *portal.Participants) {
		for _, name := range []string{"discipline", "team", "search"} {
			if v, ok := fields[name]; ok {
				p.SetFilter(name, v)
			}
		}
	})
}

func (s *Server) sortParticipants(w http.ResponseWriter, r *http.Request) {
	field := formFields(r)["field"]
	s.participants(w, r, func(p *portal.Participants) { p.Sort(field) })
}

func (s *Server) cancelParticipant(w http.ResponseWriter, r *http.Request) {
	s.participants(w, r, func(p *portal.Participants) { p.Cancel() })
}

func (s *Server) editParticipant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.participants(w, r, func(p *portal.Participants) { p.Edit(id) })
}

func (s *Server) saveParticipant(w http.ResponseWriter, r *http.Request) {
	id, fields := r.PathValue("id"), formFields(r)
	s.participants(w, r, func(p *portal.Participants) { p.Submit(id, fields) })
}

func (s *Server) deleteParticipant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.participants(w, r, func(p *portal.Participants) { p.Delete(id) })
}
