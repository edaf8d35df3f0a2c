package server

import (
	"net/http"

	"flounder-swim/internal/portal"
)

const teamsPath = "/teams"

func (s *Server) getTeams(w http.ResponseWriter, r *http.Request) {
	var v portal.TeamsView
	s.app.Teams(func(t *portal.Teams) { v = t.View() })
	s.render(w, http.StatusOK, "teams.html", pageData{Path: teamsPath, Title: "Команды", View: v})
}

// teams runs fn on the teams page and redirects back to it.
func (s *Server) teams(w http.ResponseWriter, r *http.Request, fn func(t *portal.Teams)) {
	s.app.Teams(fn)
	seeOther(w, r, teamsPath)
}

func (s *Server) addTeam(w http.ResponseWriter, r *http.Request) {
	s.teams(w, r, func(t *portal.Teams) { t.Add() })
}

func (s *Server) cancelTeam(w http.ResponseWriter, r *http.Request) {
	s.teams(w, r, func(t *portal.Teams) { t.Cancel() })
}

func (s *Server) editTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.teams(w, r, func(t *portal.Teams) { t.Edit(id) })
}

func (s *Server) saveTeam(w http.ResponseWriter, r *http.Request) {
	id, fields := r.PathValue("id"), formFields(r)
	s.teams(w, r, func(t *portal.Teams) { t.Submit(id, fields) })
}

func (s *Server) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.teams(w, r, func(t *portal.Teams) { t.Delete(id) })
}

// The member buttons post the team form, so typed team fields are kept in
// the working copy before the member changes.
func (s *Server) addMember(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.teams(w, r, func(t *portal.Teams) {
		t.Apply(fields)
		t.AddMember()
	})
}

func (s *Server) saveMember(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.teams(w, r, func(t *portal.Teams) {
		t.Apply(fields)
		t.SubmitMember(fields)
	})
}

func (s *Server) editMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.teams(w, r, func(t *portal.Teams) { t.EditMember(id) })
}

func (s *Server) deleteMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.teams(w, r, func(t *portal.Teams) { t.DeleteMember(id) })
}
