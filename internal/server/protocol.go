package server

import (
	"errors"
	"net/http"

	"flounder-swim/internal/portal"
)

const protocolPath = "/protocol"

func (s *Server) getProtocol(w http.ResponseWriter, r *http.Request) {
	s.renderProtocol(w, http.StatusOK, "")
}

func (s *Server) renderProtocol(w http.ResponseWriter, status int, notice string) {
	var v portal.ProtocolsView
	s.app.Protocols(func(p *portal.Protocols) { v = p.View() })
	s.render(w, status, "protocol.html", pageData{Path: protocolPath, Title: "Протоколы соревнований", Notice: notice, View: v})
}

func (s *Server) protocols(w http.ResponseWriter, r *http.Request, fn func(p *portal.Protocols)) {
	s.app.Protocols(fn)
	seeOther(w, r, protocolPath)
}

func (s *Server) addProtocol(w http.ResponseWriter, r *http.Request) {
	s.protocols(w, r, func(p *portal.Protocols) { p.Create() })
}

func (s *Server) saveProtocol(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.protocols(w, r, func(p *portal.Protocols) { p.Submit(fields) })
}

func (s *Server) closeProtocol(w http.ResponseWriter, r *http.Request) {
	s.protocols(w, r, func(p *portal.Protocols) { p.Close() })
}

// applyProtocol keeps the dialog open; the structure buttons post the
// protocol form too so typed values survive the round trip.
func (s *Server) applyProtocol(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.protocols(w, r, func(p *portal.Protocols) { p.Apply(fields) })
}

func (s *Server) addDistance(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.protocols(w, r, func(p *portal.Protocols) {
		p.Apply(fields)
		p.AddDistance()
	})
}

func (s *Server) openProtocol(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.protocols(w, r, func(p *portal.Protocols) { p.Open(id) })
}

func (s *Server) deleteProtocol(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.protocols(w, r, func(p *portal.Protocols) { p.Delete(id) })
}

func (s *Server) addHeat(w http.ResponseWriter, r *http.Request) {
	id, fields := r.PathValue("id"), formFields(r)
	s.protocols(w, r, func(p *portal.Protocols) {
		p.Apply(fields)
		p.AddHeat(id)
	})
}

func (s *Server) editLane(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.protocols(w, r, func(p *portal.Protocols) { p.EditLane(id) })
}

func (s *Server) saveLane(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r)
	s.protocols(w, r, func(p *portal.Protocols) { p.SubmitLane(fields) })
}

func (s *Server) cancelLane(w http.ResponseWriter, r *http.Request) {
	s.protocols(w, r, func(p *portal.Protocols) { p.CancelLane() })
}

// downloadProtocol shows the protocol page with a notice instead of a file.
func (s *Server) downloadProtocol(w http.ResponseWriter, r *http.Request) {
	var err error
	s.app.Protocols(func(p *portal.Protocols) { err = p.Download() })
	if errors.Is(err, portal.ErrDownloadNotImplemented) {
		s.renderProtocol(w, http.StatusNotImplemented, portal.DownloadNotice)
		return
	}
	if err != nil {
		s.internalError(w, err)
		return
	}
	seeOther(w, r, protocolPath)
}
