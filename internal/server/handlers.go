package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/catalog"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/preview"
	"github.com/Faultbox/planetgen/internal/system"
)

func (s *Server) handlePlanet(w http.ResponseWriter, r *http.Request) {
	p, ok := s.planetFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Summarize(p))
}

func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	p, ok := s.planetFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, PlacementsMessage{Type: msgPlacements, Placements: placementsJSON(p.Placements)})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	mode, err := preview.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, ok := s.planetFromQuery(w, r)
	if !ok {
		return
	}

	img, err := preview.Render(p, mode, s.cfg.PreviewWidth, s.cfg.PreviewHeight)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	preview.MarkPlacements(img, p.Placements)

	w.Header().Set("Content-Type", "image/png")
	if err := preview.Encode(w, img); err != nil {
		s.log.Warn("writing preview", zap.Error(err))
	}
}

func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	seed, err := strconv.ParseInt(mux.Vars(r)["seed"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	base := s.base
	if depth := r.URL.Query().Get("depth"); depth != "" {
		n, err := strconv.Atoi(depth)
		if err != nil || n < 0 || (s.cfg.MaxDepth > 0 && n > s.cfg.MaxDepth) {
			writeError(w, http.StatusBadRequest, errors.New("invalid depth"))
			return
		}
		base.SubdivisionDepth = n
	}

	sys, err := system.Generate(r.Context(), seed, s.sysCfg, base, s.opts)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := SystemSummary{Seed: seed, Planets: make([]PlanetSummary, len(sys.Planets))}
	for i, p := range sys.Planets {
		out.Planets[i] = Summarize(p)
		if s.store != nil {
			if _, err := s.store.Record(r.Context(), p, &seed); err != nil {
				s.log.Warn("catalog record failed", zap.Error(err))
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCatalogList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("catalog disabled"))
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, errors.New("invalid limit"))
			return
		}
		limit = n
	}

	entries, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entries == nil {
		entries = []*catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCatalogGet(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("catalog disabled"))
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	e, err := s.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, e)
	}
}

// planetFromQuery generates the planet described by the query string,
// writing an error response on failure.
func (s *Server) planetFromQuery(w http.ResponseWriter, r *http.Request) (*planet.Planet, bool) {
	req, err := parseRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	p, err := s.generate(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return nil, false
	}
	return p, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, planet.ErrConfiguration),
		errors.Is(err, system.ErrInvalidLayout):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, StatusMessage{Type: msgError, Error: err.Error()})
}
