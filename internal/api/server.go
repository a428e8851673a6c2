package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"touchline/internal/career"
	"touchline/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg    config.APIConfig
	log    *slog.Logger
	engine *career.Engine
	mux    *chi.Mux
}

func New(cfg config.APIConfig, logger *slog.Logger, engine *career.Engine) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		log:    logger,
		engine: engine,
		mux:    chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/career", s.handleCareer)
		r.Get("/standings", s.handleStandings)

		r.Get("/match/live", s.handleMatchLive)
		r.Get("/match/last", s.handleMatchLast)
		r.Post("/match/start", s.handleMatchStart)
		r.Post("/match/cancel", s.handleMatchCancel)

		r.Post("/career/pledge", s.handlePledge)
		r.Post("/career/resign", s.handleResign)
		r.Post("/career/offers/{id}/accept", s.handleAcceptOffer)

		r.Post("/players/{id}/renew", s.handleRenewContract)
		r.Post("/players/{id}/starter", s.handleToggleStarter)
		r.Put("/tactics", s.handleUpdateTactics)

		r.Post("/transfers/refresh", s.handleRefreshTransfers)
		r.Post("/transfers/{id}/buy", s.handleBuyPlayer)

		r.Post("/academy/recruit", s.handleRecruitProspect)
		r.Post("/academy/upgrade", s.handleUpgradeAcademy)

		r.Post("/save", s.handleSave)
	})
}

func (s *Server) handleCareer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	tier := s.engine.View().Club.Tier
	if raw := r.URL.Query().Get("tier"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "tier must be a positive integer")
			return
		}
		tier = n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tier":      tier,
		"standings": s.engine.Standings(tier),
	})
}

func (s *Server) handleMatchLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Live())
}

func (s *Server) handleMatchLast(w http.ResponseWriter, r *http.Request) {
	result, ok := s.engine.LastResult()
	if !ok {
		writeError(w, http.StatusNotFound, "no match played yet")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMatchStart(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Speed int `json:"speed"`
	}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if in.Speed == 0 {
		in.Speed = s.cfg.MatchSpeed
	}
	out, err := s.engine.StartMatch(r.Context(), in.Speed)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMatchCancel(w http.ResponseWriter, r *http.Request) {
	s.engine.CancelMatch()
	writeJSON(w, http.StatusOK, map[string]any{"cancelled": true})
}

func (s *Server) handlePledge(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.PledgeToBoard(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleResign(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ResignPost(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleAcceptOffer(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.AcceptJobOffer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleRenewContract(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.RenewContract(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleToggleStarter(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ToggleStarter(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleUpdateTactics(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Formation *string                `json:"formation"`
		Mentality *career.Mentality      `json:"mentality"`
		Focus     *career.Focus          `json:"focus"`
		Roles     map[string]career.Role `json:"roles"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	update := career.TacticsUpdate{
		Formation: in.Formation,
		Mentality: in.Mentality,
		Focus:     in.Focus,
		Roles:     in.Roles,
	}
	if err := s.engine.UpdateTactics(r.Context(), update); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleRefreshTransfers(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.RefreshTransferMarket(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transfers": s.engine.View().Transfers})
}

func (s *Server) handleBuyPlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.BuyPlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleRecruitProspect(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.RecruitProspect(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleUpgradeAcademy(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.UpgradeAcademy(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Save(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": true})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, career.ErrInsufficientFunds), errors.Is(err, career.ErrInvalidLineup):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, career.ErrMatchInProgress), errors.Is(err, career.ErrLineupFull),
		errors.Is(err, career.ErrNotEmployed), errors.Is(err, career.ErrNoCrisis),
		errors.Is(err, career.ErrNotUnemployed), errors.Is(err, career.ErrAcademyMaxed),
		errors.Is(err, career.ErrSeasonComplete):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, career.ErrPlayerNotFound), errors.Is(err, career.ErrOfferNotFound),
		errors.Is(err, career.ErrNoTransfer):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, career.ErrOracleFailure):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
