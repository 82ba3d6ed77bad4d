// Package dashboard serves the browser UI: season-scoped standings,
// calendar and results pages with tables and SVG charts.
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/service"
	"github.com/hajni77/f1-analytics/pkg/settings"
)

type Manager struct {
	r     *mux.Router
	svc   *service.Service
	store *settings.Manager
	live  *Live
}

func NewManager(svc *service.Service, store *settings.Manager, live *Live) *Manager {
	m := &Manager{
		r:     mux.NewRouter(),
		svc:   svc,
		store: store,
		live:  live,
	}
	m.routes()
	return m
}

func (m *Manager) Router() *mux.Router {
	return m.r
}

func (m *Manager) routes() {
	m.r.HandleFunc("/", m.handleSeasons).Methods(http.MethodGet)
	m.r.HandleFunc("/standings/drivers", m.handleDriverStandings).Methods(http.MethodGet)
	m.r.HandleFunc("/standings/teams", m.handleTeamStandings).Methods(http.MethodGet)
	m.r.HandleFunc("/calendar", m.handleCalendar).Methods(http.MethodGet)
	m.r.HandleFunc("/results/{year:[0-9]+}/{round:[0-9]+}", m.handleRaceResults).Methods(http.MethodGet)
	m.r.HandleFunc("/charts/drivers.svg", m.handleDriverChart).Methods(http.MethodGet)
	m.r.HandleFunc("/charts/teams.svg", m.handleTeamChart).Methods(http.MethodGet)
	m.r.HandleFunc("/preferences/season", m.handleSetSeason).Methods(http.MethodPost)
	if m.live != nil {
		m.r.HandleFunc("/ws/standings", m.live.handleWebSocket)
	}
}

// Serve blocks until ctx is cancelled, then shuts the server down with
// a deadline.
func (m *Manager) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.r,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Infof("dashboard listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("dashboard shutting down")
	return srv.Shutdown(shutdownCtx)
}
