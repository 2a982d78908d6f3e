package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"film-room/metrics"
	"film-room/rollup"
	"film-room/templates"

	"github.com/go-chi/chi/v5"
)

type seriesResponse struct {
	Efficiency   metrics.Series           `json:"efficiency"`
	Contribution metrics.Series           `json:"contribution"`
	Players      []templates.PlayerSeries `json:"players"`
}

type gameOverrides struct {
	NotesPath   string `json:"notes_path"`
	Quarterback string `json:"quarterback"`
}

func (app *application) apiGamesHandler(w http.ResponseWriter, r *http.Request) {
	games, err := listGames(app.db)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	links := make([]templates.GameLink, len(games))
	for i, g := range games {
		links[i] = gameLink(g)
	}
	respondJSON(w, http.StatusOK, links)
}

// apiMetricsHandler returns the team metrics keyed by name; undefined ones are null.
func (app *application) apiMetricsHandler(w http.ResponseWriter, r *http.Request) {
	_, stats, err := app.loadGame(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}
	out := make(map[string]metrics.Value, len(stats.Metrics))
	for _, m := range stats.Metrics {
		out[m.Name] = m.Value
	}
	respondJSON(w, http.StatusOK, out)
}

func (app *application) apiPlayersHandler(w http.ResponseWriter, r *http.Request) {
	_, stats, err := app.loadGame(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rollup.Index(stats.Rollups))
}

func (app *application) apiSeriesHandler(w http.ResponseWriter, r *http.Request) {
	_, stats, err := app.loadGame(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, seriesResponse{
		Efficiency:   stats.Efficiency,
		Contribution: stats.Contribution,
		Players:      stats.Players,
	})
}

// apiUpdateGameHandler sets a game's notes file and quarterback. Empty values
// fall back to the service defaults.
func (app *application) apiUpdateGameHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req gameOverrides
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if err := updateGameOverrides(app.db, slug, req.NotesPath, req.Quarterback); err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}
	fmt.Printf("✅ Updated %s: quarterback=%q notes=%q\n", slug, req.Quarterback, req.NotesPath)

	g, err := getGame(app.db, slug)
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, gameOverrides{NotesPath: g.NotesPath, Quarterback: g.Quarterback})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
