package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"film-room/plays"
	"film-room/templates"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const missingPlaysMessage = "Play file not found. Please check the file path."

type application struct {
	config Config
	db     *sql.DB
	tables *tableCache
}

func main() {
	config := loadConfig()

	db, err := openDB(config.DBPath)
	if err != nil {
		fmt.Printf("❌ Database error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := syncGames(db, config)
	if err != nil {
		fmt.Printf("❌ Game discovery failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🏈 Registered %d game(s) from %s\n", n, config.DataDir)

	app := &application{
		config: config,
		db:     db,
		tables: newTableCache(),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      app.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		fmt.Printf("🎬 Film Room is running on http://localhost:%d\n", config.Port)
		fmt.Printf("   Team: %s, Quarterback: %s\n", config.Team, config.Quarterback)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("❌ Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Printf("❌ Shutdown error: %v\n", err)
		os.Exit(1)
	}
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", app.healthHandler)

	// Pages
	r.Get("/", app.homeHandler)
	r.Get("/games/{slug}", app.gameHandler)

	// Charts
	r.Get("/games/{slug}/charts/team.png", app.teamChartHandler)
	r.Get("/games/{slug}/charts/players/{player}/yards.png", app.playerChartHandler(chartYards))
	r.Get("/games/{slug}/charts/players/{player}/average.png", app.playerChartHandler(chartAverage))

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: app.config.CORSOrigins,
			AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/games", app.apiGamesHandler)
		r.Put("/games/{slug}", app.apiUpdateGameHandler)
		r.Get("/games/{slug}/metrics", app.apiMetricsHandler)
		r.Get("/games/{slug}/players", app.apiPlayersHandler)
		r.Get("/games/{slug}/series", app.apiSeriesHandler)
	})

	return r
}

func (app *application) quarterback(g gameRecord) string {
	if g.Quarterback != "" {
		return g.Quarterback
	}
	return app.config.Quarterback
}

func (app *application) notes(g gameRecord) []string {
	if g.NotesPath != "" {
		return plays.LoadNotes(g.NotesPath)
	}
	return plays.LoadNotes(app.config.NotesFile)
}

// loadGame looks up a game and aggregates its plays. The game record is
// returned whenever the game exists, even if its plays could not be loaded.
func (app *application) loadGame(slug string) (gameRecord, *templates.GameStats, error) {
	g, err := getGame(app.db, slug)
	if err != nil {
		return gameRecord{}, nil, err
	}
	qb := app.quarterback(g)
	table, err := app.tables.load(g.PlaysPath, plays.LoadOptions{Quarterback: qb})
	if err != nil {
		return g, nil, err
	}
	return g, buildGameStats(g, qb, table, app.notes(g)), nil
}

func (app *application) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "film-room",
	})
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	games, err := listGames(app.db)
	if err != nil {
		fmt.Printf("❌ Listing games: %v\n", err)
		http.Error(w, "Could not load games", http.StatusInternalServerError)
		return
	}

	links := make([]templates.GameLink, len(games))
	for i, g := range games {
		links[i] = gameLink(g)
	}
	templ.Handler(templates.Home(links)).ServeHTTP(w, r)
}

func (app *application) gameHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	g, stats, err := app.loadGame(slug)

	status := http.StatusOK
	data := templates.GamePageData{Game: gameLink(g)}
	switch {
	case err == nil:
		data.Notes = stats.Notes
		data.Stats = stats
		data.Cards = playerCards(stats.Rollups, app.config.PicsDir)
	case errors.Is(err, ErrGameNotFound):
		http.Error(w, fmt.Sprintf("Game %s not found", slug), http.StatusNotFound)
		return
	case g.Slug == "":
		fmt.Printf("❌ Loading game %s: %v\n", slug, err)
		http.Error(w, "Could not load game", http.StatusInternalServerError)
		return
	case errors.Is(err, plays.ErrMissingInput):
		fmt.Printf("⚠️  %v\n", err)
		data.Notes = app.notes(g)
		data.Problem = missingPlaysMessage
	default:
		fmt.Printf("❌ Loading plays for %s: %v\n", slug, err)
		data.Notes = app.notes(g)
		data.Problem = err.Error()
		status = http.StatusInternalServerError
	}

	templ.Handler(templates.GamePage(data), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (app *application) teamChartHandler(w http.ResponseWriter, r *http.Request) {
	_, stats, err := app.loadGame(chi.URLParam(r, "slug"))
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	var buf bytes.Buffer
	if err := renderTeamChart(stats, &buf); err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	writePNG(w, buf.Bytes())
}

func (app *application) playerChartHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, stats, err := app.loadGame(chi.URLParam(r, "slug"))
		if err != nil {
			http.Error(w, err.Error(), errorStatus(err))
			return
		}
		var buf bytes.Buffer
		if err := renderPlayerChart(stats, chi.URLParam(r, "player"), kind, &buf); err != nil {
			http.Error(w, err.Error(), errorStatus(err))
			return
		}
		writePNG(w, buf.Bytes())
	}
}

func writePNG(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(b)
}

// errorStatus maps load and render errors to a response code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrGameNotFound),
		errors.Is(err, plays.ErrMissingInput),
		errors.Is(err, errNotEnoughPlays):
		return http.StatusNotFound
	case errors.Is(err, plays.ErrMalformedInput):
		return http.StatusUnprocessableEntity
	default:
		fmt.Printf("❌ %v\n", err)
		return http.StatusInternalServerError
	}
}
