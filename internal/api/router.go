package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/sadopc/wyrm/internal/github"
	"github.com/sadopc/wyrm/internal/spotify"
	"github.com/sadopc/wyrm/internal/store"
)

// Deps carries everything the handlers need.
type Deps struct {
	Store   *store.Store
	GitHub  *github.Loader
	Spotify *spotify.Client
	OutDir  string
	Logger  *slog.Logger
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(d.Logger))
	r.Use(Recovery(d.Logger))

	pomodoroH := &PomodoroHandler{store: d.Store}
	taskH := &TaskHandler{store: d.Store}
	activityH := &ActivityHandler{store: d.Store}
	readmeH := &ReadmeHandler{store: d.Store, outDir: d.OutDir}
	gitH := &GitHandler{store: d.Store}
	githubH := &GitHubHandler{loader: d.GitHub}
	spotifyH := &SpotifyHandler{client: d.Spotify}

	r.Get("/health", Health)

	r.Route("/pomodoro", func(r chi.Router) {
		r.Post("/start", pomodoroH.Start)
		r.Post("/pause", pomodoroH.Pause)
		r.Post("/resume", pomodoroH.Resume)
		r.Post("/stop", pomodoroH.Stop)
		r.Get("/status", pomodoroH.Status)
		r.Get("/stats", pomodoroH.Stats)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskH.List)
		r.Post("/", taskH.Create)
		r.Put("/{id}", taskH.Update)
		r.Post("/{id}/toggle_done", taskH.Toggle)
		r.Delete("/{id}", taskH.Delete)
	})

	r.Route("/activity", func(r chi.Router) {
		r.Post("/event", activityH.RecordEvent)
		r.Get("/status", activityH.Status)
		r.Get("/history", activityH.History)
		r.Get("/heatmap", activityH.Heatmap)
		r.Get("/timeline", activityH.Timeline)
	})

	r.Route("/readme", func(r chi.Router) {
		r.Post("/profile", readmeH.Profile)
		r.Post("/project", readmeH.Project)
		r.Get("/history", readmeH.History)
	})

	r.Get("/standup/today", gitH.Standup)
	r.Post("/git/summary", gitH.Summary)

	r.Route("/github", func(r chi.Router) {
		r.Get("/summary", githubH.Summary)
		r.Get("/avatar", githubH.Avatar)
	})

	r.Route("/spotify", func(r chi.Router) {
		r.Post("/exchange", spotifyH.Exchange)
		r.Post("/refresh", spotifyH.Refresh)
	})

	return r
}
