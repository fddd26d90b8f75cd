package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	appgames "redluck-casino/internal/app/games"
	apppublic "redluck-casino/internal/app/public"
	"redluck-casino/internal/auth"
	"redluck-casino/internal/config"
	"redluck-casino/internal/game"
	"redluck-casino/internal/ledger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

func NewRouter(pinger Pinger, eng *ledger.Engine, src game.DrawSource, provider auth.Provider, cfg config.ServerConfig) *chi.Mux {
	gamesSvc := appgames.NewService(eng, src)
	publicSvc := apppublic.NewService(eng)

	gamesHandlers := NewGamesHandlers(gamesSvc)
	publicHandlers := NewPublicHandlers(publicSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID", "X-User-Email"},
	}))

	r.With(APILogMiddleware()).Get("/healthz", Health(pinger))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(provider))
			r.Get("/balance", publicHandlers.Balance())
			r.Get("/history", publicHandlers.History())
			r.Get("/stats", publicHandlers.Stats())

			r.Post("/games/slots/spin", gamesHandlers.Spin())
			r.Post("/games/poker/deal", gamesHandlers.PokerDeal())
			r.Post("/games/poker/draw", gamesHandlers.PokerDraw())
			r.Post("/games/memory/start", gamesHandlers.MemoryStart())
			r.Post("/games/memory/flip", gamesHandlers.MemoryFlip())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
