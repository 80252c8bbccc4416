package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/moodachu/moodachu/internal/pet/service"
	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/pkg/httpx"
	"github.com/moodachu/moodachu/pkg/jwtx"
	"github.com/moodachu/moodachu/pkg/slogx"

	_ "github.com/moodachu/moodachu/api/pet" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	DirectoryService  *service.DirectoryService
	SubmissionService *service.SubmissionService
	InvitationService *service.InvitationService
	PairService       *service.PairService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerProofs()
	r.registerPairs()
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Moodachu Shared Pet Service API
//	@version		0.1.0
//	@description	A shared virtual pet whose mood is driven by zero-knowledge proofs.
//	@description
//	@description				Partners submit groth16 proofs over their private emotions; only the
//	@description				derived public mood ever reaches the server.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity provider JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{DirectoryService: r.DirectoryService}

	// POST /users/register - moderate rate limit by user (write operation)
	securedRegister := httpx.Chain(http.HandlerFunc(h.HandleRegister),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitBySubject(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/users/register", securedRegister)

	// GET /users/{username} - public directory lookup, lenient limit by IP
	r.Mux.Handle("GET /v1/users/{username}",
		httpx.Chain(http.HandlerFunc(h.HandleResolve),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProofs() {
	h := &ProofsHandler{SubmissionService: r.SubmissionService}

	// POST /proofs - strict rate limit by IP (verification burns CPU)
	r.Mux.Handle("POST /v1/proofs",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPairs() {
	h := &PairsHandler{PairService: r.PairService}

	// Read endpoints - lenient rate limits by IP
	r.Mux.Handle("GET /v1/pairs/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/pairs",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/pairs/{id}/events",
		httpx.Chain(http.HandlerFunc(h.HandleEvents),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{
		InvitationService: r.InvitationService,
		DirectoryService:  r.DirectoryService,
	}

	// POST /invitations - moderate rate limit by user
	securedPropose := httpx.Chain(http.HandlerFunc(h.HandlePropose),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitBySubject(httpx.ModerateLimit),
	)

	// GET /invitations/pending - lenient rate limit by user (inbox polling)
	securedPending := httpx.Chain(http.HandlerFunc(h.HandleListPending),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitBySubject(httpx.LenientLimit),
	)

	// POST /invitations/{id}/accept - strict rate limit by user (creates pairs)
	securedAccept := httpx.Chain(http.HandlerFunc(h.HandleAccept),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitBySubject(httpx.StrictLimit),
	)

	r.Mux.Handle("POST /v1/invitations", securedPropose)
	r.Mux.Handle("GET /v1/invitations/pending", securedPending)
	r.Mux.Handle("POST /v1/invitations/{id}/accept", securedAccept)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.SubmissionService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
