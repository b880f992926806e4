package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/service"
	"github.com/aussiebroadwan/finance/internal/finance/store"
	"github.com/aussiebroadwan/finance/pkg/httpx"
	"github.com/aussiebroadwan/finance/pkg/jwtx"
	"github.com/aussiebroadwan/finance/pkg/slogx"

	_ "github.com/aussiebroadwan/finance/api/finance" // Swagger docs
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
	CredentialService *service.CredentialService
	SessionService    *service.SessionService
	LedgerService     *service.LedgerService
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

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerLedger()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Finance Tracker API
//	@version		0.1.0
//	@description	Personal finance ledger: record dated, categorised transactions and view filtered totals,
//	@description	category breakdowns and monthly trends.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/finance
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
//	@description				Session token from POST /v1/session. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// registerAccounts wires registration, login and passcode changes. None of
// them are rate limited.
func (r *Router) registerAccounts() {
	register := &RegisterHandler{CredentialService: r.CredentialService}
	login := &LoginHandler{SessionService: r.SessionService}
	me := &MeHandler{CredentialService: r.CredentialService}

	r.Mux.Handle("POST /v1/users", register)
	r.Mux.Handle("POST /v1/session", login)

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(me.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("PUT /v1/me/passcode",
		httpx.Chain(http.HandlerFunc(me.HandleChangePasscode),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerLedger() {
	h := &LedgerHandler{LedgerService: r.LedgerService}

	lenient := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	// export and reset are heavier or destructive
	strict := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		)
	}

	r.Mux.Handle("POST /v1/transactions", lenient(h.HandleCreate))
	r.Mux.Handle("GET /v1/transactions", lenient(h.HandleList))
	r.Mux.Handle("DELETE /v1/transactions", strict(h.HandleReset))
	r.Mux.Handle("GET /v1/transactions/export", strict(h.HandleExport))
	r.Mux.Handle("GET /v1/report", lenient(h.HandleReport))
	r.Mux.Handle("GET /v1/categories", lenient(h.HandleCategories))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
