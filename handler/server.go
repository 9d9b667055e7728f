package handler

import (
	"net/http"

	"defilend/core"
	"defilend/handler/hc"
	"defilend/handler/metrics"
	"defilend/handler/render"
	"defilend/handler/rest"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	version       string
	metrics       *metrics.Metrics
	reserveSrv    core.IReserveService
	exchangeSrv   core.IExchangeService
	accountSrv    core.IAccountService
	collateralSrv core.ICollateralService
}

// New new server function
func New(
	version string,
	reserveSrv core.IReserveService,
	exchangeSrv core.IExchangeService,
	accountSrv core.IAccountService,
	collateralSrv core.ICollateralService,
) Server {
	return Server{
		version:       version,
		metrics:       metrics.New("defilend"),
		reserveSrv:    reserveSrv,
		exchangeSrv:   exchangeSrv,
		accountSrv:    accountSrv,
		collateralSrv: collateralSrv,
	}
}

// Handler http handler of every api
func (s Server) Handler() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)
	mux.Use(s.metrics.Middleware)
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	mux.Mount("/hc", hc.Handle(s.version))
	mux.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	mux.Mount("/api", s.HandleRestAPI())

	return mux
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	return rest.Handle(s.reserveSrv, s.exchangeSrv, s.accountSrv, s.collateralSrv)
}
