package rest

import (
	"errors"
	"net/http"

	"defilend/core"
	"defilend/handler/render"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
)

const (
	// account names of the chain
	namePattern = `^[a-z1-5.]{1,12}[a-j1-5]?$`
	codePattern = `^[A-Z]{1,7}$`
)

// Handle handle rest api request
func Handle(
	reserveSrv core.IReserveService,
	exchangeSrv core.IExchangeService,
	accountSrv core.IAccountService,
	collateralSrv core.ICollateralService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Route("/reserves", func(r chi.Router) {
		r.Get("/", allReservesHandler(reserveSrv))
		r.Get("/{id}", reserveHandler(reserveSrv))
	})

	router.Get("/convert", convertHandler(exchangeSrv))

	router.Route("/accounts/{owner}", func(r chi.Router) {
		r.Use(validateOwner)
		r.Get("/collaterals", collateralsHandler(accountSrv))
		r.Get("/loans", loansHandler(accountSrv))
		r.Get("/health", healthHandler(accountSrv))
		r.Get("/summary", summaryHandler(accountSrv))
		r.Post("/unstake", unstakeHandler(collateralSrv))
	})

	return router
}

func isName(s string) bool {
	return govalidator.Matches(s, namePattern)
}

func isSymbolCode(s string) bool {
	return govalidator.Matches(s, codePattern)
}

func validateOwner(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if owner := chi.URLParam(r, "owner"); !isName(owner) {
			render.BadRequest(w, errors.New("invalid owner "+owner))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
