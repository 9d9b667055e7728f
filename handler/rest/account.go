package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"defilend/core"
	"defilend/handler/render"
	"defilend/handler/views"
	"defilend/pkg/number"

	"github.com/go-chi/chi"
)

func collateralsHandler(accountSrv core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := accountSrv.Collaterals(r.Context(), chi.URLParam(r, "owner"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.PositionViews(positions))
	}
}

func loansHandler(accountSrv core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := accountSrv.Loans(r.Context(), chi.URLParam(r, "owner"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.PositionViews(positions))
	}
}

func healthHandler(accountSrv core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "owner")

		hf, err := accountSrv.HealthFactor(r.Context(), owner)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"owner":         owner,
			"health_factor": number.Floor(hf, views.HealthFactorPrecision),
		})
	}
}

func summaryHandler(accountSrv core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := accountSrv.Summary(r.Context(), chi.URLParam(r, "owner"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.AccountView(account))
	}
}

func unstakeHandler(collateralSrv core.ICollateralService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Authorizer string `json:"authorizer"`
			Symbol     string `json:"symbol"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.BadRequest(w, err)
			return
		}

		body.Symbol = strings.ToUpper(body.Symbol)
		if !isName(body.Authorizer) {
			render.BadRequest(w, errors.New("invalid authorizer"))
			return
		}

		if !isSymbolCode(body.Symbol) {
			render.BadRequest(w, errors.New("invalid symbol"))
			return
		}

		if err := collateralSrv.Unstake(r.Context(), body.Authorizer, chi.URLParam(r, "owner"), body.Symbol); err != nil {
			render.Error(w, err)
			return
		}

		render.JSONStatus(w, http.StatusAccepted, views.DefaultSuccess)
	}
}
