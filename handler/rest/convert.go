package rest

import (
	"errors"
	"net/http"

	"defilend/core"
	"defilend/handler/render"
)

// GET /convert?quantity=1.0000 USDT&symbol=4,BUSDT
func convertHandler(exchangeSrv core.IExchangeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		quantity, err := core.ParseAsset(query.Get("quantity"))
		if errors.Is(err, core.ErrInvalidAmount) {
			render.Error(w, err)
			return
		} else if err != nil {
			render.BadRequest(w, err)
			return
		}

		target, err := core.ParseSymbol(query.Get("symbol"))
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		out, err := exchangeSrv.GetAmountOut(r.Context(), quantity, target)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"quantity": quantity.String(),
			"out":      out.String(),
		})
	}
}
