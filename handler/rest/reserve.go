package rest

import (
	"net/http"

	"defilend/core"
	"defilend/handler/render"
	"defilend/handler/views"

	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

func allReservesHandler(reserveSrv core.IReserveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := reserveSrv.Directory(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.ReserveViews(dir.All()))
	}
}

func reserveHandler(reserveSrv core.IReserveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := cast.ToUint64E(chi.URLParam(r, "id"))
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		dir, err := reserveSrv.Directory(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		reserve, err := dir.ByID(id)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.ReserveView(reserve))
	}
}
