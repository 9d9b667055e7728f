package render

import (
	"encoding/json"
	"net/http"

	"defilend/handler/codes"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/twitchtv/twirp"
)

// H map
type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	JSONStatus(w, http.StatusOK, v)
}

// JSONStatus render with json and status code
func JSONStatus(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Errorln("render json")
	}
}

// Text render with text
func Text(w http.ResponseWriter, t string) {
	w.Header().Set("Content-Type", "application/text")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(t)); err != nil {
		logrus.WithError(err).Errorln("render text")
	}
}

// Error write error, status and code are derived from the error
func Error(w http.ResponseWriter, err error) {
	twerr := codes.From(err)

	resp := errorResponse{
		Code: cast.ToInt(twerr.Meta(codes.CustomCodeKey)),
		Msg:  twerr.Msg(),
	}

	if resp.Code == 0 {
		resp.Code = codes.Get(twerr.Code())
	}

	if twerr.Code() == twirp.Internal {
		if ResponseErrorMessageAsHint {
			resp.Hint = resp.Msg
		}
		resp.Msg = "internal error"
	}

	JSONStatus(w, twirp.ServerHTTPStatusFromErrorCode(twerr.Code()), resp)
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, codes.With(twirp.NewError(twirp.InvalidArgument, err.Error()), codes.InvalidArguments))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}
