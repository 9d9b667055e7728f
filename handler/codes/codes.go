package codes

import (
	"errors"
	"strconv"

	"defilend/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// From map a service error to a twirp error carrying its core.ErrorCode
func From(err error) twirp.Error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	var code core.ErrorCode
	if !errors.As(err, &code) {
		return twirp.InternalErrorWith(err)
	}

	var twerr twirp.Error
	switch {
	case errors.Is(err, core.ErrNotFound):
		twerr = twirp.NotFoundError(err.Error())
	case code == core.ErrNotLendable, code == core.ErrNotRedeemable, code == core.ErrNotBToken, code == core.ErrInvalidAmount:
		twerr = twirp.NewError(twirp.InvalidArgument, err.Error())
	default:
		twerr = twirp.NewError(twirp.Internal, err.Error())
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(int(code)))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}
