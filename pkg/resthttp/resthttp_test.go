package resthttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderKeyRequestID) == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"msg":"missing request id"}`))
			return
		}

		_, _ = w.Write([]byte(`{"msg":"ok"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	var body struct {
		Msg string `json:"msg"`
	}

	resp, err := WithRequestID(ctx, "abc").Get(srv.URL)
	require.Nil(t, err)
	require.Nil(t, ParseResponse(resp, &body))
	assert.Equal(t, "ok", body.Msg)

	resp, err = Request(ctx).Get(srv.URL)
	require.Nil(t, err)

	var e *Error
	require.True(t, errors.As(ParseResponse(resp, &body), &e))
	assert.Equal(t, http.StatusBadRequest, e.Status)
}
