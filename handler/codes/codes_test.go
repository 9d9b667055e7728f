package codes

import (
	"errors"
	"fmt"
	"testing"

	"defilend/core"

	"github.com/stretchr/testify/assert"
	"github.com/twitchtv/twirp"
)

func TestFrom(t *testing.T) {
	for _, c := range []struct {
		err    error
		code   twirp.ErrorCode
		custom string
	}{
		{fmt.Errorf("reserve 9: %w", core.ErrReserveNotFound), twirp.NotFound, "100201"},
		{fmt.Errorf("wrap: %w", core.ErrNotLendable), twirp.InvalidArgument, "100300"},
		{core.ErrNotBToken, twirp.InvalidArgument, "100302"},
		{fmt.Errorf("accrue: %w", core.ErrArithmeticOverflow), twirp.Internal, "100401"},
		{errors.New("connection refused"), twirp.Internal, ""},
	} {
		twerr := From(c.err)
		assert.Equal(t, c.code, twerr.Code(), c.err.Error())
		assert.Equal(t, c.custom, twerr.Meta(CustomCodeKey), c.err.Error())
	}
}

func TestGet(t *testing.T) {
	assert.Equal(t, InvalidArguments, Get(twirp.InvalidArgument))
	assert.Equal(t, 404, Get(twirp.NotFound))
}
