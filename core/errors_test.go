package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeIs(t *testing.T) {
	for _, code := range []ErrorCode{ErrReserveNotFound, ErrOracleNotFound, ErrSupplyNotFound} {
		err := fmt.Errorf("lookup: %w", code)
		assert.True(t, errors.Is(err, ErrNotFound), code.Error())
		assert.True(t, errors.Is(err, code), code.Error())
	}

	for _, code := range []ErrorCode{ErrNotLendable, ErrNotRedeemable, ErrNotBToken, ErrInvalidAmount, ErrPreconditionViolation, ErrArithmeticOverflow} {
		assert.False(t, errors.Is(code, ErrNotFound), code.Error())
	}

	assert.False(t, errors.Is(ErrNotFound, ErrReserveNotFound))
	assert.Equal(t, "100201", ErrReserveNotFound.String())
}
