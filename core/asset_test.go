package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsset(t *testing.T) {
	a, err := ParseAsset("1.0000 usdt")
	require.Nil(t, err)
	assert.Equal(t, int64(10000), a.Amount)
	assert.Equal(t, NewSymbol("USDT", 4), a.Symbol)
	assert.Equal(t, "1.0000 USDT", a.String())

	a, err = ParseAsset("0.0000 EOS")
	require.Nil(t, err)
	assert.Equal(t, int64(0), a.Amount)

	for _, s := range []string{
		"-1.0000 USDT",
		"-0.0001 EOS",
		"one USDT",
		"99999999999999999999 USDT",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseAsset(s)
			assert.True(t, errors.Is(err, ErrInvalidAmount), "%v", err)
		})
	}

	_, err = ParseAsset("1.0000")
	assert.NotNil(t, err)
}
