package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101

	// ErrNotFound missing reserve, oracle entry or ledger row
	ErrNotFound ErrorCode = 100200
	// ErrReserveNotFound no reserve
	ErrReserveNotFound ErrorCode = 100201
	// ErrOracleNotFound no oracle price
	ErrOracleNotFound ErrorCode = 100202
	// ErrSupplyNotFound no token supply stat
	ErrSupplyNotFound ErrorCode = 100203

	// ErrNotLendable no reserve lends the symbol
	ErrNotLendable ErrorCode = 100300
	// ErrNotRedeemable wrapped symbol unknown
	ErrNotRedeemable ErrorCode = 100301
	// ErrNotBToken neither side of a conversion is a wrapped token
	ErrNotBToken ErrorCode = 100302

	// ErrPreconditionViolation zero cumulative index, zero supply or malformed external data
	ErrPreconditionViolation ErrorCode = 100400
	// ErrArithmeticOverflow widened result does not fit the native amount width
	ErrArithmeticOverflow ErrorCode = 100401
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	switch e {
	case ErrNotFound:
		return "not found"
	case ErrReserveNotFound:
		return "reserve not found"
	case ErrOracleNotFound:
		return "oracle price not found"
	case ErrSupplyNotFound:
		return "supply not found"
	case ErrNotLendable:
		return "not lendable"
	case ErrNotRedeemable:
		return "not redeemable"
	case ErrNotBToken:
		return "not b-token"
	case ErrPreconditionViolation:
		return "precondition violation"
	case ErrArithmeticOverflow:
		return "arithmetic overflow"
	case ErrInvalidAmount:
		return "invalid amount"
	}

	return e.String()
}

// Is every specific not found code is also ErrNotFound
func (e ErrorCode) Is(target error) bool {
	code, ok := target.(ErrorCode)
	if !ok {
		return false
	}

	if code == e {
		return true
	}

	return code == ErrNotFound && e > ErrNotFound && e < ErrNotLendable
}
