package exchange

import (
	"context"
	"errors"
	"fmt"

	"defilend/core"
	"defilend/internal/defilend"

	"github.com/fox-one/pkg/logger"
)

type service struct {
	tokenContract string
	reserves      core.IReserveService
	ledger        core.ISupplyLedger
}

// New new exchange service, tokenContract issues every wrapped token
func New(tokenContract string, reserves core.IReserveService, ledger core.ISupplyLedger) core.IExchangeService {
	return &service{
		tokenContract: tokenContract,
		reserves:      reserves,
		ledger:        ledger,
	}
}

// Wrap wrapped amount minted for an underlying deposit
func (s *service) Wrap(ctx context.Context, quantity core.Asset) (core.ExtendedAsset, error) {
	dir, err := s.reserves.Directory(ctx)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	reserve, err := dir.ByUnderlying(quantity.Symbol)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ExtendedAsset{}, fmt.Errorf("wrap %s: %w", quantity, core.ErrNotLendable)
		}

		return core.ExtendedAsset{}, err
	}

	return s.wrap(ctx, reserve, quantity)
}

// WrapExtended like Wrap with the reserve picked by issuer and symbol
func (s *service) WrapExtended(ctx context.Context, quantity core.ExtendedAsset) (core.ExtendedAsset, error) {
	dir, err := s.reserves.Directory(ctx)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	reserve, err := dir.ByExtendedUnderlying(quantity.ExtendedSymbol())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ExtendedAsset{}, fmt.Errorf("wrap %s: %w", quantity, core.ErrNotLendable)
		}

		return core.ExtendedAsset{}, err
	}

	return s.wrap(ctx, reserve, quantity.Quantity)
}

func (s *service) wrap(ctx context.Context, reserve *core.Reserve, quantity core.Asset) (core.ExtendedAsset, error) {
	supply, err := s.ledger.TotalSupply(ctx, s.tokenContract, reserve.BSymbolCode)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	amount, err := defilend.WrapAmount(quantity.Amount, supply.Amount, reserve.PracticalBalance)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("reserve", reserve.ID).Errorln("wrap")
		return core.ExtendedAsset{}, fmt.Errorf("wrap %s: %w", quantity, err)
	}

	out := core.Asset{Amount: amount, Symbol: supply.Symbol}
	return out.Extended(s.tokenContract), nil
}

// Unwrap underlying amount redeemed for wrapped tokens, zero when the
// withdrawal would dip into the utilization buffer
func (s *service) Unwrap(ctx context.Context, quantity core.Asset) (core.ExtendedAsset, error) {
	dir, err := s.reserves.Directory(ctx)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	reserve, err := dir.ByWrapped(quantity.Symbol)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ExtendedAsset{}, fmt.Errorf("unwrap %s: %w", quantity, core.ErrNotRedeemable)
		}

		return core.ExtendedAsset{}, err
	}

	supply, err := s.ledger.TotalSupply(ctx, s.tokenContract, reserve.BSymbolCode)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	amount, err := defilend.UnwrapAmount(quantity.Amount, reserve.PracticalBalance, supply.Amount, reserve.UtilizationRate)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("reserve", reserve.ID).Errorln("unwrap")
		return core.ExtendedAsset{}, fmt.Errorf("unwrap %s: %w", quantity, err)
	}

	out := core.Asset{Amount: amount, Symbol: reserve.Symbol()}
	return out.Extended(reserve.Contract), nil
}

// GetAmountOut converts quantity to target, one side must be a wrapped token
func (s *service) GetAmountOut(ctx context.Context, quantity core.Asset, target core.Symbol) (core.Asset, error) {
	wrapped, err := s.IsBToken(ctx, target.Code)
	if err != nil {
		return core.Asset{}, err
	}

	if wrapped {
		out, err := s.Wrap(ctx, quantity)
		if err != nil {
			return core.Asset{}, err
		}

		if out.Quantity.Symbol == target {
			return out.Quantity, nil
		}
	}

	wrapped, err = s.IsBToken(ctx, quantity.Symbol.Code)
	if err != nil {
		return core.Asset{}, err
	}

	if wrapped {
		out, err := s.Unwrap(ctx, quantity)
		if err != nil {
			return core.Asset{}, err
		}

		if out.Quantity.Symbol == target {
			return out.Quantity, nil
		}
	}

	return core.Asset{}, fmt.Errorf("%s to %s: %w", quantity, target, core.ErrNotBToken)
}

// IsBToken whether the token ledger issues code
func (s *service) IsBToken(ctx context.Context, code string) (bool, error) {
	if _, err := s.ledger.TotalSupply(ctx, s.tokenContract, code); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// GetBToken wrapped symbol of the first reserve lending code, zero value if none
func (s *service) GetBToken(ctx context.Context, code string) (core.ExtendedSymbol, error) {
	dir, err := s.reserves.Directory(ctx)
	if err != nil {
		return core.ExtendedSymbol{}, err
	}

	for _, reserve := range dir.All() {
		if reserve.SymbolCode == code {
			return core.ExtendedSymbol{Symbol: reserve.BSymbol(), Contract: s.tokenContract}, nil
		}
	}

	return core.ExtendedSymbol{}, nil
}

// ToUnderlying converts a wrapped balance at the reserve's current ratio, no clamp
func (s *service) ToUnderlying(ctx context.Context, reserve *core.Reserve, balance core.Asset) (core.ExtendedAsset, error) {
	supply, err := s.ledger.TotalSupply(ctx, s.tokenContract, reserve.BSymbolCode)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	amount, err := defilend.RedeemAmount(balance.Amount, reserve.PracticalBalance, supply.Amount)
	if err != nil {
		return core.ExtendedAsset{}, fmt.Errorf("convert %s of reserve %d: %w", balance, reserve.ID, err)
	}

	out := core.Asset{Amount: amount, Symbol: reserve.Symbol()}
	return out.Extended(reserve.Contract), nil
}
