package reserve

import (
	"fmt"
	"sort"

	"defilend/core"
)

// Directory reserves of one snapshot with explicit lookup indexes
type Directory struct {
	reserves map[uint64]*core.Reserve
	// ids in ascending order, the directory iteration order
	ids []uint64
	// underlying symbol -> ids in directory order
	byUnderlying map[core.Symbol][]uint64
	byExtended   map[core.ExtendedSymbol]uint64
	byWrapped    map[string]uint64
}

// NewDirectory build directory from reserve rows
func NewDirectory(reserves []*core.Reserve) (*Directory, error) {
	d := &Directory{
		reserves:     make(map[uint64]*core.Reserve, len(reserves)),
		ids:          make([]uint64, 0, len(reserves)),
		byUnderlying: make(map[core.Symbol][]uint64),
		byExtended:   make(map[core.ExtendedSymbol]uint64),
		byWrapped:    make(map[string]uint64),
	}

	for _, r := range reserves {
		if _, ok := d.reserves[r.ID]; ok {
			return nil, fmt.Errorf("duplicated reserve %d: %w", r.ID, core.ErrPreconditionViolation)
		}

		d.reserves[r.ID] = r
		d.ids = append(d.ids, r.ID)
	}

	sort.Slice(d.ids, func(i, j int) bool { return d.ids[i] < d.ids[j] })

	for _, id := range d.ids {
		r := d.reserves[id]

		if other, ok := d.byWrapped[r.BSymbolCode]; ok {
			return nil, fmt.Errorf("wrapped symbol %s shared by reserves %d and %d: %w", r.BSymbolCode, other, id, core.ErrPreconditionViolation)
		}
		d.byWrapped[r.BSymbolCode] = id

		sym := r.Symbol()
		d.byUnderlying[sym] = append(d.byUnderlying[sym], id)

		ext := r.Underlying()
		if _, ok := d.byExtended[ext]; !ok {
			d.byExtended[ext] = id
		}
	}

	return d, nil
}

// ByID find reserve by id
func (d *Directory) ByID(id uint64) (*core.Reserve, error) {
	r, ok := d.reserves[id]
	if !ok {
		return nil, fmt.Errorf("reserve %d: %w", id, core.ErrReserveNotFound)
	}

	return r, nil
}

// ByUnderlying first reserve in directory order lending symbol.
//
// Two issuers may share a currency code, in which case the lowest id wins.
// Callers that know the issuer should use ByExtendedUnderlying.
func (d *Directory) ByUnderlying(symbol core.Symbol) (*core.Reserve, error) {
	ids := d.byUnderlying[symbol]
	if len(ids) == 0 {
		return nil, fmt.Errorf("reserve of %s: %w", symbol, core.ErrReserveNotFound)
	}

	return d.reserves[ids[0]], nil
}

// ByExtendedUnderlying find reserve by issuer and symbol
func (d *Directory) ByExtendedUnderlying(symbol core.ExtendedSymbol) (*core.Reserve, error) {
	id, ok := d.byExtended[symbol]
	if !ok {
		return nil, fmt.Errorf("reserve of %s: %w", symbol, core.ErrReserveNotFound)
	}

	return d.reserves[id], nil
}

// ByWrapped exact match on wrapped symbol
func (d *Directory) ByWrapped(symbol core.Symbol) (*core.Reserve, error) {
	r, err := d.ByWrappedCode(symbol.Code)
	if err != nil {
		return nil, err
	}

	if r.BSymbol() != symbol {
		return nil, fmt.Errorf("reserve of %s: %w", symbol, core.ErrReserveNotFound)
	}

	return r, nil
}

// ByWrappedCode find reserve by wrapped symbol code
func (d *Directory) ByWrappedCode(code string) (*core.Reserve, error) {
	id, ok := d.byWrapped[code]
	if !ok {
		return nil, fmt.Errorf("reserve of %s: %w", code, core.ErrReserveNotFound)
	}

	return d.reserves[id], nil
}

// All reserves in directory order
func (d *Directory) All() []*core.Reserve {
	reserves := make([]*core.Reserve, len(d.ids))
	for idx, id := range d.ids {
		reserves[idx] = d.reserves[id]
	}

	return reserves
}
