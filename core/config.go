package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config defilend config
type Config struct {
	App       App       `json:"app"`
	DB        db.Config `json:"db"`
	Log       Log       `json:"log"`
	Lending   Lending   `json:"lending"`
	Oracle    Oracle    `json:"oracle"`
	BaseAsset BaseAsset `json:"base_asset"`
	Forwarder Forwarder `json:"forwarder"`
	// Fixture load ledger tables from a yaml file instead of the database
	Fixture string `json:"fixture"`
}

// App app config
type App struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Log log config
type Log struct {
	File       string `json:"file"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
}

// Lending trusted lending identities
type Lending struct {
	// Contract lending protocol action handler, owner of reserves and userconfigs
	Contract string `json:"contract"`
	// TokenContract issuer of the wrapped tokens
	TokenContract string `json:"token_contract"`
	// EndPoint action endpoint used by the outbox dispatcher
	EndPoint string `json:"end_point"`
}

// Oracle oracle config
type Oracle struct {
	Contract string `json:"contract"`
	// EndPoint remote price feed, empty reads the database
	EndPoint string        `json:"end_point"`
	CacheTTL time.Duration `json:"cache_ttl"`
	// MaxPriceAge reject older prices, zero disables
	MaxPriceAge time.Duration `json:"max_price_age"`
}

// BaseAsset designated base value asset
type BaseAsset struct {
	Contract  string `json:"contract"`
	Code      string `json:"code"`
	Precision uint8  `json:"precision"`
}

// ExtendedSymbol base value asset
func (b BaseAsset) ExtendedSymbol() ExtendedSymbol {
	return ExtendedSymbol{Symbol: NewSymbol(b.Code, b.Precision), Contract: b.Contract}
}

// Forwarder outbound command transport
type Forwarder struct {
	// Driver "outbox" or "nats"
	Driver  string `json:"driver"`
	NatsURL string `json:"nats_url"`
	Subject string `json:"subject"`
}
