package config

import (
	"time"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gosea/domain"
)

// Network names the deployment the sdk talks to
type Network string

const (
	NetworkMain    Network = "main"
	NetworkRinkeby Network = "rinkeby"
)

var networkDefaults = map[Network]Config{
	NetworkMain: {
		Network:         NetworkMain,
		ChainId:         1,
		APIBaseURL:      "https://api.opensea.io",
		SiteURL:         "https://opensea.io",
		ExchangeAddress: "0x7be8076f4ea4a4ad08075c2508e481d6c946d12b",
		WrappedNative:   domain.ChainIdWrappedNativeMap[1],
		Timeout:         30 * time.Second,
	},
	NetworkRinkeby: {
		Network:         NetworkRinkeby,
		ChainId:         4,
		APIBaseURL:      "https://rinkeby-api.opensea.io",
		SiteURL:         "https://rinkeby.opensea.io",
		ExchangeAddress: "0x5206e78b21ce315ce284fb24cf05e0585a93b1d9",
		WrappedNative:   domain.ChainIdWrappedNativeMap[4],
		Timeout:         30 * time.Second,
	},
}

// Config carries everything an sdk consumer wires in: which network, where
// the orderbook lives and which exchange contract settles matches.
type Config struct {
	Network         Network        `json:"network"`
	ChainId         domain.ChainId `json:"chainId"`
	APIBaseURL      string         `json:"apiBaseUrl"`
	SiteURL         string         `json:"siteUrl"`
	APIKey          string         `json:"apiKey"`
	ExchangeAddress domain.Address `json:"exchangeAddress"`
	WrappedNative   domain.Address `json:"wrappedNative"`
	Timeout         time.Duration  `json:"timeout"`
}

// Default returns the builtin settings of a known network
func Default(network Network) (*Config, error) {
	cfg, ok := networkDefaults[network]
	if !ok {
		return nil, xerrors.Errorf("unknown network %q", network)
	}
	return &cfg, nil
}

// Load reads a yaml config file and overlays it onto the named network's
// defaults. Only keys present in the file override.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Errorf("read config: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	network := Network(v.GetString("network"))
	if network == "" {
		network = NetworkMain
	}
	cfg, err := Default(network)
	if err != nil {
		return nil, err
	}
	if v.IsSet("api.baseUrl") {
		cfg.APIBaseURL = v.GetString("api.baseUrl")
	}
	if v.IsSet("api.key") {
		cfg.APIKey = v.GetString("api.key")
	}
	if v.IsSet("api.timeout") {
		cfg.Timeout = v.GetDuration("api.timeout")
	}
	if v.IsSet("exchange.address") {
		cfg.ExchangeAddress = domain.Address(v.GetString("exchange.address")).ToLower()
	}
	return cfg, nil
}
