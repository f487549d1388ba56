package knp

import (
	"errors"
	"time"

	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
)

// Config contains the settings of a Connection. It may be nil; all fields
// have defaults.
type Config struct {
	// MTU is the maximum datagram size the transport accepts.
	// The default is 1400. The maximum payload per data datagram is MTU-8.
	MTU uint16
	// KeepAliveInterval is how often SetupKeepAlive emits keep-alive
	// datagrams. The default is 5 seconds.
	KeepAliveInterval time.Duration
	// KeepAliveExpiry is how long the remote may stay silent before the
	// connection is declared dead. The default is 30 seconds.
	KeepAliveExpiry time.Duration
	// Tracer observes connection events, e.g. for metrics.
	Tracer *Tracer
}

// Clone clones a Config
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.MTU != 0 && config.MTU <= protocol.PreBufferSize {
		return errors.New("invalid value for Config.MTU")
	}
	if int(config.MTU) > protocol.MaxReceiveDatagramSize {
		return errors.New("Config.MTU exceeds the maximum datagram size")
	}
	if config.KeepAliveInterval < 0 || config.KeepAliveExpiry < 0 {
		return errors.New("keep-alive durations must not be negative")
	}
	return nil
}

// populateConfig populates fields in the Config with their default values, if
// none are set. It may be called with nil.
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	mtu := config.MTU
	if mtu == 0 {
		mtu = protocol.DefaultMTU
	}
	keepAliveInterval := config.KeepAliveInterval
	if keepAliveInterval == 0 {
		keepAliveInterval = protocol.DefaultKeepAliveInterval
	}
	keepAliveExpiry := config.KeepAliveExpiry
	if keepAliveExpiry == 0 {
		keepAliveExpiry = protocol.DefaultKeepAliveExpiry
	}
	return &Config{
		MTU:               mtu,
		KeepAliveInterval: keepAliveInterval,
		KeepAliveExpiry:   keepAliveExpiry,
		Tracer:            config.Tracer,
	}
}
