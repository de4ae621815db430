package main

import (
	"fmt"
	"time"
)

type Config struct {
	ConnectionBufferSize      int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=5s"`
	GCInterval                time.Duration `env:"GC_INTERVAL,default=5m"`
	MetricInterval            time.Duration `env:"METRIC_INTERVAL,default=30s"`
	AuthTokenDuration         time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	AuthTokenKey              string        `env:"AUTH_TOKEN_KEY,required=true"`
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath             string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel                  string        `env:"LOG_LEVEL,default=INFO"`
	Host                      string        `env:"HOST,default=0.0.0.0"`
	Port                      int           `env:"PORT,default=8080"`
	DebugPort                 int           `env:"DEBUG_PORT,default=8081"`
	MutexPoolSize             uint16        `env:"MUTEX_POOL_SIZE,default=1024"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.ModerationCharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			c.ModerationCharReplacement,
		)
	}
	return r[0], nil
}
