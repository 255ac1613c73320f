package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// MaxDifficulty mirrors the engine's upper bound on required zero bytes.
const MaxDifficulty = 32

type Config struct {
	ListenAddr       string
	PoWDifficulty    int
	HandshakeTimeout time.Duration
	LogLevel         string
	ShutdownWait     time.Duration
}

type ClientConfig struct {
	ServerAddr       string
	DialTimeout      time.Duration
	HandshakeTimeout time.Duration
	LogLevel         string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func Parse() Config {
	timeout, _ := time.ParseDuration(getenv("HANDSHAKE_TIMEOUT", "0s"))
	wait, _ := time.ParseDuration(getenv("SHUTDOWN_WAIT", "5s"))
	return Config{
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		PoWDifficulty:    atoi(getenv("POW_DIFFICULTY", "1"), 1),
		HandshakeTimeout: timeout,
		LogLevel:         getenv("LOG_LEVEL", "info"),
		ShutdownWait:     wait,
	}
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.PoWDifficulty < 0 || c.PoWDifficulty > MaxDifficulty {
		return fmt.Errorf("POW_DIFFICULTY=%d: must be within [0, %d]", c.PoWDifficulty, MaxDifficulty)
	}
	if c.HandshakeTimeout < 0 {
		return fmt.Errorf("HANDSHAKE_TIMEOUT=%v: must not be negative", c.HandshakeTimeout)
	}
	return nil
}

// Difficulty is only meaningful after Validate succeeded.
func (c Config) Difficulty() uint8 {
	return uint8(c.PoWDifficulty)
}

func ParseClient() ClientConfig {
	dial, _ := time.ParseDuration(getenv("DIAL_TIMEOUT", "5s"))
	timeout, _ := time.ParseDuration(getenv("HANDSHAKE_TIMEOUT", "0s"))
	return ClientConfig{
		ServerAddr:       getenv("SERVER_ADDR", "localhost:8080"),
		DialTimeout:      dial,
		HandshakeTimeout: timeout,
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}
}
