package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultBotCommand = "python3 main.py"
	defaultPort       = "8080"
)

// RequiredVar is a configuration key the bot cannot run without.
// Redacted vars are only ever reported by presence and length.
type RequiredVar struct {
	Name   string
	Redact bool
}

// RequiredVars is the fixed required set, in reporting order.
var RequiredVars = []RequiredVar{
	{Name: "DISCORD_BOT_TOKEN", Redact: true},
	{Name: "OPENAI_API_KEY", Redact: true},
}

// Config holds all launcher settings sourced from the environment
type Config struct {
	BotCommand    []string
	HaltOnMissing bool
	Port          string
	KeepAlive     bool
}

// Global instance
var Envs Config

// Load reads launcher settings from the environment. Unlike the bot's
// required secrets, every launcher setting has a usable default.
func Load() {
	Envs = Config{
		BotCommand:    strings.Fields(getEnvOrDefault("BOT_COMMAND", defaultBotCommand)),
		HaltOnMissing: getEnvBool("HALT_ON_MISSING", false),
		Port:          getEnvOrDefault("PORT", defaultPort),
		KeepAlive:     getEnvBool("KEEP_ALIVE", false),
	}
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
