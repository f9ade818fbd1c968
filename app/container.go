package app

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"botlauncher/config"
	"botlauncher/utils"
)

// App container holds all launcher state resolved at startup
type App struct {
	Config  config.Config
	Profile config.Profile
}

// Instance is the global singleton for the app container
var Instance *App

// Initialize bootstraps the launcher: .env, logger, config, profile.
func Initialize() {
	// Local development convenience; hosting platforms inject env directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	config.Load()

	Instance = &App{
		Config:  config.Envs,
		Profile: config.DetectProfile(os.Getenv),
	}

	utils.Logger.Info("Launcher initialized",
		zap.String("profile", Instance.Profile.String()),
		zap.Strings("botCommand", Instance.Config.BotCommand),
		zap.Bool("haltOnMissing", Instance.Config.HaltOnMissing))
}

// Close flushes any buffered log output.
func (a *App) Close() {
	_ = utils.Logger.Sync()
}
