package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"botlauncher/app"
	"botlauncher/bootstrap"
	"botlauncher/config"
	"botlauncher/keepalive"
	"botlauncher/utils"
)

const botName = "AI Ebisuya Bot"

func main() {
	os.Exit(run())
}

func run() int {
	app.Initialize()
	defer app.Instance.Close()

	validator := &bootstrap.Validator{
		BotName:       botName,
		Vars:          config.RequiredVars,
		Profile:       app.Instance.Profile,
		HaltOnMissing: app.Instance.Config.HaltOnMissing,
		BotCommand:    app.Instance.Config.BotCommand,
		Out:           os.Stderr,
		Getenv:        os.Getenv,
		Environ:       os.Environ,
	}

	results, decision := validator.Run()
	if decision == bootstrap.DecisionAbort {
		utils.Logger.Error("Aborting launch: required configuration missing")
		return 1
	}

	// Keep-alive HTTP server: mandatory on Replit (the repl is parked
	// without it), opt-in elsewhere.
	if app.Instance.Config.KeepAlive || app.Instance.Profile == config.ProfileReplit {
		ka := keepalive.New(app.Instance.Config.Port, results)
		ka.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			ka.Shutdown(ctx)
			utils.WaitForBackgroundTasks(5 * time.Second)
		}()
	}

	code, err := bootstrap.LaunchAndWait(context.Background(), app.Instance.Config.BotCommand)
	if err != nil {
		utils.Logger.Error("Failed to start bot process", zap.Error(err))
		return 1
	}

	utils.Logger.Info("Bot process exited", zap.Int("exitCode", code))
	return code
}
