package utils

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

func InitLogger() {
	var err error
	// Structured JSON logs on stderr, alongside the validator's diagnostic
	// lines. Stdout stays clean for the bot process's own output.
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	Logger, err = config.Build()
	if err != nil {
		panic(err)
	}
}
