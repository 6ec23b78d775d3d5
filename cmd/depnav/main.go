package main

import (
	"os"

	"depnav/internal/logging"
)

func main() {
	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.InfoLevel,
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
