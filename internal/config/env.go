package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first readable dotenv file. Variables already present
// in the process environment are not overwritten.
func loadEnvFile() {
	for _, name := range envFiles {
		if err := godotenv.Load(name); err == nil {
			slog.Debug("Loaded environment variables", slog.String("file", name))
			return
		}
	}
}
