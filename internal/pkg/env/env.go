package env

import (
	"log"

	"github.com/joho/godotenv"
)

// Env holds the values read from .env. config.Load consults it before the
// process environment.
var Env map[string]string

func SetupEnvFile() {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/panel to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			return
		}
	}

	// Containers usually pass everything through the environment.
	Env = map[string]string{}
	log.Printf("No .env file found, using process environment only")
}
