package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultFile = ".env"

// Path is the env file to read: ENV_FILE when set, .env otherwise.
func Path() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	return defaultFile
}

// Load reads the env file without overriding variables already set in the
// process and applies the -port flag. found is false when the file does not
// exist, which is not an error.
func Load() (found bool, err error) {
	err = godotenv.Load(Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		found = false
	case err != nil:
		return false, fmt.Errorf("load %s: %w", Path(), err)
	default:
		found = true
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return found, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return found, nil
}
