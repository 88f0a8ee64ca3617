package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Paths struct {
	DataDir       string
	SQLiteFile    string
	DonationsFile string
}

// Load reads .env if present, then environment variables. Missing values
// fall back to defaults; nothing here is required.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("config: loaded .env")
	}
}

func DefaultPaths() Paths {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "/data"
		if _, err := os.Stat(dataDir); err != nil {
			dataDir = filepath.Join(".", "data")
		}
	}
	return Paths{
		DataDir:       dataDir,
		SQLiteFile:    filepath.Join(dataDir, "feed.db"),
		DonationsFile: filepath.Join(dataDir, "donations.json"),
	}
}

func EnsureDir(dir string) { _ = os.MkdirAll(dir, 0o755) }

// StorageBackend selects the snapshot backend: "file" (default) or "sqlite".
func StorageBackend() string {
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		return v
	}
	return "file"
}

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8090"
}
