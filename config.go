package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds service configuration
type Config struct {
	Port        int
	DataDir     string
	PicsDir     string
	NotesFile   string
	Quarterback string
	Team        string
	DBPath      string
	CORSOrigins []string
}

// loadConfig loads configuration from the environment, after an optional .env file
func loadConfig() Config {
	if err := godotenv.Load(); err == nil {
		fmt.Println("📄 Loaded .env")
	}

	return Config{
		Port:        getEnvInt("PORT", 8080),
		DataDir:     getEnv("DATA_DIR", "./data"),
		PicsDir:     getEnv("PICS_DIR", "./pics"),
		NotesFile:   getEnv("NOTES_FILE", "notes.txt"),
		Quarterback: getEnv("QUARTERBACK", "king"),
		Team:        strings.ToUpper(getEnv("TEAM", "GT")),
		DBPath:      dbPath(),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

// dbPath prefers DB_PATH, then the Railway volume, then the working directory.
func dbPath() string {
	if p := os.Getenv("DB_PATH"); p != "" {
		return p
	}
	if mountPath := os.Getenv("RAILWAY_VOLUME_MOUNT_PATH"); mountPath != "" {
		return filepath.Join(mountPath, "filmroom.db")
	}
	return "./film_room.db"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
