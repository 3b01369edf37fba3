package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables and file checks

    // Side-effect import: loads a .env file into the process environment
    // before any variable is read, when such a file exists.
    _ "github.com/joho/godotenv/autoload"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The database path is resolved exactly once at
// startup and injected into the database layer; nothing re-derives it per
// request.
type Config struct {
    Env        string // application environment (e.g. "dev", "prod")
    Port       string // HTTP port to listen on
    DBPath     string // resolved path of the SQLite database file
    DBReadOnly bool   // whether the database is opened in read-only mode
}

// candidatePaths are probed in order when DB_PATH is not set.  The last
// entry exists for serverless platforms that bundle the database under a
// fixed task directory.
var candidatePaths = []string{
    "data.db",
    "data/data.db",
    "/var/task/data.db",
}

// Load reads configuration values from environment variables and returns a
// Config.  A missing database file is a fatal error: the service refuses to
// start rather than failing on the first request.
func Load() Config {
    return Config{
        Env:        envOr("APP_ENV", "dev"),
        Port:       envOr("APP_PORT", "8080"),
        DBPath:     resolveDBPath(),
        DBReadOnly: os.Getenv("READ_ONLY_DB") != "0", // read-only unless explicitly disabled
    }
}

// envOr retrieves the value of an environment variable, falling back to def
// when the variable is unset or empty.
func envOr(key, def string) string {
    if v, ok := os.LookupEnv(key); ok && v != "" {
        return v
    }
    return def
}

// resolveDBPath returns the database file location.  An explicit DB_PATH
// wins; otherwise the candidate list is probed and the first existing file
// is taken.  The probed path must exist, since the loader creates the file
// out-of-band before the server ever starts.
func resolveDBPath() string {
    if p, ok := os.LookupEnv("DB_PATH"); ok && p != "" {
        if _, err := os.Stat(p); err != nil {
            log.Fatalf("DB_PATH points to an unreadable file: %s", p)
        }
        return p
    }
    for _, p := range candidatePaths {
        if _, err := os.Stat(p); err == nil {
            return p
        }
    }
    log.Fatalf("no database file found; set DB_PATH or place data.db next to the binary")
    return "" // unreachable
}
