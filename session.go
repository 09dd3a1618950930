package aoc

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Session returns the adventofcode.com session cookie. It is read from
// the AOC_SESSION environment variable (a .env file is honored), with a
// fallback to ~/keys/aoc.session.
var Session = sync.OnceValue(func() string {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment")
	}
	if v := os.Getenv("AOC_SESSION"); v != "" {
		return strings.TrimSpace(v)
	}
	path := filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("set AOC_SESSION or create ~/keys/aoc.session")
	}
	return strings.TrimSpace(string(b))
})
