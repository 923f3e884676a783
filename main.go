// main.go
//
// Entry point for the Wordle solver.
// Loads configuration from the environment (.env supported), initializes
// the word bank, resolves the opening-guess list (cache or full scan),
// then runs either the interactive CLI loop (default) or the HTTP API.
//
// Environment variables:
//   LOG_LEVEL      zerolog level (default "info")
//   WORDBANK_FILE  path to a newline-delimited word list (embedded default otherwise)
//   OPENINGS_DB    SQLite path for the opening cache (default ./data/openings.db)
//   SOLVER_MODE    "cli" (default) or "serve"
//   PORT           HTTP port in serve mode (default 5180)

package main

import (
	"context"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/pl9ed/wordle-solver/internal/cli"
	"github.com/pl9ed/wordle-solver/internal/httpserver"
	"github.com/pl9ed/wordle-solver/internal/opencache"
	"github.com/pl9ed/wordle-solver/internal/solver"
	"github.com/pl9ed/wordle-solver/internal/store"
	"github.com/pl9ed/wordle-solver/internal/words"
)

// openingCount is how many ranked openers are precomputed and cached.
const openingCount = 5

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word bank")
	}
	bank := words.All()
	log.Info().Int("words", len(bank)).Str("fingerprint", words.Fingerprint()).Msg("word bank loaded")

	cache, err := opencache.Open(getEnv("OPENINGS_DB", "./data/openings.db"))
	if err != nil {
		log.Warn().Err(err).Msg("opening cache unavailable, openings will be recomputed each run")
		cache = nil
	} else {
		defer cache.Close()
	}

	openings := resolveOpenings(cache, bank)

	switch getEnv("SOLVER_MODE", "cli") {
	case "serve":
		srv := httpserver.New(store.NewMemoryStore(), cache, openings)
		port := getEnv("PORT", "5180")
		log.Info().Str("port", port).Msg("starting solver API")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	default:
		cli.Run(bank, openings, os.Stdin, os.Stdout)
	}
}

// resolveOpenings loads the cached opening list or runs the full scan
// with a progress bar. A failed computation is fatal: the solver is not
// useful without a scored bank.
func resolveOpenings(cache *opencache.Store, bank []string) []solver.Opening {
	// The bar only appears on a cache miss: the hook first fires once
	// LoadOrCompute decides to scan.
	var (
		barOnce sync.Once
		bar     *progressbar.ProgressBar
	)
	progress := func(n int) {
		barOnce.Do(func() {
			bar = progressbar.Default(int64(len(bank)), "scoring openings")
		})
		_ = bar.Add(n)
	}

	openings, cached, err := opencache.LoadOrCompute(context.Background(), cache, bank, words.Fingerprint(), openingCount, progress)
	if err != nil {
		log.Fatal().Err(err).Msg("computing opening guesses")
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if cached {
		log.Info().Msg("opening guesses loaded from cache")
	} else {
		log.Info().Msg("opening guesses computed")
	}
	return openings
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
