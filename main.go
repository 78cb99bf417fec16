package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"catan/agent"
	"catan/archive"
	"catan/communication/server"
	"catan/config"
	"catan/engine"
	"catan/experiments"
	"catan/game"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to the config file")
	selfplay := flag.Bool("selfplay", false, "run a single random-vs-greedy game locally and exit")
	experiment := flag.String("experiment", "", "run an experiment (matchups or throughput) and exit")
	flag.Parse()

	cfg := loadConfig(*cfgPath)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch {
	case *selfplay:
		runSelfPlay(cfg)
	case *experiment != "":
		runExperiment(*experiment)
	default:
		serve(cfg)
	}
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Setup(path)
	if err != nil {
		log.Warn().Msgf("could not read config %s, using defaults: %v", path, err)
		return &config.Config{
			ServerPort:  "8080",
			ArchivePath: "results.db",
			LogLevel:    "info",
		}
	}
	return cfg
}

// newBoard builds the configured board, falling back to the standard
// layout when no board file is set.
func newBoard(cfg *config.Config) func() *game.Board {
	if cfg.BoardPath == "" {
		return game.StandardBoard
	}
	topology, err := game.LoadTopology(cfg.BoardPath)
	if err != nil {
		log.Fatal().Msgf("failed to load board %s: %v", cfg.BoardPath, err)
	}
	return func() *game.Board {
		b, err := game.NewBoard(topology)
		if err != nil {
			log.Fatal().Msgf("invalid board %s: %v", cfg.BoardPath, err)
		}
		return b
	}
}

func serve(cfg *config.Config) {
	store, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		log.Fatal().Msgf("failed to open archive %s: %v", cfg.ArchivePath, err)
	}
	defer store.Close()

	s := server.New(store, newBoard(cfg))

	log.Info().Msgf("listening on port %s", cfg.ServerPort)
	err = http.ListenAndServe(":"+cfg.ServerPort, s.Router())
	if err != nil {
		log.Fatal().Msgf("server stopped: %v", err)
	}
}

func runSelfPlay(cfg *config.Config) {
	seed := uint64(time.Now().UnixNano())
	g := game.NewGame(newBoard(cfg)(), rand.New(rand.NewSource(seed)))
	e := engine.NewLocal(g, agent.NewRandom(seed), agent.NewGreedy())

	result, _ := e.Run()

	log.Info().Msgf("self-play finished: winner=player %d turns=%d points=%v duration=%s",
		result.Winner, result.Turns, result.Points, result.Duration)
}

func runExperiment(name string) {
	switch name {
	case "matchups":
		experiments.RunMatchupExperiment()
	case "throughput":
		experiments.RunThroughputExperiment()
	default:
		log.Error().Msgf("unknown experiment %q", name)
		os.Exit(1)
	}
}
