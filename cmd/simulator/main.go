package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"PolicySimulator/internal/collector"
	"PolicySimulator/internal/config"
	"PolicySimulator/internal/logger"
	"PolicySimulator/internal/model"
	"PolicySimulator/internal/presenter"
	"PolicySimulator/internal/recorder"
	"PolicySimulator/internal/reference"
	"PolicySimulator/internal/session"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		l := logger.New(logger.Config{Pretty: true})
		l.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		l := logger.New(logger.Config{Pretty: true})
		l.Fatal().Err(err).Msg("config validation")
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Format == "pretty",
	})
	log.Info().Msg("policy simulator starting")

	// Reference data
	scenario := reference.Default()
	if cfg.Scenario.Path != "" {
		scenario, err = reference.LoadScenario(cfg.Scenario.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Scenario.Path).Msg("load scenario")
		}
	}
	ref, err := reference.New(scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid scenario")
	}
	log.Info().Str("region", ref.Region()).Int("years", ref.Params().YearsSimulated).Msg("scenario loaded")

	// Journal
	rec := openRecorder(cfg.Journal.SQLitePath, log)
	defer rec.Close()

	var praiser presenter.Praiser
	if cfg.Presentation.Deterministic {
		praiser = presenter.FixedPraiser(presenter.DefaultPhrases[0])
	}
	pres := presenter.New(os.Stdout, praiser)

	reader := collector.NewStreamReader(os.Stdin)
	col := collector.NewCollector(reader, os.Stdout, log)
	log.Debug().Str("reader", reader.Name()).Msg("input ready")

	pres.Instructions(ref.Region(), ref.Params())
	ctrl := session.NewController(ref, col, pres, rec, log)
	summary, err := ctrl.Run()
	if err != nil {
		rec.Close()
		if errors.Is(err, collector.ErrInputClosed) {
			log.Debug().Msg("input closed, exiting")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("simulation aborted")
	}
	logSummary(log, summary)
}

func openRecorder(path string, log zerolog.Logger) recorder.Recorder {
	if path == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(path, log)
	if err != nil {
		log.Warn().Err(err).Msg("init sqlite journal failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}

func logSummary(log zerolog.Logger, s *model.Summary) {
	log.Debug().
		Int("attempts", s.Attempts).
		Int("turns", len(s.Turns)).
		Float64("final_gdp", s.FinalGDP).
		Msg("session summary")
}
