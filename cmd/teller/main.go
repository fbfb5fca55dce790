package main

import (
	"flag"
	"os"

	"github.com/arhyth/tellerxgo"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfg, err := tellerxgo.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *cfp).Msg("error loading config file")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil && cfg.Log.Level != "" {
		zerolog.SetGlobalLevel(lvl)
	}

	clock := tellerxgo.SystemClock{}
	bank, err := tellerxgo.NewBank(cfg, clock, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting bank")
	}
	svc := tellerxgo.Chain(bank,
		tellerxgo.NewAuditMiddleware(tellerxgo.NewFileAuditor(cfg.Audit.Path, clock), &logger),
		tellerxgo.NewValidationMiddleware(),
		tellerxgo.NewLoggingMiddleware(&logger),
	)

	sess := tellerxgo.NewSession(svc, cfg, os.Stdin, os.Stdout, &logger)
	if err = sess.Run(); err != nil {
		logger.Fatal().Err(err).Msg("error reading input")
	}
}
