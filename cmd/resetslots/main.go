// cmd/resetslots/main.go borra la sesion de usuario y la caja abierta
// guardadas en el state driver configurado. Recupera un arranque bloqueado por
// un slot corrupto.
// Uso: go run ./cmd/resetslots [-only identity|session]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/josebazania/restaurantepos/internal/config"
	"github.com/josebazania/restaurantepos/internal/infra"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	only := flag.String("only", "", "borrar solo este slot: identity | session (caja abierta)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	keys := []string{repository.SlotSessionIdentity, repository.SlotActiveCashSession}
	if *only != "" {
		key, ok := repository.ResolveSlot(*only)
		if !ok {
			fmt.Fprintf(os.Stderr, "slot desconocido %q (identity|session)\n", *only)
			os.Exit(2)
		}
		keys = []string{key}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.StateDriver == "" || cfg.StateDriver == "memory" {
		log.Warn().Msg("STATE_DRIVER=memory: no hay slots persistidos")
		return
	}

	backends, err := infra.OpenBackends(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open state backends")
	}
	defer backends.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, k := range keys {
		if err := backends.Store.Delete(ctx, k); err != nil {
			log.Error().Err(err).Str("slot", k).Msg("delete failed")
			continue
		}
		log.Info().Str("slot", k).Str("driver", backends.Store.Driver()).Msg("slot cleared")
	}
}
