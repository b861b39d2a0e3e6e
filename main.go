package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	classifierx "github.com/tanpawarit/bank-front-desk/agent/classifier"
	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
	dispatcherx "github.com/tanpawarit/bank-front-desk/agent/dispatcher"
	promptx "github.com/tanpawarit/bank-front-desk/agent/prompt"
	storex "github.com/tanpawarit/bank-front-desk/agent/store"
	toolx "github.com/tanpawarit/bank-front-desk/agent/tool"
	configx "github.com/tanpawarit/bank-front-desk/pkg/config"
	_ "github.com/tanpawarit/bank-front-desk/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/bank-front-desk/pkg/openrouter"
	serverx "github.com/tanpawarit/bank-front-desk/server"
)

type AppConfig struct {
	// memory (default), postgres, or remote.
	StoreBackend string `envconfig:"STORE_BACKEND" split_words:"true" default:"memory"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := buildStore(ctx, appCfg.StoreBackend)
	registry := toolx.NewFrontDesk(st)

	d, err := dispatcherx.New(classifierx.NewKeyword(), registry, buildGenerator())
	if err != nil {
		log.Fatal().Err(err).Msg("build dispatcher")
	}

	srvCfg := configx.MustNew[serverx.Config]("HTTP")
	srv, err := serverx.New(d, st, registry, *srvCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	log.Info().
		Str("addr", srvCfg.ListenAddr).
		Str("store", appCfg.StoreBackend).
		Msg("bank front desk listening")

	if err := srv.ListenAndServe(ctx, srvCfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

func buildStore(ctx context.Context, backend string) storex.Store {
	switch backend {
	case "postgres":
		cfg := configx.MustNew[storex.PostgresConfig]("DATABASE")
		st, err := storex.NewPostgresStore(ctx, *cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("connect postgres record store")
		}
		return st
	case "remote":
		cfg := configx.MustNew[storex.RemoteConfig]("RECORD_STORE")
		st, err := storex.NewRemoteStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build remote record store client")
		}
		return st
	case "memory":
		return storex.NewMemoryStore()
	default:
		log.Fatal().Str("backend", backend).Msg("unknown store backend")
		return nil
	}
}

// buildGenerator returns nil when OpenRouter is not configured; the
// dispatcher then answers unmatched queries with its fixed fallback text.
func buildGenerator() contractx.TextGenerator {
	cfg, err := configx.New[openrouterx.Config]("OPENROUTER")
	if err != nil {
		log.Warn().Err(err).Msg("openrouter not configured, fallback generation disabled")
		return nil
	}
	gen, err := openrouterx.NewGenerator(*cfg, promptx.FrontDesk())
	if err != nil {
		log.Warn().Err(err).Msg("openrouter client unavailable, fallback generation disabled")
		return nil
	}
	return gen
}
