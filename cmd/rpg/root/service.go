package root

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/wizinfantry/LLM-Text-RPG/internal/config"
	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
	"github.com/wizinfantry/LLM-Text-RPG/internal/game"
	"github.com/wizinfantry/LLM-Text-RPG/internal/gen"
	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// loadedGame bundles everything a command needs.
type loadedGame struct {
	cfg        config.Config
	player     *engine.Player
	heroes     *storage.HeroRepo
	encounters *storage.EncounterRepo
}

func openGame(ctx context.Context) (*loadedGame, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	heroes := storage.NewHeroRepo(db)
	hero, err := heroes.GetOrCreateMain(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	player, err := game.PlayerFromHero(hero, cfg.EngineConfig())
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &loadedGame{
		cfg:        cfg,
		player:     player,
		heroes:     heroes,
		encounters: storage.NewEncounterRepo(db),
	}, cleanup, nil
}

// newSession builds the playable session over a loaded game, with generation
// warnings logged to stderr.
func (g *loadedGame) newSession() *game.Session {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	adapter := gen.NewOllamaClient(g.cfg.LLM.BaseURL, g.cfg.LLM.Model, g.cfg.LLM.Timeout())
	generator := gen.New(adapter, g.cfg.EngineConfig(), log)
	return game.NewSession(g.player, generator, g.cfg.EngineConfig(), nil, g.heroes, g.encounters)
}
