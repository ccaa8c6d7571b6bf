// cmd/uno/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/jason-s-yu/uno/internal/cache"
	"github.com/jason-s-yu/uno/internal/config"
	"github.com/jason-s-yu/uno/internal/game"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: uno <player> <player> [player...]")
		os.Exit(2)
	}

	engine, err := newMatch(cfg, logger, os.Args[1:])
	if err != nil {
		logger.Fatalf("could not start the match: %v", err)
	}

	var outbox deliverer
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("outbox: %v", err)
		}
		defer rdb.Close()
		outbox = cache.NewOutbox(rdb, cfg.OutboxPrefix)
		logger.WithField("redis", cfg.RedisAddr).Info("delivering player messages through redis")
	}

	store := game.NewGameStore()
	match := store.AddGame(engine)
	defer store.DeleteGame(engine.ID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	h := newHost(match, engine.ID, outbox, os.Stdout, logger)
	fmt.Println(paintText(intro(engine)))
	h.run(ctx, bufio.NewScanner(os.Stdin))
}

// newMatch builds and starts an engine for the named players.
func newMatch(cfg config.Config, logger *logrus.Logger, names []string) (*game.Engine, error) {
	engine := game.NewEngine()
	engine.Log = logger.WithField("match", engine.ID.String())
	if cfg.Seed != 0 {
		engine.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	if err := engine.UpdateRules(cfg.Rules); err != nil {
		return nil, err
	}
	for _, name := range names {
		if _, err := engine.AddPlayer(name); err != nil {
			return nil, err
		}
	}
	if err := engine.Start(); err != nil {
		return nil, err
	}
	return engine, nil
}

func intro(e *game.Engine) string {
	top, _ := e.CurrentDiscardTop()
	cur, _ := e.CurrentPlayer()
	return fmt.Sprintf("The game has begun with %d players! The first card is %s.\nIt is now %s's turn.",
		len(e.Players()), paintCard(top), cur.Username)
}

// run reads commands until input ends, the match is over or ctx is done.
func (h *host) run(ctx context.Context, sc *bufio.Scanner) {
	for sc.Scan() {
		if ctx.Err() != nil || !h.exec(ctx, sc.Text()) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		h.logger.WithError(err).Error("reading input")
	}
}
