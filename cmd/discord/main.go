// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/commandgate/internal/command"
	"github.com/keshon/commandgate/internal/config"
	"github.com/keshon/commandgate/internal/discord"
	"github.com/keshon/commandgate/internal/middleware"
	"github.com/keshon/commandgate/internal/storage"
	"github.com/keshon/commandgate/internal/table"
	"github.com/keshon/commandgate/pkg/cmd"
)

func main() {
	log.Println("[INFO] Starting commandgate bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ValidateDiscord(); err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	tbl := table.New()
	manager := cmd.NewManager(tbl, nil, cmd.Messages{
		NoPermission: cfg.NoPermissionMessage,
		NoConsole:    cfg.NoConsoleMessage,
	})
	if err := command.RegisterAll(manager, store, middleware.NewCooldown(cfg.CooldownPerMinute)); err != nil {
		log.Println("[WARN] Some commands were not registered:", err)
	}
	if err := manager.EnableHelp(cfg.HelpCommand, cfg.HelpPermission); err != nil {
		log.Fatal(err)
	}

	bot := discord.NewBot(cfg, tbl)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
