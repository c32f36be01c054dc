// cmd/console/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/keshon/commandgate/internal/command"
	"github.com/keshon/commandgate/internal/config"
	"github.com/keshon/commandgate/internal/console"
	"github.com/keshon/commandgate/internal/middleware"
	"github.com/keshon/commandgate/internal/storage"
	"github.com/keshon/commandgate/internal/table"
	"github.com/keshon/commandgate/pkg/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
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

	c := console.New(tbl, os.Stdout)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		err = c.RunInteractive(ctx)
	} else {
		err = c.Run(ctx, os.Stdin)
	}
	if err != nil {
		log.Println("[ERR] Console error:", err)
	}
}
