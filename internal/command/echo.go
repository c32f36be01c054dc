package command

import (
	"context"

	"github.com/keshon/commandgate/pkg/cmd"
)

func echoDefinition() *cmd.Definition {
	return &cmd.Definition{
		Name:        "echo",
		Aliases:     []string{"say"},
		Description: "Repeat the given text",
		Usage:       "<text...>",
		Executor:    cmd.ExecutorFunc(echo),
	}
}

func echo(_ context.Context, inv *cmd.Invocation) error {
	text, err := inv.Args.Joined(0)
	if err != nil {
		inv.Sender.SendMessage(usage(inv, "<text...>"))
		return nil
	}
	inv.Sender.SendMessage(text)
	return nil
}
