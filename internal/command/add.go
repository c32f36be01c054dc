package command

import (
	"context"
	"fmt"

	"github.com/keshon/commandgate/pkg/cmd"
)

func addDefinition() *cmd.Definition {
	return &cmd.Definition{
		Name:        "add",
		Aliases:     []string{"sum"},
		Description: "Add two whole numbers",
		Usage:       "<a> <b>",
		Executor:    cmd.ExecutorFunc(add),
	}
}

func add(_ context.Context, inv *cmd.Invocation) error {
	var operands [2]int
	for i, name := range []string{"a", "b"} {
		failed := false
		cmd.NextKind[int](inv.Args, cmd.Int.Kind).
			IfPresent(func(n int) { operands[i] = n }).
			OrElse(func(reason cmd.FailReason) {
				failed = true
				switch reason {
				case cmd.ParsedNotType:
					inv.Sender.SendMessage(fmt.Sprintf("<%s> must be a whole number.", name))
				default:
					inv.Sender.SendMessage(usage(inv, "<a> <b>"))
				}
			})
		if failed {
			return nil
		}
	}
	inv.Sender.SendMessage(fmt.Sprintf("%d + %d = %d", operands[0], operands[1], operands[0]+operands[1]))
	return nil
}
