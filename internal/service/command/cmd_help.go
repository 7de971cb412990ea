package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/sandevgo/muckraker/internal/core"
)

type HelpCommand struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

// NewHelpCommand lists the given commands plus itself.
func NewHelpCommand(commands []core.Command) core.Command {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(_ context.Context, _, _ string, _ []string) (string, error) {
	lines := make([]string, 0, len(c.commands)+1)
	for _, cmd := range c.commands {
		lines = append(lines, fmt.Sprintf("**/%s** %s", cmd.Name(), cmd.Description()))
	}
	lines = append(lines, fmt.Sprintf("**/%s** %s", c.Name(), c.Description()))
	sort.Strings(lines)

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(lines),
	), nil
}
