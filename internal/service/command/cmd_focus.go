package command

import (
	"context"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/memory"
)

type FocusCommand struct {
	mem       *memory.Manager
	formatter *ResponseFormatter
}

func NewFocusCommand(mem *memory.Manager) core.Command {
	return &FocusCommand{
		mem:       mem,
		formatter: NewResponseFormatter(),
	}
}

func (c *FocusCommand) Name() string {
	return "focus"
}

func (c *FocusCommand) Description() string {
	return "Show the research threads this conversation has accumulated"
}

func (c *FocusCommand) Execute(_ context.Context, projectID, userID string, _ []string) (string, error) {
	focus := c.mem.Open(memory.Key{ProjectID: projectID, UserID: userID}).ResearchFocus
	if len(focus) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Research Focus"),
			c.formatter.Tip("Ask about a topic and it will start showing up here"),
		), nil
	}

	return c.formatter.Combine(
		c.formatter.Info("Research Focus"),
		c.formatter.List(focus),
	), nil
}
