package command

import (
	"context"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/memory"
)

type ClearCommand struct {
	mem       *memory.Manager
	gateway   core.ConversationGateway
	formatter *ResponseFormatter
}

func NewClearCommand(mem *memory.Manager, gateway core.ConversationGateway) core.Command {
	return &ClearCommand{
		mem:       mem,
		gateway:   gateway,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Forget this conversation and its stored transcript"
}

func (c *ClearCommand) Execute(ctx context.Context, projectID, userID string, _ []string) (string, error) {
	c.mem.Clear(memory.Key{ProjectID: projectID, UserID: userID})
	if err := c.gateway.Delete(ctx, projectID); err != nil {
		return "", err
	}
	return c.formatter.Success("Conversation cleared"), nil
}
