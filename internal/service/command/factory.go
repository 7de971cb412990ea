package command

import (
	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/memory"
)

func NewCommands(
	mem *memory.Manager,
	gateway core.ConversationGateway,
	corpus core.CorpusBrowser,
) []core.Command {
	cmds := []core.Command{
		NewClearCommand(mem, gateway),
		NewStatsCommand(corpus),
		NewFocusCommand(mem),
	}
	return append(cmds, NewHelpCommand(cmds))
}
