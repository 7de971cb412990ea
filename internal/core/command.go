package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, projectID, userID, input string) (string, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, projectID, userID string, args []string) (string, error)
}
