package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/muckraker/internal/config"
	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/agent"
	"github.com/sandevgo/muckraker/internal/service/ui"
	"github.com/sandevgo/muckraker/pkg/log"
)

const (
	defaultUserID    = "cli-local"
	defaultProjectID = "default"
)

type ReadLine struct {
	cfg       *config.AppConfig
	agent     *agent.Agent
	router    core.CmdRouter
	projectID string
	rl        *readline.Instance
}

func NewReadLine(agent *agent.Agent, router core.CmdRouter, cfg *config.AppConfig, projectID string) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	if projectID == "" {
		projectID = defaultProjectID
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.PromptStyle.Render(">>> "),
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:       cfg,
		agent:     agent,
		router:    router,
		projectID: projectID,
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Str("project_id", r.projectID).Msg("ReadLine chat started. Type 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if out, routed := r.router.Execute(ctx, r.projectID, defaultUserID, line); routed {
			fmt.Fprintf(r.rl.Stdout(), "%s\n", out)
			continue
		}

		resp, err := r.agent.ProcessTurn(ctx, r.projectID, defaultUserID, line)
		if err != nil {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}
		r.render(resp)
	}
}

func (r *ReadLine) render(resp core.AgentResponse) {
	out := r.rl.Stdout()
	fmt.Fprintf(out, "%s\n", resp.Message)

	if len(resp.InvestigativeLeads) > 0 {
		fmt.Fprintf(out, "\n%s\n", ui.TitleStyle.Render("Leads"))
		for _, lead := range resp.InvestigativeLeads {
			fmt.Fprintf(out, "  > %s\n", lead)
		}
	}

	if len(resp.FollowUpQuestions) > 0 {
		fmt.Fprintf(out, "\n%s\n", ui.TitleStyle.Render("You could ask"))
		for _, q := range resp.FollowUpQuestions {
			fmt.Fprintf(out, "  > %s\n", ui.DescStyle.Render(q))
		}
	}

	fmt.Fprintf(out, "%s\n", ui.ConfidenceStyle.Render(fmt.Sprintf("confidence %.0f%%", resp.Confidence.Overall*100)))
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
