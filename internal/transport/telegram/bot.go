package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/muckraker/internal/config"
	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/agent"
	"github.com/sandevgo/muckraker/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	agent     *agent.Agent
	router    core.CmdRouter
	sender    *sender
	projectID string
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	agent *agent.Agent,
	router core.CmdRouter,
	projectID string,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		agent:     agent,
		router:    router,
		sender:    newSender(b),
		projectID: projectID,
		ownerID:   cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("project_id", b.projectID).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	// Create a context for this request
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	userID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	if out, routed := b.router.Execute(ctx, b.projectID, userID, c.Text()); routed {
		return b.sender.sendMarkdown(ctx, c.Chat(), out, false)
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	resp, err := b.agent.ProcessTurn(ctx, b.projectID, userID, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("turn failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), renderMarkdown(resp), false)
}

// renderMarkdown lays the response out for a chat client: the answer first,
// then the leads and follow-ups as compact sections.
func renderMarkdown(resp core.AgentResponse) string {
	var sb strings.Builder
	sb.WriteString(resp.Message)

	if len(resp.InvestigativeLeads) > 0 {
		sb.WriteString("\n\n**Leads**\n")
		for _, lead := range resp.InvestigativeLeads {
			sb.WriteString("- " + lead + "\n")
		}
	}

	if len(resp.FollowUpQuestions) > 0 {
		sb.WriteString("\n**You could ask**\n")
		for _, q := range resp.FollowUpQuestions {
			sb.WriteString("- " + q + "\n")
		}
	}

	return sb.String()
}
