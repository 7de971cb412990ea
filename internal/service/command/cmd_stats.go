package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/muckraker/internal/core"
)

type StatsCommand struct {
	corpus    core.CorpusBrowser
	formatter *ResponseFormatter
}

func NewStatsCommand(corpus core.CorpusBrowser) core.Command {
	return &StatsCommand{
		corpus:    corpus,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show what the archive holds"
}

func (c *StatsCommand) Execute(ctx context.Context, _, _ string, _ []string) (string, error) {
	stats, err := c.corpus.Stats(ctx)
	if err != nil {
		return "", err
	}

	byPotential := make([]string, 0, len(stats.ByPotential))
	for _, p := range []core.DocumentaryPotential{core.PotentialYes, core.PotentialMaybe, core.PotentialNo} {
		if n, ok := stats.ByPotential[p]; ok {
			byPotential = append(byPotential, fmt.Sprintf("documentary potential %s: %d", p, n))
		}
	}

	return c.formatter.Combine(
		c.formatter.Info("Archive"),
		c.formatter.Label("Records", fmt.Sprintf("%d", stats.TotalRecords)),
		c.formatter.Label("Flagged interesting", fmt.Sprintf("%d", stats.Interesting)),
		c.formatter.List(byPotential),
	), nil
}
