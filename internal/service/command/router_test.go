package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/memory"
)

type stubCommand struct {
	name string
	out  string
	err  error
}

func (c *stubCommand) Name() string        { return c.name }
func (c *stubCommand) Description() string { return "stub" }

func (c *stubCommand) Execute(context.Context, string, string, []string) (string, error) {
	return c.out, c.err
}

func TestRouter_Execute(t *testing.T) {
	router := New([]core.Command{
		&stubCommand{name: "ping", out: "pong"},
		&stubCommand{name: "boom", err: errors.New("kaput")},
	})

	tests := []struct {
		name       string
		input      string
		want       string
		wantRouted bool
	}{
		{"plain message falls through", "any murders?", "", false},
		{"known command runs", "/ping", "pong", true},
		{"args are tolerated", "/ping now please", "pong", true},
		{"unknown command reports itself", "/nope", "Unknown command: /nope", true},
		{"command error is rendered", "/boom", "Error: kaput", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, routed := router.Execute(context.Background(), "p", "u", tt.input)
			require.Equal(t, tt.wantRouted, routed)
			require.Equal(t, tt.want, got)
		})
	}
}

type stubGateway struct {
	deleted []string
	err     error
}

func (g *stubGateway) Upsert(context.Context, string, string, []core.Message) error { return nil }

func (g *stubGateway) Delete(_ context.Context, projectID string) error {
	g.deleted = append(g.deleted, projectID)
	return g.err
}

func TestClearCommand(t *testing.T) {
	mem := memory.NewManager(memory.NewInProcessStore(), 10)
	key := memory.Key{ProjectID: "p", UserID: "u"}
	mem.Append(key, core.Message{Role: core.RoleUser, Content: "hi"})

	gateway := &stubGateway{}
	out, err := NewClearCommand(mem, gateway).Execute(context.Background(), "p", "u", nil)
	require.NoError(t, err)
	require.Contains(t, out, "cleared")
	require.Equal(t, []string{"p"}, gateway.deleted)
	require.Empty(t, mem.Snapshot(key))
}

type stubBrowser struct {
	stats core.CorpusStats
}

func (b *stubBrowser) Filtered(context.Context, core.CorpusFilter) ([]core.CorpusRecord, error) {
	return nil, nil
}

func (b *stubBrowser) Stats(context.Context) (core.CorpusStats, error) {
	return b.stats, nil
}

func TestStatsCommand(t *testing.T) {
	browser := &stubBrowser{stats: core.CorpusStats{
		TotalRecords: 12,
		Interesting:  5,
		ByPotential:  map[core.DocumentaryPotential]int{core.PotentialYes: 3, core.PotentialMaybe: 2},
	}}

	out, err := NewStatsCommand(browser).Execute(context.Background(), "p", "u", nil)
	require.NoError(t, err)
	require.Contains(t, out, "12")
	require.Contains(t, out, "YES: 3")
	require.Contains(t, out, "MAYBE: 2")
}

func TestFocusCommand(t *testing.T) {
	mem := memory.NewManager(memory.NewInProcessStore(), 10)
	key := memory.Key{ProjectID: "p", UserID: "u"}

	out, err := NewFocusCommand(mem).Execute(context.Background(), "p", "u", nil)
	require.NoError(t, err)
	require.Contains(t, out, "Tip")

	mem.DeriveResearchFocus(key, []string{"arson", "docks"})
	out, err = NewFocusCommand(mem).Execute(context.Background(), "p", "u", nil)
	require.NoError(t, err)
	require.Contains(t, out, "arson")
	require.Contains(t, out, "docks")
}

func TestHelpCommand_ListsEverything(t *testing.T) {
	mem := memory.NewManager(memory.NewInProcessStore(), 10)
	cmds := NewCommands(mem, &stubGateway{}, &stubBrowser{})
	router := New(cmds)

	out, routed := router.Execute(context.Background(), "p", "u", "/help")
	require.True(t, routed)
	for _, name := range []string{"/help", "/clear", "/stats", "/focus"} {
		require.Contains(t, out, name)
	}
}
