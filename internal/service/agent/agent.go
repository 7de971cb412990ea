package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/memory"
	"github.com/sandevgo/muckraker/pkg/log"
	"github.com/sandevgo/muckraker/pkg/tokens"
)

// Options tunes the per-turn pipeline. Zero values fall back to defaults, so
// tests can construct an Agent without a config layer.
type Options struct {
	SearchLimit        int
	DiverseSampleLimit int
	ContextRecordCap   int
	ContextWindow      int
}

const (
	defaultSearchLimit        = 25
	defaultDiverseSampleLimit = 30
	defaultContextRecordCap   = 12
	defaultContextWindow      = 5
)

func (o Options) withDefaults() Options {
	if o.SearchLimit <= 0 {
		o.SearchLimit = defaultSearchLimit
	}
	if o.DiverseSampleLimit <= 0 {
		o.DiverseSampleLimit = defaultDiverseSampleLimit
	}
	if o.ContextRecordCap <= 0 {
		o.ContextRecordCap = defaultContextRecordCap
	}
	if o.ContextWindow <= 0 {
		o.ContextWindow = defaultContextWindow
	}
	return o
}

// Agent runs one conversational turn end to end: classify, retrieve,
// assemble, generate, remember, persist.
type Agent struct {
	corpus   core.CorpusSearcher
	projects core.ProjectDirectory
	gateway  core.ConversationGateway
	memory   *memory.Manager
	chain    *Chain
	canned   *CannedStrategy
	opts     Options
}

func New(corpus core.CorpusSearcher, projects core.ProjectDirectory, gateway core.ConversationGateway, mem *memory.Manager, chain *Chain, opts Options) *Agent {
	return &Agent{
		corpus:   corpus,
		projects: projects,
		gateway:  gateway,
		memory:   mem,
		chain:    chain,
		canned:   NewCannedStrategy(),
		opts:     opts.withDefaults(),
	}
}

// ProcessTurn handles one user message. The only error it returns is an
// unknown project; every downstream failure degrades into a poorer response
// instead of failing the turn.
func (a *Agent) ProcessTurn(ctx context.Context, projectID, userID, userMessage string) (core.AgentResponse, error) {
	logger := log.FromCtx(ctx)

	project, err := a.projects.Get(ctx, projectID)
	if err != nil {
		return core.AgentResponse{}, fmt.Errorf("resolve project %q: %w", projectID, err)
	}

	key := memory.Key{ProjectID: projectID, UserID: userID}
	a.memory.Append(key, core.Message{Role: core.RoleUser, Content: userMessage, Timestamp: time.Now()})

	intent := ClassifyIntent(userMessage)
	keywords := searchKeywords(intent, userMessage)
	a.memory.DeriveResearchFocus(key, keywords)

	records := a.retrieve(ctx, intent, keywords)

	convCtx := DeriveContext(a.recentWindow(key), a.memory.Open(key).ResearchFocus, intent)
	a.memory.SetContext(key, convCtx)

	in := BuildInput(userMessage, convCtx, records, a.opts.ContextRecordCap, project)

	var resp core.AgentResponse
	if fastPath(intent) {
		// Greetings and catalog overviews never need retrieval context or a
		// model call. Catalog in particular must stay a short teaser that
		// ends on a question instead of dumping titles.
		resp, _ = a.canned.Generate(ctx, in)
	} else {
		resp = a.chain.Generate(ctx, in)
	}

	if len(records) == 0 && !fastPath(intent) {
		resp = capForEmptyRetrieval(resp)
	}
	a.memory.DeriveResearchFocus(key, resp.InvestigativeLeads)
	resp.TokenUsage = tokens.Estimate(userMessage, resp.Message)
	logger.Debug().
		Str("intent", intent).
		Int("records", len(records)).
		Int("token_usage", resp.TokenUsage).
		Msg("turn complete")

	a.memory.Append(key, core.Message{Role: core.RoleAssistant, Content: resp.Message, Timestamp: time.Now()})

	if err := a.gateway.Upsert(ctx, projectID, userID, a.memory.Snapshot(key)); err != nil {
		logger.Warn().Err(err).Str("project_id", projectID).Msg("conversation persistence failed, continuing")
	}

	return resp, nil
}

// retrieve runs the keyword search and, when it comes back empty, re-queries
// for a diverse high-quality sample so the user still sees what the archive
// holds. A failing search degrades to no records.
func (a *Agent) retrieve(ctx context.Context, intent string, keywords []string) []core.CorpusRecord {
	logger := log.FromCtx(ctx)

	if fastPath(intent) {
		return nil
	}

	records, err := a.corpus.Search(ctx, core.CorpusQuery{Keywords: keywords, Limit: a.opts.SearchLimit})
	if err != nil {
		logger.Warn().Err(err).Strs("keywords", keywords).Msg("corpus search failed, continuing without records")
		return nil
	}
	if len(records) > 0 || len(keywords) == 0 {
		return records
	}

	sample, err := a.corpus.Search(ctx, core.CorpusQuery{Limit: a.opts.DiverseSampleLimit})
	if err != nil {
		logger.Warn().Err(err).Msg("diverse sample query failed, continuing without records")
		return nil
	}
	logger.Debug().Int("sample_size", len(sample)).Msg("keyword search empty, using diverse sample")
	return sample
}

// fastPath reports whether an intent is answered from the canned strategy
// alone, skipping retrieval and the generation chain.
func fastPath(intent string) bool {
	return intent == IntentGreeting || intent == IntentCatalog
}

func (a *Agent) recentWindow(key memory.Key) []core.Message {
	msgs := a.memory.Snapshot(key)
	if len(msgs) > a.opts.ContextWindow {
		msgs = msgs[len(msgs)-a.opts.ContextWindow:]
	}
	return msgs
}

const emptyRetrievalCeiling = 0.5

// capForEmptyRetrieval keeps an answer produced without any supporting
// records honest: confidence stays at or below the ceiling and the user
// always gets a way to redirect the search.
func capForEmptyRetrieval(resp core.AgentResponse) core.AgentResponse {
	if resp.Confidence.Overall > emptyRetrievalCeiling {
		resp.Confidence.Overall = emptyRetrievalCeiling
	}
	hasLimitation := false
	for _, l := range resp.Confidence.Limitations {
		if l == noRecordsLimitation {
			hasLimitation = true
			break
		}
	}
	if !hasLimitation {
		resp.Confidence.Limitations = append(resp.Confidence.Limitations, noRecordsLimitation)
	}
	if len(resp.FollowUpQuestions) == 0 {
		resp.FollowUpQuestions = []string{"Would you like to try different search terms or another angle?"}
	}
	return resp
}

const noRecordsLimitation = "No archive records supported this answer."
