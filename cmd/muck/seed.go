package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandevgo/muckraker/internal/config"
	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/storage/sqlite"
	"github.com/sandevgo/muckraker/pkg/log"
)

var seedFile string

// seedRecord carries analysis fields that live next to the record in the
// archive but outside the CorpusRecord shape the agent sees.
type seedRecord struct {
	core.CorpusRecord
	Interesting bool   `json:"interesting"`
	Analysis    string `json:"analysis,omitempty"`
}

type seedPayload struct {
	Project core.ProjectMetadata `json:"project"`
	Records []seedRecord         `json:"records"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a project and its archive records from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		raw, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}

		var payload seedPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}
		if payload.Project.ID == "" {
			payload.Project.ID = projectID
		}

		appCfg := config.NewAppConfig(ctx)
		if err := os.MkdirAll(appCfg.RuntimePath, 0755); err != nil {
			return fmt.Errorf("create runtime directory: %w", err)
		}

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := sqlite.NewProjectsRepo(db).Upsert(ctx, payload.Project); err != nil {
			return fmt.Errorf("upsert project: %w", err)
		}

		corpus := sqlite.NewCorpusRepo(db)
		for i, rec := range payload.Records {
			if err := corpus.Insert(ctx, rec.CorpusRecord, rec.Interesting, rec.Analysis); err != nil {
				return fmt.Errorf("insert record %d: %w", i, err)
			}
		}

		logger.Info().
			Str("project_id", payload.Project.ID).
			Int("records", len(payload.Records)).
			Msg("archive seeded")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "corpus.json", "JSON file with project and records")
	rootCmd.AddCommand(seedCmd)
}
