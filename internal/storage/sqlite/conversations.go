package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/muckraker/internal/core"
)

// ConversationsRepo is the durable side of conversation memory. The agent
// treats it as best-effort; callers here still get real errors.
type ConversationsRepo struct {
	db *sql.DB
}

func NewConversationsRepo(db *sql.DB) *ConversationsRepo {
	return &ConversationsRepo{db: db}
}

func (r *ConversationsRepo) Upsert(ctx context.Context, projectID, userID string, messages []core.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO conversations (project_id, user_id, messages)
		 VALUES (?, ?, ?)
		 ON CONFLICT (project_id, user_id)
		 DO UPDATE SET messages = excluded.messages, updated_at = CURRENT_TIMESTAMP`,
		projectID, userID, string(data),
	)
	if err != nil {
		return fmt.Errorf("upsert conversation: %w", err)
	}
	return nil
}

func (r *ConversationsRepo) Delete(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM conversations WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("delete conversations: %w", err)
	}
	return nil
}

func (r *ConversationsRepo) Load(ctx context.Context, projectID, userID string) ([]core.Message, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT messages FROM conversations WHERE project_id = ? AND user_id = ?`,
		projectID, userID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	var messages []core.Message
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}
	return messages, nil
}
