package store

import (
	"context"
	"fmt"
)

// LLMRequestEvent captures one remote generation call.
type LLMRequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventLog records LLM request events. The logging middleware in
// internal/llm writes through this; `witsiq stats` reads it back.
type EventLog interface {
	AppendLLMRequest(ctx context.Context, ev LLMRequestEvent) error
}

// AppendLLMRequest appends an LLM request event.
func (s *Store) AppendLLMRequest(ctx context.Context, ev LLMRequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Provider, ev.Model, ev.Purpose,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs,
		ev.Success, ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// LLMUsage aggregates the event log for display.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// UsageByPurpose returns aggregate usage keyed by the purpose label.
func (s *Store) UsageByPurpose(ctx context.Context) (map[string]LLMUsage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT purpose,
			COUNT(*),
			SUM(CASE WHEN success THEN 0 ELSE 1 END),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0)
		 FROM llm_events GROUP BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]LLMUsage)
	for rows.Next() {
		var purpose string
		var u LLMUsage
		if err := rows.Scan(&purpose, &u.Requests, &u.Failures, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		usage[purpose] = u
	}
	return usage, rows.Err()
}
