// internal/adapter/storage/jot_state_store.go

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"jotfeed/internal/domain/jot"
)

// JotStateStore persists the mutable slice of jot state between simulation
// runs. Static identity and personality always come from the seeded registry;
// only energy, mood, context and memory survive a restart.
type JotStateStore struct {
	db *pgxpool.Pool
}

// NewJotStateStore creates a new jot state store
func NewJotStateStore(db *pgxpool.Pool) *JotStateStore {
	return &JotStateStore{
		db: db,
	}
}

// SaveState upserts the mutable state for one jot
func (s *JotStateStore) SaveState(ctx context.Context, state jot.MutableState) error {
	query := `
		INSERT INTO jot_states (
			jot_id, energy_level, mood_state, current_context,
			last_active_time, memory, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (jot_id) DO UPDATE
		SET
			energy_level = $2,
			mood_state = $3,
			current_context = $4,
			last_active_time = $5,
			memory = $6,
			updated_at = $7
	`

	memoryJSON, err := json.Marshal(state.Memory)
	if err != nil {
		return fmt.Errorf("error marshaling memory: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		query,
		state.JotID,
		state.EnergyLevel,
		state.MoodState,
		state.CurrentContext,
		state.LastActiveTime,
		memoryJSON,
		time.Now(),
	)

	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// SaveAll persists the mutable state of every jot in the registry
func (s *JotStateStore) SaveAll(ctx context.Context, registry jot.Registry) error {
	for _, j := range registry.All() {
		if err := s.SaveState(ctx, j.State()); err != nil {
			return fmt.Errorf("error saving state for jot %s: %w", j.ID, err)
		}
	}

	return nil
}

// GetState retrieves the persisted mutable state for one jot
func (s *JotStateStore) GetState(ctx context.Context, jotID string) (*jot.MutableState, error) {
	query := `
		SELECT
			jot_id, energy_level, mood_state, current_context,
			last_active_time, memory
		FROM jot_states
		WHERE jot_id = $1
	`

	var state jot.MutableState
	var memoryJSON []byte

	err := s.db.QueryRow(ctx, query, jotID).Scan(
		&state.JotID,
		&state.EnergyLevel,
		&state.MoodState,
		&state.CurrentContext,
		&state.LastActiveTime,
		&memoryJSON,
	)

	if err != nil {
		return nil, fmt.Errorf("error querying jot state: %w", err)
	}

	if err := json.Unmarshal(memoryJSON, &state.Memory); err != nil {
		return nil, fmt.Errorf("error unmarshaling memory: %w", err)
	}

	return &state, nil
}

// RestoreAll applies any persisted state to the jots in the registry. Jots
// without a stored row keep their seeded initial state.
func (s *JotStateStore) RestoreAll(ctx context.Context, registry jot.Registry) error {
	query := `
		SELECT
			jot_id, energy_level, mood_state, current_context,
			last_active_time, memory
		FROM jot_states
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var state jot.MutableState
		var memoryJSON []byte

		err := rows.Scan(
			&state.JotID,
			&state.EnergyLevel,
			&state.MoodState,
			&state.CurrentContext,
			&state.LastActiveTime,
			&memoryJSON,
		)

		if err != nil {
			return fmt.Errorf("error scanning jot state: %w", err)
		}

		if err := json.Unmarshal(memoryJSON, &state.Memory); err != nil {
			return fmt.Errorf("error unmarshaling memory: %w", err)
		}

		j, ok := registry.Get(state.JotID)
		if !ok {
			// A persisted row for a jot no longer seeded is stale data,
			// not an error
			continue
		}

		j.RestoreState(state)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating jot states: %w", err)
	}

	return nil
}
