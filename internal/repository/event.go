package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"puckpattern/internal/constants"
	"puckpattern/internal/db"
	"puckpattern/internal/domain"

	"github.com/rs/zerolog"
)

// EventRepository persists raw play-by-play events. Events are keyed by
// feed id, so re-ingesting a game is an upsert, not a duplication.
type EventRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewEventRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *EventRepository) UpsertBatch(ctx context.Context, events []domain.RawEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for i := 0; i < len(events); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(events) {
			end = len(events)
		}

		for _, ev := range events[i:end] {
			err := qtx.UpsertGameEvent(ctx, db.UpsertGameEventParams{
				ID:                ev.ID,
				GameID:            ev.GameID,
				EventType:         ev.EventType,
				ShotType:          ev.ShotType,
				Period:            int64(ev.Period),
				TimeElapsed:       ev.TimeElapsed,
				X:                 ev.X,
				Y:                 ev.Y,
				PlayerID:          ev.PlayerID,
				TeamID:            ev.TeamID,
				GoalieID:          ev.GoalieID,
				PrimaryAssistID:   ev.PrimaryAssistID,
				SecondaryAssistID: ev.SecondaryAssistID,
				FaceoffLoserID:    ev.FaceoffLoserID,
				BlockerID:         ev.BlockerID,
				Situation:         string(ev.Situation),
				IsScoringPlay:     ev.IsScoringPlay,
				IsPenalty:         ev.IsPenalty,
				PenaltyMinutes:    int64(ev.PenaltyMinutes),
				SortOrder:         int64(ev.SortOrder),
				CreatedAt:         now,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert event %s: %w", ev.ID, err)
			}
		}
	}

	return tx.Commit()
}

// GetByGame returns a game's events in processing order:
// (period, time_elapsed, sort_order).
func (r *EventRepository) GetByGame(ctx context.Context, gameID string) ([]domain.RawEvent, error) {
	rows, err := r.queries.GetGameEvents(ctx, gameID)
	if err != nil {
		return nil, err
	}

	events := make([]domain.RawEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.RawEvent{
			ID:                row.ID,
			GameID:            row.GameID,
			EventType:         row.EventType,
			ShotType:          row.ShotType,
			Period:            int(row.Period),
			TimeElapsed:       row.TimeElapsed,
			X:                 row.X,
			Y:                 row.Y,
			PlayerID:          row.PlayerID,
			TeamID:            row.TeamID,
			GoalieID:          row.GoalieID,
			PrimaryAssistID:   row.PrimaryAssistID,
			SecondaryAssistID: row.SecondaryAssistID,
			FaceoffLoserID:    row.FaceoffLoserID,
			BlockerID:         row.BlockerID,
			Situation:         domain.Situation(row.Situation),
			IsScoringPlay:     row.IsScoringPlay,
			IsPenalty:         row.IsPenalty,
			PenaltyMinutes:    int(row.PenaltyMinutes),
			SortOrder:         int(row.SortOrder),
			CreatedAt:         row.CreatedAt,
		}
	}
	return events, nil
}

func (r *EventRepository) CountByGame(ctx context.Context, gameID string) (int64, error) {
	return r.queries.CountGameEvents(ctx, gameID)
}
