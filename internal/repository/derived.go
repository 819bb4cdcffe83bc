package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"puckpattern/internal/db"
	"puckpattern/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// DerivedRepository persists the classified records produced by the
// event classifier: shots, zone entries, passes and puck recoveries.
// Each record is keyed by its source event, so rewrites replace.
type DerivedRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewDerivedRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *DerivedRepository {
	return &DerivedRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// GetClassifiedEventIDs returns the ids of a game's events that already
// have a derived record of any kind.
func (r *DerivedRepository) GetClassifiedEventIDs(ctx context.Context, gameID string) (map[string]bool, error) {
	ids, err := r.queries.GetClassifiedEventIDs(ctx, db.GetClassifiedEventIDsParams{
		GameID:   gameID,
		GameID_2: gameID,
		GameID_3: gameID,
		GameID_4: gameID,
	})
	if err != nil {
		return nil, err
	}

	result := make(map[string]bool, len(ids))
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// SaveAll writes every derived record in one transaction. Records with
// no row id get a fresh nanoid.
func (r *DerivedRepository) SaveAll(ctx context.Context, shots []domain.ClassifiedShot, entries []domain.ZoneEntry, passes []domain.ClassifiedPass, recoveries []domain.PuckRecovery) error {
	if len(shots) == 0 && len(entries) == 0 && len(passes) == 0 && len(recoveries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for _, shot := range shots {
		id, err := rowID(shot.ID)
		if err != nil {
			return err
		}
		err = qtx.InsertShotEvent(ctx, db.InsertShotEventParams{
			ID:                id,
			EventID:           shot.EventID,
			ShotType:          shot.ShotType,
			Distance:          shot.Distance,
			Angle:             shot.Angle,
			IsGoal:            shot.Goal,
			Xg:                shot.XG,
			ShooterID:         shot.ShooterID,
			GoalieID:          shot.GoalieID,
			PrimaryAssistID:   shot.PrimaryAssistID,
			SecondaryAssistID: shot.SecondaryAssistID,
			PrecedingEventID:  shot.PrecedingEventID,
			IsScoringChance:   shot.ScoringChance,
			IsHighDanger:      shot.HighDanger,
			IsRush:            shot.RushShot,
			IsRebound:         shot.ReboundShot,
			CreatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert shot for event %s: %w", shot.EventID, err)
		}
	}

	for _, entry := range entries {
		id, err := rowID(entry.ID)
		if err != nil {
			return err
		}
		err = qtx.InsertZoneEntry(ctx, db.InsertZoneEntryParams{
			ID:             id,
			EventID:        entry.EventID,
			EntryType:      entry.EntryType,
			Controlled:     entry.Controlled,
			PlayerID:       entry.PlayerID,
			DefenderID:     entry.DefenderID,
			LeadToShot:     entry.LeadToShot,
			LeadToShotTime: entry.LeadToShotTime,
			AttackSpeed:    entry.AttackSpeed,
			CreatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert zone entry for event %s: %w", entry.EventID, err)
		}
	}

	for _, pass := range passes {
		id, err := rowID(pass.ID)
		if err != nil {
			return err
		}
		err = qtx.InsertPass(ctx, db.InsertPassParams{
			ID:              id,
			EventID:         pass.EventID,
			PasserID:        pass.PasserID,
			RecipientID:     pass.RecipientID,
			PassType:        pass.PassType,
			Zone:            string(pass.Zone),
			Completed:       pass.Completed,
			Intercepted:     pass.Intercepted,
			InterceptedByID: pass.InterceptedByID,
			Distance:        pass.Distance,
			AngleChange:     pass.AngleChange,
			CreatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert pass for event %s: %w", pass.EventID, err)
		}
	}

	for _, rec := range recoveries {
		id, err := rowID(rec.ID)
		if err != nil {
			return err
		}
		err = qtx.InsertPuckRecovery(ctx, db.InsertPuckRecoveryParams{
			ID:               id,
			EventID:          rec.EventID,
			PlayerID:         rec.PlayerID,
			Zone:             string(rec.Zone),
			RecoveryType:     rec.RecoveryType,
			LeadToPossession: rec.LeadToPossession,
			PrecededByID:     rec.PrecededByID,
			CreatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert recovery for event %s: %w", rec.EventID, err)
		}
	}

	return tx.Commit()
}

func (r *DerivedRepository) GetShotsByGame(ctx context.Context, gameID string) ([]domain.ClassifiedShot, error) {
	rows, err := r.queries.GetShotsByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.ClassifiedShot, len(rows))
	for i, row := range rows {
		result[i] = domain.ClassifiedShot{
			ID:                row.ID,
			EventID:           row.EventID,
			ShotType:          row.ShotType,
			Distance:          row.Distance,
			Angle:             row.Angle,
			Goal:              row.IsGoal,
			XG:                row.Xg,
			ShooterID:         row.ShooterID,
			GoalieID:          row.GoalieID,
			PrimaryAssistID:   row.PrimaryAssistID,
			SecondaryAssistID: row.SecondaryAssistID,
			PrecedingEventID:  row.PrecedingEventID,
			ScoringChance:     row.IsScoringChance,
			HighDanger:        row.IsHighDanger,
			RushShot:          row.IsRush,
			ReboundShot:       row.IsRebound,
			CreatedAt:         row.CreatedAt,
		}
	}
	return result, nil
}

func (r *DerivedRepository) GetZoneEntriesByGame(ctx context.Context, gameID string) ([]domain.ZoneEntry, error) {
	rows, err := r.queries.GetZoneEntriesByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.ZoneEntry, len(rows))
	for i, row := range rows {
		result[i] = domain.ZoneEntry{
			ID:             row.ID,
			EventID:        row.EventID,
			EntryType:      row.EntryType,
			Controlled:     row.Controlled,
			PlayerID:       row.PlayerID,
			DefenderID:     row.DefenderID,
			LeadToShot:     row.LeadToShot,
			LeadToShotTime: row.LeadToShotTime,
			AttackSpeed:    row.AttackSpeed,
			CreatedAt:      row.CreatedAt,
		}
	}
	return result, nil
}

func (r *DerivedRepository) GetPassesByGame(ctx context.Context, gameID string) ([]domain.ClassifiedPass, error) {
	rows, err := r.queries.GetPassesByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.ClassifiedPass, len(rows))
	for i, row := range rows {
		result[i] = domain.ClassifiedPass{
			ID:              row.ID,
			EventID:         row.EventID,
			PasserID:        row.PasserID,
			RecipientID:     row.RecipientID,
			PassType:        row.PassType,
			Zone:            domain.Zone(row.Zone),
			Completed:       row.Completed,
			Intercepted:     row.Intercepted,
			InterceptedByID: row.InterceptedByID,
			Distance:        row.Distance,
			AngleChange:     row.AngleChange,
			CreatedAt:       row.CreatedAt,
		}
	}
	return result, nil
}

func (r *DerivedRepository) GetPuckRecoveriesByGame(ctx context.Context, gameID string) ([]domain.PuckRecovery, error) {
	rows, err := r.queries.GetPuckRecoveriesByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.PuckRecovery, len(rows))
	for i, row := range rows {
		result[i] = domain.PuckRecovery{
			ID:               row.ID,
			EventID:          row.EventID,
			PlayerID:         row.PlayerID,
			Zone:             domain.Zone(row.Zone),
			RecoveryType:     row.RecoveryType,
			LeadToPossession: row.LeadToPossession,
			PrecededByID:     row.PrecededByID,
			CreatedAt:        row.CreatedAt,
		}
	}
	return result, nil
}

func rowID(existing string) (string, error) {
	if existing != "" {
		return existing, nil
	}
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}
	return id, nil
}
