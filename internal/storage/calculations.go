package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/fitcalc/internal/models"
)

// SaveCalculation stores one calculator run and returns it with its id and timestamp filled in.
func (s *Storage) SaveCalculation(ctx context.Context, c models.Calculation) (models.Calculation, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO calculations (id, kind, input, result, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID,
		c.Kind,
		c.Input,
		c.Result,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return c, fmt.Errorf("failed to save calculation: %w", err)
	}
	return c, nil
}

// ListCalculations returns the newest runs first. An empty kind matches all kinds.
func (s *Storage) ListCalculations(ctx context.Context, kind string, limit int) ([]models.Calculation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, kind, input, result, created_at
		FROM calculations
		WHERE (? = '' OR kind = ?)
		ORDER BY created_at DESC
		LIMIT ?`,
		kind, kind, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	var out []models.Calculation
	for rows.Next() {
		var c models.Calculation
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Kind, &c.Input, &c.Result, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteCalculations removes runs of one kind, or all runs when kind is empty.
func (s *Storage) DeleteCalculations(ctx context.Context, kind string) (int64, error) {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM calculations WHERE (? = '' OR kind = ?)`,
		kind, kind,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete calculations: %w", err)
	}
	return res.RowsAffected()
}
