package storage

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/fitcalc/internal/bmi"
	"github.com/misterclayt0n/fitcalc/internal/lms"
	"github.com/misterclayt0n/fitcalc/internal/models"
)

type lmsRow struct {
	sex   string
	month int
	row   bmi.LMS
}

// ImportLMS replaces the stored reference with t.
func (s *Storage) ImportLMS(ctx context.Context, t *lms.Table) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lms_reference`); err != nil {
		return fmt.Errorf("failed to clear reference: %w", err)
	}

	for _, sex := range []models.Sex{models.Male, models.Female} {
		for i := 0; i < t.Len(sex); i++ {
			month := bmi.MinMonth + i
			r, _ := t.Lookup(sex, month)
			_, err := tx.ExecContext(ctx,
				`INSERT INTO lms_reference (sex, month, l, m, s) VALUES (?, ?, ?, ?, ?)`,
				sex.String(), month, r.L, r.M, r.S,
			)
			if err != nil {
				return fmt.Errorf("failed to insert %s month %d: %w", sex, month, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadLMS reads the stored reference. An empty table is not an error; the
// engine falls back for every lookup.
func (s *Storage) LoadLMS(ctx context.Context) (*lms.Table, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT sex, month, l, m, s FROM lms_reference ORDER BY sex, month`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference: %w", err)
	}
	defer rows.Close()

	var all []lmsRow
	for rows.Next() {
		var r lmsRow
		if err := rows.Scan(&r.sex, &r.month, &r.row.L, &r.row.M, &r.row.S); err != nil {
			return nil, fmt.Errorf("failed to scan reference row: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assembleTable(all)
}

// assembleTable orders rows by month per sex. Each sex is cut at its first
// missing month so that entry i stays month 24+i.
func assembleTable(all []lmsRow) (*lms.Table, error) {
	bySex := map[models.Sex]map[int]bmi.LMS{
		models.Male:   {},
		models.Female: {},
	}
	for _, r := range all {
		sex, err := models.ParseSex(r.sex)
		if err != nil {
			return nil, err
		}
		bySex[sex][r.month] = r.row
	}

	contiguous := func(months map[int]bmi.LMS) []bmi.LMS {
		var out []bmi.LMS
		for m := bmi.MinMonth; m <= bmi.MaxMonth; m++ {
			r, ok := months[m]
			if !ok {
				break
			}
			out = append(out, r)
		}
		return out
	}
	return lms.NewTable(contiguous(bySex[models.Male]), contiguous(bySex[models.Female]))
}
