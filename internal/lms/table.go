// Package lms holds BMI-for-age growth reference data and serves it to the
// bmi engine.
package lms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fitcalc/internal/bmi"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"gopkg.in/yaml.v3"
)

// Table is an immutable in-memory reference. Entry i of a sex is month 24+i.
type Table struct {
	male   []bmi.LMS
	female []bmi.LMS
}

// NewTable copies the rows. A sex may have fewer than 228 entries; months
// past the end are reported as missing.
func NewTable(male, female []bmi.LMS) (*Table, error) {
	if len(male) > bmi.MonthsPerSex || len(female) > bmi.MonthsPerSex {
		return nil, fmt.Errorf("too many entries (male %d, female %d), max %d per sex",
			len(male), len(female), bmi.MonthsPerSex)
	}
	return &Table{
		male:   append([]bmi.LMS(nil), male...),
		female: append([]bmi.LMS(nil), female...),
	}, nil
}

func (t *Table) rows(sex models.Sex) []bmi.LMS {
	if sex == models.Female {
		return t.female
	}
	return t.male
}

func (t *Table) Lookup(sex models.Sex, month int) (bmi.LMS, bool) {
	if t == nil || month < bmi.MinMonth || month > bmi.MaxMonth {
		return bmi.LMS{}, false
	}
	rows := t.rows(sex)
	i := month - bmi.MinMonth
	if i >= len(rows) {
		return bmi.LMS{}, false
	}
	return rows[i], true
}

// Len is the number of months available for sex.
func (t *Table) Len(sex models.Sex) int {
	if t == nil {
		return 0
	}
	return len(t.rows(sex))
}

// Complete reports whether both sexes cover every month.
func (t *Table) Complete() bool {
	return t.Len(models.Male) == bmi.MonthsPerSex && t.Len(models.Female) == bmi.MonthsPerSex
}

// Dataset converts the table back to its file shape.
func (t *Table) Dataset() models.LMSDatasetTOML {
	conv := func(rows []bmi.LMS) []models.LMSEntryTOML {
		out := make([]models.LMSEntryTOML, len(rows))
		for i, r := range rows {
			out[i] = models.LMSEntryTOML{L: r.L, M: r.M, S: r.S}
		}
		return out
	}
	return models.LMSDatasetTOML{Male: conv(t.male), Female: conv(t.female)}
}

func FromDataset(ds models.LMSDatasetTOML) (*Table, error) {
	conv := func(entries []models.LMSEntryTOML) []bmi.LMS {
		out := make([]bmi.LMS, len(entries))
		for i, e := range entries {
			out[i] = bmi.LMS{L: e.L, M: e.M, S: e.S}
		}
		return out
	}
	return NewTable(conv(ds.Male), conv(ds.Female))
}

// Decode parses a dataset in the given format: "toml", "yaml"/"yml" or "json".
func Decode(data []byte, format string) (*Table, error) {
	var ds models.LMSDatasetTOML
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		err = toml.Unmarshal(data, &ds)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &ds)
	case "json":
		err = json.Unmarshal(data, &ds)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s dataset: %w", format, err)
	}
	return FromDataset(ds)
}

// Load reads a dataset file, picking the format from its extension.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}
