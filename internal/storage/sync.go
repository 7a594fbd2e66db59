package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fitcalc/internal/config"
)

// Tables owned by fitcalc; dumps only ever touch these.
var dumpTables = []string{"calculations", "lms_reference"}

type dump map[string][]map[string]interface{}

// ExportDBToTOML exports all data from the database into a single TOML file.
// For each table it retrieves all rows (as maps from column names to values)
// and writes the result to outputPath.
func (s *Storage) ExportDBToTOML(outputPath string) error {
	dbDump := make(dump)

	for _, tableName := range dumpTables {
		query := fmt.Sprintf("SELECT * FROM %s;", tableName)
		tableRows, err := s.DB.Query(query)
		if err != nil {
			return fmt.Errorf("querying table %s: %w", tableName, err)
		}

		cols, err := tableRows.Columns()
		if err != nil {
			tableRows.Close()
			return fmt.Errorf("getting columns for table %s: %w", tableName, err)
		}

		var tableData []map[string]interface{}
		for tableRows.Next() {
			values := make([]interface{}, len(cols))
			valuePtrs := make([]interface{}, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := tableRows.Scan(valuePtrs...); err != nil {
				tableRows.Close()
				return fmt.Errorf("scanning row in table %s: %w", tableName, err)
			}

			tableData = append(tableData, rowMap(cols, values))
		}
		tableRows.Close()

		dbDump[tableName] = tableData
	}

	data, err := encodeDump(dbDump)
	if err != nil {
		return err
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}

func rowMap(cols []string, values []interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(cols))
	for i, col := range cols {
		val := values[i]
		if b, ok := val.([]byte); ok {
			m[col] = string(b)
		} else {
			m[col] = val
		}
	}
	return m
}

func encodeDump(d dump) ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(d); err != nil {
		return nil, fmt.Errorf("encoding TOML: %w", err)
	}
	return []byte(sb.String()), nil
}

func decodeDump(data []byte) (dump, error) {
	var d dump
	if _, err := toml.Decode(string(data), &d); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}
	for table := range d {
		if !slices.Contains(dumpTables, table) {
			return nil, fmt.Errorf("unknown table %q in dump", table)
		}
	}
	return d, nil
}

// GetDBExportPath returns the default dump location, ~/.config/fitcalc/db_dump.toml.
func GetDBExportPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// ImportDBFromTOML reads the TOML dump file at filePath and rebuilds the database
// by deleting current rows from the dumped tables and then inserting the rows from the dump.
func (s *Storage) ImportDBFromTOML(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	dbDump, err := decodeDump(data)
	if err != nil {
		return err
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range dumpTables {
		rows, ok := dbDump[table]
		if !ok {
			continue
		}

		// Clear the table first.
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}

		for _, row := range rows {
			query, values := insertStatement(table, row)
			if _, err := tx.Exec(query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// insertStatement builds an INSERT with columns in sorted order.
func insertStatement(table string, row map[string]interface{}) (string, []interface{}) {
	columns := make([]string, 0, len(row))
	for col := range row {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	values := make([]interface{}, len(columns))
	for i, col := range columns {
		placeholders[i] = "?"
		values[i] = row[col]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	return query, values
}
