package lms

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/misterclayt0n/fitcalc/internal/bmi"
	"github.com/misterclayt0n/fitcalc/internal/models"
)

const tomlDataset = `
[[male]]
l = -1.5
m = 16.5
s = 0.08

[[male]]
l = -1.6
m = 16.4
s = 0.081

[[female]]
l = -1.2
m = 16.2
s = 0.085
`

const yamlDataset = `
male:
  - {l: -1.5, m: 16.5, s: 0.08}
female:
  - {l: -1.2, m: 16.2, s: 0.085}
  - {l: -1.3, m: 16.1, s: 0.086}
`

const jsonDataset = `{"male":[{"l":-1.5,"m":16.5,"s":0.08}],"female":[]}`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		format     string
		data       string
		male       int
		female     int
		secondMale bmi.LMS
	}{
		{"toml", tomlDataset, 2, 1, bmi.LMS{L: -1.6, M: 16.4, S: 0.081}},
		{".yaml", yamlDataset, 1, 2, bmi.LMS{}},
		{"yml", yamlDataset, 1, 2, bmi.LMS{}},
		{"JSON", jsonDataset, 1, 0, bmi.LMS{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			table, err := Decode([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if table.Len(models.Male) != tt.male || table.Len(models.Female) != tt.female {
				t.Errorf("lengths = %d/%d, want %d/%d",
					table.Len(models.Male), table.Len(models.Female), tt.male, tt.female)
			}
			row, ok := table.Lookup(models.Male, bmi.MinMonth)
			if !ok || row.M != 16.5 {
				t.Errorf("first male row = %+v, %v", row, ok)
			}
			row, ok = table.Lookup(models.Male, bmi.MinMonth+1)
			if ok != (tt.male > 1) || row != tt.secondMale {
				t.Errorf("second male row = %+v, %v", row, ok)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte(tomlDataset), "csv"); err == nil {
		t.Error("csv should be unsupported")
	}
	if _, err := Decode([]byte("male = ["), "toml"); err == nil {
		t.Error("broken toml should fail")
	}
	if _, err := NewTable(make([]bmi.LMS, bmi.MonthsPerSex+1), nil); err == nil {
		t.Error("oversized table should fail")
	}
}

func TestLookupRange(t *testing.T) {
	rows := make([]bmi.LMS, bmi.MonthsPerSex)
	for i := range rows {
		rows[i] = bmi.LMS{L: -1, M: 15 + float64(i)/100, S: 0.1}
	}
	table, err := NewTable(rows, rows)
	if err != nil {
		t.Fatal(err)
	}
	if !table.Complete() {
		t.Error("full table not complete")
	}
	if _, ok := table.Lookup(models.Female, bmi.MinMonth-1); ok {
		t.Error("month 23 should miss")
	}
	if _, ok := table.Lookup(models.Female, bmi.MaxMonth+1); ok {
		t.Error("month 252 should miss")
	}
	row, ok := table.Lookup(models.Female, bmi.MaxMonth)
	if !ok || math.Abs(row.M-(15+227.0/100)) > 1e-12 {
		t.Errorf("month 251 = %+v, %v", row, ok)
	}

	// The table is a copy; mutating the input does not leak in.
	rows[0].M = 99
	if r, _ := table.Lookup(models.Male, bmi.MinMonth); r.M == 99 {
		t.Error("table shares caller's slice")
	}

	var empty *Table
	if _, ok := empty.Lookup(models.Male, 100); ok {
		t.Error("nil table should miss")
	}
}

func TestLoadAndDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmi.toml")
	if err := os.WriteFile(path, []byte(tomlDataset), 0644); err != nil {
		t.Fatal(err)
	}
	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	back, err := FromDataset(table.Dataset())
	if err != nil {
		t.Fatal(err)
	}
	for m := bmi.MinMonth; m < bmi.MinMonth+2; m++ {
		a, okA := table.Lookup(models.Male, m)
		b, okB := back.Lookup(models.Male, m)
		if a != b || okA != okB {
			t.Errorf("month %d: %+v/%v vs %+v/%v", m, a, okA, b, okB)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLazy(t *testing.T) {
	table, _ := Decode([]byte(tomlDataset), "toml")
	release := make(chan struct{})
	l := LoadLazy(func() (*Table, error) {
		<-release
		return table, nil
	})

	if _, ok := l.Lookup(models.Male, bmi.MinMonth); ok {
		t.Error("lookup hit before load finished")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait before release = %v, want deadline exceeded", err)
	}

	close(release)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !l.Ready() {
		t.Error("not ready after load")
	}
	if _, ok := l.Lookup(models.Male, bmi.MinMonth); !ok {
		t.Error("lookup missed after load")
	}
}

func TestLazyFailure(t *testing.T) {
	boom := errors.New("boom")
	l := LoadLazy(func() (*Table, error) { return nil, boom })
	if err := l.Wait(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Wait = %v, want boom", err)
	}
	if l.Ready() {
		t.Error("failed load reported ready")
	}
	if _, ok := l.Lookup(models.Female, 100); ok {
		t.Error("failed load served a row")
	}

	// The engine keeps working through the proxy.
	p := bmi.NewEngine(l).ChildPercentile(10, models.Male, 21.8)
	if p.Method != bmi.MethodProxy {
		t.Errorf("method = %v, want proxy", p.Method)
	}
}
