// internal/results/load_test.go
package results

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadClassifiesAndCleans(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"dataset,horizon,split,model_combination,model_type,metric,value,seed",
		"ETT-small_ETTh1,96,test,DLinear-PatchTST,Student_RDT,mae,0.41,1",
		"ETT-small_ETTh1,96,test,PatchTST,PatchTST,mae,0.44, n/a ",
		"ETT-small_ETTh1,96,test,PatchTST,Student_TaskOnly,mse,not-a-number,1",
		"ETT-small_ETTh1,96,test,PatchTST,Student_TaskOnly,mse,,1",
		"ETT-small_ETTh1,96,test,PatchTST,Student_TaskOnly,mse,NaN,1",
		"ETT-small_ETTh1,96,val,PatchTST,Teacher,mse, 0.52 ,None",
	}, "\n"))

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records after dropping non-numeric values, got %d", len(records))
	}

	pair := records[0]
	if pair.TeacherModel != "DLinear" || pair.StudentModelArch != "PatchTST" || pair.TrainingMethod != MethodRDT {
		t.Fatalf("unexpected pair classification: %+v", pair)
	}
	if pair.Value != 0.41 {
		t.Fatalf("expected value 0.41, got %v", pair.Value)
	}
	if pair.Extra["seed"] != "1" {
		t.Fatalf("expected extra column kept, got %v", pair.Extra)
	}

	direct := records[1]
	if direct.TeacherModel != "" {
		t.Fatalf("expected no-teacher sentinel normalized to empty, got %q", direct.TeacherModel)
	}
	if direct.TrainingMethod != MethodDirect {
		t.Fatalf("expected Direct, got %q", direct.TrainingMethod)
	}
	if direct.Extra["seed"] != "" {
		t.Fatalf("expected n/a normalized to empty, got %q", direct.Extra["seed"])
	}

	teacher := records[2]
	if teacher.Value != 0.52 {
		t.Fatalf("expected trimmed value 0.52, got %v", teacher.Value)
	}
	if teacher.TeacherModel != "PatchTST" {
		t.Fatalf("expected standalone teacher to be its own teacher, got %q", teacher.TeacherModel)
	}
	if teacher.Extra["seed"] != "" {
		t.Fatalf("expected None normalized to empty, got %q", teacher.Extra["seed"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "unterminated quote", content: "dataset,horizon,split,model_combination,model_type,metric,value\n\"ETT,96,test,A,A,mae,0.1\n"},
		{name: "too many fields", content: "dataset,horizon,split,model_combination,model_type,metric,value\nETT,96,test,A,A,mae,0.1,extra\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCSV(t, tt.content))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
		})
	}
}

func TestLoadMissingValueColumn(t *testing.T) {
	path := writeCSV(t, "dataset,horizon,split,model_combination,model_type,metric\nETT,96,test,A,A,mae\n")
	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected every row dropped without a value column, got %d", len(records))
	}
}

func TestNormalizeSentinel(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"None", "none", " NONE ", "N/A", "n/a", "\tN/A\t"} {
		if got := NormalizeSentinel(in); got != "" {
			t.Fatalf("NormalizeSentinel(%q) = %q, want empty", in, got)
		}
	}
	for _, in := range []string{"PatchTST", "Nonexistent", "N/A model", ""} {
		if got := NormalizeSentinel(in); got != in {
			t.Fatalf("NormalizeSentinel(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestCleanDropsNonNumeric(t *testing.T) {
	t.Parallel()

	c := Classify(RawRecord{ModelCombination: "A", ModelType: "A", Value: "abc"})
	if _, ok := Clean(c); ok {
		t.Fatal("expected non-numeric value to be dropped")
	}
	c = Classify(RawRecord{ModelCombination: "A", ModelType: "A", Value: "1e-3"})
	rec, ok := Clean(c)
	if !ok || rec.Value != 0.001 {
		t.Fatalf("expected 0.001, got %v (ok=%v)", rec.Value, ok)
	}
}
