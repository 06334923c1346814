// internal/results/types.go
package results

// Column names expected in the results CSV header.
const (
	ColumnDataset          = "dataset"
	ColumnHorizon          = "horizon"
	ColumnSplit            = "split"
	ColumnModelCombination = "model_combination"
	ColumnModelType        = "model_type"
	ColumnMetric           = "metric"
	ColumnValue            = "value"
)

// RequiredColumns lists the columns every results CSV should carry.
var RequiredColumns = []string{
	ColumnDataset,
	ColumnHorizon,
	ColumnSplit,
	ColumnModelCombination,
	ColumnModelType,
	ColumnMetric,
	ColumnValue,
}

// Training method labels.
const (
	MethodTeacher  = "Teacher"
	MethodDirect   = "Direct"
	MethodTaskOnly = "TaskOnly"
	MethodRDT      = "RDT"
	MethodFollower = "Follower"
)

// Raw model_type tags written by the experiment runner.
const (
	TypeTeacher         = "Teacher"
	TypeStudentTaskOnly = "Student_TaskOnly"
	TypeStudentRDT      = "Student_RDT"
	TypeStudentFollower = "Student_Follower"
)

// DefaultMethodOrder is the column and bar order used when none is configured.
var DefaultMethodOrder = []string{MethodTeacher, MethodDirect, MethodTaskOnly, MethodRDT, MethodFollower}

// PairSeparator splits a model_combination into teacher and student parts.
const PairSeparator = "-"

// NoTeacher marks records without an explicit teacher. The cleaner turns it
// into the empty string.
const NoTeacher = "None"

// TestSplit is the split used by every summary view.
const TestSplit = "test"

// RawRecord is one CSV row as read from disk.
type RawRecord struct {
	Dataset          string
	Horizon          string
	Split            string
	ModelCombination string
	ModelType        string
	Metric           string
	Value            string
	Extra            map[string]string
}

// ClassifiedRecord is a RawRecord labeled with its teacher, student and
// training method.
type ClassifiedRecord struct {
	RawRecord
	TeacherModel     string
	StudentModelArch string
	TrainingMethod   string
	EvaluatedModel   string
}

// Record is a classified and cleaned results row.
type Record struct {
	Dataset          string            `json:"dataset"`
	Horizon          string            `json:"horizon"`
	Split            string            `json:"split"`
	ModelCombination string            `json:"model_combination"`
	ModelType        string            `json:"model_type"`
	Metric           string            `json:"metric"`
	Value            float64           `json:"value"`
	TeacherModel     string            `json:"teacher_model"`
	StudentModelArch string            `json:"student_model_arch"`
	TrainingMethod   string            `json:"training_method"`
	EvaluatedModel   string            `json:"evaluated_model"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// IsKnownMethod reports whether method is one of the five closed labels.
func IsKnownMethod(method string) bool {
	switch method {
	case MethodTeacher, MethodDirect, MethodTaskOnly, MethodRDT, MethodFollower:
		return true
	}
	return false
}
