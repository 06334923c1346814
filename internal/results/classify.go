// internal/results/classify.go
package results

import "strings"

// studentMethods maps the Student_* model_type tags to their training method.
var studentMethods = map[string]string{
	TypeStudentTaskOnly: MethodTaskOnly,
	TypeStudentRDT:      MethodRDT,
	TypeStudentFollower: MethodFollower,
}

// Classify labels a raw row with teacher, student architecture and training
// method. It is pure: the input is not modified and the same input always
// yields the same output.
//
// A model_combination holding the pair separator is read as "Teacher-Student".
// Otherwise the combination names a single architecture which is either a
// teacher baseline, a directly trained model (model_type equals the name) or a
// student without a teacher. Unknown model_type values become the training
// method verbatim.
func Classify(raw RawRecord) ClassifiedRecord {
	rec := ClassifiedRecord{
		RawRecord:    raw,
		TeacherModel: NoTeacher,
	}
	combination := raw.ModelCombination
	modelType := raw.ModelType

	if teacher, student, ok := strings.Cut(combination, PairSeparator); ok {
		rec.TeacherModel = teacher
		rec.StudentModelArch = student
		rec.TrainingMethod = pairMethod(modelType)
		rec.EvaluatedModel = evaluatedModel(rec, true)
		return rec
	}

	rec.StudentModelArch = combination
	switch {
	case modelType == TypeTeacher:
		rec.TeacherModel = combination
		rec.TrainingMethod = MethodTeacher
	case modelType == combination:
		rec.TrainingMethod = MethodDirect
	default:
		if method, ok := studentMethods[modelType]; ok {
			rec.TrainingMethod = method
		} else {
			rec.TrainingMethod = modelType
		}
	}
	rec.EvaluatedModel = evaluatedModel(rec, false)
	return rec
}

// ClassifyAll maps Classify over rows and returns a new slice.
func ClassifyAll(rows []RawRecord) []ClassifiedRecord {
	out := make([]ClassifiedRecord, len(rows))
	for i, row := range rows {
		out[i] = Classify(row)
	}
	return out
}

func pairMethod(modelType string) string {
	if modelType == TypeTeacher {
		return MethodTeacher
	}
	if method, ok := studentMethods[modelType]; ok {
		return method
	}
	return modelType
}

// evaluatedModel names the model whose score a row carries: the teacher for
// teacher baselines, the student architecture otherwise.
func evaluatedModel(rec ClassifiedRecord, pair bool) string {
	if rec.TrainingMethod != MethodTeacher {
		return rec.StudentModelArch
	}
	if pair {
		return rec.TeacherModel
	}
	if rec.TeacherModel != NoTeacher {
		return rec.TeacherModel
	}
	return rec.StudentModelArch
}
