package constants

// Student cohort levels. Module catalogs, voice exercises, and reporting
// are all scoped by one of these three values.
const (
	GradeOne   = "GradeOne"
	GradeTwo   = "GradeTwo"
	GradeThree = "GradeThree"
)

var Grades = []string{GradeOne, GradeTwo, GradeThree}

func IsValidGrade(grade string) bool {
	for _, g := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}

// Module subject areas
const (
	SubjectReading = "Reading"
	SubjectMath    = "Math"
)
