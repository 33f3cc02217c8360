package profile

import "strings"

// Grade is a seniority level.
type Grade string

// Sphere is a subject-matter tag. A profile may carry several.
type Sphere string

const (
	GradeNoWork Grade = "No_work"
	GradeIntern Grade = "Intern"
	GradeJunior Grade = "Junior"
	GradeMiddle Grade = "Middle"
	GradeSenior Grade = "Senior"
)

const (
	SphereNLP       Sphere = "NLP"
	SphereCV        Sphere = "CV"
	SphereRecSys    Sphere = "RecSys"
	SphereAudio     Sphere = "Audio"
	SphereClassicML Sphere = "Classic_ML"
	SphereAny       Sphere = "Any"
)

// AllGrades is ordered from least to most senior.
var AllGrades = []Grade{GradeNoWork, GradeIntern, GradeJunior, GradeMiddle, GradeSenior}

var AllSpheres = []Sphere{SphereNLP, SphereCV, SphereRecSys, SphereAudio, SphereClassicML, SphereAny}

func (g Grade) Valid() bool {
	for _, known := range AllGrades {
		if g == known {
			return true
		}
	}
	return false
}

func (s Sphere) Valid() bool {
	for _, known := range AllSpheres {
		if s == known {
			return true
		}
	}
	return false
}

// SplitTags splits a stored or user-supplied comma-separated list,
// trimming blanks and dropping empty entries.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
