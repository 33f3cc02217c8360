package profile

import (
	"errors"
	"fmt"
)

var ErrUnknownGrade = errors.New("unknown grade")
var ErrUnknownSphere = errors.New("unknown sphere")

// Filter restricts a teacher listing to the given grades and spheres.
// A teacher matches when one of its stored grade tags is in Grades and
// one of its stored sphere tags is in Spheres.
type Filter struct {
	Grades  []Grade
	Spheres []Sphere
}

// ParseFilter builds a Filter from comma-separated user input.
// An empty dimension selects the whole vocabulary. Values outside the
// vocabulary are dropped, so input made only of unknown values selects
// nothing for that dimension.
func ParseFilter(grade, sphere string) Filter {
	f := Filter{Grades: []Grade{}, Spheres: []Sphere{}}

	if tags := SplitTags(grade); len(tags) == 0 {
		f.Grades = append(f.Grades, AllGrades...)
	} else {
		for _, t := range tags {
			if g := Grade(t); g.Valid() && !containsGrade(f.Grades, g) {
				f.Grades = append(f.Grades, g)
			}
		}
	}

	if tags := SplitTags(sphere); len(tags) == 0 {
		f.Spheres = append(f.Spheres, AllSpheres...)
	} else {
		for _, t := range tags {
			if s := Sphere(t); s.Valid() && !containsSphere(f.Spheres, s) {
				f.Spheres = append(f.Spheres, s)
			}
		}
	}

	return f
}

// IsEmpty reports whether the filter can match no teacher at all.
func (f Filter) IsEmpty() bool {
	return len(f.Grades) == 0 || len(f.Spheres) == 0
}

func (f Filter) GradeValues() []string {
	out := make([]string, len(f.Grades))
	for i, g := range f.Grades {
		out[i] = string(g)
	}
	return out
}

func (f Filter) SphereValues() []string {
	out := make([]string, len(f.Spheres))
	for i, s := range f.Spheres {
		out[i] = string(s)
	}
	return out
}

// ValidateGrade checks a single stored grade.
func ValidateGrade(raw string) error {
	if !Grade(raw).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGrade, raw)
	}
	return nil
}

// ValidateSpheres checks every tag of a comma-separated sphere value.
// At least one tag is required.
func ValidateSpheres(raw string) error {
	tags := SplitTags(raw)
	if len(tags) == 0 {
		return fmt.Errorf("%w: empty sphere list", ErrUnknownSphere)
	}
	for _, t := range tags {
		if !Sphere(t).Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownSphere, t)
		}
	}
	return nil
}

func containsGrade(list []Grade, g Grade) bool {
	for _, v := range list {
		if v == g {
			return true
		}
	}
	return false
}

func containsSphere(list []Sphere, s Sphere) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
