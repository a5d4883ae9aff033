package curriculum

import (
	"errors"
	"sort"
)

var (
	ErrInvalidSubject = errors.New("subject not available for this grade")
	ErrStreamRequired = errors.New("stream is required for grades 11-12")
)

// Gujarat Board subject tables. Static configuration data, versioned with the
// binary; runtime code never mutates these.
var subjectsByGrade = map[int][]string{
	1:  {"Gujarati", "Hindi", "English", "Mathematics", "Environmental Studies", "Art", "Moral Education", "Physical Education"},
	2:  {"Gujarati", "Hindi", "English", "Mathematics", "Environmental Studies", "Art", "Moral Education", "Physical Education"},
	3:  {"Gujarati", "Hindi", "English", "Mathematics", "Environmental Studies", "Art", "Moral Education", "Physical Education"},
	4:  {"Gujarati", "Hindi", "English", "Mathematics", "Environmental Studies", "Art", "Moral Education", "Physical Education"},
	5:  {"Gujarati", "Hindi", "English", "Mathematics", "Environmental Studies", "Art", "Moral Education", "Physical Education"},
	6:  {"Gujarati", "Hindi", "Sanskrit", "English", "Mathematics", "Science", "Social Science", "Computer", "Art", "Physical Education"},
	7:  {"Gujarati", "Hindi", "Sanskrit", "English", "Mathematics", "Science", "Social Science", "Computer", "Art", "Physical Education"},
	8:  {"Gujarati", "Hindi", "Sanskrit", "English", "Mathematics", "Science", "Social Science", "Computer", "Art", "Physical Education"},
	9:  {"Gujarati", "Hindi", "Sanskrit", "English", "Mathematics", "Science", "Social Science", "Computer", "Art", "Physical Education"},
	10: {"Gujarati", "Hindi", "Sanskrit", "English", "Mathematics", "Science", "Social Science", "Computer", "Art", "Physical Education"},
}

var streamSubjects = map[string][]string{
	"Science Stream":           {"Gujarati", "English", "Hindi", "Physics", "Chemistry", "Mathematics", "Biology", "Computer Science", "Physical Education"},
	"Commerce Stream":          {"Gujarati", "English", "Hindi", "Accountancy", "Business Studies", "Economics", "Statistics", "Mathematics", "Computer Science", "Physical Education"},
	"Arts / Humanities Stream": {"Gujarati", "English", "Hindi", "History", "Geography", "Political Science", "Sociology", "Economics", "Psychology", "Sanskrit", "Statistics", "Computer Science", "Physical Education"},
}

// IsStreamRequired reports whether the grade needs a stream selection.
func IsStreamRequired(grade int) bool {
	return grade == 11 || grade == 12
}

// ValidSubjects resolves the subject table for a grade. For grades 11-12 a
// recognized stream must be supplied; for lower grades stream is ignored.
func ValidSubjects(grade int, stream string) ([]string, error) {
	if IsStreamRequired(grade) {
		subjects, ok := streamSubjects[stream]
		if !ok {
			return nil, ErrStreamRequired
		}
		return subjects, nil
	}

	subjects, ok := subjectsByGrade[grade]
	if !ok {
		return nil, ErrInvalidSubject
	}
	return subjects, nil
}

// Validate checks that subject is offered for the grade/stream combination.
func Validate(subject string, grade int, stream string) error {
	subjects, err := ValidSubjects(grade, stream)
	if err != nil {
		return err
	}
	for _, s := range subjects {
		if s == subject {
			return nil
		}
	}
	return ErrInvalidSubject
}

// Streams lists the recognized stream names in stable order.
func Streams() []string {
	names := make([]string, 0, len(streamSubjects))
	for name := range streamSubjects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
