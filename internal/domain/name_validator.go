package domain

import (
	"unicode"

	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

type nameState int

const (
	nameInitial nameState = iota
	nameLetter
	nameNumber
	nameSuffix
)

type charClass int

const (
	classLetter charClass = iota
	classDigit
	classOther
)

// nameScan holds the counters for a single validation run.
type nameScan struct {
	letters int
	digits  int
}

type nameTransition struct {
	next   nameState
	action func(scan *nameScan) error
}

func reject(message string) func(*nameScan) error {
	return func(*nameScan) error {
		return appErrors.Clone(appErrors.ErrInvalidArgument, message)
	}
}

const msgOther = "course name can only contain letters and digits"

var nameTransitions = map[nameState]map[charClass]nameTransition{
	nameInitial: {
		classLetter: {next: nameLetter, action: func(s *nameScan) error { s.letters++; return nil }},
		classDigit:  {action: reject("course name must start with a letter")},
		classOther:  {action: reject(msgOther)},
	},
	nameLetter: {
		classLetter: {next: nameLetter, action: func(s *nameScan) error {
			if s.letters >= 4 {
				return appErrors.Clone(appErrors.ErrInvalidArgument, "course name cannot start with more than 4 letters")
			}
			s.letters++
			return nil
		}},
		classDigit: {next: nameNumber, action: func(s *nameScan) error { s.digits++; return nil }},
		classOther: {action: reject(msgOther)},
	},
	nameNumber: {
		classLetter: {next: nameSuffix, action: func(s *nameScan) error {
			if s.digits != 3 {
				return appErrors.Clone(appErrors.ErrInvalidArgument, "course name must have 3 digits")
			}
			return nil
		}},
		classDigit: {next: nameNumber, action: func(s *nameScan) error {
			if s.digits >= 3 {
				return appErrors.Clone(appErrors.ErrInvalidArgument, "course name can only have 3 digits")
			}
			s.digits++
			return nil
		}},
		classOther: {action: reject(msgOther)},
	},
	nameSuffix: {
		classLetter: {action: reject("course name can only have a 1 letter suffix")},
		classDigit:  {action: reject("course name cannot contain digits after the suffix")},
		classOther:  {action: reject(msgOther)},
	},
}

func classify(r rune) charClass {
	switch {
	case unicode.IsLetter(r):
		return classLetter
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// ValidateCourseName checks the course-name grammar: 1-4 letters, exactly
// 3 digits, and an optional single letter suffix.
func ValidateCourseName(name string) error {
	state := nameInitial
	scan := &nameScan{}
	for _, r := range name {
		t := nameTransitions[state][classify(r)]
		if err := t.action(scan); err != nil {
			return err
		}
		state = t.next
	}
	if state == nameSuffix || (state == nameNumber && scan.digits == 3) {
		return nil
	}
	return appErrors.Clone(appErrors.ErrInvalidArgument, "course name must have 3 digits")
}
