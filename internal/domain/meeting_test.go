package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

func mustEvent(t *testing.T, title, days string, start, end int) *Event {
	t.Helper()
	e, err := NewEvent(title, days, start, end, "")
	require.NoError(t, err)
	return e
}

func TestCheckConflictScenarios(t *testing.T) {
	a := mustEvent(t, "A", "MW", 1330, 1445)
	b := mustEvent(t, "B", "W", 1450, 1540)
	c := mustEvent(t, "C", "M", 1330, 1445)

	assert.NoError(t, CheckConflict(a, b))
	assert.NoError(t, CheckConflict(b, a))

	err := CheckConflict(a, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.True(t, errors.Is(CheckConflict(c, a), appErrors.ErrConflict))
}

func TestCheckConflictBoundaryMinute(t *testing.T) {
	a := mustEvent(t, "A", "T", 900, 1000)
	b := mustEvent(t, "B", "T", 1000, 1100)
	assert.Error(t, a.CheckConflict(b))
	assert.Error(t, b.CheckConflict(a))

	other := mustEvent(t, "Other", "H", 900, 1000)
	assert.NoError(t, a.CheckConflict(other))
}

func TestCheckConflictArranged(t *testing.T) {
	arranged := mustCourse(t, courseRecord("CSC116", "001", "A", 0, 0, 10))
	another := mustCourse(t, courseRecord("CSC216", "001", "A", 0, 0, 10))
	timed := mustCourse(t, courseRecord("CSC226", "001", "MTWHF", 800, 2000, 10))

	assert.NoError(t, CheckConflict(arranged, another))
	assert.NoError(t, CheckConflict(arranged, timed))
	assert.NoError(t, CheckConflict(timed, arranged))
}

func TestCheckConflictNil(t *testing.T) {
	a := mustEvent(t, "A", "M", 900, 1000)
	assert.True(t, errors.Is(CheckConflict(a, nil), appErrors.ErrInvalidArgument))
}

func TestNewMeetingValidation(t *testing.T) {
	cases := []struct {
		name     string
		days     string
		start    int
		end      int
		allowed  string
		arranged bool
		ok       bool
	}{
		{"valid", "MW", 1330, 1445, courseDayCodes, true, true},
		{"empty days", "", 1330, 1445, courseDayCodes, true, false},
		{"repeated day", "MM", 1330, 1445, courseDayCodes, true, false},
		{"weekend for course", "S", 1330, 1445, courseDayCodes, true, false},
		{"weekend for event", "SU", 1330, 1445, eventDayCodes, false, true},
		{"bad hour", "M", 2400, 2401, courseDayCodes, true, false},
		{"bad minute", "M", 1360, 1400, courseDayCodes, true, false},
		{"start after end", "M", 1500, 1400, courseDayCodes, true, false},
		{"arranged with times", "A", 800, 900, courseDayCodes, true, false},
		{"arranged with other days", "AM", 0, 0, courseDayCodes, true, false},
		{"arranged event", "A", 0, 0, eventDayCodes, false, false},
		{"arranged course", "A", 0, 0, courseDayCodes, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newMeeting(tc.days, tc.start, tc.end, tc.allowed, tc.arranged)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
		})
	}
}

func TestMeetingString(t *testing.T) {
	assert.Equal(t, "MW 1:30PM-2:45PM", Meeting{Days: "MW", Start: 1330, End: 1445}.String())
	assert.Equal(t, "H 12:05AM-12:00PM", Meeting{Days: "H", Start: 5, End: 1200}.String())
	assert.Equal(t, "Arranged", Meeting{Days: ArrangedDays}.String())
}

func genMeetingEvent(t *rapid.T, label string) *Event {
	days := rapid.SliceOfNDistinct(rapid.SampledFrom([]rune(eventDayCodes)), 1, 7, func(r rune) rune { return r }).Draw(t, label+"days")
	start := rapid.IntRange(0, 23).Draw(t, label+"sh")*100 + rapid.IntRange(0, 59).Draw(t, label+"sm")
	end := rapid.IntRange(start/100, 23).Draw(t, label+"eh")*100 + rapid.IntRange(0, 59).Draw(t, label+"em")
	if end < start {
		end = start
	}
	e, err := NewEvent(label, string(days), start, end, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func TestCheckConflictSymmetricProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genMeetingEvent(t, "a")
		b := genMeetingEvent(t, "b")
		if (CheckConflict(a, b) == nil) != (CheckConflict(b, a) == nil) {
			t.Fatalf("asymmetric conflict between %s and %s", a.Meeting(), b.Meeting())
		}
	})
}
