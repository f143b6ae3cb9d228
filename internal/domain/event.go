package domain

import (
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// Event is a personal activity a student blocks out on their schedule.
type Event struct {
	title   string
	meeting Meeting
	details string
}

// NewEvent builds an event. Events may meet on weekends but cannot be Arranged.
func NewEvent(title, days string, start, end int, details string) (*Event, error) {
	if title == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid title")
	}
	meeting, err := newMeeting(days, start, end, eventDayCodes, false)
	if err != nil {
		return nil, err
	}
	return &Event{title: title, meeting: meeting, details: details}, nil
}

// Title returns the event title.
func (e *Event) Title() string { return e.title }

// Meeting returns the weekly slot.
func (e *Event) Meeting() Meeting { return e.meeting }

// Details returns the free-form description.
func (e *Event) Details() string { return e.details }

// CheckConflict fails with ErrConflict when other overlaps this event.
func (e *Event) CheckConflict(other Activity) error {
	return CheckConflict(e, other)
}

// ShortDisplay leaves the course-only columns empty.
func (e *Event) ShortDisplay() []string {
	return []string{"", "", e.title, e.meeting.String(), ""}
}

// LongDisplay leaves the course-only columns empty.
func (e *Event) LongDisplay() []string {
	return []string{"", "", e.title, "", "", e.meeting.String(), e.details}
}

// IsDuplicate reports whether other is an event with the same title.
func (e *Event) IsDuplicate(other Activity) bool {
	o, ok := other.(*Event)
	return ok && o != nil && o.title == e.title
}
