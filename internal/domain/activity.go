package domain

// Activity is anything that occupies a weekly meeting slot on a schedule.
type Activity interface {
	Title() string
	Meeting() Meeting
	CheckConflict(other Activity) error
	ShortDisplay() []string
	LongDisplay() []string
	IsDuplicate(other Activity) bool
}
