package kitchen

import "restaurant/internal/pkg/errs"

// Priority orders tickets on the kitchen display, highest first.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityHigh
	PriorityUrgent
	PriorityFire
)

var priorityNames = map[Priority]string{
	PriorityNormal: "NORMAL",
	PriorityHigh:   "HIGH",
	PriorityUrgent: "URGENT",
	PriorityFire:   "FIRE",
}

// NewPriority validates p against [PriorityNormal, PriorityFire].
func NewPriority(p int) (Priority, error) {
	priority := Priority(p)
	if err := priority.Validate(); err != nil {
		return PriorityNormal, err
	}
	return priority, nil
}

func (p Priority) Validate() error {
	if p < PriorityNormal || p > PriorityFire {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityNormal), int(PriorityFire))
	}
	return nil
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}
