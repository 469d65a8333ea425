package reservation

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// transitions is the whole state machine; terminal states have no entry.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Decision is the manager's answer to a pending reservation.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionRefuse Decision = "REFUSE"
)

func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionRefuse
}

func (d Decision) target() Status {
	if d == DecisionAccept {
		return StatusAccepted
	}
	return StatusCancelled
}
