package promotion

import "errors"

var (
	ErrNameRequired      = errors.New("promotion name is required")
	ErrDatesRequired     = errors.New("start and end dates are required")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrNoServices        = errors.New("services required")
	ErrComboTooSmall     = errors.New("a combo needs at least two selected services")
	ErrLineNotFound      = errors.New("selected service is not part of the promotion")
	ErrInvalidStatus     = errors.New("invalid promotion status")
	ErrInvalidTransition = errors.New("promotion status does not permit this action")
)

// Status is the workflow state of a proposal. PendingDesign and
// PendingApproval are working states; Approved and Rejected are final,
// except that Management may still edit the content of an Approved
// promotion without changing its status.
type Status string

const (
	StatusPendingDesign   Status = "pending_design"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingDesign, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

var transitions = map[Status][]Status{
	StatusPendingDesign:   {StatusPendingApproval},
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {},
	StatusRejected:        {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TemporalStatus is the date-derived display badge of a promotion,
// independent of workflow status.
type TemporalStatus string

const (
	TemporalUpcoming     TemporalStatus = "upcoming"
	TemporalActive       TemporalStatus = "active"
	TemporalExpiringSoon TemporalStatus = "expiring_soon"
	TemporalEnded        TemporalStatus = "ended"
)

func (t TemporalStatus) String() string {
	return string(t)
}
