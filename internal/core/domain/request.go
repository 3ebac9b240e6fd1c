package domain

import "time"

// RequestStatus represents the lifecycle state of a funding request.
type RequestStatus string

const (
	StatusCreated    RequestStatus = "created"
	StatusApproved   RequestStatus = "approved"
	StatusUnapproved RequestStatus = "unapproved"
)

// validTransitions defines the allowed state machine transitions.
// Approved and unapproved are terminal.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusCreated: {StatusApproved, StatusUnapproved},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequestType classifies what the requested funding/workload is for.
type RequestType string

const (
	TypeDegree        RequestType = "degree"
	TypeCertification RequestType = "certification"
	TypeTraining      RequestType = "training"
	TypeOther         RequestType = "other"
)

// ValidRequestType reports whether t is one of the known request types.
func ValidRequestType(t RequestType) bool {
	switch t {
	case TypeDegree, TypeCertification, TypeTraining, TypeOther:
		return true
	}
	return false
}

// Request is a funding/workload request submitted by an author and reviewed by
// staff. RequestedAt is set once at creation and never changes. DisapproveReason
// is non-empty if and only if Status is unapproved.
type Request struct {
	ID               int64         `json:"id"`
	Area             string        `json:"area"`
	Type             RequestType   `json:"request_type"`
	Workload         int           `json:"workload"`
	TotalCost        float64       `json:"total_cost"`
	Status           RequestStatus `json:"status"`
	RequestedAt      time.Time     `json:"requested_at"`
	OwnerID          int64         `json:"owner_id"`
	DisapproveReason string        `json:"disapprove_reason,omitempty"`
}

// StatusChange records a single lifecycle transition for the audit trail.
type StatusChange struct {
	RequestID int64         `json:"request_id"`
	From      RequestStatus `json:"from"`
	To        RequestStatus `json:"to"`
	Reason    string        `json:"reason,omitempty"`
	ActorID   int64         `json:"actor_id"`
	Timestamp time.Time     `json:"timestamp"`
}
