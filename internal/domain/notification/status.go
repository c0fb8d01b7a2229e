package notification

import "hirebot/internal/pkg/errs"

var ErrUnknownStatus = errs.New("unknown application status")

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusInterview   ApplicationStatus = "interview"
	StatusOffer       ApplicationStatus = "offer"
	StatusHired       ApplicationStatus = "hired"
	StatusRejected    ApplicationStatus = "rejected"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

var statusLabels = map[ApplicationStatus]string{
	StatusPending:     "Pending",
	StatusUnderReview: "Under review",
	StatusInterview:   "Interview scheduled",
	StatusOffer:       "Job offer",
	StatusHired:       "You're hired!",
	StatusRejected:    "Rejected",
	StatusWithdrawn:   "Withdrawn by you",
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	if _, ok := statusLabels[st]; !ok {
		return "", errs.Mark(errs.New("status "+s), ErrUnknownStatus)
	}
	return st, nil
}

func (s ApplicationStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s ApplicationStatus) String() string { return string(s) }
