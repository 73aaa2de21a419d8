package domain

import (
	"time"

	"github.com/google/uuid"
)

// Interview is a candidate application scheduled for an interview session.
// A zero ID means the record has not been persisted and is read-only.
type Interview struct {
	ID              uuid.UUID
	CandidateName   string
	MobileNumber    string
	AlternateNumber string
	Status          string
	InterviewDate   time.Time
	InterviewTime   string
	InterviewType   string
	JobOpening      string
	City            string
	AssignedTo      uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

// StatusMain returns the main part of the interview's status token.
func (i Interview) StatusMain() string {
	main, _ := ParseStatus(i.Status)
	return main
}
