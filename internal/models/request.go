package models

import "time"

// Blood request processing statuses. Transitions are admin-set and not
// validated against the prior value.
const (
	RequestStatusPending   = "Pending"
	RequestStatusAccepted  = "Accepted"
	RequestStatusRejected  = "Rejected"
	RequestStatusCompleted = "Completed"
)

// RequestStatuses lists every value accepted by the status endpoint.
var RequestStatuses = []string{
	RequestStatusPending,
	RequestStatusAccepted,
	RequestStatusRejected,
	RequestStatusCompleted,
}

const RequestUrgencyDefault = "Normal"

type Request struct {
	ID                 int64     `db:"id" json:"id"`
	UserID             int64     `db:"user_id" json:"user_id"`
	PatientName        string    `db:"patient_name" json:"patient_name"`
	RequiredBloodGroup string    `db:"required_blood_group" json:"required_blood_group"`
	Hospital           string    `db:"hospital" json:"hospital"`
	Location           string    `db:"location" json:"location"`
	ContactNumber      string    `db:"contact_number" json:"contact_number"`
	Urgency            string    `db:"urgency" json:"urgency"`
	Status             string    `db:"status" json:"status"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
