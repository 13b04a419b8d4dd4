package models

import "time"

// Appointment statuses. Only admins can move an appointment out of
// pending; the set is flat, any admin-set value is allowed at any time.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusAccepted  = "accepted"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// AppointmentStatuses lists every value accepted by the status endpoint.
var AppointmentStatuses = []string{
	AppointmentStatusPending,
	AppointmentStatusAccepted,
	AppointmentStatusRejected,
	AppointmentStatusConfirmed,
	AppointmentStatusCancelled,
}

type Appointment struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	DonorName    string    `db:"donor_name" json:"donor_name"`
	DonorContact string    `db:"donor_contact" json:"donor_contact"`
	Date         time.Time `db:"date" json:"date"`
	Time         string    `db:"time" json:"time"`
	Location     string    `db:"location" json:"location"`
	Notes        string    `db:"notes" json:"notes"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
