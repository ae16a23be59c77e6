package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents is the Kafka topic carrying booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Booking event types.
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingCreatedEvent is emitted after a booking is persisted.
type BookingCreatedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	PatientID   int64     `json:"patient_id"`
	DoctorID    int64     `json:"doctor_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	SurgeryType int       `json:"surgery_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is emitted after a booking is marked cancelled.
type BookingCancelledEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	PatientID  int64     `json:"patient_id"`
	DoctorID   int64     `json:"doctor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
