package domain

import "time"

// OccupancySource where an occupied interval comes from
type OccupancySource string

const (
	SourceDrivingSession  OccupancySource = "driving_session"
	SourceClassCommitment OccupancySource = "class_commitment"
	SourceTimeOff         OccupancySource = "time_off"
	SourceExternalBusy    OccupancySource = "external_busy"
)

// Interval an already-committed [Start, End) block of an instructor's time
type Interval struct {
	Start  time.Time
	End    time.Time
	Source OccupancySource
}

// TimeOffStatus approval state of a time-off request
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

// ClassCommitment an instructor teaching a class day
type ClassCommitment struct {
	ID           int64
	InstructorID int64
	ClassID      int64
	StartAt      time.Time
	EndAt        time.Time
}

// TimeOff an instructor's leave request
type TimeOff struct {
	ID           int64
	InstructorID int64
	StartAt      time.Time
	EndAt        time.Time
	Status       TimeOffStatus
	Reason       *string
}

// BusyBlock an event synced from the instructor's external calendar
type BusyBlock struct {
	ExternalID string    `json:"externalId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}
