package models

import (
	"time"
)

// ComplaintStatus represents where a complaint is in the workflow
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusCompleted  ComplaintStatus = "completed"
)

// Urgency represents how quickly a complaint should be handled
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// ComplaintType distinguishes room complaints from common-area complaints
type ComplaintType string

const (
	ComplaintTypeRoom ComplaintType = "Room"
	ComplaintTypeArea ComplaintType = "Area"
)

// RoomCategories are the categories offered on the room complaint form
var RoomCategories = []string{
	"Housekeeping",
	"Plumbing",
	"Electrical",
	"Carpentry",
	"Others",
}

// AreaCategories are the categories offered on the area complaint form
var AreaCategories = []string{
	"Housekeeping",
	"Plumbing",
	"Electrical",
	"Carpentry",
	"AC/Heating",
	"Furniture",
	"Others",
}

// Urgencies lists the urgency levels in display order
var Urgencies = []Urgency{UrgencyHigh, UrgencyMedium, UrgencyLow}

// IsValidUrgency reports whether u is one of the known urgency levels
func IsValidUrgency(u string) bool {
	for _, known := range Urgencies {
		if string(known) == u {
			return true
		}
	}
	return false
}

// Complaint is a maintenance complaint filed for a room or a common area
type Complaint struct {
	ID          int             `json:"id"`
	RoomNo      string          `json:"room_no,omitempty"`
	AreaName    string          `json:"area_name,omitempty"`
	ITSNo       string          `json:"its_no"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	Urgency     Urgency         `json:"urgency"`
	CreatedAt   time.Time       `json:"created_at"`
	AssignedTo  string          `json:"assigned_to,omitempty"` // empty until a supervisor assigns it
	OTP         string          `json:"otp,omitempty"`         // room complaints only
	Reference   string          `json:"reference,omitempty"`   // area complaints only
}

// Type reports whether the complaint was filed for a room or an area
func (c Complaint) Type() ComplaintType {
	if c.RoomNo != "" {
		return ComplaintTypeRoom
	}
	return ComplaintTypeArea
}

// Location returns the room number or area name the complaint was filed for
func (c Complaint) Location() string {
	if c.RoomNo != "" {
		return c.RoomNo
	}
	return c.AreaName
}

// IsAssigned reports whether a staff member has been assigned
func (c Complaint) IsAssigned() bool {
	return c.AssignedTo != ""
}

// ComplaintInput is what a guest submits on the complaint forms
type ComplaintInput struct {
	ITSNo       string
	RoomNo      string
	AreaName    string
	Category    string
	Description string
	HasPhoto    bool
}

// SubmittedComplaint is shown on the success step of the complaint forms
type SubmittedComplaint struct {
	Complaint   Complaint
	SubmittedAt time.Time
	// ResolveWithin is the promised resolution window shown to the guest
	ResolveWithin time.Duration
}

// TimelineStep is one entry of a tracked complaint's progress timeline
type TimelineStep struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
}

// TrackedComplaint is the record shown on the complaint status page
type TrackedComplaint struct {
	ID          string          `json:"id"`
	Type        ComplaintType   `json:"type"`
	RoomNo      string          `json:"room_no,omitempty"`
	AreaName    string          `json:"area_name,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	AssignedTo  string          `json:"assigned_to"`
	CreatedAt   string          `json:"created_at"`
	CompletedAt string          `json:"completed_at,omitempty"`
	OTP         string          `json:"otp,omitempty"`
	Timeline    []TimelineStep  `json:"timeline"`
}

// StatusLabel returns the badge text for the complaint status
func (t TrackedComplaint) StatusLabel() string {
	switch t.Status {
	case ComplaintStatusInProgress:
		return "🔄 In Progress"
	case ComplaintStatusCompleted:
		return "✅ Completed"
	default:
		return "⏳ Pending"
	}
}

// Place returns "Room 101" style text for rooms and the area name otherwise
func (t TrackedComplaint) Place() string {
	if t.RoomNo != "" {
		return "Room " + t.RoomNo
	}
	return t.AreaName
}

// Assignment is a complaint as it appears on a staff member's work list
type Assignment struct {
	ID          int             `json:"id"`
	RoomNo      string          `json:"room_no"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Urgency     Urgency         `json:"urgency"`
	AssignedAt  time.Time       `json:"assigned_at"`
	Deadline    time.Time       `json:"deadline"`
	Status      ComplaintStatus `json:"status"`
	ITSNo       string          `json:"its_no"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}
