package models

import (
	"time"

	"github.com/google/uuid"
)

// School defines a chapter school based on the 'schools' table
type School struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"` // Natural key, unique
	Address       string    `json:"address" db:"address"`
	City          string    `json:"city" db:"city"`
	State         string    `json:"state" db:"state"`
	Zip           string    `json:"zip" db:"zip"`
	Email         string    `json:"email" db:"email"`
	MemberCount   int       `json:"memberCount" db:"member_count"`
	EstablishedAt time.Time `json:"establishedAt" db:"established_at"`
}

// SchoolRole assigns a chapter role to a student within a school.
// At most one role per (student, school) pair.
type SchoolRole struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StudentID uuid.UUID `json:"studentId" db:"student_id"`
	SchoolID  uuid.UUID `json:"schoolId" db:"school_id"`
	Role      string    `json:"role" db:"role"`
}

// Distinguished chapter roles, one student each per school.
// Order matters: they are handed out to the first students of a school.
var DistinguishedRoles = []string{
	"President",
	"Vice President",
	"Secretary",
	"Treasurer",
	"Historian",
}

// RoleMember is the default role for students without a distinguished role
const RoleMember = "Member"
