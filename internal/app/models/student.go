package models

import "github.com/google/uuid"

// Student defines the student model based on the 'students' table.
// The ID is shared with the student's identity provider account.
type Student struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"` // Natural key, unique
	SchoolID       *uuid.UUID `json:"schoolId,omitempty" db:"school_id"`
	Bio            *string    `json:"bio,omitempty" db:"bio"`
	FollowerCount  int        `json:"followerCount" db:"follower_count"`
	FollowingCount int        `json:"followingCount" db:"following_count"`
	Awards         []Award    `json:"awards" db:"awards"`
	Interests      []string   `json:"interests" db:"interests"`
}

// Award is a profile achievement stored as JSON on the student row
type Award struct {
	Title string `json:"title"`
	Event string `json:"event"`
	Icon  string `json:"icon"`
}

// UserPreferences defines the 1-1 accessibility preferences row for a student
type UserPreferences struct {
	ID                         uuid.UUID `json:"id" db:"id"`
	StudentID                  uuid.UUID `json:"studentId" db:"student_id"`
	FontSize                   string    `json:"fontSize" db:"font_size"`
	HighContrast               bool      `json:"highContrast" db:"high_contrast"`
	ReducedMotion              bool      `json:"reducedMotion" db:"reduced_motion"`
	ScreenReaderOptimized      bool      `json:"screenReaderOptimized" db:"screen_reader_optimized"`
	KeyboardNavigationEnhanced bool      `json:"keyboardNavigationEnhanced" db:"keyboard_navigation_enhanced"`
	ColorBlindMode             string    `json:"colorBlindMode" db:"color_blind_mode"`
}

// DefaultPreferences returns the preferences row created for every new student
func DefaultPreferences(studentID uuid.UUID) *UserPreferences {
	return &UserPreferences{
		StudentID:      studentID,
		FontSize:       "medium",
		ColorBlindMode: "none",
	}
}

// StudentFollow links a follower to a followed student.
// A student never follows themselves; each ordered pair is unique.
type StudentFollow struct {
	FollowerID  uuid.UUID `json:"followerId" db:"follower_id"`
	FollowingID uuid.UUID `json:"followingId" db:"following_id"`
}
