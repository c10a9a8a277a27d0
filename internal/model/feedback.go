package model

import "time"

// FeedbackType enumerates the categories a user can file feedback under.
type FeedbackType string

const (
	FeedbackBugReport      FeedbackType = "BUG_REPORT"
	FeedbackMapError       FeedbackType = "MAP_ERROR"
	FeedbackDataInaccuracy FeedbackType = "DATA_INACCURACY"
	FeedbackFeatureRequest FeedbackType = "FEATURE_REQUEST"
	FeedbackOther          FeedbackType = "OTHER"
)

// ValidFeedbackType reports whether s is a known feedback type value.
func ValidFeedbackType(s string) bool {
	switch FeedbackType(s) {
	case FeedbackBugReport, FeedbackMapError, FeedbackDataInaccuracy, FeedbackFeatureRequest, FeedbackOther:
		return true
	}
	return false
}

// FeedbackStatus tracks the triage state of a feedback entry. New
// entries start as PENDING.
type FeedbackStatus string

const (
	FeedbackPending    FeedbackStatus = "PENDING"
	FeedbackInProgress FeedbackStatus = "IN_PROGRESS"
	FeedbackResolved   FeedbackStatus = "RESOLVED"
	FeedbackClosed     FeedbackStatus = "CLOSED"
)

// Feedback represents a user-submitted report about the app or campus
// data. Immutable once created except for its status, which admins move
// through the triage states.
type Feedback struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Type        FeedbackType   `json:"type"`
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Status      FeedbackStatus `json:"status"`
	Location    *string        `json:"location,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
