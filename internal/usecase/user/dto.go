package user

import (
	"user-pages/internal/adapter/fetch"
	domain "user-pages/internal/domain/user"
)

// Event is what the hosting framework hands to a loader.
type Event struct {
	Fetch  fetch.Fetcher     // transport used for the upstream call
	Params map[string]string // route parameters
}

// UsersPage is the page data for the user list.
type UsersPage struct {
	Users        []domain.User `json:"users"`
	Loading      bool          `json:"loading"`
	ErrorMessage string        `json:"errorMessage"`
}

// UserPage is the page data for a single user. User holds the decoded
// response body as-is.
type UserPage struct {
	User any `json:"user"`
}

// Phase is a step of the user list loading lifecycle.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// UsersState is one observation of the user list loader.
type UsersState struct {
	Phase        Phase         `json:"phase"`
	Users        []domain.User `json:"users"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}
