package user

import "context"

// Loader defines the page loaders invoked by the hosting framework.
type Loader interface {
	LoadUsers(ctx context.Context, ev Event) *UsersPage
	WatchUsers(ctx context.Context, ev Event) <-chan UsersState
	LoadUser(ctx context.Context, ev Event) (*UserPage, error)
}
