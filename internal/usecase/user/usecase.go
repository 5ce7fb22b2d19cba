package user

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"user-pages/internal/adapter/fetch"
	domain "user-pages/internal/domain/user"
	apperrors "user-pages/pkg/errors"
	"user-pages/pkg/logger"
)

// LoadFailedMessage is shown on the user list page whenever loading fails.
const LoadFailedMessage = "データ取得に失敗しました。"

var _ Loader = (*Usecase)(nil)

// Usecase implements the user page loaders against the upstream user API.
type Usecase struct {
	fetcher fetch.Fetcher // used when the event carries no transport
	baseURL string        // upstream base URL without trailing slash
	log     *zap.Logger
}

// New creates a new Usecase. fetcher is the default transport for events
// that do not carry their own.
func New(fetcher fetch.Fetcher, baseURL string, log *zap.Logger) *Usecase {
	return &Usecase{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// LoadUsers loads the user list page. It never fails: any upstream or shape
// error is logged and collapsed into an empty list with LoadFailedMessage.
// Loading is always false in the returned value; use WatchUsers to observe
// the transition.
func (uc *Usecase) LoadUsers(ctx context.Context, ev Event) *UsersPage {
	return uc.loadUsers(ctx, ev, func(UsersState) {})
}

// WatchUsers runs the user list loader and publishes its state: loading
// first, then success or failure. The channel is closed afterwards, or early
// if ctx is done.
func (uc *Usecase) WatchUsers(ctx context.Context, ev Event) <-chan UsersState {
	states := make(chan UsersState, 2)

	go func() {
		defer close(states)

		emit := func(s UsersState) {
			select {
			case states <- s:
			case <-ctx.Done():
			}
		}

		page := uc.loadUsers(ctx, ev, emit)
		if ctx.Err() != nil {
			return
		}

		if page.ErrorMessage != "" {
			emit(UsersState{Phase: PhaseFailure, Users: page.Users, ErrorMessage: page.ErrorMessage})
			return
		}
		emit(UsersState{Phase: PhaseSuccess, Users: page.Users})
	}()

	return states
}

func (uc *Usecase) loadUsers(ctx context.Context, ev Event, emit func(UsersState)) *UsersPage {
	log := logger.WithContext(ctx, uc.log)

	page := &UsersPage{Users: []domain.User{}, Loading: true}
	emit(UsersState{Phase: PhaseLoading, Users: page.Users})

	users, err := uc.fetchUsers(ctx, uc.transport(ev))
	if err != nil {
		log.Error("failed to load users",
			zap.String("kind", apperrors.Kind(err)),
			zap.Error(err),
		)
		page.ErrorMessage = LoadFailedMessage
	} else {
		page.Users = users
	}

	page.Loading = false

	log.Debug("user list load finished", zap.Bool("loading", page.Loading), zap.Int("count", len(page.Users)))
	return page
}

func (uc *Usecase) fetchUsers(ctx context.Context, f fetch.Fetcher) ([]domain.User, error) {
	url := uc.baseURL + "/users"

	res, err := f.Fetch(ctx, url, fetch.Options{
		Method:      http.MethodGet,
		Headers:     map[string]string{"Content-Type": "application/json"},
		Credentials: fetch.Include,
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to fetch users", err)
	}

	if !res.OK {
		return nil, apperrors.NewFetchError(res.Status, url)
	}

	var body any
	if err := res.JSONNumbers(&body); err != nil {
		return nil, apperrors.NewInternalError("failed to decode users", err)
	}

	items, ok := body.([]any)
	if !ok {
		return nil, apperrors.NewValidationError("", "user list is not an array")
	}

	users := make([]domain.User, 0, len(items))
	for i, item := range items {
		u, ok := domain.ToUser(item)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("users[%d]", i), "invalid user shape")
		}
		users = append(users, u)
	}

	return users, nil
}

// LoadUser loads the page for the user named by the "id" route parameter.
// A non-OK response or a falsy body yields a NotFoundError. The body is not
// shape-checked and is returned as decoded.
func (uc *Usecase) LoadUser(ctx context.Context, ev Event) (*UserPage, error) {
	log := logger.WithContext(ctx, uc.log)

	id := ev.Params["id"]
	url := uc.baseURL + "/users/" + id

	res, err := uc.transport(ev).Fetch(ctx, url, fetch.Options{Method: http.MethodGet})
	if err != nil {
		log.Error("failed to fetch user", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to fetch user", err)
	}

	if !res.OK {
		log.Warn("user fetch returned non-OK status", zap.String("id", id), zap.Int("status", res.Status))
		return nil, apperrors.NewNotFoundError("user", id, fmt.Sprintf("Could not fetch user with id %s", id))
	}

	var body any
	if err := res.JSON(&body); err != nil {
		log.Error("failed to decode user", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to decode user", err)
	}

	if isFalsy(body) {
		log.Warn("user not found", zap.String("id", id))
		return nil, apperrors.NewNotFoundError("user", id, fmt.Sprintf("User with id %s not found", id))
	}

	return &UserPage{User: body}, nil
}

func (uc *Usecase) transport(ev Event) fetch.Fetcher {
	if ev.Fetch != nil {
		return ev.Fetch
	}
	return uc.fetcher
}

// isFalsy reports whether a decoded JSON value is empty: null, false, 0 or "".
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	default:
		return false
	}
}
