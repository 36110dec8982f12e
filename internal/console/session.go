package console

import (
	"context"
	"strings"
)

// Session is the explicit logged-in state gating navigation. There is no
// credential backend: any non-empty id and password pair is accepted by
// the gateway, which issues the session token the Gateway implementation
// attaches to later calls.
type Session struct {
	gw     Gateway
	userID string
	active bool
}

func NewSession(gw Gateway) *Session {
	return &Session{gw: gw}
}

// Login transitions to the active state. Both fields are required; a
// missing one surfaces as a validation error without a gateway call.
func (s *Session) Login(ctx context.Context, id, password string) error {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(password) == "" {
		return ErrValidation
	}
	if err := s.gw.Login(ctx, id, password); err != nil {
		return err
	}
	s.userID = id
	s.active = true
	return nil
}

func (s *Session) Logout() {
	s.userID = ""
	s.active = false
}

// Active is the capability check the navigation layer consults before
// routing to any view.
func (s *Session) Active() bool {
	return s.active
}

func (s *Session) UserID() string {
	return s.userID
}
