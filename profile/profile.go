// Package profile provides the ProfileService implementation for the
// current identity's own settings screen.
package profile

import (
	"context"
	"fmt"

	medadmin "github.com/carebase/medadmin-go"
)

// Backend defines the contract for pluggable profile backends (REST, fake).
type Backend interface {
	Get(ctx context.Context) (*medadmin.User, error)
	Update(ctx context.Context, params medadmin.ProfileUpdateParams) (*medadmin.User, error)
	ChangePassword(ctx context.Context, params medadmin.PasswordChangeParams) error
}

// Service implements medadmin.ProfileService with a configurable backend.
type Service struct {
	backend Backend
}

var _ medadmin.ProfileService = (*Service)(nil)

// New creates a new ProfileService with the given backend.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// Get returns the current identity's profile.
func (s *Service) Get(ctx context.Context) (*medadmin.User, error) {
	user, err := s.backend.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("medadmin/profile: %w", err)
	}
	return user, nil
}

// Update modifies the current identity's profile.
func (s *Service) Update(ctx context.Context, params medadmin.ProfileUpdateParams) (*medadmin.User, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("medadmin/profile: name is required")
	}
	if params.Email == "" {
		return nil, fmt.Errorf("medadmin/profile: email is required")
	}
	user, err := s.backend.Update(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/profile: %w", err)
	}
	return user, nil
}

// ChangePassword changes the current identity's password.
func (s *Service) ChangePassword(ctx context.Context, params medadmin.PasswordChangeParams) error {
	if params.CurrentPassword == "" {
		return fmt.Errorf("medadmin/profile: current password is required")
	}
	if params.NewPassword == "" {
		return fmt.Errorf("medadmin/profile: new password is required")
	}
	if err := s.backend.ChangePassword(ctx, params); err != nil {
		return fmt.Errorf("medadmin/profile: %w", err)
	}
	return nil
}
