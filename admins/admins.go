// Package admins provides the AdminService implementation for the legacy
// admin identity source.
package admins

import (
	"context"
	"fmt"

	medadmin "github.com/carebase/medadmin-go"
)

// Backend defines the contract for pluggable admin service backends (REST, fake).
type Backend interface {
	List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.User], error)
	Get(ctx context.Context, id string) (*medadmin.User, error)
	Create(ctx context.Context, params medadmin.AdminCreateParams) (*medadmin.User, error)
	Update(ctx context.Context, id string, params medadmin.AdminUpdateParams) (*medadmin.User, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

// Service implements medadmin.AdminService with a configurable backend.
// The admins screen additionally filters by role, which List passes through
// in ListOptions.Role.
type Service struct {
	backend Backend
}

var _ medadmin.AdminService = (*Service)(nil)

// New creates a new AdminService with the given backend.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// List returns admin accounts with pagination.
func (s *Service) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.User], error) {
	page, err := s.backend.List(ctx, opts)
	if err != nil {
		return medadmin.Page[medadmin.User]{}, fmt.Errorf("medadmin/admins: %w", err)
	}
	return page, nil
}

// Get returns a single admin account by id.
func (s *Service) Get(ctx context.Context, id string) (*medadmin.User, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/admins: id cannot be empty")
	}
	admin, err := s.backend.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medadmin/admins: %w", err)
	}
	return admin, nil
}

// Create registers a new admin account.
func (s *Service) Create(ctx context.Context, params medadmin.AdminCreateParams) (*medadmin.User, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("medadmin/admins: name is required")
	}
	if params.Email == "" {
		return nil, fmt.Errorf("medadmin/admins: email is required")
	}
	if params.Password == "" {
		return nil, fmt.Errorf("medadmin/admins: password is required")
	}
	admin, err := s.backend.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/admins: %w", err)
	}
	return admin, nil
}

// Update modifies an admin account. Blank Password keeps the current password.
func (s *Service) Update(ctx context.Context, id string, params medadmin.AdminUpdateParams) (*medadmin.User, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/admins: id cannot be empty")
	}
	admin, err := s.backend.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/admins: %w", err)
	}
	return admin, nil
}

// Delete removes an admin account.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("medadmin/admins: id cannot be empty")
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return fmt.Errorf("medadmin/admins: %w", err)
	}
	return nil
}

// SetActive flips the active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return fmt.Errorf("medadmin/admins: id cannot be empty")
	}
	if err := s.backend.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("medadmin/admins: %w", err)
	}
	return nil
}
