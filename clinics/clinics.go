// Package clinics provides the ClinicService implementation.
package clinics

import (
	"context"
	"fmt"

	medadmin "github.com/carebase/medadmin-go"
)

// Backend defines the contract for pluggable clinic service backends (REST, fake).
type Backend interface {
	List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Clinic], error)
	Get(ctx context.Context, id string) (*medadmin.Clinic, error)
	Create(ctx context.Context, params medadmin.ClinicCreateParams) (*medadmin.Clinic, error)
	Update(ctx context.Context, id string, params medadmin.ClinicUpdateParams) (*medadmin.Clinic, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (medadmin.Stats, error)
}

// Service implements medadmin.ClinicService with a configurable backend.
//
// The acting role matters on create: SUPER_ADMIN must name the parent
// hospital explicitly, hospital actors create under themselves and the
// server resolves the parent from the token.
type Service struct {
	backend Backend
	role    medadmin.Role
}

var _ medadmin.ClinicService = (*Service)(nil)

// New creates a new ClinicService with the given backend, acting as role.
func New(backend Backend, role medadmin.Role) *Service {
	return &Service{backend: backend, role: role}
}

// List returns clinics with pagination.
func (s *Service) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Clinic], error) {
	page, err := s.backend.List(ctx, opts)
	if err != nil {
		return medadmin.Page[medadmin.Clinic]{}, fmt.Errorf("medadmin/clinics: %w", err)
	}
	return page, nil
}

// Get returns a single clinic by id.
func (s *Service) Get(ctx context.Context, id string) (*medadmin.Clinic, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/clinics: id cannot be empty")
	}
	clinic, err := s.backend.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medadmin/clinics: %w", err)
	}
	return clinic, nil
}

// Create registers a new clinic.
func (s *Service) Create(ctx context.Context, params medadmin.ClinicCreateParams) (*medadmin.Clinic, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("medadmin/clinics: name is required")
	}
	if params.Email == "" {
		return nil, fmt.Errorf("medadmin/clinics: email is required")
	}
	if params.Password == "" {
		return nil, fmt.Errorf("medadmin/clinics: password is required")
	}
	if s.role == medadmin.RoleSuperAdmin && params.HospitalID == "" {
		return nil, fmt.Errorf("medadmin/clinics: hospital is required")
	}
	clinic, err := s.backend.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/clinics: %w", err)
	}
	return clinic, nil
}

// Update modifies a clinic. Blank Password keeps the current password.
func (s *Service) Update(ctx context.Context, id string, params medadmin.ClinicUpdateParams) (*medadmin.Clinic, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/clinics: id cannot be empty")
	}
	clinic, err := s.backend.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/clinics: %w", err)
	}
	return clinic, nil
}

// Delete removes a clinic.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("medadmin/clinics: id cannot be empty")
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return fmt.Errorf("medadmin/clinics: %w", err)
	}
	return nil
}

// SetActive flips the active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return fmt.Errorf("medadmin/clinics: id cannot be empty")
	}
	if err := s.backend.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("medadmin/clinics: %w", err)
	}
	return nil
}

// Stats returns the aggregate counters for the clinics screen.
func (s *Service) Stats(ctx context.Context) (medadmin.Stats, error) {
	stats, err := s.backend.Stats(ctx)
	if err != nil {
		return medadmin.Stats{}, fmt.Errorf("medadmin/clinics: %w", err)
	}
	return stats, nil
}
