// Package doctors provides the DoctorService implementation.
package doctors

import (
	"context"
	"fmt"

	medadmin "github.com/carebase/medadmin-go"
)

// Backend defines the contract for pluggable doctor service backends (REST, fake).
type Backend interface {
	List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Doctor], error)
	Get(ctx context.Context, id string) (*medadmin.Doctor, error)
	Create(ctx context.Context, params medadmin.DoctorCreateParams) (*medadmin.Doctor, error)
	Update(ctx context.Context, id string, params medadmin.DoctorUpdateParams) (*medadmin.Doctor, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (medadmin.Stats, error)
}

// Service implements medadmin.DoctorService with a configurable backend.
// Required fields are enforced here, before any network call; the server
// stays authoritative.
type Service struct {
	backend Backend
}

var _ medadmin.DoctorService = (*Service)(nil)

// New creates a new DoctorService with the given backend.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// List returns doctors with pagination.
func (s *Service) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Doctor], error) {
	page, err := s.backend.List(ctx, opts)
	if err != nil {
		return medadmin.Page[medadmin.Doctor]{}, fmt.Errorf("medadmin/doctors: %w", err)
	}
	return page, nil
}

// Get returns a single doctor. Edit forms fetch through here rather than
// reusing the list row, so fields the list response omits are present.
func (s *Service) Get(ctx context.Context, id string) (*medadmin.Doctor, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/doctors: id cannot be empty")
	}
	doctor, err := s.backend.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medadmin/doctors: %w", err)
	}
	return doctor, nil
}

// Create registers a new doctor.
func (s *Service) Create(ctx context.Context, params medadmin.DoctorCreateParams) (*medadmin.Doctor, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("medadmin/doctors: name is required")
	}
	if params.Email == "" {
		return nil, fmt.Errorf("medadmin/doctors: email is required")
	}
	if params.Password == "" {
		return nil, fmt.Errorf("medadmin/doctors: password is required")
	}
	doctor, err := s.backend.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/doctors: %w", err)
	}
	return doctor, nil
}

// Update modifies a doctor. A blank Password keeps the current password;
// the backend payload never carries a password key in that case.
func (s *Service) Update(ctx context.Context, id string, params medadmin.DoctorUpdateParams) (*medadmin.Doctor, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/doctors: id cannot be empty")
	}
	doctor, err := s.backend.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/doctors: %w", err)
	}
	return doctor, nil
}

// Delete removes a doctor.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("medadmin/doctors: id cannot be empty")
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return fmt.Errorf("medadmin/doctors: %w", err)
	}
	return nil
}

// SetActive flips the active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return fmt.Errorf("medadmin/doctors: id cannot be empty")
	}
	if err := s.backend.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("medadmin/doctors: %w", err)
	}
	return nil
}

// Stats returns the aggregate counters for the doctors screen.
func (s *Service) Stats(ctx context.Context) (medadmin.Stats, error) {
	stats, err := s.backend.Stats(ctx)
	if err != nil {
		return medadmin.Stats{}, fmt.Errorf("medadmin/doctors: %w", err)
	}
	return stats, nil
}
