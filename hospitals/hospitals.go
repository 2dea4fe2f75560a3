// Package hospitals provides the HospitalService implementation.
package hospitals

import (
	"context"
	"fmt"

	medadmin "github.com/carebase/medadmin-go"
)

// Backend defines the contract for pluggable hospital service backends (REST, fake).
type Backend interface {
	List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Hospital], error)
	Get(ctx context.Context, id string) (*medadmin.Hospital, error)
	Create(ctx context.Context, params medadmin.HospitalCreateParams) (*medadmin.Hospital, error)
	Update(ctx context.Context, id string, params medadmin.HospitalUpdateParams) (*medadmin.Hospital, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (medadmin.Stats, error)
}

// Service implements medadmin.HospitalService with a configurable backend.
type Service struct {
	backend Backend
}

var _ medadmin.HospitalService = (*Service)(nil)

// New creates a new HospitalService with the given backend.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// List returns hospitals with pagination.
func (s *Service) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Hospital], error) {
	page, err := s.backend.List(ctx, opts)
	if err != nil {
		return medadmin.Page[medadmin.Hospital]{}, fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return page, nil
}

// Get returns a single hospital by id.
func (s *Service) Get(ctx context.Context, id string) (*medadmin.Hospital, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/hospitals: id cannot be empty")
	}
	hospital, err := s.backend.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return hospital, nil
}

// Create registers a new hospital organization.
func (s *Service) Create(ctx context.Context, params medadmin.HospitalCreateParams) (*medadmin.Hospital, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("medadmin/hospitals: name is required")
	}
	if params.Email == "" {
		return nil, fmt.Errorf("medadmin/hospitals: email is required")
	}
	if params.Password == "" {
		return nil, fmt.Errorf("medadmin/hospitals: password is required")
	}
	hospital, err := s.backend.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return hospital, nil
}

// Update modifies a hospital. Blank Password keeps the current password.
func (s *Service) Update(ctx context.Context, id string, params medadmin.HospitalUpdateParams) (*medadmin.Hospital, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/hospitals: id cannot be empty")
	}
	hospital, err := s.backend.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return hospital, nil
}

// Delete removes a hospital.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("medadmin/hospitals: id cannot be empty")
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return nil
}

// SetActive flips the active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return fmt.Errorf("medadmin/hospitals: id cannot be empty")
	}
	if err := s.backend.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return nil
}

// Stats returns the aggregate counters for the hospitals screen.
func (s *Service) Stats(ctx context.Context) (medadmin.Stats, error) {
	stats, err := s.backend.Stats(ctx)
	if err != nil {
		return medadmin.Stats{}, fmt.Errorf("medadmin/hospitals: %w", err)
	}
	return stats, nil
}
