// Package patients provides the PatientService implementation.
package patients

import (
	"context"
	"fmt"

	medadmin "github.com/carebase/medadmin-go"
)

// Backend defines the contract for pluggable patient service backends (REST, fake).
type Backend interface {
	List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Patient], error)
	Get(ctx context.Context, id string) (*medadmin.Patient, error)
	Create(ctx context.Context, params medadmin.PatientCreateParams) (*medadmin.Patient, error)
	Update(ctx context.Context, id string, params medadmin.PatientUpdateParams) (*medadmin.Patient, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (medadmin.Stats, error)
}

// Service implements medadmin.PatientService with a configurable backend.
// Patients have no login, so there is no password field anywhere.
type Service struct {
	backend Backend
}

var _ medadmin.PatientService = (*Service)(nil)

// New creates a new PatientService with the given backend.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// List returns patients with pagination.
func (s *Service) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Patient], error) {
	page, err := s.backend.List(ctx, opts)
	if err != nil {
		return medadmin.Page[medadmin.Patient]{}, fmt.Errorf("medadmin/patients: %w", err)
	}
	return page, nil
}

// Get returns a single patient by id.
func (s *Service) Get(ctx context.Context, id string) (*medadmin.Patient, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/patients: id cannot be empty")
	}
	patient, err := s.backend.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medadmin/patients: %w", err)
	}
	return patient, nil
}

// Create registers a new patient record.
func (s *Service) Create(ctx context.Context, params medadmin.PatientCreateParams) (*medadmin.Patient, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("medadmin/patients: name is required")
	}
	patient, err := s.backend.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/patients: %w", err)
	}
	return patient, nil
}

// Update modifies a patient record.
func (s *Service) Update(ctx context.Context, id string, params medadmin.PatientUpdateParams) (*medadmin.Patient, error) {
	if id == "" {
		return nil, fmt.Errorf("medadmin/patients: id cannot be empty")
	}
	patient, err := s.backend.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("medadmin/patients: %w", err)
	}
	return patient, nil
}

// Delete removes a patient record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("medadmin/patients: id cannot be empty")
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return fmt.Errorf("medadmin/patients: %w", err)
	}
	return nil
}

// SetActive flips the active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return fmt.Errorf("medadmin/patients: id cannot be empty")
	}
	if err := s.backend.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("medadmin/patients: %w", err)
	}
	return nil
}

// Stats returns the aggregate counters for the patients screen.
func (s *Service) Stats(ctx context.Context) (medadmin.Stats, error) {
	stats, err := s.backend.Stats(ctx)
	if err != nil {
		return medadmin.Stats{}, fmt.Errorf("medadmin/patients: %w", err)
	}
	return stats, nil
}
