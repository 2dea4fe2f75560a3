// Package medadmin provides a framework-agnostic Go SDK for the hospital,
// clinic and patient management admin dashboard.
//
// The SDK defines interfaces for session management and the per-entity
// resource services (hospitals, clinics, doctors, patients, admins). Concrete
// implementations are injected via Option functions, so the SDK is
// independent of any specific backend binding; rest/ binds everything to the
// real HTTP API and fake/ provides in-memory implementations for tests.
//
// Example usage with the REST binding:
//
//	rc := rest.NewClient(rest.Config{APIRoot: "https://api.example.com/api"})
//	store := session.New(rc, session.WithStorage(fileStorage))
//	client, err := medadmin.NewClient(
//	    medadmin.Config{Endpoint: "https://api.example.com/api"},
//	    medadmin.WithSessionStore(store),
//	    medadmin.WithDoctorService(doctors.New(rc)),
//	)
package medadmin

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Client is the main entry point for dashboard operations.
// Service implementations are injected via Option functions.
type Client struct {
	config    Config
	logger    *slog.Logger
	session   SessionStore
	hospitals HospitalService
	clinics   ClinicService
	doctors   DoctorService
	patients  PatientService
	admins    AdminService
	profile   ProfileService
}

// Config holds connection and behavior configuration.
type Config struct {
	// Endpoint is the API root of the primary backend.
	Endpoint string

	// AdminEndpoint is the API root of the secondary (legacy admin) identity
	// source. If empty, it defaults to Endpoint.
	AdminEndpoint string

	// Timeout bounds every HTTP request. Default: 15 seconds.
	Timeout time.Duration

	// SearchDebounce is how long list screens wait after the last keystroke
	// before fetching. Default: 500 milliseconds.
	SearchDebounce time.Duration
}

// DefaultTimeout bounds HTTP requests when Config.Timeout is unset.
const DefaultTimeout = 15 * time.Second

// DefaultSearchDebounce is the default search debounce delay.
const DefaultSearchDebounce = 500 * time.Millisecond

// Option configures the Client.
type Option func(*Client)

// WithLogger sets a structured logger for the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithSessionStore sets the session store implementation.
func WithSessionStore(s SessionStore) Option {
	return func(c *Client) { c.session = s }
}

// WithHospitalService sets the hospital service implementation.
func WithHospitalService(h HospitalService) Option {
	return func(c *Client) { c.hospitals = h }
}

// WithClinicService sets the clinic service implementation.
func WithClinicService(cl ClinicService) Option {
	return func(c *Client) { c.clinics = cl }
}

// WithDoctorService sets the doctor service implementation.
func WithDoctorService(d DoctorService) Option {
	return func(c *Client) { c.doctors = d }
}

// WithPatientService sets the patient service implementation.
func WithPatientService(p PatientService) Option {
	return func(c *Client) { c.patients = p }
}

// WithAdminService sets the admin account service implementation.
func WithAdminService(a AdminService) Option {
	return func(c *Client) { c.admins = a }
}

// WithProfileService sets the profile service implementation.
func WithProfileService(p ProfileService) Option {
	return func(c *Client) { c.profile = p }
}

// NewClient creates a new dashboard client with the given configuration and options.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("medadmin: Endpoint is required")
	}
	if cfg.AdminEndpoint == "" {
		cfg.AdminEndpoint = cfg.Endpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SearchDebounce == 0 {
		cfg.SearchDebounce = DefaultSearchDebounce
	}

	c := &Client{config: cfg}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config { return c.config }

// Session returns the session store, or nil if not configured.
func (c *Client) Session() SessionStore { return c.session }

// Hospitals returns the hospital service, or nil if not configured.
func (c *Client) Hospitals() HospitalService { return c.hospitals }

// Clinics returns the clinic service, or nil if not configured.
func (c *Client) Clinics() ClinicService { return c.clinics }

// Doctors returns the doctor service, or nil if not configured.
func (c *Client) Doctors() DoctorService { return c.doctors }

// Patients returns the patient service, or nil if not configured.
func (c *Client) Patients() PatientService { return c.patients }

// Admins returns the admin account service, or nil if not configured.
func (c *Client) Admins() AdminService { return c.admins }

// Profile returns the profile service, or nil if not configured.
func (c *Client) Profile() ProfileService { return c.profile }

// Close releases all resources held by the client.
// Any injected service that implements io.Closer will be closed.
func (c *Client) Close() error {
	closers := []interface{}{
		c.session, c.hospitals, c.clinics,
		c.doctors, c.patients, c.admins, c.profile,
	}
	var firstErr error
	for _, svc := range closers {
		if cl, ok := svc.(io.Closer); ok && cl != nil {
			if err := cl.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
