package medadmin

import "context"

// SessionStore owns the authentication lifecycle: exactly one identity is
// current at a time, or none. Implementations: session/ (real), fake/ (testing).
type SessionStore interface {
	// Initialize restores a persisted session. It runs at most once per
	// process, before any guard decision is made.
	Initialize(ctx context.Context) error

	// Login authenticates against the primary identity source, falling back
	// to the secondary source on failure.
	Login(ctx context.Context, email, password string) error

	// Register creates an account and signs it in.
	Register(ctx context.Context, params RegisterParams) error

	// Logout ends the session. Local state is cleared even when the backend
	// call fails.
	Logout(ctx context.Context) error

	// Loading reports whether session restoration is still in progress.
	Loading() bool

	// IsAuthenticated reports whether an identity and token are both held.
	IsAuthenticated() bool

	// Identity returns the current identity, or nil.
	Identity() *User

	// Role returns the current identity's canonical role.
	Role() Role
}

// HospitalService manages hospital records.
type HospitalService interface {
	List(ctx context.Context, opts ListOptions) (Page[Hospital], error)
	Get(ctx context.Context, id string) (*Hospital, error)
	Create(ctx context.Context, params HospitalCreateParams) (*Hospital, error)
	Update(ctx context.Context, id string, params HospitalUpdateParams) (*Hospital, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (Stats, error)
}

// ClinicService manages clinic records.
type ClinicService interface {
	List(ctx context.Context, opts ListOptions) (Page[Clinic], error)
	Get(ctx context.Context, id string) (*Clinic, error)
	Create(ctx context.Context, params ClinicCreateParams) (*Clinic, error)
	Update(ctx context.Context, id string, params ClinicUpdateParams) (*Clinic, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (Stats, error)
}

// DoctorService manages doctor records.
type DoctorService interface {
	List(ctx context.Context, opts ListOptions) (Page[Doctor], error)
	Get(ctx context.Context, id string) (*Doctor, error)
	Create(ctx context.Context, params DoctorCreateParams) (*Doctor, error)
	Update(ctx context.Context, id string, params DoctorUpdateParams) (*Doctor, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (Stats, error)
}

// PatientService manages patient records.
type PatientService interface {
	List(ctx context.Context, opts ListOptions) (Page[Patient], error)
	Get(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, params PatientCreateParams) (*Patient, error)
	Update(ctx context.Context, id string, params PatientUpdateParams) (*Patient, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Stats(ctx context.Context) (Stats, error)
}

// AdminService manages admin accounts from the legacy identity source.
type AdminService interface {
	List(ctx context.Context, opts ListOptions) (Page[User], error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, params AdminCreateParams) (*User, error)
	Update(ctx context.Context, id string, params AdminUpdateParams) (*User, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

// ProfileService manages the current identity's own profile.
type ProfileService interface {
	Get(ctx context.Context) (*User, error)
	Update(ctx context.Context, params ProfileUpdateParams) (*User, error)
	ChangePassword(ctx context.Context, params PasswordChangeParams) error
}
