package medadmin

import (
	"encoding/json"
	"time"
)

// User represents an authenticated identity or a managed admin account.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	LastLogin    time.Time `json:"lastLogin,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Ref is a reference to a related record. The backend returns it either as
// a bare id string or as an expanded object, depending on the endpoint.
type Ref struct {
	ID   string
	Name string
}

// UnmarshalJSON accepts both reference shapes: "abc123" and {"_id": "...", "name": "..."}.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}
	var obj struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	r.Name = obj.Name
	return nil
}

// MarshalJSON always emits the bare id, which is what write endpoints expect.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool { return r.ID == "" }

// Hospital is a managed hospital organization.
type Hospital struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Clinic is a clinic, optionally attached to a parent hospital.
type Clinic struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Hospital  Ref       `json:"hospital,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Doctor is a doctor, optionally attached to a clinic (and through it, a hospital).
type Doctor struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	Clinic    Ref       `json:"clinic,omitempty"`
	Hospital  Ref       `json:"hospital,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Patient is a patient record, optionally linked to a doctor/clinic/hospital chain.
type Patient struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	BirthDate string    `json:"birthDate,omitempty"`
	Doctor    Ref       `json:"doctor,omitempty"`
	Clinic    Ref       `json:"clinic,omitempty"`
	Hospital  Ref       `json:"hospital,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Stats holds the aggregate counters shown above each list screen.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// Page is one page of a paginated resource collection. It is replaced
// wholesale on every fetch; there is no incremental merge.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int
	PageSize   int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// ListOptions holds the query parameters of a list fetch. The backend
// consumes them as a JSON request body, like every other call.
type ListOptions struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search,omitempty"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

// RegisterParams is the payload of the self-registration endpoint.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HospitalCreateParams holds the fields of a new hospital.
type HospitalCreateParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// HospitalUpdateParams updates a hospital. A blank Password means
// "keep the current password" and is omitted from the payload entirely.
type HospitalUpdateParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ClinicCreateParams holds the fields of a new clinic. HospitalID is
// required when the acting role is SUPER_ADMIN; hospital actors create
// clinics under themselves and leave it blank.
type ClinicCreateParams struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	HospitalID string `json:"hospital,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// ClinicUpdateParams updates a clinic. Blank Password is omitted.
type ClinicUpdateParams struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	HospitalID string `json:"hospital,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// DoctorCreateParams holds the fields of a new doctor.
type DoctorCreateParams struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	ClinicID  string `json:"clinic,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// DoctorUpdateParams updates a doctor. Blank Password is omitted.
type DoctorUpdateParams struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	ClinicID  string `json:"clinic,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// PatientCreateParams holds the fields of a new patient.
type PatientCreateParams struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	DoctorID  string `json:"doctor,omitempty"`
	ClinicID  string `json:"clinic,omitempty"`
}

// PatientUpdateParams updates a patient.
type PatientUpdateParams struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	DoctorID  string `json:"doctor,omitempty"`
	ClinicID  string `json:"clinic,omitempty"`
}

// AdminCreateParams holds the fields of a new admin account.
type AdminCreateParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AdminUpdateParams updates an admin account. Blank Password is omitted.
type AdminUpdateParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// ProfileUpdateParams updates the current identity's own profile.
type ProfileUpdateParams struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// PasswordChangeParams changes the current identity's password.
type PasswordChangeParams struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
