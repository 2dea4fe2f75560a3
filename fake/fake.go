// Package fake provides in-memory implementations of all medadmin backends
// for testing.
//
// Use fake.NewClient() in unit tests to avoid network calls and external
// dependencies. The fakes speak the same error shapes as the REST binding,
// so error-path behavior matches what callers see in production.
package fake

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/admins"
	"github.com/carebase/medadmin-go/clinics"
	"github.com/carebase/medadmin-go/doctors"
	"github.com/carebase/medadmin-go/hospitals"
	"github.com/carebase/medadmin-go/patients"
	"github.com/carebase/medadmin-go/profile"
	"github.com/carebase/medadmin-go/session"
)

// Option configures the fake backend.
type Option func(*Backend)

type account struct {
	password string
	user     medadmin.User
}

// Backend holds all in-memory state and implements every backend interface
// the SDK defines.
type Backend struct {
	mu sync.RWMutex

	accounts      map[string]account // primary source: email → account
	adminAccounts map[string]account // secondary (legacy admin) source

	hospitalTab *table[medadmin.Hospital]
	clinicTab   *table[medadmin.Clinic]
	doctorTab   *table[medadmin.Doctor]
	patientTab  *table[medadmin.Patient]
	adminTab    *table[medadmin.User]

	current *medadmin.User // identity of the latest login/register
	nextID  int

	// LogoutErr, when set, is returned from Logout. Tests use it to verify
	// the session store's best-effort logout behavior.
	LogoutErr error
}

// WithAccount seeds a primary-source login account.
func WithAccount(email, password string, user medadmin.User) Option {
	return func(b *Backend) {
		user.Email = email
		b.accounts[email] = account{password: password, user: user}
	}
}

// WithAdminAccount seeds a secondary-source (legacy admin) login account.
func WithAdminAccount(email, password string, user medadmin.User) Option {
	return func(b *Backend) {
		user.Email = email
		b.adminAccounts[email] = account{password: password, user: user}
		b.adminTab.put(user.ID, user)
	}
}

// WithHospital seeds a hospital record.
func WithHospital(h medadmin.Hospital) Option {
	return func(b *Backend) { b.hospitalTab.put(h.ID, h) }
}

// WithClinic seeds a clinic record.
func WithClinic(c medadmin.Clinic) Option {
	return func(b *Backend) { b.clinicTab.put(c.ID, c) }
}

// WithDoctor seeds a doctor record.
func WithDoctor(d medadmin.Doctor) Option {
	return func(b *Backend) { b.doctorTab.put(d.ID, d) }
}

// WithPatient seeds a patient record.
func WithPatient(p medadmin.Patient) Option {
	return func(b *Backend) { b.patientTab.put(p.ID, p) }
}

// New creates an empty fake backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		accounts:      make(map[string]account),
		adminAccounts: make(map[string]account),
		hospitalTab:   newTable[medadmin.Hospital](),
		clinicTab:     newTable[medadmin.Clinic](),
		doctorTab:     newTable[medadmin.Doctor](),
		patientTab:    newTable[medadmin.Patient](),
		adminTab:      newTable[medadmin.User](),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// NewClient creates a *medadmin.Client with every service wired to one
// in-memory backend. The session store uses in-memory storage.
func NewClient(opts ...Option) (*medadmin.Client, *Backend) {
	b := New(opts...)
	store := session.New(b)
	c, _ := medadmin.NewClient(
		medadmin.Config{Endpoint: "fake://localhost"},
		medadmin.WithSessionStore(store),
		medadmin.WithHospitalService(hospitals.New(b.Hospitals())),
		medadmin.WithClinicService(clinics.New(b.Clinics(), medadmin.RoleSuperAdmin)),
		medadmin.WithDoctorService(doctors.New(b.Doctors())),
		medadmin.WithPatientService(patients.New(b.Patients())),
		medadmin.WithAdminService(admins.New(b.Admins())),
		medadmin.WithProfileService(profile.New(b.Profile())),
	)
	return c, b
}

func (b *Backend) id(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", prefix, b.nextID)
}

// --- session.AuthBackend ---

var _ session.AuthBackend = (*Backend)(nil)

func (b *Backend) login(source map[string]account, email, password string) (session.Credentials, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := source[email]
	if !ok || acct.password != password {
		return session.Credentials{}, &medadmin.APIError{Status: 401, Message: "Invalid email or password"}
	}
	user := acct.user
	user.LastLogin = time.Now()
	b.current = &user
	return session.Credentials{Token: "fake-token-" + user.ID, User: &user}, nil
}

// LoginPrimary authenticates against the seeded primary accounts.
func (b *Backend) LoginPrimary(_ context.Context, email, password string) (session.Credentials, error) {
	return b.login(b.accounts, email, password)
}

// LoginSecondary authenticates against the seeded legacy admin accounts.
func (b *Backend) LoginSecondary(_ context.Context, email, password string) (session.Credentials, error) {
	return b.login(b.adminAccounts, email, password)
}

// Register creates a legacy admin account and signs it in.
func (b *Backend) Register(_ context.Context, params medadmin.RegisterParams) (session.Credentials, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, taken := b.accounts[params.Email]; taken {
		return session.Credentials{}, &medadmin.APIError{Status: 409, Message: "An account with this email already exists"}
	}
	if _, taken := b.adminAccounts[params.Email]; taken {
		return session.Credentials{}, &medadmin.APIError{Status: 409, Message: "An account with this email already exists"}
	}

	user := medadmin.User{
		ID:        b.id("user"),
		Name:      params.Name,
		Email:     params.Email,
		Role:      medadmin.RoleSuperAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	b.adminAccounts[params.Email] = account{password: params.Password, user: user}
	b.adminTab.put(user.ID, user)
	b.current = &user
	return session.Credentials{Token: "fake-token-" + user.ID, User: &user}, nil
}

// Logout returns LogoutErr if set.
func (b *Backend) Logout(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
	return b.LogoutErr
}

// --- generic in-memory table ---

type table[T any] struct {
	order []string
	items map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]T)}
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.items[id]; !ok {
		t.order = append(t.order, id)
	}
	t.items[id] = v
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func listPage[T any](t *table[T], opts medadmin.ListOptions, keep func(T) bool) medadmin.Page[T] {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}

	var all []T
	for _, id := range t.order {
		v := t.items[id]
		if keep == nil || keep(v) {
			all = append(all, v)
		}
	}

	total := len(all)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	items := []T{}
	if start < total {
		items = all[start:end]
	}
	return medadmin.Page[T]{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
		PageSize:   limit,
	}
}

func statsOf[T any](t *table[T], active func(T) bool) medadmin.Stats {
	var s medadmin.Stats
	for _, v := range t.items {
		s.Total++
		if active(v) {
			s.Active++
		} else {
			s.Inactive++
		}
	}
	return s
}

// keepCommon applies the shared search and status filters of a list fetch.
func keepCommon(name, email string, active bool, opts medadmin.ListOptions) bool {
	if opts.Search != "" {
		q := strings.ToLower(opts.Search)
		if !strings.Contains(strings.ToLower(name), q) && !strings.Contains(strings.ToLower(email), q) {
			return false
		}
	}
	switch opts.Status {
	case "active":
		return active
	case "inactive":
		return !active
	}
	return true
}

func notFound(entity string) error {
	return &medadmin.APIError{Status: 404, Message: entity + " not found"}
}

// --- hospitals.Backend ---

type hospitalBackend struct{ b *Backend }

var _ hospitals.Backend = (*hospitalBackend)(nil)

// Hospitals returns the in-memory hospitals.Backend.
func (b *Backend) Hospitals() hospitals.Backend { return &hospitalBackend{b: b} }

func (f *hospitalBackend) List(_ context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Hospital], error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return listPage(f.b.hospitalTab, opts, func(h medadmin.Hospital) bool {
		return keepCommon(h.Name, h.Email, h.IsActive, opts)
	}), nil
}

func (f *hospitalBackend) Get(_ context.Context, id string) (*medadmin.Hospital, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	h, ok := f.b.hospitalTab.items[id]
	if !ok {
		return nil, notFound("Hospital")
	}
	return &h, nil
}

func (f *hospitalBackend) Create(_ context.Context, params medadmin.HospitalCreateParams) (*medadmin.Hospital, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	h := medadmin.Hospital{
		ID:        f.b.id("hospital"),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Address:   params.Address,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	f.b.hospitalTab.put(h.ID, h)
	return &h, nil
}

func (f *hospitalBackend) Update(_ context.Context, id string, params medadmin.HospitalUpdateParams) (*medadmin.Hospital, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	h, ok := f.b.hospitalTab.items[id]
	if !ok {
		return nil, notFound("Hospital")
	}
	h.Name = params.Name
	h.Email = params.Email
	h.Phone = params.Phone
	h.Address = params.Address
	h.UpdatedAt = time.Now()
	f.b.hospitalTab.put(id, h)
	return &h, nil
}

func (f *hospitalBackend) Delete(_ context.Context, id string) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if !f.b.hospitalTab.remove(id) {
		return notFound("Hospital")
	}
	return nil
}

func (f *hospitalBackend) SetActive(_ context.Context, id string, active bool) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	h, ok := f.b.hospitalTab.items[id]
	if !ok {
		return notFound("Hospital")
	}
	h.IsActive = active
	f.b.hospitalTab.put(id, h)
	return nil
}

func (f *hospitalBackend) Stats(context.Context) (medadmin.Stats, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return statsOf(f.b.hospitalTab, func(h medadmin.Hospital) bool { return h.IsActive }), nil
}

// --- clinics.Backend ---

type clinicBackend struct{ b *Backend }

var _ clinics.Backend = (*clinicBackend)(nil)

// Clinics returns the in-memory clinics.Backend.
func (b *Backend) Clinics() clinics.Backend { return &clinicBackend{b: b} }

func (f *clinicBackend) List(_ context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Clinic], error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return listPage(f.b.clinicTab, opts, func(c medadmin.Clinic) bool {
		return keepCommon(c.Name, c.Email, c.IsActive, opts)
	}), nil
}

func (f *clinicBackend) Get(_ context.Context, id string) (*medadmin.Clinic, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	c, ok := f.b.clinicTab.items[id]
	if !ok {
		return nil, notFound("Clinic")
	}
	return &c, nil
}

func (f *clinicBackend) Create(_ context.Context, params medadmin.ClinicCreateParams) (*medadmin.Clinic, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	c := medadmin.Clinic{
		ID:        f.b.id("clinic"),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Address:   params.Address,
		Hospital:  medadmin.Ref{ID: params.HospitalID},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	f.b.clinicTab.put(c.ID, c)
	return &c, nil
}

func (f *clinicBackend) Update(_ context.Context, id string, params medadmin.ClinicUpdateParams) (*medadmin.Clinic, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	c, ok := f.b.clinicTab.items[id]
	if !ok {
		return nil, notFound("Clinic")
	}
	c.Name = params.Name
	c.Email = params.Email
	c.Phone = params.Phone
	c.Address = params.Address
	if params.HospitalID != "" {
		c.Hospital = medadmin.Ref{ID: params.HospitalID}
	}
	c.UpdatedAt = time.Now()
	f.b.clinicTab.put(id, c)
	return &c, nil
}

func (f *clinicBackend) Delete(_ context.Context, id string) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if !f.b.clinicTab.remove(id) {
		return notFound("Clinic")
	}
	return nil
}

func (f *clinicBackend) SetActive(_ context.Context, id string, active bool) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	c, ok := f.b.clinicTab.items[id]
	if !ok {
		return notFound("Clinic")
	}
	c.IsActive = active
	f.b.clinicTab.put(id, c)
	return nil
}

func (f *clinicBackend) Stats(context.Context) (medadmin.Stats, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return statsOf(f.b.clinicTab, func(c medadmin.Clinic) bool { return c.IsActive }), nil
}

// --- doctors.Backend ---

type doctorBackend struct{ b *Backend }

var _ doctors.Backend = (*doctorBackend)(nil)

// Doctors returns the in-memory doctors.Backend.
func (b *Backend) Doctors() doctors.Backend { return &doctorBackend{b: b} }

func (f *doctorBackend) List(_ context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Doctor], error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return listPage(f.b.doctorTab, opts, func(d medadmin.Doctor) bool {
		return keepCommon(d.Name, d.Email, d.IsActive, opts)
	}), nil
}

func (f *doctorBackend) Get(_ context.Context, id string) (*medadmin.Doctor, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	d, ok := f.b.doctorTab.items[id]
	if !ok {
		return nil, notFound("Doctor")
	}
	return &d, nil
}

func (f *doctorBackend) Create(_ context.Context, params medadmin.DoctorCreateParams) (*medadmin.Doctor, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	d := medadmin.Doctor{
		ID:        f.b.id("doctor"),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Specialty: params.Specialty,
		Clinic:    medadmin.Ref{ID: params.ClinicID},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	f.b.doctorTab.put(d.ID, d)
	return &d, nil
}

func (f *doctorBackend) Update(_ context.Context, id string, params medadmin.DoctorUpdateParams) (*medadmin.Doctor, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	d, ok := f.b.doctorTab.items[id]
	if !ok {
		return nil, notFound("Doctor")
	}
	d.Name = params.Name
	d.Email = params.Email
	d.Phone = params.Phone
	d.Specialty = params.Specialty
	if params.ClinicID != "" {
		d.Clinic = medadmin.Ref{ID: params.ClinicID}
	}
	d.UpdatedAt = time.Now()
	f.b.doctorTab.put(id, d)
	return &d, nil
}

func (f *doctorBackend) Delete(_ context.Context, id string) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if !f.b.doctorTab.remove(id) {
		return notFound("Doctor")
	}
	return nil
}

func (f *doctorBackend) SetActive(_ context.Context, id string, active bool) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	d, ok := f.b.doctorTab.items[id]
	if !ok {
		return notFound("Doctor")
	}
	d.IsActive = active
	f.b.doctorTab.put(id, d)
	return nil
}

func (f *doctorBackend) Stats(context.Context) (medadmin.Stats, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return statsOf(f.b.doctorTab, func(d medadmin.Doctor) bool { return d.IsActive }), nil
}

// --- patients.Backend ---

type patientBackend struct{ b *Backend }

var _ patients.Backend = (*patientBackend)(nil)

// Patients returns the in-memory patients.Backend.
func (b *Backend) Patients() patients.Backend { return &patientBackend{b: b} }

func (f *patientBackend) List(_ context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Patient], error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return listPage(f.b.patientTab, opts, func(p medadmin.Patient) bool {
		return keepCommon(p.Name, p.Email, p.IsActive, opts)
	}), nil
}

func (f *patientBackend) Get(_ context.Context, id string) (*medadmin.Patient, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	p, ok := f.b.patientTab.items[id]
	if !ok {
		return nil, notFound("Patient")
	}
	return &p, nil
}

func (f *patientBackend) Create(_ context.Context, params medadmin.PatientCreateParams) (*medadmin.Patient, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	p := medadmin.Patient{
		ID:        f.b.id("patient"),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Gender:    params.Gender,
		BirthDate: params.BirthDate,
		Doctor:    medadmin.Ref{ID: params.DoctorID},
		Clinic:    medadmin.Ref{ID: params.ClinicID},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	f.b.patientTab.put(p.ID, p)
	return &p, nil
}

func (f *patientBackend) Update(_ context.Context, id string, params medadmin.PatientUpdateParams) (*medadmin.Patient, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	p, ok := f.b.patientTab.items[id]
	if !ok {
		return nil, notFound("Patient")
	}
	p.Name = params.Name
	p.Email = params.Email
	p.Phone = params.Phone
	p.Gender = params.Gender
	p.BirthDate = params.BirthDate
	if params.DoctorID != "" {
		p.Doctor = medadmin.Ref{ID: params.DoctorID}
	}
	if params.ClinicID != "" {
		p.Clinic = medadmin.Ref{ID: params.ClinicID}
	}
	p.UpdatedAt = time.Now()
	f.b.patientTab.put(id, p)
	return &p, nil
}

func (f *patientBackend) Delete(_ context.Context, id string) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if !f.b.patientTab.remove(id) {
		return notFound("Patient")
	}
	return nil
}

func (f *patientBackend) SetActive(_ context.Context, id string, active bool) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	p, ok := f.b.patientTab.items[id]
	if !ok {
		return notFound("Patient")
	}
	p.IsActive = active
	f.b.patientTab.put(id, p)
	return nil
}

func (f *patientBackend) Stats(context.Context) (medadmin.Stats, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return statsOf(f.b.patientTab, func(p medadmin.Patient) bool { return p.IsActive }), nil
}

// --- admins.Backend ---

type adminBackend struct{ b *Backend }

var _ admins.Backend = (*adminBackend)(nil)

// Admins returns the in-memory admins.Backend.
func (b *Backend) Admins() admins.Backend { return &adminBackend{b: b} }

func (f *adminBackend) List(_ context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.User], error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	return listPage(f.b.adminTab, opts, func(u medadmin.User) bool {
		if opts.Role != "" && !strings.EqualFold(opts.Role, string(u.Role)) {
			return false
		}
		return keepCommon(u.Name, u.Email, u.IsActive, opts)
	}), nil
}

func (f *adminBackend) Get(_ context.Context, id string) (*medadmin.User, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	u, ok := f.b.adminTab.items[id]
	if !ok {
		return nil, notFound("Admin")
	}
	return &u, nil
}

func (f *adminBackend) Create(_ context.Context, params medadmin.AdminCreateParams) (*medadmin.User, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	u := medadmin.User{
		ID:        f.b.id("user"),
		Name:      params.Name,
		Email:     params.Email,
		Role:      medadmin.NormalizeRole(params.Role),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if u.Role == medadmin.RoleUnknown {
		u.Role = medadmin.RoleSuperAdmin
	}
	f.b.adminTab.put(u.ID, u)
	f.b.adminAccounts[u.Email] = account{password: params.Password, user: u}
	return &u, nil
}

func (f *adminBackend) Update(_ context.Context, id string, params medadmin.AdminUpdateParams) (*medadmin.User, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	u, ok := f.b.adminTab.items[id]
	if !ok {
		return nil, notFound("Admin")
	}
	u.Name = params.Name
	u.Email = params.Email
	if params.Role != "" {
		u.Role = medadmin.NormalizeRole(params.Role)
	}
	u.UpdatedAt = time.Now()
	f.b.adminTab.put(id, u)
	return &u, nil
}

func (f *adminBackend) Delete(_ context.Context, id string) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	u, ok := f.b.adminTab.items[id]
	if !ok {
		return notFound("Admin")
	}
	delete(f.b.adminAccounts, u.Email)
	f.b.adminTab.remove(id)
	return nil
}

func (f *adminBackend) SetActive(_ context.Context, id string, active bool) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	u, ok := f.b.adminTab.items[id]
	if !ok {
		return notFound("Admin")
	}
	u.IsActive = active
	f.b.adminTab.put(id, u)
	return nil
}

// --- profile.Backend ---

type profileBackend struct{ b *Backend }

var _ profile.Backend = (*profileBackend)(nil)

// Profile returns the in-memory profile.Backend. It serves the identity of
// the latest login or registration.
func (b *Backend) Profile() profile.Backend { return &profileBackend{b: b} }

func (f *profileBackend) Get(context.Context) (*medadmin.User, error) {
	f.b.mu.RLock()
	defer f.b.mu.RUnlock()
	if f.b.current == nil {
		return nil, &medadmin.APIError{Status: 401, Message: "Not authenticated"}
	}
	u := *f.b.current
	return &u, nil
}

func (f *profileBackend) Update(_ context.Context, params medadmin.ProfileUpdateParams) (*medadmin.User, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if f.b.current == nil {
		return nil, &medadmin.APIError{Status: 401, Message: "Not authenticated"}
	}
	f.b.current.Name = params.Name
	f.b.current.Email = params.Email
	if params.ProfileImage != "" {
		f.b.current.ProfileImage = params.ProfileImage
	}
	f.b.current.UpdatedAt = time.Now()
	u := *f.b.current
	return &u, nil
}

func (f *profileBackend) ChangePassword(_ context.Context, params medadmin.PasswordChangeParams) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if f.b.current == nil {
		return &medadmin.APIError{Status: 401, Message: "Not authenticated"}
	}
	email := f.b.current.Email
	for _, source := range []map[string]account{f.b.accounts, f.b.adminAccounts} {
		if acct, ok := source[email]; ok {
			if acct.password != params.CurrentPassword {
				return &medadmin.APIError{Status: 400, Message: "Current password is incorrect"}
			}
			acct.password = params.NewPassword
			source[email] = acct
			return nil
		}
	}
	return notFound("Account")
}
