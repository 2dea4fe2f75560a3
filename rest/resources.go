package rest

import (
	"context"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/admins"
	"github.com/carebase/medadmin-go/clinics"
	"github.com/carebase/medadmin-go/doctors"
	"github.com/carebase/medadmin-go/hospitals"
	"github.com/carebase/medadmin-go/patients"
)

// hospitalBackend binds hospitals.Backend to the HTTP API.
type hospitalBackend struct{ c *Client }

var _ hospitals.Backend = (*hospitalBackend)(nil)

// Hospitals returns the hospitals.Backend bound to this client.
func (c *Client) Hospitals() hospitals.Backend { return &hospitalBackend{c: c} }

func (b *hospitalBackend) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Hospital], error) {
	return listOf[medadmin.Hospital](ctx, b.c, b.c.api, "/hospital/list", opts)
}

func (b *hospitalBackend) Get(ctx context.Context, id string) (*medadmin.Hospital, error) {
	return getOf[medadmin.Hospital](ctx, b.c, b.c.api, "/hospital/get", id)
}

func (b *hospitalBackend) Create(ctx context.Context, params medadmin.HospitalCreateParams) (*medadmin.Hospital, error) {
	return createOf[medadmin.Hospital](ctx, b.c, b.c.api, "/hospital/create", params)
}

func (b *hospitalBackend) Update(ctx context.Context, id string, params medadmin.HospitalUpdateParams) (*medadmin.Hospital, error) {
	return updateOf[medadmin.Hospital](ctx, b.c, b.c.api, "/hospital/update", id, params)
}

func (b *hospitalBackend) Delete(ctx context.Context, id string) error {
	return b.c.deleteByID(ctx, b.c.api, "/hospital/delete", id)
}

func (b *hospitalBackend) SetActive(ctx context.Context, id string, active bool) error {
	return b.c.setActive(ctx, b.c.api, "/hospital/status", id, active)
}

func (b *hospitalBackend) Stats(ctx context.Context) (medadmin.Stats, error) {
	return b.c.statsOf(ctx, b.c.api, "/hospital/stats")
}

// clinicBackend binds clinics.Backend to the HTTP API.
type clinicBackend struct{ c *Client }

var _ clinics.Backend = (*clinicBackend)(nil)

// Clinics returns the clinics.Backend bound to this client.
func (c *Client) Clinics() clinics.Backend { return &clinicBackend{c: c} }

func (b *clinicBackend) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Clinic], error) {
	return listOf[medadmin.Clinic](ctx, b.c, b.c.api, "/clinic/list", opts)
}

func (b *clinicBackend) Get(ctx context.Context, id string) (*medadmin.Clinic, error) {
	return getOf[medadmin.Clinic](ctx, b.c, b.c.api, "/clinic/get", id)
}

func (b *clinicBackend) Create(ctx context.Context, params medadmin.ClinicCreateParams) (*medadmin.Clinic, error) {
	return createOf[medadmin.Clinic](ctx, b.c, b.c.api, "/clinic/create", params)
}

func (b *clinicBackend) Update(ctx context.Context, id string, params medadmin.ClinicUpdateParams) (*medadmin.Clinic, error) {
	return updateOf[medadmin.Clinic](ctx, b.c, b.c.api, "/clinic/update", id, params)
}

func (b *clinicBackend) Delete(ctx context.Context, id string) error {
	return b.c.deleteByID(ctx, b.c.api, "/clinic/delete", id)
}

func (b *clinicBackend) SetActive(ctx context.Context, id string, active bool) error {
	return b.c.setActive(ctx, b.c.api, "/clinic/status", id, active)
}

func (b *clinicBackend) Stats(ctx context.Context) (medadmin.Stats, error) {
	return b.c.statsOf(ctx, b.c.api, "/clinic/stats")
}

// doctorBackend binds doctors.Backend to the HTTP API.
type doctorBackend struct{ c *Client }

var _ doctors.Backend = (*doctorBackend)(nil)

// Doctors returns the doctors.Backend bound to this client.
func (c *Client) Doctors() doctors.Backend { return &doctorBackend{c: c} }

func (b *doctorBackend) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Doctor], error) {
	return listOf[medadmin.Doctor](ctx, b.c, b.c.api, "/doctor/list", opts)
}

func (b *doctorBackend) Get(ctx context.Context, id string) (*medadmin.Doctor, error) {
	return getOf[medadmin.Doctor](ctx, b.c, b.c.api, "/doctor/get", id)
}

func (b *doctorBackend) Create(ctx context.Context, params medadmin.DoctorCreateParams) (*medadmin.Doctor, error) {
	return createOf[medadmin.Doctor](ctx, b.c, b.c.api, "/doctor/create", params)
}

func (b *doctorBackend) Update(ctx context.Context, id string, params medadmin.DoctorUpdateParams) (*medadmin.Doctor, error) {
	return updateOf[medadmin.Doctor](ctx, b.c, b.c.api, "/doctor/update", id, params)
}

func (b *doctorBackend) Delete(ctx context.Context, id string) error {
	return b.c.deleteByID(ctx, b.c.api, "/doctor/delete", id)
}

func (b *doctorBackend) SetActive(ctx context.Context, id string, active bool) error {
	return b.c.setActive(ctx, b.c.api, "/doctor/status", id, active)
}

func (b *doctorBackend) Stats(ctx context.Context) (medadmin.Stats, error) {
	return b.c.statsOf(ctx, b.c.api, "/doctor/stats")
}

// patientBackend binds patients.Backend to the HTTP API.
type patientBackend struct{ c *Client }

var _ patients.Backend = (*patientBackend)(nil)

// Patients returns the patients.Backend bound to this client.
func (c *Client) Patients() patients.Backend { return &patientBackend{c: c} }

func (b *patientBackend) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.Patient], error) {
	return listOf[medadmin.Patient](ctx, b.c, b.c.api, "/patient/list", opts)
}

func (b *patientBackend) Get(ctx context.Context, id string) (*medadmin.Patient, error) {
	return getOf[medadmin.Patient](ctx, b.c, b.c.api, "/patient/get", id)
}

func (b *patientBackend) Create(ctx context.Context, params medadmin.PatientCreateParams) (*medadmin.Patient, error) {
	return createOf[medadmin.Patient](ctx, b.c, b.c.api, "/patient/create", params)
}

func (b *patientBackend) Update(ctx context.Context, id string, params medadmin.PatientUpdateParams) (*medadmin.Patient, error) {
	return updateOf[medadmin.Patient](ctx, b.c, b.c.api, "/patient/update", id, params)
}

func (b *patientBackend) Delete(ctx context.Context, id string) error {
	return b.c.deleteByID(ctx, b.c.api, "/patient/delete", id)
}

func (b *patientBackend) SetActive(ctx context.Context, id string, active bool) error {
	return b.c.setActive(ctx, b.c.api, "/patient/status", id, active)
}

func (b *patientBackend) Stats(ctx context.Context) (medadmin.Stats, error) {
	return b.c.statsOf(ctx, b.c.api, "/patient/stats")
}

// adminBackend binds admins.Backend to the legacy admin API root.
type adminBackend struct{ c *Client }

var _ admins.Backend = (*adminBackend)(nil)

// Admins returns the admins.Backend bound to this client.
func (c *Client) Admins() admins.Backend { return &adminBackend{c: c} }

func (b *adminBackend) List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[medadmin.User], error) {
	return listOf[medadmin.User](ctx, b.c, b.c.adminAPI, "/admin/list", opts)
}

func (b *adminBackend) Get(ctx context.Context, id string) (*medadmin.User, error) {
	return getOf[medadmin.User](ctx, b.c, b.c.adminAPI, "/admin/get", id)
}

func (b *adminBackend) Create(ctx context.Context, params medadmin.AdminCreateParams) (*medadmin.User, error) {
	return createOf[medadmin.User](ctx, b.c, b.c.adminAPI, "/admin/create", params)
}

func (b *adminBackend) Update(ctx context.Context, id string, params medadmin.AdminUpdateParams) (*medadmin.User, error) {
	return updateOf[medadmin.User](ctx, b.c, b.c.adminAPI, "/admin/update", id, params)
}

func (b *adminBackend) Delete(ctx context.Context, id string) error {
	return b.c.deleteByID(ctx, b.c.adminAPI, "/admin/delete", id)
}

func (b *adminBackend) SetActive(ctx context.Context, id string, active bool) error {
	return b.c.setActive(ctx, b.c.adminAPI, "/admin/status", id, active)
}
