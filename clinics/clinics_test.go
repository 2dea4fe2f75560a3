package clinics

import (
	"context"
	"testing"

	medadmin "github.com/carebase/medadmin-go"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	created *medadmin.ClinicCreateParams
}

func (m *mockBackend) List(context.Context, medadmin.ListOptions) (medadmin.Page[medadmin.Clinic], error) {
	return medadmin.Page[medadmin.Clinic]{Page: 1, TotalPages: 1}, nil
}

func (m *mockBackend) Get(context.Context, string) (*medadmin.Clinic, error) {
	return &medadmin.Clinic{ID: "c1"}, nil
}

func (m *mockBackend) Create(_ context.Context, params medadmin.ClinicCreateParams) (*medadmin.Clinic, error) {
	m.created = &params
	return &medadmin.Clinic{ID: "c1", Name: params.Name}, nil
}

func (m *mockBackend) Update(_ context.Context, id string, params medadmin.ClinicUpdateParams) (*medadmin.Clinic, error) {
	return &medadmin.Clinic{ID: id, Name: params.Name}, nil
}

func (m *mockBackend) Delete(context.Context, string) error          { return nil }
func (m *mockBackend) SetActive(context.Context, string, bool) error { return nil }
func (m *mockBackend) Stats(context.Context) (medadmin.Stats, error) { return medadmin.Stats{}, nil }

func TestCreate_SuperAdminRequiresHospital(t *testing.T) {
	backend := &mockBackend{}
	svc := New(backend, medadmin.RoleSuperAdmin)

	_, err := svc.Create(context.Background(), medadmin.ClinicCreateParams{
		Name: "East", Email: "e@example.com", Password: "pw",
	})
	if err == nil {
		t.Fatal("super admin must name a parent hospital")
	}
	if backend.created != nil {
		t.Error("validation failure must not reach the backend")
	}

	_, err = svc.Create(context.Background(), medadmin.ClinicCreateParams{
		Name: "East", Email: "e@example.com", Password: "pw", HospitalID: "h1",
	})
	if err != nil {
		t.Fatalf("create with hospital: %v", err)
	}
}

func TestCreate_HospitalActorOmitsParent(t *testing.T) {
	backend := &mockBackend{}
	svc := New(backend, medadmin.RoleHospital)

	// Hospital actors create under themselves; the server resolves the
	// parent from the token.
	_, err := svc.Create(context.Background(), medadmin.ClinicCreateParams{
		Name: "East", Email: "e@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("hospital actor create: %v", err)
	}
	if backend.created == nil || backend.created.HospitalID != "" {
		t.Errorf("created = %+v", backend.created)
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := New(&mockBackend{}, medadmin.RoleHospital)
	if _, err := svc.Create(context.Background(), medadmin.ClinicCreateParams{Email: "e@example.com", Password: "pw"}); err == nil {
		t.Error("missing name should fail")
	}
	if _, err := svc.Create(context.Background(), medadmin.ClinicCreateParams{Name: "East", Password: "pw"}); err == nil {
		t.Error("missing email should fail")
	}
	if _, err := svc.Create(context.Background(), medadmin.ClinicCreateParams{Name: "East", Email: "e@example.com"}); err == nil {
		t.Error("missing password should fail")
	}
}

func TestUpdate_EmptyID(t *testing.T) {
	svc := New(&mockBackend{}, medadmin.RoleSuperAdmin)
	if _, err := svc.Update(context.Background(), "", medadmin.ClinicUpdateParams{Name: "X"}); err == nil {
		t.Fatal("empty id should fail")
	}
}
