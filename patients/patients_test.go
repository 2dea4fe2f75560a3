package patients

import (
	"context"
	"testing"

	medadmin "github.com/carebase/medadmin-go"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	created *medadmin.PatientCreateParams
}

func (m *mockBackend) List(context.Context, medadmin.ListOptions) (medadmin.Page[medadmin.Patient], error) {
	return medadmin.Page[medadmin.Patient]{Page: 1, TotalPages: 1}, nil
}

func (m *mockBackend) Get(context.Context, string) (*medadmin.Patient, error) {
	return &medadmin.Patient{ID: "p1"}, nil
}

func (m *mockBackend) Create(_ context.Context, params medadmin.PatientCreateParams) (*medadmin.Patient, error) {
	m.created = &params
	return &medadmin.Patient{ID: "p1", Name: params.Name}, nil
}

func (m *mockBackend) Update(_ context.Context, id string, params medadmin.PatientUpdateParams) (*medadmin.Patient, error) {
	return &medadmin.Patient{ID: id, Name: params.Name}, nil
}

func (m *mockBackend) Delete(context.Context, string) error          { return nil }
func (m *mockBackend) SetActive(context.Context, string, bool) error { return nil }
func (m *mockBackend) Stats(context.Context) (medadmin.Stats, error) { return medadmin.Stats{}, nil }

func TestCreate_OnlyNameRequired(t *testing.T) {
	backend := &mockBackend{}
	svc := New(backend)

	if _, err := svc.Create(context.Background(), medadmin.PatientCreateParams{}); err == nil {
		t.Fatal("missing name should fail")
	}

	// Patients are records, not accounts: no email or password needed.
	p, err := svc.Create(context.Background(), medadmin.PatientCreateParams{Name: "Jordan"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Jordan" {
		t.Errorf("name = %q", p.Name)
	}
}

func TestCreate_CarriesCareChain(t *testing.T) {
	backend := &mockBackend{}
	svc := New(backend)

	_, err := svc.Create(context.Background(), medadmin.PatientCreateParams{
		Name: "Jordan", DoctorID: "d1", ClinicID: "c1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if backend.created.DoctorID != "d1" || backend.created.ClinicID != "c1" {
		t.Errorf("created = %+v", backend.created)
	}
}

func TestOperations_EmptyID(t *testing.T) {
	svc := New(&mockBackend{})
	ctx := context.Background()

	if _, err := svc.Get(ctx, ""); err == nil {
		t.Error("Get with empty id should fail")
	}
	if _, err := svc.Update(ctx, "", medadmin.PatientUpdateParams{Name: "X"}); err == nil {
		t.Error("Update with empty id should fail")
	}
	if err := svc.Delete(ctx, ""); err == nil {
		t.Error("Delete with empty id should fail")
	}
	if err := svc.SetActive(ctx, "", true); err == nil {
		t.Error("SetActive with empty id should fail")
	}
}
