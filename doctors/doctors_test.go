package doctors

import (
	"context"
	"errors"
	"testing"

	medadmin "github.com/carebase/medadmin-go"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	created    *medadmin.DoctorCreateParams
	listErr    error
	lastActive bool
}

func (m *mockBackend) List(context.Context, medadmin.ListOptions) (medadmin.Page[medadmin.Doctor], error) {
	if m.listErr != nil {
		return medadmin.Page[medadmin.Doctor]{}, m.listErr
	}
	return medadmin.Page[medadmin.Doctor]{Page: 1, TotalPages: 1}, nil
}

func (m *mockBackend) Get(context.Context, string) (*medadmin.Doctor, error) {
	return &medadmin.Doctor{ID: "d1"}, nil
}

func (m *mockBackend) Create(_ context.Context, params medadmin.DoctorCreateParams) (*medadmin.Doctor, error) {
	m.created = &params
	return &medadmin.Doctor{ID: "d1", Name: params.Name}, nil
}

func (m *mockBackend) Update(_ context.Context, id string, params medadmin.DoctorUpdateParams) (*medadmin.Doctor, error) {
	return &medadmin.Doctor{ID: id, Name: params.Name}, nil
}

func (m *mockBackend) Delete(context.Context, string) error { return nil }

func (m *mockBackend) SetActive(_ context.Context, _ string, active bool) error {
	m.lastActive = active
	return nil
}

func (m *mockBackend) Stats(context.Context) (medadmin.Stats, error) {
	return medadmin.Stats{Total: 7, Active: 5, Inactive: 2}, nil
}

func TestCreate_RequiredFields(t *testing.T) {
	backend := &mockBackend{}
	svc := New(backend)

	if _, err := svc.Create(context.Background(), medadmin.DoctorCreateParams{Email: "d@example.com", Password: "pw"}); err == nil {
		t.Error("missing name should fail")
	}
	if _, err := svc.Create(context.Background(), medadmin.DoctorCreateParams{Name: "Dr A", Password: "pw"}); err == nil {
		t.Error("missing email should fail")
	}
	if _, err := svc.Create(context.Background(), medadmin.DoctorCreateParams{Name: "Dr A", Email: "d@example.com"}); err == nil {
		t.Error("missing password should fail")
	}
	if backend.created != nil {
		t.Error("validation failure must not reach the backend")
	}

	if _, err := svc.Create(context.Background(), medadmin.DoctorCreateParams{
		Name: "Dr A", Email: "d@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("valid create: %v", err)
	}
}

func TestList_WrapsBackendError(t *testing.T) {
	apiErr := &medadmin.APIError{Status: 403, Message: "forbidden"}
	svc := New(&mockBackend{listErr: apiErr})

	_, err := svc.List(context.Background(), medadmin.ListOptions{})
	var got *medadmin.APIError
	if !errors.As(err, &got) || got.Status != 403 {
		t.Fatalf("err = %v, want wrapped APIError 403", err)
	}
}

func TestSetActive_PassesFlagThrough(t *testing.T) {
	backend := &mockBackend{}
	svc := New(backend)

	if err := svc.SetActive(context.Background(), "d1", true); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if !backend.lastActive {
		t.Error("active flag not forwarded")
	}
	if err := svc.SetActive(context.Background(), "", true); err == nil {
		t.Error("empty id should fail")
	}
}

func TestStats(t *testing.T) {
	svc := New(&mockBackend{})
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 7 || stats.Active != 5 || stats.Inactive != 2 {
		t.Errorf("stats = %+v", stats)
	}
}
