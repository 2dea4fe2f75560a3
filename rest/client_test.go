package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	medadmin "github.com/carebase/medadmin-go"
)

func envelopeBody(status int, message string, data any) []byte {
	body, _ := json.Marshal(map[string]any{
		"status":  status,
		"message": message,
		"data":    data,
	})
	return body
}

func TestPost_AttachesBearerTokenAndContentType(t *testing.T) {
	var gotAuth, gotContentType, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		_, _ = w.Write(envelopeBody(200, "ok", map[string]any{"_id": "h1", "name": "General"}))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	c.SetToken("tok-1")

	if _, err := c.Hospitals().Get(context.Background(), "h1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, every endpoint is POST", gotMethod)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestPost_NoAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(envelopeBody(200, "ok", map[string]any{"_id": "h1"}))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, _ = c.Hospitals().Get(context.Background(), "h1")

	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
}

func TestPost_SoftFailureIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP says 200, the envelope says otherwise. The envelope wins.
		_, _ = w.Write(envelopeBody(400, "Name is required", nil))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Get(context.Background(), "h1")

	var apiErr *medadmin.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Status != 400 || apiErr.Message != "Name is required" {
		t.Errorf("got %+v", apiErr)
	}
}

func TestPost_ErrorsArrayJoined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":422,"message":"Validation failed","errors":["Name is required","Email is invalid"]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Get(context.Background(), "h1")

	var apiErr *medadmin.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v", err)
	}
	if apiErr.Message != "Name is required; Email is invalid" {
		t.Errorf("message = %q, want joined errors array", apiErr.Message)
	}
}

func TestPost_HTTPFailureWithoutEnvelopeStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream error"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Get(context.Background(), "h1")

	var apiErr *medadmin.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("status should fall back to the HTTP status, got %d", apiErr.Status)
	}
}

func TestPost_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Get(context.Background(), "h1")

	if !errors.Is(err, medadmin.ErrUnreachable) {
		t.Fatalf("got %v, want ErrUnreachable", err)
	}
}

func TestPost_UnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Get(context.Background(), "h1")

	if !errors.Is(err, medadmin.ErrUnexpectedFormat) {
		t.Fatalf("got %v, want ErrUnexpectedFormat", err)
	}
}

func TestPost_MissingRequiredData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"message":"ok","data":null}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Get(context.Background(), "h1")

	if !errors.Is(err, medadmin.ErrUnexpectedFormat) {
		t.Fatalf("got %v, want ErrUnexpectedFormat", err)
	}
}

func TestList_MapsPaginationShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"data":{
			"docs":[{"_id":"h1","name":"General"},{"_id":"h2","name":"East"}],
			"totalDocs":47,"page":2,"totalPages":5,"limit":10}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	page, err := c.Hospitals().List(context.Background(), medadmin.ListOptions{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 2 || page.TotalItems != 47 || page.Page != 2 || page.TotalPages != 5 {
		t.Errorf("page = %+v", page)
	}
	if !page.HasNext() || !page.HasPrev() {
		t.Error("page 2 of 5 should have both neighbors")
	}
}

func TestList_DefaultsPageAndLimit(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"status":200,"data":{"docs":[],"totalDocs":0,"page":1,"totalPages":0,"limit":10}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	page, err := c.Hospitals().List(context.Background(), medadmin.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotBody["page"] != float64(1) || gotBody["limit"] != float64(10) {
		t.Errorf("request body = %v, want page=1 limit=10", gotBody)
	}
	if page.TotalPages != 1 {
		t.Errorf("an empty collection still reports one page, got %d", page.TotalPages)
	}
}

func TestLogin_MissingTokenIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(envelopeBody(200, "ok", map[string]any{
			"user": map[string]any{"_id": "u1", "role": "HOSPITAL"},
		}))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Auth().LoginPrimary(context.Background(), "x@example.com", "pw")

	var apiErr *medadmin.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Message != "Login failed: the server did not return a session token. Please try again." {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write(envelopeBody(200, "ok", map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"_id": "u1", "role": "HOSPITAL"},
		}))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	creds, err := c.Auth().LoginPrimary(context.Background(), "x@example.com", "pw")
	if err != nil {
		t.Fatalf("LoginPrimary: %v", err)
	}
	if creds.Token != "tok-1" || creds.User == nil || creds.User.Role != medadmin.RoleHospital {
		t.Errorf("creds = %+v", creds)
	}
}

func TestLoginSecondary_UsesAdminRoot(t *testing.T) {
	var primaryHits, adminHits int
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryHits++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"no such endpoint"}`))
	}))
	defer primary.Close()
	admin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminHits++
		if r.URL.Path != "/admin/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write(envelopeBody(200, "ok", map[string]any{
			"token": "tok-a",
			"user":  map[string]any{"_id": "u9", "role": "admin"},
		}))
	}))
	defer admin.Close()

	c := NewClient(Config{APIRoot: primary.URL, AdminAPIRoot: admin.URL})
	creds, err := c.Auth().LoginSecondary(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("LoginSecondary: %v", err)
	}
	if primaryHits != 0 || adminHits != 1 {
		t.Errorf("hits: primary=%d admin=%d", primaryHits, adminHits)
	}
	if creds.Token != "tok-a" {
		t.Errorf("creds = %+v", creds)
	}
}

func TestUpdate_WrapsParamsAndOmitsBlankPassword(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write(envelopeBody(200, "ok", map[string]any{"_id": "h1", "name": "General"}))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	_, err := c.Hospitals().Update(context.Background(), "h1", medadmin.HospitalUpdateParams{
		Name: "General", Email: "gh@example.com",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if gotBody["id"] != "h1" {
		t.Errorf("id = %v", gotBody["id"])
	}
	data, ok := gotBody["data"].(map[string]any)
	if !ok {
		t.Fatalf("data missing from payload: %v", gotBody)
	}
	if _, present := data["password"]; present {
		t.Error("blank password must not appear in the update payload")
	}
	if data["name"] != "General" {
		t.Errorf("data = %v", data)
	}
}

func TestSetActive_Payload(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"status":200,"message":"updated"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	if err := c.Hospitals().SetActive(context.Background(), "h1", false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if gotBody["id"] != "h1" || gotBody["isActive"] != false {
		t.Errorf("body = %v", gotBody)
	}
}

func TestLogout_ToleratesEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"message":"logged out"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIRoot: srv.URL})
	if err := c.Auth().Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
}

func TestAdminBackend_UsesAdminRoot(t *testing.T) {
	admin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/list" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":200,"data":{"docs":[],"totalDocs":0,"page":1,"totalPages":1,"limit":10}}`))
	}))
	defer admin.Close()
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("admin operations must not hit the primary root")
	}))
	defer primary.Close()

	c := NewClient(Config{APIRoot: primary.URL, AdminAPIRoot: admin.URL})
	if _, err := c.Admins().List(context.Background(), medadmin.ListOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}
}
