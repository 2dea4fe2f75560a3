package medadmin

import (
	"encoding/json"
	"testing"
)

func TestRef_UnmarshalJSON_BareID(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`"abc123"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != "abc123" || r.Name != "" {
		t.Errorf("got %+v, want ID=abc123 and empty name", r)
	}
}

func TestRef_UnmarshalJSON_ExpandedObject(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`{"_id":"abc123","name":"General Hospital"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != "abc123" || r.Name != "General Hospital" {
		t.Errorf("got %+v", r)
	}
}

func TestRef_MarshalJSON_EmitsBareID(t *testing.T) {
	out, err := json.Marshal(Ref{ID: "abc123", Name: "ignored"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"abc123"` {
		t.Errorf("got %s, want bare id string", out)
	}
}

func TestClinic_UnmarshalJSON_BothHospitalShapes(t *testing.T) {
	var bare, expanded Clinic
	if err := json.Unmarshal([]byte(`{"_id":"c1","name":"East","hospital":"h1"}`), &bare); err != nil {
		t.Fatalf("bare: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"_id":"c1","name":"East","hospital":{"_id":"h1","name":"General"}}`), &expanded); err != nil {
		t.Fatalf("expanded: %v", err)
	}
	if bare.Hospital.ID != "h1" || expanded.Hospital.ID != "h1" {
		t.Errorf("hospital refs: bare=%+v expanded=%+v", bare.Hospital, expanded.Hospital)
	}
	if expanded.Hospital.Name != "General" {
		t.Errorf("expanded name = %q", expanded.Hospital.Name)
	}
}

func TestPage_HasNextHasPrev(t *testing.T) {
	// 47 records at 10 per page means 5 pages.
	p := Page[Hospital]{Page: 1, TotalPages: 5, TotalItems: 47, PageSize: 10}
	if !p.HasNext() || p.HasPrev() {
		t.Errorf("page 1 of 5: HasNext=%v HasPrev=%v", p.HasNext(), p.HasPrev())
	}
	p.Page = 5
	if p.HasNext() || !p.HasPrev() {
		t.Errorf("page 5 of 5: HasNext=%v HasPrev=%v", p.HasNext(), p.HasPrev())
	}
	empty := Page[Hospital]{Page: 1, TotalPages: 1}
	if empty.HasNext() || empty.HasPrev() {
		t.Error("single page should have no neighbors")
	}
}

func TestUpdateParams_BlankPasswordOmitted(t *testing.T) {
	out, err := json.Marshal(HospitalUpdateParams{Name: "General", Email: "gh@example.com"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := m["password"]; present {
		t.Error("blank password must be omitted from the payload")
	}

	out, _ = json.Marshal(HospitalUpdateParams{Name: "General", Email: "gh@example.com", Password: "s3cret"})
	_ = json.Unmarshal(out, &m)
	if m["password"] != "s3cret" {
		t.Errorf("non-blank password should be carried, got %v", m["password"])
	}
}
