package tools

import (
	"reflect"
	"testing"
)

func TestNormalize_WithStatus(t *testing.T) {
	payload := Normalize(WithStatus(map[string]any{"name": "demo"}, 201), "workspace")
	want := map[string]any{
		"workspace":   map[string]any{"name": "demo"},
		"status_code": 201,
	}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload = %v", payload)
	}
}

func TestNormalize_Bare(t *testing.T) {
	payload := Normalize(Bare([]string{"a", "b"}), "values")
	if _, ok := payload["status_code"]; ok {
		t.Error("bare result must not carry status_code")
	}
	if !reflect.DeepEqual(payload["values"], []string{"a", "b"}) {
		t.Errorf("values = %v", payload["values"])
	}
}

func TestNormalize_EmptyFieldIsFlatPayload(t *testing.T) {
	content := map[string]any{"url": "http://x", "status": "configured"}
	payload := Normalize(Bare(content), "")
	if !reflect.DeepEqual(payload, content) {
		t.Errorf("payload = %v", payload)
	}
}

func TestStatusCode(t *testing.T) {
	if _, ok := Bare("x").StatusCode(); ok {
		t.Error("bare result reports a status")
	}
	status, ok := WithStatus("x", 404).StatusCode()
	if !ok || status != 404 {
		t.Errorf("status = %d, %t", status, ok)
	}
}
