package audit

import (
	"encoding/json"
	"testing"
)

func TestRedact_PasswordArguments(t *testing.T) {
	params := json.RawMessage(`{
		"workspace_name": "demo",
		"pg_host": "db.internal",
		"pg_password": "hunter2"
	}`)

	out := Redact(params)

	var obj map[string]any
	if err := json.Unmarshal(out, &obj); err != nil {
		t.Fatalf("unmarshal redacted: %v", err)
	}
	if obj["pg_password"] != "[REDACTED]" {
		t.Errorf("pg_password = %v, want [REDACTED]", obj["pg_password"])
	}
	if obj["workspace_name"] != "demo" {
		t.Errorf("workspace_name = %v, want demo untouched", obj["workspace_name"])
	}
	if obj["pg_host"] != "db.internal" {
		t.Errorf("pg_host = %v, want untouched", obj["pg_host"])
	}
}

func TestRedact_NestedObjects(t *testing.T) {
	params := json.RawMessage(`{
		"connection_parameters": {"host": "db", "passwd_key": "x", "password": "y"}
	}`)

	out := Redact(params)

	var obj map[string]map[string]any
	if err := json.Unmarshal(out, &obj); err != nil {
		t.Fatalf("unmarshal redacted: %v", err)
	}
	inner := obj["connection_parameters"]
	if inner["password"] != "[REDACTED]" {
		t.Errorf("nested password = %v, want [REDACTED]", inner["password"])
	}
	if inner["host"] != "db" {
		t.Errorf("nested host = %v, want untouched", inner["host"])
	}
}

func TestRedact_NonObjectPassthrough(t *testing.T) {
	for _, raw := range []string{"", `"just a string"`, `[1,2,3]`, `{broken`} {
		in := json.RawMessage(raw)
		out := Redact(in)
		if string(out) != raw {
			t.Errorf("Redact(%q) = %q, want passthrough", raw, out)
		}
	}
}

func TestRedact_CleanParamsUnchanged(t *testing.T) {
	in := json.RawMessage(`{"workspace_name":"demo","isolated":false}`)
	out := Redact(in)
	if string(out) != string(in) {
		t.Errorf("clean params modified: %s", out)
	}
}
