package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestEncryptor(t *testing.T) *AgeEncryptor {
	t.Helper()
	enc, err := GenerateKeyFile(filepath.Join(t.TempDir(), "key.txt"))
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return enc
}

func TestAgeEncryptor_RoundTrip(t *testing.T) {
	enc := newTestEncryptor(t)

	plaintext := []byte("geoserver-admin-password")
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(ciphertext, plaintext) {
		t.Fatal("ciphertext contains plaintext")
	}

	got, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("decrypt = %q, want %q", got, plaintext)
	}
}

func TestNewAgeEncryptor_LoadsGeneratedKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "key.txt")
	first, err := GenerateKeyFile(keyPath)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	second, err := NewAgeEncryptor(keyPath)
	if err != nil {
		t.Fatalf("load key: %v", err)
	}

	ciphertext, err := first.Encrypt([]byte("pw"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	got, err := second.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("decrypt with reloaded key: %v", err)
	}
	if string(got) != "pw" {
		t.Errorf("decrypt = %q, want pw", got)
	}
}

func TestGenerateKeyFile_RefusesOverwrite(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "key.txt")
	if _, err := GenerateKeyFile(keyPath); err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if _, err := GenerateKeyFile(keyPath); err == nil {
		t.Fatal("expected error generating over an existing key file")
	}
}

func TestManager_PasswordLifecycle(t *testing.T) {
	enc := newTestEncryptor(t)
	path := filepath.Join(t.TempDir(), "credential.age")
	m := NewManager(path, enc)

	if _, ok := m.Password(); ok {
		t.Fatal("expected no password before SetPassword")
	}

	if err := m.SetPassword("s3cret"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	pw, ok := m.Password()
	if !ok || pw != "s3cret" {
		t.Fatalf("Password() = %q, %v; want s3cret, true", pw, ok)
	}

	// Stored blob must not leak the plaintext.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read credential file: %v", err)
	}
	if bytes.Contains(raw, []byte("s3cret")) {
		t.Error("credential file contains plaintext")
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := m.Password(); ok {
		t.Error("expected no password after Clear")
	}
	if err := m.Clear(); err != nil {
		t.Errorf("second clear should be a no-op, got %v", err)
	}
}

func TestManager_CorruptBlobTreatedAsAbsent(t *testing.T) {
	enc := newTestEncryptor(t)
	path := filepath.Join(t.TempDir(), "credential.age")
	if err := os.WriteFile(path, []byte("not an age file"), 0o600); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path, enc)
	if _, ok := m.Password(); ok {
		t.Error("corrupt blob should read as absent")
	}
}
