package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Manager stores the GeoServer credential age-encrypted on disk. It
// implements config.CredentialSource: the connection cache consults it
// when GEOSERVER_PASSWORD is unset.
type Manager struct {
	path      string
	encryptor *AgeEncryptor
}

// NewManager creates a Manager persisting to path.
func NewManager(path string, enc *AgeEncryptor) *Manager {
	return &Manager{path: path, encryptor: enc}
}

// SetPassword encrypts and persists the credential.
func (m *Manager) SetPassword(plaintext string) error {
	encrypted, err := m.encryptor.Encrypt([]byte(plaintext))
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, encrypted, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Missing file is not an error.
func (m *Manager) Clear() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}

// Password decrypts and returns the stored credential. Returns false
// when no credential is stored or it cannot be decrypted; a corrupt or
// foreign-key blob is logged and treated as absent rather than fatal.
func (m *Manager) Password() (string, bool) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", false
	}

	plaintext, err := m.encryptor.Decrypt(data)
	if err != nil {
		slog.Warn("stored credential could not be decrypted", "path", m.path, "error", err)
		return "", false
	}
	return strings.TrimRight(string(plaintext), "\n"), true
}
