package config

import (
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

// KeyringService is the service name passwords are stored under.
const KeyringService = "tablepeek"

// StorePassword saves the connection's password in the OS keyring.
func StorePassword(conn Connection) error {
	if err := keyring.Set(KeyringService, conn.Name, conn.Password); err != nil {
		return errors.Wrapf(err, "store password for %q", conn.Name)
	}
	return nil
}

// ResolvePassword fills in the password of a keyring-backed connection.
// Connections with an inline password or without Keyring are returned as is.
func ResolvePassword(conn Connection) (Connection, error) {
	if !conn.Keyring || conn.Password != "" {
		return conn, nil
	}

	secret, err := keyring.Get(KeyringService, conn.Name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return conn, errors.Errorf("no password in keyring for %q", conn.Name)
		}
		return conn, errors.Wrapf(err, "read password for %q", conn.Name)
	}

	conn.Password = secret
	return conn, nil
}
