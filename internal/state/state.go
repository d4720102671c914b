// Package state persists the client's session remnants between runs:
// the cached access token and the last authenticated user snapshot.
package state

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/appkey-demo/appkey-go/internal/models"
	bolt "go.etcd.io/bbolt"
)

const (
	// stateDirPerm is the permission mode for the state directory.
	stateDirPerm = fs.FileMode(0o700)

	// stateFilePerm is the permission mode for the state database file.
	stateFilePerm = fs.FileMode(0o600)

	// stateOpenTimeout is the maximum time to wait for the bolt database lock.
	stateOpenTimeout = 5 * time.Second
)

var (
	sessionBucket = []byte("session")
	tokenKey      = []byte("access_token")
	appTokenKey   = []byte("app_token")
	userKey       = []byte("user")
)

// Store wraps a bbolt database holding the persisted session.
type Store struct {
	db *bolt.DB
}

// Load opens the state database at the given path, creating it and its
// parent directory if they do not exist.
func Load(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), stateDirPerm); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := bolt.Open(path, stateFilePerm, &bolt.Options{Timeout: stateOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)

		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing state db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte) []byte {
	var out []byte

	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get(key)
		if v != nil {
			out = append([]byte(nil), v...)
		}

		return nil
	})

	return out
}

func (s *Store) put(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(key, value)
	})
}

// Token returns the cached access token, or empty string.
func (s *Store) Token() string {
	return string(s.get(tokenKey))
}

// SetToken persists the access token.
func (s *Store) SetToken(token string) error {
	return s.put(tokenKey, []byte(token))
}

// AppToken returns the cached app-token override, or empty string when
// the configured token should be used.
func (s *Store) AppToken() string {
	return string(s.get(appTokenKey))
}

// SetAppToken persists an app-token override.
func (s *Store) SetAppToken(token string) error {
	return s.put(appTokenKey, []byte(token))
}

// User returns the last authenticated user snapshot, or nil.
func (s *Store) User() (*models.AppUser, error) {
	v := s.get(userKey)
	if v == nil {
		return nil, nil
	}

	u := &models.AppUser{}
	if err := json.Unmarshal(v, u); err != nil {
		return nil, fmt.Errorf("decoding user snapshot: %w", err)
	}

	return u, nil
}

// SetUser persists the authenticated user snapshot.
func (s *Store) SetUser(u *models.AppUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user snapshot: %w", err)
	}

	return s.put(userKey, data)
}

// Clear removes the persisted session. Called on logout and account
// deletion. The app-token override survives: it identifies the tenant,
// not the user.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if err := b.Delete(tokenKey); err != nil {
			return err
		}

		return b.Delete(userKey)
	})
}
