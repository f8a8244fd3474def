// Package session persists the staff session between runs. The upstream API
// issues and verifies the bearer token; this store only keeps it (plus who it
// belongs to) so the gateway survives restarts without re-login. It replaces
// the hidden browser-storage global the old dashboard leaned on with an
// explicit object threaded through the modules.
package session

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	// cgo-free sqlite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

var (
	ErrNoSession = errors.New("session: not logged in")
	ErrExpired   = errors.New("session: token expired")
)

// Session is the single persisted row: one gateway process serves one staff
// login at a time.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Token     string    `json:"-"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	db         *gorm.DB
	defaultTTL time.Duration
}

// Open creates the store on a SQLite file (":memory:" in tests) and migrates
// the session table.
func Open(dsn string, defaultTTL time.Duration) (*Store, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, err
	}
	return &Store{db: db, defaultTTL: defaultTTL}, nil
}

// Save replaces any previous session with the new login. Expiry comes from
// the token's exp claim; tokens without one fall back to the configured TTL.
func (s *Store) Save(token, email, fullName, role string) (*Session, error) {
	sess := &Session{
		Token:     token,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		ExpiresAt: s.tokenExpiry(token),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Session{}).Error; err != nil {
			return err
		}
		return tx.Create(sess).Error
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Current returns the persisted session, or ErrNoSession / ErrExpired.
func (s *Store) Current() (*Session, error) {
	var sess Session
	err := s.db.Order("created_at DESC").First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		return nil, ErrExpired
	}
	return &sess, nil
}

// Clear logs out.
func (s *Store) Clear() error {
	return s.db.Where("1 = 1").Delete(&Session{}).Error
}

// tokenExpiry reads the exp claim without verifying the signature: the
// upstream API is the verifier, we only need to know when to re-login.
func (s *Store) tokenExpiry(token string) time.Time {
	fallback := time.Now().Add(s.defaultTTL)
	if strings.Count(token, ".") != 2 {
		return fallback
	}

	parser := jwtlib.NewParser()
	claims := jwtlib.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}
