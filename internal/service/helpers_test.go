package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"reddybook/config"
	"reddybook/internal/repository"
	"reddybook/internal/session"
	"reddybook/internal/testutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testJWT = &config.JWTConfig{AccessSecret: "test-secret", AccessExpiry: time.Hour, Issuer: "reddybook"}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcome(to, _ string) error {
	m.sent = append(m.sent, to)
	return m.err
}

func newIdentityService(t *testing.T, db *gorm.DB) (*IdentityService, *recordingMailer) {
	t.Helper()
	mailer := &recordingMailer{}
	return NewIdentityService(testJWT, repository.NewIdentityRepository(db), session.NewMemoryStore(), mailer, zap.NewNop()), mailer
}

func newTestDB(t *testing.T) *gorm.DB {
	return testutil.NewDB(t)
}

// memBlobs is an in-memory blob store; failing makes every upload error.
type memBlobs struct {
	files   map[string][]byte
	failing bool
}

func newMemBlobs() *memBlobs { return &memBlobs{files: map[string][]byte{}} }

func (b *memBlobs) Upload(_ context.Context, namespace, path string, r io.Reader, _ string) error {
	if b.failing {
		return errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.files[namespace+"/"+path] = data
	return nil
}

func (b *memBlobs) PublicURL(namespace, path string) string {
	return "https://cdn.test/" + namespace + "/" + path
}
