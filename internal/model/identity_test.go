package model

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedIdentity_CredentialRedacted(t *testing.T) {
	seed := SeedIdentity{Email: "rider@example.test", Credential: "secret123", DisplayName: "Test Rider"}

	assert.NotContains(t, seed.String(), "secret123")
	assert.NotContains(t, fmt.Sprintf("%v", seed), "secret123")

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("seeding", "seed", seed)
	assert.NotContains(t, buf.String(), "secret123")
	assert.Contains(t, buf.String(), "seed.email=rider@example.test")
}
