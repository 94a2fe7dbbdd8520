package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnbook/barnbook-seed/internal/config"
	"github.com/barnbook/barnbook-seed/internal/model"
)

func TestLoadSeeds_Inline(t *testing.T) {
	c := &config.Config{Seed: config.Seed{
		Email:       "rider@example.test",
		Password:    "secret123",
		DisplayName: "Test Rider",
	}}

	seeds, err := loadSeeds(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, []model.SeedIdentity{{Email: "rider@example.test", Credential: "secret123", DisplayName: "Test Rider"}}, seeds)
}

func TestLoadSeeds_Manifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identities.yaml")
	doc := "identities:\n  - email: rider@example.test\n    password: secret123\n    display_name: Test Rider\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c := &config.Config{Seed: config.Seed{Email: "ignored@example.test", Manifest: path}}

	seeds, err := loadSeeds(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, "rider@example.test", seeds[0].Email)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Build version: N/A")
}
