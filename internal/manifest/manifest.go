// Package manifest reads the list of identities to seed from a YAML document
// kept on local disk or in an object store.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barnbook/barnbook-seed/internal/model"
)

const remoteScheme = "s3://"

// ErrInvalid is returned for manifests that cannot be turned into seeds.
var ErrInvalid = errors.New("invalid seed manifest")

// Opener returns a reader for the named bucket.
type Opener func(ctx context.Context, bucket string) (model.ObjectReader, error)

type document struct {
	Identities []entry `yaml:"identities"`
}

type entry struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	PasswordEnv string `yaml:"password_env"`
	DisplayName string `yaml:"display_name"`
}

// Loader resolves manifest locations into seed identities.
type Loader struct {
	open      Opener
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader. open may be nil when only local manifests are used.
func NewLoader(open Opener) *Loader {
	return &Loader{
		open:      open,
		lookupEnv: os.LookupEnv,
	}
}

// Load reads the manifest at location, either a file path or s3://bucket/key.
func (l *Loader) Load(ctx context.Context, location string) ([]model.SeedIdentity, error) {
	rc, err := l.openLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	seeds, err := l.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", location, err)
	}

	return seeds, nil
}

// Parse decodes a manifest document and resolves credentials.
func (l *Loader) Parse(r io.Reader) ([]model.SeedIdentity, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(doc.Identities) == 0 {
		return nil, fmt.Errorf("%w: no identities listed", ErrInvalid)
	}

	seen := make(map[string]struct{}, len(doc.Identities))
	seeds := make([]model.SeedIdentity, 0, len(doc.Identities))
	for i, e := range doc.Identities {
		if e.Email == "" {
			return nil, fmt.Errorf("%w: identity %d has no email", ErrInvalid, i)
		}
		if _, dup := seen[e.Email]; dup {
			return nil, fmt.Errorf("%w: email %s listed twice", ErrInvalid, e.Email)
		}
		seen[e.Email] = struct{}{}

		credential, err := l.credential(e)
		if err != nil {
			return nil, fmt.Errorf("%w: identity %s: %w", ErrInvalid, e.Email, err)
		}

		seeds = append(seeds, model.SeedIdentity{
			Email:       e.Email,
			Credential:  credential,
			DisplayName: e.DisplayName,
		})
	}

	return seeds, nil
}

func (l *Loader) credential(e entry) (string, error) {
	switch {
	case e.Password != "" && e.PasswordEnv != "":
		return "", errors.New("password and password_env are mutually exclusive")
	case e.PasswordEnv != "":
		v, ok := l.lookupEnv(e.PasswordEnv)
		if !ok || v == "" {
			return "", fmt.Errorf("environment variable %s is not set", e.PasswordEnv)
		}
		return v, nil
	case e.Password != "":
		return e.Password, nil
	default:
		return "", errors.New("no password or password_env")
	}
}

func (l *Loader) openLocation(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, remoteScheme) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open manifest: %w", err)
		}
		return f, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, remoteScheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: location %q must look like s3://bucket/key", ErrInvalid, location)
	}
	if l.open == nil {
		return nil, fmt.Errorf("no object store configured for %s", location)
	}

	store, err := l.open(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucket, err)
	}

	exists, err := store.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("manifest %s: %w", location, model.ErrNotFound)
	}

	return store.Download(ctx, key)
}
