// Package manifest records which sources produced which tests, so unchanged sources can be skipped.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"gopkg.in/yaml.v3"
)

// Filename is the default manifest name, stored in the test root
const Filename = ".junitgen.yaml"

var key = []byte("junitgen-manifest-highwayhash-32")

// Hash returns the hex encoded 64-bit highwayhash of data
func Hash(data []byte) (string, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return "", err
	}
	if _, err = hash.Write(data); err != nil {
		return "", err
	}
	return strconv.FormatUint(hash.Sum64(), 16), nil
}

// Entry describes the last generation for one source file
type Entry struct {
	Hash        string `yaml:"hash"`
	Output      string `yaml:"output"`
	Placeholder bool   `yaml:"placeholder,omitempty"`
}

// Manifest maps source paths, relative to the source root, to their last generation
type Manifest struct {
	Entries map[string]*Entry `yaml:"entries"`
	URL     string            `yaml:"-"`
	fs      afs.Service
	changed bool
}

// Load reads the manifest at URL, a missing manifest yields an empty one
func Load(ctx context.Context, fs afs.Service, URL string) (*Manifest, error) {
	ret := &Manifest{URL: URL, fs: fs, Entries: map[string]*Entry{}}
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check manifest %v: %w", URL, err)
	}
	if !exists {
		return ret, nil
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %v: %w", URL, err)
	}
	if ret.Entries == nil {
		ret.Entries = map[string]*Entry{}
	}
	return ret, nil
}

// Unchanged reports whether source was last generated from content with hash.
// Placeholder generations never count as unchanged.
func (m *Manifest) Unchanged(source, hash string) bool {
	entry, ok := m.Entries[source]
	return ok && !entry.Placeholder && entry.Hash == hash
}

// Record stores the outcome of a generation
func (m *Manifest) Record(source string, entry *Entry) {
	m.Entries[source] = entry
	m.changed = true
}

// Save writes the manifest when it was modified
func (m *Manifest) Save(ctx context.Context) error {
	if !m.changed {
		return nil
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	if err = m.fs.Upload(ctx, m.URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write manifest %v: %w", m.URL, err)
	}
	m.changed = false
	return nil
}
