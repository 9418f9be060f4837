package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestHash(t *testing.T) {
	first, err := Hash([]byte("class A {}"))
	require.NoError(t, err)
	second, err := Hash([]byte("class A {}"))
	require.NoError(t, err)
	other, err := Hash([]byte("class B {}"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.NotEmpty(t, first)
}

func TestManifest(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	location := filepath.Join(t.TempDir(), Filename)

	aManifest, err := Load(ctx, fs, location)
	require.NoError(t, err)
	assert.Empty(t, aManifest.Entries)
	require.NoError(t, aManifest.Save(ctx))
	_, err = os.Stat(location)
	assert.True(t, os.IsNotExist(err), "unmodified manifest is not written")

	aManifest.Record("com/example/Pet.java", &Entry{Hash: "abc", Output: "com/example/PetTest.java"})
	aManifest.Record("com/example/Owner.java", &Entry{Hash: "def", Output: "com/example/OwnerTest.java", Placeholder: true})
	require.NoError(t, aManifest.Save(ctx))

	loaded, err := Load(ctx, fs, location)
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 2)

	tests := []struct {
		name     string
		source   string
		hash     string
		expected bool
	}{
		{name: "same hash", source: "com/example/Pet.java", hash: "abc", expected: true},
		{name: "modified source", source: "com/example/Pet.java", hash: "xyz"},
		{name: "placeholder", source: "com/example/Owner.java", hash: "def"},
		{name: "unknown source", source: "com/example/Vet.java", hash: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, loaded.Unchanged(tt.source, tt.hash))
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	location := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(location, []byte("entries: ["), 0o644))
	_, err := Load(context.Background(), afs.New(), location)
	assert.Error(t, err)
}
