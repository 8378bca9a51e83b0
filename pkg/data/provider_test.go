package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedProviderServesSecondLoadFromCache(t *testing.T) {
	path := writeTempFile(t, "snapshots.ndjson",
		`{"symbol": "BTCUSDT", "last_price": "64000"}`+"\n")

	p := NewCachedProvider(NewJSONProvider())

	first, err := p.LoadSnapshots(path)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, p.GetCacheSize())

	// Rewrite the file; a cached provider must keep serving the old batch
	require.NoError(t, os.WriteFile(path, []byte(`{"symbol": "ETHUSDT", "last_price": "3200"}`+"\n"), 0644))

	second, err := p.LoadSnapshots(path)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "BTCUSDT", second[0].Symbol)

	p.ClearCache()
	assert.Equal(t, 0, p.GetCacheSize())

	third, err := p.LoadSnapshots(path)
	require.NoError(t, err)
	assert.Equal(t, "ETHUSDT", third[0].Symbol)
}

func TestMemoryCacheCopiesBatches(t *testing.T) {
	cache := NewMemoryCache()
	batch := GenerateSampleSnapshots("BTCUSDT", 2)
	cache.Set("key", batch)

	got, ok := cache.Get("key")
	require.True(t, ok)
	require.Len(t, got, 2)

	got[0] = nil
	fresh, ok := cache.Get("key")
	require.True(t, ok)
	assert.NotNil(t, fresh[0])
}

func TestFileLocatorFindsSnapshotFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "snapshots"), 0755))
	nested := filepath.Join(root, "snapshots", "ETHUSDT.ndjson")
	require.NoError(t, os.WriteFile(nested, []byte("{}\n"), 0644))
	direct := filepath.Join(root, "BTCUSDT.json")
	require.NoError(t, os.WriteFile(direct, []byte("{}"), 0644))

	locator := NewDefaultFileLocator()

	assert.Equal(t, direct, locator.FindSnapshotFile(root, "btcusdt"))
	assert.Equal(t, nested, locator.FindSnapshotFile(root, "ETHUSDT"))
	assert.Equal(t, "", locator.FindSnapshotFile(root, "DOGEUSDT"))
}

func TestSnapshotFilter(t *testing.T) {
	snaps := append(GenerateSampleSnapshots("BTCUSDT", 2), GenerateSampleSnapshots("ETHUSDT", 3)...)
	filter := NewDefaultSnapshotFilter()

	btc := filter.FilterBySymbol(snaps, "btcusdt")
	require.Len(t, btc, 2)

	all := filter.FilterBySymbol(snaps, "")
	assert.Len(t, all, 5)

	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, filter.Symbols(snaps))
}

func TestGeneratedSamplesPassValidation(t *testing.T) {
	p := NewJSONProvider()
	for i, snap := range GenerateSampleSnapshots("BTCUSDT", 9) {
		assert.NoError(t, p.ValidateSnapshot(snap), "sample %d", i)
	}
}

func TestSnapshotManagerWiring(t *testing.T) {
	sm := NewSnapshotManager()

	assert.Equal(t, "Cached JSON Provider", sm.GetProvider().GetName())
	assert.NotNil(t, sm.GetFilter())
	assert.NotNil(t, sm.GetLocator())

	path := writeTempFile(t, "snapshot.json", sampleSnapshotJSON)
	snap, err := sm.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", snap.Symbol)
}
