package storage

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
	"github.com/denisok6893-rgb/red-flag-checker/internal/logger"
)

type memKV struct {
	mu     sync.Mutex
	docs   map[string][]byte
	writes int
	fail   error
}

func newMemKV() *memKV { return &memKV{docs: map[string][]byte{}} }

func (k *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.docs[key]
	return v, ok, nil
}

func (k *memKV) PutMany(_ context.Context, docs map[string][]byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.fail != nil {
		return k.fail
	}
	k.writes++
	for key, v := range docs {
		k.docs[key] = v
	}
	return nil
}

func (k *memKV) writeCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.writes
}

func (k *memKV) profiles(t *testing.T) map[string]domain.Selections {
	t.Helper()
	k.mu.Lock()
	defer k.mu.Unlock()
	var out map[string]domain.Selections
	require.NoError(t, json.Unmarshal(k.docs[KeyProfiles], &out))
	return out
}

func TestProfileManager_Defaults(t *testing.T) {
	m := NewProfileManager(newMemKV(), logger.NewTestLogger(t), time.Hour)

	s := m.Snapshot()
	assert.Equal(t, DefaultProfile, s.Current)
	assert.Equal(t, DefaultDisplayName, s.DisplayName)
	assert.Equal(t, []string{DefaultProfile}, s.Names())
	assert.Empty(t, s.Selections())
}

func TestProfileManager_ProfileLifecycle(t *testing.T) {
	m := NewProfileManager(newMemKV(), logger.NewNoOpLogger(), time.Hour)

	assert.False(t, m.AddProfile("   "))
	assert.False(t, m.DeleteCurrent())

	require.True(t, m.AddProfile(" Alex "))
	m.Update("communication_honesty", domain.VeryNegative)

	s := m.Snapshot()
	assert.Equal(t, "Alex", s.Current)
	assert.Equal(t, []string{DefaultProfile, "Alex"}, s.Names())
	assert.Equal(t, domain.Selections{"communication_honesty": domain.VeryNegative}, s.Selections())

	require.NoError(t, m.Change(DefaultProfile))
	assert.Empty(t, m.Snapshot().Selections())
	assert.ErrorIs(t, m.Change("Nobody"), ErrProfileNotFound)

	require.NoError(t, m.Change("Alex"))
	m.Update("communication_honesty", "")
	assert.Empty(t, m.Snapshot().Selections())

	m.Update("trust_reliability", domain.Positive)
	m.Reset()
	assert.Empty(t, m.Snapshot().Selections())

	require.True(t, m.DeleteCurrent())
	s = m.Snapshot()
	assert.Equal(t, DefaultProfile, s.Current)
	assert.Equal(t, []string{DefaultProfile}, s.Names())
}

func TestProfileManager_SnapshotIsIsolated(t *testing.T) {
	m := NewProfileManager(newMemKV(), nil, time.Hour)
	m.Update("a", domain.Positive)

	s := m.Snapshot()
	s.Profiles[DefaultProfile]["a"] = domain.VeryNegative

	assert.Equal(t, domain.Positive, m.Snapshot().Selections()["a"])
}

func TestProfileManager_Rename(t *testing.T) {
	m := NewProfileManager(newMemKV(), nil, time.Hour)

	m.Rename("Weekend Date")

	assert.Equal(t, "Weekend Date", m.Snapshot().DisplayName)
	assert.Equal(t, DefaultProfile, m.Snapshot().Current)
}

func TestProfileManager_CustomTraits(t *testing.T) {
	m := NewProfileManager(newMemKV(), nil, time.Hour)
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }

	_, ok := m.AddCustomTrait("Communication", " ")
	assert.False(t, ok)

	ct, ok := m.AddCustomTrait("Communication", "Texting Habits")
	require.True(t, ok)
	assert.Equal(t, "Shows texting habits", ct.Negative)
	assert.Equal(t, "Doesn't show texting habits", ct.Positive)
	assert.Equal(t, 30, ct.NegativeWeight)
	assert.Equal(t, 30, ct.PositiveWeight)
	assert.True(t, ct.IsCustom)
	assert.Equal(t, int64(1700000000000), ct.CreatedAt)

	m.Update("communication_texting_habits", domain.Negative)
	assert.Len(t, m.Snapshot().CustomTraits["Communication"], 1)

	assert.False(t, m.DeleteCustomTrait("Communication", "Nope"))
	assert.True(t, m.DeleteCustomTrait("Communication", "Texting Habits"))
	s := m.Snapshot()
	assert.NotContains(t, s.CustomTraits, "Communication")
	assert.Empty(t, s.Selections())
}

func TestProfileManager_DebouncedFlushCoalesces(t *testing.T) {
	kv := newMemKV()
	m := NewProfileManager(kv, logger.NewTestLogger(t), 50*time.Millisecond)

	for i := 0; i < 10; i++ {
		m.Update("communication_honesty", domain.Levels[i%len(domain.Levels)])
	}
	assert.Equal(t, 0, kv.writeCount())

	require.Eventually(t, func() bool { return kv.writeCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, kv.writeCount())
	assert.Equal(t, domain.Levels[9%len(domain.Levels)], kv.profiles(t)[DefaultProfile]["communication_honesty"])
}

func TestProfileManager_FlushNowAndRetryOnError(t *testing.T) {
	kv := newMemKV()
	m := NewProfileManager(kv, nil, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Flush(ctx))
	assert.Equal(t, 0, kv.writeCount())

	m.AddProfile("Sam")
	kv.fail = errors.New("disk full")
	assert.Error(t, m.Flush(ctx))

	kv.fail = nil
	require.NoError(t, m.Flush(ctx))
	assert.Equal(t, 1, kv.writeCount())
	assert.Contains(t, kv.profiles(t), "Sam")
}

func TestProfileManager_LoadFallbacks(t *testing.T) {
	kv := newMemKV()
	kv.docs[KeyProfiles] = []byte("{broken")
	kv.docs[KeyCustomTraits] = []byte(`{"Trust":[{"trait":"Punctuality","negativeWeight":30,"positiveWeight":30,"isCustom":true}]}`)

	m := NewProfileManager(kv, logger.NewTestLogger(t), time.Hour)
	require.NoError(t, m.Load(context.Background()))

	s := m.Snapshot()
	assert.Equal(t, []string{DefaultProfile}, s.Names())
	require.Len(t, s.CustomTraits["Trust"], 1)
	assert.Equal(t, "Punctuality", s.CustomTraits["Trust"][0].Trait)
}

func TestProfileManager_SQLiteRoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "sub", "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.EnsureSchema())

	ctx := context.Background()
	m := NewProfileManager(store, nil, time.Hour)
	m.AddProfile("Jordan")
	m.Update("trust_faithfulness", domain.VeryNegative)
	m.AddCustomTrait("Lifestyle", "Gym Obsession")
	require.NoError(t, m.Flush(ctx))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyCustomTraits, KeyProfiles}, keys)

	reloaded := NewProfileManager(store, nil, time.Hour)
	require.NoError(t, reloaded.Load(ctx))
	s := reloaded.Snapshot()
	assert.Equal(t, []string{DefaultProfile, "Jordan"}, s.Names())
	assert.Equal(t, domain.VeryNegative, s.Profiles["Jordan"]["trust_faithfulness"])
	assert.Equal(t, "Gym Obsession", s.CustomTraits["Lifestyle"][0].Trait)
}

func TestProfileManager_Import(t *testing.T) {
	m := NewProfileManager(newMemKV(), nil, time.Hour)

	m.Import(Export{
		TraitProfiles: map[string]domain.Selections{"Old": {"a": domain.Neutral}, "Empty": nil},
	})

	s := m.Snapshot()
	assert.Equal(t, []string{DefaultProfile, "Empty", "Old"}, s.Names())
	assert.NotNil(t, s.Profiles["Empty"])
}
