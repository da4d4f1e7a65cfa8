package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
	"github.com/denisok6893-rgb/red-flag-checker/internal/logger"
	"github.com/denisok6893-rgb/red-flag-checker/internal/metrics"
)

// Document keys.
const (
	KeyProfiles     = "traitProfiles"
	KeyCustomTraits = "customTraits"
)

const (
	DefaultProfile     = "Default"
	DefaultDisplayName = "Dating Profile"
	DefaultFlushDelay  = 500 * time.Millisecond

	customTraitWeight = 30
)

var ErrProfileNotFound = errors.New("profile not found")

// KV is the document store behind a ProfileManager.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	PutMany(ctx context.Context, docs map[string][]byte) error
}

// State is a point-in-time view of the profiles.
type State struct {
	Current      string                          `json:"current"`
	DisplayName  string                          `json:"displayName"`
	Profiles     map[string]domain.Selections    `json:"profiles"`
	CustomTraits map[string][]domain.CustomTrait `json:"customTraits"`
}

// Selections of the current profile; never nil.
func (s State) Selections() domain.Selections {
	if sel := s.Profiles[s.Current]; sel != nil {
		return sel
	}
	return domain.Selections{}
}

// Names lists profile names with Default first, the rest sorted.
func (s State) Names() []string {
	out := make([]string, 0, len(s.Profiles))
	for n := range s.Profiles {
		if n != DefaultProfile {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	if _, ok := s.Profiles[DefaultProfile]; ok {
		out = append([]string{DefaultProfile}, out...)
	}
	return out
}

func (s State) clone() State {
	out := State{
		Current:      s.Current,
		DisplayName:  s.DisplayName,
		Profiles:     make(map[string]domain.Selections, len(s.Profiles)),
		CustomTraits: make(map[string][]domain.CustomTrait, len(s.CustomTraits)),
	}
	for k, v := range s.Profiles {
		out.Profiles[k] = v.Clone()
		if out.Profiles[k] == nil {
			out.Profiles[k] = domain.Selections{}
		}
	}
	for k, v := range s.CustomTraits {
		out.CustomTraits[k] = append([]domain.CustomTrait(nil), v...)
	}
	return out
}

func initialState() State {
	return State{
		Current:      DefaultProfile,
		DisplayName:  DefaultDisplayName,
		Profiles:     map[string]domain.Selections{DefaultProfile: {}},
		CustomTraits: map[string][]domain.CustomTrait{},
	}
}

// ProfileManager owns the profile set. Every mutation replaces the state
// and schedules a write after the flush delay; a newer mutation
// reschedules it. Writes that never fire (crash) are lost.
type ProfileManager struct {
	kv    KV
	log   logger.Logger
	delay time.Duration
	now   func() time.Time

	mu    sync.Mutex
	state State
	dirty bool
	timer *time.Timer

	flushMu sync.Mutex
}

func NewProfileManager(kv KV, log logger.Logger, flushDelay time.Duration) *ProfileManager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if flushDelay <= 0 {
		flushDelay = DefaultFlushDelay
	}
	return &ProfileManager{
		kv:    kv,
		log:   log,
		delay: flushDelay,
		now:   time.Now,
		state: initialState(),
	}
}

// Load replaces the in-memory state with the stored documents. Documents
// that fail to parse are logged and replaced by defaults.
func (m *ProfileManager) Load(ctx context.Context) error {
	next := initialState()

	raw, ok, err := m.kv.Get(ctx, KeyProfiles)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeyProfiles, err)
	}
	if ok {
		var profiles map[string]domain.Selections
		if err := json.Unmarshal(raw, &profiles); err != nil {
			m.log.Warn("stored profiles unreadable, using defaults", map[string]interface{}{"error": err.Error()})
		} else {
			for name, sel := range profiles {
				next.Profiles[name] = sel
			}
		}
	}

	raw, ok, err = m.kv.Get(ctx, KeyCustomTraits)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeyCustomTraits, err)
	}
	if ok {
		var custom map[string][]domain.CustomTrait
		if err := json.Unmarshal(raw, &custom); err != nil {
			m.log.Warn("stored custom traits unreadable, ignoring", map[string]interface{}{"error": err.Error()})
		} else if custom != nil {
			next.CustomTraits = custom
		}
	}

	next = next.clone()

	m.mu.Lock()
	if _, ok := next.Profiles[m.state.Current]; ok {
		next.Current = m.state.Current
		next.DisplayName = m.state.DisplayName
	}
	m.state = next
	m.mu.Unlock()

	m.log.Info("profiles loaded", map[string]interface{}{"profiles": len(next.Profiles), "custom_categories": len(next.CustomTraits)})
	return nil
}

// Import merges exported profiles and custom traits into the state.
func (m *ProfileManager) Import(exp Export) {
	m.mutate(func(s *State) bool {
		for name, sel := range exp.TraitProfiles {
			s.Profiles[name] = sel.Clone()
			if s.Profiles[name] == nil {
				s.Profiles[name] = domain.Selections{}
			}
		}
		for cat, traits := range exp.CustomTraits {
			s.CustomTraits[cat] = append(s.CustomTraits[cat], traits...)
		}
		return true
	})
}

func (m *ProfileManager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// mutate applies fn to a copy of the state and installs it if fn reports
// a change.
func (m *ProfileManager) mutate(fn func(s *State) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.clone()
	if !fn(&next) {
		return false
	}
	m.state = next
	m.dirty = true
	m.scheduleLocked()
	return true
}

func (m *ProfileManager) scheduleLocked() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.delay, func() {
		if err := m.Flush(context.Background()); err != nil {
			m.log.Error("profile flush failed", map[string]interface{}{"error": err.Error()})
		}
	})
}

// AddProfile creates an empty profile and makes it current. An existing
// profile with the same name is emptied. Blank names are rejected.
func (m *ProfileManager) AddProfile(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return m.mutate(func(s *State) bool {
		s.Profiles[name] = domain.Selections{}
		s.Current = name
		s.DisplayName = name
		return true
	})
}

// DeleteCurrent removes the current profile and switches to Default. The
// Default profile cannot be deleted.
func (m *ProfileManager) DeleteCurrent() bool {
	return m.mutate(func(s *State) bool {
		if s.Current == DefaultProfile {
			return false
		}
		delete(s.Profiles, s.Current)
		if _, ok := s.Profiles[DefaultProfile]; !ok {
			s.Profiles[DefaultProfile] = domain.Selections{}
		}
		s.Current = DefaultProfile
		s.DisplayName = DefaultProfile
		return true
	})
}

// Change switches the current profile.
func (m *ProfileManager) Change(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.state.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	next := m.state.clone()
	next.Current = name
	next.DisplayName = name
	m.state = next
	return nil
}

// Rename sets the display name used in share links.
func (m *ProfileManager) Rename(displayName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.clone()
	next.DisplayName = displayName
	m.state = next
}

// Reset clears the current profile's selections.
func (m *ProfileManager) Reset() {
	m.mutate(func(s *State) bool {
		s.Profiles[s.Current] = domain.Selections{}
		return true
	})
}

// Update rates one trait on the current profile. An empty level removes
// the rating.
func (m *ProfileManager) Update(traitID string, level domain.Level) {
	m.mutate(func(s *State) bool {
		sel := s.Profiles[s.Current]
		if sel == nil {
			sel = domain.Selections{}
			s.Profiles[s.Current] = sel
		}
		if level == "" {
			delete(sel, traitID)
		} else {
			sel[traitID] = level
		}
		return true
	})
}

// AddCustomTrait appends a user trait to category. Blank names are rejected.
func (m *ProfileManager) AddCustomTrait(category, name string) (domain.CustomTrait, bool) {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)
	if category == "" || name == "" {
		return domain.CustomTrait{}, false
	}
	lower := strings.ToLower(name)
	ct := domain.CustomTrait{
		TraitDefinition: domain.TraitDefinition{
			Trait:          name,
			Negative:       "Shows " + lower,
			Positive:       "Doesn't show " + lower,
			NegativeWeight: customTraitWeight,
			PositiveWeight: customTraitWeight,
		},
		IsCustom:  true,
		CreatedAt: m.now().UnixMilli(),
	}
	m.mutate(func(s *State) bool {
		s.CustomTraits[category] = append(s.CustomTraits[category], ct)
		return true
	})
	return ct, true
}

// DeleteCustomTrait removes a user trait and any ratings of it.
func (m *ProfileManager) DeleteCustomTrait(category, name string) bool {
	return m.mutate(func(s *State) bool {
		traits := s.CustomTraits[category]
		kept := traits[:0]
		for _, t := range traits {
			if t.Trait != name {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(traits) {
			return false
		}
		if len(kept) == 0 {
			delete(s.CustomTraits, category)
		} else {
			s.CustomTraits[category] = kept
		}
		id := assessment.TraitID(category, name)
		for _, sel := range s.Profiles {
			delete(sel, id)
		}
		return true
	})
}

// Flush writes pending changes now.
func (m *ProfileManager) Flush(ctx context.Context) error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if !m.dirty {
		m.mu.Unlock()
		return nil
	}
	snap := m.state.clone()
	m.dirty = false
	m.mu.Unlock()

	err := m.write(ctx, snap)
	if err != nil {
		m.mu.Lock()
		m.dirty = true
		m.mu.Unlock()
		metrics.ProfileFlushes.WithLabelValues("error").Inc()
		return err
	}
	metrics.ProfileFlushes.WithLabelValues("ok").Inc()
	m.log.Debug("profiles flushed", map[string]interface{}{"profiles": len(snap.Profiles)})
	return nil
}

func (m *ProfileManager) write(ctx context.Context, s State) error {
	profiles, err := json.Marshal(s.Profiles)
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	custom, err := json.Marshal(s.CustomTraits)
	if err != nil {
		return fmt.Errorf("encode custom traits: %w", err)
	}
	if err := m.kv.PutMany(ctx, map[string][]byte{
		KeyProfiles:     profiles,
		KeyCustomTraits: custom,
	}); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}
