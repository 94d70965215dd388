package spotlight

import (
	"fmt"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage locations inside the gdata manager.
const (
	storeObject   = "spotlight"
	storeProperty = "shown"
)

// ShownStore remembers which prompt keys have been completed, so onboarding
// is not repeated across runs. A nil gdata manager keeps the set in memory
// only.
type ShownStore struct {
	manager *gdata.Manager
	keys    []string
}

type shownFile struct {
	Keys []string `yaml:"keys"`
}

// NewShownStore loads the shown set from manager. A manager with no saved
// set yields an empty store.
func NewShownStore(manager *gdata.Manager) (*ShownStore, error) {
	s := &ShownStore{manager: manager}
	err := s.Load()
	return s, err
}

// Load replaces the in-memory set with the saved one.
func (s *ShownStore) Load() error {
	s.keys = s.keys[:0]
	if s.manager == nil || !s.manager.ObjectPropExists(storeObject, storeProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(storeObject, storeProperty)
	if err != nil {
		return fmt.Errorf("spotlight: failed to load shown prompts: %w", err)
	}
	var f shownFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("spotlight: failed to unmarshal shown prompts: %w", err)
	}
	s.keys = f.Keys
	return nil
}

// HasShown reports whether key has been marked.
func (s *ShownStore) HasShown(key string) bool {
	return key != "" && slices.Contains(s.keys, key)
}

// MarkShown records key and saves the set. Empty keys are ignored.
func (s *ShownStore) MarkShown(key string) error {
	if key == "" || s.HasShown(key) {
		return nil
	}
	s.keys = append(s.keys, key)
	return s.save()
}

// Reset forgets every key.
func (s *ShownStore) Reset() error {
	s.keys = nil
	return s.save()
}

// Keys returns the marked keys in the order they were marked.
func (s *ShownStore) Keys() []string {
	return slices.Clone(s.keys)
}

func (s *ShownStore) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(shownFile{Keys: s.keys})
	if err != nil {
		return fmt.Errorf("spotlight: failed to marshal shown prompts: %w", err)
	}
	if err := s.manager.SaveObjectProp(storeObject, storeProperty, data); err != nil {
		return fmt.Errorf("spotlight: failed to save shown prompts: %w", err)
	}
	return nil
}
