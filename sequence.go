package spotlight

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SequenceItem is one prompt in a Sequence together with the states that
// move the sequence on.
type SequenceItem struct {
	prompt   *Prompt
	changers []State
	handle   CallbackHandle
	active   bool // on screen at the start of the current Sequence.Update
}

// NewSequenceItem wraps p. The item completes when p is dismissed or
// finished. A nil prompt completes as soon as it is reached.
func NewSequenceItem(p *Prompt) *SequenceItem {
	return &SequenceItem{
		prompt:   p,
		changers: []State{StateDismissed, StateFinished},
	}
}

// Prompt returns the wrapped prompt, which may be nil.
func (it *SequenceItem) Prompt() *Prompt { return it.prompt }

// AddStateChanger makes entering s complete the item.
func (it *SequenceItem) AddStateChanger(s State) {
	if !slices.Contains(it.changers, s) {
		it.changers = append(it.changers, s)
	}
}

// RemoveStateChanger stops s from completing the item.
func (it *SequenceItem) RemoveStateChanger(s State) {
	it.changers = slices.DeleteFunc(it.changers, func(v State) bool { return v == s })
}

// ClearStateChangers removes every state changer. The item then only
// completes through Sequence.Next.
func (it *SequenceItem) ClearStateChangers() {
	it.changers = it.changers[:0]
}

// Sequence shows prompts one after another. Each item's prompt is shown when
// the previous item completes. Items whose key is already in the store are
// skipped, and completed keys are recorded.
type Sequence struct {
	items      []*SequenceItem
	index      int
	running    bool
	store      *ShownStore
	onComplete func()
	log        *zap.Logger
}

// NewSequence creates a sequence of prompts.
func NewSequence(prompts ...*Prompt) *Sequence {
	s := &Sequence{index: -1, log: zap.NewNop()}
	for _, p := range prompts {
		s.AddPrompt(p)
	}
	return s
}

// AddPrompt appends p and returns its item for further configuration.
func (s *Sequence) AddPrompt(p *Prompt) *SequenceItem {
	it := NewSequenceItem(p)
	s.items = append(s.items, it)
	return it
}

// AddItem appends an existing item.
func (s *Sequence) AddItem(it *SequenceItem) {
	s.items = append(s.items, it)
}

// Items returns the sequence's items.
func (s *Sequence) Items() []*SequenceItem { return s.items }

// SetStore attaches a ShownStore.
func (s *Sequence) SetStore(store *ShownStore) { s.store = store }

// SetLogger sets the logger used for skipped and failed items.
func (s *Sequence) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// OnComplete sets fn to be called once the last item completes.
func (s *Sequence) OnComplete(fn func()) { s.onComplete = fn }

// Current returns the active item, or nil when the sequence is not running.
func (s *Sequence) Current() *SequenceItem {
	if !s.running || s.index < 0 || s.index >= len(s.items) {
		return nil
	}
	return s.items[s.index]
}

// Running reports whether an item is being shown.
func (s *Sequence) Running() bool { return s.running }

// Show starts the sequence from the first item.
func (s *Sequence) Show() {
	s.detach()
	s.index = -1
	s.running = true
	s.advance()
}

// Next completes the current item and shows the following one.
func (s *Sequence) Next() {
	if !s.running {
		return
	}
	s.complete(s.items[s.index])
}

// Dismiss dismisses the current item's prompt.
func (s *Sequence) Dismiss() error {
	if it := s.Current(); it != nil && it.prompt != nil {
		return it.prompt.Dismiss()
	}
	return nil
}

// Finish finishes the current item's prompt.
func (s *Sequence) Finish() error {
	if it := s.Current(); it != nil && it.prompt != nil {
		return it.prompt.Finish()
	}
	return nil
}

// Update advances every prompt in the sequence that is on screen. A prompt
// may still be finishing when its successor starts revealing. A successor
// shown during this call gets its first tick on the next frame.
func (s *Sequence) Update(dt float32) {
	for _, it := range s.items {
		it.active = it.prompt != nil && onScreen(it.prompt.State())
	}
	for _, it := range s.items {
		if it.active {
			it.prompt.Update(dt)
		}
	}
}

// ProcessInput routes Ebitengine input to the current prompt.
func (s *Sequence) ProcessInput() {
	if it := s.Current(); it != nil && it.prompt != nil {
		it.prompt.ProcessInput()
	}
}

// Draw draws every on-screen prompt in item order.
func (s *Sequence) Draw(screen *ebiten.Image) {
	for _, it := range s.items {
		if it.prompt != nil && onScreen(it.prompt.State()) {
			it.prompt.Draw(screen)
		}
	}
}

func (s *Sequence) advance() {
	for {
		s.index++
		if s.index >= len(s.items) {
			s.running = false
			if s.onComplete != nil {
				s.onComplete()
			}
			return
		}
		it := s.items[s.index]
		if it.prompt == nil {
			continue
		}
		if s.store != nil && s.store.HasShown(it.prompt.Key()) {
			s.log.Debug("sequence item skipped", zap.Int("index", s.index), zap.String("key", it.prompt.Key()))
			continue
		}
		it.handle = it.prompt.OnStateChange(func(c StateChange) {
			if slices.Contains(it.changers, c.To) {
				s.complete(it)
			}
		})
		if err := it.prompt.Show(); err != nil {
			s.log.Warn("sequence item failed to show", zap.Int("index", s.index), zap.Error(err))
			it.handle.Remove()
			continue
		}
		return
	}
}

// complete detaches it, records its key and moves on. Completions of items
// other than the current one are ignored.
func (s *Sequence) complete(it *SequenceItem) {
	if !s.running || s.Current() != it {
		return
	}
	it.handle.Remove()
	it.handle = CallbackHandle{}
	if s.store != nil && it.prompt != nil {
		if err := s.store.MarkShown(it.prompt.Key()); err != nil {
			s.log.Warn("failed to record shown prompt", zap.Error(err))
		}
	}
	s.advance()
}

func (s *Sequence) detach() {
	for _, it := range s.items {
		it.handle.Remove()
		it.handle = CallbackHandle{}
	}
}

func onScreen(st State) bool {
	return st != StateNotShown && !st.IsTerminal()
}
