package spotlight

import (
	"fmt"
	"slices"
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options configures a Prompt. Zero values for shapes, easing and logger are
// filled in by NewPrompt from the named fields or the defaults.
type Options struct {
	// Key identifies the prompt in a ShownStore. Empty keys are never stored.
	Key string `yaml:"key"`

	FocalPadding float64 `yaml:"focalPadding"` // pixels between target and focal edge
	TextPadding  float64 `yaml:"textPadding"`  // pixels around the text block
	Density      float64 `yaml:"density"`      // pixels per density-independent unit

	BackgroundColor Color `yaml:"backgroundColor"`
	FocalColor      Color `yaml:"focalColor"`

	// BackgroundClickable makes taps on the background (off the focal
	// target) count as non-focal presses. Otherwise they are swallowed.
	BackgroundClickable bool `yaml:"backgroundClickable"`
	// DismissOnBack dismisses the prompt on a back action.
	DismissOnBack bool `yaml:"dismissOnBack"`
	// AutoDismiss dismisses the prompt on a non-focal press.
	AutoDismiss bool `yaml:"autoDismiss"`
	// AutoFinish finishes the prompt on a focal press.
	AutoFinish bool `yaml:"autoFinish"`
	// CaptureTouchOnFocal reports focal taps as handled so the host does not
	// forward them to the target underneath.
	CaptureTouchOnFocal bool `yaml:"captureTouchOnFocal"`
	// CaptureTouchOutside reports taps outside the prompt as handled.
	CaptureTouchOutside bool `yaml:"captureTouchOutside"`
	// ClipToBounds treats taps outside the clip bounds as outside taps.
	ClipToBounds bool `yaml:"clipToBounds"`

	RevealDuration  time.Duration `yaml:"revealDuration"`
	DismissDuration time.Duration `yaml:"dismissDuration"`
	FinishDuration  time.Duration `yaml:"finishDuration"`
	// Timeout dismisses the prompt this long after it is revealed. Zero
	// disables it.
	Timeout time.Duration `yaml:"timeout"`

	// Easing names the interpolation curve; see EasingNames.
	Easing string `yaml:"easing"`
	// FocalShapeName is "circle" or "rectangle".
	FocalShapeName string `yaml:"focalShape"`
	// BackgroundShapeName is "circle" or "fullscreen".
	BackgroundShapeName string `yaml:"backgroundShape"`

	Ease       ease.TweenFunc `yaml:"-"`
	Focal      FocalShape     `yaml:"-"`
	Background Background     `yaml:"-"`
	Logger     *zap.Logger    `yaml:"-"`
}

// DefaultOptions returns the stock material tap-target configuration.
func DefaultOptions() Options {
	return Options{
		FocalPadding:        20,
		TextPadding:         40,
		Density:             1,
		BackgroundColor:     Color{R: 0.247, G: 0.318, B: 0.71, A: 0.957},
		FocalColor:          ColorWhite,
		DismissOnBack:       true,
		AutoDismiss:         true,
		AutoFinish:          true,
		ClipToBounds:        true,
		RevealDuration:      225 * time.Millisecond,
		DismissDuration:     225 * time.Millisecond,
		FinishDuration:      225 * time.Millisecond,
		Easing:              "inOutSine",
		FocalShapeName:      "circle",
		BackgroundShapeName: "circle",
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outExpo":    ease.OutExpo,
	"outBack":    ease.OutBack,
}

// EasingNames lists the names accepted by Options.Easing.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadOptions parses YAML over DefaultOptions and checks the named easing
// and shapes. Durations use Go syntax ("300ms").
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("spotlight: failed to parse options: %w", err)
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o *Options) validate() error {
	if o.Ease == nil && o.Easing != "" {
		if _, ok := easings[o.Easing]; !ok {
			return fmt.Errorf("spotlight: unknown easing %q", o.Easing)
		}
	}
	if o.Focal == nil {
		switch o.FocalShapeName {
		case "", "circle", "rectangle":
		default:
			return fmt.Errorf("spotlight: unknown focal shape %q", o.FocalShapeName)
		}
	}
	if o.Background == nil {
		switch o.BackgroundShapeName {
		case "", "circle", "fullscreen":
		default:
			return fmt.Errorf("spotlight: unknown background shape %q", o.BackgroundShapeName)
		}
	}
	if o.RevealDuration < 0 || o.DismissDuration < 0 || o.FinishDuration < 0 || o.Timeout < 0 {
		return fmt.Errorf("spotlight: negative duration in options")
	}
	return nil
}

// resolve validates o and fills the function and interface fields from
// their names.
func (o *Options) resolve() error {
	if err := o.validate(); err != nil {
		return err
	}
	if o.Density <= 0 {
		o.Density = 1
	}
	if o.Ease == nil {
		o.Ease = ease.InOutSine
		if o.Easing != "" {
			o.Ease = easings[o.Easing]
		}
	}
	if o.Focal == nil {
		o.Focal = CircleFocal{}
		if o.FocalShapeName == "rectangle" {
			o.Focal = RectangleFocal{}
		}
	}
	if o.Background == nil {
		if o.BackgroundShapeName == "fullscreen" {
			o.Background = NewFullscreenBackground(o.BackgroundColor)
		} else {
			o.Background = NewCircleBackground(o.BackgroundColor)
		}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}
