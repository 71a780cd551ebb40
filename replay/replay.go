// Package replay feeds scripted host gesture events through a matching widget
// without a terminal. Scripts are YAML.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dylan/matchdrag/config"
	"github.com/dylan/matchdrag/matching"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrExpectation = errors.New("replay expectation failed")

// Script is a replayable exercise session.
type Script struct {
	Exercise Exercise `yaml:"exercise"`
	Steps    []Step   `yaml:"steps"`
}

// Exercise overrides the config exercise section. Zero fields keep the
// config value; placeholder_count is a pointer so an explicit 0 still counts.
type Exercise struct {
	ChoiceCount      int    `yaml:"choice_count"`
	SlotCount        int    `yaml:"slot_count"`
	PlaceholderCount *int   `yaml:"placeholder_count"`
	ShuffleSeed      string `yaml:"shuffle_seed"`
}

// Apply returns cfg with the overrides set in e.
func (e Exercise) Apply(cfg config.Config) config.Config {
	if e.ChoiceCount != 0 {
		cfg.Exercise.ChoiceCount = e.ChoiceCount
	}
	if e.SlotCount != 0 {
		cfg.Exercise.SlotCount = e.SlotCount
	}
	if e.PlaceholderCount != nil {
		n := *e.PlaceholderCount
		cfg.Exercise.PlaceholderCount = &n
	}
	if e.ShuffleSeed != "" {
		cfg.Exercise.ShuffleSeed = e.ShuffleSeed
	}
	return cfg
}

// Step is one gesture. Start is optional; Expect, when set, is compared with
// the store rendered as "pool=[..] slots=[..]".
type Step struct {
	Start  *matching.DragStartEvent `yaml:"start,omitempty"`
	End    matching.DragEndEvent    `yaml:"end"`
	Expect string                   `yaml:"expect,omitempty"`
}

func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("parsing script: %w", err)
	}
	return s, nil
}

// Run replays the script against cfg with the script's exercise overrides
// applied, printing the store after every step. Rejected gestures are printed
// inline and do not stop the run; failed expectations are counted and
// returned as ErrExpectation.
func Run(out io.Writer, s Script, cfg config.Config, logger *zap.Logger) error {
	cfg = s.Exercise.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := matching.New(
		cfg.ResolvedChoiceCount(),
		cfg.ResolvedSlotCount(),
		cfg.ResolvedPlaceholderCount(),
		matching.WithShuffleSeed(cfg.Exercise.ShuffleSeed),
	)
	if err != nil {
		return err
	}

	id := cfg.Exercise.WidgetID
	if id == "" {
		id = "replay"
	}
	var rejected error
	w := matching.NewWidget(store,
		matching.WithID(id),
		matching.WithLogger(logger),
		matching.WithErrorHandler(func(err error) { rejected = err }),
		matching.WithStrictInvariants(cfg.Log.Strict),
	)

	fmt.Fprintf(out, "start: %s\n", w.Store())
	failed := 0
	for i, step := range s.Steps {
		rejected = nil
		if step.Start != nil {
			w.DragStart(*step.Start)
		}
		got := w.DragEnd(step.End)

		fmt.Fprintf(out, "step %d: %s\n", i+1, describe(step.End))
		if rejected != nil {
			fmt.Fprintf(out, "  rejected: %v\n", rejected)
		}
		fmt.Fprintf(out, "  %s\n", got)

		if step.Expect != "" && step.Expect != got.String() {
			failed++
			fmt.Fprintf(out, "  expected: %s\n", step.Expect)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d steps", ErrExpectation, failed, len(s.Steps))
	}
	return nil
}

func describe(ev matching.DragEndEvent) string {
	src := fmt.Sprintf("%s[%d]", ev.Source.DroppableID, ev.Source.Index)
	if ev.Destination == nil {
		return ev.DraggableID + " " + src + " -> (cancelled)"
	}
	return fmt.Sprintf("%s %s -> %s[%d]", ev.DraggableID, src, ev.Destination.DroppableID, ev.Destination.Index)
}
