package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dylan/matchdrag/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const script = `
exercise:
  choice_count: 2
  slot_count: 2
  placeholder_count: 2
steps:
  - start:
      source: {droppable: "pool:x", index: 0}
    end:
      draggable: "choices:0"
      source: {droppable: "pool:x", index: 0}
      destination: {droppable: "slots:x", index: 1}
    expect: "pool=[1] slots=[_0 0]"
  - end:
      draggable: "choices:1"
      source: {droppable: "pool:x", index: 0}
    expect: "pool=[1] slots=[_0 0]"
  - end:
      draggable: "choices:0"
      source: {droppable: "slots:x", index: 1}
      destination: {droppable: "pool:x", index: 1}
    expect: "pool=[1 0] slots=[_0 _2]"
  - end:
      draggable: "placeholders:0"
      source: {droppable: "slots:x", index: 0}
      destination: {droppable: "pool:x", index: 0}
`

func TestRunScript(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, s.Steps, 4)

	var out bytes.Buffer
	require.NoError(t, Run(&out, s, config.Config{}, zap.NewNop()))

	text := out.String()
	assert.Contains(t, text, "start: pool=[0 1] slots=[_0 _1]")
	assert.Contains(t, text, "step 2: choices:1 pool:x[0] -> (cancelled)")
	assert.Contains(t, text, "rejected: parse gesture: placeholders are not draggable")
	assert.NotContains(t, text, "expected:")
}

func TestRunReportsFailedExpectations(t *testing.T) {
	s, err := Decode(strings.NewReader(strings.Replace(script, `"pool=[1 0] slots=[_0 _2]"`, `"pool=[] slots=[]"`, 1)))
	require.NoError(t, err)

	var out bytes.Buffer
	err = Run(&out, s, config.Config{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrExpectation)
	assert.Contains(t, out.String(), "expected: pool=[] slots=[]")
}

func TestRunRejectsBadExercise(t *testing.T) {
	two := 2
	err := Run(&bytes.Buffer{}, Script{Exercise: Exercise{SlotCount: 1, PlaceholderCount: &two}}, config.Config{}, zap.NewNop())
	assert.ErrorContains(t, err, "invalid config")
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("steps:\n  - ends: {}\n"))
	assert.ErrorContains(t, err, "parsing script")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Exercise.ChoiceCount)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

const bareScript = `
steps:
  - end:
      draggable: "choices:0"
      source: {droppable: "pool:x", index: 0}
      destination: {droppable: "slots:x", index: 0}
`

func TestRunWithoutExerciseUsesConfigDefaults(t *testing.T) {
	s, err := Decode(strings.NewReader(bareScript))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(&out, s, config.Config{}, zap.NewNop()))
	assert.Contains(t, out.String(), "start: pool=[0 1 2 3] slots=[_0 _1 _2 _3]")
	assert.Contains(t, out.String(), "  pool=[1 2 3] slots=[0 _1 _2 _3]")
	assert.NotContains(t, out.String(), "rejected")
}

func TestRunOverridesConfigExercise(t *testing.T) {
	s, err := Decode(strings.NewReader(bareScript))
	require.NoError(t, err)
	s.Exercise.ChoiceCount = 2

	one := 1
	cfg := config.Config{Exercise: config.ExerciseConfig{ChoiceCount: 5, SlotCount: 2, PlaceholderCount: &one}}

	var out bytes.Buffer
	require.NoError(t, Run(&out, s, cfg, zap.NewNop()))
	// choices from the script, slots from the config
	assert.Contains(t, out.String(), "start: pool=[0 1] slots=[2 _0]")
	assert.Contains(t, out.String(), "  pool=[2 1] slots=[0 _0]", "displaced answer returns to the source position")
}

func TestExerciseApplyKeepsUnsetFields(t *testing.T) {
	zero := 0
	cfg := config.Config{Exercise: config.ExerciseConfig{ChoiceCount: 3, SlotCount: 3, ShuffleSeed: "cfg"}}

	got := Exercise{PlaceholderCount: &zero}.Apply(cfg)
	assert.Equal(t, 3, got.Exercise.ChoiceCount)
	assert.Equal(t, "cfg", got.Exercise.ShuffleSeed)
	require.NotNil(t, got.Exercise.PlaceholderCount)
	assert.Equal(t, 0, *got.Exercise.PlaceholderCount)
	assert.Nil(t, cfg.Exercise.PlaceholderCount, "input config untouched")
}
