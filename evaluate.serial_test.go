package wellbore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSerial(t *testing.T) {
	ev, _, _, _ := testEvaluator()
	stages := []Stage{{Nam: "pill", Density: 1500., Volume: 2.}}
	outdirprfx := filepath.Join(t.TempDir(), "run.")

	res := ev.EvaluateSerial(stages, outdirprfx)

	// same schedule, same numbers, with or without the progress bar
	assert.Equal(t, ev.Evaluate(stages), res)

	b, err := os.ReadFile(outdirprfx + "pressures.csv")
	require.NoError(t, err)
	assert.Contains(t, string(b), "pumped,pstring,pannulus,kick")
}
