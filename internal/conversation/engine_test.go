package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []string{StateMainMenu, StateFitness, StatePhysio, StateReha, StateTermin}

func TestStepIsDeterministic(t *testing.T) {
	first := Step(StateFitness, map[string]string{"x": "y"}, "b")
	second := Step(StateFitness, map[string]string{"x": "y"}, "b")
	assert.Equal(t, first, second)
}

func TestMenuInputResetsFromEveryState(t *testing.T) {
	for _, state := range allStates {
		for _, input := range []string{"0", "menü", "menu", "start", " MENU "} {
			result := Step(state, map[string]string{"left": "over"}, input)
			assert.Equal(t, StateMainMenu, result.NextState, "state %s input %q", state, input)
			assert.Equal(t, menuText, result.Reply)
			assert.Empty(t, result.NextData)
			assert.Nil(t, result.Lead)
		}
	}
}

func TestFreshUserGetsMenu(t *testing.T) {
	result := Step("", nil, "hallo")
	assert.Equal(t, StateMainMenu, result.NextState)
	assert.Equal(t, menuText, result.Reply)
	assert.Nil(t, result.Lead)
}

func TestCorruptStateTreatedAsAbsent(t *testing.T) {
	result := Step("WAITING_FOR_GODOT", map[string]string{"stale": "1"}, "hi")
	assert.Equal(t, StateMainMenu, result.NextState)
	assert.Equal(t, menuText, result.Reply)
	assert.Empty(t, result.NextData)
}

func TestMainMenuSelections(t *testing.T) {
	expected := map[string]string{
		"1": StateFitness,
		"2": StatePhysio,
		"3": StateReha,
		"4": StateTermin,
	}
	for input, next := range expected {
		result := Step(StateMainMenu, nil, input)
		assert.Equal(t, next, result.NextState, "input %q", input)
		assert.Nil(t, result.Lead)
		assert.NotEmpty(t, result.Reply)
	}
}

func TestMainMenuInvalidChoice(t *testing.T) {
	result := Step(StateMainMenu, nil, "banana")
	assert.Equal(t, StateMainMenu, result.NextState)
	assert.Contains(t, result.Reply, invalidChoiceText)
	assert.Contains(t, result.Reply, "1️⃣")
	assert.Nil(t, result.Lead)
}

func TestFitnessSelectionCreatesLead(t *testing.T) {
	result := Step(StateFitness, nil, "B")

	assert.Equal(t, StateMainMenu, result.NextState)
	require.NotNil(t, result.Lead)
	assert.Equal(t, CategoryFitness, result.Lead.Category)
	assert.Equal(t, "Kraft/Training", result.Lead.Payload["ziel"])
}

func TestFitnessInvalidInputReprompts(t *testing.T) {
	result := Step(StateFitness, map[string]string{"k": "v"}, "d")
	assert.Equal(t, StateFitness, result.NextState)
	assert.Nil(t, result.Lead)
	assert.Contains(t, result.Reply, invalidChoiceText)
	assert.Equal(t, map[string]string{"k": "v"}, result.NextData)
}

func TestPhysioPrescriptionFlag(t *testing.T) {
	withRezept := Step(StatePhysio, nil, "1")
	require.NotNil(t, withRezept.Lead)
	assert.Equal(t, CategoryPhysio, withRezept.Lead.Category)
	assert.Equal(t, "ja", withRezept.Lead.Payload["rezept"])

	without := Step(StatePhysio, nil, "2")
	require.NotNil(t, without.Lead)
	assert.Equal(t, "nein", without.Lead.Payload["rezept"])
}

func TestRehaAreas(t *testing.T) {
	areas := map[string]string{"1": "Rücken", "2": "Knie", "3": "Schulter"}
	for input, area := range areas {
		result := Step(StateReha, nil, input)
		require.NotNil(t, result.Lead, "input %q", input)
		assert.Equal(t, CategoryReha, result.Lead.Category)
		assert.Equal(t, area, result.Lead.Payload["bereich"])
		assert.Equal(t, StateMainMenu, result.NextState)
	}

	invalid := Step(StateReha, nil, "9")
	assert.Nil(t, invalid.Lead)
	assert.Equal(t, StateReha, invalid.NextState)
}

func TestTerminTakesAnyText(t *testing.T) {
	result := Step(StateTermin, nil, "  Montag 10 Uhr, Probetraining  ")

	assert.Equal(t, StateMainMenu, result.NextState)
	require.NotNil(t, result.Lead)
	assert.Equal(t, CategoryTermin, result.Lead.Category)
	assert.Equal(t, "Montag 10 Uhr, Probetraining", result.Lead.Payload["nachricht"])
	assert.Equal(t, terminConfirm, result.Reply)
}

func TestTerminalBranchesReturnToMenuWithOneLead(t *testing.T) {
	completions := map[string]string{
		StateFitness: "a",
		StatePhysio:  "2",
		StateReha:    "3",
		StateTermin:  "bitte Dienstag",
	}
	for state, input := range completions {
		result := Step(state, nil, input)
		assert.Equal(t, StateMainMenu, result.NextState, "state %s", state)
		require.NotNil(t, result.Lead, "state %s", state)
	}
}
