// Package conversation implements the per-user dialogue state machine. Step
// is a pure function; persistence and sending happen in the caller.
package conversation

import (
	"strings"

	"studiobot-backend/internal/intent"
)

// Conversation states. A session holding anything else is treated as absent
// and reset to the main menu.
const (
	StateMainMenu = "MAIN_MENU"
	StateFitness  = "FITNESS"
	StatePhysio   = "PHYSIO"
	StateReha     = "REHA"
	StateTermin   = "TERMIN"
)

// Lead categories match the terminal conversation branches.
const (
	CategoryFitness = "FITNESS"
	CategoryPhysio  = "PHYSIO"
	CategoryReha    = "REHA"
	CategoryTermin  = "TERMIN"
)

// LeadDraft is a completed intake the caller should persist.
type LeadDraft struct {
	Category string
	Payload  map[string]string
}

// Result is the outcome of one engine step.
type Result struct {
	NextState string
	NextData  map[string]string
	Reply     string
	Lead      *LeadDraft
	Intent    intent.Intent
}

// isMenuInput reports whether a normalized input resets the conversation
// back to the main menu, regardless of current state.
func isMenuInput(s string) bool {
	switch s {
	case "0", "menü", "menu", "start":
		return true
	}
	return false
}

var fitnessGoals = map[string]string{
	"a": "Abnehmen",
	"b": "Kraft/Training",
	"c": "Ausdauer",
}

var rehaAreas = map[string]string{
	"1": "Rücken",
	"2": "Knie",
	"3": "Schulter",
}

// Step computes one transition. Pure: identical inputs always produce
// identical outputs. Exactly one transition happens per inbound message.
func Step(state string, data map[string]string, text string) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))
	classified := intent.Classify(text)

	// Global escape hatch, regardless of current state.
	if isMenuInput(normalized) {
		return Result{
			NextState: StateMainMenu,
			NextData:  map[string]string{},
			Reply:     menuText,
			Intent:    classified,
		}
	}

	if data == nil {
		data = map[string]string{}
	}

	switch state {
	case StateFitness:
		if goal, ok := fitnessGoals[normalized]; ok {
			return Result{
				NextState: StateMainMenu,
				NextData:  map[string]string{},
				Reply:     fitnessConfirm,
				Lead:      &LeadDraft{Category: CategoryFitness, Payload: map[string]string{"ziel": goal}},
				Intent:    classified,
			}
		}
		return Result{NextState: StateFitness, NextData: data, Reply: invalidChoiceText + "\n\n" + fitnessPrompt, Intent: classified}

	case StatePhysio:
		switch normalized {
		case "1", "2":
			rezept := "ja"
			if normalized == "2" {
				rezept = "nein"
			}
			return Result{
				NextState: StateMainMenu,
				NextData:  map[string]string{},
				Reply:     physioConfirm,
				Lead:      &LeadDraft{Category: CategoryPhysio, Payload: map[string]string{"rezept": rezept}},
				Intent:    classified,
			}
		}
		return Result{NextState: StatePhysio, NextData: data, Reply: invalidChoiceText + "\n\n" + physioPrompt, Intent: classified}

	case StateReha:
		if area, ok := rehaAreas[normalized]; ok {
			return Result{
				NextState: StateMainMenu,
				NextData:  map[string]string{},
				Reply:     rehaConfirm,
				Lead:      &LeadDraft{Category: CategoryReha, Payload: map[string]string{"bereich": area}},
				Intent:    classified,
			}
		}
		return Result{NextState: StateReha, NextData: data, Reply: invalidChoiceText + "\n\n" + rehaPrompt, Intent: classified}

	case StateTermin:
		if normalized != "" {
			return Result{
				NextState: StateMainMenu,
				NextData:  map[string]string{},
				Reply:     terminConfirm,
				Lead:      &LeadDraft{Category: CategoryTermin, Payload: map[string]string{"nachricht": strings.TrimSpace(text)}},
				Intent:    classified,
			}
		}
		return Result{NextState: StateTermin, NextData: data, Reply: terminPrompt, Intent: classified}

	case StateMainMenu:
		return stepMainMenu(normalized, classified)

	default:
		// No session yet, or an unrecognized state value: reset to the
		// main menu and greet with it.
		return Result{
			NextState: StateMainMenu,
			NextData:  map[string]string{},
			Reply:     menuText,
			Intent:    classified,
		}
	}
}

func stepMainMenu(normalized string, classified intent.Intent) Result {
	switch normalized {
	case "1":
		return Result{NextState: StateFitness, NextData: map[string]string{}, Reply: fitnessPrompt, Intent: classified}
	case "2":
		return Result{NextState: StatePhysio, NextData: map[string]string{}, Reply: physioPrompt, Intent: classified}
	case "3":
		return Result{NextState: StateReha, NextData: map[string]string{}, Reply: rehaPrompt, Intent: classified}
	case "4":
		return Result{NextState: StateTermin, NextData: map[string]string{}, Reply: terminPrompt, Intent: classified}
	default:
		return Result{
			NextState: StateMainMenu,
			NextData:  map[string]string{},
			Reply:     invalidChoiceText + "\n\n" + menuText,
			Intent:    classified,
		}
	}
}

// MenuText exposes the main menu for greeting flows and tests.
func MenuText() string {
	return menuText
}
