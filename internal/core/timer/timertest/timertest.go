// Package timertest provides recording fakes for the timer collaborators.
package timertest

import (
	"sync"

	"pomotick/internal/core/timer"
)

// Display records every call made by the engine.
type Display struct {
	mu          sync.Mutex
	StateLabels []string
	TimerLabels []string
	Graphics    []timer.GraphicKey
}

// SetStateLabel records text.
func (display *Display) SetStateLabel(text string) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.StateLabels = append(display.StateLabels, text)
}

// SetTimerLabel records text.
func (display *Display) SetTimerLabel(text string) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.TimerLabels = append(display.TimerLabels, text)
}

// SetStateGraphic records key.
func (display *Display) SetStateGraphic(key timer.GraphicKey) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.Graphics = append(display.Graphics, key)
}

// LastStateLabel returns the most recent state label, or "".
func (display *Display) LastStateLabel() string {
	display.mu.Lock()
	defer display.mu.Unlock()
	if len(display.StateLabels) == 0 {
		return ""
	}
	return display.StateLabels[len(display.StateLabels)-1]
}

// LastTimerLabel returns the most recent timer label, or "".
func (display *Display) LastTimerLabel() string {
	display.mu.Lock()
	defer display.mu.Unlock()
	if len(display.TimerLabels) == 0 {
		return ""
	}
	return display.TimerLabels[len(display.TimerLabels)-1]
}

// Media counts toggles.
type Media struct {
	mu      sync.Mutex
	toggles int
}

// Toggle counts one play/pause.
func (media *Media) Toggle() {
	media.mu.Lock()
	defer media.mu.Unlock()
	media.toggles++
}

// Toggles returns the number of Toggle calls.
func (media *Media) Toggles() int {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.toggles
}

// Voice records played prompt identifiers.
type Voice struct {
	mu     sync.Mutex
	played []string
}

// Play records promptID.
func (voice *Voice) Play(promptID string) {
	voice.mu.Lock()
	defer voice.mu.Unlock()
	voice.played = append(voice.played, promptID)
}

// Played returns a copy of the played prompt identifiers.
func (voice *Voice) Played() []string {
	voice.mu.Lock()
	defer voice.mu.Unlock()
	return append([]string(nil), voice.played...)
}

// Fakes bundles one of each fake.
type Fakes struct {
	Display *Display
	Media   *Media
	Voice   *Voice
}

// New returns fresh fakes.
func New() *Fakes {
	return &Fakes{
		Display: &Display{},
		Media:   &Media{},
		Voice:   &Voice{},
	}
}

// Collaborators returns the fakes as engine collaborators.
func (fakes *Fakes) Collaborators() timer.Collaborators {
	return timer.Collaborators{
		Display: fakes.Display,
		Media:   fakes.Media,
		Voice:   fakes.Voice,
	}
}
