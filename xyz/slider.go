// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Slider is the value model of a slider control: a value within
// [Min, Max] snapped to Step, with observers called on every change.
// The host widget toolkit displays it and calls [Slider.SetValue].
type Slider struct {

	// Label shown next to the slider.
	Label string

	// Value is the current value.
	Value float32

	// Min is the minimum value.
	Min float32

	// Max is the maximum value.
	Max float32

	// Step is the increment between values; 0 means continuous.
	Step float32

	onChange []func(v float32)
}

// NewSlider returns a new slider with the given value and range.
func NewSlider(label string, value, min, max, step float32) *Slider {
	return &Slider{Label: label, Value: math32.Clamp(value, min, max), Min: min, Max: max, Step: step}
}

// OnChange adds a function called with the new value whenever it changes.
func (sl *Slider) OnChange(fun func(v float32)) {
	sl.onChange = append(sl.onChange, fun)
}

// SetValue sets the value, snapped to Step and clamped to [Min, Max],
// and calls the change functions if it changed.
// It returns the value that was set.
func (sl *Slider) SetValue(v float32) float32 {
	if sl.Step > 0 {
		v = sl.Min + math32.Round((v-sl.Min)/sl.Step)*sl.Step
	}
	v = math32.Clamp(v, sl.Min, sl.Max)
	if v == sl.Value {
		return v
	}
	sl.Value = v
	for _, fun := range sl.onChange {
		fun(v)
	}
	return v
}
