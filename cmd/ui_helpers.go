// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

var spinnerFrames = []string{"-", "\\", "|", "/"}

// spinner is a single-line progress indicator drawn in a pterm area.
// The text can be changed while it runs; Stop removes the line.
type spinner struct {
	mu   sync.Mutex
	text string

	area *pterm.AreaPrinter
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// startSpinner hides the cursor, creates an area and starts a goroutine that
// redraws the animation frame and current text at a fixed interval.
func startSpinner(text string) *spinner {
	s := &spinner{text: text, stop: make(chan struct{})}

	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return s
	}
	s.area = area

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-t.C:
				s.mu.Lock()
				line := fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], s.text)
				s.mu.Unlock()
				area.Update(line)
				i++
			case <-s.stop:
				return
			}
		}
	}()
	return s
}

// Update replaces the text shown next to the animation.
func (s *spinner) Update(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Stop ends the animation, clears the area and shows the cursor again.
// It is safe to call more than once.
func (s *spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
		if s.area != nil {
			_ = s.area.Stop()
			cursor.Show()
		}
	})
}
