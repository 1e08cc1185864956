package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner shows activity while watch mode idles between clipboard polls.
type Spinner struct {
	mu         sync.Mutex
	writer     io.Writer
	frames     []string
	frameIndex int
	message    string
	running    bool
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

// NewSpinner creates a new spinner with default frames.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		writer:  os.Stderr,
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		message: message,
	}
}

// SetWriter sets a custom writer for the spinner.
func (s *Spinner) SetWriter(w io.Writer) {
	s.writer = w
}

// SetMessage updates the message shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Start starts the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.animate()
}

// Stop stops the spinner animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	fmt.Fprint(s.writer, "\r\033[K")
}

func (s *Spinner) animate() {
	defer s.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := s.frames[s.frameIndex%len(s.frames)]
			s.frameIndex++
			message := s.message
			s.mu.Unlock()
			fmt.Fprintf(s.writer, "\r%s %s", frame, message)
		}
	}
}
