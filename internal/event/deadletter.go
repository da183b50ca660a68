package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// DeadLetterFormat versions the layout of a dead-letter line
const DeadLetterFormat = 1

// DeadLetter is one garden event that could not be delivered. Profile and type
// are copied out of the event so a file can be filtered without decoding payloads.
type DeadLetter struct {
	Format    int       `json:"format"`
	FailedAt  time.Time `json:"failed_at"`
	ProfileID string    `json:"profile_id,omitempty"`
	Type      Type      `json:"type"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	Event     Event     `json:"event"`
}

// DeadLetterWriter appends undeliverable events to a JSON-lines file
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter file %s: %w", path, err)
	}
	return &DeadLetterWriter{file: f, now: time.Now}, nil
}

// Write records ev after it failed attempts times
func (w *DeadLetterWriter) Write(ev Event, attempts int, lastErr error) error {
	dl := DeadLetter{
		Format:    DeadLetterFormat,
		FailedAt:  w.now().UTC(),
		ProfileID: ev.ProfileID(),
		Type:      ev.Type,
		Attempts:  attempts,
		Event:     ev,
	}
	if lastErr != nil {
		dl.LastError = lastErr.Error()
	}

	line, err := json.Marshal(dl)
	if err != nil {
		return fmt.Errorf("encode dead letter for %s: %w", ev.Type, err)
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err = w.file.Write(line)
	return err
}

// Close closes the file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters returns every entry in a dead-letter file, oldest first.
// A missing file holds no entries.
func ReadDeadLetters(path string) ([]DeadLetter, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []DeadLetter
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var dl DeadLetter
		if err := json.Unmarshal(sc.Bytes(), &dl); err != nil {
			return out, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		out = append(out, dl)
	}
	return out, sc.Err()
}
