// Package snapshot saves and restores a whole scoreboard as a flat JSON-like
// object. The reader is a key scanner rather than a JSON parser: it looks up
// each known key by substring and reads the token that follows. Keys that are
// absent keep the value the scoreboard already holds, so loading a partial
// snapshot merges it onto the current state.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
)

// MaxSize is the largest snapshot file Load accepts, in bytes.
const MaxSize = 64 * 1024

var (
	ErrNoPath   = errors.New("snapshot path is empty")
	ErrEmpty    = errors.New("snapshot file is empty")
	ErrTooLarge = fmt.Errorf("snapshot file is larger than %d bytes", MaxSize)
)

// Save writes the scoreboard's snapshot to path, replacing any existing file.
func Save(s *scoreboard.Scoreboard, path string) error {
	return SaveState(s.State(), path)
}

// SaveState writes a snapshot of st to path.
func SaveState(st scoreboard.State, path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(path, Encode(st), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot at path and merges it onto the scoreboard. The
// scoreboard is left untouched when any error is returned.
func Load(s *scoreboard.Scoreboard, path string) error {
	if path == "" {
		return ErrNoPath
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat snapshot: %w", err)
	}
	switch {
	case info.Size() == 0:
		return ErrEmpty
	case info.Size() > MaxSize:
		return ErrTooLarge
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	st := s.State()
	Decode(data, &st)
	s.Restore(st)
	return nil
}

// Encode renders st as a snapshot document.
func Encode(st scoreboard.State) []byte {
	e := &encoder{}
	visit(&st, e)

	var b strings.Builder
	b.WriteString("{\n")
	for i, line := range e.lines {
		b.WriteString("  ")
		b.WriteString(line)
		if i < len(e.lines)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

// Decode overwrites the fields of st that have a key in data.
func Decode(data []byte, st *scoreboard.State) {
	visit(st, &decoder{doc: string(data)})
}

// visitor is handed a pointer to every snapshot field in document order.
type visitor interface {
	Int(key string, v *int)
	Bool(key string, v *bool)
	String(key string, v *string)
}

func visit(st *scoreboard.State, v visitor) {
	v.Int("clock_tenths", &st.ClockTenths)
	v.Bool("clock_running", &st.ClockRunning)
	direction := int(st.ClockDirection)
	v.Int("clock_direction", &direction)
	st.ClockDirection = scoreboard.ClockDirection(direction)
	v.Int("period_length", &st.PeriodLength)
	v.Int("period", &st.Period)
	v.Bool("overtime_enabled", &st.OvertimeEnabled)

	for _, t := range scoreboard.Teams {
		v.String(t.String()+"_name", &st.Team(t).Name)
	}
	for _, t := range scoreboard.Teams {
		v.Int(t.String()+"_score", &st.Team(t).Score)
	}
	for _, t := range scoreboard.Teams {
		v.Int(t.String()+"_shots", &st.Team(t).Shots)
	}

	for _, t := range scoreboard.Teams {
		penalties := &st.Team(t).Penalties
		for i := range penalties {
			prefix := fmt.Sprintf("%s_penalty%d_", t, i)
			v.Int(prefix+"number", &penalties[i].PlayerNumber)
			v.Int(prefix+"tenths", &penalties[i].RemainingTenths)
			v.Bool(prefix+"active", &penalties[i].Active)
		}
	}

	v.Int("default_penalty_duration", &st.DefaultPenaltyDuration)
}

type encoder struct {
	lines []string
}

func (e *encoder) Int(key string, v *int) {
	e.lines = append(e.lines, fmt.Sprintf("%q: %d", key, *v))
}

func (e *encoder) Bool(key string, v *bool) {
	e.lines = append(e.lines, fmt.Sprintf("%q: %t", key, *v))
}

func (e *encoder) String(key string, v *string) {
	e.lines = append(e.lines, fmt.Sprintf("%q: \"%s\"", key, escape(*v)))
}

// escape backslash-escapes quotes and backslashes and nothing else.
func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

type decoder struct {
	doc string
}

// value returns the text following the first "key" that is followed by a
// colon, with the whitespace and colon skipped. Occurrences inside string
// values are not followed by a colon and are passed over.
func (d *decoder) value(key string) (string, bool) {
	pattern := `"` + key + `"`
	doc := d.doc
	for {
		i := strings.Index(doc, pattern)
		if i < 0 {
			return "", false
		}
		rest := strings.TrimLeft(doc[i+len(pattern):], " \t\r\n")
		if strings.HasPrefix(rest, ":") {
			return strings.TrimLeft(rest, " \t\r\n:"), true
		}
		doc = doc[i+len(pattern):]
	}
}

func (d *decoder) Int(key string, v *int) {
	if val, ok := d.value(key); ok {
		*v = scoreboard.Atoi(val)
	}
}

// Bool only accepts literal true or false; anything else keeps v.
func (d *decoder) Bool(key string, v *bool) {
	val, ok := d.value(key)
	switch {
	case !ok:
	case strings.HasPrefix(val, "true"):
		*v = true
	case strings.HasPrefix(val, "false"):
		*v = false
	}
}

// String reads a quoted value. A present key whose value is not quoted
// yields the empty string.
func (d *decoder) String(key string, v *string) {
	val, ok := d.value(key)
	if !ok {
		return
	}
	if !strings.HasPrefix(val, `"`) {
		*v = ""
		return
	}

	var b strings.Builder
	for i := 1; i < len(val) && val[i] != '"'; i++ {
		if val[i] == '\\' && i+1 < len(val) {
			i++
		}
		b.WriteByte(val[i])
	}
	*v = b.String()
}
