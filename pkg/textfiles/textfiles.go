// Package textfiles mirrors the scoreboard into one small text file per field
// so that display tooling can pick values up, and reads those files back.
package textfiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/StreamnDad/streamn-scoreboard/pkg/log"
	"github.com/StreamnDad/streamn-scoreboard/pkg/scoreboard"
)

const (
	ClockFile  = "clock.txt"
	PeriodFile = "period.txt"

	// MaxPenaltyListLength bounds a joined penalty list file in bytes.
	MaxPenaltyListLength = 511
	// maxReadLength bounds how much of each file is parsed.
	maxReadLength = 511
)

// ErrNoOutputDirectory is returned when the scoreboard has no output
// directory configured.
var ErrNoOutputDirectory = errors.New("output directory is not set")

func NameFile(t scoreboard.Team) string {
	return t.String() + "_name.txt"
}

func ScoreFile(t scoreboard.Team) string {
	return t.String() + "_score.txt"
}

func ShotsFile(t scoreboard.Team) string {
	return t.String() + "_shots.txt"
}

func PenaltyNumbersFile(t scoreboard.Team) string {
	return t.String() + "_penalty_numbers.txt"
}

func PenaltyTimesFile(t scoreboard.Team) string {
	return t.String() + "_penalty_times.txt"
}

// Files lists every file written by WriteAll.
func Files() []string {
	files := []string{ClockFile, PeriodFile}
	for _, t := range scoreboard.Teams {
		files = append(files, NameFile(t), ScoreFile(t), ShotsFile(t))
	}
	for _, t := range scoreboard.Teams {
		files = append(files, PenaltyNumbersFile(t), PenaltyTimesFile(t))
	}
	return files
}

// Render returns the content of every file keyed by file name.
func Render(s *scoreboard.Scoreboard) map[string]string {
	out := map[string]string{
		ClockFile:  s.FormatClock(),
		PeriodFile: s.FormatPeriod(),
	}
	for _, t := range scoreboard.Teams {
		out[NameFile(t)] = s.Name(t)
		out[ScoreFile(t)] = strconv.Itoa(s.Score(t))
		out[ShotsFile(t)] = strconv.Itoa(s.Shots(t))
		out[PenaltyNumbersFile(t)] = s.FormatAllPenaltyNumbers(t, MaxPenaltyListLength)
		out[PenaltyTimesFile(t)] = s.FormatAllPenaltyTimes(t, MaxPenaltyListLength)
	}
	return out
}

// WriteAll writes every field file into the scoreboard's output directory.
// It keeps going after a failed file and returns all failures joined.
func WriteAll(s *scoreboard.Scoreboard) error {
	dir := s.OutputDirectory()
	if dir == "" {
		return ErrNoOutputDirectory
	}

	content := Render(s)
	var errs []error
	for _, name := range Files() {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content[name]), 0644); err != nil {
			errs = append(errs, fmt.Errorf("failed to write %s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}

// ReadAll loads the field files from the scoreboard's output directory.
// Every file that exists is applied; each missing file is reported in the
// returned error. Malformed clock or period text leaves that field as is.
func ReadAll(s *scoreboard.Scoreboard) error {
	dir := s.OutputDirectory()
	if dir == "" {
		return ErrNoOutputDirectory
	}

	var errs []error
	read := func(name string) (string, bool) {
		text, err := readFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			return "", false
		}
		return text, true
	}

	if text, ok := read(ClockFile); ok {
		if tenths, ok := scoreboard.ParseClock(text); ok && tenths >= 0 {
			s.SetClockTenths(tenths)
		} else {
			log.Debug("Ignoring malformed clock text %q", text)
		}
	}

	if text, ok := read(PeriodFile); ok {
		if period, ok := scoreboard.ParsePeriod(strings.TrimSpace(text)); ok {
			s.SetPeriod(period)
		} else {
			log.Debug("Ignoring malformed period text %q", text)
		}
	}

	for _, t := range scoreboard.Teams {
		if text, ok := read(NameFile(t)); ok {
			s.SetName(t, text)
		}
		if text, ok := read(ScoreFile(t)); ok {
			s.SetScore(t, scoreboard.Atoi(text))
		}
		if text, ok := read(ShotsFile(t)); ok {
			s.SetShots(t, scoreboard.Atoi(text))
		}
	}

	for _, t := range scoreboard.Teams {
		numbers, okNumbers := read(PenaltyNumbersFile(t))
		times, okTimes := read(PenaltyTimesFile(t))
		if okNumbers && okTimes {
			loadPenalties(s, t, numbers, times)
		}
	}

	return errors.Join(errs...)
}

// loadPenalties replaces the team's penalties with the pairs found on the
// matching lines of the numbers and times texts. Slots are refilled in line
// order, so slot indexes may differ from the ones that were written.
func loadPenalties(s *scoreboard.Scoreboard, t scoreboard.Team, numbers, times string) {
	for slot := 0; slot < scoreboard.MaxPenalties; slot++ {
		s.ClearPenalty(t, slot)
	}
	if numbers == "" || times == "" {
		return
	}

	numberLines := strings.Split(numbers, "\n")
	timeLines := strings.Split(times, "\n")
	for i := 0; i < len(numberLines) && i < len(timeLines); i++ {
		player := 0
		if line := numberLines[i]; strings.HasPrefix(line, "#") {
			player = scoreboard.Atoi(line[1:])
		}
		tenths, ok := scoreboard.ParseClock(timeLines[i])
		if !ok || tenths <= 0 {
			continue
		}
		if s.AddPenalty(t, player, tenths/10) == scoreboard.NoSlot {
			log.Warn("Dropping %s penalty from line %d: no free slot", t, i+1)
		}
	}
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(b) > maxReadLength {
		b = b[:maxReadLength]
	}
	return string(b), nil
}
