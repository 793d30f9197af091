package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log: a single extraction run.
type Entry struct {
	RunID       string
	Timestamp   time.Time
	Chain       string
	WindowStart string
	WindowEnd   string
	Duration    time.Duration
	ExitCode    int
}

// Header is the CSV header for run-log.csv.
const Header = "run_id,timestamp,chain,window_start,window_end,duration_ms,exit_code"

const (
	numFields      = 7
	logDir         = "logs"
	logFile        = "logs/run-log.csv"
	colRunID       = 0
	colTimestamp   = 1
	colChain       = 2
	colWindowStart = 3
	colWindowEnd   = 4
	colDuration    = 5
	colExitCode    = 6
)

// FormatRunID returns a run ID like "2024-03-02-001".
func FormatRunID(date time.Time, seq int) string {
	return fmt.Sprintf("%s-%03d", date.Format("2006-01-02"), seq)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colChain] = e.Chain
	row[colWindowStart] = e.WindowStart
	row[colWindowEnd] = e.WindowEnd
	row[colDuration] = strconv.FormatInt(e.Duration.Milliseconds(), 10)
	row[colExitCode] = strconv.Itoa(e.ExitCode)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	ms, err := strconv.ParseInt(record[colDuration], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing duration %q: %w", record[colDuration], err)
	}

	code, err := strconv.Atoi(record[colExitCode])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing exit code %q: %w", record[colExitCode], err)
	}

	return Entry{
		RunID:       record[colRunID],
		Timestamp:   ts,
		Chain:       record[colChain],
		WindowStart: record[colWindowStart],
		WindowEnd:   record[colWindowEnd],
		Duration:    time.Duration(ms) * time.Millisecond,
		ExitCode:    code,
	}, nil
}

// NextSeq returns the next run sequence number for the given date.
func NextSeq(root string, date time.Time) (int, error) {
	entries, err := Read(root)
	if err != nil {
		return 0, err
	}

	prefix := date.Format("2006-01-02") + "-"
	max := 0
	for _, e := range entries {
		if !strings.HasPrefix(e.RunID, prefix) {
			continue
		}
		seq, err := strconv.Atoi(e.RunID[len(prefix):])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1, nil
}

// Append writes entries to <root>/logs/run-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/run-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
