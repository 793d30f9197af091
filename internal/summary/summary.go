package summary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/firextract-dev/firextract/internal/model"
)

// Key groups totals by receiving account and token symbol.
type Key struct {
	Account string
	Token   string
}

// Totals aggregates an extractor output file.
type Totals struct {
	Received  map[Key]decimal.Decimal
	Transfers int
	Skipped   int
}

// maxLineBytes bounds a single JSONL record; memos can be large.
const maxLineBytes = 1 << 20

// ReadFile aggregates the JSONL file at path.
func ReadFile(path string) (*Totals, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read aggregates JSONL transfer records from r. Malformed lines are
// skipped and counted, not fatal.
func Read(r io.Reader) (*Totals, error) {
	totals := &Totals{Received: make(map[Key]decimal.Decimal)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var transfer model.Transfer
		if err := json.Unmarshal([]byte(line), &transfer); err != nil {
			totals.Skipped++
			continue
		}

		key := Key{Account: transfer.To, Token: transfer.Token}
		totals.Received[key] = totals.Received[key].Add(transfer.Amount)
		totals.Transfers++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning records: %w", err)
	}

	return totals, nil
}

// Render writes an aligned per-account table followed by a one-line count.
func (t *Totals) Render(w io.Writer) error {
	keys := make([]Key, 0, len(t.Received))
	for k := range t.Received {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Account != keys[j].Account {
			return keys[i].Account < keys[j].Account
		}
		return keys[i].Token < keys[j].Token
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tTOKEN\tRECEIVED")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Account, k.Token, t.Received[k].String())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Fprintf(w, "\n%d transfers", t.Transfers)
	if t.Skipped > 0 {
		fmt.Fprintf(w, ", %d malformed lines skipped", t.Skipped)
	}
	fmt.Fprintln(w)
	return nil
}
