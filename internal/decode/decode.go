// Package decode force-decodes a match's surrounding bytes with a fixed
// set of character encodings and renders the attempts as a table. There
// is no charset detection; every encoding in the list is attempted and
// the reader judges the results.
package decode

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/olekukonko/tablewriter"

	"github.com/rulegaze/rulegaze/internal/bytesmatch"
)

// Attempt is one decoding of the match window.
type Attempt struct {
	Encoding string
	Output   string
	Failed   bool
	Forced   bool
	score    float64
}

// Options gate which matches get the full decode treatment.
type Options struct {
	MinLength int
	MaxLength int
	Suppress  bool
}

// Decoder decodes one match's surrounding bytes.
type Decoder struct {
	match *bytesmatch.Match
	opts  Options
}

func New(m *bytesmatch.Match, opts Options) *Decoder {
	return &Decoder{match: m, opts: opts}
}

// suppressed reports whether decode attempts are skipped for this match.
// The raw and hex rows are always shown.
func (d *Decoder) suppressed() bool {
	if d.opts.Suppress {
		return true
	}
	n := d.match.Length
	return (d.opts.MinLength > 0 && n < d.opts.MinLength) ||
		(d.opts.MaxLength > 0 && n > d.opts.MaxLength)
}

// Attempts returns every decoding row, best first. Duplicate outputs are
// folded into "same output as X" rows so the table stays readable.
func (d *Decoder) Attempts() []Attempt {
	raw := d.match.Surrounding()
	rows := []Attempt{
		{Encoding: "raw bytes", Output: CleanBytes(raw), score: 200},
		{Encoding: "hex", Output: hex.EncodeToString(raw), score: 190},
	}
	if !d.suppressed() {
		rows = append(rows, attemptAll(raw)...)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].score > rows[j].score })

	seen := map[uint64]string{}
	for i := range rows {
		if rows[i].Failed {
			continue
		}
		key := xxhash.Sum64String(rows[i].Output)
		if prev, dup := seen[key]; dup {
			rows[i].Output = "same output as " + prev + "..."
		} else {
			seen[key] = rows[i].Encoding
		}
	}
	return rows
}

func attemptAll(raw []byte) []Attempt {
	return []Attempt{
		attemptUTF8(raw),
		attemptASCII(raw),
		attemptLatin1(raw),
		attemptUTF16(raw, "utf-16le", false),
		attemptUTF16(raw, "utf-16be", true),
		attemptBase64(raw),
	}
}

func attemptUTF8(raw []byte) Attempt {
	a := Attempt{Encoding: "utf-8", score: 100}
	if utf8.Valid(raw) {
		a.Output = string(raw)
		return a
	}
	a.Forced = true
	a.score -= 10
	a.Output = strings.ToValidUTF8(string(raw), "�")
	return a
}

func attemptASCII(raw []byte) Attempt {
	a := Attempt{Encoding: "ascii", score: 90}
	forced := false
	var b strings.Builder
	for _, c := range raw {
		if c < 0x80 {
			b.WriteByte(c)
		} else {
			forced = true
			b.WriteByte('.')
		}
	}
	a.Output = b.String()
	if forced {
		a.Forced = true
		a.score -= 10
	}
	return a
}

func attemptLatin1(raw []byte) Attempt {
	runes := make([]rune, len(raw))
	for i, c := range raw {
		runes[i] = rune(c)
	}
	return Attempt{Encoding: "iso-8859-1", Output: string(runes), score: 80}
}

func attemptUTF16(raw []byte, name string, bigEndian bool) Attempt {
	a := Attempt{Encoding: name, score: 70}
	if len(raw)%2 != 0 {
		a.Failed = true
		a.score = -100 - a.score
		a.Output = "(odd byte length)"
		return a
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		if bigEndian {
			units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		} else {
			units[i] = uint16(raw[2*i+1])<<8 | uint16(raw[2*i])
		}
	}
	a.Output = string(utf16.Decode(units))
	return a
}

func attemptBase64(raw []byte) Attempt {
	a := Attempt{Encoding: "base64", score: 60}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		a.Failed = true
		a.score = -100 - a.score
		a.Output = "(not base64)"
		return a
	}
	a.Output = CleanBytes(decoded)
	return a
}

// WriteTable renders the attempts to w, headed by the match headline.
func (d *Decoder) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "\nFound %s\n", d.match.Headline().String())

	table := tablewriter.NewTable(w)
	table.Header("Encoding", "Forced", "Decoded Output")
	for _, a := range d.Attempts() {
		forced := ""
		if a.Forced {
			forced = "Yes"
		}
		if a.Failed {
			forced = "Failed"
		}
		table.Append(a.Encoding, forced, a.Output)
	}
	table.Render()
}
