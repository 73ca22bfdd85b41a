package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for schedules.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml, json or table)", s)
	}
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s *Schedule, f Format) error {
	switch f {
	case FormatYAML:
		return EncodeYAML(w, s)
	case FormatJSON:
		return EncodeJSON(w, s)
	case FormatTable:
		return EncodeTable(w, s)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// EncodeYAML writes s as a YAML document.
func EncodeYAML(w io.Writer, s *Schedule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// EncodeJSON writes s as indented JSON.
func EncodeJSON(w io.Writer, s *Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// EncodeTable renders one row per session and one column per trial. Nested
// schedules show "label/sub" cells. Warnings follow the table.
func EncodeTable(w io.Writer, s *Schedule) error {
	headers := []string{"session"}
	for j := 0; j < s.TrialsPerSession; j++ {
		headers = append(headers, strconv.Itoa(j+1))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, sess := range s.Sessions {
		row := make([]string, 0, len(sess)+1)
		row = append(row, strconv.Itoa(i+1))
		for j, code := range sess {
			if s.Conditions != nil {
				code = s.Conditions[i][j] + "/" + code
			}
			row = append(row, code)
		}
		t.Row(row...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, shuffle=%s)\n", s.Name, s.ID, s.Shuffle)
	b.WriteString(t.Render())
	b.WriteString("\n")
	for _, warn := range s.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", warn)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// EncodeSummary writes per-session code counts, codes sorted.
func EncodeSummary(w io.Writer, s *Schedule) error {
	var b strings.Builder
	for i, counts := range s.Summary() {
		codes := make([]string, 0, len(counts))
		for c := range counts {
			codes = append(codes, c)
		}
		sort.Strings(codes)

		parts := make([]string, len(codes))
		for k, c := range codes {
			parts[k] = fmt.Sprintf("%s=%d", c, counts[c])
		}
		fmt.Fprintf(&b, "session %d: %s\n", i+1, strings.Join(parts, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
