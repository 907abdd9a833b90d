package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrLabelMisalignment is returned when a label set does not line up with
// the slots produced by Compute.
var ErrLabelMisalignment = errors.New("layout: label set does not match widget slots")

// MisalignmentError describes where a label set diverged from the slots.
type MisalignmentError struct {
	Slots  int
	Labels int
	// Index is the first position whose slot ID differs, or -1 for a
	// pure count mismatch.
	Index int
	Want  SlotID
	Got   SlotID
}

func (e *MisalignmentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %d slots, %d labels", ErrLabelMisalignment, e.Slots, e.Labels)
	}
	return fmt.Sprintf("%v: position %d is %s, label targets %s", ErrLabelMisalignment, e.Index, e.Want, e.Got)
}

func (e *MisalignmentError) Unwrap() error { return ErrLabelMisalignment }

// FontRole selects one of the label font sizes.
type FontRole int

const (
	FontMain FontRole = iota
	FontLetter
	FontExec
)

func (r FontRole) String() string {
	switch r {
	case FontMain:
		return "main"
	case FontLetter:
		return "letter"
	case FontExec:
		return "exec"
	default:
		return fmt.Sprintf("FontRole(%d)", int(r))
	}
}

// ParseFontRole is the inverse of FontRole.String.
func ParseFontRole(s string) (FontRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "":
		return FontMain, nil
	case "letter":
		return FontLetter, nil
	case "exec":
		return FontExec, nil
	default:
		return FontMain, fmt.Errorf("unknown font role %q", s)
	}
}

// Label is the text assigned to one slot. Text may contain "\n".
type Label struct {
	Slot SlotID
	Text string
	Font FontRole
}

// Binding pairs a slot with its label.
type Binding struct {
	Slot  Slot
	Label Label
}

// NewLabel builds a label with its text upper-cased.
func NewLabel(id SlotID, text string, role FontRole) Label {
	return Label{Slot: id, Text: cases.Upper(language.Und).String(text), Font: role}
}

var defaultMainRows = [][]string{
	{"INIT\nREF", "RTE", "CLB", "CRZ", "DES"},
	{"MENU", "LEGS", "DEP\nARR", "HOLD", "PROG"},
	{"N1\nLIMIT", "FIX"},
	{"PREV\nPAGE", "NEXT\nPAGE"},
}

var defaultLetterKeys = []string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T",
	"U", "V", "W", "X", "Y",
	"Z", "SP", "DEL", "/", "CLR",
}

var defaultNumericKeys = []string{
	"1", "2", "3",
	"4", "5", "6",
	"7", "8", "9",
	".", "0", "+/-",
}

// DefaultLabels returns the standard key legends in slot order.
func DefaultLabels() []Label {
	labels := make([]Label, 0, SlotCount)
	for row, keys := range defaultMainRows {
		for col, text := range keys {
			labels = append(labels, NewLabel(SlotID{GroupMain, row, col}, text, FontMain))
		}
	}
	for i, text := range defaultLetterKeys {
		labels = append(labels, NewLabel(SlotID{GroupLetter, i / letterCols, i % letterCols}, text, glyphRole(text)))
	}
	for i, text := range defaultNumericKeys {
		labels = append(labels, NewLabel(SlotID{GroupNumeric, i / numericCols, i % numericCols}, text, glyphRole(text)))
	}
	labels = append(labels, NewLabel(SlotID{GroupExec, 0, 0}, "EXEC", FontExec))
	return labels
}

// glyphRole keeps single-character legends large; longer ones such as
// "CLR" drop to the main size so they fit a letter key.
func glyphRole(text string) FontRole {
	if utf8.RuneCountInString(text) == 1 {
		return FontLetter
	}
	return FontMain
}

// Bind pairs keys with labels position by position. Every position must
// name the same slot, and the lengths must match.
func Bind(keys []Slot, labels []Label) ([]Binding, error) {
	if len(keys) != len(labels) {
		return nil, &MisalignmentError{Slots: len(keys), Labels: len(labels), Index: -1}
	}
	out := make([]Binding, len(keys))
	for i, slot := range keys {
		if slot.ID != labels[i].Slot {
			return nil, &MisalignmentError{
				Slots:  len(keys),
				Labels: len(labels),
				Index:  i,
				Want:   slot.ID,
				Got:    labels[i].Slot,
			}
		}
		out[i] = Binding{Slot: slot, Label: labels[i]}
	}
	return out, nil
}

// Lines splits a label into its display lines.
func (l Label) Lines() []string {
	if l.Text == "" {
		return nil
	}
	return strings.Split(l.Text, "\n")
}
