package fourstate

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ericlevine/barcodelogic"
)

//go:embed resources/usps4cb_bar_to_character.csv
var usps4cbData []byte

// USPSBars is the number of bars of an Intelligent Mail symbol.
const USPSBars = 65

// BarMapping names the character bits that give one bar its descender and
// its ascender. Characters are numbered 0 to 9 for A to J; bits 0 to 12.
type BarMapping struct {
	DescenderChar, DescenderBit int
	AscenderChar, AscenderBit   int
}

// BarTable maps each bar of an Intelligent Mail symbol, left to right.
type BarTable [USPSBars]BarMapping

var uspsTable *BarTable

func init() {
	t, err := LoadTable(bytes.NewReader(usps4cbData))
	if err != nil {
		panic(err)
	}
	uspsTable = t
}

// LoadTable reads a bar-to-character table: one record per bar, written as
// "bar;descender character;descender bit;ascender character;ascender bit"
// with bars numbered from 1. Lines starting with '#' are ignored. Any
// malformed or missing record fails with ErrMissingResource.
func LoadTable(r io.Reader) (*BarTable, error) {
	rd := csv.NewReader(r)
	rd.Comma = ';'
	rd.Comment = '#'
	rd.TrimLeadingSpace = true
	rd.FieldsPerRecord = 5

	var t BarTable
	var seen [USPSBars]bool
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bar table: %v: %w", err, barcodelogic.ErrMissingResource)
		}
		bar, err := strconv.Atoi(rec[0])
		if err != nil || bar < 1 || bar > USPSBars {
			return nil, fmt.Errorf("bar table: bar %q: %w", rec[0], barcodelogic.ErrMissingResource)
		}
		if seen[bar-1] {
			return nil, fmt.Errorf("bar table: bar %d repeated: %w", bar, barcodelogic.ErrMissingResource)
		}
		var m BarMapping
		if m.DescenderChar, m.DescenderBit, err = parseCharBit(rec[1], rec[2]); err != nil {
			return nil, fmt.Errorf("bar table: bar %d descender: %w", bar, err)
		}
		if m.AscenderChar, m.AscenderBit, err = parseCharBit(rec[3], rec[4]); err != nil {
			return nil, fmt.Errorf("bar table: bar %d ascender: %w", bar, err)
		}
		t[bar-1] = m
		seen[bar-1] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("bar table: bar %d missing: %w", i+1, barcodelogic.ErrMissingResource)
		}
	}
	return &t, nil
}

func parseCharBit(char, bit string) (int, int, error) {
	if len(char) != 1 || char[0] < 'A' || char[0] > 'J' {
		return 0, 0, fmt.Errorf("character %q: %w", char, barcodelogic.ErrMissingResource)
	}
	b, err := strconv.Atoi(bit)
	if err != nil || b < 0 || b > 12 {
		return 0, 0, fmt.Errorf("bit %q: %w", bit, barcodelogic.ErrMissingResource)
	}
	return int(char[0] - 'A'), b, nil
}
