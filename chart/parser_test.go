package chart

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/cwbudde/algo-draw/sample"
)

func TestParsePositionalsInterleaved(t *testing.T) {
	p := NewParser("gtest", "test tool", WithInput("input sequence"))
	grid := p.Flags.Bool("g", false, "grid")
	start := p.Flags.Int("s", 0, "start")

	if err := p.Parse([]string{"in.d", "-g", "out.png", "-s", "3"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Options.InFile != "in.d" || p.Options.OutFile != "out.png" {
		t.Fatalf("files = %q, %q", p.Options.InFile, p.Options.OutFile)
	}
	if !*grid || *start != 3 {
		t.Fatalf("flags = %v, %d", *grid, *start)
	}
}

func TestParseOutfileOnly(t *testing.T) {
	p := NewParser("gtest", "test tool", WithInput("input"))
	if err := p.Parse([]string{"out.svg"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Options.InFile != "" || p.Options.OutFile != "out.svg" {
		t.Fatalf("files = %q, %q", p.Options.InFile, p.Options.OutFile)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input bool
		args  []string
	}{
		{name: "missing outfile", input: true, args: []string{"-g"}},
		{name: "too many positionals", input: true, args: []string{"a", "b", "c"}},
		{name: "infile not accepted", input: false, args: []string{"a", "b"}},
		{name: "bad margin count", args: []string{"-M", "1,2,3", "out.png"}},
		{name: "bad scale", args: []string{"-F", "0", "out.png"}},
		{name: "unknown flag", args: []string{"-nope", "out.png"}},
		{name: "unknown font", args: []string{"-ff", "fantasy", "out.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []ParserOption
			if tt.input {
				opts = append(opts, WithInput("input"))
			}
			p := NewParser("gtest", "test tool", opts...)
			p.Flags.Bool("g", false, "grid")
			if err := p.Parse(tt.args); err == nil {
				t.Fatalf("Parse(%v) expected error", tt.args)
			}
		})
	}
}

func TestParseDataType(t *testing.T) {
	p := NewParser("gtest", "test tool", WithInput("input"), WithDataType())
	if err := p.Parse([]string{"+s", "in", "out.png"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Options.Type != sample.TypeInt16 {
		t.Fatalf("Type = %v, want short", p.Options.Type)
	}

	p = NewParser("gtest", "test tool", WithDataType())
	err := p.Parse([]string{"+q", "out.png"})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("Parse(+q) error = %v, want ErrUsage", err)
	}

	p = NewParser("gtest", "test tool")
	if err := p.Parse([]string{"out.png"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Options.Type != sample.TypeFloat64 {
		t.Fatalf("default Type = %v, want double", p.Options.Type)
	}
}

func TestParseRange(t *testing.T) {
	p := NewParser("gtest", "test tool")
	y := p.Range("y", "y-axis limits")
	x := p.Range("x", "x-axis limits")

	if err := p.Parse([]string{"-y", "-1.5", "2", "out.png"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !y.IsSet || y.Min != -1.5 || y.Max != 2 {
		t.Fatalf("y = %+v", *y)
	}
	if x.IsSet {
		t.Fatalf("x unexpectedly set: %+v", *x)
	}

	p = NewParser("gtest", "test tool")
	p.Range("y", "y-axis limits")
	if err := p.Parse([]string{"out.png", "-y", "1"}); err == nil {
		t.Fatal("Parse() with one range value expected error")
	}
}

func TestParseTerminator(t *testing.T) {
	p := NewParser("gtest", "test tool", WithInput("input"))
	grid := p.Flags.Bool("g", false, "grid")
	if err := p.Parse([]string{"-g", "--", "in.bin", "-o.png"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !*grid {
		t.Fatal("-g before the terminator was not parsed")
	}
	if p.Options.InFile != "in.bin" || p.Options.OutFile != "-o.png" {
		t.Fatalf("InFile, OutFile = %q, %q", p.Options.InFile, p.Options.OutFile)
	}

	p = NewParser("gtest", "test tool")
	p.Range("y", "y-axis limits")
	if err := p.Parse([]string{"--", "-y"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Options.OutFile != "-y" {
		t.Fatalf("OutFile = %q, want -y", p.Options.OutFile)
	}
}

func TestParseMargin(t *testing.T) {
	tests := []struct {
		in   string
		want Margin
		ok   bool
	}{
		{in: "10", want: Margin{10, 10, 10, 10}, ok: true},
		{in: "10,20", want: Margin{10, 10, 20, 20}, ok: true},
		{in: "1,2,3,4", want: Margin{1, 2, 3, 4}, ok: true},
		{in: "1,2,3"},
		{in: "a"},
		{in: "-1"},
	}

	for _, tt := range tests {
		got, err := ParseMargin(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseMargin(%q) error = %v, ok %v", tt.in, err, tt.ok)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseMargin(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseMarginSetsLayout(t *testing.T) {
	p := NewParser("gtest", "test tool")
	if err := p.Parse([]string{"-M", "5,6", "-W", "300", "-fs", "9", "out.png"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	l := p.Options.Layout
	if l.Margin == nil || *l.Margin != (Margin{5, 5, 6, 6}) {
		t.Fatalf("Margin = %+v", l.Margin)
	}
	if l.Width != 300 || l.Height != defaultHeight || l.FontSize != 9 {
		t.Fatalf("Layout = %+v", l)
	}
}

func TestParseHelp(t *testing.T) {
	var buf bytes.Buffer
	p := NewParser("gtest", "test tool", WithInput("input"), WithDataType())
	p.SetOutput(&buf)

	err := p.Parse([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse(-h) error = %v, want flag.ErrHelp", err)
	}
	out := buf.String()
	for _, want := range []string{"Usage: gtest", "+d", "-W"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help missing %q:\n%s", want, out)
		}
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice("solid", LineStyles...)
	if err := c.Set("dash"); err != nil || c.Value != "dash" {
		t.Fatalf("Set(dash) = %v, value %q", err, c.Value)
	}
	if err := c.Set("wavy"); err == nil {
		t.Fatal("Set(wavy) expected error")
	}
	if c.Value != "dash" {
		t.Fatalf("value changed on error: %q", c.Value)
	}
}

func TestOptional(t *testing.T) {
	var o Optional
	if got := o.Or(4); got != 4 {
		t.Fatalf("unset Or(4) = %v", got)
	}
	if err := o.Set("2.5"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := o.Or(4); got != 2.5 {
		t.Fatalf("Or(4) = %v, want 2.5", got)
	}
}
