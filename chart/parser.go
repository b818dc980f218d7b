package chart

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-draw/sample"
)

// Options holds the base options every tool shares.
type Options struct {
	// InFile is the positional input path; empty means standard input.
	InFile string
	// OutFile is the required output image path.
	OutFile string
	// Type is the sample type selected by a +code flag.
	Type sample.Type
	// LZ4 reports whether the input is an LZ4 frame stream.
	LZ4 bool
	// Layout controls figure size, margins and fonts.
	Layout Layout
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithInput accepts an optional positional input file described by help.
func WithInput(help string) ParserOption {
	return func(p *Parser) {
		p.input = true
		p.inputHelp = help
	}
}

// WithDataType accepts +c, +C, +s, +S, +i, +I, +l, +L, +f and +d.
func WithDataType() ParserOption {
	return func(p *Parser) {
		p.dataType = true
	}
}

// WithPipeRequired makes a missing input file an error unless standard
// input is redirected.
func WithPipeRequired() ParserOption {
	return func(p *Parser) {
		p.requirePipe = true
	}
}

// Parser is a flag set preloaded with the base figure options. Tools add
// their own flags to Flags before calling Parse.
type Parser struct {
	Name        string
	Description string
	Flags       *flag.FlagSet
	Options     Options

	input       bool
	inputHelp   string
	dataType    bool
	requirePipe bool
	ranges      map[string]bool
	margin      marginValue
	out         io.Writer
}

// NewParser returns a Parser for the tool name with the base options
// registered.
func NewParser(name, description string, opts ...ParserOption) *Parser {
	p := &Parser{
		Name:        name,
		Description: description,
		Flags:       flag.NewFlagSet(name, flag.ContinueOnError),
		ranges:      make(map[string]bool),
		out:         io.Discard,
		Options: Options{
			Type:   sample.DefaultType,
			Layout: DefaultLayout(),
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	l := &p.Options.Layout
	p.Flags.Float64Var(&l.Scale, "F", l.Scale, "scale of the output image")
	p.Flags.IntVar(&l.Width, "W", l.Width, "width of the output image [px]")
	p.Flags.IntVar(&l.Height, "H", l.Height, "height of the output image [px]")
	p.Flags.Var(&p.margin, "M", "margin around the figure [px]: m, lr,tb or l,r,t,b")
	p.Flags.StringVar(&l.FontFamily, "ff", l.FontFamily, "font family (sans, serif or mono)")
	p.Flags.IntVar(&l.FontSize, "fs", l.FontSize, "font size [pt]")
	p.Flags.BoolVar(&p.Options.LZ4, "lz4", false, "input is an LZ4 frame stream")
	p.Flags.Usage = func() {}
	p.Flags.SetOutput(io.Discard)

	return p
}

// SetOutput sets the destination for the -h help text.
func (p *Parser) SetOutput(w io.Writer) {
	p.out = w
}

// Range registers a two-value flag "-name MIN MAX".
func (p *Parser) Range(name, usage string) *Range {
	r := &Range{}
	p.Flags.Var(r, name, usage)
	p.ranges[name] = true
	return r
}

// Parse parses args. Flags and positional arguments may be interleaved
// until a "--" terminator, after which every argument is positional; the
// positionals are [infile] outfile when WithInput is set and outfile
// otherwise.
func (p *Parser) Parse(args []string) error {
	args, err := p.expand(args)
	if err != nil {
		return err
	}

	var positional []string
	for {
		if err := p.Flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				p.usage()
			}
			return err
		}
		rest := p.Flags.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		args = rest
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	limit := 1
	if p.input {
		limit = 2
	}
	switch {
	case len(positional) == 0:
		return Usagef("the output file is required")
	case len(positional) > limit:
		return Usagef("unexpected argument %s", positional[limit])
	case len(positional) == 2:
		p.Options.InFile = positional[0]
		p.Options.OutFile = positional[1]
	default:
		p.Options.OutFile = positional[0]
	}

	if p.margin.set {
		m := p.margin.m
		p.Options.Layout.Margin = &m
	}
	return p.Options.Layout.validate()
}

// expand rewrites +type flags and joins the two values of range flags so
// the flag package sees one argument.
func (p *Parser) expand(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...), nil
		}

		if p.dataType && len(arg) > 1 && arg[0] == '+' {
			t, err := sample.ParseType(arg[1:])
			if err != nil {
				return nil, Usagef("unknown data type %s", arg)
			}
			p.Options.Type = t
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if strings.HasPrefix(arg, "-") && p.ranges[name] && !strings.Contains(name, "=") {
			if i+2 >= len(args) {
				return nil, Usagef("argument -%s expects two values", name)
			}
			out = append(out, arg, args[i+1]+","+args[i+2])
			i += 2
			continue
		}

		out = append(out, arg)
	}
	return out, nil
}

func (p *Parser) usage() {
	w := p.out
	p.Flags.SetOutput(w)
	defer p.Flags.SetOutput(io.Discard)

	args := "outfile"
	if p.input {
		args = "[infile] outfile"
	}
	types := ""
	if p.dataType {
		types = " [+type]"
	}
	_, _ = fmt.Fprintf(w, "%s - %s\n\nUsage: %s [options]%s %s\n", p.Name, p.Description, p.Name, types, args)
	if p.input {
		_, _ = fmt.Fprintf(w, "\n  infile\n    \t%s (default: standard input)\n", p.inputHelp)
	}
	_, _ = fmt.Fprintf(w, "  outfile\n    \toutput figure (png, jpg, tif, svg, pdf or eps)\n\nOptions:\n")
	p.Flags.PrintDefaults()
	if p.dataType {
		_, _ = fmt.Fprintln(w, "  +type\n    \tinput data type:")
		for _, t := range sample.Types() {
			_, _ = fmt.Fprintf(w, "    \t  +%s  %s (%d bytes)\n", t.Code(), t, t.Size())
		}
	}
}

// Range is a flag value holding a "min max" pair.
type Range struct {
	Min, Max float64
	IsSet    bool
}

// String implements flag.Value.
func (r *Range) String() string {
	if r == nil || !r.IsSet {
		return ""
	}
	return strconv.FormatFloat(r.Min, 'g', -1, 64) + " " + strconv.FormatFloat(r.Max, 'g', -1, 64)
}

// Set implements flag.Value. It takes "min,max".
func (r *Range) Set(s string) error {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expected two values, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return err
	}
	r.Min, r.Max, r.IsSet = a, b, true
	return nil
}

// Optional is a float flag that records whether it was given.
type Optional struct {
	Value float64
	IsSet bool
}

// String implements flag.Value.
func (o *Optional) String() string {
	if o == nil || !o.IsSet {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

// Set implements flag.Value.
func (o *Optional) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.Value, o.IsSet = v, true
	return nil
}

// Or returns the value if set and def otherwise.
func (o *Optional) Or(def float64) float64 {
	if o.IsSet {
		return o.Value
	}
	return def
}

// Choice is a string flag restricted to a fixed set of values.
type Choice struct {
	Value   string
	choices []string
}

// NewChoice returns a Choice with a default value.
func NewChoice(def string, choices ...string) *Choice {
	return &Choice{Value: def, choices: choices}
}

// String implements flag.Value.
func (c *Choice) String() string {
	if c == nil {
		return ""
	}
	return c.Value
}

// Set implements flag.Value.
func (c *Choice) Set(s string) error {
	for _, v := range c.choices {
		if s == v {
			c.Value = s
			return nil
		}
	}
	return fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(c.choices, ", "))
}

type marginValue struct {
	m   Margin
	set bool
}

func (v *marginValue) String() string {
	if v == nil || !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", v.m.Left, v.m.Right, v.m.Top, v.m.Bottom)
}

func (v *marginValue) Set(s string) error {
	m, err := ParseMargin(s)
	if err != nil {
		return err
	}
	v.m, v.set = m, true
	return nil
}
