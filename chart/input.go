package chart

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cwbudde/algo-draw/sample"
)

// Env is the process environment a tool runs against.
type Env struct {
	Stdin  io.Reader
	Stderr io.Writer
	// StdinPiped reports whether standard input is a pipe or a redirected
	// file rather than a terminal.
	StdinPiped bool
}

// OSEnv returns the environment of the running process.
func OSEnv() Env {
	return Env{
		Stdin:      os.Stdin,
		Stderr:     os.Stderr,
		StdinPiped: isPiped(os.Stdin),
	}
}

func isPiped(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode&os.ModeNamedPipe != 0 || mode.IsRegular()
}

// Reporter returns a Reporter for the parser's tool writing to env.Stderr,
// and directs help output there as well.
func (p *Parser) Reporter(env Env) *Reporter {
	p.SetOutput(env.Stderr)
	return NewReporter(p.Name, env.Stderr)
}

// Open resolves the positional input against standard input. A file given
// while standard input is piped is an error, as is a file that does not
// exist. The caller closes the returned reader.
func (p *Parser) Open(env Env) (io.ReadCloser, error) {
	in := p.Options.InFile
	switch {
	case in != "" && env.StdinPiped:
		return nil, Usagef("Too many input files")
	case in == "" && p.requirePipe && !env.StdinPiped:
		return nil, Usagef("Input file is not given")
	}
	return p.OpenPath(env, in)
}

// OpenPath opens path, or standard input when path is empty.
func (p *Parser) OpenPath(env Env, path string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if path == "" {
		if env.Stdin == nil {
			return nil, Usagef("Input file is not given")
		}
		rc = io.NopCloser(env.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, Usagef("Cannot open %s", path)
			}
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		rc = f
	}

	if !p.Options.LZ4 {
		return rc, nil
	}
	return readCloser{Reader: sample.NewLZ4Reader(rc), Closer: rc}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// ReadInput decodes the positional input (or standard input) into records
// of dim values of the selected type.
func (p *Parser) ReadInput(env Env, dim int) (sample.Array, error) {
	rc, err := p.Open(env)
	if err != nil {
		return sample.Array{}, err
	}
	return p.decode(env, rc, dim)
}

// ReadPath decodes path, or standard input when path is empty.
func (p *Parser) ReadPath(env Env, path string, dim int) (sample.Array, error) {
	rc, err := p.OpenPath(env, path)
	if err != nil {
		return sample.Array{}, err
	}
	return p.decode(env, rc, dim)
}

func (p *Parser) decode(env Env, rc io.ReadCloser, dim int) (sample.Array, error) {
	defer rc.Close()

	res, err := sample.Read(rc, p.Options.Type, dim)
	if err != nil {
		return sample.Array{}, err
	}
	if res.Discarded > 0 {
		NewReporter(p.Name, env.Stderr).Warn(fmt.Sprintf(
			"Ignored %d trailing bytes that do not form a complete record", res.Discarded))
	}
	return res.Array, nil
}
