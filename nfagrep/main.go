package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"

	"github.com/mfroeh/thompson/regex"
)

var (
	matchColor    = color.New(color.FgRed)
	headerColor   = color.New(color.FgMagenta)
	lineNumColor  = color.New(color.FgGreen)
	acceptedColor = color.New(color.FgGreen)
	rejectedColor = color.New(color.FgRed)
)

type Globals struct {
	Strict  bool `help:"Reject malformed patterns instead of letting them match less." env:"NFAGREP_STRICT"`
	NoColor bool `help:"Disable colored output." env:"NFAGREP_NO_COLOR"`
}

func (g *Globals) compile(pattern string) (*regex.Regex, error) {
	if g.Strict {
		return regex.CompilePattern(pattern)
	}
	return regex.CompileLenient(pattern), nil
}

type matchCmd struct {
	Pattern string   `arg:"" name:"pattern" help:"Pattern to compile." type:"string"`
	Inputs  []string `arg:"" name:"input" help:"Strings to test against the pattern."`
}

func (c *matchCmd) Run(g *Globals) error {
	re, err := g.compile(c.Pattern)
	if err != nil {
		return err
	}
	printMatches(os.Stdout, re, c.Inputs)
	return nil
}

type grepCmd struct {
	Pattern string   `arg:"" name:"pattern" help:"Pattern that printed lines match as a whole." type:"string"`
	Paths   []string `arg:"" optional:"" name:"path" help:"Paths to search" type:"path"`
}

func (c *grepCmd) Run(g *Globals) error {
	re, err := g.compile(c.Pattern)
	if err != nil {
		return err
	}

	if len(c.Paths) == 0 {
		c.Paths = []string{"."}
	}

	for _, path := range c.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			err = recursivelySearchDir(os.Stdout, path, re)
		} else {
			err = searchFile(os.Stdout, path, re)
		}

		if err != nil {
			return err
		}
	}
	return nil
}

type astCmd struct {
	Pattern string `arg:"" name:"pattern" help:"Pattern to parse." type:"string"`
}

func (c *astCmd) Run(g *Globals) error {
	re, err := g.compile(c.Pattern)
	if err != nil {
		return err
	}
	return printAST(os.Stdout, re.Expr(), !g.NoColor)
}

type dotCmd struct {
	Pattern string `arg:"" name:"pattern" help:"Pattern to compile." type:"string"`
	Output  string `short:"o" default:"-" help:"Output file, - for stdout."`
}

func (c *dotCmd) Run(g *Globals) error {
	re, err := g.compile(c.Pattern)
	if err != nil {
		return err
	}

	if c.Output == "-" {
		return re.NFA().WriteDOT(os.Stdout)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := re.NFA().WriteDOT(f); err != nil {
		return err
	}
	return f.Close()
}

var cli struct {
	Globals

	Match matchCmd `cmd:"" help:"Report which inputs the pattern accepts."`
	Grep  grepCmd  `cmd:"" help:"Recursively search files for lines the pattern accepts."`
	Ast   astCmd   `cmd:"" help:"Print the syntax tree of a pattern."`
	Dot   dotCmd   `cmd:"" help:"Write the automaton of a pattern in Graphviz format."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("nfagrep"),
		kong.Description("Compiles patterns to Thompson automata and matches whole strings and lines against them."),
		kong.UsageOnError(),
	)

	if cli.NoColor {
		color.NoColor = true
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func printMatches(w io.Writer, re *regex.Regex, inputs []string) {
	for _, in := range inputs {
		verdict := rejectedColor.Sprint("rejected")
		if re.Match(in) {
			verdict = acceptedColor.Sprint("accepted")
		}
		fmt.Fprintf(w, "%q: %s\n", in, verdict)
	}
}

func printAST(w io.Writer, expr regex.Expr, colored bool) error {
	fmt.Fprintln(w, expr)

	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(colored)
	_, err := printer.Println(expr)
	return err
}

func recursivelySearchDir(w io.Writer, path string, re *regex.Regex) error {
	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// resolve symlinks
		info, err := os.Stat(path)
		if err != nil {
			// symlinks may be broken, in that case, just ignore them
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}

		// symlink may resolve to a directory, in which case we just ignore it
		if info.IsDir() {
			return nil
		}

		if err := searchFile(w, path, re); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				log.Printf("skipping %s: %v", path, err)
				return nil
			}
			return err
		}
		return nil
	})

	return err
}

func searchFile(w io.Writer, path string, re *regex.Regex) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	matches := re.MatchLines(string(content))
	if len(matches) == 0 {
		return nil
	}

	headerColor.Fprintln(w, path+":")
	for _, n := range matches {
		line := strings.TrimSuffix(lines[n-1], "\r")
		fmt.Fprintf(w, "%s:%s\n", lineNumColor.Sprint(n), matchColor.Sprint(line))
	}
	fmt.Fprintln(w)

	return nil
}
