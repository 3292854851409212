package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// main() reads literals from stdin, one per line, and prints each one after
// converting it to the structure selected by flags. If stdin is a terminal,
// main() starts an interactive session instead.
func main() {
	// set up configuration and logging
	initDisplay()
	if err := initConfig(defaultConfig()); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error], overrides configuration")
	kind := flag.String("kind", "int", "Element kind [int|float|text]")
	as := flag.String("as", "seq", "Structure [seq|matrix|chain|dchain|tree]")
	order := flag.String("order", "inorder", "Tree traversal [inorder|preorder|postorder|levelorder]")
	sparse := flag.Bool("sparse", sparseDefault(), "Tree literals may contain null entries")
	rot := flag.Bool("rotate", false, "Rotate square matrices by 90° clockwise")
	shape := flag.Bool("shape", false, "Draw trees on the terminal")
	flag.Parse()
	setTraceLevel(*tlevel)
	tracer().Debugf("trace level is %s", tracer().GetTraceLevel())
	//
	j, err := newJob(*kind, *as, *order)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	j.sparse, j.rotate, j.shape = *sparse, *rot, *shape
	j.errh = func(e error) {
		gtrace.SyntaxTracer.Errorf("%v", e)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if err := startREPL(j); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		return
	}
	if failed := batch(j, os.Stdin, os.Stdout); failed > 0 {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// batch converts every non-empty line of r and writes the results to w.
// It returns the number of lines which could not be converted.
func batch(j *job, r io.Reader, w io.Writer) int {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineno, failed := 0, 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out, err := j.run(line)
		if err != nil {
			tracer().Errorf("line %d: %v", lineno, err)
			failed++
			continue
		}
		fmt.Fprintln(w, out)
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("error while reading input: %v", err)
		failed++
	}
	return failed
}
