package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// Intp is our interactive session.
type Intp struct {
	job  *job
	repl *readline.Instance
}

func startREPL(j *job) error {
	repl, err := readline.New("brack> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to brack")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp := &Intp{job: j, repl: repl}
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval converts a literal, given on a line by itself, or executes a
// command starting with ':'.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	out, err := intp.job.run(line)
	if err != nil {
		return false, err
	}
	pterm.Info.Println(out)
	return false, nil
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("empty command")
	}
	if args[0] == "quit" || args[0] == "q" {
		return true, nil
	}
	if len(args) != 2 {
		return false, fmt.Errorf("usage: :%s <value>", args[0])
	}
	j, value := intp.job, args[1]
	var err error
	switch args[0] {
	case "kind":
		err = j.setKind(value)
	case "as":
		err = j.setStructure(value)
	case "order":
		err = j.setOrder(value)
	case "sparse":
		err = setOnOff(&j.sparse, value)
	case "rotate":
		err = setOnOff(&j.rotate, value)
	case "shape":
		err = setOnOff(&j.shape, value)
	default:
		err = fmt.Errorf("unknown command :%s", args[0])
	}
	if err == nil {
		tracer().Infof("%s = %s", args[0], value)
	}
	return false, err
}

// setOnOff leaves flag untouched if s is neither on nor off.
func setOnOff(flag *bool, s string) error {
	on, err := onOff(s)
	if err == nil {
		*flag = on
	}
	return err
}

func onOff(s string) (bool, error) {
	switch s {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, have %q", s)
}
