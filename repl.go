package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// REPL evaluates PreTee lines interactively against one shared program.
type REPL struct {
	output  io.Writer
	program *Program
	prompt  string
}

func newREPL(output io.Writer, log logrus.FieldLogger) *REPL {
	return &REPL{
		output:  output,
		program: NewProgram(&ParseOptions{Logger: log}),
		prompt:  "pretee> ",
	}
}

// Loop will run until the user enters "exit", Ctrl+C, Ctrl+D, or an unexpected error occurs.
func (r *REPL) Loop() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(r.prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.output, "Exiting")
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "exit" {
			return nil
		}

		r.OneShot(input)
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
	}
}

// OneShot parses and executes a single line, printing any output or error.
func (r *REPL) OneShot(input string) {
	tree, err := r.program.ParseLine(input)
	if err != nil {
		errorColor.Fprintf(r.output, "Line %d: %s\n", r.program.lineNum, err.Error())
		return
	}
	if tree == nil {
		return
	}
	if err := r.program.Exec(tree, r.output); err != nil {
		var rt *RuntimeError
		if errors.As(err, &rt) {
			errorColor.Fprintf(r.output, "*** Runtime error: %s\n", rt.Error())
			return
		}
		errorColor.Fprintf(r.output, "error: %v\n", err)
	}
}
