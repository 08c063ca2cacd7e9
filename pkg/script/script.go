// Package script provides a sandboxed Lisp scripting layer over the shape
// algebra. Scripts build shapes, combine them, query them, and drive the
// input-injection collaborator, e.g.:
//
//	(click (circle 200 200 40) :button "right")
//
// Evaluation happens in a fresh zygomys sandbox per call, so scripts cannot
// touch the filesystem and cannot leak state between evaluations.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/tkrell/hitbox/pkg/input"
	"github.com/tkrell/hitbox/pkg/shape"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in script code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the outcome of a successful evaluation.
type Result struct {
	// Value is the printed form of the script's last expression.
	Value string

	// Shape is set when the last expression evaluated to a shape.
	Shape shape.Shape
}

// Engine evaluates shape scripts. It is safe for concurrent use; each call
// to Evaluate creates a fresh sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	injector   input.Injector
}

// NewEngine creates an Engine whose click and hover builtins drive the given
// injector. A nil injector records events into an input.Recorder instead of
// performing them.
func NewEngine(inj input.Injector) *Engine {
	if inj == nil {
		inj = &input.Recorder{}
	}
	return &Engine{injector: inj}
}

// Evaluate runs a script and returns the value of its last expression.
//
// Return semantics:
//   - On success: returns result + nil errors + nil error
//   - On parse/eval failure: returns nil result + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Result, []EvalError, error) {
	// Empty source is a valid program with an empty result.
	if strings.TrimSpace(source) == "" {
		return &Result{}, nil, nil
	}

	// Sandbox mode prevents script code from accessing the filesystem or
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, e.injector)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}

	out, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	res := &Result{}
	if out != nil {
		if ss, ok := out.(*sexpShape); ok {
			res.Shape = ss.s
		}
		res.Value = out.SexpString(nil)
	}
	return res, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, extracting line information from the message where available.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
