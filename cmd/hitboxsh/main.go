// Command hitboxsh is an interactive shell for the shape scripting DSL.
// Each line is evaluated in a fresh sandbox; clicks and hovers are recorded
// and echoed rather than injected, so scripts can be tried safely.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/tkrell/hitbox/pkg/input"
	"github.com/tkrell/hitbox/pkg/script"
)

func main() {
	rec := &input.Recorder{}
	eng := script.NewEngine(rec)

	fmt.Println("hitboxsh: shape algebra shell (ctrl-d to exit)")
	fmt.Println(`try: (click (union (rect 0 0 100 100) (circle 150 50 40)) :button "right")`)

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		line := sc.Text()

		res, evalErrs, err := eng.Evaluate(line)
		if err != nil {
			log.Printf("fatal: %v", err)
			continue
		}
		if len(evalErrs) > 0 {
			for _, e := range evalErrs {
				fmt.Printf("error: %s\n", e.Error())
			}
			continue
		}
		if res.Value != "" {
			fmt.Println(res.Value)
		}

		// Echo and clear any input activity the line produced.
		for _, ev := range rec.Events {
			switch ev.Kind {
			case "move":
				fmt.Printf("[input] move to (%d, %d) over %s\n", ev.X, ev.Y, ev.Duration)
			case "click":
				fmt.Printf("[input] %s click\n", ev.Button)
			}
		}
		rec.Events = rec.Events[:0]
	}
	if err := sc.Err(); err != nil {
		log.Printf("stdin: %v", err)
	}
}
