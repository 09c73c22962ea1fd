package sonnyjim

import (
	"context"
	"runtime"

	"github.com/conradludgate/sonny-jim/lexer"
)

// YieldAfter is the default token budget a [Task] gives the parser
// before yielding back to the scheduler, matching spec §5's cooperative
// scheduling requirement.
const YieldAfter = 4096

// Resume advances the parser by up to budget tokens (budget <= 0 means
// unbounded), returning done=true once it reaches final accept or a
// terminal error. Calling Resume repeatedly with any budget sequence
// produces the same result as one unbounded call, and the same result
// as [Parse] on the same source — spec property 7.
func (p *Parser) Resume(budget int) (bool, error) {
	if budget <= 0 {
		for {
			done, err := p.step()
			if err != nil || done {
				return done, err
			}
		}
	}
	for i := 0; i < budget; i++ {
		done, err := p.step()
		if err != nil || done {
			return done, err
		}
	}
	return false, nil
}

// Task drives a [Parser] to completion cooperatively, yielding to the Go
// scheduler between fixed-size chunks of work via runtime.Gosched so a
// long parse does not monopolize its goroutine, and honoring ctx
// cancellation between chunks.
type Task struct {
	parser *Parser
	budget int
}

// NewTask wraps p into a Task that advances budget tokens at a time
// (YieldAfter if budget <= 0) between yields.
func NewTask(p *Parser, budget int) *Task {
	if budget <= 0 {
		budget = YieldAfter
	}
	return &Task{parser: p, budget: budget}
}

// Run drives the task to completion, returning the parsed root value or
// the first error encountered. If ctx is canceled between chunks, Run
// returns ctx.Err() without discarding the parser's progress: the same
// *Task can be resumed later with another Run call against a fresh
// context.
func (t *Task) Run(ctx context.Context) (Value, error) {
	for {
		select {
		case <-ctx.Done():
			return Value{}, ctx.Err()
		default:
		}

		done, err := t.parser.Resume(t.budget)
		if err != nil {
			return Value{}, err
		}
		if done {
			return t.parser.Result(), nil
		}
		runtime.Gosched()
	}
}

// ParseCooperative is a convenience entry point: build a [Parser] over
// source in arena and run it to completion as a [Task], yielding every
// YieldAfter tokens.
func ParseCooperative(ctx context.Context, arena *Arena, source string) (Value, error) {
	p := NewParser(arena, lexer.New(source))
	return NewTask(p, YieldAfter).Run(ctx)
}
