// Package console is a line-oriented interactive front end for the queues.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pqueue/pkg/bench"
	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
	"github.com/huynhanx03/go-pqueue/pkg/generator"
)

// Console drives the menus over an input and output stream.
// The heap and array queues live as long as the Console, so their contents
// survive leaving and re-entering a queue menu.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	log    *zap.Logger
	rng    *rand.Rand
	runner *bench.Runner
	csv    string

	queues map[pqueue.Kind]pqueue.PriorityQueue[int]
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger for failed operations.
func WithLogger(l *zap.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSeed makes random fills reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Console) {
		c.rng = generator.NewRand(seed)
	}
}

// WithBench enables the benchmark entry of the main menu. When csvPath is
// not empty the report is also written there as CSV.
func WithBench(r *bench.Runner, csvPath string) Option {
	return func(c *Console) {
		c.runner = r
		c.csv = csvPath
	}
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewScanner(in),
		out: out,
		log: zap.NewNop(),
		rng: generator.NewRand(uint64(time.Now().UnixNano())),
		queues: map[pqueue.Kind]pqueue.PriorityQueue[int]{
			pqueue.KindHeap:  pqueue.NewHeap[int](0),
			pqueue.KindArray: pqueue.NewArray[int](0),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Queue returns the queue of the given kind.
func (c *Console) Queue(kind pqueue.Kind) pqueue.PriorityQueue[int] {
	return c.queues[kind]
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// readLine prompts and returns the next trimmed line. io.EOF ends the session.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts until an integer is entered.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("Invalid input. Try again.")
	}
}

// Run shows the main menu until the user exits, input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println()
		c.println("===== Priority Queue Tester =====")
		c.println("1. Heap-based priority queue")
		c.println("2. Array-based priority queue")
		c.println("3. Run benchmarks")
		c.println("0. Exit")

		choice, err := c.readInt("Choose an option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case 0:
			c.println("Exiting.")
			return nil
		case 1:
			err = c.QueueMenu(ctx, pqueue.KindHeap)
		case 2:
			err = c.QueueMenu(ctx, pqueue.KindArray)
		case 3:
			err = c.runBench(ctx)
		default:
			c.println("Invalid choice. Try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) runBench(ctx context.Context) error {
	if c.runner == nil {
		c.println("Benchmarks are not configured.")
		return nil
	}

	c.println("Running benchmarks...")
	report, err := c.runner.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.log.Error("benchmark failed", zap.Error(err))
		c.printf("Error: %v\n", err)
		return nil
	}
	report.WriteTable(c.out)

	if c.csv != "" {
		if err := report.WriteCSVFile(c.csv); err != nil {
			c.printf("Error: %v\n", err)
			return nil
		}
		c.printf("Results written to %s\n", c.csv)
	}
	return nil
}
