package demo

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/logger"
	"github.com/oshokin/ab-modules/internal/service/session"
)

// Default operands of the demo.
const (
	DefaultFirstNumber  = 15
	DefaultSecondNumber = 8
)

// Options controls the demo run.
type Options struct {
	// Threshold is the alarm threshold.
	Threshold int
	// FirstNumber and SecondNumber are the operands of both calculations.
	FirstNumber, SecondNumber int
	// Out receives the demo output; os.Stdout when nil.
	Out io.Writer
}

// DefaultOptions returns the operands and threshold of the classic demo.
func DefaultOptions() *Options {
	return &Options{
		Threshold:    config.DefaultThreshold,
		FirstNumber:  DefaultFirstNumber,
		SecondNumber: DefaultSecondNumber,
	}
}

// Run adds and multiplies the operands, records each step, checks each
// result against the alarm and prints the operation log.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "demo")

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	p := &printer{out: out}

	s := session.New(opts.Threshold)
	calc := s.Evaluator()

	p.println("=== AB Modules Demo ===")

	s.Record(ctx, "Starting calculations")

	p.printf("Computing: %d + %d\n", opts.FirstNumber, opts.SecondNumber)

	result := calc.Add(opts.FirstNumber, opts.SecondNumber)

	s.Record(ctx, "Addition completed")
	p.printf("Result: %d\n", result)

	if s.Check(ctx, result) {
		p.println("Notification: Result exceeded threshold!")
	}

	p.printf("\nComputing: %d * %d\n", opts.FirstNumber, opts.SecondNumber)

	result = calc.Multiply(opts.FirstNumber, opts.SecondNumber)

	s.Record(ctx, "Multiplication completed")
	p.printf("Result: %d\n", result)

	if s.Check(ctx, result) {
		p.println("Notification: Result exceeded threshold!")
	}

	p.println("\n=== Operation Log ===")

	for _, entry := range s.History() {
		p.printf("- %s\n", entry)
	}

	p.println("\n=== Demo Complete ===")

	if p.err != nil {
		return fmt.Errorf("write demo output: %w", p.err)
	}

	logger.DebugKV(ctx, "Demo finished", "triggered", s.Alarm().Triggered())

	return nil
}

// printer remembers the first write error so the demo body stays linear.
type printer struct {
	// out is the destination.
	out io.Writer
	// err is the first write error.
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.out, format, args...)
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintln(p.out, line)
}
