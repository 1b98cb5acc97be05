package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter asks questions on an output stream and reads one line of input
// per answer. Reads happen on a background goroutine so a pending question
// can be abandoned when ctx is cancelled.
type Prompter struct {
	in  io.Reader
	out io.Writer

	once      sync.Once
	closeOnce sync.Once
	lines     chan string
	done      chan struct{}
	err       error // read error, valid once lines is closed
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
}

// start launches the reader. It stops at end of input or, after Close, as
// soon as its next line is ready; a read already blocked on in stays blocked.
func (p *Prompter) start() {
	go func() {
		defer close(p.lines)
		sc := bufio.NewScanner(p.in)
		for sc.Scan() {
			select {
			case p.lines <- sc.Text():
			case <-p.done:
				return
			}
		}
		p.err = sc.Err()
	}()
}

// Close releases the reader goroutine. Later calls to Ask return
// ErrInterrupted.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// Ask writes prompt and returns the next input line without its line ending.
// It returns ErrInterrupted if ctx is cancelled or input is exhausted.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.once.Do(p.start)

	if ctx.Err() != nil || p.closed() {
		return "", ErrInterrupted
	}
	fmt.Fprint(p.out, prompt)

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case <-p.done:
		return "", ErrInterrupted
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("failed to read input: %w", p.err)
			}
			return "", ErrInterrupted
		}
		return strings.TrimRight(line, "\r"), nil
	}
}

func (p *Prompter) closed() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Confirm asks a y/n question until the answer is "y" or "n"
// (case-insensitive, surrounding space ignored). invalid is printed after
// any other answer.
func (p *Prompter) Confirm(ctx context.Context, question, invalid string) (bool, error) {
	for {
		answer, err := p.Ask(ctx, question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(p.out, Failure(invalid))
		}
	}
}
