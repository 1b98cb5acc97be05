package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/desk/internal/cli"
)

// Session runs the interactive calculator loop on a terminal.
type Session struct {
	prompt *cli.Prompter
	out    io.Writer
}

// NewSession returns a Session reading answers from in and writing to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		prompt: cli.NewPrompter(in, out),
		out:    out,
	}
}

// Run greets the user and evaluates expressions until the user declines to
// continue. Cancelling ctx (or closing input) ends the loop with a farewell;
// neither is reported as an error.
func (s *Session) Run(ctx context.Context) error {
	defer s.prompt.Close()
	cli.Banner(s.out, "Welcome to Calculator")

	err := s.loop(ctx)
	if errors.Is(err, cli.ErrInterrupted) {
		fmt.Fprintln(s.out, "\n\nProgram interrupted by user.")
		err = nil
	}
	if err != nil {
		return err
	}

	s.farewell()
	return nil
}

func (s *Session) loop(ctx context.Context) error {
	for {
		a, b, err := s.readNumbers(ctx)
		if err != nil {
			return err
		}
		op, err := s.readOperator(ctx)
		if err != nil {
			return err
		}
		s.calculate(op, a, b)

		again, err := s.prompt.Confirm(ctx,
			"Do you want to continue? (y/n): ",
			"Invalid choice! Enter 'y' to continue or 'n' to exit.")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// readNumbers reads both operands. An invalid entry restarts from the
// first operand.
func (s *Session) readNumbers(ctx context.Context) (float64, float64, error) {
	for {
		a, err := s.readNumber(ctx, "Enter the 1st number: ")
		if errors.Is(err, errInvalidEntry) {
			continue
		}
		if err != nil {
			return 0, 0, err
		}

		b, err := s.readNumber(ctx, "Enter the 2nd number: ")
		if errors.Is(err, errInvalidEntry) {
			continue
		}
		if err != nil {
			return 0, 0, err
		}
		return a, b, nil
	}
}

var errInvalidEntry = errors.New("invalid entry")

func (s *Session) readNumber(ctx context.Context, prompt string) (float64, error) {
	answer, err := s.prompt.Ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	v, err := ParseNumber(answer)
	if err != nil {
		fmt.Fprintln(s.out, cli.Failure("Invalid input! Please enter numbers only."))
		return 0, errInvalidEntry
	}
	return v, nil
}

func (s *Session) readOperator(ctx context.Context) (Operator, error) {
	question := fmt.Sprintf("Enter an operator (%s): ", operatorList())
	for {
		answer, err := s.prompt.Ask(ctx, question)
		if err != nil {
			return "", err
		}
		op, err := ParseOperator(answer)
		if err == nil {
			return op, nil
		}
		fmt.Fprintln(s.out, cli.Failure(fmt.Sprintf("Invalid operator! Please choose from (%s).", operatorList())))
	}
}

func (s *Session) calculate(op Operator, a, b float64) {
	result, err := Apply(op, a, b)
	if errors.Is(err, ErrDivisionByZero) {
		fmt.Fprintln(s.out, cli.Failure("Error: Division by zero is not allowed."))
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, cli.Failure(err.Error()))
		return
	}
	fmt.Fprintln(s.out, cli.Success("Result: "+FormatNumber(result)))
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, "\nThank you for using Calculator!")
	fmt.Fprintln(s.out, strings.Repeat("-", cli.RuleWidth))
}
