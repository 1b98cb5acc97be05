package password

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksmith/desk/internal/cli"
)

// Session asks for a length and prints a single generated password.
type Session struct {
	prompt *cli.Prompter
	out    io.Writer
	gen    *Generator
}

// NewSession returns a Session reading from in, writing to out and drawing
// characters from gen.
func NewSession(in io.Reader, out io.Writer, gen *Generator) *Session {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Session{
		prompt: cli.NewPrompter(in, out),
		out:    out,
		gen:    gen,
	}
}

// Run prompts until a positive length is entered, then prints one password.
// An interrupt or end of input stops the run without a password and is not
// reported as an error.
func (s *Session) Run(ctx context.Context) error {
	defer s.prompt.Close()
	cli.Banner(s.out, "🔐 Welcome to Password Generator")

	length, err := s.readLength(ctx)
	if errors.Is(err, cli.ErrInterrupted) {
		fmt.Fprintln(s.out, "\n\nProgram interrupted by user.")
		return nil
	}
	if err != nil {
		return err
	}

	pw, err := s.gen.Generate(length)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, cli.Success("Your Generated Password: "+pw))
	return nil
}

func (s *Session) readLength(ctx context.Context) (int, error) {
	for {
		answer, err := s.prompt.Ask(ctx, "Enter password length: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			fmt.Fprintln(s.out, cli.Failure("Invalid input. Please enter a number."))
			continue
		}
		if n <= 0 {
			fmt.Fprintln(s.out, cli.Failure("Password length must be greater than 0."))
			continue
		}
		return n, nil
	}
}
