package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type line struct {
	text string
	err  error
}

// Source reads the human player's moves as 1-based positions, re-prompting until one is playable.
// Lines are scanned on a separate goroutine so a cancelled context unblocks a pending prompt.
type Source struct {
	scanner *bufio.Scanner
	out     io.Writer
	once    sync.Once
	lines   chan line
}

func NewSource(in io.Reader, out io.Writer) *Source {
	return &Source{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
	}
}

func (that *Source) NextMove(ctx context.Context, board *entity.Board, _ entity.Mark) (entity.Move, error) {
	cells := board.Size() * board.Size()

	that.printf("Your turn:\n")

	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		input, err := that.ask(ctx, fmt.Sprintf("Enter the position (1-%d): ", cells))
		if err != nil {
			return entity.Move{}, err
		}

		position, err := strconv.Atoi(input)
		if err != nil {
			that.printf("Invalid input. Enter a number between 1 and %d.\n", cells)
			continue
		}

		move, err := entity.MoveFromPosition(board.Size(), position)
		if err != nil {
			that.printf("This is out of bounds of this board, please choose between 1 and %d.\n", cells)
			continue
		}

		if board.At(move) != entity.EmptyCell {
			that.printf("There is already a marker in this position, try again.\n")
			continue
		}

		return move, nil
	}
}

// AskMark - asks for X or O until one is given.
func (that *Source) AskMark(ctx context.Context) (entity.Mark, error) {
	input, err := that.ask(ctx, "Choose your marker (X/O): ")
	for err == nil {
		mark, parseErr := entity.ParseMark(input)
		if parseErr == nil {
			return mark, nil
		}

		input, err = that.ask(ctx, "The options are 'x' and 'o', choose your marker (X/O): ")
	}

	return entity.EmptyCell, err
}

// AskYesNo - asks the question until the answer is yes or no.
func (that *Source) AskYesNo(ctx context.Context, question string) (bool, error) {
	input, err := that.ask(ctx, question+" (yes/no): ")
	for err == nil {
		switch strings.ToLower(input) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}

		input, err = that.ask(ctx, "Please answer yes or no. "+question+" (yes/no): ")
	}

	return false, err
}

// ask - prints the prompt and waits for the next trimmed line, ErrInputClosed once input ends
// or the context error when it is cancelled first.
func (that *Source) ask(ctx context.Context, prompt string) (string, error) {
	that.printf("%s", prompt)
	that.once.Do(func() { go that.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}

		return next.text, next.err
	}
}

// scan - feeds lines to ask until the input ends.
func (that *Source) scan() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: strings.TrimSpace(that.scanner.Text())}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Source) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
