package commit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter gathers the two pieces of user input the workflow needs: a
// commit message and yes/no confirmations.
type Prompter interface {
	CommitMessage(ctx context.Context) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// IOPrompter reads answers line by line from an input stream, writing
// prompts to an output stream. Inject os.Stdin/os.Stdout for real use and
// buffers in tests.
type IOPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewIOPrompter constructs a prompter over the given streams.
func NewIOPrompter(in io.Reader, out io.Writer) *IOPrompter {
	return &IOPrompter{reader: bufio.NewReader(in), out: out}
}

// CommitMessage prompts for and returns a trimmed commit message.
// An empty answer is returned as-is; the caller decides whether to abort.
func (p *IOPrompter) CommitMessage(ctx context.Context) (string, error) {
	fmt.Fprint(p.out, "\nCommit message: ")
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("read commit message: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question; only an explicit "y"/"yes" counts as yes.
func (p *IOPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// readLine tolerates a final unterminated line at EOF.
func (p *IOPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
