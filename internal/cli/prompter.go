// Package cli is the terminal front end: the typewriter prompter, the
// inventory and character-creation interactions, the combat driver, and
// the runner that walks a story to one of its endings.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Prompter reads commands from one stream and narrates to another. Text
// is printed one character at a time when a delay is set; a zero delay
// prints instantly, which is what tests use.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	delay   time.Duration
}

func NewPrompter(in io.Reader, out io.Writer, delay time.Duration) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out, delay: delay}
}

// Say prints each line with the typewriter effect.
func (p *Prompter) Say(lines ...string) {
	for _, line := range lines {
		p.write(line)
		fmt.Fprintln(p.out)
	}
}

// Sayf prints one formatted line with the typewriter effect.
func (p *Prompter) Sayf(format string, args ...any) {
	p.Say(fmt.Sprintf(format, args...))
}

func (p *Prompter) write(s string) {
	if p.delay <= 0 {
		fmt.Fprint(p.out, s)
		return
	}
	for _, r := range s {
		fmt.Fprint(p.out, string(r))
		time.Sleep(p.delay)
	}
}

// ReadLine prints a prompt (instantly, no typewriter) and returns the
// next input line. io.EOF means the input source is gone.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Menu presents numbered options and returns the index of the pick.
// Anything that is not a number in range re-prompts.
func (p *Prompter) Menu(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("menu %q has no options", title)
	}
	if title != "" {
		p.Say(title)
	}
	for i, opt := range options {
		p.Sayf("  %d. %s", i+1, opt)
	}
	for {
		line, err := p.ReadLine("> ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(options) {
			p.Sayf("Please enter a number between 1 and %d.", len(options))
			continue
		}
		return n - 1, nil
	}
}

// PressEnter waits for the player before moving on.
func (p *Prompter) PressEnter() error {
	_, err := p.ReadLine("[Press Enter to continue] ")
	return err
}

// splitCommand separates a verb from its argument: the first word,
// lowercased, and the trimmed remainder.
func splitCommand(line string) (verb, arg string) {
	line = strings.TrimSpace(line)
	verb, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(arg)
}
