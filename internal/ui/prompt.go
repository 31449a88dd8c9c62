package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Input formats shown to the user.
const (
	DateTimeFormat  = "01-02-2006 15:04"
	BirthDateFormat = "01-02-2006"
)

// prompter reads typed values from an interactive stream.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) int64(label string) (int64, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		return value, nil
	}
}

func (p *prompter) float64(label string) (float64, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		return value, nil
	}
}

// yesNo asks a y/n question, defaulting to no.
func (p *prompter) yesNo(label string) (bool, error) {
	text, err := p.line(label + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *prompter) date(label string) (time.Time, error) {
	for {
		text, err := p.line(fmt.Sprintf("%s (%s): ", label, BirthDateFormat))
		if err != nil {
			return time.Time{}, err
		}
		value, err := time.ParseInLocation(BirthDateFormat, text, time.Local)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a date in format %s.\n", BirthDateFormat)
			continue
		}
		return value, nil
	}
}

func (p *prompter) dateTime(label string) (time.Time, error) {
	for {
		text, err := p.line(fmt.Sprintf("%s (%s): ", label, DateTimeFormat))
		if err != nil {
			return time.Time{}, err
		}
		value, err := time.ParseInLocation(DateTimeFormat, text, time.Local)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a date and time in format %s.\n", DateTimeFormat)
			continue
		}
		return value, nil
	}
}
