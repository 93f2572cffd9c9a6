package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх произвольных потоков
type Stdio struct {
	in       *bufio.Reader
	out      io.Writer
	terminal bool
}

// NewStdio создает IO для os.Stdin и os.Stdout
func NewStdio() IO {
	return &Stdio{
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		terminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewStream создает IO для заданных потоков; ввод считается не терминалом
func NewStream(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadAll() (string, error) {
	data, err := io.ReadAll(s.in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Stdio) IsTerminal() bool {
	return s.terminal
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
