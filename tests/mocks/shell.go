package mocks

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dibend/passtools/pkg/shell"
)

type MockShell struct {
	Calls     []ShellCall
	Responses map[string]ShellResponse
	Missing   map[string]bool
}

type ShellCall struct {
	Name  string
	Args  []string
	Stdin string
	Env   []string
}

type ShellResponse struct {
	Stdout string
	Stderr string
	Err    error
}

func NewMockShell() *MockShell {
	return &MockShell{
		Calls:     []ShellCall{},
		Responses: make(map[string]ShellResponse),
		Missing:   make(map[string]bool),
	}
}

func (m *MockShell) LookPath(file string) (string, error) {
	if m.Missing[file] {
		return "", fmt.Errorf("mock: %s not in PATH", file)
	}
	return "/usr/bin/" + file, nil
}

func (m *MockShell) Command(name string, args ...string) shell.Cmd {
	return &MockCmd{
		shell: m,
		name:  name,
		args:  args,
	}
}

func (m *MockShell) AddResponse(name string, args []string, stdout, stderr string, err error) {
	m.Responses[m.makeKey(name, args)] = ShellResponse{
		Stdout: stdout,
		Stderr: stderr,
		Err:    err,
	}
}

func (m *MockShell) WasCalled(name string, args ...string) bool {
	key := m.makeKey(name, args)
	for _, call := range m.Calls {
		if m.makeKey(call.Name, call.Args) == key {
			return true
		}
	}
	return false
}

func (m *MockShell) makeKey(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func (m *MockShell) run(c *MockCmd) error {
	m.Calls = append(m.Calls, ShellCall{
		Name:  c.name,
		Args:  c.args,
		Stdin: c.stdinContent,
		Env:   c.env,
	})

	resp, ok := m.Responses[m.makeKey(c.name, c.args)]
	if !ok {
		return fmt.Errorf("mock: unexpected command: %s %v", c.name, c.args)
	}

	if c.stdout != nil {
		c.stdout.Write([]byte(resp.Stdout))
	}
	if c.stderr != nil {
		c.stderr.Write([]byte(resp.Stderr))
	}

	return resp.Err
}

type MockCmd struct {
	shell        *MockShell
	name         string
	args         []string
	env          []string
	stdinContent string
	stdout       io.Writer
	stderr       io.Writer
}

func (c *MockCmd) SetEnv(env []string) {
	c.env = env
}

func (c *MockCmd) SetStdin(r io.Reader) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err == nil {
		c.stdinContent = buf.String()
	}
}

func (c *MockCmd) SetStdout(w io.Writer) {
	c.stdout = w
}

func (c *MockCmd) SetStderr(w io.Writer) {
	c.stderr = w
}

func (c *MockCmd) Run() error {
	return c.shell.run(c)
}

func (c *MockCmd) Output() ([]byte, error) {
	var buf bytes.Buffer
	c.stdout = &buf
	err := c.shell.run(c)
	return buf.Bytes(), err
}

var _ shell.Executor = (*MockShell)(nil)
