package gpg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dibend/passtools/pkg/shell"
)

type MockExecutor struct {
	Calls     []MockCall
	Responses map[string]MockResponse
	Missing   map[string]bool
}

type MockCall struct {
	Name  string
	Args  []string
	Stdin string
}

type MockResponse struct {
	Stdout string
	Stderr string
	Err    error
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Calls:     []MockCall{},
		Responses: make(map[string]MockResponse),
		Missing:   make(map[string]bool),
	}
}

func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.Missing[file] {
		return "", fmt.Errorf("mock: %s not in PATH", file)
	}
	return file, nil
}

func (m *MockExecutor) Command(name string, args ...string) shell.Cmd {
	return &MockCmd{
		executor: m,
		name:     name,
		args:     args,
	}
}

func (m *MockExecutor) AddResponse(name string, args []string, stdout, stderr string, err error) {
	m.Responses[m.makeKey(name, args)] = MockResponse{
		Stdout: stdout,
		Stderr: stderr,
		Err:    err,
	}
}

func (m *MockExecutor) WasCalled(name string, args ...string) bool {
	key := m.makeKey(name, args)
	for _, call := range m.Calls {
		if m.makeKey(call.Name, call.Args) == key {
			return true
		}
	}
	return false
}

func (m *MockExecutor) makeKey(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func (m *MockExecutor) executeMock(c *MockCmd) error {
	m.Calls = append(m.Calls, MockCall{
		Name:  c.name,
		Args:  c.args,
		Stdin: c.stdinContent,
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
	executor     *MockExecutor
	name         string
	args         []string
	stdinContent string
	stdout       io.Writer
	stderr       io.Writer
}

func (c *MockCmd) SetEnv(env []string) {}

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
	return c.executor.executeMock(c)
}

func (c *MockCmd) Output() ([]byte, error) {
	var buf bytes.Buffer
	c.stdout = &buf
	err := c.executor.executeMock(c)
	return buf.Bytes(), err
}

var _ shell.Executor = (*MockExecutor)(nil)
