package gpg

import (
	"fmt"
	"strings"

	"github.com/dibend/passtools/pkg/cout"
)

type MockIO struct {
	ConfirmResults []bool
	InputResults   []string
	Messages       []string
	confirmIndex   int
	inputIndex     int
}

func NewMockIO() *MockIO {
	return &MockIO{
		Messages: []string{},
	}
}

func (m *MockIO) Confirm(prompt string) (bool, error) {
	m.Messages = append(m.Messages, fmt.Sprintf("Confirm: %s", prompt))
	if m.confirmIndex >= len(m.ConfirmResults) {
		return false, fmt.Errorf("mock: no more confirm inputs available")
	}
	result := m.ConfirmResults[m.confirmIndex]
	m.confirmIndex++
	return result, nil
}

func (m *MockIO) Input(prompt string, defaultValue string) (string, error) {
	m.Messages = append(m.Messages, fmt.Sprintf("Input: %s (default: %s)", prompt, defaultValue))
	if m.inputIndex >= len(m.InputResults) {
		return "", fmt.Errorf("mock: no more text inputs available")
	}
	result := m.InputResults[m.inputIndex]
	m.inputIndex++
	return result, nil
}

func (m *MockIO) Info(a ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprint(a...))
}

func (m *MockIO) Infoln(a ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprint(a...))
}

func (m *MockIO) Infof(format string, a ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, a...))
}

func (m *MockIO) Infofln(format string, a ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, a...))
}

func (m *MockIO) Successln(a ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprint(a...))
}

func (m *MockIO) Successfln(format string, a ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, a...))
}

func (m *MockIO) Warning(message string) {
	m.Messages = append(m.Messages, fmt.Sprintf("Warning: %s", message))
}

func (m *MockIO) HasMessage(substring string) bool {
	for _, msg := range m.Messages {
		if strings.Contains(msg, substring) {
			return true
		}
	}
	return false
}

var _ cout.IO = (*MockIO)(nil)
