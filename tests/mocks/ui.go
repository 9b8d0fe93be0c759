package mocks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dibend/passtools/pkg/cout"
)

type MockUI struct {
	Output        bytes.Buffer
	ConfirmInputs []bool
	TextInputs    []string
	confirmIndex  int
	textIndex     int
}

func NewMockUI() *MockUI {
	return &MockUI{
		ConfirmInputs: []bool{},
		TextInputs:    []string{},
	}
}

func (m *MockUI) Confirm(prompt string) (bool, error) {
	m.Output.WriteString(fmt.Sprintf("Confirm: %s\n", prompt))
	if m.confirmIndex >= len(m.ConfirmInputs) {
		return false, fmt.Errorf("mock: no more confirm inputs available")
	}
	result := m.ConfirmInputs[m.confirmIndex]
	m.confirmIndex++
	return result, nil
}

func (m *MockUI) Input(prompt string, defaultValue string) (string, error) {
	m.Output.WriteString(fmt.Sprintf("Input: %s (default: %s)\n", prompt, defaultValue))
	if m.textIndex >= len(m.TextInputs) {
		return "", fmt.Errorf("mock: no more text inputs available")
	}
	result := m.TextInputs[m.textIndex]
	m.textIndex++
	return result, nil
}

func (m *MockUI) Info(a ...interface{}) {
	m.Output.WriteString(fmt.Sprint(a...))
}

func (m *MockUI) Infoln(a ...interface{}) {
	m.Output.WriteString(fmt.Sprint(a...) + "\n")
}

func (m *MockUI) Infof(format string, a ...interface{}) {
	m.Output.WriteString(fmt.Sprintf(format, a...))
}

func (m *MockUI) Infofln(format string, a ...interface{}) {
	m.Output.WriteString(fmt.Sprintf(format, a...) + "\n")
}

func (m *MockUI) Successln(a ...interface{}) {
	m.Output.WriteString(fmt.Sprint(a...) + "\n")
}

func (m *MockUI) Successfln(format string, a ...interface{}) {
	m.Output.WriteString(fmt.Sprintf(format, a...) + "\n")
}

func (m *MockUI) Warning(message string) {
	m.Output.WriteString("Warning: " + message + "\n")
}

func (m *MockUI) HasOutput(substring string) bool {
	return strings.Contains(m.Output.String(), substring)
}

var _ cout.IO = (*MockUI)(nil)
