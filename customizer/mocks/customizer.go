package mocks

import (
	"github.com/robbyt/go-gremlin-compiler/compiler"
	"github.com/stretchr/testify/mock"
)

// Customizer is a mock implementation of customizer.Customizer for testing
// hosts that apply customizers.
type Customizer struct {
	mock.Mock
}

// Apply is a mock implementation of the Apply method.
func (m *Customizer) Apply(cfg *compiler.Configuration) error {
	args := m.Called(cfg)
	return args.Error(0)
}

// String is a mock implementation of the String method.
func (m *Customizer) String() string {
	return "mocks.Customizer"
}
