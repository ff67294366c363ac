package mocks

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// register wires m to t and asserts its expectations when the test ends.
func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// value returns argument i of ret as T, or T's zero value when it is nil.
func value[T any](ret mock.Arguments, i int) T {
	var zero T
	if v := ret.Get(i); v != nil {
		return v.(T)
	}
	return zero
}
