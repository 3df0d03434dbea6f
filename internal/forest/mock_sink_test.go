package forest

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockSink is a hand-maintained equivalent of what `mockgen -source
// sink.go` would generate for the Sink interface — kept by hand since
// this module never runs go generate, but written in the exact shape
// mockgen produces so it drops in cleanly if regenerated later.
type MockSink struct {
	ctrl     *gomock.Controller
	recorder *MockSinkMockRecorder
}

// MockSinkMockRecorder is the EXPECT() recorder for MockSink.
type MockSinkMockRecorder struct {
	mock *MockSink
}

// NewMockSink returns a new mock Sink.
func NewMockSink(ctrl *gomock.Controller) *MockSink {
	mock := &MockSink{ctrl: ctrl}
	mock.recorder = &MockSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSink) EXPECT() *MockSinkMockRecorder {
	return m.recorder
}

// Emit mocks base method.
func (m *MockSink) Emit(t Tree) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Emit", t)
}

// Emit indicates an expected call of Emit.
func (mr *MockSinkMockRecorder) Emit(t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Emit", reflect.TypeOf((*MockSink)(nil).Emit), t)
}
