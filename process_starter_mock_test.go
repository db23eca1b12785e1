package main

import "sync"

// ProcessStarterMock is a mock implementation of ProcessStarter.
type ProcessStarterMock struct {
	// StartFunc mocks the Start method.
	StartFunc func(spec LaunchSpec) error

	// calls tracks calls to the methods.
	calls struct {
		// Start holds details about calls to the Start method.
		Start []struct {
			// Spec is the spec argument value.
			Spec LaunchSpec
		}
	}
	lockStart sync.RWMutex
}

// Start calls StartFunc.
func (mock *ProcessStarterMock) Start(spec LaunchSpec) error {
	if mock.StartFunc == nil {
		panic("ProcessStarterMock.StartFunc: method is nil but ProcessStarter.Start was just called")
	}
	callInfo := struct {
		Spec LaunchSpec
	}{
		Spec: spec,
	}
	mock.lockStart.Lock()
	mock.calls.Start = append(mock.calls.Start, callInfo)
	mock.lockStart.Unlock()
	return mock.StartFunc(spec)
}

// StartCalls gets all the calls that were made to Start.
func (mock *ProcessStarterMock) StartCalls() []struct {
	Spec LaunchSpec
} {
	var calls []struct {
		Spec LaunchSpec
	}
	mock.lockStart.RLock()
	calls = mock.calls.Start
	mock.lockStart.RUnlock()
	return calls
}
