// SPDX-License-Identifier: MIT

package jvlink

import "context"

// OpenStep scripts one Open outcome for the StubSession.
type OpenStep struct {
	Result OpenResult
	Err    error
}

// ReadStep scripts one Read outcome for the StubSession.
type ReadStep struct {
	Result ReadResult
	Err    error
}

// StubSession is a scripted Session for tests. Each call pops the next
// scripted step; exhausted scripts return terminal values (Open code 0,
// Read code 0, Status 0) so loops drain cleanly.
type StubSession struct {
	InitErr   error
	OpenSteps []OpenStep
	ReadSteps []ReadStep
	Statuses  []int
	CloseErr  error

	InitCalls   int
	OpenCalls   int
	ReadCalls   int
	StatusCalls int
	CloseCalls  int
}

var _ Session = (*StubSession)(nil)

func (s *StubSession) Init(ctx context.Context, serviceKey string) error {
	s.InitCalls++
	return s.InitErr
}

func (s *StubSession) Open(ctx context.Context, dataspec, fromTime string, option int) (OpenResult, error) {
	s.OpenCalls++
	if len(s.OpenSteps) == 0 {
		return OpenResult{Code: CodeOK}, nil
	}
	step := s.OpenSteps[0]
	s.OpenSteps = s.OpenSteps[1:]
	return step.Result, step.Err
}

func (s *StubSession) Read(ctx context.Context, maxSize int) (ReadResult, error) {
	s.ReadCalls++
	if len(s.ReadSteps) == 0 {
		return ReadResult{Code: 0}, nil
	}
	step := s.ReadSteps[0]
	s.ReadSteps = s.ReadSteps[1:]
	return step.Result, step.Err
}

func (s *StubSession) Status(ctx context.Context) (int, error) {
	s.StatusCalls++
	if len(s.Statuses) == 0 {
		return 0, nil
	}
	code := s.Statuses[0]
	s.Statuses = s.Statuses[1:]
	return code, nil
}

func (s *StubSession) Close() error {
	s.CloseCalls++
	return s.CloseErr
}

// Records is a convenience for scripting a drain: one ReadStep per
// payload followed by the end-of-session step.
func Records(payloads ...[]byte) []ReadStep {
	steps := make([]ReadStep, 0, len(payloads)+1)
	for _, p := range payloads {
		steps = append(steps, ReadStep{Result: ReadResult{Code: len(p), Payload: p, Size: len(p)}})
	}
	return append(steps, ReadStep{Result: ReadResult{Code: 0}})
}
