package transport

import (
	"io"
)

// MockTransport implements Conn for testing.
type MockTransport struct {
	ReadData  []byte
	ReadErr   error
	WriteData []byte
	WriteErr  error
	Closed    bool
	Flushed   int

	// WriteN, when non-nil, overrides the byte count reported by Write.
	WriteN func(p []byte) int
	// ReadFunc allows custom read behavior for complex tests
	ReadFunc func(p []byte) (int, error)
	// OnWrite is called after each successful write, e.g. to queue a reply.
	OnWrite func(m *MockTransport, p []byte)
}

var _ Conn = (*MockTransport)(nil)

func (m *MockTransport) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (m *MockTransport) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.WriteData = append(m.WriteData, p...)
	n := len(p)
	if m.WriteN != nil {
		n = m.WriteN(p)
	}
	if m.OnWrite != nil {
		m.OnWrite(m, p)
	}
	return n, nil
}

func (m *MockTransport) Close() error {
	m.Closed = true
	return nil
}

// FlushInput counts flushes. ReadData is kept so queued replies survive.
func (m *MockTransport) FlushInput() error {
	m.Flushed++
	return nil
}
