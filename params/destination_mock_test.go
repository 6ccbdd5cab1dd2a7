package params

import "bytes"

type mockedDestination struct {
	buffer   bytes.Buffer
	isClosed bool
	failWith error
}

func newMockedDestination() *mockedDestination {
	return &mockedDestination{}
}

func (m *mockedDestination) Write(p []byte) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	return m.buffer.Write(p)
}

func (m *mockedDestination) Close() error {
	m.isClosed = true
	return nil
}

func (m *mockedDestination) String() string {
	return m.buffer.String()
}
