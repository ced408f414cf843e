package llm

import "context"

// MockClient is an in-memory Client for tests. Set Response for the reply,
// or Err to simulate a provider fault. LastRequest records the most recent
// call for assertions on the prompt contents.
type MockClient struct {
	Response    string
	Err         error
	LastRequest *Request
	Calls       int
}

func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.Calls++
	m.LastRequest = &req
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
