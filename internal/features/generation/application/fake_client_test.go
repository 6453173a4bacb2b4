package application

import (
	"context"
	"sync"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

type fakeCall struct {
	Model  string
	Prompt string
	Schema string
}

type fakeReply struct {
	Text string
	Err  error
}

// fakeClient answers model calls from a per-model script and records them.
type fakeClient struct {
	mu      sync.Mutex
	replies map[string][]fakeReply
	calls   []fakeCall
}

func newFakeClient() *fakeClient {
	return &fakeClient{replies: map[string][]fakeReply{}}
}

func (f *fakeClient) on(model string, replies ...fakeReply) *fakeClient {
	f.replies[model] = append(f.replies[model], replies...)
	return f
}

func (f *fakeClient) Provider() string { return "fake" }

func (f *fakeClient) GenerateText(_ context.Context, model, prompt string) (string, error) {
	return f.next(fakeCall{Model: model, Prompt: prompt})
}

func (f *fakeClient) GenerateJSON(_ context.Context, model string, schema domain.ObjectSchema, prompt string) (string, error) {
	return f.next(fakeCall{Model: model, Prompt: prompt, Schema: schema.Name})
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) next(call fakeCall) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	queue := f.replies[call.Model]
	if len(queue) == 0 {
		return "", nil
	}
	reply := queue[0]
	f.replies[call.Model] = queue[1:]
	return reply.Text, reply.Err
}

func (f *fakeClient) models() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Model
	}
	return out
}

var testRouting = ModelRouting{Default: "flash", Primary: "pro", Fallback: "lite"}

const personaJSON = `{"name":"Maya Chen","title":"Product Lead","age":"34","location":"Austin","income":"$120k",
"background":"Ex-founder","goals":["ship faster"],"painPoints":["tool sprawl"],"marketingTips":["show ROI"]}`
