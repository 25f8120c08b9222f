package ai

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Ask(ctx context.Context, question string) (Answer, error) {
	args := m.Called(ctx, question)
	return args.Get(0).(Answer), args.Error(1)
}

func (m *MockProvider) Facts(ctx context.Context, n int) ([]Fact, error) {
	args := m.Called(ctx, n)
	facts, _ := args.Get(0).([]Fact)
	return facts, args.Error(1)
}

func (m *MockProvider) Image(ctx context.Context, prompt string) (Image, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(Image), args.Error(1)
}
