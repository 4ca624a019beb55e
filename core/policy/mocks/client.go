package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of policy.Client
type Client struct {
	mock.Mock
}

func (m *Client) EnableRowLevelSecurity(ctx context.Context, schema, table string) error {
	args := m.Called(ctx, schema, table)
	return args.Error(0)
}

func (m *Client) CreatePolicy(ctx context.Context, bucket, name, statement string) error {
	args := m.Called(ctx, bucket, name, statement)
	return args.Error(0)
}
