// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/label-service/internal/domain/model"
)

// MockLabelGenerator is a testify mock for service.LabelGenerator.
type MockLabelGenerator struct {
	mock.Mock
}

// NewMockLabelGenerator creates a new mock with cleanup-time expectation checks.
func NewMockLabelGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLabelGenerator {
	m := &MockLabelGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLabelGenerator) BuildDocument(rows []model.RawOrderRow) (*model.Document, error) {
	args := m.Called(rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
