package console

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/store"
)

// MockProducerStore implements store.ProducerStore for testing using testify/mock
type MockProducerStore struct {
	mock.Mock
}

var _ store.ProducerStore = (*MockProducerStore)(nil)

func NewMockProducerStore() *MockProducerStore {
	return &MockProducerStore{}
}

func (m *MockProducerStore) Create(tenantID string, fields model.ProducerFields) (model.Producer, error) {
	args := m.Called(tenantID, fields)
	return args.Get(0).(model.Producer), args.Error(1)
}

func (m *MockProducerStore) Get(tenantID, id string) (model.Producer, bool) {
	args := m.Called(tenantID, id)
	return args.Get(0).(model.Producer), args.Bool(1)
}

func (m *MockProducerStore) List(tenantID string) []model.Producer {
	args := m.Called(tenantID)
	return args.Get(0).([]model.Producer)
}

// The mutators take the stored producer and whether it exists from the
// expectation, run the caller's checks against it, and then report the
// expectation's error.

func (m *MockProducerStore) Update(tenantID, id string, u model.ProducerUpdate, checks ...store.Check) (model.Producer, bool, error) {
	args := m.Called(tenantID, id, u)
	return mutate(args, checks)
}

func (m *MockProducerStore) SetStatus(tenantID, id string, status model.Status, checks ...store.Check) (model.Producer, bool, error) {
	args := m.Called(tenantID, id, status)
	return mutate(args, checks)
}

func (m *MockProducerStore) Delete(tenantID, id string, checks ...store.Check) (bool, error) {
	args := m.Called(tenantID, id)
	_, found, err := mutate(args, checks)
	return found, err
}

func mutate(args mock.Arguments, checks []store.Check) (model.Producer, bool, error) {
	stored, found := args.Get(0).(model.Producer), args.Bool(1)
	if !found {
		return model.Producer{}, false, nil
	}
	for _, check := range checks {
		if err := check(stored); err != nil {
			return stored, true, err
		}
	}
	return stored, true, args.Error(2)
}

func (m *MockProducerStore) Subscribe(fn func(store.Change)) func() {
	args := m.Called(fn)
	return args.Get(0).(func())
}
