// pkg/engine/engine_mock_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testify mock FS
// PURPOSE: Verify the exact filesystem calls the engine makes

package engine_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/retitle/pkg/engine"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFS implements types.FS for testing
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fs.FileInfo), args.Error(1)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	args := m.Called(name, data, perm)
	return args.Error(0)
}

func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fs.DirEntry), args.Error(1)
}

func (m *MockFS) Rename(oldpath, newpath string) error {
	args := m.Called(oldpath, newpath)
	return args.Error(0)
}

func (m *MockFS) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func TestApply_MockFS_OnlyRenameIsCalled(t *testing.T) {
	mockFS := new(MockFS)
	mockFS.On("Rename", "draft.txt", "final.txt").Return(nil).Once()
	mockFS.On("Rename", "notes.md", "notes-2024.md").Return(nil).Once()

	result, err := engine.New(mockFS, nil).Apply([]types.RenamePair{
		{From: "draft.txt", To: "final.txt"},
		{From: "same", To: "same"},
		{From: "notes.md", To: "notes-2024.md"},
	})

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeCompleted, result.Outcome)
	mockFS.AssertExpectations(t)
	mockFS.AssertNumberOfCalls(t, "Rename", 2)
	mockFS.AssertNotCalled(t, "Rename", "same", "same")
	mockFS.AssertNotCalled(t, "ReadDir", mock.Anything)
	mockFS.AssertNotCalled(t, "Stat", mock.Anything)
}

func TestApply_MockFS_RollbackSequence(t *testing.T) {
	mockFS := new(MockFS)
	var order []string
	record := func(args mock.Arguments) {
		order = append(order, args.String(0)+"->"+args.String(1))
	}

	mockFS.On("Rename", "a", "b").Return(nil).Run(record).Once()
	mockFS.On("Rename", "c", "d").Return(nil).Run(record).Once()
	mockFS.On("Rename", "e", "f").Return(stderrors.New("no space left on device")).Run(record).Once()
	mockFS.On("Rename", "d", "c").Return(nil).Run(record).Once()
	mockFS.On("Rename", "b", "a").Return(nil).Run(record).Once()

	result, err := engine.New(mockFS, nil).Apply([]types.RenamePair{
		{From: "a", To: "b"},
		{From: "c", To: "d"},
		{From: "e", To: "f"},
		{From: "g", To: "h"},
	})

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeRolledBack, result.Outcome)
	assert.Equal(t, []string{"a->b", "c->d", "e->f", "d->c", "b->a"}, order)
	mockFS.AssertExpectations(t)
	mockFS.AssertNotCalled(t, "Rename", "g", "h")
}
