package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/directory"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) ListUsers(ctx context.Context) ([]directory.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]directory.User)
	return users, args.Error(1)
}

func sampleUsers() []directory.User {
	return []directory.User{
		{ID: 1, Name: "Leanne Graham", Address: directory.Address{City: "Gwenborough"}},
		{ID: 2, Name: "Ervin Howell", Address: directory.Address{City: "Wisokyburgh"}},
		{ID: 3, Name: "Clementine Bauch", Address: directory.Address{City: "McKenziehaven"}},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	users := sampleUsers()

	tests := []struct {
		query string
		ids   []int
	}{
		{"", []int{1, 2, 3}},
		{"   ", []int{1, 2, 3}},
		{"ERVIN", []int{2}},
		{"gwen", []int{1}},
		{"  gwen ", []int{1}},
		{"h", []int{1, 2, 3}},
		{"burgh", []int{2}},
		{"nobody", nil},
	}

	for _, tt := range tests {
		var ids []int
		for _, u := range directory.Filter(users, tt.query) {
			ids = append(ids, u.ID)
		}
		assert.Equal(t, tt.ids, ids, "query %q", tt.query)
	}
	assert.NotNil(t, directory.Filter(nil, ""))
}

func TestServiceList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := &mockFetcher{}
	f.On("ListUsers", mock.Anything).Return(sampleUsers(), nil).Once()
	svc := directory.NewService(f)

	all, err := svc.List(ctx, "p", "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 3, all.Shown)
	assert.False(t, all.Filtered)

	some, err := svc.List(ctx, "p", "ervin")
	require.NoError(t, err)
	assert.Equal(t, 3, some.Total)
	assert.Equal(t, 1, some.Shown)
	assert.True(t, some.Filtered)

	f.AssertExpectations(t)
}

func TestServiceDeleteIsLocalPerProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := &mockFetcher{}
	f.On("ListUsers", mock.Anything).Return(sampleUsers(), nil)
	svc := directory.NewService(f)

	removed, err := svc.Delete(ctx, "a", 2)
	require.NoError(t, err)
	assert.Equal(t, "Ervin Howell", removed.Name)

	_, err = svc.Delete(ctx, "a", 2)
	assert.ErrorIs(t, err, directory.ErrUserNotFound)

	a, _ := svc.List(ctx, "a", "")
	b, _ := svc.List(ctx, "b", "")
	assert.Equal(t, 2, a.Total)
	assert.Equal(t, 3, b.Total)

	require.NoError(t, svc.Refresh(ctx, "a"))
	a, _ = svc.List(ctx, "a", "")
	assert.Equal(t, 3, a.Total)
}

func TestServiceFetchFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.Join(directory.ErrFetchUsers, errors.New("dial tcp"))

	f := &mockFetcher{}
	f.On("ListUsers", mock.Anything).Return(nil, boom).Once()
	f.On("ListUsers", mock.Anything).Return(sampleUsers(), nil).Once()
	svc := directory.NewService(f)

	_, err := svc.List(ctx, "p", "")
	assert.ErrorIs(t, err, directory.ErrFetchUsers)

	require.NoError(t, svc.Refresh(ctx, "p"))
	got, err := svc.List(ctx, "p", "")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	f.AssertExpectations(t)
}
