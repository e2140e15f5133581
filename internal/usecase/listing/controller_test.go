package listing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/domain/mocks"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func testUsers(names ...string) []domain.User {
	users := make([]domain.User, 0, len(names))
	for i, name := range names {
		users = append(users, domain.User{
			ID:    int64(i + 1),
			Name:  name,
			Email: name + "@example.com",
		})
	}
	return users
}

func matchUser(u domain.User, query string) bool {
	return strings.Contains(strings.ToLower(u.Name), query) ||
		strings.Contains(strings.ToLower(u.Email), query)
}

func newUserController(t *testing.T) (*Controller[domain.User], *mocks.MockUserGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gw := mocks.NewMockUserGateway(ctrl)
	return NewController[domain.User](gw, matchUser, logger.NewLogger("test", "debug")), gw
}

func TestReloadUsesPaginatedListing(t *testing.T) {
	c, gw := newUserController(t)

	users := testUsers("Alice", "Bruno")
	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 0, Size: 10}).
		Return(domain.Page[domain.User]{Content: users, TotalElements: 12}, nil)

	err := c.Reload(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, users, c.Items())
	assert.Equal(t, int64(12), c.TotalElements())
	assert.False(t, c.IsLoading())
}

func TestSetFilterResetsPageAndSearches(t *testing.T) {
	c, gw := newUserController(t)

	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 2, Size: 10}).
		Return(domain.Page[domain.User]{Content: nil, TotalElements: 30}, nil)
	gw.EXPECT().
		Search(gomock.Any(), domain.FilterByName, "ali", domain.PageRequest{Page: 0, Size: 10}).
		Return(domain.Page[domain.User]{Content: testUsers("Alice"), TotalElements: 1}, nil)

	assert.NoError(t, c.SetPage(context.Background(), 2))
	assert.NoError(t, c.SetFilter(context.Background(), domain.FilterByName, "ali"))

	assert.Equal(t, 0, c.Page())
	kind, value := c.Filter()
	assert.Equal(t, domain.FilterByName, kind)
	assert.Equal(t, "ali", value)
	assert.Equal(t, int64(1), c.TotalElements())
}

func TestSetPageSizeResetsPage(t *testing.T) {
	c, gw := newUserController(t)

	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 3, Size: 10}).
		Return(domain.Page[domain.User]{}, nil)
	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 0, Size: 25}).
		Return(domain.Page[domain.User]{}, nil)

	assert.NoError(t, c.SetPage(context.Background(), 3))
	assert.NoError(t, c.SetPageSize(context.Background(), 25))

	assert.Equal(t, 0, c.Page())
	assert.Equal(t, 25, c.PageSize())
}

func TestReloadErrorKeepsPreviousItems(t *testing.T) {
	c, gw := newUserController(t)

	users := testUsers("Alice", "Bruno")
	gw.EXPECT().
		ListPage(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.User]{Content: users, TotalElements: 2}, nil)
	gw.EXPECT().
		ListPage(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.User]{}, errors.New("connection refused"))

	assert.NoError(t, c.Reload(context.Background()))
	err := c.Reload(context.Background())

	assert.Error(t, err)
	assert.Equal(t, users, c.Items())
	assert.Equal(t, int64(2), c.TotalElements())
}

func TestPageBeyondRangeIsEmptyNotError(t *testing.T) {
	c, gw := newUserController(t)

	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 9, Size: 10}).
		Return(domain.Page[domain.User]{Content: []domain.User{}, TotalElements: 12}, nil)

	assert.NoError(t, c.SetPage(context.Background(), 9))
	assert.Empty(t, c.Items())
	assert.Equal(t, int64(12), c.TotalElements())
}

func TestQuickSearchNarrowsVisibleItems(t *testing.T) {
	c, gw := newUserController(t)

	gw.EXPECT().
		ListPage(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.User]{Content: testUsers("Alice", "Bruno", "Alina"), TotalElements: 3}, nil)

	assert.NoError(t, c.Reload(context.Background()))

	c.SetQuickSearch("  AL ")
	visible := c.VisibleItems()

	assert.Len(t, visible, 2)
	assert.Equal(t, "Alice", visible[0].Name)
	assert.Equal(t, "Alina", visible[1].Name)
	assert.Len(t, c.Items(), 3)
}

func TestQuickSearchDisabledWhileFilterActive(t *testing.T) {
	c, gw := newUserController(t)

	users := testUsers("Alice", "Alina")
	gw.EXPECT().
		Search(gomock.Any(), domain.FilterByName, "al", gomock.Any()).
		Return(domain.Page[domain.User]{Content: users, TotalElements: 2}, nil)

	assert.NoError(t, c.SetFilter(context.Background(), domain.FilterByName, "al"))
	assert.False(t, c.QuickSearchEnabled())

	c.SetQuickSearch("alice")
	assert.Equal(t, users, c.VisibleItems())
}

func TestSetFilterClearsQuickSearch(t *testing.T) {
	c, gw := newUserController(t)

	gw.EXPECT().
		ListPage(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.User]{Content: testUsers("Alice", "Bruno"), TotalElements: 2}, nil).
		Times(2)

	assert.NoError(t, c.Reload(context.Background()))
	c.SetQuickSearch("alice")
	assert.Len(t, c.VisibleItems(), 1)

	assert.NoError(t, c.ClearFilter(context.Background()))
	assert.Len(t, c.VisibleItems(), 2)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	c, gw := newUserController(t)

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 0, Size: 10}).
		DoAndReturn(func(context.Context, domain.PageRequest) (domain.Page[domain.User], error) {
			close(firstStarted)
			<-release
			return domain.Page[domain.User]{Content: testUsers("Stale"), TotalElements: 99}, nil
		})
	gw.EXPECT().
		ListPage(gomock.Any(), domain.PageRequest{Page: 1, Size: 10}).
		Return(domain.Page[domain.User]{Content: testUsers("Fresh"), TotalElements: 2}, nil)

	done := make(chan error)
	go func() { done <- c.Reload(context.Background()) }()

	<-firstStarted
	assert.NoError(t, c.SetPage(context.Background(), 1))

	close(release)
	assert.NoError(t, <-done)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Fresh", items[0].Name)
	assert.Equal(t, int64(2), c.TotalElements())
}
