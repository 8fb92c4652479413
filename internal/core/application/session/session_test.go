package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/application/session"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

type MockProfileReader struct{ mock.Mock }

func (m *MockProfileReader) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Record(ctx context.Context, activity profile.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func profileWithRole(t *testing.T, id kernel.UUID, role profile.Role) *profile.Profile {
	t.Helper()
	p, err := profile.NewProfile(id, now)
	require.NoError(t, err)
	_, err = p.ChangeRole(role, now)
	require.NoError(t, err)
	return p
}

func TestContext_StartsLoadingWithoutRedirect(t *testing.T) {
	c := session.New()

	assert.Equal(t, session.StateLoading, c.Snapshot().State)
	_, ok := c.Redirect()
	assert.False(t, ok)
}

func TestContext_RedirectIsIssuedOnce(t *testing.T) {
	c := session.New()
	c.Resolve(t.Context(), kernel.NewUUID(), profile.Staff, now)

	route, ok := c.Redirect()
	require.True(t, ok)
	assert.Equal(t, "/staff-scan", route)

	_, ok = c.Redirect()
	assert.False(t, ok)
}

func TestContext_RedirectSuppressedAfterNavigation(t *testing.T) {
	c := session.New()
	c.Resolve(t.Context(), kernel.NewUUID(), profile.Admin, now)
	c.MarkNavigated()

	_, ok := c.Redirect()

	assert.False(t, ok)
}

func TestContext_SubscribeAndUnsubscribe(t *testing.T) {
	c := session.New()
	var first, second []session.EventKind
	unsubscribeFirst := c.Subscribe(func(_ context.Context, e session.Event) { first = append(first, e.Kind) })
	c.Subscribe(func(_ context.Context, e session.Event) { second = append(second, e.Kind) })

	userID := kernel.NewUUID()
	c.Resolve(t.Context(), userID, profile.Customer, now)
	unsubscribeFirst()
	unsubscribeFirst()
	c.SignOut(t.Context(), now)

	assert.Equal(t, []session.EventKind{session.EventResolved}, first)
	assert.Equal(t, []session.EventKind{session.EventResolved, session.EventSignedOut}, second)
	assert.Equal(t, session.StateAnonymous, c.Snapshot().State)
	assert.False(t, c.Snapshot().HasUser())
}

func TestContext_SignOutEventCarriesPreviousUser(t *testing.T) {
	c := session.New()
	userID := kernel.NewUUID()
	var got session.Event
	c.Subscribe(func(_ context.Context, e session.Event) { got = e })

	c.Resolve(t.Context(), userID, profile.Customer, now)
	c.SignOut(t.Context(), now)

	assert.Equal(t, session.EventSignedOut, got.Kind)
	assert.True(t, got.Previous.UserID.IsEqual(userID))
}

func TestManager_Open(t *testing.T) {
	t.Run("uses the stored role", func(t *testing.T) {
		userID := kernel.NewUUID()
		reader := new(MockProfileReader)
		reader.On("Get", mock.Anything, userID).Return(profileWithRole(t, userID, profile.Admin), nil).Once()

		c, err := session.NewManager(reader).Open(t.Context(), userID)

		require.NoError(t, err)
		assert.Equal(t, profile.Admin, c.Snapshot().Role)
		route, ok := c.Redirect()
		assert.True(t, ok)
		assert.Equal(t, "/admin-dashboard", route)
		reader.AssertExpectations(t)
	})

	t.Run("missing profile means customer", func(t *testing.T) {
		userID := kernel.NewUUID()
		reader := new(MockProfileReader)
		reader.On("Get", mock.Anything, userID).Return(nil, errs.NewObjectNotFoundError("profile", userID)).Once()

		c, err := session.NewManager(reader).Open(t.Context(), userID)

		require.NoError(t, err)
		assert.Equal(t, profile.Customer, c.Snapshot().Role)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		userID := kernel.NewUUID()
		reader := new(MockProfileReader)
		reader.On("Get", mock.Anything, userID).Return(nil, errors.New("connection refused")).Once()

		_, err := session.NewManager(reader).Open(t.Context(), userID)

		require.Error(t, err)
	})

	t.Run("attaches observers to every session", func(t *testing.T) {
		userID := kernel.NewUUID()
		reader := new(MockProfileReader)
		reader.On("Get", mock.Anything, userID).Return(nil, errs.NewObjectNotFoundError("profile", userID))
		activities := new(MockActivityRepository)
		activities.On("Record", mock.Anything, mock.MatchedBy(func(a profile.Activity) bool {
			return a.UserID().IsEqual(userID) && a.Type() == profile.ActivitySignedIn
		})).Return(nil).Twice()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		m := session.NewManager(reader, session.LoggingObserver(logger), session.ActivityObserver(activities, logger))
		_, err := m.Open(t.Context(), userID)
		require.NoError(t, err)
		_, err = m.Open(t.Context(), userID)
		require.NoError(t, err)

		activities.AssertExpectations(t)
		assert.Contains(t, buf.String(), "Session resolved")
		assert.Contains(t, buf.String(), "role=customer")
	})

	t.Run("activity write failure does not fail the session", func(t *testing.T) {
		userID := kernel.NewUUID()
		reader := new(MockProfileReader)
		reader.On("Get", mock.Anything, userID).Return(profileWithRole(t, userID, profile.Staff), nil)
		activities := new(MockActivityRepository)
		activities.On("Record", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

		c, err := session.NewManager(reader, session.ActivityObserver(activities, logger)).Open(t.Context(), userID)

		require.NoError(t, err)
		assert.Equal(t, session.StateResolved, c.Snapshot().State)
	})
}

func TestManager_SignOut(t *testing.T) {
	userID := kernel.NewUUID()
	reader := new(MockProfileReader)
	reader.On("Get", mock.Anything, userID).Return(profileWithRole(t, userID, profile.Staff), nil).Once()
	activities := new(MockActivityRepository)
	activities.On("Record", mock.Anything, mock.MatchedBy(func(a profile.Activity) bool {
		return a.UserID().IsEqual(userID) && a.Type() == profile.ActivitySignedOut
	})).Return(nil).Once()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	err := session.NewManager(reader, session.ActivityObserver(activities, logger)).SignOut(t.Context(), userID)

	require.NoError(t, err)
	activities.AssertExpectations(t)
	reader.AssertExpectations(t)
}

func TestManager_Role(t *testing.T) {
	userID := kernel.NewUUID()
	reader := new(MockProfileReader)
	reader.On("Get", mock.Anything, userID).Return(profileWithRole(t, userID, profile.Staff), nil).Once()

	role, err := session.NewManager(reader).Role(t.Context(), userID)

	require.NoError(t, err)
	assert.Equal(t, profile.Staff, role)

	_, err = session.NewManager(reader).Role(t.Context(), kernel.UUID{})
	require.Error(t, err)
}
