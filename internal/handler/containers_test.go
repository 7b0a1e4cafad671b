package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tolvmar/chestwarden/internal/domain"
)

// MockContainerStore mocks the repository.Container interface
type MockContainerStore struct {
	mock.Mock
}

func (m *MockContainerStore) ReplaceContainer(ctx context.Context, xuid string, kind domain.ContainerKind, items []domain.ItemRecord) error {
	args := m.Called(ctx, xuid, kind, items)
	return args.Error(0)
}

func (m *MockContainerStore) ReadContainer(ctx context.Context, xuid string, kind domain.ContainerKind) ([]domain.ItemRecord, error) {
	args := m.Called(ctx, xuid, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRecord), args.Error(1)
}

func containerRouter(store *MockContainerStore) http.Handler {
	r := chi.NewRouter()
	if store == nil {
		r.Get("/players/{xuid}/containers/{kind}", HandleContainerRead(nil))
	} else {
		r.Get("/players/{xuid}/containers/{kind}", HandleContainerRead(store))
	}
	return r
}

func TestHandleContainerRead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := &MockContainerStore{}
		mockStore.On("ReadContainer", mock.Anything, "100", domain.KindEnderChest).Return([]domain.ItemRecord{
			{Slot: 3, TypeID: "minecraft:diamond", Count: 9},
		}, nil)

		req := httptest.NewRequest("GET", "/players/100/containers/ender_chest", nil)
		w := httptest.NewRecorder()

		containerRouter(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"kind":"ender_chest"`)
		assert.Contains(t, w.Body.String(), `"type":"minecraft:diamond"`)
		mockStore.AssertExpectations(t)
	})

	t.Run("Empty Container", func(t *testing.T) {
		mockStore := &MockContainerStore{}
		mockStore.On("ReadContainer", mock.Anything, "100", domain.KindInventory).Return([]domain.ItemRecord{}, nil)

		req := httptest.NewRequest("GET", "/players/100/containers/inventory", nil)
		w := httptest.NewRecorder()

		containerRouter(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("Unknown Identity", func(t *testing.T) {
		mockStore := &MockContainerStore{}
		mockStore.On("ReadContainer", mock.Anything, "999", domain.KindInventory).Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest("GET", "/players/999/containers/inventory", nil)
		w := httptest.NewRecorder()

		containerRouter(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid Kind", func(t *testing.T) {
		mockStore := &MockContainerStore{}

		req := httptest.NewRequest("GET", "/players/100/containers/backpack", nil)
		w := httptest.NewRecorder()

		containerRouter(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockStore.AssertNotCalled(t, "ReadContainer")
	})

	t.Run("Nil Store", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/players/100/containers/inventory", nil)
		w := httptest.NewRecorder()

		containerRouter(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
