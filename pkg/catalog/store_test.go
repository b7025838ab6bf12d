package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentvehicle/rentkit/pkg/catalog"
	"github.com/rentvehicle/rentkit/pkg/validator"
)

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()

	store := catalog.NewStore()
	vehicles := []catalog.Vehicle{
		{ID: "V001", Name: "Toyota Avanza", Category: "MPV", BaseRate: 15000, Available: true},
		{ID: "V002", Name: "Honda Jazz", Category: "Hatchback", BaseRate: 12000, Available: true},
		{ID: "V003", Name: "Honda CBR 150", Category: "Motor", BaseRate: 8000, Available: false},
	}
	for _, v := range vehicles {
		require.NoError(t, store.Add(v))
	}
	return store
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate id", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		err := store.Add(catalog.Vehicle{ID: "V001", Name: "Another", BaseRate: 1000})
		assert.ErrorIs(t, err, catalog.ErrDuplicateVehicle)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		t.Parallel()

		store := catalog.NewStore()
		err := store.Add(catalog.Vehicle{ID: " ", Name: "", BaseRate: -5})
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"id", "name", "base_rate"}, ve.Fields())
		assert.Equal(t, 0, store.Len())
	})
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	t.Run("insertion order", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		all := store.List()
		require.Len(t, all, 3)
		assert.Equal(t, "V001", all[0].ID)
		assert.Equal(t, "V002", all[1].ID)
		assert.Equal(t, "V003", all[2].ID)
	})

	t.Run("available filters rented vehicles", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		available := store.ListAvailable()
		require.Len(t, available, 2)
		assert.Equal(t, "V001", available[0].ID)
		assert.Equal(t, "V002", available[1].ID)
	})

	t.Run("returned copies do not leak store state", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		all := store.List()
		all[0].Available = false
		all[0].Name = "mutated"

		v, err := store.Find("V001")
		require.NoError(t, err)
		assert.True(t, v.Available)
		assert.Equal(t, "Toyota Avanza", v.Name)
	})
}

func TestStore_Find(t *testing.T) {
	t.Parallel()

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		_, err := store.Find("V999")
		assert.ErrorIs(t, err, catalog.ErrVehicleNotFound)
	})

	t.Run("find available distinguishes rented from unknown", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)

		_, err := store.FindAvailable("V003")
		assert.ErrorIs(t, err, catalog.ErrVehicleUnavailable)

		_, err = store.FindAvailable("V999")
		assert.ErrorIs(t, err, catalog.ErrVehicleNotFound)

		v, err := store.FindAvailable("V002")
		require.NoError(t, err)
		assert.Equal(t, "Honda Jazz", v.Name)
	})
}

func TestStore_SetAvailable(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		require.NoError(t, store.SetAvailable("V001", false))

		_, err := store.FindAvailable("V001")
		assert.ErrorIs(t, err, catalog.ErrVehicleUnavailable)

		require.NoError(t, store.SetAvailable("V001", true))
		_, err = store.FindAvailable("V001")
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		err := store.SetAvailable("V999", true)
		assert.ErrorIs(t, err, catalog.ErrVehicleNotFound)
	})
}
