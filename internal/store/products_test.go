package store

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/apperr"
)

func TestProductStoreCreate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, dir := newProductStore(t)
		img := writeImage(t, dir, "a.png")

		id, err := s.Create(t.Context(), CreateProduct{
			Name:        "Starter Kit",
			Description: "entry level device",
			Price:       29.99,
			Stock:       5,
			Image:       img,
		})
		require.NoError(t, err)
		require.NotZero(t, id)

		p, err := s.GetByID(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, "Starter Kit", p.Name)
		assert.Equal(t, img, p.Image)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("MissingFields", func(t *testing.T) {
		s, dir := newProductStore(t)
		img := writeImage(t, dir, "a.png")

		cases := map[string]CreateProduct{
			"NoName":        {Description: "d", Price: 1, Stock: 1, Image: img},
			"NoDescription": {Name: "n", Price: 1, Stock: 1, Image: img},
			"NoImage":       {Name: "n", Description: "d", Price: 1, Stock: 1},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := s.Create(t.Context(), in)
				require.Error(t, err)
				assert.True(t, apperr.CodeIs(err, http.StatusBadRequest))
			})
		}
	})

	t.Run("NegativePriceOrStock", func(t *testing.T) {
		s, dir := newProductStore(t)
		img := writeImage(t, dir, "a.png")

		_, err := s.Create(t.Context(), CreateProduct{Name: "n", Description: "d", Price: -1, Stock: 1, Image: img})
		assert.True(t, apperr.CodeIs(err, http.StatusBadRequest))

		_, err = s.Create(t.Context(), CreateProduct{Name: "n", Description: "d", Price: 1, Stock: -1, Image: img})
		assert.True(t, apperr.CodeIs(err, http.StatusBadRequest))
	})
}

func TestProductStoreList(t *testing.T) {
	t.Run("PaginationMath", func(t *testing.T) {
		s, dir := newProductStore(t)
		seedProducts(t, s, dir, 25)

		page, err := s.List(t.Context(), ListParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, page.Data, 10)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(25), page.Total)
		assert.True(t, page.HasMore)

		page, err = s.List(t.Context(), ListParams{Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, page.Data, 5)
		assert.False(t, page.HasMore)
	})

	t.Run("NewestFirst", func(t *testing.T) {
		s, dir := newProductStore(t)
		seedProducts(t, s, dir, 3)

		page, err := s.List(t.Context(), ListParams{})
		require.NoError(t, err)
		require.Len(t, page.Data, 3)
		assert.Equal(t, "Product 03", page.Data[0].Name)
		assert.Equal(t, "Product 01", page.Data[2].Name)
	})

	t.Run("ClampsBadPaging", func(t *testing.T) {
		s, dir := newProductStore(t)
		seedProducts(t, s, dir, 12)

		page, err := s.List(t.Context(), ListParams{Page: 0, Limit: -5})
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Len(t, page.Data, 10)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		s, dir := newProductStore(t)
		for _, p := range []CreateProduct{
			{Name: "Alpha Mod", Description: "fruity flavor", Price: 10, Stock: 1, Image: writeImage(t, dir, "s1.png")},
			{Name: "Beta Kit", Description: "menthol blast", Price: 12, Stock: 1, Image: writeImage(t, dir, "s2.png")},
		} {
			_, err := s.Create(t.Context(), p)
			require.NoError(t, err)
		}

		page, err := s.List(t.Context(), ListParams{Search: "ALPHA"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Alpha Mod", page.Data[0].Name)

		// matches descriptions too
		page, err = s.List(t.Context(), ListParams{Search: "Menthol"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Beta Kit", page.Data[0].Name)

		page, err = s.List(t.Context(), ListParams{Search: "nothing here"})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 0, page.TotalPages)
		assert.False(t, page.HasMore)
	})
}

func TestProductStoreUpdate(t *testing.T) {
	t.Run("PreservesImageWithoutNewOne", func(t *testing.T) {
		s, dir := newProductStore(t)
		img := writeImage(t, dir, "keep.png")
		id, err := s.Create(t.Context(), CreateProduct{Name: "n", Description: "d", Price: 1, Stock: 1, Image: img})
		require.NoError(t, err)

		err = s.Update(t.Context(), id, UpdateProduct{Name: "renamed", Description: "d2", Price: 2, Stock: 3})
		require.NoError(t, err)

		p, err := s.GetByID(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, "renamed", p.Name)
		assert.Equal(t, img, p.Image)
		assert.True(t, fileExists(img))
	})

	t.Run("ReplacesImageAndRemovesOldFile", func(t *testing.T) {
		s, dir := newProductStore(t)
		oldImg := writeImage(t, dir, "old.png")
		newImg := writeImage(t, dir, "new.png")
		id, err := s.Create(t.Context(), CreateProduct{Name: "n", Description: "d", Price: 1, Stock: 1, Image: oldImg})
		require.NoError(t, err)

		err = s.Update(t.Context(), id, UpdateProduct{Name: "n", Description: "d", Price: 1, Stock: 1, NewImage: newImg})
		require.NoError(t, err)

		p, err := s.GetByID(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, newImg, p.Image)
		assert.False(t, fileExists(oldImg))
		assert.True(t, fileExists(newImg))
	})

	t.Run("UnknownID", func(t *testing.T) {
		s, _ := newProductStore(t)
		err := s.Update(t.Context(), 9999, UpdateProduct{Name: "n", Description: "d", Price: 1, Stock: 1})
		assert.True(t, apperr.CodeIs(err, http.StatusNotFound))
	})
}

func TestProductStoreDelete(t *testing.T) {
	s, dir := newProductStore(t)
	img := writeImage(t, dir, "gone.png")
	id, err := s.Create(t.Context(), CreateProduct{Name: "n", Description: "d", Price: 1, Stock: 1, Image: img})
	require.NoError(t, err)

	require.NoError(t, s.Delete(t.Context(), id))
	assert.False(t, fileExists(img))

	_, err = s.GetByID(t.Context(), id)
	assert.True(t, apperr.CodeIs(err, http.StatusNotFound))

	// repeating the delete yields not-found
	err = s.Delete(t.Context(), id)
	assert.True(t, apperr.CodeIs(err, http.StatusNotFound))
}
