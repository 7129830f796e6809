package service

import (
	"go-cuts-api/data"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilmService_Films(t *testing.T) {
	filmService := NewFilmService()
	total := len(data.Films)

	t.Run("first page carries the next cursor", func(t *testing.T) {
		page := filmService.Films(6, 1)

		assert.Len(t, page.Films, 6)
		assert.Equal(t, 1, page.Films[0].ID)
		assert.Equal(t, 6, page.Films[5].ID)
		if assert.NotNil(t, page.Cursor) {
			assert.Equal(t, 7, *page.Cursor)
		}
	})

	t.Run("limit above the cap is clamped", func(t *testing.T) {
		page := filmService.Films(100, 1)
		assert.Len(t, page.Films, MaxFilmsPerPage)
	})

	t.Run("zero limit falls back to the cap", func(t *testing.T) {
		page := filmService.Films(0, 1)
		assert.Len(t, page.Films, MaxFilmsPerPage)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		page := filmService.Films(6, total-1)

		assert.Len(t, page.Films, 2)
		assert.Nil(t, page.Cursor)
	})

	t.Run("walking every page visits the whole catalog", func(t *testing.T) {
		seen := 0
		cursor := 1
		for {
			page := filmService.Films(6, cursor)
			seen += len(page.Films)
			if page.Cursor == nil {
				break
			}
			cursor = *page.Cursor
		}
		assert.Equal(t, total, seen)
	})

	t.Run("unknown cursor yields an empty page", func(t *testing.T) {
		page := filmService.Films(6, 9999)

		assert.Empty(t, page.Films)
		assert.Nil(t, page.Cursor)
	})
}

func TestFilmService_Film(t *testing.T) {
	filmService := NewFilmService()

	film := filmService.Film(1)
	if assert.NotNil(t, film) {
		assert.Equal(t, 1, film.ID)
		assert.NotEmpty(t, film.Title)
	}

	assert.Nil(t, filmService.Film(9999))
}

func TestFilmService_DirectorForFilm(t *testing.T) {
	filmService := NewFilmService()

	film := filmService.Film(1)
	director := filmService.DirectorForFilm(film)
	if assert.NotNil(t, director) {
		assert.Equal(t, film.DirectorID, director.ID)
		assert.NotEmpty(t, director.Name)
	}
}
