package service

import (
	"go-cuts-api/data"
	"go-cuts-api/model"
)

// MaxFilmsPerPage caps the films query page size.
const MaxFilmsPerPage = 6

// FilmService serves the static film catalog with cursor pagination.
type FilmService struct {
	films     []*model.Film
	directors []*model.Director
}

func NewFilmService() *FilmService {
	return &FilmService{films: data.Films, directors: data.Directors}
}

// Films returns one catalog page. The cursor is the id of the first film on
// the page; the returned cursor is one past the last id when another page
// exists, nil at the end. An unknown cursor yields an empty page.
func (s *FilmService) Films(limit, cursor int) *model.PaginatedFilms {
	if limit > MaxFilmsPerPage || limit <= 0 {
		limit = MaxFilmsPerPage
	}

	start := -1
	for i, film := range s.films {
		if film.ID == cursor {
			start = i
			break
		}
	}
	if start == -1 {
		return &model.PaginatedFilms{Films: []*model.Film{}}
	}

	end := start + limit
	if end > len(s.films) {
		end = len(s.films)
	}
	page := s.films[start:end]

	nextCursor := page[len(page)-1].ID + 1
	if s.Film(nextCursor) == nil {
		return &model.PaginatedFilms{Films: page}
	}
	return &model.PaginatedFilms{Films: page, Cursor: &nextCursor}
}

// Film returns a single film by id, or nil.
func (s *FilmService) Film(filmID int) *model.Film {
	for _, film := range s.films {
		if film.ID == filmID {
			return film
		}
	}
	return nil
}

// DirectorForFilm resolves a film's director from the catalog.
func (s *FilmService) DirectorForFilm(film *model.Film) *model.Director {
	for _, director := range s.directors {
		if director.ID == film.DirectorID {
			return director
		}
	}
	return nil
}
