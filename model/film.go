package model

// Film is a catalog entry served from the static dataset; films are not
// database rows.
type Film struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Genre       string `json:"genre"`
	Runtime     int    `json:"runningTime"`
	Release     string `json:"release"`
	DirectorID  int    `json:"director_id"`
	PosterImg   string `json:"posterImg"`
	Description string `json:"description"`
}

// Director of a film, also static data.
type Director struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PaginatedFilms is one page of the films query. Cursor is the id to request
// next, or nil when the catalog is exhausted.
type PaginatedFilms struct {
	Films  []*Film `json:"films"`
	Cursor *int    `json:"cursor"`
}
