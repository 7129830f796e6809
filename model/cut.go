package model

// Cut is a single memorable scene of a film, served from the static dataset.
type Cut struct {
	ID     int    `json:"id"`
	Src    string `json:"src"`
	FilmID int    `json:"filmId"`
}

// CutVote is a toggleable like relationship between a user and a cut.
type CutVote struct {
	UserID int `json:"userId"`
	CutID  int `json:"cutId"`
}
