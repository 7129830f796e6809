package client

// Response shapes for the typed helpers. Only the fields the helpers select
// are declared.

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

type Director struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Film struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Genre       string    `json:"genre"`
	RunningTime int       `json:"runningTime"`
	Release     string    `json:"release"`
	PosterImg   string    `json:"posterImg"`
	Description string    `json:"description"`
	Director    *Director `json:"director"`
}

type PaginatedFilms struct {
	Films  []*Film `json:"films"`
	Cursor *int    `json:"cursor"`
}

type Cut struct {
	ID         int    `json:"id"`
	Src        string `json:"src"`
	FilmID     int    `json:"filmId"`
	VotesCount int    `json:"votesCount"`
	IsVoted    bool   `json:"isVoted"`
}

type CutReview struct {
	ID       int    `json:"id"`
	CutID    int    `json:"cutId"`
	Contents string `json:"contents"`
	IsMine   bool   `json:"isMine"`
	User     *User  `json:"user"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type LoginResult struct {
	Errors      []FieldError `json:"errors"`
	User        *User        `json:"user"`
	AccessToken string       `json:"accessToken"`
}
