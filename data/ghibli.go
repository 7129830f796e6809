// Package data holds the static film catalog. Films, directors and cuts are
// fixed editorial content; only users, votes and reviews live in the
// database.
package data

import (
	"fmt"

	"go-cuts-api/model"
)

var Directors = []*model.Director{
	{ID: 1, Name: "Hayao Miyazaki"},
	{ID: 2, Name: "Isao Takahata"},
	{ID: 3, Name: "Yoshifumi Kondo"},
	{ID: 4, Name: "Hiromasa Yonebayashi"},
	{ID: 5, Name: "Goro Miyazaki"},
}

var Films = []*model.Film{
	{ID: 1, Title: "Castle in the Sky", Subtitle: "Laputa", Genre: "Adventure", Runtime: 124, Release: "1986-08-02", DirectorID: 1,
		Description: "A young boy and a girl with a magic crystal race against pirates and agents in search of a legendary floating castle."},
	{ID: 2, Title: "Grave of the Fireflies", Subtitle: "", Genre: "Drama", Runtime: 89, Release: "1988-04-16", DirectorID: 2,
		Description: "A devastating meditation on the human cost of war, following a brother and sister in 1945 Kobe."},
	{ID: 3, Title: "My Neighbor Totoro", Subtitle: "", Genre: "Fantasy", Runtime: 86, Release: "1988-04-16", DirectorID: 1,
		Description: "Two sisters move to the country and discover the friendly forest spirits living nearby."},
	{ID: 4, Title: "Kiki's Delivery Service", Subtitle: "", Genre: "Fantasy", Runtime: 103, Release: "1989-07-29", DirectorID: 1,
		Description: "A young witch starts a flying delivery service in a seaside town."},
	{ID: 5, Title: "Only Yesterday", Subtitle: "", Genre: "Drama", Runtime: 118, Release: "1991-07-20", DirectorID: 2,
		Description: "A Tokyo office worker revisits her childhood on a trip to the countryside."},
	{ID: 6, Title: "Porco Rosso", Subtitle: "", Genre: "Adventure", Runtime: 94, Release: "1992-07-18", DirectorID: 1,
		Description: "A World War I ace cursed with the face of a pig flies as a bounty hunter over the Adriatic."},
	{ID: 7, Title: "Pom Poko", Subtitle: "", Genre: "Comedy", Runtime: 119, Release: "1994-07-16", DirectorID: 2,
		Description: "Shape-shifting raccoon dogs fight to save their forest from suburban development."},
	{ID: 8, Title: "Whisper of the Heart", Subtitle: "", Genre: "Romance", Runtime: 111, Release: "1995-07-15", DirectorID: 3,
		Description: "A bookish teenager follows a cat and finds her calling as a writer."},
	{ID: 9, Title: "Princess Mononoke", Subtitle: "", Genre: "Fantasy", Runtime: 134, Release: "1997-07-12", DirectorID: 1,
		Description: "A cursed prince is drawn into the struggle between the forest gods and an iron town."},
	{ID: 10, Title: "Spirited Away", Subtitle: "", Genre: "Fantasy", Runtime: 125, Release: "2001-07-20", DirectorID: 1,
		Description: "A girl must work in a bathhouse for spirits to free her transformed parents."},
	{ID: 11, Title: "Howl's Moving Castle", Subtitle: "", Genre: "Fantasy", Runtime: 119, Release: "2004-11-20", DirectorID: 1,
		Description: "A hat maker cursed with old age seeks refuge in a wizard's walking castle."},
	{ID: 12, Title: "Tales from Earthsea", Subtitle: "", Genre: "Fantasy", Runtime: 115, Release: "2006-07-29", DirectorID: 5,
		Description: "A troubled prince and a wandering mage confront a darkness unbalancing the world."},
	{ID: 13, Title: "Ponyo", Subtitle: "", Genre: "Fantasy", Runtime: 101, Release: "2008-07-19", DirectorID: 1,
		Description: "A goldfish princess longs to become human after befriending a boy on a cliff by the sea."},
	{ID: 14, Title: "Arrietty", Subtitle: "The Secret World of Arrietty", Genre: "Fantasy", Runtime: 94, Release: "2010-07-17", DirectorID: 4,
		Description: "A tiny borrower girl is discovered by the human boy whose house she lives beneath."},
}

const cutsPerFilm = 10

// Cuts is generated from the catalog: ten numbered stills per film, with
// stable ids so votes and reviews can reference them.
var Cuts = buildCuts()

func buildCuts() []*model.Cut {
	cuts := make([]*model.Cut, 0, len(Films)*cutsPerFilm)
	for _, film := range Films {
		for i := 1; i <= cutsPerFilm; i++ {
			id := film.ID*100 + i
			cuts = append(cuts, &model.Cut{
				ID:     id,
				FilmID: film.ID,
				Src:    fmt.Sprintf("https://cuts.diario.dev/ghibli/%d/%d.jpg", film.ID, i),
			})
		}
	}
	return cuts
}

func init() {
	for _, film := range Films {
		film.PosterImg = fmt.Sprintf("https://cuts.diario.dev/ghibli/posters/%d.jpg", film.ID)
	}
}
