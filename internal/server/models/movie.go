package models

// Movie is a catalog title with its descriptive attributes.
// Genres is a free-form label list as imported from the catalog source.
type Movie struct {
	ID               int64   `json:"movie_id"`
	Title            string  `json:"title"`
	Budget           int64   `json:"budget"`
	Genres           string  `json:"genres"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date"`
	Revenue          int64   `json:"revenue"`
	Runtime          float64 `json:"runtime"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
}

// MovieTitle is the id/title projection used by catalog listings.
type MovieTitle struct {
	ID    int64  `json:"movie_id"`
	Title string `json:"title"`
}

type Genre struct {
	ID    int64  `json:"genre_id"`
	Genre string `json:"genre"`
}
