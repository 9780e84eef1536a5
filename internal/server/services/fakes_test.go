package services

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
	moviesrepo "github.com/dmitrijs2005/videoclub/internal/server/repositories/movies"
	rentalsrepo "github.com/dmitrijs2005/videoclub/internal/server/repositories/rentals"
	usersrepo "github.com/dmitrijs2005/videoclub/internal/server/repositories/users"
)

// --- repository manager ---

type fakeRepoManager struct {
	u usersrepo.Repository
	m moviesrepo.Repository
	r rentalsrepo.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository         { return f.u }
func (f *fakeRepoManager) Movies(dbx.DBTX) moviesrepo.Repository       { return f.m }
func (f *fakeRepoManager) Rentals(dbx.DBTX) rentalsrepo.Repository     { return f.r }

// --- users ---

type fakeUsersRepo struct {
	usersrepo.Repository

	byEmail map[string]*models.User
	nextID  int64
	err     error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- movies ---

type fakeMoviesRepo struct {
	moviesrepo.Repository

	movies map[string]*models.Movie
	genres map[string][]models.MovieTitle
	err    error
}

func newFakeMoviesRepo() *fakeMoviesRepo {
	return &fakeMoviesRepo{
		movies: map[string]*models.Movie{
			"Pulp Fiction": {ID: 680, Title: "Pulp Fiction", Runtime: 154},
			"Heat":         {ID: 949, Title: "Heat", Runtime: 170},
		},
		genres: map[string][]models.MovieTitle{
			"Crime":   {{ID: 680, Title: "Pulp Fiction"}, {ID: 949, Title: "Heat"}},
			"Western": {},
		},
	}
}

func (f *fakeMoviesRepo) FindIDByTitle(_ context.Context, title string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	m, ok := f.movies[title]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return m.ID, nil
}

func (f *fakeMoviesRepo) GetByTitle(_ context.Context, title string) (*models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.movies[title]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return m, nil
}

func (f *fakeMoviesRepo) ListTitles(context.Context) ([]models.MovieTitle, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.MovieTitle, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, models.MovieTitle{ID: m.ID, Title: m.Title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMoviesRepo) GetGenre(_ context.Context, name string) (*models.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.genres[name]; !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Genre{ID: int64(len(name)), Genre: name}, nil
}

func (f *fakeMoviesRepo) ListByGenre(_ context.Context, genreID int64) ([]models.MovieTitle, error) {
	for name, titles := range f.genres {
		if int64(len(name)) == genreID {
			return titles, nil
		}
	}
	return []models.MovieTitle{}, nil
}

// --- rentals ---

type fakeRentalsRepo struct {
	rentalsrepo.Repository

	open       *models.Rental
	findErr    error
	createErr  error
	closeOut   *models.Rental
	closeErr   error
	listOut    []models.Rental
	listErr    error
	created    []time.Time
	closedWith []time.Time
}

func (f *fakeRentalsRepo) FindOpen(context.Context, int64, int64) (*models.Rental, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.open == nil {
		return nil, common.ErrorNotFound
	}
	return f.open, nil
}

func (f *fakeRentalsRepo) Create(_ context.Context, movieID, userID int64, start time.Time) (*models.Rental, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, start)
	return &models.Rental{ID: int64(len(f.created)), MovieID: movieID, UserID: userID, DateStart: start}, nil
}

func (f *fakeRentalsRepo) Close(_ context.Context, _, _ int64, end time.Time) (*models.Rental, error) {
	f.closedWith = append(f.closedWith, end)
	if f.closeErr != nil {
		return nil, f.closeErr
	}
	return f.closeOut, nil
}

func (f *fakeRentalsRepo) ListByUser(context.Context, int64) ([]models.Rental, error) {
	return f.listOut, f.listErr
}

func (f *fakeRentalsRepo) ListOpenByUser(context.Context, int64) ([]models.Rental, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var open []models.Rental
	for _, r := range f.listOut {
		if !r.Paid {
			open = append(open, r)
		}
	}
	return open, nil
}
