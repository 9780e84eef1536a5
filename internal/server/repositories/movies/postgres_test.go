package movies

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/videoclub/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var movieCols = []string{"movie_id", "title", "budget", "genres", "original_language", "original_title",
	"overview", "popularity", "release_date", "revenue", "runtime", "vote_average", "vote_count"}

func TestFindIDByTitle_LowestIDWins(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+movie_id\s+FROM\s+movie\s+WHERE\s+title\s*=\s*\$1\s+ORDER\s+BY\s+movie_id\s+LIMIT\s+1\s*$`
	mock.ExpectQuery(q).
		WithArgs("Pulp Fiction").
		WillReturnRows(sqlmock.NewRows([]string{"movie_id"}).AddRow(int64(680)))

	id, err := repo.FindIDByTitle(context.Background(), "Pulp Fiction")
	if err != nil {
		t.Fatalf("FindIDByTitle error: %v", err)
	}
	if id != 680 {
		t.Fatalf("id = %d, want 680", id)
	}
}

func TestFindIDByTitle_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+movie_id\s+FROM\s+movie`).
		WithArgs("Nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindIDByTitle(context.Background(), "Nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByTitle(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+movie_id,\s*title,\s*COALESCE\(budget,\s*0\).*FROM\s+movie\s+WHERE\s+title\s*=\s*\$1\s+ORDER\s+BY\s+movie_id\s+LIMIT\s+1\s*$`
	mock.ExpectQuery(q).
		WithArgs("Heat").
		WillReturnRows(sqlmock.NewRows(movieCols).
			AddRow(int64(949), "Heat", int64(60000000), "Action, Crime", "en", "Heat",
				"Cops and robbers.", 77.03, "1995-12-15", int64(187436818), 170.0, 7.7, int64(1886)))

	m, err := repo.GetByTitle(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("GetByTitle error: %v", err)
	}
	if m.ID != 949 || m.Budget != 60000000 || m.Runtime != 170 || m.VoteCount != 1886 {
		t.Fatalf("unexpected movie: %+v", m)
	}
}

func TestGetByTitle_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+movie`).WithArgs("Heat").WillReturnError(errors.New("db down"))

	_, err := repo.GetByTitle(context.Background(), "Heat")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListTitles(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+movie_id,\s*title\s+FROM\s+movie\s+ORDER\s+BY\s+movie_id\s*$`
	mock.ExpectQuery(q).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "title"}).
			AddRow(int64(1), "Avatar").
			AddRow(int64(2), "Heat"))

	got, err := repo.ListTitles(context.Background())
	if err != nil {
		t.Fatalf("ListTitles error: %v", err)
	}
	if len(got) != 2 || got[1].Title != "Heat" {
		t.Fatalf("unexpected titles: %+v", got)
	}
}

func TestListTitles_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+movie`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "title"}).
			AddRow(int64(1), "Avatar").
			RowError(0, errors.New("cursor broke")))

	_, err := repo.ListTitles(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*cursor broke`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped row error, got %v", err)
	}
}

func TestGetGenre(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+genre_id,\s*genre\s+FROM\s+genre\s+WHERE\s+genre\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs("Crime").
		WillReturnRows(sqlmock.NewRows([]string{"genre_id", "genre"}).AddRow(int64(3), "Crime"))
	mock.ExpectQuery(q).
		WithArgs("Opera").
		WillReturnError(sql.ErrNoRows)

	g, err := repo.GetGenre(context.Background(), "Crime")
	if err != nil || g.ID != 3 {
		t.Fatalf("GetGenre = %+v, %v", g, err)
	}

	_, err = repo.GetGenre(context.Background(), "Opera")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByGenre(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+m\.movie_id,\s*m\.title\s+FROM\s+movie\s+m\s+JOIN\s+movie_genre\s+mg\s+ON\s+mg\.movie_id\s*=\s*m\.movie_id\s+WHERE\s+mg\.genre_id\s*=\s*\$1\s+ORDER\s+BY\s+m\.movie_id\s*$`
	mock.ExpectQuery(q).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "title"}).AddRow(int64(680), "Pulp Fiction"))

	got, err := repo.ListByGenre(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByGenre error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 680 {
		t.Fatalf("unexpected titles: %+v", got)
	}
}

func TestListByGenre_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`JOIN\s+movie_genre`).WithArgs(int64(3)).WillReturnError(errors.New("db err"))

	_, err := repo.ListByGenre(context.Background(), 3)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
