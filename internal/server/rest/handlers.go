package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

const healthTimeout = 2 * time.Second

type tokenResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

type userResponse struct {
	envelope
	User *models.User `json:"user"`
}

type rentalResponse struct {
	envelope
	Rental *models.Rental `json:"rental"`
}

// movieDetails is the display form of a catalog record.
type movieDetails struct {
	Title            string  `json:"title"`
	Budget           string  `json:"budget"`
	Genres           string  `json:"genres"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date"`
	Revenue          string  `json:"revenue"`
	Runtime          string  `json:"runtime"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.Register(r.Context(), f["email"], f["password"], f["first_name"], f["last_name"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		envelope: envelope{OK: true, Message: "User successfully created!"},
		User:     user,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.users.Login(r.Context(), f["email"], f["password"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{OK: true, Token: token})
}

func (s *Server) getAllUsers(w http.ResponseWriter, r *http.Request, _ *models.User) {
	users, err := s.users.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": nonNil(users)})
}

func (s *Server) getAllMovieTitles(w http.ResponseWriter, r *http.Request, _ *models.User) {
	titles, err := s.catalog.ListTitles(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"movies": nonNil(titles)})
}

func (s *Server) getMoviesByCategory(w http.ResponseWriter, r *http.Request, _ *models.User) {
	titles, err := s.catalog.ListByGenre(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"movies": nonNil(titles)})
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request, _ *models.User) {
	m, err := s.catalog.Describe(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, movieDetails{
		Title:            m.Title,
		Budget:           formatDollars(m.Budget),
		Genres:           m.Genres,
		OriginalLanguage: m.OriginalLanguage,
		OriginalTitle:    m.OriginalTitle,
		Overview:         m.Overview,
		Popularity:       m.Popularity,
		ReleaseDate:      m.ReleaseDate,
		Revenue:          formatDollars(m.Revenue),
		Runtime:          formatRuntime(m.Runtime),
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
	})
}

func (s *Server) rent(w http.ResponseWriter, r *http.Request, user *models.User) {
	f, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	title := f["title"]
	rental, err := s.rentals.Rent(r.Context(), user.ID, title)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rentalResponse{
		envelope: envelope{OK: true, Message: fmt.Sprintf("%s successfully rented!", title)},
		Rental:   rental,
	})
}

func (s *Server) returnMovie(w http.ResponseWriter, r *http.Request, user *models.User) {
	f, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	title := f["title"]
	rental, err := s.rentals.Return(r.Context(), user.ID, title)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rentalResponse{
		envelope: envelope{OK: true, Message: fmt.Sprintf("%s (rental id: %d) successfully returned!", title, rental.ID)},
		Rental:   rental,
	})
}

func (s *Server) getRentals(w http.ResponseWriter, r *http.Request, user *models.User) {
	rentals, err := s.rentals.ListForUser(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"rentals": nonNil(rentals)})
}

func (s *Server) getCharge(w http.ResponseWriter, r *http.Request, user *models.User) {
	amount, err := s.billing.ChargeForUser(r.Context(), user.ID, s.now())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"charge": formatEuros(amount)})
}
