package web_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reelrank/internal/movies"
	"reelrank/internal/tmdb"
	"reelrank/internal/web"
)

const matrixDetails = `{"id":603,"title":"The Matrix","release_date":"1999-03-30","poster_path":"/x.jpg","overview":"A hacker learns the truth."}`

func newTestRouter(t *testing.T) (*gin.Engine, *movies.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&movies.Movie{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := movies.NewStore(db, discard)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/movie":
			fmt.Fprintf(w, `{"page":1,"results":[%s],"total_results":1}`, matrixDetails)
		case "/movie/603":
			fmt.Fprint(w, matrixDetails)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	cfg := tmdb.NewConfig("key")
	cfg.BaseURL = upstream.URL
	client := tmdb.NewClient(cfg, discard)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	web.NewHandlers(store, client, discard).Register(r)
	return r, store
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestHomeListsRankedMovies(t *testing.T) {
	r, store := newTestRouter(t)
	rating := 7.3
	if err := store.Create(&movies.Movie{
		Title: "Phone Booth", Slug: "phone-booth", Year: 2002,
		Description: "synopsis", ImageURL: "/p.jpg", Rating: &rating,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "1. Phone Booth (2002)") {
		t.Fatalf("index page missing ranked entry:\n%s", w.Body.String())
	}
}

func TestSearchEmptyTitleRepromptsForm(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/add", url.Values{"title": {""}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "movie title is required") {
		t.Fatalf("validation message missing:\n%s", w.Body.String())
	}
}

func TestSearchRendersCandidates(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/add", url.Values{"title": {"The Matrix"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/find?id=603") {
		t.Fatalf("candidate link missing:\n%s", w.Body.String())
	}
}

func TestFindCreatesAndRedirectsToEdit(t *testing.T) {
	r, store := newTestRouter(t)

	w := get(r, "/find?id=603")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	location := w.Header().Get("Location")
	if !strings.HasPrefix(location, "/edit?id=") {
		t.Fatalf("redirect = %q, want /edit?id=...", location)
	}

	all, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 1 || all[0].Title != "The Matrix" {
		t.Fatalf("movie not created: %+v", all)
	}
}

func TestFindDuplicateTitleConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := get(r, "/find?id=603"); w.Code != http.StatusFound {
		t.Fatalf("first find: status = %d", w.Code)
	}
	if w := get(r, "/find?id=603"); w.Code != http.StatusConflict {
		t.Fatalf("second find: status = %d, want 409", w.Code)
	}
}

func TestEditUnknownMovieNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := get(r, "/edit?id=42"); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRateThenRedirectHome(t *testing.T) {
	r, store := newTestRouter(t)
	if err := store.Create(&movies.Movie{
		Title: "Phone Booth", Slug: "phone-booth", Year: 2002,
		Description: "synopsis", ImageURL: "/p.jpg",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := postForm(r, "/edit?id=1", url.Values{"rating": {"7.3"}, "review": {"tense"}})
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/" {
		t.Fatalf("redirect = %q, want /", location)
	}

	got, err := store.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Rating == nil || *got.Rating != 7.3 {
		t.Fatalf("rating not saved: %+v", got)
	}
}

func TestDeleteInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := get(r, "/delete?id=abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteMissingMovie(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := get(r, "/delete?id=42"); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
