package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"photocard/config"
	"photocard/internal/delivery/api/response"
	"photocard/internal/delivery/api/router"
	"photocard/internal/delivery/api/router/handler"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"
	mockusecase "photocard/internal/mocks/usecase"
	"photocard/internal/replica"
	"photocard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo    *echo.Echo
	replica *replica.Replica
	session *mockusecase.MockSessionUsecase
	catalog *mockusecase.MockCatalogUsecase
	search  *mockusecase.MockSearchHistoryUsecase
	image   *mockusecase.MockImageUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	api := &testAPI{
		replica: replica.New(replica.Options{}, logger),
		session: mockusecase.NewMockSessionUsecase(t),
		catalog: mockusecase.NewMockCatalogUsecase(t),
		search:  mockusecase.NewMockSearchHistoryUsecase(t),
		image:   mockusecase.NewMockImageUsecase(t),
	}
	api.echo = NewEcho(cfg, logger, router.RouterParams{
		StatusHandler: handler.NewStatusHandler(handler.StatusHandlerParams{Replica: api.replica}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: api.catalog,
			Replica:   api.replica,
			Logger:    logger,
		}),
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: api.session}),
		MeHandler: handler.NewMeHandler(handler.MeHandlerParams{
			SessionUC: api.session,
			CatalogUC: api.catalog,
			SearchUC:  api.search,
		}),
		ImageHandler: handler.NewImageHandler(handler.ImageHandlerParams{ImageUC: api.image}),
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{Replica: api.replica, Logger: logger}),
	})

	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *testAPI) seed(c entity.Collection, pos int, id string, rec repository.Record) {
	a.replica.Apply(c, repository.Batch{Changes: []repository.Change{{
		Kind:     repository.ChangeAdded,
		OldIndex: -1,
		NewIndex: pos,
		ID:       id,
		Record:   rec,
	}}})
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth_EchoesRequestID(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	env := decode(t, rec)
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok","listeners":0}`, string(env.Data))
}

func TestHealth_DegradedWhenNoFeedListens(t *testing.T) {
	api := newTestAPI(t)
	api.replica.ReportFeedStatus(replica.FeedStatus{
		Collection: entity.CollectionIdols,
		State:      replica.FeedDegraded,
		Attempt:    2,
		Err:        errors.New("unavailable"),
	})

	env := decode(t, api.do(http.MethodGet, "/health", ""))
	assert.Contains(t, string(env.Data), `"degraded"`)

	rec := api.do(http.MethodGet, "/feeds", "")
	env = decode(t, rec)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 1, *env.Meta.Count)
	assert.Contains(t, string(env.Data), `"state":"degraded"`)
	assert.Contains(t, string(env.Data), `"attempt":2`)
}

func TestListPhotocards_FiltersAndResolvesNames(t *testing.T) {
	api := newTestAPI(t)
	api.seed(entity.CollectionIdols, 0, "i1", repository.Record{"name": "Karina"})
	api.seed(entity.CollectionIdols, 1, "i2", repository.Record{"name": "Winter"})
	api.seed(entity.CollectionPhotocards, 0, "p1", repository.Record{"idol": entity.NewRef(entity.CollectionIdols, "i1")})
	api.seed(entity.CollectionPhotocards, 1, "p2", repository.Record{"idol": entity.NewRef(entity.CollectionIdols, "i2")})

	rec := api.do(http.MethodGet, "/photocards?idolId=i2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	var cards []handler.PhotocardView
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "p2", cards[0].ID)
	assert.Equal(t, &handler.NamedRef{ID: "i2", Name: "Winter"}, cards[0].Idol)
}

func TestListArtists_CyclicGraph(t *testing.T) {
	api := newTestAPI(t)
	api.seed(entity.CollectionArtists, 0, "a1", repository.Record{
		"name":   "aespa",
		"albums": []any{entity.NewRef(entity.CollectionAlbums, "al1")},
	})
	api.seed(entity.CollectionAlbums, 0, "al1", repository.Record{
		"name":   "Savage",
		"artist": entity.NewRef(entity.CollectionArtists, "a1"),
	})

	rec := api.do(http.MethodGet, "/albums", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"artist":{"id":"a1","name":"aespa"}`)

	rec = api.do(http.MethodGet, "/artists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"albums":[{"id":"al1"`)
}

func TestGetPhotocard_NotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/photocards/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAddIdol(t *testing.T) {
	t.Run("validation failure never reaches the use case", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/idols", `{"name":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "name")
	})

	t.Run("malformed body", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/idols", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		api := newTestAPI(t)
		api.catalog.EXPECT().
			AddIdol(mock.Anything, mock.MatchedBy(func(in *usecase.AddIdolInput) bool { return in.Name == "Giselle" })).
			Return(&entity.Idol{ID: "i9", Name: "Giselle"}, nil)

		rec := api.do(http.MethodPost, "/idols", `{"name":"Giselle"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"i9","name":"Giselle","image":{"name":"","locator":""}}`, string(decode(t, rec).Data))
	})
}

func TestMarkListingSold_Conflict(t *testing.T) {
	api := newTestAPI(t)
	api.catalog.EXPECT().MarkListingSold(mock.Anything, "l1").
		Return(nil, domainerrors.ErrConflict.WithDetails("listing l1 is already sold"))

	rec := api.do(http.MethodPost, "/listings/l1/sold", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "CONFLICT", env.Error.Code)
	assert.Equal(t, "listing l1 is already sold", env.Error.Details)
}

func TestListListings_SoldFilter(t *testing.T) {
	api := newTestAPI(t)
	api.seed(entity.CollectionListings, 0, "l1", repository.Record{"price": 10.0, "sold": true})
	api.seed(entity.CollectionListings, 1, "l2", repository.Record{"price": 12.5})

	rec := api.do(http.MethodGet, "/listings?sold=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listings []handler.ListingView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "l2", listings[0].ID)

	rec = api.do(http.MethodGet, "/listings?sold=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe(t *testing.T) {
	t.Run("no session hides details", func(t *testing.T) {
		api := newTestAPI(t)
		api.session.EXPECT().Current(mock.Anything).
			Return(nil, domainerrors.ErrNoCurrentUser.WithDetails("internal"))

		rec := api.do(http.MethodGet, "/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "NO_CURRENT_USER", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})

	t.Run("list edits", func(t *testing.T) {
		api := newTestAPI(t)
		api.catalog.EXPECT().AddToWishlist(mock.Anything, "p1").Return(nil)
		api.catalog.EXPECT().RemoveFavourite(mock.Anything, "p2").Return(nil)

		assert.Equal(t, http.StatusNoContent, api.do(http.MethodPut, "/me/wishlist/p1", "").Code)
		assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/me/favourites/p2", "").Code)
	})

	t.Run("searches", func(t *testing.T) {
		api := newTestAPI(t)
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		api.search.EXPECT().List(mock.Anything).
			Return([]repository.SearchEntry{{Text: "karina", Timestamp: at}}, nil)
		api.search.EXPECT().Record(mock.Anything, "winter").Return(nil)
		api.search.EXPECT().Forget(mock.Anything, "aespa karina").Return(nil)

		rec := api.do(http.MethodGet, "/me/searches", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"text":"karina","timestamp":"2024-05-01T12:00:00Z"}]`, string(decode(t, rec).Data))

		assert.Equal(t, http.StatusNoContent, api.do(http.MethodPost, "/me/searches", `{"text":"winter"}`).Code)
		assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/me/searches/aespa%20karina", "").Code)
	})
}

func TestSearch(t *testing.T) {
	api := newTestAPI(t)
	api.search.EXPECT().Search(mock.Anything, "winter").
		Return([]*entity.Photocard{{
			ID:      "p2",
			IdolRef: entity.NewRef(entity.CollectionIdols, "i2"),
			Idol:    &entity.Idol{ID: "i2", Name: "Winter"},
		}}, nil)
	api.search.EXPECT().Search(mock.Anything, "").
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("search text is required"))

	rec := api.do(http.MethodGet, "/search?q=winter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 1, *env.Meta.Count)
	var cards []handler.PhotocardView
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, &handler.NamedRef{ID: "i2", Name: "Winter"}, cards[0].Idol)

	rec = api.do(http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "search text is required", decode(t, rec).Error.Details)
}

func TestUnhandledErrorIsOpaque(t *testing.T) {
	api := newTestAPI(t)
	api.catalog.EXPECT().DeleteIdol(mock.Anything, "i1").Return(errors.New("socket closed"))

	rec := api.do(http.MethodDelete, "/idols/i1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "socket")
}

func TestImages(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("load", func(t *testing.T) {
		api := newTestAPI(t)
		api.image.EXPECT().Load(mock.Anything, entity.Image{Name: "k.png", Locator: "idols/k.png"}).Return(png, nil)

		rec := api.do(http.MethodGet, "/images/k.png?locator=idols/k.png", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("missing remote", func(t *testing.T) {
		api := newTestAPI(t)
		api.image.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrStorageNotFound)

		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/images/gone.png", "").Code)
	})

	t.Run("upload", func(t *testing.T) {
		api := newTestAPI(t)
		api.image.EXPECT().Upload(mock.Anything, png, "card.png").
			Return(entity.Image{Name: "card.png", Locator: "uploads/card.png"}, nil)

		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("file", "card.png")
		require.NoError(t, err)
		_, err = part.Write(png)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/images", &body)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		rec := httptest.NewRecorder()
		api.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"name":"card.png","locator":"uploads/card.png"}`, string(decode(t, rec).Data))
	})
}

func TestEvents_RejectsUnknownInterest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/events?interest=idol,gossip", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, api.replica.Listeners())
}

func TestEvents_StreamsReplayThenUpdates(t *testing.T) {
	api := newTestAPI(t)
	api.seed(entity.CollectionIdols, 0, "i1", repository.Record{"name": "Karina"})

	srv := httptest.NewServer(api.echo)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?interest=idol", nil)
	require.NoError(t, err)
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get(echo.HeaderContentType))

	reader := bufio.NewReader(res.Body)
	next := func() (string, string) {
		var event, data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "" && event != "":
				return event, data
			}
		}
	}

	event, data := next()
	assert.Equal(t, "idol", event)
	assert.Contains(t, data, "Karina")
	assert.Equal(t, 1, api.replica.Listeners())

	api.seed(entity.CollectionIdols, 1, "i2", repository.Record{"name": "Winter"})
	event, data = next()
	assert.Equal(t, "idol", event)
	assert.Contains(t, data, "Winter")

	cancel()
	assert.Eventually(t, func() bool { return api.replica.Listeners() == 0 }, 2*time.Second, 10*time.Millisecond)
}
