package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/portal/internal/api"
	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/mocks"
	"github.com/samandr77/microservices/portal/internal/repository"
	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

const (
	jwtSecret    = "test-secret"
	inquiryTopic = "portal.inquiries"
	chatTopic    = "portal.chat"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clientAPI struct {
	router    http.Handler
	store     *repository.Store
	publisher *mocks.MockPublisher
}

func newClientAPI(t *testing.T) clientAPI {
	t.Helper()

	data, err := seed.Load()
	require.NoError(t, err)

	store := repository.NewStore(repository.NewNetwork(0, false), data)
	publisher := mocks.NewMockPublisher(gomock.NewController(t))
	catalog := i18n.DefaultCatalog()

	s := service.New(store, catalog, publisher, nil, service.Config{
		InquiryTopic:  inquiryTopic,
		ChatTopic:     chatTopic,
		ChatRetention: time.Hour,
	}).WithClock(func() time.Time { return time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC) })

	router := api.NewRouter(api.NewHandler(s, catalog), api.NewMiddleware(catalog, i18n.Arabic, jwtSecret))

	return clientAPI{router: router, store: store, publisher: publisher}
}

func (c clientAPI) do(t *testing.T, method, target, body, role string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}

	if role != "" {
		r.Header.Set("Authorization", "Bearer "+token(t, jwtSecret, role))
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, r)

	return rec
}

func token(t *testing.T, secret, role string) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role}).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func TestHandler_Home_Localized(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	for _, tt := range []struct {
		name      string
		target    string
		header    string
		want      i18n.Locale
		wantDir   string
		wantTitle string
	}{
		{name: "default arabic", target: "/api/v1/pages/home", want: i18n.Arabic, wantDir: "rtl",
			wantTitle: "كلية الهندسة"},
		{name: "lang param", target: "/api/v1/pages/home?lang=en", want: i18n.English, wantDir: "ltr",
			wantTitle: "College of Engineering"},
		{name: "accept language", target: "/api/v1/pages/home", header: "en-US,en;q=0.9", want: i18n.English,
			wantDir: "ltr", wantTitle: "College of Engineering"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				r.Header.Set("Accept-Language", tt.header)
			}

			rec := httptest.NewRecorder()
			c.router.ServeHTTP(rec, r)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.want.String(), rec.Header().Get("Content-Language"))

			resp := decode[api.Localized[api.HomeResponse]](t, rec)
			require.Equal(t, tt.want, resp.Locale)
			require.Equal(t, tt.wantDir, resp.Dir)
			require.Len(t, resp.Data.FeaturedNews, 3)
			require.Len(t, resp.Data.Colleges, 3)
			require.Equal(t, tt.wantTitle, resp.Data.Colleges[0].Name)
		})
	}
}

func TestHandler_LangParamSetsCookie(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	rec := c.do(t, http.MethodGet, "/api/v1/locale?lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, i18n.LangCookieName, cookies[0].Name)
	require.Equal(t, "en", cookies[0].Value)

	resp := decode[api.LocaleResponse](t, rec)
	require.Equal(t, "ltr", resp.Dir)
	require.Equal(t, "Home", resp.Nav["home"])
	require.Len(t, resp.Options, 2)
	require.Equal(t, "/api/v1/locale?lang=ar", resp.Options[0].URL)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/locale", nil)
	r.AddCookie(cookies[0])

	rec = httptest.NewRecorder()
	c.router.ServeHTTP(rec, r)

	require.Equal(t, i18n.English, decode[api.LocaleResponse](t, rec).Locale)
	require.Empty(t, rec.Result().Cookies())
}

func TestHandler_Program(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	rec := c.do(t, http.MethodGet, "/api/v1/colleges/computing/programs/computer-science?lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.Localized[api.ProgramResponse]](t, rec)

	want := api.ProgramResponse{
		ProgramView: api.ProgramView{
			ID:            4,
			Slug:          "computer-science",
			CollegeID:     2,
			Name:          "Computer Science",
			Description:   "Algorithms, software engineering and artificial intelligence.",
			Degree:        entity.DegreeBachelor,
			DegreeLabel:   "Bachelor's",
			DurationYears: 4,
			Credits:       136,
			TuitionFee:    decimal.RequireFromString("38500"),
			Currency:      entity.CurrencySAR,
			TuitionLabel:  "38,500 SAR",
		},
		College: "College of Computing",
	}

	if diff := cmp.Diff(want, resp.Data); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}

	rec = c.do(t, http.MethodGet, "/api/v1/colleges/business/programs/computer-science?lang=en", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "The requested content was not found", decode[api.ResponseError](t, rec).Message)
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	for _, tt := range []struct {
		name        string
		target      string
		wantCode    int
		wantMessage string
	}{
		{name: "unknown news", target: "/api/v1/news/missing?lang=en", wantCode: http.StatusNotFound,
			wantMessage: "The requested content was not found"},
		{name: "unknown news arabic", target: "/api/v1/news/missing", wantCode: http.StatusNotFound,
			wantMessage: "المحتوى المطلوب غير موجود"},
		{name: "bad upcoming flag", target: "/api/v1/events?upcoming=maybe&lang=en", wantCode: http.StatusBadRequest,
			wantMessage: "Invalid request"},
		{name: "bad faculty id", target: "/api/v1/faculty/abc?lang=en", wantCode: http.StatusBadRequest,
			wantMessage: "Invalid request"},
		{name: "bad degree", target: "/api/v1/programs?degree=bootcamp&lang=en", wantCode: http.StatusBadRequest,
			wantMessage: "Invalid request"},
		{name: "admin as guest", target: "/api/v1/admin/stats?lang=en", wantCode: http.StatusForbidden,
			wantMessage: "You do not have access to this section"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := c.do(t, http.MethodGet, tt.target, "", "")
			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantMessage, decode[api.ResponseError](t, rec).Message)
		})
	}
}

func TestHandler_Offline(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	c.store.Net.SetOffline(true)

	rec := c.do(t, http.MethodGet, "/api/v1/pages/home?lang=en", "", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp := decode[api.ResponseError](t, rec)
	require.Equal(t, "Something went wrong while loading this page. Please try again.", resp.Message)
	require.NotNil(t, resp.State)
	require.True(t, resp.State.Error)
	require.False(t, resp.State.Loading)

	c.store.Net.SetOffline(false)

	rec = c.do(t, http.MethodGet, "/api/v1/pages/home?lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	rec := c.do(t, http.MethodGet, "/api/v1/search?q=a&lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	short := decode[api.Localized[api.SearchResponse]](t, rec)
	require.Equal(t, "Type at least two characters to search.", short.Message)
	require.Zero(t, short.Data.Total)
	require.NotNil(t, short.Data.News)

	rec = c.do(t, http.MethodGet, "/api/v1/search?q=ENGINEERING&lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	found := decode[api.Localized[api.SearchResponse]](t, rec)
	require.Empty(t, found.Message)
	require.Positive(t, found.Data.Total)
	require.NotEmpty(t, found.Data.Programs)

	rec = c.do(t, http.MethodGet, "/api/v1/search?q=zzzzzz", "", "")
	require.Equal(t, "لا توجد نتائج مطابقة لبحثك.", decode[api.Localized[api.SearchResponse]](t, rec).Message)
}

func TestHandler_SubmitInquiry(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		body        string
		publish     bool
		wantCode    int
		wantMessage string
	}{
		{
			name:        "contact",
			body:        `{"kind":"contact","name":"Sara Ahmed","email":"Sara@Example.com","message":"Hello"}`,
			publish:     true,
			wantCode:    http.StatusAccepted,
			wantMessage: "Thank you! Your message has been sent and we will get back to you soon.",
		},
		{
			name:        "newsletter without name",
			body:        `{"kind":"newsletter","email":"sara@example.com"}`,
			publish:     true,
			wantCode:    http.StatusAccepted,
			wantMessage: "You are now subscribed to our newsletter.",
		},
		{
			name:        "invalid email",
			body:        `{"kind":"contact","name":"Sara Ahmed","email":"sara.example.com","message":"Hello"}`,
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "Please enter a valid email address.",
		},
		{
			name:        "unknown program",
			body:        `{"kind":"admission","name":"Sara Ahmed","email":"sara@example.com","programSlug":"astrology"}`,
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "The selected program does not exist.",
		},
		{
			name:        "broken json",
			body:        `{"kind":`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClientAPI(t)

			if tt.publish {
				c.publisher.EXPECT().
					Publish(gomock.Any(), inquiryTopic, gomock.Any(), gomock.Any()).
					Return(nil)
			}

			rec := c.do(t, http.MethodPost, "/api/v1/inquiries?lang=en", tt.body, "")
			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusAccepted {
				resp := decode[api.Localized[api.InquiryResponse]](t, rec)
				require.Equal(t, tt.wantMessage, resp.Message)
				require.NotEmpty(t, resp.Data.ID)

				return
			}

			require.Equal(t, tt.wantMessage, decode[api.ResponseError](t, rec).Message)
		})
	}
}

func TestHandler_Chat(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	rec := c.do(t, http.MethodGet, "/api/v1/chat/messages?lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	greeting := decode[api.Localized[[]api.ChatMessageView]](t, rec)
	require.Len(t, greeting.Data, 1)
	require.Equal(t, "Hello! How can we help you today?", greeting.Data[0].Text)

	c.publisher.EXPECT().Publish(gomock.Any(), chatTopic, "s-1", gomock.Any()).Return(nil)

	rec = c.do(t, http.MethodPost, "/api/v1/chat/messages?lang=en",
		`{"sessionId":"s-1","text":"What are the admission requirements?"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	sent := decode[api.Localized[[]api.ChatMessageView]](t, rec)
	require.Len(t, sent.Data, 2)
	require.Equal(t, entity.ChatAuthorVisitor, sent.Data[0].Author)
	require.Equal(t, entity.ChatAuthorBot, sent.Data[1].Author)
	require.Contains(t, sent.Data[1].Text, "aptitude test")

	rec = c.do(t, http.MethodGet, "/api/v1/chat/messages?session=s-1", "", "")
	require.Len(t, decode[api.Localized[[]api.ChatMessageView]](t, rec).Data, 2)

	rec = c.do(t, http.MethodPost, "/api/v1/chat/messages?lang=en", `{"sessionId":"s-1","text":"   "}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "Message must be between 1 and 1000 characters.", decode[api.ResponseError](t, rec).Message)
}

func TestHandler_RoleDetection(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	for _, tt := range []struct {
		name     string
		auth     string
		wantRole string
	}{
		{name: "no token", wantRole: entity.RoleGuest},
		{name: "editor", auth: "Bearer " + token(t, jwtSecret, entity.RoleEditor), wantRole: entity.RoleEditor},
		{name: "wrong secret", auth: "Bearer " + token(t, "other", entity.RoleAdmin), wantRole: entity.RoleGuest},
		{name: "unknown role", auth: "Bearer " + token(t, jwtSecret, "superuser"), wantRole: entity.RoleGuest},
		{name: "garbage", auth: "Bearer abc.def", wantRole: entity.RoleGuest},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/me?lang=en", nil)
			if tt.auth != "" {
				r.Header.Set("Authorization", tt.auth)
			}

			rec := httptest.NewRecorder()
			c.router.ServeHTTP(rec, r)

			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[api.Localized[api.RoleView]](t, rec)
			require.Equal(t, tt.wantRole, resp.Data.Name)
			require.Equal(t, entity.GetPermissionsByRole(tt.wantRole), resp.Data.Permissions)
		})
	}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	r.AddCookie(&http.Cookie{Name: api.TokenCookieName, Value: token(t, jwtSecret, entity.RoleFaculty)})

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, r)

	resp := decode[api.Localized[api.RoleView]](t, rec)
	require.Equal(t, entity.RoleFaculty, resp.Data.Name)
	require.Equal(t, "عضو هيئة تدريس", resp.Data.Label)
}

func TestHandler_AdminPermissions(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		role     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{name: "editor stats", role: entity.RoleEditor, method: http.MethodGet, target: "/api/v1/admin/stats",
			wantCode: http.StatusOK},
		{name: "faculty stats", role: entity.RoleFaculty, method: http.MethodGet, target: "/api/v1/admin/stats",
			wantCode: http.StatusForbidden},
		{name: "faculty deletes event", role: entity.RoleFaculty, method: http.MethodDelete,
			target: "/api/v1/admin/events/4", wantCode: http.StatusNoContent},
		{name: "faculty deletes news", role: entity.RoleFaculty, method: http.MethodDelete,
			target: "/api/v1/admin/news/4", wantCode: http.StatusForbidden},
		{name: "editor deletes news", role: entity.RoleEditor, method: http.MethodDelete,
			target: "/api/v1/admin/news/4", wantCode: http.StatusNoContent},
		{name: "editor deletes missing news", role: entity.RoleEditor, method: http.MethodDelete,
			target: "/api/v1/admin/news/99", wantCode: http.StatusNotFound},
		{name: "editor lists users", role: entity.RoleEditor, method: http.MethodGet,
			target: "/api/v1/admin/users", wantCode: http.StatusForbidden},
		{name: "admin lists users", role: entity.RoleAdmin, method: http.MethodGet,
			target: "/api/v1/admin/users", wantCode: http.StatusOK},
		{name: "admin deletes user", role: entity.RoleAdmin, method: http.MethodDelete,
			target: "/api/v1/admin/users/4", wantCode: http.StatusNoContent},
		{name: "admin sets unknown role", role: entity.RoleAdmin, method: http.MethodPut,
			target: "/api/v1/admin/users/3/role", body: `{"role":"superuser"}`, wantCode: http.StatusUnprocessableEntity},
		{name: "admin promotes user", role: entity.RoleAdmin, method: http.MethodPut,
			target: "/api/v1/admin/users/3/role", body: `{"role":"editor"}`, wantCode: http.StatusOK},
		{name: "admin blocks user", role: entity.RoleAdmin, method: http.MethodPut,
			target: "/api/v1/admin/users/3/status", body: `{"status":"blocked"}`, wantCode: http.StatusOK},
		{name: "admin roles", role: entity.RoleAdmin, method: http.MethodGet,
			target: "/api/v1/admin/roles", wantCode: http.StatusOK},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClientAPI(t)

			rec := c.do(t, tt.method, tt.target, tt.body, tt.role)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_CreateNews(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	body := `{"slug":"open-day","title":{"ar":"اليوم المفتوح","en":"Open day"},"category":"campus"}`

	rec := c.do(t, http.MethodPost, "/api/v1/admin/news", body, entity.RoleEditor)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[entity.NewsItem](t, rec)
	require.Equal(t, 6, created.ID)
	require.False(t, created.PublishedAt.IsZero())

	rec = c.do(t, http.MethodGet, "/api/v1/news/open-day?lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Open day", decode[api.Localized[api.NewsView]](t, rec).Data.Title)

	rec = c.do(t, http.MethodPost, "/api/v1/admin/news", body, entity.RoleEditor)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = c.do(t, http.MethodPost, "/api/v1/admin/news", `{"slug":"x","title":{"en":"Only English"}}`, entity.RoleEditor)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
