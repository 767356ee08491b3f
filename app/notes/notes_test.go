package notes

import (
	"bitwise74/notes-api/internal"
	"bitwise74/notes-api/internal/model"
	"bitwise74/notes-api/internal/service"
	"bitwise74/notes-api/pkg/middleware"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gin.Engine, *internal.Deps) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:notes%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.User{}, model.Note{}))

	d := &internal.Deps{DB: db}

	router := gin.New()
	router.Use(middleware.NewRequestIDMiddleware())

	authGate := middleware.NewAuthMiddleware(db)

	n := router.Group("/api/notes")
	{
		n.POST("", authGate, func(c *gin.Context) { Create(c, d) })
		n.GET("", authGate, func(c *gin.Context) { List(c, d) })
		n.PUT("/:id", authGate, func(c *gin.Context) { Update(c, d) })
		n.DELETE("/:id", authGate, func(c *gin.Context) { Delete(c, d) })
		n.POST("/summary", func(c *gin.Context) { Summary(c, d) })
	}

	return router, d
}

// seedUser inserts a verified user directly and returns a token for it
func seedUser(t *testing.T, db *gorm.DB, id, email string) string {
	t.Helper()

	require.NoError(t, db.Create(&model.User{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: "x",
		Verified:     true,
	}).Error)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createNote(t *testing.T, router *gin.Engine, token string, body gin.H) model.Note {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/api/notes", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Note model.Note `json:"note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Note.ID)
	return resp.Note
}

func TestCreateNoteDefaults(t *testing.T) {
	router, d := setupTest(t)
	token := seedUser(t, d.DB, "u1", "a@x.com")

	note := createNote(t, router, token, gin.H{"content": "remember the milk"})
	assert.Empty(t, note.Title)
	assert.Equal(t, model.DefaultNoteColor, note.Color)
	assert.WithinDuration(t, time.Now(), note.Date, time.Minute)

	var stored model.Note
	require.NoError(t, d.DB.First(&stored, "id = ?", note.ID).Error)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "remember the milk", stored.Content)
}

func TestCreateNoteValidation(t *testing.T) {
	router, d := setupTest(t)
	token := seedUser(t, d.DB, "u1", "a@x.com")

	cases := []struct {
		name string
		body gin.H
		want string
	}{
		{"missing content", gin.H{"title": "x"}, "Content is required"},
		{"bad color", gin.H{"content": "x", "color": "green"}, "valid hex color"},
		{"long title", gin.H{"content": "x", "title": strings.Repeat("a", 101)}, "100 characters"},
		{"bad date", gin.H{"content": "x", "date": "yesterday"}, "Invalid date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/notes", tc.body, token)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestListNotesScopedToOwner(t *testing.T) {
	router, d := setupTest(t)
	tokenA := seedUser(t, d.DB, "userA", "a@x.com")
	tokenB := seedUser(t, d.DB, "userB", "b@x.com")

	created := createNote(t, router, tokenA, gin.H{"content": "mine"})

	w := doJSON(router, http.MethodGet, "/api/notes", nil, tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	w = doJSON(router, http.MethodGet, "/api/notes", nil, tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), created.ID)
}

func TestUpdateNotePartial(t *testing.T) {
	router, d := setupTest(t)
	token := seedUser(t, d.DB, "u1", "a@x.com")

	note := createNote(t, router, token, gin.H{
		"title":   "groceries",
		"content": "milk and eggs",
		"color":   "#ff0000",
	})

	w := doJSON(router, http.MethodPut, "/api/notes/"+note.ID, gin.H{"title": "shopping"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored model.Note
	require.NoError(t, d.DB.First(&stored, "id = ?", note.ID).Error)
	assert.Equal(t, "shopping", stored.Title)

	// Fields left out of the request are untouched
	assert.Equal(t, "milk and eggs", stored.Content)
	assert.Equal(t, "#ff0000", stored.Color)
}

func TestUpdateNoteValidation(t *testing.T) {
	router, d := setupTest(t)
	token := seedUser(t, d.DB, "u1", "a@x.com")

	note := createNote(t, router, token, gin.H{"content": "keep me"})

	w := doJSON(router, http.MethodPut, "/api/notes/"+note.ID, gin.H{"content": "  "}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPut, "/api/notes/"+note.ID, gin.H{"color": "red"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored model.Note
	require.NoError(t, d.DB.First(&stored, "id = ?", note.ID).Error)
	assert.Equal(t, "keep me", stored.Content)
}

func TestUpdateNoteNotOwned(t *testing.T) {
	router, d := setupTest(t)
	tokenA := seedUser(t, d.DB, "userA", "a@x.com")
	tokenB := seedUser(t, d.DB, "userB", "b@x.com")

	note := createNote(t, router, tokenA, gin.H{"content": "mine"})

	// 404 rather than 403 so the response doesn't confirm the note exists
	w := doJSON(router, http.MethodPut, "/api/notes/"+note.ID, gin.H{"title": "stolen"}, tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored model.Note
	require.NoError(t, d.DB.First(&stored, "id = ?", note.ID).Error)
	assert.Empty(t, stored.Title)
}

func TestDeleteNote(t *testing.T) {
	router, d := setupTest(t)
	tokenA := seedUser(t, d.DB, "userA", "a@x.com")
	tokenB := seedUser(t, d.DB, "userB", "b@x.com")

	note := createNote(t, router, tokenA, gin.H{"content": "mine"})

	w := doJSON(router, http.MethodDelete, "/api/notes/"+note.ID, nil, tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(&model.Note{}).Where("id = ?", note.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w = doJSON(router, http.MethodDelete, "/api/notes/"+note.ID, nil, tokenA)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, d.DB.Model(&model.Note{}).Where("id = ?", note.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestNotesRequireAuth(t *testing.T) {
	router, _ := setupTest(t)

	w := doJSON(router, http.MethodGet, "/api/notes", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/notes", gin.H{"content": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSummary(t *testing.T) {
	router, d := setupTest(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(gin.H{
			"choices": []gin.H{
				{"message": gin.H{"role": "assistant", "content": "a short summary"}},
			},
		})
	}))
	defer upstream.Close()

	d.AI = &service.OpenRouterClient{
		URL:    upstream.URL,
		APIKey: "test-key",
		Model:  "test-model",
		Client: upstream.Client(),
	}

	w := doJSON(router, http.MethodPost, "/api/notes/summary", gin.H{"content": "long text"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "a short summary")
}

func TestSummaryUpstreamFailure(t *testing.T) {
	router, d := setupTest(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(gin.H{"error": gin.H{"message": "model overloaded"}})
	}))
	defer upstream.Close()

	d.AI = &service.OpenRouterClient{
		URL:    upstream.URL,
		APIKey: "test-key",
		Model:  "test-model",
		Client: upstream.Client(),
	}

	w := doJSON(router, http.MethodPost, "/api/notes/summary", gin.H{"content": "long text"}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate summary")
}

func TestSummaryMissingContent(t *testing.T) {
	router, _ := setupTest(t)

	w := doJSON(router, http.MethodPost, "/api/notes/summary", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Content is required")
}
