package root

import (
	"bitwise74/notes-api/internal"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:health?mode=memory&cache=shared"))
	require.NoError(t, err)

	d := &internal.Deps{DB: db}

	router := gin.New()
	router.GET("/health", func(c *gin.Context) { Health(c, d) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string  `json:"status"`
		Timestamp string  `json:"timestamp"`
		Uptime    float64 `json:"uptime"`
		Database  string  `json:"database"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "Connected", body.Database)
	assert.NotEmpty(t, body.Timestamp)
	assert.GreaterOrEqual(t, body.Uptime, 0.0)
}
