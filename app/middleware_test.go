package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(jsonResponse)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestJsonResponsePacksKeys(t *testing.T) {
	r := newTestRouter()
	r.GET("/ok", func(c *gin.Context) {
		c.Set("answer", 42)
	})
	w := doGet(r, "/ok")
	assert.Equal(t, 200, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["answer"])
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, statusKey)
}

func TestJsonResponseError(t *testing.T) {
	r := newTestRouter()
	r.GET("/fail", func(c *gin.Context) {
		setError(c, 404, "No such group")
	})
	w := doGet(r, "/fail")
	assert.Equal(t, 404, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No such group", body["errmsg"])
	assert.Equal(t, false, body["success"])
}

func TestJsonResponseStatusOverride(t *testing.T) {
	r := newTestRouter()
	r.GET("/created", func(c *gin.Context) {
		setStatus(c, 201)
		c.Set("id", "abc")
	})
	w := doGet(r, "/created")
	assert.Equal(t, 201, w.Code)
}

func TestJsonResponseEmptyHandler(t *testing.T) {
	r := newTestRouter()
	r.GET("/noop", func(c *gin.Context) {})
	w := doGet(r, "/noop")
	assert.Equal(t, 200, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestJsonResponseSkipsWrittenResponses(t *testing.T) {
	r := newTestRouter()
	r.GET("/raw", func(c *gin.Context) {
		c.String(418, "teapot")
	})
	w := doGet(r, "/raw")
	assert.Equal(t, 418, w.Code)
	assert.Equal(t, "teapot", w.Body.String())
}

func TestAuthLoginWithoutSession(t *testing.T) {
	r := newTestRouter()
	r.GET("/private", AuthLogin, func(c *gin.Context) {
		c.Set("reached", true)
	})
	w := doGet(r, "/private")
	assert.Equal(t, 403, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "reached")
}

func TestAuthAdminWithoutSession(t *testing.T) {
	r := newTestRouter()
	r.GET("/admin-only", AuthAdmin, func(c *gin.Context) {
		c.Set("reached", true)
	})
	w := doGet(r, "/admin-only")
	assert.Equal(t, 403, w.Code)
}

func TestCheckExpirationWithoutSession(t *testing.T) {
	r := newTestRouter()
	r.GET("/open", CheckExpiration, func(c *gin.Context) {
		c.Set("reached", true)
	})
	w := doGet(r, "/open")
	assert.Equal(t, 200, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["reached"])
}
