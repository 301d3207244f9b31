package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestResetPasswordRequiresSessionID(t *testing.T) {
	r := newTestRouter()
	r.POST("/auth/resetpassword", resetPassword)

	w := postJSON(r, "/auth/resetpassword", map[string]string{"password": "newpass1"})
	assert.Equal(t, 400, w.Code)

	// the old field name must not satisfy the contract
	w = postJSON(r, "/auth/resetpassword", map[string]string{"token": "abc", "password": "newpass1"})
	assert.Equal(t, 400, w.Code)
}

func TestResetPasswordBindsSessionID(t *testing.T) {
	r := newTestRouter()
	r.POST("/auth/resetpassword", resetPassword)

	// sessionId binds; the only remaining complaint is the short password
	w := postJSON(r, "/auth/resetpassword", map[string]string{"sessionId": "abc", "password": "abc"})
	assert.Equal(t, 400, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["errmsg"], "Password")
	assert.NotContains(t, body["errmsg"], "SessionID")
}

func TestMeReportsLogged(t *testing.T) {
	r := newTestRouter()
	r.GET("/me", func(c *gin.Context) {
		c.Set(sessionKey, &loginSession{
			Token:     "tok",
			UserID:    "admin@tutorhub.local",
			IsAdmin:   true,
			CreatedAt: time.Now().Unix(),
		})
	}, me)

	w := doGet(r, "/me")
	assert.Equal(t, 200, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["logged"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin@tutorhub.local", user["email"])
	assert.Equal(t, true, user["isAdmin"])
}
