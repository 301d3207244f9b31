package app

import (
	"strconv"
	"time"

	"TutorHub/common"
	"TutorHub/dao"
	"github.com/gin-gonic/gin"
)

const sessionCookie = "sid"

// loginSession is the authenticated state behind the sid cookie. It
// lives in a redis hash so every instance sees the same sessions.
type loginSession struct {
	Token     string
	UserID    string // student uid, or the admin email for admins
	IsAdmin   bool
	CreatedAt int64 // unix seconds
}

func (s *loginSession) Expired() bool {
	return time.Now().Unix()-s.CreatedAt > int64(dao.LoginSessionExpire/time.Second)
}

// getSession loads the caller's session, or nil when the cookie is
// missing or the redis entry is gone.
func getSession(c *gin.Context) *loginSession {
	if v, ok := c.Get(sessionKey); ok {
		return v.(*loginSession)
	}
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		return nil
	}
	mp := dao.GetLoginSession(token)
	if len(mp) == 0 {
		return nil
	}
	s := &loginSession{
		Token:     token,
		UserID:    mp["user_id"],
		IsAdmin:   common.StrToBool(mp["is_admin"]),
		CreatedAt: common.StrToInt64(mp["created_at"]),
	}
	c.Set(sessionKey, s)
	return s
}

func isLogin(c *gin.Context) bool {
	s := getSession(c)
	return s != nil && s.UserID != ""
}

// newSession regenerates the session on signin: any existing session is
// destroyed first so a pre-auth token never survives authentication.
// The redis write happens before the cookie goes out.
func newSession(c *gin.Context, userID string, isAdmin bool) error {
	destroySession(c)
	token := common.NewToken()
	err := dao.PutLoginSession(token, dao.H{
		"user_id":    userID,
		"is_admin":   strconv.FormatBool(isAdmin),
		"created_at": strconv.FormatInt(time.Now().Unix(), 10),
	})
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, token, int(dao.LoginSessionExpire/time.Second), "/", "", false, true)
	c.Set(sessionKey, &loginSession{
		Token:     token,
		UserID:    userID,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().Unix(),
	})
	return nil
}

// destroySession drops the redis entry and clears the cookie. Safe to
// call with no session at all.
func destroySession(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		dao.DelLoginSession(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	delete(c.Keys, sessionKey)
}
