package dao

import (
	"encoding/json"
	"time"
)

// Ephemeral token and cache entries. Everything here is TTL-bound and
// lives only in redis; an abandoned signup or reset self-cleans.
const (
	signupKeyPrefix  = "signup_"
	resetKeyPrefix   = "reset_"
	sessionKeyPrefix = "session_"

	StudentsCacheKey = "adminStudents"
	GroupsCacheKey   = "myGroups"
	AdminCacheKey    = "admin"

	TokenExpire        = 300 * time.Second // OTP and reset links
	LoginSessionExpire = 8 * time.Hour
	ListCacheExpire    = 3 * time.Hour
)

// --- signup OTP sessions ---

func PutSignupSession(token string, fields H) error {
	return HMSetMap(signupKeyPrefix+token, fields, TokenExpire)
}

// GetSignupSession returns the pending signup fields, or an empty map
// when the token is unknown or expired.
func GetSignupSession(token string) map[string]string {
	mp, err := rdb.HGetAll(ctx, signupKeyPrefix+token).Result()
	if err != nil {
		return map[string]string{}
	}
	return mp
}

// RefreshSignupOTP swaps the code in place and restarts the TTL.
func RefreshSignupOTP(token, otp string) error {
	key := signupKeyPrefix + token
	if err := rdb.HSet(ctx, key, "otp", otp).Err(); err != nil {
		return err
	}
	return rdb.Expire(ctx, key, TokenExpire).Err()
}

func DelSignupSession(token string) {
	rdb.Del(ctx, signupKeyPrefix+token)
}

// --- password reset tokens ---

func PutResetToken(token, email string) error {
	return rdb.Set(ctx, resetKeyPrefix+token, email, TokenExpire).Err()
}

func GetResetToken(token string) (string, bool) {
	email, err := rdb.Get(ctx, resetKeyPrefix+token).Result()
	if err != nil || email == "" {
		return "", false
	}
	return email, true
}

// DelResetToken makes the token single-use; TTL alone is not enough.
func DelResetToken(token string) {
	rdb.Del(ctx, resetKeyPrefix+token)
}

// --- login sessions ---

func PutLoginSession(token string, fields H) error {
	return HMSetMap(sessionKeyPrefix+token, fields, LoginSessionExpire)
}

func GetLoginSession(token string) map[string]string {
	mp, err := rdb.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return map[string]string{}
	}
	return mp
}

func DelLoginSession(token string) {
	rdb.Del(ctx, sessionKeyPrefix+token)
}

// --- read-through list caches ---

// GetCachedJSON reads a cached projection; the cache is strictly
// derived state, only ever invalidated or repopulated after a durable
// write, never written as primary.
func GetCachedJSON(key string, v interface{}) bool {
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

func PutCachedJSON(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, raw, ListCacheExpire)
}

func InvalidateCache(keys ...string) {
	rdb.Del(ctx, keys...)
}
