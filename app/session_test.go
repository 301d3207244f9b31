package app

import (
	"testing"
	"time"

	"TutorHub/dao"
	"github.com/stretchr/testify/assert"
)

func TestSessionExpired(t *testing.T) {
	window := int64(dao.LoginSessionExpire / time.Second)
	now := time.Now().Unix()

	fresh := &loginSession{CreatedAt: now}
	assert.False(t, fresh.Expired())

	atBoundary := &loginSession{CreatedAt: now - window}
	assert.False(t, atBoundary.Expired())

	past := &loginSession{CreatedAt: now - window - 1}
	assert.True(t, past.Expired())
}
