package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrConversions(t *testing.T) {
	assert.Equal(t, 42, StrToInt("42"))
	assert.Equal(t, int64(-7), StrToInt64("-7"))
	assert.Equal(t, uint(9), StrToUint("9"))
	assert.Equal(t, uint64(18446744073709551615), StrToUint64("18446744073709551615"))
	assert.True(t, StrToBool("true"))
	assert.False(t, StrToBool("0"))
	assert.Equal(t, 3.5, StrToFloat64("3.5"))
}

func TestStrConversionsGarbage(t *testing.T) {
	assert.Equal(t, 0, StrToInt("abc"))
	assert.Equal(t, int64(0), StrToInt64(""))
	assert.False(t, StrToBool("maybe"))
	assert.Equal(t, 0.0, StrToFloat64("x"))
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.Local)
	assert.Equal(t, "2025-03-14 15:09:26", TimeToStr(now))
	assert.Equal(t, now, StrToTime(TimeToStr(now)))
}
