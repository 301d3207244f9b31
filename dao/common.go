package dao

import (
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"TutorHub/common"
	"TutorHub/model"
)

// Record-level failures the service layer maps onto HTTP statuses.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Col wraps a single column value. Values read back from redis are
// strings and need the extra conversion branch.
type Col struct {
	data interface{}
}

func (c *Col) ToString() string {
	if s, ok := c.data.(string); ok {
		return s
	}
	return string(c.data.([]byte))
}

func (c *Col) ToInt64() int64 {
	if s, ok := c.data.(string); ok {
		return common.StrToInt64(s)
	}
	return c.data.(int64)
}

func (c *Col) ToInt() int {
	if s, ok := c.data.(string); ok {
		return common.StrToInt(s)
	}
	return int(c.ToInt64())
}

func (c *Col) ToBool() bool {
	if s, ok := c.data.(string); ok {
		return common.StrToBool(s)
	}
	return c.data.(int64) == 1
}

func (c *Col) ToTime() time.Time {
	return common.StrToTime(c.ToString())
}

// List columns are JSON in both mysql and redis.
func (c *Col) GetByteSlice() []byte {
	if reflect.TypeOf(c.data).Kind() == reflect.String {
		return []byte(c.data.(string))
	}
	return c.data.([]byte)
}

func (c *Col) ToInt64Slice() []int64 {
	var res []int64
	json.Unmarshal(c.GetByteSlice(), &res)
	if res == nil {
		return make([]int64, 0)
	}
	return res
}

func (c *Col) ToStringSlice() []string {
	var res []string
	json.Unmarshal(c.GetByteSlice(), &res)
	if res == nil {
		return make([]string, 0)
	}
	return res
}

func (c *Col) ToNotes() []model.Note {
	var res []model.Note
	json.Unmarshal(c.GetByteSlice(), &res)
	if res == nil {
		return make([]model.Note, 0)
	}
	return res
}

func (c *Col) ToSolutions() []model.HomeworkSolution {
	var res []model.HomeworkSolution
	json.Unmarshal(c.GetByteSlice(), &res)
	if res == nil {
		return make([]model.HomeworkSolution, 0)
	}
	return res
}

// Raw sql condition builder.
func ToSqlConditions(cols []string) string {
	n := len(cols)
	sql := cols[0] + " = ?"
	for i := 1; i < n; i++ {
		sql += " and " + cols[i] + " = ?"
	}
	return sql
}
