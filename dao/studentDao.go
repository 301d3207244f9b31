package dao

import (
	"strconv"
	"time"

	"TutorHub/common"
	"TutorHub/model"
)

const (
	STUDENT_REDIS_EXPIRE   = 0 // record hashes never expire
	STUDENT_EMAIL_HASH_KEY = "student_hash(email:id)"
	STUDENT_UID_HASH_KEY   = "student_hash(uid:id)"
)

type Student = model.Student

// StudentDao resolves a student by row id, public uid or email.
type StudentDao struct {
	ID      int64
	Uid     string
	Email   string
	Student *Student
}

func studentInitRedis() {
	students := make([]Student, 0)
	engine.Find(&students)
	for i := range students {
		sd := &StudentDao{Student: &students[i]}
		PutToRedis(sd)
	}
}

func (sd *StudentDao) GetRedisExpire() time.Duration {
	return STUDENT_REDIS_EXPIRE
}

func (sd *StudentDao) GetTableName() string {
	return "student"
}

func (sd *StudentDao) GetSelf() interface{} {
	if sd.Student == nil {
		sd.Student = &Student{}
	}
	return sd.Student
}

func (sd *StudentDao) GetRedisKey() string {
	return sd.GetTableName() + "_" + strconv.FormatInt(sd.GetID(), 10)
}

func (sd *StudentDao) GetUid() string {
	if sd.Uid == "" {
		if sd.Student != nil && sd.Student.Uid != "" {
			sd.Uid = sd.Student.Uid
		} else {
			sd.Uid = OneCol(sd, "uid").ToString()
		}
	}
	return sd.Uid
}

func (sd *StudentDao) GetEmail() string {
	if sd.Email == "" {
		if sd.Student != nil && sd.Student.Email != "" {
			sd.Email = sd.Student.Email
		} else {
			sd.Email = OneCol(sd, "email").ToString()
		}
	}
	return sd.Email
}

// GetID resolves the row id through the uid/email hashes, falling back
// to sql. Returns 0 when no such student exists.
func (sd *StudentDao) GetID() int64 {
	if sd.ID != 0 {
		return sd.ID
	}
	if sd.Student != nil && sd.Student.ID != 0 {
		sd.ID = sd.Student.ID
		return sd.ID
	}
	if uid := sd.Uid; uid != "" {
		sd.ID = lookupID(STUDENT_UID_HASH_KEY, "select id from student where uid = ?", uid)
		return sd.ID
	}
	if email := sd.Email; email != "" {
		sd.ID = lookupID(STUDENT_EMAIL_HASH_KEY, "select id from student where email = ?", email)
	}
	return sd.ID
}

func lookupID(hashKey, sql, field string) int64 {
	if rdb.HExists(ctx, hashKey, field).Val() {
		return common.StrToInt64(rdb.HGet(ctx, hashKey, field).Val())
	}
	x := new(Col)
	if ok, err := engine.SQL(sql, field).Get(&x.data); err == nil && ok {
		return x.ToInt64()
	}
	return 0
}

func (sd *StudentDao) BeforePutToRedis() error {
	rdb.HSet(ctx, STUDENT_EMAIL_HASH_KEY, sd.GetEmail(), sd.GetID())
	rdb.HSet(ctx, STUDENT_UID_HASH_KEY, sd.GetUid(), sd.GetID())
	return nil
}

func (sd *StudentDao) BeforeDelete() error {
	rdb.HDel(ctx, STUDENT_EMAIL_HASH_KEY, sd.GetEmail())
	rdb.HDel(ctx, STUDENT_UID_HASH_KEY, sd.GetUid())
	return nil
}

func (sd *StudentDao) Create() error {
	return Create(sd)
}

func (sd *StudentDao) Update(mp map[string]interface{}) error {
	return UpdateCols(sd, mp)
}

// GetAllStudents loads every student row, for the admin roster.
func GetAllStudents() []Student {
	ret := make([]Student, 0)
	engine.Find(&ret)
	return ret
}

// GetStudentIDsByUids resolves external-facing uids to row ids,
// silently skipping unknown ones.
func GetStudentIDsByUids(uids []string) []int64 {
	ids := make([]int64, 0, len(uids))
	for _, uid := range uids {
		sd := &StudentDao{Uid: uid}
		if id := sd.GetID(); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// StudentsData answers uniqueness queries over the student table.
type StudentsData struct {
	IDs []int64
}

func (us *StudentsData) GetIDs(cols []string, values []interface{}, a ...int) []int64 {
	if len(a) == 0 {
		engine.Table("student").Where(ToSqlConditions(cols), values...).Cols("id").Find(&us.IDs)
	} else {
		engine.Table("student").Where(ToSqlConditions(cols), values...).Cols("id").Limit(a[0], a[1]).Find(&us.IDs)
	}
	return us.IDs
}
