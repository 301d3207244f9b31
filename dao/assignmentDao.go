package dao

import (
	"strconv"
	"time"

	"TutorHub/common"
	"TutorHub/model"
)

const (
	ASSIGNMENT_REDIS_EXPIRE = 0
	HOMEWORK_UID_HASH_KEY   = "homework_hash(uid:id)"
	EXAM_UID_HASH_KEY       = "exam_hash(uid:id)"
)

type Homework = model.Homework
type Exam = model.Exam

type HomeworkDao struct {
	ID       int64
	Uid      string
	Homework *Homework
}

func (hd *HomeworkDao) GetRedisExpire() time.Duration {
	return ASSIGNMENT_REDIS_EXPIRE
}

func (hd *HomeworkDao) GetTableName() string {
	return "homework"
}

func (hd *HomeworkDao) GetSelf() interface{} {
	if hd.Homework == nil {
		hd.Homework = &Homework{}
	}
	return hd.Homework
}

func (hd *HomeworkDao) GetRedisKey() string {
	return hd.GetTableName() + "_" + strconv.FormatInt(hd.GetID(), 10)
}

func (hd *HomeworkDao) GetUid() string {
	if hd.Uid == "" {
		if hd.Homework != nil && hd.Homework.Uid != "" {
			hd.Uid = hd.Homework.Uid
		} else {
			hd.Uid = OneCol(hd, "uid").ToString()
		}
	}
	return hd.Uid
}

func (hd *HomeworkDao) GetID() int64 {
	if hd.ID != 0 {
		return hd.ID
	}
	if hd.Homework != nil && hd.Homework.ID != 0 {
		hd.ID = hd.Homework.ID
		return hd.ID
	}
	if hd.Uid != "" {
		hd.ID = lookupID(HOMEWORK_UID_HASH_KEY, "select id from homework where uid = ?", hd.Uid)
	}
	return hd.ID
}

func (hd *HomeworkDao) BeforePutToRedis() error {
	rdb.HSet(ctx, HOMEWORK_UID_HASH_KEY, hd.GetUid(), hd.GetID())
	return nil
}

func (hd *HomeworkDao) BeforeDelete() error {
	rdb.HDel(ctx, HOMEWORK_UID_HASH_KEY, hd.GetUid())
	return nil
}

type ExamDao struct {
	ID   int64
	Uid  string
	Exam *Exam
}

func (ed *ExamDao) GetRedisExpire() time.Duration {
	return ASSIGNMENT_REDIS_EXPIRE
}

func (ed *ExamDao) GetTableName() string {
	return "exam"
}

func (ed *ExamDao) GetSelf() interface{} {
	if ed.Exam == nil {
		ed.Exam = &Exam{}
	}
	return ed.Exam
}

func (ed *ExamDao) GetRedisKey() string {
	return ed.GetTableName() + "_" + strconv.FormatInt(ed.GetID(), 10)
}

func (ed *ExamDao) GetUid() string {
	if ed.Uid == "" {
		if ed.Exam != nil && ed.Exam.Uid != "" {
			ed.Uid = ed.Exam.Uid
		} else {
			ed.Uid = OneCol(ed, "uid").ToString()
		}
	}
	return ed.Uid
}

func (ed *ExamDao) GetID() int64 {
	if ed.ID != 0 {
		return ed.ID
	}
	if ed.Exam != nil && ed.Exam.ID != 0 {
		ed.ID = ed.Exam.ID
		return ed.ID
	}
	if ed.Uid != "" {
		ed.ID = lookupID(EXAM_UID_HASH_KEY, "select id from exam where uid = ?", ed.Uid)
	}
	return ed.ID
}

func (ed *ExamDao) BeforePutToRedis() error {
	rdb.HSet(ctx, EXAM_UID_HASH_KEY, ed.GetUid(), ed.GetID())
	return nil
}

func (ed *ExamDao) BeforeDelete() error {
	rdb.HDel(ctx, EXAM_UID_HASH_KEY, ed.GetUid())
	return nil
}

// CreateHomework stores the homework and fans it out to the group and
// to a point-in-time snapshot of the group's members. AppendID keeps
// the fan-out idempotent under retries. solutionUrl is the tutor's
// worked-solution PDF, empty when none was uploaded.
func CreateHomework(groupUid, name, kind, url, solutionUrl string) (*HomeworkDao, error) {
	gd := &GroupDao{Uid: groupUid}
	if gd.GetID() == 0 {
		return nil, ErrNotFound
	}
	hd := &HomeworkDao{Homework: &Homework{
		Uid:       common.NewToken(),
		Name:      name,
		Type:      kind,
		Url:       url,
		Solution:  solutionUrl,
		Solutions: make([]model.HomeworkSolution, 0),
	}}
	if err := Create(hd); err != nil {
		return nil, err
	}
	return hd, attachToGroup(gd, "homeworks", hd.GetID())
}

// CreateExam mirrors CreateHomework for exams.
func CreateExam(groupUid, name, kind, url string) (*ExamDao, error) {
	gd := &GroupDao{Uid: groupUid}
	if gd.GetID() == 0 {
		return nil, ErrNotFound
	}
	ed := &ExamDao{Exam: &Exam{
		Uid:       common.NewToken(),
		Name:      name,
		Type:      kind,
		Url:       url,
		Solutions: make([]string, 0),
	}}
	if err := Create(ed); err != nil {
		return nil, err
	}
	return ed, attachToGroup(gd, "exams", ed.GetID())
}

func attachToGroup(gd *GroupDao, col string, assignmentID int64) error {
	list := model.AppendID(OneCol(gd, col).ToInt64Slice(), assignmentID)
	if err := UpdateCols(gd, H{col: list}); err != nil {
		return err
	}
	// snapshot: students joining the group later do not receive it
	for _, sid := range OneCol(gd, "students").ToInt64Slice() {
		sd := &StudentDao{ID: sid}
		mine := model.AppendID(OneCol(sd, col).ToInt64Slice(), assignmentID)
		if err := UpdateCols(sd, H{col: mine}); err != nil {
			return err
		}
	}
	return nil
}

// SubmitHomeworkSolution records a student's uploaded answer on the
// homework record, replacing any earlier submission by the same
// student.
func SubmitHomeworkSolution(homeworkUid string, sol model.HomeworkSolution) error {
	hd := &HomeworkDao{Uid: homeworkUid}
	if hd.GetID() == 0 {
		return ErrNotFound
	}
	if err := GetSelfAll(hd); err != nil {
		return err
	}
	hd.Homework.PutSolution(sol)
	return UpdateCols(hd, H{"solutions": hd.Homework.Solutions})
}

// GetHomeworks hydrates homework rows from their ids, skipping any id
// that no longer resolves.
func GetHomeworks(ids []int64) []Homework {
	ret := make([]Homework, 0, len(ids))
	for _, id := range ids {
		hd := &HomeworkDao{ID: id}
		if GetSelfAll(hd) == nil {
			ret = append(ret, *hd.Homework)
		}
	}
	return ret
}

// GetExams hydrates exam rows from their ids.
func GetExams(ids []int64) []Exam {
	ret := make([]Exam, 0, len(ids))
	for _, id := range ids {
		ed := &ExamDao{ID: id}
		if GetSelfAll(ed) == nil {
			ret = append(ret, *ed.Exam)
		}
	}
	return ret
}
