package app

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"TutorHub/common"
	"TutorHub/dao"
	"TutorHub/model"
	"TutorHub/storage"
	"github.com/gin-gonic/gin"
)

// currentStudent resolves the signed-in student, destroying the session
// when it points at a record that no longer exists.
func currentStudent(c *gin.Context) *dao.StudentDao {
	s := getSession(c)
	if s == nil || s.IsAdmin {
		setError(c, 403, "Students only")
		return nil
	}
	sd := &dao.StudentDao{Uid: s.UserID}
	if sd.GetID() == 0 {
		destroySession(c)
		setError(c, 401, "Session no longer valid")
		return nil
	}
	return sd
}

func getProfile(c *gin.Context) {
	sd := currentStudent(c)
	if sd == nil {
		return
	}
	if err := dao.GetSelfAll(sd); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	c.Set("user", studentProjection(sd.Student))
}

// getMyAssignments lists the caller's homeworks and exams.
func getMyAssignments(c *gin.Context) {
	sd := currentStudent(c)
	if sd == nil {
		return
	}
	cols := dao.Cols(sd, "homeworks", "exams")
	if cols == nil {
		setError(c, 500, "Internal error")
		return
	}
	setMap(c, dao.H{
		"homeworks": dao.GetHomeworks(cols[0].ToInt64Slice()),
		"exams":     dao.GetExams(cols[1].ToInt64Slice()),
	})
}

// submitSolution uploads a student's answer PDF and records it on the
// homework. The snapshot carries the student's details as they are
// right now; later profile edits do not rewrite history.
func submitSolution(c *gin.Context) {
	sd := currentStudent(c)
	if sd == nil {
		return
	}
	homeworkID := c.PostForm("homeworkId")
	if homeworkID == "" {
		setError(c, 400, "Bad parameters")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		setError(c, 400, "Solution file missing")
		return
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		setError(c, 400, "Only PDF files are accepted")
		return
	}
	mine := dao.OneCol(sd, "homeworks").ToInt64Slice()
	hd := &dao.HomeworkDao{Uid: homeworkID}
	if hd.GetID() == 0 || !containsID(mine, hd.GetID()) {
		setError(c, 404, "No such homework")
		return
	}
	url, err := storage.UploadPDF(c.Request.Context(), "StudentsSolutions", fh.Filename, func() (io.ReadCloser, error) { return fh.Open() })
	if err != nil {
		setError(c, 500, "Upload failed")
		return
	}
	if err := dao.GetSelfAll(sd); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	sol := model.HomeworkSolution{
		Name:        sd.Student.Name,
		Grade:       sd.Student.Grade,
		Phone:       sd.Student.Phone,
		SubmittedAt: common.TimeToStr(time.Now()),
		StudentUid:  sd.Student.Uid,
		Url:         url,
	}
	if err := dao.SubmitHomeworkSolution(homeworkID, sol); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	setStatus(c, 201)
	c.Set("url", url)
}

func getNotes(c *gin.Context) {
	sd := currentStudent(c)
	if sd == nil {
		return
	}
	c.Set("notes", dao.OneCol(sd, "notes").ToNotes())
}

func addNote(c *gin.Context) {
	sd := currentStudent(c)
	if sd == nil {
		return
	}
	nv := new(noteValidator)
	if err := c.ShouldBind(nv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := validate(nv); !ok {
		setError(c, 400, msg)
		return
	}
	notes := append(dao.OneCol(sd, "notes").ToNotes(), model.Note{
		Title:       nv.Title,
		Lesson:      nv.Lesson,
		Description: nv.Description,
		Date:        nv.Date,
	})
	if err := sd.Update(dao.H{"notes": notes}); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	setStatus(c, 201)
	c.Set("notes", notes)
}

func containsID(ids []int64, id int64) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
