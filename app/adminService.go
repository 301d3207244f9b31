package app

import (
	"io"
	"path/filepath"
	"strings"

	"TutorHub/common"
	"TutorHub/dao"
	"TutorHub/model"
	"TutorHub/storage"
	"github.com/gin-gonic/gin"
)

// getStudents serves the full roster, cached for the admin dashboard.
func getStudents(c *gin.Context) {
	list := make([]dao.H, 0)
	if !dao.GetCachedJSON(dao.StudentsCacheKey, &list) {
		students := dao.GetAllStudents()
		for i := range students {
			list = append(list, studentProjection(&students[i]))
		}
		dao.PutCachedJSON(dao.StudentsCacheKey, list)
	}
	c.Set("students", list)
}

// getMyGroups serves the admin's groups with members and assignments
// hydrated, behind the same read-through cache.
func getMyGroups(c *gin.Context) {
	list := make([]dao.H, 0)
	if !dao.GetCachedJSON(dao.GroupsCacheKey, &list) {
		for _, gid := range dao.GetAdminGroups() {
			gd := &dao.GroupDao{ID: gid}
			if dao.GetSelfAll(gd) != nil {
				continue
			}
			list = append(list, groupProjection(gd.Group))
		}
		dao.PutCachedJSON(dao.GroupsCacheKey, list)
	}
	c.Set("groups", list)
}

func createGroup(c *gin.Context) {
	gv := new(groupValidator)
	if err := c.ShouldBind(gv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := validate(gv); !ok {
		setError(c, 400, msg)
		return
	}
	gd, err := dao.CreateGroup(gv.Name, gv.Students)
	if err == dao.ErrConflict {
		setError(c, 409, "Group name already in use")
		return
	}
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
	setStatus(c, 201)
	c.Set("group", groupProjection(gd.Group))
}

func patchGroup(c *gin.Context) {
	pv := new(patchGroupValidator)
	if err := c.ShouldBind(pv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := validate(pv); !ok {
		setError(c, 400, msg)
		return
	}
	gd, err := dao.UpdateGroup(pv.GroupID, pv.Students)
	if err == dao.ErrNotFound {
		setError(c, 404, "No such group")
		return
	}
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
	if err := dao.GetSelfAll(gd); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	c.Set("group", groupProjection(gd.Group))
}

func deleteGroup(c *gin.Context) {
	err := dao.DeleteGroup(c.Param("groupId"))
	if err == dao.ErrNotFound {
		setError(c, 404, "No such group")
		return
	}
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
}

// createAssignment takes a multipart form: type (homework or exam),
// groupId, name, plus either a googleForm link or a pdfAssignment
// file, and for homework an optional pdfSolution file with the
// tutor's worked answers. Uploads stream straight to blob storage.
func createAssignment(c *gin.Context) {
	name := c.PostForm("name")
	kind := c.PostForm("type")
	groupID := c.PostForm("groupId")
	if name == "" || groupID == "" {
		setError(c, 400, "Bad parameters")
		return
	}
	if kind != "homework" && kind != "exam" {
		setError(c, 400, "type must be homework or exam")
		return
	}

	// a form link means Form delivery, otherwise a PDF must be attached
	var url string
	delivery := model.DeliveryForm
	if link := c.PostForm("googleForm"); link != "" {
		url = link
	} else {
		delivery = model.DeliveryPDF
		fh, err := c.FormFile("pdfAssignment")
		if err != nil {
			setError(c, 400, "Need a googleForm link or a pdfAssignment file")
			return
		}
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
			setError(c, 400, "Only PDF files are accepted")
			return
		}
		url, err = storage.UploadPDF(c.Request.Context(), "assignments", fh.Filename, func() (io.ReadCloser, error) { return fh.Open() })
		if err != nil {
			setError(c, 500, "Upload failed")
			return
		}
	}

	var solutionURL string
	if fh, err := c.FormFile("pdfSolution"); err == nil {
		if kind != "homework" {
			setError(c, 400, "Only homework takes a pdfSolution")
			return
		}
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
			setError(c, 400, "Only PDF files are accepted")
			return
		}
		solutionURL, err = storage.UploadPDF(c.Request.Context(), "solutions", fh.Filename, func() (io.ReadCloser, error) { return fh.Open() })
		if err != nil {
			setError(c, 500, "Upload failed")
			return
		}
	}

	var uid string
	var err error
	if kind == "homework" {
		var hd *dao.HomeworkDao
		if hd, err = dao.CreateHomework(groupID, name, delivery, url, solutionURL); err == nil {
			uid = hd.GetUid()
		}
	} else {
		var ed *dao.ExamDao
		if ed, err = dao.CreateExam(groupID, name, delivery, url); err == nil {
			uid = ed.GetUid()
		}
	}
	if err == dao.ErrNotFound {
		setError(c, 404, "No such group")
		return
	}
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
	dao.InvalidateCache(dao.GroupsCacheKey)
	setStatus(c, 201)
	assignment := dao.H{"id": uid, "url": url}
	if solutionURL != "" {
		assignment["homework_solution"] = solutionURL
	}
	c.Set("assignment", assignment)
}

// getGroupAssignments lists one group's homeworks and exams.
func getGroupAssignments(c *gin.Context) {
	gd := &dao.GroupDao{Uid: c.Param("groupId")}
	if gd.GetID() == 0 {
		setError(c, 404, "No such group")
		return
	}
	if err := dao.GetSelfAll(gd); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	setMap(c, dao.H{
		"homeworks": dao.GetHomeworks(gd.Group.Homeworks),
		"exams":     dao.GetExams(gd.Group.Exams),
	})
}

// getSolutions serves one assignment's solution log when
// ?assignmentId&type name it, and otherwise collects submitted
// homework answers across the admin's groups.
func getSolutions(c *gin.Context) {
	kind := c.DefaultQuery("type", "homework")
	if kind != "homework" && kind != "exam" {
		setError(c, 400, "type must be homework or exam")
		return
	}
	if uid := c.Query("assignmentId"); uid != "" {
		if kind == "exam" {
			ed := &dao.ExamDao{Uid: uid}
			if ed.GetID() == 0 {
				setError(c, 404, "No such exam")
				return
			}
			c.Set("solutions", dao.OneCol(ed, "solutions").ToStringSlice())
			return
		}
		hd := &dao.HomeworkDao{Uid: uid}
		if hd.GetID() == 0 {
			setError(c, 404, "No such homework")
			return
		}
		c.Set("solutions", dao.OneCol(hd, "solutions").ToSolutions())
		return
	}
	ret := make([]dao.H, 0)
	for _, gid := range dao.GetAdminGroups() {
		gd := &dao.GroupDao{ID: gid}
		if dao.GetSelfAll(gd) != nil {
			continue
		}
		for _, hw := range dao.GetHomeworks(gd.Group.Homeworks) {
			if len(hw.Solutions) == 0 {
				continue
			}
			ret = append(ret, dao.H{
				"homeworkId": hw.Uid,
				"name":       hw.Name,
				"group":      gd.Group.Name,
				"solutions":  hw.Solutions,
			})
		}
	}
	c.Set("solutions", ret)
}

func groupProjection(g *model.Group) dao.H {
	members := make([]dao.H, 0, len(g.Students))
	for _, sid := range g.Students {
		sd := &dao.StudentDao{ID: sid}
		if dao.GetSelfAll(sd) == nil {
			members = append(members, studentProjection(sd.Student))
		}
	}
	return dao.H{
		"id":        g.Uid,
		"name":      g.Name,
		"createdAt": common.TimeToStr(g.CreatedAt),
		"students":  members,
		"homeworks": dao.GetHomeworks(g.Homeworks),
		"exams":     dao.GetExams(g.Exams),
	}
}
