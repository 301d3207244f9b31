package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postMultipart(r *gin.Engine, path string, fields map[string]string, files map[string]string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	for field, name := range files {
		fw, _ := mw.CreateFormFile(field, name)
		fw.Write([]byte("%PDF-1.4 stub"))
	}
	mw.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func assignmentRouter() *gin.Engine {
	r := newTestRouter()
	r.POST("/assignments", createAssignment)
	r.GET("/assignments/solutions", getSolutions)
	return r
}

func TestCreateAssignmentRejectsUnknownType(t *testing.T) {
	r := assignmentRouter()
	w := postMultipart(r, "/assignments", map[string]string{
		"name": "algebra 1", "groupId": "g-1", "type": "quiz", "googleForm": "https://forms.example/1",
	}, nil)
	assert.Equal(t, 400, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["errmsg"], "homework or exam")
}

func TestCreateAssignmentNeedsFormOrPdf(t *testing.T) {
	r := assignmentRouter()
	w := postMultipart(r, "/assignments", map[string]string{
		"name": "algebra 1", "groupId": "g-1", "type": "homework",
	}, nil)
	assert.Equal(t, 400, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["errmsg"], "googleForm")
	assert.Contains(t, body["errmsg"], "pdfAssignment")
}

func TestCreateAssignmentSolutionOnlyForHomework(t *testing.T) {
	r := assignmentRouter()
	w := postMultipart(r, "/assignments", map[string]string{
		"name": "midterm", "groupId": "g-1", "type": "exam", "googleForm": "https://forms.example/2",
	}, map[string]string{"pdfSolution": "answers.pdf"})
	assert.Equal(t, 400, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["errmsg"], "pdfSolution")
}

func TestCreateAssignmentRejectsNonPdfSolution(t *testing.T) {
	r := assignmentRouter()
	w := postMultipart(r, "/assignments", map[string]string{
		"name": "fractions", "groupId": "g-1", "type": "homework", "googleForm": "https://forms.example/3",
	}, map[string]string{"pdfSolution": "answers.docx"})
	assert.Equal(t, 400, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["errmsg"], "PDF")
}

func TestGetSolutionsRejectsUnknownType(t *testing.T) {
	r := assignmentRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/assignments/solutions?assignmentId=h-1&type=quiz", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}
