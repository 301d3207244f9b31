package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutSolutionAppends(t *testing.T) {
	h := &Homework{}
	h.PutSolution(HomeworkSolution{StudentUid: "a", Url: "u1"})
	h.PutSolution(HomeworkSolution{StudentUid: "b", Url: "u2"})
	assert.Len(t, h.Solutions, 2)
}

func TestPutSolutionReplacesResubmission(t *testing.T) {
	h := &Homework{}
	h.PutSolution(HomeworkSolution{StudentUid: "a", Url: "first"})
	h.PutSolution(HomeworkSolution{StudentUid: "a", Url: "second"})
	assert.Len(t, h.Solutions, 1)
	assert.Equal(t, "second", h.Solutions[0].Url)
}

func TestAddNote(t *testing.T) {
	s := &Student{}
	s.AddNote(Note{Title: "fractions", Lesson: "math"})
	s.AddNote(Note{Title: "verbs", Lesson: "english"})
	assert.Len(t, s.Notes, 2)
	assert.Equal(t, "fractions", s.Notes[0].Title)
}
