package model

import "time"

// Assignment delivery kinds.
const (
	DeliveryForm = "Form" // external form link
	DeliveryPDF  = "PDF"  // uploaded PDF
)

// HomeworkSolution snapshots the student at submission time.
type HomeworkSolution struct {
	Name        string `json:"name"`
	Grade       int    `json:"grade"`
	Phone       string `json:"phone"`
	SubmittedAt string `json:"submittedAt"`
	StudentUid  string `json:"studentId"`
	Url         string `json:"url"`
}

type Homework struct {
	ID        int64              `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time          `json:"created_at" xorm:"created"`
	Uid       string             `json:"uid" xorm:"varchar(36) unique index notnull"`
	Name      string             `json:"name" xorm:"varchar(64) notnull"`
	Type      string             `json:"type" xorm:"varchar(10) notnull"` // Form or PDF
	Url       string             `json:"url"`
	IsSolved  bool               `json:"is_solved"`
	Solution  string             `json:"homework_solution"` // teacher-provided solution PDF url
	Solutions []HomeworkSolution `json:"solutions"`
}

// PutSolution records a submission. A resubmission by the same student
// replaces the previous entry instead of accumulating duplicates.
func (h *Homework) PutSolution(sol HomeworkSolution) {
	for i, s := range h.Solutions {
		if s.StudentUid == sol.StudentUid {
			h.Solutions[i] = sol
			return
		}
	}
	h.Solutions = append(h.Solutions, sol)
}

type Exam struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	Uid       string    `json:"uid" xorm:"varchar(36) unique index notnull"`
	Name      string    `json:"name" xorm:"varchar(64) notnull"`
	Type      string    `json:"type" xorm:"varchar(10) notnull"`
	Url       string    `json:"url"`
	IsPassed  bool      `json:"is_passed"`
	Solutions []string  `json:"solutions"`
}
