package model

import "time"

// Note is a personal study note, embedded in the student row as a JSON column.
type Note struct {
	Title       string `json:"title"`
	Lesson      string `json:"lesson"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Student struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	Uid       string    `json:"uid" xorm:"varchar(36) unique index notnull"` // public id, never the row id
	Name      string    `json:"name" xorm:"varchar(64) notnull"`
	Email     string    `json:"email" xorm:"varchar(64) unique index notnull"`
	Password  string    `json:"password" xorm:"varchar(64) notnull"` // bcrypt hash
	Age       int       `json:"age"`
	Grade     int       `json:"grade"`
	Place     string    `json:"place" xorm:"varchar(64)"`
	Address   string    `json:"address" xorm:"varchar(128)"`
	Phone     string    `json:"phone" xorm:"varchar(20)"`
	InGroup   bool      `json:"in_group"`
	Homeworks []int64   `json:"homeworks"`
	Exams     []int64   `json:"exams"`
	Notes     []Note    `json:"notes"`
}

func (s *Student) AddNote(n Note) {
	s.Notes = append(s.Notes, n)
}
