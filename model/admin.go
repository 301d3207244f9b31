package model

// Admin is a singleton record seeded at startup from the configured
// admin credentials. Only MyGroups and MyStudents ever change.
type Admin struct {
	ID         int64   `json:"id" xorm:"pk autoincr"`
	Uid        string  `json:"uid" xorm:"varchar(36) unique notnull"`
	Email      string  `json:"email" xorm:"varchar(64) unique notnull"`
	Password   string  `json:"password" xorm:"varchar(64) notnull"` // bcrypt hash of the configured secret
	MyStudents []int64 `json:"my_students"`
	MyGroups   []int64 `json:"my_groups"`
}
