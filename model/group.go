package model

import "time"

type Group struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	Uid       string    `json:"uid" xorm:"varchar(36) unique index notnull"`
	Name      string    `json:"name" xorm:"varchar(64) unique notnull"`
	Students  []int64   `json:"students"`
	Homeworks []int64   `json:"homeworks"`
	Exams     []int64   `json:"exams"`
}

// AppendID adds id to list unless it is already present, so a retried
// fan-out cannot duplicate a reference.
func AppendID(list []int64, id int64) []int64 {
	for _, x := range list {
		if x == id {
			return list
		}
	}
	return append(list, id)
}

func RemoveID(list []int64, id int64) []int64 {
	ret := make([]int64, 0, len(list))
	for _, x := range list {
		if x != id {
			ret = append(ret, x)
		}
	}
	return ret
}

// DiffIDs compares an old and a new membership list and reports which
// ids were added and which were removed.
func DiffIDs(old, new []int64) (added, removed []int64) {
	added = make([]int64, 0)
	removed = make([]int64, 0)
	oldSet := make(map[int64]bool, len(old))
	newSet := make(map[int64]bool, len(new))
	for _, id := range old {
		oldSet[id] = true
	}
	for _, id := range new {
		newSet[id] = true
		if !oldSet[id] {
			added = append(added, id)
		}
	}
	for _, id := range old {
		if !newSet[id] {
			removed = append(removed, id)
		}
	}
	return added, removed
}
