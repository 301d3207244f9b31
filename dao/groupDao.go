package dao

import (
	"strconv"
	"time"

	"TutorHub/common"
	"TutorHub/model"
)

const (
	GROUP_REDIS_EXPIRE = 0
	GROUP_UID_HASH_KEY = "group_hash(uid:id)"
)

type Group = model.Group

type GroupDao struct {
	ID    int64
	Uid   string
	Group *Group
}

func (gd *GroupDao) GetRedisExpire() time.Duration {
	return GROUP_REDIS_EXPIRE
}

func (gd *GroupDao) GetTableName() string {
	return "group"
}

func (gd *GroupDao) GetSelf() interface{} {
	if gd.Group == nil {
		gd.Group = &Group{}
	}
	return gd.Group
}

func (gd *GroupDao) GetRedisKey() string {
	return "group_" + strconv.FormatInt(gd.GetID(), 10)
}

func (gd *GroupDao) GetUid() string {
	if gd.Uid == "" {
		if gd.Group != nil && gd.Group.Uid != "" {
			gd.Uid = gd.Group.Uid
		} else {
			gd.Uid = OneCol(gd, "uid").ToString()
		}
	}
	return gd.Uid
}

func (gd *GroupDao) GetID() int64 {
	if gd.ID != 0 {
		return gd.ID
	}
	if gd.Group != nil && gd.Group.ID != 0 {
		gd.ID = gd.Group.ID
		return gd.ID
	}
	if gd.Uid != "" {
		gd.ID = lookupID(GROUP_UID_HASH_KEY, "select id from `group` where uid = ?", gd.Uid)
	}
	return gd.ID
}

func (gd *GroupDao) BeforePutToRedis() error {
	rdb.HSet(ctx, GROUP_UID_HASH_KEY, gd.GetUid(), gd.GetID())
	return nil
}

func (gd *GroupDao) BeforeDelete() error {
	rdb.HDel(ctx, GROUP_UID_HASH_KEY, gd.GetUid())
	return nil
}

// GroupsData answers uniqueness queries over the group table.
type GroupsData struct {
	IDs []int64
}

func (gs *GroupsData) GetIDs(cols []string, values []interface{}, a ...int) []int64 {
	if len(a) == 0 {
		engine.Table("group").Where(ToSqlConditions(cols), values...).Cols("id").Find(&gs.IDs)
	} else {
		engine.Table("group").Where(ToSqlConditions(cols), values...).Cols("id").Limit(a[0], a[1]).Find(&gs.IDs)
	}
	return gs.IDs
}

// CreateGroup makes a group from external student uids, marks each
// member inGroup and registers the group with the admin record. The
// steps are independent writes, not one transaction; each one is
// idempotent so a retry converges instead of corrupting state.
func CreateGroup(name string, studentUids []string) (*GroupDao, error) {
	if Count(new(GroupsData), []string{"name"}, []interface{}{name}) > 0 {
		return nil, ErrConflict
	}
	ids := GetStudentIDsByUids(studentUids)
	for _, id := range ids {
		if err := UpdateCols(&StudentDao{ID: id}, H{"in_group": true}); err != nil {
			return nil, err
		}
	}
	gd := &GroupDao{Group: &Group{
		Uid:       common.NewToken(),
		Name:      name,
		Students:  ids,
		Homeworks: make([]int64, 0),
		Exams:     make([]int64, 0),
	}}
	if err := Create(gd); err != nil {
		return nil, err
	}

	ad := GetAdmin()
	if ad == nil {
		return nil, ErrNotFound
	}
	myGroups := model.AppendID(OneCol(ad, "my_groups").ToInt64Slice(), gd.GetID())
	if err := UpdateCols(ad, H{"my_groups": myGroups}); err != nil {
		return nil, err
	}

	InvalidateCache(GroupsCacheKey, AdminCacheKey)
	return gd, nil
}

// DeleteGroup removes the group and, unlike the behavior this replaces,
// also resets every member's inGroup flag so the student invariant
// (inGroup iff referenced by some group) holds after deletion.
func DeleteGroup(uid string) error {
	gd := &GroupDao{Uid: uid}
	if gd.GetID() == 0 {
		return ErrNotFound
	}
	members := OneCol(gd, "students").ToInt64Slice()
	for _, id := range members {
		if err := UpdateCols(&StudentDao{ID: id}, H{"in_group": false}); err != nil {
			return err
		}
	}

	ad := GetAdmin()
	if ad != nil {
		myGroups := model.RemoveID(OneCol(ad, "my_groups").ToInt64Slice(), gd.GetID())
		if err := UpdateCols(ad, H{"my_groups": myGroups}); err != nil {
			return err
		}
	}
	if err := Delete(gd); err != nil {
		return err
	}

	InvalidateCache(GroupsCacheKey, AdminCacheKey)
	return nil
}

// UpdateGroup replaces the membership wholesale and corrects inGroup
// in both directions for the diffed students.
func UpdateGroup(uid string, studentUids []string) (*GroupDao, error) {
	gd := &GroupDao{Uid: uid}
	if gd.GetID() == 0 {
		return nil, ErrNotFound
	}
	oldIDs := OneCol(gd, "students").ToInt64Slice()
	newIDs := GetStudentIDsByUids(studentUids)

	added, removed := model.DiffIDs(oldIDs, newIDs)
	for _, id := range added {
		if err := UpdateCols(&StudentDao{ID: id}, H{"in_group": true}); err != nil {
			return nil, err
		}
	}
	for _, id := range removed {
		if err := UpdateCols(&StudentDao{ID: id}, H{"in_group": false}); err != nil {
			return nil, err
		}
	}
	if err := UpdateCols(gd, H{"students": newIDs}); err != nil {
		return nil, err
	}

	InvalidateCache(GroupsCacheKey)
	return gd, nil
}

// GetAdminGroups returns the row ids of the admin's groups, behind the
// cached admin record. CreateGroup and DeleteGroup invalidate it.
func GetAdminGroups() []int64 {
	ids := make([]int64, 0)
	if GetCachedJSON(AdminCacheKey, &ids) {
		return ids
	}
	ad := GetAdmin()
	if ad == nil {
		return ids
	}
	ids = OneCol(ad, "my_groups").ToInt64Slice()
	PutCachedJSON(AdminCacheKey, ids)
	return ids
}
