package dao

import (
	"strconv"
	"time"

	"TutorHub/common"
	"TutorHub/model"
)

const ADMIN_REDIS_EXPIRE = 0

type Admin = model.Admin

// AdminDao wraps the singleton admin record.
type AdminDao struct {
	ID    int64
	Email string
	Admin *Admin
}

func (ad *AdminDao) GetRedisExpire() time.Duration {
	return ADMIN_REDIS_EXPIRE
}

func (ad *AdminDao) GetTableName() string {
	return "admin"
}

func (ad *AdminDao) GetSelf() interface{} {
	if ad.Admin == nil {
		ad.Admin = &Admin{}
	}
	return ad.Admin
}

func (ad *AdminDao) GetRedisKey() string {
	return ad.GetTableName() + "_" + strconv.FormatInt(ad.GetID(), 10)
}

func (ad *AdminDao) GetID() int64 {
	if ad.ID != 0 {
		return ad.ID
	}
	if ad.Admin != nil && ad.Admin.ID != 0 {
		ad.ID = ad.Admin.ID
		return ad.ID
	}
	if ad.Email != "" {
		x := new(Col)
		if ok, err := engine.SQL("select id from admin where email = ?", ad.Email).Get(&x.data); err == nil && ok {
			ad.ID = x.ToInt64()
		}
	}
	return ad.ID
}

func (ad *AdminDao) BeforePutToRedis() error { return nil }

func (ad *AdminDao) BeforeDelete() error { return nil }

// GetAdmin resolves the seeded admin record by the configured address,
// or nil if the seed is missing.
func GetAdmin() *AdminDao {
	ad := &AdminDao{Email: common.AdminEmail}
	if ad.GetID() == 0 {
		return nil
	}
	return ad
}
