package dao

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"xorm.io/core"

	"TutorHub/common"
	"TutorHub/model"
)

type H = map[string]interface{}

var (
	engine *xorm.Engine    // durable store (mysql)
	rdb    *redis.Client   // shared ephemeral cache, also backs login sessions
	ctx    context.Context // default context
)

// connect opens mysql and redis. The redis client is the single shared
// instance; sessions, tokens and read-through caches all go through it.
func connect(cfg H) error {
	var err error
	if mysql, ok := cfg["mysql"].(H); !ok {
		return errors.New("missing mysql config")
	} else {
		password := common.EnvOr("MYSQL_PASSWORD", mysql["password"].(string))
		dataSourceName := mysql["name"].(string) + ":" + password + "@tcp(" + mysql["host"].(string) + ")/" + mysql["database"].(string) + "?charset=utf8"
		engine, err = xorm.NewEngine("mysql", dataSourceName)
		if err != nil {
			return err
		}
		if err = engine.Ping(); err != nil {
			return err
		}
		engine.SetMapper(core.GonicMapper{})
	}

	if rds, ok := cfg["redis"].(H); !ok {
		return errors.New("missing redis config")
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     rds["addr"].(string),
			Password: common.EnvOr("REDIS_PASSWORD", rds["password"].(string)),
			DB:       0,
		})
		ctx = context.TODO()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return err
		}
	}
	return nil
}

// sync creates the schema, warms the lookup hashes and seeds the
// singleton admin record.
func sync(cfg H) error {
	if err := engine.Sync2(new(model.Student)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Admin)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Group)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Homework)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Exam)); err != nil {
		return err
	}

	studentInitRedis()

	admin, ok := cfg["admin"].(H)
	if !ok {
		return errors.New("missing admin config")
	}
	password := common.EnvOr("ADMIN_PASSWORD", admin["password"].(string))
	if password == "" {
		return errors.New("missing admin password")
	}
	ad := &AdminDao{Email: common.AdminEmail}
	if ad.GetID() == 0 {
		// the configured secret is stored hashed, never compared in plaintext
		hash, err := common.HashPassword(password)
		if err != nil {
			return err
		}
		ad.Admin = &model.Admin{
			Uid:        common.NewToken(),
			Email:      common.AdminEmail,
			Password:   hash,
			MyStudents: make([]int64, 0),
			MyGroups:   make([]int64, 0),
		}
		if err := Create(ad); err != nil {
			return err
		}
		log.Println("admin account seeded")
	}
	return nil
}

func Init(cfg H) error {
	if err := connect(cfg); err != nil {
		return err
	}
	if err := sync(cfg); err != nil {
		return fmt.Errorf("schema sync: %w", err)
	}
	return nil
}
