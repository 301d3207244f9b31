package dao

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"time"

	"TutorHub/common"
	"TutorHub/model"
)

// Record hashes mirror struct fields into redis by json tag; anything
// that is not a scalar is stored as its JSON encoding.
func typeAnalyzed(x interface{}) interface{} {
	switch x.(type) {
	case string, int64, int, uint, uint64, bool, float32, float64, []byte:
		return x
	case time.Time:
		t := x.(time.Time)
		return common.TimeToStr(t)
	default:
		jsonValue, _ := json.Marshal(x)
		return jsonValue
	}
}

func putObjToRedis(key string, obj interface{}, expire time.Duration) error {
	objType := reflect.TypeOf(obj)
	objVal := reflect.ValueOf(obj)
	if objType.Kind() == reflect.Ptr {
		if objVal.IsNil() {
			return errors.New("nil pointer")
		}
		objType = objType.Elem()
		objVal = objVal.Elem()
		if objType.Kind() != reflect.Struct {
			return errors.New("not a struct")
		}
	} else {
		return errors.New("not a struct pointer")
	}
	var args []interface{}
	num := objType.NumField()
	for i := 0; i < num; i++ {
		t := objType.Field(i)
		v := objVal.Field(i)
		tag := t.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		args = append(args, tag, typeAnalyzed(v.Interface()))
	}
	if _, err := rdb.HMSet(ctx, key, args...).Result(); err != nil {
		return err
	}
	if expire != 0 {
		rdb.Expire(ctx, key, expire)
	}
	return nil
}

// GetObjFromRedis fills a struct pointer from a record hash by json tag.
func GetObjFromRedis(key string, obj interface{}) error {
	objType := reflect.TypeOf(obj)
	objVal := reflect.ValueOf(obj)
	if objType.Kind() == reflect.Ptr {
		if objVal.IsNil() {
			return errors.New("nil pointer")
		}
		objType = objType.Elem()
		if objType.Kind() != reflect.Struct {
			return errors.New("not a struct")
		}
	} else {
		return errors.New("not a struct pointer")
	}
	mp, err := rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return err
	}
	v := reflect.Indirect(objVal)
	num := v.NumField()
	for i := 0; i < num; i++ {
		valueInterface := v.Field(i).Interface()
		tag := objType.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		rawValue, ok := mp[tag]
		if !ok {
			continue
		}
		switch valueInterface.(type) {
		case string:
			v.Field(i).SetString(rawValue)
		case int64, int:
			v.Field(i).SetInt(common.StrToInt64(rawValue))
		case uint64, uint:
			v.Field(i).SetUint(common.StrToUint64(rawValue))
		case bool:
			v.Field(i).SetBool(common.StrToBool(rawValue))
		case float64, float32:
			num, _ := strconv.ParseFloat(rawValue, 64)
			v.Field(i).SetFloat(num)
		case time.Time:
			v.Field(i).Set(reflect.ValueOf(common.StrToTime(rawValue)))
		case []int64:
			var x []int64
			if err := json.Unmarshal([]byte(rawValue), &x); err != nil {
				return err
			}
			v.Field(i).Set(reflect.ValueOf(x))
		case []string:
			var x []string
			if err := json.Unmarshal([]byte(rawValue), &x); err != nil {
				return err
			}
			v.Field(i).Set(reflect.ValueOf(x))
		case []model.Note:
			var x []model.Note
			if err := json.Unmarshal([]byte(rawValue), &x); err != nil {
				return err
			}
			v.Field(i).Set(reflect.ValueOf(x))
		case []model.HomeworkSolution:
			var x []model.HomeworkSolution
			if err := json.Unmarshal([]byte(rawValue), &x); err != nil {
				return err
			}
			v.Field(i).Set(reflect.ValueOf(x))
		default:
			return errors.New("unhandled redis field type")
		}
	}
	return nil
}

func HMSetMap(key string, mp map[string]interface{}, expire time.Duration) error {
	var args []interface{}
	for k, v := range mp {
		args = append(args, k, typeAnalyzed(v))
	}
	if _, err := rdb.HMSet(ctx, key, args...).Result(); err != nil {
		return err
	}
	if expire > 0 {
		rdb.Expire(ctx, key, expire)
	}
	return nil
}

func SetKeyExpire(key string, expire time.Duration) {
	rdb.Expire(ctx, key, expire)
}
