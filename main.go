package main

import (
	"encoding/json"
	"fmt"

	"TutorHub/app"
	"TutorHub/common"
	"TutorHub/dao"
	"TutorHub/storage"
)

func main() {
	x, err := common.GetContent("config.json")
	if err != nil {
		panic(err)
	}
	cfg := make(common.H)
	if err := json.Unmarshal([]byte(x), &cfg); err != nil {
		panic(err)
	}
	if err := common.Init(cfg); err != nil {
		panic(err)
	}
	if err := storage.Init(cfg); err != nil {
		fmt.Println("blob storage disabled:", err.Error())
	}
	if err := dao.Init(cfg); err != nil {
		panic(err)
	}
	fmt.Println("database ready")
	app.InitRouters()
}
