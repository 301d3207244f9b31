package app

import (
	"fmt"

	"TutorHub/common"
	"github.com/gin-gonic/gin"
)

func InitRouters() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(jsonResponse)

	initAuthRouters(r)
	initAdminRouters(r)
	initStudentRouters(r)
	if err := r.Run(common.Port); err != nil {
		fmt.Println("router init error\n", err.Error())
	}
}

func initAuthRouters(r *gin.Engine) {
	g0 := r.Group("/") // no session required
	{
		g0.POST("signup", signup)
		g0.POST("auth/verifyOTP", verifyOTP)
		g0.POST("auth/resendOTP", resendOTP)
		g0.POST("signin", signin)
		g0.POST("auth/forgotpassword", forgotPassword)
		g0.GET("auth/checksessionid/:id", checkSessionID)
		g0.POST("auth/resetpassword", resetPassword)
		// logout stays open so a stale cookie can always be cleared
		g0.GET("logout", logout)
	}

	g1 := r.Group("/", CheckExpiration, AuthLogin)
	{
		g1.GET("me", me)
	}
}

func initAdminRouters(r *gin.Engine) {
	g := r.Group("/admin", CheckExpiration, AuthLogin, AuthAdmin)
	{
		g.GET("students", getStudents)
		g.GET("mygroups", getMyGroups)
		g.POST("mygroups", createGroup)
		g.PATCH("mygroups", patchGroup)
		g.DELETE("mygroups/:groupId", deleteGroup)
		g.POST("assignments", createAssignment)
		g.GET("assignments/solutions", getSolutions)
		g.GET("assignments/:groupId", getGroupAssignments)
	}
}

func initStudentRouters(r *gin.Engine) {
	g := r.Group("/student", CheckExpiration, AuthLogin)
	{
		g.GET("", getProfile)
		g.GET("assignments", getMyAssignments)
		g.POST("assignments", submitSolution)
		g.GET("notes", getNotes)
		g.POST("notes", addNote)
	}
}
