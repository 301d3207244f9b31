package app

import (
	"strconv"

	"TutorHub/common"
	"TutorHub/dao"
	"TutorHub/model"
	"github.com/gin-gonic/gin"
)

// signup checks the email is free, parks the pending account in a
// TTL-bound redis session and mails the one-time code. No durable row
// exists until the code is verified.
func signup(c *gin.Context) {
	sv := new(signupValidator)
	if err := c.ShouldBind(sv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := sv.isOk(); !ok {
		setError(c, 400, msg)
		return
	}
	if emailTaken(sv.Email) {
		setError(c, 409, "Email already registered")
		return
	}
	hash, err := common.HashPassword(sv.Password)
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
	otp := common.GenerateOTP()
	sessionID := common.NewToken()
	err = dao.PutSignupSession(sessionID, dao.H{
		"otp":      otp,
		"name":     sv.Name,
		"email":    sv.Email,
		"password": hash,
		"age":      strconv.Itoa(sv.Age),
		"grade":    strconv.Itoa(sv.Grade),
		"place":    sv.Place,
		"address":  sv.Address,
		"phone":    sv.Phone,
	})
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
	if err := common.SendOTPEmail(sv.Email, otp); err != nil {
		dao.DelSignupSession(sessionID)
		setError(c, 500, "Could not send verification email")
		return
	}
	c.Set("sessionId", sessionID)
}

// verifyOTP turns a pending signup into a real student. The email
// conflict is checked again here; someone else may have claimed it
// while the code sat in the inbox.
func verifyOTP(c *gin.Context) {
	ov := new(otpValidator)
	if err := c.ShouldBind(ov); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := ov.isOk(); !ok {
		setError(c, 400, msg)
		return
	}
	mp := dao.GetSignupSession(ov.SessionID)
	if len(mp) == 0 {
		setError(c, 410, "Signup session expired")
		return
	}
	if mp["otp"] != ov.Otp {
		setError(c, 400, "Invalid code")
		return
	}
	if emailTaken(mp["email"]) {
		dao.DelSignupSession(ov.SessionID)
		setError(c, 409, "Email already registered")
		return
	}
	sd := &dao.StudentDao{Student: &model.Student{
		Uid:       common.NewToken(),
		Name:      mp["name"],
		Email:     mp["email"],
		Password:  mp["password"],
		Age:       common.StrToInt(mp["age"]),
		Grade:     common.StrToInt(mp["grade"]),
		Place:     mp["place"],
		Address:   mp["address"],
		Phone:     mp["phone"],
		Homeworks: make([]int64, 0),
		Exams:     make([]int64, 0),
		Notes:     make([]model.Note, 0),
	}}
	if err := sd.Create(); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	dao.DelSignupSession(ov.SessionID)
	dao.InvalidateCache(dao.StudentsCacheKey)
	setStatus(c, 201)
	c.Set("user", studentProjection(sd.Student))
}

// resendOTP replaces the code inside the same pending session and
// restarts its clock.
func resendOTP(c *gin.Context) {
	rv := new(resendValidator)
	if err := c.ShouldBind(rv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	mp := dao.GetSignupSession(rv.SessionID)
	if len(mp) == 0 {
		setError(c, 410, "Signup session expired")
		return
	}
	otp := common.GenerateOTP()
	if err := dao.RefreshSignupOTP(rv.SessionID, otp); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	if err := common.SendOTPEmail(mp["email"], otp); err != nil {
		setError(c, 500, "Could not send verification email")
		return
	}
}

// signin authenticates either role. Unknown email and wrong password
// share one message so the response never confirms an account exists.
func signin(c *gin.Context) {
	sv := new(signinValidator)
	if err := c.ShouldBind(sv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := validate(sv); !ok {
		setError(c, 400, msg)
		return
	}
	if common.IsAdminEmail(sv.Email) {
		ad := dao.GetAdmin()
		if ad == nil || !common.CheckPassword(dao.OneCol(ad, "password").ToString(), sv.Password) {
			setError(c, 401, "Invalid email or password")
			return
		}
		if err := newSession(c, sv.Email, true); err != nil {
			setError(c, 500, "Internal error")
			return
		}
		c.Set("user", dao.H{"email": sv.Email, "isAdmin": true})
		return
	}
	sd := &dao.StudentDao{Email: sv.Email}
	if sd.GetID() == 0 || !common.CheckPassword(dao.OneCol(sd, "password").ToString(), sv.Password) {
		setError(c, 401, "Invalid email or password")
		return
	}
	if err := newSession(c, sd.GetUid(), false); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	dao.GetSelfAll(sd)
	c.Set("user", studentProjection(sd.Student))
}

// me reports who is signed in. A session pointing at a deleted student
// is destroyed on the spot instead of lingering as a ghost login.
func me(c *gin.Context) {
	s := getSession(c)
	if s.IsAdmin {
		c.Set("logged", true)
		c.Set("user", dao.H{"email": s.UserID, "isAdmin": true})
		return
	}
	sd := &dao.StudentDao{Uid: s.UserID}
	if sd.GetID() == 0 {
		destroySession(c)
		c.Set("logged", false)
		setError(c, 401, "Session no longer valid")
		return
	}
	dao.GetSelfAll(sd)
	c.Set("logged", true)
	c.Set("user", studentProjection(sd.Student))
}

// logout succeeds whether or not a session exists.
func logout(c *gin.Context) {
	destroySession(c)
}

// forgotPassword mails a single-use reset link. Unlike signin this is
// allowed to say the email is unknown; the reset page needs to tell the
// user they typed the wrong address.
func forgotPassword(c *gin.Context) {
	fv := new(forgotValidator)
	if err := c.ShouldBind(fv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := validate(fv); !ok {
		setError(c, 400, msg)
		return
	}
	sd := &dao.StudentDao{Email: fv.Email}
	if sd.GetID() == 0 {
		setError(c, 404, "No account with that email")
		return
	}
	token := common.NewToken()
	if err := dao.PutResetToken(token, fv.Email); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	if err := common.SendResetEmail(fv.Email, token); err != nil {
		dao.DelResetToken(token)
		setError(c, 500, "Could not send reset email")
		return
	}
}

// checkSessionID lets the reset page verify a link before showing the
// password form.
func checkSessionID(c *gin.Context) {
	_, ok := dao.GetResetToken(c.Param("id"))
	c.Set("valid", ok)
}

// resetPassword consumes the token and replaces the stored hash.
func resetPassword(c *gin.Context) {
	rv := new(resetValidator)
	if err := c.ShouldBind(rv); err != nil {
		setError(c, 400, "Bad parameters")
		return
	}
	if ok, msg := rv.isOk(); !ok {
		setError(c, 400, msg)
		return
	}
	email, ok := dao.GetResetToken(rv.SessionID)
	if !ok {
		setError(c, 410, "Reset link expired")
		return
	}
	sd := &dao.StudentDao{Email: email}
	if sd.GetID() == 0 {
		dao.DelResetToken(rv.SessionID)
		setError(c, 404, "No account with that email")
		return
	}
	hash, err := common.HashPassword(rv.Password)
	if err != nil {
		setError(c, 500, "Internal error")
		return
	}
	if err := sd.Update(dao.H{"password": hash}); err != nil {
		setError(c, 500, "Internal error")
		return
	}
	dao.DelResetToken(rv.SessionID)
}

func emailTaken(email string) bool {
	if common.IsAdminEmail(email) {
		return true
	}
	return dao.Count(new(dao.StudentsData), []string{"email"}, []interface{}{email}) > 0
}

// studentProjection is the client-facing view of a student. The
// password hash never leaves the server.
func studentProjection(s *model.Student) dao.H {
	return dao.H{
		"id":       s.Uid,
		"name":     s.Name,
		"email":    s.Email,
		"age":      s.Age,
		"grade":    s.Grade,
		"place":    s.Place,
		"address":  s.Address,
		"phone":    s.Phone,
		"inGroup":  s.InGroup,
		"isAdmin":  false,
		"joinedAt": common.TimeToStr(s.CreatedAt),
	}
}
