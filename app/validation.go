package app

// Request parameter validation.
import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

func validate(s interface{}) (bool, string) {
	Validate := validator.New()
	en_us := en.New()
	uni := ut.New(en_us)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(Validate, trans)
	errs := Validate.Struct(s)
	if errs != nil {
		var msg string
		for _, err := range errs.(validator.ValidationErrors) {
			msg += err.Translate(trans) + "\n"
		}
		return false, msg
	}
	return true, ""
}

type signupValidator struct {
	Name     string `json:"name" form:"name" validate:"lte=64,required"`
	Email    string `json:"email" form:"email" validate:"email,required"`
	Password string `json:"password" form:"password" validate:"gte=6,lte=64,required"`
	Age      int    `json:"age" form:"age" validate:"gte=3,lte=120,required"`
	Grade    int    `json:"grade" form:"grade" validate:"gte=1,lte=12,required"`
	Place    string `json:"place" form:"place" validate:"lte=64,required"`
	Address  string `json:"address" form:"address" validate:"lte=255,required"`
	Phone    string `json:"phone" form:"phone" validate:"lte=20,required"`
}

func (sv *signupValidator) isOk() (bool, string) {
	if strings.ContainsAny(sv.Password, " \n\t\r") {
		return false, "Password must not contain whitespace"
	}
	return validate(sv)
}

type otpValidator struct {
	SessionID string `json:"sessionId" form:"sessionId" validate:"required"`
	Otp       string `json:"otp" form:"otp" validate:"len=6,numeric,required"`
}

func (ov *otpValidator) isOk() (bool, string) {
	return validate(ov)
}

type resendValidator struct {
	SessionID string `json:"sessionId" form:"sessionId" validate:"required"`
}

type signinValidator struct {
	Email    string `json:"email" form:"email" validate:"email,required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type forgotValidator struct {
	Email string `json:"email" form:"email" validate:"email,required"`
}

type resetValidator struct {
	SessionID string `json:"sessionId" form:"sessionId" validate:"required"`
	Password  string `json:"password" form:"password" validate:"gte=6,lte=64,required"`
}

func (rv *resetValidator) isOk() (bool, string) {
	if strings.ContainsAny(rv.Password, " \n\t\r") {
		return false, "Password must not contain whitespace"
	}
	return validate(rv)
}

type groupValidator struct {
	Name     string   `json:"name" form:"name" validate:"lte=64,required"`
	Students []string `json:"students" form:"students" validate:"required"`
}

type patchGroupValidator struct {
	GroupID  string   `json:"groupId" form:"groupId" validate:"required"`
	Students []string `json:"students" form:"students" validate:"required"`
}

type noteValidator struct {
	Title       string `json:"title" form:"title" validate:"lte=64,required"`
	Lesson      string `json:"lesson" form:"lesson" validate:"lte=64,required"`
	Description string `json:"description" form:"description" validate:"lte=1024"`
	Date        string `json:"date" form:"date" validate:"required"`
}
