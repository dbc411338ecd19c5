package consts

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldPhone    UserField = "phone"
)
