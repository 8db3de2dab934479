package db_models

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleBusiness
}

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:150"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         Role `gorm:"index"`
	IsStaff      bool

	Profile Profile `gorm:"foreignKey:UserID"`
}
