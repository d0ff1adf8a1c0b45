package domain

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
	UserRoleSeller   UserRole = "seller"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type User struct {
	BaseEntity
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Address      *Address `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}

// WithoutHash parola özetinden arındırılmış bir kopya döner.
func (u *User) WithoutHash() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

type UserRepository interface {
	Create(user *User) *User
	FindByID(id string) (*User, bool)
	FindByUsername(username string) (*User, bool)
	UpdateFields(id string, fields map[string]interface{}) (*User, error)
	All() []*User
}

type UserService interface {
	Register(user *User, password string) Result[*User]
	Authenticate(username, password string) Result[*User]
	GetProfile(id string) Result[*User]
	UpdateProfile(id string, fields map[string]interface{}) Result[*User]
}

// PasswordHasher parola özetleme algoritmasını soyutlar.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
