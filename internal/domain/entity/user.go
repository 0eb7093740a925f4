package entity

// User representa un usuario que puede iniciar sesión en el dashboard.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string // bcrypt hash, nunca el texto plano
}
