// AngelaMos | 2026
// entity.go

package user

type User struct {
	ID           int64   `db:"id"`
	Role         string  `db:"role"`
	Username     string  `db:"username"`
	PasswordHash string  `db:"password_hash"`
	Email        string  `db:"email"`
	CurrentToken *string `db:"current_token"`
}

// Role values mirrored by the user_role enum in the schema.
const (
	RoleClient    = "client"
	RoleModerator = "moderator"
)
