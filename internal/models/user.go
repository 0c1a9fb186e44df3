package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64     `db:"id"`         // Primary key
	Name      string    `db:"name"`       // Display name
	Email     string    `db:"email"`      // User email
	Username  string    `db:"username"`   // Unique username, also the author key on articles
	Password  string    `db:"password"`   // Bcrypt hash
	CreatedAt time.Time `db:"created_at"` // Registration timestamp
}
