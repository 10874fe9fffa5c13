package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted here because these structs are used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags.
//
// Fields:
//
//	ID                – primary key identifier of the user.
//	Username          – unique login name.
//	Email             – unique email address.
//	PasswordHash      – bcrypt hashed password.
//	FullName          – display name.
//	Birthday          – date of birth (date precision).
//	Country, City, Street, HouseNumber, ZipCode – address components.
//	PeopleInHousehold – household size, feeds the average-consumption estimate.
//	Premium           – premium account flag (TINYINT in MySQL).
//	CreatedAt         – timestamp of creation.
type User struct {
	ID                uint64    // users.user_id
	Username          string    // users.username
	Email             string    // users.email
	PasswordHash      string    // users.password_hash
	FullName          string    // users.full_name
	Birthday          string    // users.birthday (DATE, kept as string)
	Country           string    // users.country
	City              string    // users.city
	Street            string    // users.street
	HouseNumber       string    // users.house_number
	ZipCode           string    // users.zip_code
	PeopleInHousehold int       // users.people_in_household
	Premium           bool      // users.premium
	CreatedAt         time.Time // users.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry and
// revocation.  The plain token is not stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
