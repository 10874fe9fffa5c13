package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/hausenergie/energymon/internal/model"
	"github.com/hausenergie/energymon/internal/utils"
)

// UserRepo encapsulates all database queries related to users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a new user with a bcrypt-hashed password and returns its
// ID.  MySQL reports unique violations as error 1062 including the index
// name, which lets us tell a username collision from an email collision.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users
		   (username, email, password_hash, full_name, birthday,
		    country, city, street, house_number, zip_code, people_in_household)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		u.Username, strings.ToLower(strings.TrimSpace(u.Email)), hash, u.FullName, u.Birthday,
		u.Country, u.City, u.Street, u.HouseNumber, u.ZipCode, u.PeopleInHousehold)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "username") {
				return 0, ErrUsernameExists
			}
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user for login.  Only the columns needed for
// credential verification and token issuance are selected.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, username, password_hash FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	return u, err
}

// GetByID fetches the full user row including profile fields.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, username, email, password_hash, full_name, birthday,
		        country, city, street, house_number, zip_code,
		        people_in_household, premium, created_at
		 FROM users WHERE user_id=? LIMIT 1`,
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Birthday,
		&u.Country, &u.City, &u.Street, &u.HouseNumber, &u.ZipCode,
		&u.PeopleInHousehold, &u.Premium, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

// Household carries the subset of user columns the summary endpoint needs.
type Household struct {
	PeopleInHousehold int
	ZipCode           string
	Premium           bool
}

// HouseholdByID loads household size, zip code and the premium flag for the
// consumption summary without pulling the whole profile.
func (r *UserRepo) HouseholdByID(ctx context.Context, id uint64) (Household, error) {
	var h Household
	err := r.DB.QueryRowContext(ctx,
		"SELECT people_in_household, zip_code, premium FROM users WHERE user_id=? LIMIT 1",
		id).Scan(&h.PeopleInHousehold, &h.ZipCode, &h.Premium)
	if errors.Is(err, sql.ErrNoRows) {
		return h, ErrUserNotFound
	}
	return h, err
}

// ZipCodeByID returns only the zip code, used by the GSI proxy.
func (r *UserRepo) ZipCodeByID(ctx context.Context, id uint64) (string, error) {
	var zip string
	err := r.DB.QueryRowContext(ctx,
		"SELECT zip_code FROM users WHERE user_id=? LIMIT 1", id).Scan(&zip)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	return zip, err
}
