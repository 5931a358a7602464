package user

import (
	"fmt"
	"strings"
	"time"

	"smartincident/internal/shared/authorization"
)

// Status is the account lifecycle status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// User is an account. A nil company ID denotes a staff/global account; a nil
// password hash denotes an account pending its first login.
type User struct {
	id               uint
	name             string
	email            string
	role             authorization.Role
	status           Status
	passwordHash     *string
	resetToken       *string
	resetTokenExpiry *time.Time
	companyID        *uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(name, email string, role authorization.Role, companyID *uint, passwordHash *string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if companyID != nil && *companyID == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		role:         role,
		status:       StatusActive,
		passwordHash: passwordHash,
		companyID:    companyID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	role authorization.Role,
	status Status,
	passwordHash *string,
	resetToken *string,
	resetTokenExpiry *time.Time,
	companyID *uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &User{
		id:               id,
		name:             name,
		email:            email,
		role:             role,
		status:           status,
		passwordHash:     passwordHash,
		resetToken:       resetToken,
		resetTokenExpiry: resetTokenExpiry,
		companyID:        companyID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) Role() authorization.Role     { return u.role }
func (u *User) Status() Status               { return u.status }
func (u *User) PasswordHash() *string        { return u.passwordHash }
func (u *User) ResetToken() *string          { return u.resetToken }
func (u *User) ResetTokenExpiry() *time.Time { return u.resetTokenExpiry }
func (u *User) CompanyID() *uint             { return u.companyID }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// Actor converts the user into the authorization actor used for scoping.
func (u *User) Actor() authorization.Actor {
	return authorization.Actor{
		UserID:    u.id,
		Role:      u.role,
		CompanyID: u.companyID,
	}
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(name, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return fmt.Errorf("valid email is required")
	}
	u.name = name
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole is an administrative operation; callers must have verified the
// actor is a superadmin before reaching this point.
func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// AssignCompany moves the account to a tenant; nil makes it a global account.
func (u *User) AssignCompany(companyID *uint) error {
	if companyID != nil && *companyID == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	u.companyID = companyID
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	u.status = status
	u.updatedAt = time.Now()
	return nil
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = &hash
	u.updatedAt = time.Now()
}

// IssueResetToken stores a password-reset token valid until now+ttl.
func (u *User) IssueResetToken(token string, ttl time.Duration) {
	expiry := time.Now().Add(ttl)
	u.resetToken = &token
	u.resetTokenExpiry = &expiry
	u.updatedAt = time.Now()
}

// ResetTokenValid reports whether the stored reset token matches and has not
// expired at the given instant.
func (u *User) ResetTokenValid(token string, now time.Time) bool {
	if u.resetToken == nil || *u.resetToken != token {
		return false
	}
	if u.resetTokenExpiry == nil {
		return false
	}
	return !now.After(*u.resetTokenExpiry)
}

// ConsumeResetToken applies a new password hash and clears the token so it
// cannot be used twice.
func (u *User) ConsumeResetToken(newHash string) {
	u.passwordHash = &newHash
	u.resetToken = nil
	u.resetTokenExpiry = nil
	u.updatedAt = time.Now()
}
