package auth

import (
	"context"
	"testing"
	"time"

	autherrors "github.com/BenitoJD/ROTA-API/internal/auth/errors"
	"github.com/BenitoJD/ROTA-API/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	createFn          func(ctx context.Context, u *user.User) error
	findByIDFn        func(ctx context.Context, id uint) (*user.User, error)
	findByUsernameFn  func(ctx context.Context, username string) (*user.User, error)
	findAllDetailsFn  func(ctx context.Context) ([]user.UserDetail, error)
	updateFn          func(ctx context.Context, u *user.User) error
	updateLastLoginFn func(ctx context.Context, id uint, at time.Time) error
	findRoleFn        func(ctx context.Context, roleID uint) (*user.Role, error)
	findAllRolesFn    func(ctx context.Context) ([]user.Role, error)
	usernameTakenFn   func(ctx context.Context, username string) (bool, error)
	employeeExistsFn  func(ctx context.Context, employeeID uint) (bool, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return f.createFn(ctx, u) }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.findByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) FindAllDetails(ctx context.Context) ([]user.UserDetail, error) {
	return f.findAllDetailsFn(ctx)
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return f.updateFn(ctx, u) }
func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return f.updateLastLoginFn(ctx, id, at)
}
func (f *fakeUserRepo) FindRole(ctx context.Context, roleID uint) (*user.Role, error) {
	return f.findRoleFn(ctx, roleID)
}
func (f *fakeUserRepo) FindAllRoles(ctx context.Context) ([]user.Role, error) {
	return f.findAllRolesFn(ctx)
}
func (f *fakeUserRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return f.usernameTakenFn(ctx, username)
}
func (f *fakeUserRepo) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestService_Login_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeUserRepo{}
	repo.findByUsernameFn = func(ctx context.Context, username string) (*user.User, error) {
		return &user.User{ID: 5, Username: "ada", PasswordHash: hashOf(t, "s3cret-pass"), EmployeeID: 3, RoleID: 2, IsActive: true}, nil
	}
	repo.findRoleFn = func(ctx context.Context, roleID uint) (*user.Role, error) {
		return &user.Role{ID: 2, RoleName: "Manager", IsAdmin: true, CanViewRota: true}, nil
	}
	var lastLoginSet bool
	repo.updateLastLoginFn = func(ctx context.Context, id uint, at time.Time) error {
		lastLoginSet = true
		return nil
	}

	svc := NewService(repo)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "ada", Password: "s3cret-pass"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(5), resp.UserID)
	assert.Equal(t, uint(3), resp.EmployeeID)
	assert.True(t, resp.IsAdmin)
	assert.True(t, lastLoginSet)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(5), claims["user_id"])
	assert.Equal(t, float64(3), claims["employee_id"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, true, claims["can_view_rota"])
	assert.Equal(t, false, claims["can_edit_rota"])
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeUserRepo{}
	repo.findByUsernameFn = func(ctx context.Context, username string) (*user.User, error) {
		return &user.User{ID: 5, PasswordHash: hashOf(t, "right"), IsActive: true}, nil
	}

	svc := NewService(repo)
	_, err := svc.Login(context.Background(), LoginRequest{Username: "ada", Password: "wrong"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.findByUsernameFn = func(ctx context.Context, username string) (*user.User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(repo)
	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_DisabledAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.findByUsernameFn = func(ctx context.Context, username string) (*user.User, error) {
		return &user.User{ID: 5, PasswordHash: hashOf(t, "pass"), IsActive: false}, nil
	}

	svc := NewService(repo)
	_, err := svc.Login(context.Background(), LoginRequest{Username: "ada", Password: "pass"})
	assert.ErrorIs(t, err, autherrors.ErrAccountDisabled)
}

func TestService_ChangePassword_WrongOld(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.findByIDFn = func(ctx context.Context, id uint) (*user.User, error) {
		return &user.User{ID: id, PasswordHash: hashOf(t, "old-pass")}, nil
	}

	svc := NewService(repo)
	err := svc.ChangePassword(context.Background(), 5, ChangePasswordRequest{OldPassword: "nope", NewPassword: "new-pass-123"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.usernameTakenFn = func(ctx context.Context, username string) (bool, error) { return true, nil }

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), RegisterRequest{Username: "ada", Password: "password1", EmployeeID: 3, RoleID: 2})
	assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
}
