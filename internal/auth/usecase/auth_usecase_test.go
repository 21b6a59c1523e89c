package usecase

import (
	"testing"
	"time"

	authdomain "figmine-backend/internal/auth/domain"
	authdto "figmine-backend/internal/auth/dto"
	"figmine-backend/pkg/apperr"
	"figmine-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for tests
type fakeUserRepo struct {
	users         map[string]*authdomain.User // by id
	refreshTokens map[string]*authdomain.RefreshToken
	nextID        int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[string]*authdomain.User),
		refreshTokens: make(map[string]*authdomain.RefreshToken),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	r.nextID++
	user.ID = "user-" + string(rune('0'+r.nextID))
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.refreshTokens[token], nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
		Name:     "Ada",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	login, err := uc.Login(&authdto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "hunter22", Name: "Ada"})
	require.NoError(t, err)

	_, err = uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "other-pass", Name: "Ada"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "hunter22", Name: "Ada"})
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.From(err).Code)
}

func TestValidateTokenAndExtractEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "hunter22", Name: "Ada"})
	require.NoError(t, err)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	email, err := uc.ExtractEmail(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)
}

func TestExtractEmailRejectsTamperedToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "hunter22", Name: "Ada"})
	require.NoError(t, err)

	otherSecret := NewAuthUsecase(repo, &config.Config{
		JWTSecret:        "different-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	})

	_, err = otherSecret.ExtractEmail(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.From(err).Code)
}

func TestRefreshTokenRotation(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "hunter22", Name: "Ada"})
	require.NoError(t, err)

	rotated, err := uc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	_, err = uc.RefreshToken("not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.From(err).Code)
}

func TestRefreshTokenUnknownToStore(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "ada@example.com", Password: "hunter22", Name: "Ada"})
	require.NoError(t, err)

	// a signed but logged-out token must be rejected
	require.NoError(t, uc.Logout(resp.RefreshToken))

	_, err = uc.RefreshToken(resp.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.From(err).Code)
}
