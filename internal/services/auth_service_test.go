package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ojay234/fullstack-capstone-project/internal/dto"
	"github.com/ojay234/fullstack-capstone-project/internal/models"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
	"github.com/ojay234/fullstack-capstone-project/internal/token"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	r.users[user.Email] = &stored
	return id, nil
}

func (r *fakeUserRepo) UpdateNames(_ context.Context, email, firstName, lastName string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	now := time.Now()
	user.UpdatedAt = &now
	copy := *user
	return &copy, nil
}

func newAuthService(repo repository.UserRepository) (*AuthService, *token.Signer) {
	signer := token.NewSigner("test-secret", 0)
	return NewAuthService(repo, signer), signer
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, firstName, password string) primitive.ObjectID {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	id, err := repo.Insert(context.Background(), &models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  "B",
		Password:  string(hash),
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func TestRegister(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, signer := newAuthService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "a@b.com", FirstName: "A", LastName: "B", Password: "pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AuthToken)
	assert.Equal(t, "a@b.com", resp.Email)

	// Token embeds the stored identifier.
	userID, err := signer.UserID(resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, repo.users["a@b.com"].ID.Hex(), userID)

	// Password is stored hashed, not verbatim.
	assert.NotEqual(t, "pw", repo.users["a@b.com"].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["a@b.com"].Password), []byte("pw")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "a@b.com", FirstName: "A", LastName: "B", Password: "pw",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "a@b.com", FirstName: "Other", LastName: "Person", Password: "pw2",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1, "duplicate registration must not create a second user")
	assert.Equal(t, "A", repo.users["a@b.com"].FirstName)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, signer := newAuthService(repo)
	id := seedUser(t, repo, "a@b.com", "A", "pw")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.UserName)
	assert.Equal(t, "a@b.com", resp.UserEmail)

	userID, err := signer.UserID(resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@b.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)
	seedUser(t, repo, "a@b.com", "A", "pw")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, signer := newAuthService(repo)
	id := seedUser(t, repo, "a@b.com", "A", "pw")

	resp, err := svc.UpdateProfile(context.Background(), "a@b.com", "New", "Name", "")
	require.NoError(t, err)

	userID, err := signer.UserID(resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), userID)

	assert.Equal(t, "New", repo.users["a@b.com"].FirstName)
	assert.Equal(t, "Name", repo.users["a@b.com"].LastName)
	assert.NotNil(t, repo.users["a@b.com"].UpdatedAt)
}

func TestUpdateProfile_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(newFakeUserRepo())

	_, err := svc.UpdateProfile(context.Background(), "nobody@b.com", "New", "Name", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_TokenMismatch(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)
	seedUser(t, repo, "a@b.com", "A", "pw")

	otherID := primitive.NewObjectID().Hex()
	_, err := svc.UpdateProfile(context.Background(), "a@b.com", "New", "Name", otherID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "A", repo.users["a@b.com"].FirstName, "rejected update must not mutate the user")
}

func TestUpdateProfile_TokenMatch(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)
	id := seedUser(t, repo, "a@b.com", "A", "pw")

	_, err := svc.UpdateProfile(context.Background(), "a@b.com", "New", "Name", id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "New", repo.users["a@b.com"].FirstName)
}
