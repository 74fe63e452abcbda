package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ojay234/fullstack-capstone-project/internal/config"
	"github.com/ojay234/fullstack-capstone-project/internal/handlers"
	"github.com/ojay234/fullstack-capstone-project/internal/models"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
	"github.com/ojay234/fullstack-capstone-project/internal/routes"
	"github.com/ojay234/fullstack-capstone-project/internal/services"
	"github.com/ojay234/fullstack-capstone-project/internal/token"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	users map[string]*models.User
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

type fakeGiftRepo struct {
	gifts        []models.Gift
	lastCriteria repository.SearchCriteria
}

func (r *fakeGiftRepo) All(_ context.Context) ([]models.Gift, error) {
	return r.gifts, nil
}

func (r *fakeGiftRepo) FindByGiftID(_ context.Context, id string) (models.Gift, error) {
	for _, g := range r.gifts {
		if g.GiftID() == id {
			return g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGiftRepo) Insert(_ context.Context, gift models.Gift) (models.Gift, error) {
	r.gifts = append(r.gifts, gift)
	return gift, nil
}

func (r *fakeGiftRepo) Search(_ context.Context, criteria repository.SearchCriteria) ([]models.Gift, error) {
	r.lastCriteria = criteria
	var out []models.Gift
	for _, g := range r.gifts {
		name, _ := g["name"].(string)
		if criteria.Name != "" && !strings.HasPrefix(strings.ToLower(name), strings.ToLower(criteria.Name)) {
			continue
		}
		category, _ := g["category"].(string)
		if criteria.Category != "" && category != criteria.Category {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// newTestApp wires the full route/middleware stack over in-memory fakes.
func newTestApp(t *testing.T) (*fiber.App, *fakeUserRepo, *fakeGiftRepo) {
	t.Helper()

	cfg := &config.Config{JWTSecret: testSecret, CORSOrigins: "*"}
	userRepo := &fakeUserRepo{users: map[string]*models.User{}}
	giftRepo := &fakeGiftRepo{}

	signer := token.NewSigner(cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo, signer))
	giftHandler := handlers.NewGiftHandler(services.NewGiftService(giftRepo))
	searchHandler := handlers.NewSearchHandler(services.NewSearchService(giftRepo))
	healthHandler := handlers.NewHealthHandler(okPinger{})

	app := fiber.New()
	routes.Setup(app, cfg, authHandler, giftHandler, searchHandler, healthHandler)
	return app, userRepo, giftRepo
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

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
}
