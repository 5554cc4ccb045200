package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jobfit/backend/agent"
	"github.com/jobfit/backend/auth"
	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/events"
	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/storage"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]*models.User)}
}

func (f *fakeUsers) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return storage.ErrUserExists
	}
	user.ID = user.Email
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (f *fakeUsers) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.GoogleID == googleID {
			out := *user
			return &out, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (f *fakeUsers) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	if id, ok := updates["googleId"].(string); ok {
		user.GoogleID = id
	}
	return nil
}

func (f *fakeUsers) UpdateUserCV(ctx context.Context, email, cvURL string, skills []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	user.CVUrl = cvURL
	user.Skills = skills
	return nil
}

func (f *fakeUsers) UpdateUserProfile(ctx context.Context, email string, req models.UpdateProfileRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
	}
	return nil
}

type fakeTracked struct {
	mu   sync.Mutex
	jobs map[string]map[string]models.TrackedJob
}

func newFakeTracked() *fakeTracked {
	return &fakeTracked{jobs: make(map[string]map[string]models.TrackedJob)}
}

func (f *fakeTracked) UpsertTrackedJob(ctx context.Context, email string, tracked *models.TrackedJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.jobs[email] == nil {
		f.jobs[email] = make(map[string]models.TrackedJob)
	}
	f.jobs[email][tracked.JobID] = *tracked
	return nil
}

func (f *fakeTracked) ListTrackedJobs(ctx context.Context, email string) ([]models.TrackedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.TrackedJob{}
	for _, job := range f.jobs[email] {
		out = append(out, job)
	}
	return out, nil
}

func (f *fakeTracked) DeleteTrackedJob(ctx context.Context, email, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[email][jobID]; !ok {
		return storage.ErrTrackedJobNotFound
	}
	delete(f.jobs[email], jobID)
	return nil
}

type fakeGoogle struct {
	info *auth.GoogleUserInfo
	err  error
}

func (f *fakeGoogle) VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error) {
	return f.info, f.err
}

type fakeSkills struct {
	skills   []string
	err      error
	pdfCalls int
}

func (f *fakeSkills) ExtractSkills(ctx context.Context, cvText string) ([]string, error) {
	return f.skills, f.err
}

func (f *fakeSkills) ExtractSkillsFromPDF(ctx context.Context, pdfData []byte) ([]string, error) {
	f.pdfCalls++
	return f.skills, f.err
}

type fakeCVStore struct {
	uploads map[string][]byte
}

func (f *fakeCVStore) Upload(ctx context.Context, userEmail, filename string, content []byte) (string, error) {
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	url := "gs://cvs/" + userEmail + "/" + filename
	f.uploads[url] = content
	return url, nil
}

func (f *fakeCVStore) Download(ctx context.Context, cvURL string) ([]byte, error) {
	data, ok := f.uploads[cvURL]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeCVStore) Close() error { return nil }

type fakeJobSource struct {
	jobs    []*models.JobPosting
	source  string
	err     error
	queries []string
}

func (f *fakeJobSource) FetchJobs(ctx context.Context, query string, filters models.MatchFilters) ([]*models.JobPosting, agent.SearchStats, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, agent.SearchStats{}, f.err
	}
	return f.jobs, agent.SearchStats{Source: f.source}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.MatchCompleted
}

func (p *recordingPublisher) PublishMatchCompleted(ctx context.Context, event events.MatchCompleted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testEnv struct {
	router    *gin.Engine
	jwt       *auth.JWTService
	users     *fakeUsers
	tracked   *fakeTracked
	google    *fakeGoogle
	skills    *fakeSkills
	cvStore   *fakeCVStore
	jobs      *fakeJobSource
	publisher *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		jwt:       auth.NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1}),
		users:     newFakeUsers(),
		tracked:   newFakeTracked(),
		google:    &fakeGoogle{},
		skills:    &fakeSkills{},
		cvStore:   &fakeCVStore{},
		jobs:      &fakeJobSource{source: agent.SourceCache},
		publisher: &recordingPublisher{},
	}

	reader := NewCVReader(env.skills)
	engine := matching.NewEngine(matching.DefaultPolicy(), nil)

	env.router = gin.New()
	Routes{
		Health:  NewHealthHandler("test"),
		Auth:    NewAuthHandler(env.users, env.jwt, env.google, env.cvStore, reader),
		Match:   NewMatchHandler(engine, env.jobs, env.users, env.publisher, 10),
		Skills:  NewSkillHandler(reader),
		Tracked: NewTrackedJobHandler(env.tracked),
	}.Register(env.router, env.jwt)

	return env
}

// seedUser stores a password user and returns a bearer token for them
func (e *testEnv) seedUser(t *testing.T, email string, skills []string) string {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{Email: email, Name: "Test User", Password: hash, Provider: models.ProviderEmail, Skills: skills}
	require.NoError(t, e.users.CreateUser(context.Background(), user))

	token, err := e.jwt.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(path, token string, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if filename != "" {
		part, _ := writer.CreateFormFile("cv_file", filename)
		_, _ = part.Write(content)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), strings.TrimSpace(w.Body.String()))
}
