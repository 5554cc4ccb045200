package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/models"
)

const (
	usersCollection       = "users"
	trackedJobsCollection = "tracked_jobs"
)

// Sentinel errors returned by the Firestore store
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrTrackedJobNotFound = errors.New("tracked job not found")
)

// FirestoreClient stores users and their tracked jobs
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

func (f *FirestoreClient) userDoc(email string) *firestore.DocumentRef {
	return f.client.Collection(usersCollection).Doc(NormalizeEmail(email))
}

// CreateUser creates a new user keyed by email. It fails with ErrUserExists
// when the email is taken.
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Skills == nil {
		user.Skills = []string{}
	}

	// Create fails with AlreadyExists, which keeps the existence check atomic
	if _, err := f.userDoc(user.Email).Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := f.userDoc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser merges updates into the user document
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	if _, err := f.userDoc(email).Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateUserCV stores the CV location and the skills extracted from it
func (f *FirestoreClient) UpdateUserCV(ctx context.Context, email, cvURL string, skills []string) error {
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"cvUrl":  cvURL,
		"skills": skills,
	})
}

// UpdateUserProfile applies a profile update request. Nil fields are skipped.
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email string, req models.UpdateProfileRequest) error {
	updates := map[string]interface{}{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Skills != nil {
		updates["skills"] = req.Skills
	}
	if req.Preferences != nil {
		updates["preferences"] = *req.Preferences
	}

	if len(updates) == 0 {
		return nil
	}
	return f.UpdateUser(ctx, email, updates)
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	if _, err := f.userDoc(email).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (f *FirestoreClient) trackedJobs(email string) *firestore.CollectionRef {
	return f.userDoc(email).Collection(trackedJobsCollection)
}

// UpsertTrackedJob creates or replaces the tracked job with the same job ID.
// CreatedAt survives updates; a nil job snapshot keeps the stored one.
func (f *FirestoreClient) UpsertTrackedJob(ctx context.Context, email string, tracked *models.TrackedJob) error {
	if tracked.JobID == "" {
		return errors.New("tracked job requires a job ID")
	}
	ref := f.trackedJobs(email).Doc(tracked.JobID)

	return f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now()
		tracked.CreatedAt = now
		tracked.UpdatedAt = now

		doc, err := tx.Get(ref)
		switch {
		case err == nil:
			var existing models.TrackedJob
			if err := doc.DataTo(&existing); err != nil {
				return fmt.Errorf("failed to parse tracked job: %w", err)
			}
			mergeTrackedJob(tracked, &existing)
		case status.Code(err) != codes.NotFound:
			return fmt.Errorf("failed to read tracked job: %w", err)
		}

		return tx.Set(ref, tracked)
	})
}

// ListTrackedJobs returns the user's tracked jobs, most recently updated first
func (f *FirestoreClient) ListTrackedJobs(ctx context.Context, email string) ([]models.TrackedJob, error) {
	iter := f.trackedJobs(email).Documents(ctx)
	defer iter.Stop()

	jobs := []models.TrackedJob{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list tracked jobs: %w", err)
		}

		var tracked models.TrackedJob
		if err := doc.DataTo(&tracked); err != nil {
			return nil, fmt.Errorf("failed to parse tracked job %s: %w", doc.Ref.ID, err)
		}
		jobs = append(jobs, tracked)
	}

	sortTrackedJobs(jobs)
	return jobs, nil
}

// DeleteTrackedJob removes a tracked job
func (f *FirestoreClient) DeleteTrackedJob(ctx context.Context, email, jobID string) error {
	ref := f.trackedJobs(email).Doc(jobID)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrTrackedJobNotFound
		}
		return fmt.Errorf("failed to read tracked job: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete tracked job: %w", err)
	}
	return nil
}

// mergeTrackedJob carries stored fields the update left empty
func mergeTrackedJob(update, existing *models.TrackedJob) {
	if !existing.CreatedAt.IsZero() {
		update.CreatedAt = existing.CreatedAt
	}
	if update.Job.ID == "" {
		update.Job = existing.Job
	}
	if update.Notes == "" {
		update.Notes = existing.Notes
	}
}

func sortTrackedJobs(jobs []models.TrackedJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].UpdatedAt.After(jobs[j].UpdatedAt)
	})
}

// NormalizeEmail lowercases and trims an email used as a document ID
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
