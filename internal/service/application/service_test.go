package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/edutrack-backend-go/internal/domain/application"
	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
)

type fakeApplicationRepo struct {
	apps   map[string]application.Application
	nextID int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]application.Application)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app application.Application) (application.Application, error) {
	f.nextID++
	app.ID = fmt.Sprintf("app-%d", f.nextID)
	app.Status = application.StatusPending
	app.CreatedAt = time.Now()
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (application.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) List(_ context.Context, filter application.ListFilter) ([]application.Application, error) {
	apps := make([]application.Application, 0, len(f.apps))
	for _, app := range f.apps {
		if filter.Status != nil && string(app.Status) != *filter.Status {
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (f *fakeApplicationRepo) ExistsPendingByEmail(_ context.Context, email string) (bool, error) {
	for _, app := range f.apps {
		if app.Email == email && app.Status == application.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) MarkApproved(_ context.Context, id, reviewerID string) error {
	app, ok := f.apps[id]
	if !ok || app.Status != application.StatusPending {
		return application.ErrAlreadyReviewed
	}
	app.Status = application.StatusApproved
	app.ReviewedBy = &reviewerID
	f.apps[id] = app
	return nil
}

func (f *fakeApplicationRepo) MarkRejected(_ context.Context, id, reviewerID, reason string) error {
	app, ok := f.apps[id]
	if !ok || app.Status != application.StatusPending {
		return application.ErrAlreadyReviewed
	}
	app.Status = application.StatusRejected
	app.ReviewedBy = &reviewerID
	app.RejectReason = &reason
	f.apps[id] = app
	return nil
}

type fakeUserRepo struct {
	emails map[string]bool
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByID(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = "user-1"
	f.emails[u.Email] = true
	return u, nil
}
func (f *fakeUserRepo) List(context.Context, user.ListUsersFilter) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.emails[email], nil
}
func (f *fakeUserRepo) ExistsByRollNumber(context.Context, string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) LinkGoogleAccount(context.Context, string, string) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) Update(context.Context, user.UpdateUserRequest) error { return nil }
func (f *fakeUserRepo) UpdatePassword(context.Context, string, string) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, string) error                 { return nil }

type captureEmailSender struct {
	approvedTo []string
	rejectedTo []string
	lastReason string
}

func (c *captureEmailSender) SendApplicationApproved(to, _, _, _ string) error {
	c.approvedTo = append(c.approvedTo, to)
	return nil
}

func (c *captureEmailSender) SendApplicationRejected(to, _, reason string) error {
	c.rejectedTo = append(c.rejectedTo, to)
	c.lastReason = reason
	return nil
}

func adminContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "admin",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(appRepo *fakeApplicationRepo, userRepo *fakeUserRepo, sender *captureEmailSender) application.ApplicationService {
	return NewApplicationService(nil, appRepo, userRepo, sender, "http://localhost:3000")
}

func strPtr(s string) *string { return &s }

func TestApply(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	userRepo := &fakeUserRepo{emails: map[string]bool{}}
	svc := newTestService(appRepo, userRepo, &captureEmailSender{})

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{
		Email:         "ayesha@example.com",
		Name:          "Ayesha",
		RequestedRole: "student",
		RollNumber:    strPtr("CS-101"),
		Class:         strPtr("BSCS 3-B"),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "ayesha@example.com", resp.Email)
}

func TestApplyValidation(t *testing.T) {
	svc := newTestService(newFakeApplicationRepo(), &fakeUserRepo{emails: map[string]bool{}}, &captureEmailSender{})

	tests := []struct {
		name string
		req  application.ApplyRequest
	}{
		{"missing email", application.ApplyRequest{Name: "X", RequestedRole: "teacher"}},
		{"admin role requested", application.ApplyRequest{Email: "a@b.co", Name: "X", RequestedRole: "admin"}},
		{"student without roll number", application.ApplyRequest{Email: "a@b.co", Name: "X", RequestedRole: "student", Class: strPtr("A")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestApplyRejectsRegisteredEmail(t *testing.T) {
	userRepo := &fakeUserRepo{emails: map[string]bool{"taken@example.com": true}}
	svc := newTestService(newFakeApplicationRepo(), userRepo, &captureEmailSender{})

	_, err := svc.Apply(context.Background(), application.ApplyRequest{
		Email:         "taken@example.com",
		Name:          "X",
		RequestedRole: "teacher",
	})

	assert.ErrorIs(t, err, application.ErrEmailRegistered)
}

func TestApplyRejectsDuplicatePending(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	svc := newTestService(appRepo, &fakeUserRepo{emails: map[string]bool{}}, &captureEmailSender{})

	req := application.ApplyRequest{Email: "dup@example.com", Name: "X", RequestedRole: "teacher"}
	_, err := svc.Apply(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), req)
	assert.ErrorIs(t, err, application.ErrPendingExists)
}

func TestListFilterByStatus(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	svc := newTestService(appRepo, &fakeUserRepo{emails: map[string]bool{}}, &captureEmailSender{})

	_, err := svc.Apply(context.Background(), application.ApplyRequest{Email: "a@example.com", Name: "A", RequestedRole: "teacher"})
	require.NoError(t, err)

	pending := "pending"
	list, err := svc.List(context.Background(), application.ListFilter{Status: &pending})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	approved := "approved"
	list, err = svc.List(context.Background(), application.ListFilter{Status: &approved})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReject(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	sender := &captureEmailSender{}
	svc := newTestService(appRepo, &fakeUserRepo{emails: map[string]bool{}}, sender)

	created, err := svc.Apply(context.Background(), application.ApplyRequest{
		Email:         "reject-me@example.com",
		Name:          "X",
		RequestedRole: "teacher",
	})
	require.NoError(t, err)

	ctx := adminContext(t, "admin-1")
	err = svc.Reject(ctx, application.RejectRequest{ID: created.ID, Reason: "unknown applicant"})
	require.NoError(t, err)

	assert.Equal(t, []string{"reject-me@example.com"}, sender.rejectedTo)
	assert.Equal(t, "unknown applicant", sender.lastReason)

	stored, err := appRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusRejected, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, "admin-1", *stored.ReviewedBy)
}

func TestRejectTwiceFails(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	svc := newTestService(appRepo, &fakeUserRepo{emails: map[string]bool{}}, &captureEmailSender{})

	created, err := svc.Apply(context.Background(), application.ApplyRequest{
		Email:         "once@example.com",
		Name:          "X",
		RequestedRole: "teacher",
	})
	require.NoError(t, err)

	ctx := adminContext(t, "admin-1")
	require.NoError(t, svc.Reject(ctx, application.RejectRequest{ID: created.ID}))

	err = svc.Reject(ctx, application.RejectRequest{ID: created.ID})
	assert.ErrorIs(t, err, application.ErrAlreadyReviewed)
}

func TestRejectMissingApplication(t *testing.T) {
	svc := newTestService(newFakeApplicationRepo(), &fakeUserRepo{emails: map[string]bool{}}, &captureEmailSender{})

	err := svc.Reject(adminContext(t, "admin-1"), application.RejectRequest{ID: "nope"})
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}
