package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/events"
)

var errStoreDown = errors.New("store unavailable")

// Each fake embeds its interface; calling a method a test did not override panics.

type fakeUserRepo struct {
	repositories.IUserRepository
	users         map[int64]*models.User
	created       []*models.User
	withCandidate bool
	deleted       []int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User, withCandidate bool) error {
	u.ID = int64(len(r.users) + 1)
	r.users[u.ID] = u
	r.created = append(r.created, u)
	r.withCandidate = withCandidate
	return nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id int64, status models.UserStatus) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeUserRepo) FilterActiveWithRole(_ context.Context, ids []int64, role models.Role) ([]int64, error) {
	out := []int64{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok && u.Status == models.UserStatusActive && u.HasRole(role) {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeCandidateRepo struct {
	repositories.ICandidateRepository
	candidates map[int64]*models.Candidate
	applied    map[[2]int64]string
}

func newFakeCandidateRepo(candidates ...*models.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{candidates: map[int64]*models.Candidate{}, applied: map[[2]int64]string{}}
	for _, c := range candidates {
		r.candidates[c.ID] = c
	}
	return r
}

func (r *fakeCandidateRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.candidates[id]
	return ok, nil
}

func (r *fakeCandidateRepo) GetByUserID(_ context.Context, userID int64) (*models.Candidate, error) {
	for _, c := range r.candidates {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperrors.ErrCandidateNotFound
}

func (r *fakeCandidateRepo) EnsureForUser(ctx context.Context, userID int64) (*models.Candidate, error) {
	if c, err := r.GetByUserID(ctx, userID); err == nil {
		return c, nil
	}
	c := &models.Candidate{ID: int64(len(r.candidates) + 100), UserID: userID, Status: models.CandidateStatusApplied}
	r.candidates[c.ID] = c
	return c, nil
}

func (r *fakeCandidateRepo) GetUserIDByCandidateID(_ context.Context, id int64) (int64, error) {
	if c, ok := r.candidates[id]; ok {
		return c.UserID, nil
	}
	return 0, apperrors.ErrCandidateNotFound
}

func (r *fakeCandidateRepo) Apply(_ context.Context, candidateID, jobID int64, source string) (bool, error) {
	key := [2]int64{candidateID, jobID}
	if _, ok := r.applied[key]; ok {
		return false, nil
	}
	r.applied[key] = source
	return true, nil
}

type fakeJobRepo struct {
	repositories.IJobRepository
	jobs       map[int64]*models.Job
	open       []*models.Job
	openTotal  int64
	openQuery  repositories.OpenJobsQuery
	created    []int64
	updated    *models.Job
	updatedIDs []int64
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[int64]*models.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, apperrors.ErrJobNotFound
}

func (r *fakeJobRepo) ListOpen(_ context.Context, q repositories.OpenJobsQuery) ([]*models.Job, int64, error) {
	r.openQuery = q
	return r.open, r.openTotal, nil
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job, skillIDs []int64) error {
	job.ID = int64(len(r.jobs) + 1)
	r.jobs[job.ID] = job
	r.created = skillIDs
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *models.Job, skillIDs []int64) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return apperrors.ErrJobNotFound
	}
	stored := *job
	r.jobs[job.ID] = &stored
	r.updated = &stored
	r.updatedIDs = skillIDs
	return nil
}

type fakeSkillRepo struct {
	repositories.ISkillRepository
	existing map[int64]bool
}

func (r *fakeSkillRepo) CountExisting(_ context.Context, ids []int64) (int, error) {
	n := 0
	for _, id := range ids {
		if r.existing[id] {
			n++
		}
	}
	return n, nil
}

type fakeInterviewRepo struct {
	repositories.IInterviewRepository
	interviews map[int64]*models.Interview
	notices    map[int64]*repositories.InterviewNotice
	feedbacks  []*models.Feedback
	listed     []*models.Interview
	filters    []repositories.InterviewFilter
	getErr     error
}

func newFakeInterviewRepo(interviews ...*models.Interview) *fakeInterviewRepo {
	r := &fakeInterviewRepo{
		interviews: map[int64]*models.Interview{},
		notices:    map[int64]*repositories.InterviewNotice{},
	}
	for _, i := range interviews {
		r.interviews[i.ID] = i
	}
	return r
}

func (r *fakeInterviewRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.interviews[id]
	return ok, nil
}

func (r *fakeInterviewRepo) GetByID(_ context.Context, id int64) (*models.Interview, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if i, ok := r.interviews[id]; ok {
		return i, nil
	}
	return nil, apperrors.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) UpdateStatus(_ context.Context, id int64, status models.InterviewStatus, at time.Time) error {
	i, ok := r.interviews[id]
	if !ok {
		return apperrors.ErrInterviewNotFound
	}
	i.Status = status
	if status.IsTerminal() {
		stamp := at
		i.CompletedAt = &stamp
	}
	return nil
}

func (r *fakeInterviewRepo) NoticeFor(_ context.Context, id int64) (*repositories.InterviewNotice, error) {
	if n, ok := r.notices[id]; ok {
		return n, nil
	}
	return nil, apperrors.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) AddFeedback(_ context.Context, f *models.Feedback) error {
	f.ID = int64(len(r.feedbacks) + 1)
	r.feedbacks = append(r.feedbacks, f)
	return nil
}

func (r *fakeInterviewRepo) List(_ context.Context, f repositories.InterviewFilter) ([]*models.Interview, error) {
	r.filters = append(r.filters, f)
	return r.listed, nil
}

type fakeNotificationRepo struct {
	repositories.INotificationRepository
	mu        sync.Mutex
	created   []*models.Notification
	createErr error
	owners    map[int64]int64
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	n.ID = int64(len(r.created) + 1)
	n.CreatedAt = time.Now()
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.created {
		if c.UserID == userID && !c.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id, userID int64, _ time.Time) error {
	if owner, ok := r.owners[id]; ok && owner == userID {
		return nil
	}
	return apperrors.ErrNotificationNotFound
}

type pushedMessage struct {
	userID      int64
	messageType string
}

type fakePusher struct {
	mu     sync.Mutex
	pushed []pushedMessage
	err    error
}

func (p *fakePusher) SendToUser(_ context.Context, userID int64, messageType string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushed = append(p.pushed, pushedMessage{userID: userID, messageType: messageType})
	return p.err
}

type fakePublisher struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, e)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type fakeTokens struct{}

func (fakeTokens) GenerateToken(u *models.User) (string, int, error) {
	return "token-for-" + u.Username, 3600, nil
}
