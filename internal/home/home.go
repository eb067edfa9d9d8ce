// Package home holds the state behind the home screen: the cached session, the authoritative
// course set fetched from the store, the search query and the single-slot error message.
package home

import (
	"context"
	"sync"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"learnify/internal/models"
	"learnify/internal/qerrors"
	"learnify/internal/search"
	"learnify/internal/session"
)

// CourseSource fetches the complete course collection on behalf of a session token.
type CourseSource interface {
	ListCourses(ctx context.Context, token *string) ([]*models.Course, error)
}

// Options configures a Screen.
type Options struct {
	// Keys are the storage keys the session is cached under.
	Keys session.Keys
	// OnChange, if set, is called with a fresh View after every state change. It is called
	// without the screen's lock held and must not block for long.
	OnChange func(models.View)
}

// Screen is the home screen's state. It is safe for concurrent use.
type Screen struct {
	source  CourseSource
	storage session.Storage
	opts    Options

	lock     sync.Mutex
	session  models.Session
	courses  []*models.Course
	filtered []*models.Course
	query    string
	errMsg   string
	inFlight int
	latest   uint64
	closed   bool

	lifetime context.Context
	cancel   context.CancelFunc
}

// New returns an inactive Screen; call Activate to load the session and fetch the courses.
func New(source CourseSource, storage session.Storage, opts Options) *Screen {
	lifetime, cancel := context.WithCancel(context.Background())
	return &Screen{
		source:   source,
		storage:  storage,
		opts:     opts,
		courses:  make([]*models.Course, 0),
		filtered: make([]*models.Course, 0),
		lifetime: lifetime,
		cancel:   cancel,
	}
}

// Activate loads the cached session and performs the initial fetch.
func (s *Screen) Activate(ctx context.Context) error {
	sess := session.Load(ctx, s.storage, s.opts.Keys)

	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return qerrors.ScreenClosedError
	}
	s.session = *sess
	s.lock.Unlock()
	s.notify()

	return s.Refresh(ctx)
}

// Refresh fetches the whole course collection and replaces the authoritative set with it. On
// failure the set is left untouched and the failure's message goes to the error slot. Only the
// most recently started refresh may commit; an older one finishing later is discarded, as is any
// refresh finishing after Close. The returned error is for logging, the screen state already
// reflects it.
func (s *Screen) Refresh(ctx context.Context) error {
	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return qerrors.ScreenClosedError
	}
	s.latest++
	gen := s.latest
	s.inFlight++
	prev := s.session
	s.lock.Unlock()
	s.notify()

	defer func() {
		s.lock.Lock()
		s.inFlight--
		s.lock.Unlock()
		s.notify()
	}()

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.lifetime, cancel)
	defer stop()

	refreshID := uuid.New()
	glog.V(1).Infof("refresh %v (generation %d) started\n", refreshID, gen)

	// The session is re-read every time so a sign-in, sign-out or token renewal written to
	// storage reaches the next fetch.
	sess := session.Reload(fetchCtx, s.storage, s.opts.Keys, prev)
	s.lock.Lock()
	if !s.closed && gen == s.latest {
		s.session = *sess
	}
	s.lock.Unlock()

	if s.source == nil {
		return s.commitFailure(gen, refreshID, qerrors.CourseSourceUnavailableError)
	}
	courses, err := s.source.ListCourses(fetchCtx, sess.Token)
	if err != nil {
		if ctx.Err() != nil && qerrors.IsCanceled(err) {
			glog.V(1).Infof("refresh %v cancelled by its caller, discarding\n", refreshID)
			return err
		}
		return s.commitFailure(gen, refreshID, err)
	}
	if courses == nil {
		courses = make([]*models.Course, 0)
	}

	s.lock.Lock()
	if err := s.checkCommit(gen, refreshID); err != nil {
		s.lock.Unlock()
		return err
	}
	s.courses = courses
	s.filtered = search.Filter(s.courses, s.query)
	s.lock.Unlock()

	glog.V(1).Infof("refresh %v committed %d courses\n", refreshID, len(courses))
	return nil
}

func (s *Screen) commitFailure(gen uint64, refreshID uuid.UUID, fetchErr error) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.checkCommit(gen, refreshID); err != nil {
		return err
	}
	s.errMsg = qerrors.Message(fetchErr)
	glog.Warningf("refresh %v failed: %v\n", refreshID, fetchErr)
	return fetchErr
}

// checkCommit must be called with the lock held.
func (s *Screen) checkCommit(gen uint64, refreshID uuid.UUID) error {
	if s.closed {
		glog.V(1).Infof("refresh %v finished after the screen closed, discarding\n", refreshID)
		return qerrors.ScreenClosedError
	}
	if gen != s.latest {
		glog.V(1).Infof("refresh %v superseded by generation %d, discarding\n", refreshID, s.latest)
		return qerrors.StaleFetchError
	}
	return nil
}

// SetQuery replaces the search query and recomputes the displayed courses.
func (s *Screen) SetQuery(query string) {
	s.lock.Lock()
	s.query = query
	s.filtered = search.Filter(s.courses, s.query)
	s.lock.Unlock()
	s.notify()
}

// DismissError clears the error slot, whatever it held.
func (s *Screen) DismissError() {
	s.lock.Lock()
	s.errMsg = ""
	s.lock.Unlock()
	s.notify()
}

// Close tears the screen down. In-flight fetches are cancelled and nothing they return is
// committed.
func (s *Screen) Close() {
	s.lock.Lock()
	s.closed = true
	s.lock.Unlock()
	s.cancel()
}

func (s *Screen) Query() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.query
}

// Courses returns the displayed courses: the authoritative set filtered by the query.
func (s *Screen) Courses() []*models.Course {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]*models.Course(nil), s.filtered...)
}

// All returns the authoritative course set.
func (s *Screen) All() []*models.Course {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]*models.Course(nil), s.courses...)
}

func (s *Screen) Refreshing() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.inFlight > 0
}

// ErrorMessage returns the pending fetch failure message, or "" if there is none.
func (s *Screen) ErrorMessage() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.errMsg
}

func (s *Screen) Email() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.session.EmailOrEmpty()
}

// Token returns the cached session token, or nil.
func (s *Screen) Token() *string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.session.Token
}

// View returns a consistent snapshot of everything the renderer needs.
func (s *Screen) View() models.View {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.viewLocked()
}

func (s *Screen) viewLocked() models.View {
	v := models.View{
		Courses:    append(make([]*models.Course, 0, len(s.filtered)), s.filtered...),
		Query:      s.query,
		Refreshing: s.inFlight > 0,
		Error:      s.errMsg,
		Email:      s.session.EmailOrEmpty(),
		Empty:      len(s.filtered) == 0,
	}
	if v.Empty {
		v.EmptyMessage = models.NoCoursesMessage
	}
	return v
}

func (s *Screen) notify() {
	if s.opts.OnChange == nil {
		return
	}
	s.opts.OnChange(s.View())
}
