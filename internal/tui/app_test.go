package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/workers"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── fixture ───────────────────────────────────────────────────────────────────

var (
	alice    = models.UserProjection{ID: 1, Username: "alice", Email: "alice@example.com", FirstName: "Alice"}
	loggedIn = models.Session{Authenticated: true, User: &alice}
)

type fakeSession struct {
	mu      sync.Mutex
	session models.Session
}

func (f *fakeSession) Snapshot() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeSession) Subscribe() (<-chan models.Session, func()) {
	ch := make(chan models.Session)
	return ch, func() {}
}

func (f *fakeSession) set(s models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
}

type tuiFixture struct {
	auth    *mock.MockClientAuthService
	profile *mock.MockClientProfileService
	posts   *mock.MockClientPostService
	appInfo *mock.MockClientAppInfoService
	session *fakeSession
	root    tea.Model
}

func newTUIFixture(t *testing.T, s models.Session) *tuiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &tuiFixture{
		auth:    mock.NewMockClientAuthService(ctrl),
		profile: mock.NewMockClientProfileService(ctrl),
		posts:   mock.NewMockClientPostService(ctrl),
		appInfo: mock.NewMockClientAppInfoService(ctrl),
		session: &fakeSession{session: s},
	}

	services := &service.ClientServices{
		AuthService:    f.auth,
		ProfileService: f.profile,
		PostService:    f.posts,
		AppInfoService: f.appInfo,
	}
	buildInfo := models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")
	pages := buildPages(context.Background(), services, buildInfo, "http://blog.test/")
	f.root = NewRootModel(pages, guard.PathHome, f.session, buildInfo)

	return f
}

func (f *tuiFixture) send(t *testing.T, msg tea.Msg) {
	t.Helper()
	model, cmd := f.root.Update(msg)
	f.root = run(t, model, cmd)
}

func (f *tuiFixture) navigate(t *testing.T, path string) {
	t.Helper()
	f.send(t, NavigateTo{Path: path})
}

func (f *tuiFixture) typeText(t *testing.T, text string) {
	t.Helper()
	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (f *tuiFixture) press(t *testing.T, keyType tea.KeyType) {
	t.Helper()
	f.send(t, tea.KeyMsg{Type: keyType})
}

func (f *tuiFixture) path() string {
	return f.root.(RootModel).Path()
}

func (f *tuiFixture) view() string {
	return f.root.View()
}

// run executes cmd and feeds the resulting messages back into model until no
// command is left. Commands that do not return quickly are timers and are
// dropped.
func run(t *testing.T, model tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 200; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := execute(next)
		if !ok || msg == nil {
			continue
		}
		if batch, isBatch := msg.(tea.BatchMsg); isBatch {
			queue = append(queue, batch...)
			continue
		}

		var follow tea.Cmd
		model, follow = model.Update(msg)
		queue = append(queue, follow)
	}

	return model
}

func execute(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg, true
	case <-time.After(200 * time.Millisecond):
		return nil, false
	}
}

func (f *tuiFixture) expectDashboard() {
	f.profile.EXPECT().GetProfile(gomock.Any()).Return(alice, nil).AnyTimes()
	f.posts.EXPECT().ListPosts(gomock.Any(), models.PostFilter{AuthorID: alice.ID}).Return(nil, nil).AnyTimes()
}

// ── router ────────────────────────────────────────────────────────────────────

func TestRootModel_InitOpensHome(t *testing.T) {
	f := newTUIFixture(t, models.Session{})
	f.posts.EXPECT().ListPosts(gomock.Any(), models.PostFilter{}).
		Return([]models.Post{{PostID: 3, Title: "First post", Author: models.PostAuthor{Username: "bob"}}}, nil)

	f.root = run(t, f.root, f.root.Init())

	assert.Equal(t, guard.PathHome, f.path())
	assert.Contains(t, f.view(), "First post")
	assert.Contains(t, f.view(), "guest")
}

func TestRootModel_NavigationGoesThroughGuard(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		path    string
		want    string
	}{
		{"protected while logged out", models.Session{}, guard.PathDashboard, guard.PathLogin},
		{"edit post while logged out", models.Session{}, "/post/7/edit", guard.PathLogin},
		{"login while logged in", loggedIn, guard.PathLogin, guard.PathDashboard},
		{"unknown path", models.Session{}, "/nowhere", guard.PathHome},
		{"about", models.Session{}, guard.PathAbout, guard.PathAbout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTUIFixture(t, tt.session)
			f.expectDashboard()
			f.posts.EXPECT().ListPosts(gomock.Any(), models.PostFilter{}).Return(nil, nil).AnyTimes()
			f.appInfo.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil).AnyTimes()

			f.navigate(t, tt.path)
			assert.Equal(t, tt.want, f.path())
		})
	}
}

func TestRootModel_UsesLatestSessionOnEveryNavigation(t *testing.T) {
	f := newTUIFixture(t, models.Session{})
	f.expectDashboard()

	f.navigate(t, guard.PathDashboard)
	require.Equal(t, guard.PathLogin, f.path())

	f.session.set(loggedIn)
	f.navigate(t, guard.PathDashboard)
	assert.Equal(t, guard.PathDashboard, f.path())
	assert.Contains(t, f.view(), "signed in as alice")
}

func TestRootModel_SessionLossLeavesProtectedView(t *testing.T) {
	f := newTUIFixture(t, loggedIn)
	f.expectDashboard()

	f.navigate(t, guard.PathDashboard)
	require.Equal(t, guard.PathDashboard, f.path())

	f.session.set(models.Session{})
	f.send(t, sessionChangedMsg{session: models.Session{}})

	assert.Equal(t, guard.PathLogin, f.path())
	assert.Contains(t, f.view(), "guest")
}

func TestRootModel_SessionUpdatesArriveFromSubscription(t *testing.T) {
	f := newTUIFixture(t, models.Session{})

	updates := make(chan models.Session, 1)
	root := f.root.(RootModel).withSubscriptions(updates, nil)
	updates <- loggedIn

	msg := waitForSession(root.updates)()
	assert.Equal(t, sessionChangedMsg{session: loggedIn}, msg)

	close(updates)
	assert.Nil(t, waitForSession(root.updates)())
	assert.Nil(t, waitForSession(nil))
}

func TestRootModel_WorkerFailureShowsOverlay(t *testing.T) {
	f := newTUIFixture(t, loggedIn)
	f.appInfo.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil).AnyTimes()
	f.navigate(t, guard.PathAbout)

	err := fmt.Errorf("%w: %w", session.ErrValidationFailed, adapter.ErrTransport)
	f.send(t, workerResultMsg{result: workers.Result{Worker: workers.SessionValidationName, Err: err}})

	assert.Contains(t, f.view(), "Could not verify the saved session")
	assert.Contains(t, f.view(), "No network or the server is unavailable")

	// keys go to the overlay while it is open
	f.typeText(t, "1")
	assert.Equal(t, guard.PathAbout, f.path())

	f.press(t, tea.KeyEsc)
	assert.NotContains(t, f.view(), "Could not verify the saved session")
}

func TestRootModel_SuccessfulWorkerIsSilent(t *testing.T) {
	f := newTUIFixture(t, loggedIn)
	f.send(t, workerResultMsg{result: workers.Result{Worker: workers.SessionValidationName}})
	assert.NotContains(t, f.view(), "Error")
}

func TestRootModel_BuildInfo(t *testing.T) {
	f := newTUIFixture(t, models.Session{})
	f.posts.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.navigate(t, guard.PathHome)

	f.typeText(t, "v")
	assert.Contains(t, f.view(), "BUILD INFO")
	assert.Contains(t, f.view(), "Version: 1.0.0")
	assert.Contains(t, f.view(), "Commit: abc123")

	f.press(t, tea.KeyEsc)
	assert.NotContains(t, f.view(), "BUILD INFO")
}

func TestRootModel_GlobalKeysIgnoredWhileTyping(t *testing.T) {
	f := newTUIFixture(t, models.Session{})
	f.posts.EXPECT().ListPosts(gomock.Any(), models.PostFilter{}).Return(nil, nil)
	f.navigate(t, guard.PathLogin)

	f.typeText(t, "2")
	assert.Equal(t, guard.PathLogin, f.path())

	f.press(t, tea.KeyEsc)
	assert.Equal(t, guard.PathHome, f.path())
}

func TestRootModel_RoutedResultReachesHiddenPage(t *testing.T) {
	f := newTUIFixture(t, models.Session{})
	f.appInfo.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil).AnyTimes()
	f.navigate(t, guard.PathAbout)

	f.send(t, routedMsg{route: guard.PathLogin, msg: authDoneMsg{err: service.ErrInvalidCredentials}})

	assert.Equal(t, guard.PathAbout, f.path())
	login := f.root.(RootModel).pages[guard.PathLogin].(*LoginModel)
	assert.Equal(t, "Invalid username, email or password", login.errMsg)
}

func TestRootModel_Quit(t *testing.T) {
	f := newTUIFixture(t, models.Session{})
	_, cmd := f.root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRouteOf(t *testing.T) {
	assert.Equal(t, routePost, routeOf("/post/3"))
	assert.Equal(t, routePostEdit, routeOf("/post/3/edit"))
	assert.Equal(t, guard.PathAbout, routeOf(guard.PathAbout))
}
