package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/session"
	"github.com/tgienger/teamboard/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewLogin View = iota
	ViewDashboard
)

type App struct {
	api         *api.Client
	sess        *session.Session
	currentView View
	login       *views.LoginView
	dashboard   *views.DashboardView
	width       int
	height      int
}

// Creates a new application. A persisted session skips the login view.
func NewApp(client *api.Client, sess *session.Session) *App {
	a := &App{
		api:         client,
		sess:        sess,
		currentView: ViewLogin,
		login:       views.NewLoginView(client),
	}
	if ident, ok := sess.Current(); ok {
		a.currentView = ViewDashboard
		a.dashboard = views.NewDashboardView(client, ident)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.currentView == ViewDashboard {
		return a.dashboard.Init()
	}
	return a.login.Init()
}

func (a *App) openDashboard(ident session.Identity) tea.Cmd {
	a.currentView = ViewDashboard
	a.dashboard = views.NewDashboardView(a.api, ident)

	return tea.Batch(
		a.dashboard.Init(),
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Always size the login view since it persists
		a.login.Update(msg)

	case views.SignedIn:
		ident := session.Identity{
			Token:  msg.Result.AccessToken,
			UserID: msg.Result.User.ID,
			Name:   msg.Result.User.Name,
			Role:   msg.Result.User.Role,
		}
		// A failed write still leaves this process signed in; only the
		// restart convenience is lost
		_ = a.sess.Establish(ident)
		return a, a.openDashboard(ident)

	case views.SignedOut:
		_ = a.sess.Clear()
		a.currentView = ViewLogin
		a.dashboard = nil
		a.login = views.NewLoginView(a.api)
		return a, tea.Batch(
			a.login.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewLogin:
		_, cmd = a.login.Update(msg)
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewDashboard:
		if a.dashboard != nil {
			return a.dashboard.View()
		}
	}
	return a.login.View()
}
