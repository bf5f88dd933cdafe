package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/ui/keys"
	"github.com/tgienger/teamboard/internal/ui/styles"
)

// SignedIn signals a successful login to the app
type SignedIn struct {
	Result *api.LoginResult
}

type loginDoneMsg struct {
	result *api.LoginResult
	err    error
}

type registerDoneMsg struct {
	err error
}

var roleChoices = []models.Role{models.RoleDeveloper, models.RoleManager, models.RoleAdmin}

// LoginView is the sign-in / register surface shown whenever no session is
// established.
type LoginView struct {
	api    *api.Client
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	registering bool
	fullName    textinput.Model
	email       textinput.Model
	password    textinput.Model
	roleIdx     int
	focusIdx    int
	busy        bool
	notice      string
	noticeErr   bool
}

// NewLoginView creates the login view
func NewLoginView(client *api.Client) *LoginView {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	fullName := textinput.New()
	fullName.Placeholder = "Full name"
	fullName.CharLimit = 120

	v := &LoginView{
		api:      client,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		fullName: fullName,
		email:    email,
		password: password,
	}
	v.setFocus(0)
	return v
}

func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// fieldCount returns the number of focusable slots: inputs, role picker
// (register only), submit button, mode toggle
func (v *LoginView) fieldCount() int {
	if v.registering {
		return 6 // name, email, password, role, submit, toggle
	}
	return 4 // email, password, submit, toggle
}

func (v *LoginView) inputAt(idx int) *textinput.Model {
	if v.registering {
		switch idx {
		case 0:
			return &v.fullName
		case 1:
			return &v.email
		case 2:
			return &v.password
		}
		return nil
	}
	switch idx {
	case 0:
		return &v.email
	case 1:
		return &v.password
	}
	return nil
}

func (v *LoginView) setFocus(idx int) {
	v.focusIdx = idx
	v.fullName.Blur()
	v.email.Blur()
	v.password.Blur()
	if in := v.inputAt(idx); in != nil {
		in.Focus()
	}
}

func (v *LoginView) submitIdx() int {
	if v.registering {
		return 4
	}
	return 2
}

func (v *LoginView) toggleIdx() int {
	return v.submitIdx() + 1
}

func (v *LoginView) roleIdxSlot() int {
	if v.registering {
		return 3
	}
	return -1
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case loginDoneMsg:
		v.busy = false
		if msg.err != nil {
			v.notice = msg.err.Error()
			v.noticeErr = true
			return v, nil
		}
		v.password.Reset()
		v.notice = ""
		return v, func() tea.Msg {
			return SignedIn{Result: msg.result}
		}

	case registerDoneMsg:
		v.busy = false
		if msg.err != nil {
			v.notice = msg.err.Error()
			v.noticeErr = true
			return v, nil
		}
		v.registering = false
		v.password.Reset()
		v.fullName.Reset()
		v.roleIdx = 0
		v.setFocus(0)
		v.notice = "Registration successful. Please sign in."
		v.noticeErr = false
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit) && v.inputAt(v.focusIdx) == nil:
			return v, tea.Quit

		case key.Matches(msg, v.keys.Tab):
			v.setFocus((v.focusIdx + 1) % v.fieldCount())
			return v, nil

		case msg.String() == "shift+tab":
			v.setFocus((v.focusIdx + v.fieldCount() - 1) % v.fieldCount())
			return v, nil

		case msg.String() == "left", msg.String() == "right":
			if v.focusIdx == v.roleIdxSlot() {
				if msg.String() == "left" {
					v.roleIdx = (v.roleIdx + len(roleChoices) - 1) % len(roleChoices)
				} else {
					v.roleIdx = (v.roleIdx + 1) % len(roleChoices)
				}
				return v, nil
			}

		case key.Matches(msg, v.keys.Enter):
			switch v.focusIdx {
			case v.toggleIdx():
				v.registering = !v.registering
				v.notice = ""
				v.setFocus(0)
				return v, nil
			case v.submitIdx():
				return v, v.submit()
			default:
				v.setFocus(v.focusIdx + 1)
				return v, nil
			}
		}
	}

	var cmd tea.Cmd
	if in := v.inputAt(v.focusIdx); in != nil {
		*in, cmd = in.Update(msg)
	}
	return v, cmd
}

func (v *LoginView) submit() tea.Cmd {
	// One submission at a time; repeated enter presses must not double-post
	if v.busy {
		return nil
	}

	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()
	if email == "" || password == "" {
		v.notice = "Email and password are required"
		v.noticeErr = true
		return nil
	}

	if v.registering {
		name := strings.TrimSpace(v.fullName.Value())
		if name == "" {
			v.notice = "Full name is required"
			v.noticeErr = true
			return nil
		}
		role := roleChoices[v.roleIdx]
		v.busy = true
		return func() tea.Msg {
			err := v.api.Register(context.Background(), name, email, password, role)
			return registerDoneMsg{err: err}
		}
	}

	v.busy = true
	return func() tea.Msg {
		result, err := v.api.Login(context.Background(), email, password)
		return loginDoneMsg{result: result, err: err}
	}
}

func (v *LoginView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-10, 24, 40)

	title := "Sign In"
	submitLabel := " Login "
	toggleLabel := "Don't have an account? Register"
	if v.registering {
		title = "Create Account"
		submitLabel = " Register "
		toggleLabel = "Already have an account? Sign in"
	}
	if v.busy {
		submitLabel = " ... "
	}

	var rows []string
	rows = append(rows, s.Title.Render(title), "")

	if v.registering {
		rows = append(rows, v.renderInput(&v.fullName, 0, inputWidth), "")
	}
	emailIdx := 0
	if v.registering {
		emailIdx = 1
	}
	rows = append(rows,
		v.renderInput(&v.email, emailIdx, inputWidth),
		"",
		v.renderInput(&v.password, emailIdx+1, inputWidth),
		"",
	)

	if v.registering {
		roleStyle := s.Input
		if v.focusIdx == v.roleIdxSlot() {
			roleStyle = s.InputFocused
		}
		rows = append(rows,
			"Role:",
			roleStyle.Width(inputWidth).Render("◀ "+string(roleChoices[v.roleIdx])+" ▶"),
			"",
		)
	}

	btnStyle := s.Button
	if v.focusIdx == v.submitIdx() {
		btnStyle = s.ButtonFocused
	}
	toggleStyle := s.TitleMuted
	if v.focusIdx == v.toggleIdx() {
		toggleStyle = s.Title
	}
	rows = append(rows,
		btnStyle.Render(submitLabel),
		"",
		toggleStyle.Render(toggleLabel),
	)

	if v.notice != "" {
		noticeStyle := s.NoticeInfo
		if v.noticeErr {
			noticeStyle = s.NoticeError
		}
		rows = append(rows, "", noticeStyle.Width(inputWidth+4).Render(v.notice))
	}

	rows = append(rows, "", s.TitleMuted.Render("Tab: next • ↵: select • q: quit"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *LoginView) renderInput(in *textinput.Model, idx, width int) string {
	style := v.styles.Input
	if v.focusIdx == idx {
		style = v.styles.InputFocused
	}
	return style.Width(width).Render(in.View())
}
