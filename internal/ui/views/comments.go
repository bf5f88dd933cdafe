package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/teamboard/internal/access"
	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/session"
	"github.com/tgienger/teamboard/internal/store"
	"github.com/tgienger/teamboard/internal/ui/keys"
	"github.com/tgienger/teamboard/internal/ui/styles"
)

// CommentsClosed signals the dashboard that the comment panel was dismissed
type CommentsClosed struct{}

type commentsLoadedMsg struct {
	taskID   int64
	epoch    uint64
	comments []models.Comment
	err      error
}

type commentMutationMsg struct {
	scope store.Scope
	err   error
}

// CommentsView shows and edits the comment thread of one task. It keeps its
// own title copy so a concurrent dashboard refresh cannot pull the rug out
// from under an open panel.
type CommentsView struct {
	api    *api.Client
	gw     *store.Gateway
	thread *store.CommentThread
	ident  session.Identity
	caps   access.Caps
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	taskTitle string
	input     textarea.Model
	typing    bool
	cursor    int
	busy      bool
	notice    string

	confirmingDelete bool
	deleteTargetID   int64
}

// NewCommentsView creates a closed comments view
func NewCommentsView(client *api.Client, gw *store.Gateway, ident session.Identity, caps access.Caps) *CommentsView {
	input := textarea.New()
	input.Placeholder = fmt.Sprintf("Comment as %s (%s)...", ident.Name, ident.Role)
	input.CharLimit = 2000
	input.SetWidth(50)
	input.SetHeight(3)
	input.ShowLineNumbers = false

	return &CommentsView{
		api:    client,
		gw:     gw,
		thread: store.NewCommentThread(),
		ident:  ident,
		caps:   caps,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		input:  input,
	}
}

// Init is a no-op; loading starts when Open scopes the view to a task
func (v *CommentsView) Init() tea.Cmd {
	return nil
}

// Open scopes the view to a task and starts loading its thread
func (v *CommentsView) Open(task models.Task) tea.Cmd {
	v.taskTitle = task.Title
	v.cursor = 0
	v.typing = false
	v.notice = ""
	v.confirmingDelete = false
	v.input.Reset()
	v.input.Blur()
	v.thread.Open(task.ID)
	return v.load()
}

// load reloads the scoped thread. The epoch ties the completion to this
// scope; a reply for a task the user has already navigated away from is
// dropped in Apply.
func (v *CommentsView) load() tea.Cmd {
	taskID, open := v.thread.TaskID()
	if !open {
		return nil
	}
	epoch := v.thread.Begin()
	return func() tea.Msg {
		comments, err := v.api.TaskComments(context.Background(), taskID)
		return commentsLoadedMsg{taskID: taskID, epoch: epoch, comments: comments, err: err}
	}
}

func (v *CommentsView) close() tea.Cmd {
	v.thread.Close()
	return func() tea.Msg { return CommentsClosed{} }
}

func (v *CommentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.input.SetWidth(clamp(contentWidth-10, 20, 60))
		return v, nil

	case commentsLoadedMsg:
		if msg.err != nil {
			v.notice = "Could not load comments: " + msg.err.Error()
			return v, nil
		}
		if v.thread.Apply(msg.taskID, msg.epoch, msg.comments) {
			if v.cursor >= len(msg.comments) {
				v.cursor = max(0, len(msg.comments)-1)
			}
		}
		return v, nil

	case commentMutationMsg:
		v.busy = false
		if msg.err != nil {
			v.notice = msg.err.Error()
			return v, nil
		}
		v.notice = ""
		if msg.scope == store.ScopeComments {
			return v, v.load()
		}
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.typing {
			return v.updateTyping(msg)
		}
		return v.updateBrowsing(msg)
	}

	return v, nil
}

func (v *CommentsView) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.typing = false
		v.input.Blur()
		return v, nil
	case msg.String() == "ctrl+s":
		return v, v.submitComment()
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *CommentsView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	comments := v.thread.Comments()

	switch {
	case key.Matches(msg, v.keys.Back):
		return v, v.close()

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(comments)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.New), key.Matches(msg, v.keys.Comments):
		v.typing = true
		v.input.Focus()
		return v, textarea.Blink

	case key.Matches(msg, v.keys.Refresh):
		return v, v.load()

	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(comments) {
			c := comments[v.cursor]
			if !v.caps.CanDeleteComment(c.UserName) {
				v.notice = "You can only delete your own comments"
				return v, nil
			}
			v.confirmingDelete = true
			v.deleteTargetID = c.ID
		}
		return v, nil
	}

	return v, nil
}

func (v *CommentsView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		id := v.deleteTargetID
		if v.busy {
			return v, nil
		}
		v.busy = true
		return v, func() tea.Msg {
			scope, err := v.gw.DeleteComment(context.Background(), id)
			return commentMutationMsg{scope: scope, err: err}
		}
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *CommentsView) submitComment() tea.Cmd {
	if v.busy {
		return nil
	}
	content := strings.TrimSpace(v.input.Value())
	if content == "" {
		return nil
	}
	taskID, open := v.thread.TaskID()
	if !open {
		return nil
	}

	v.busy = true
	v.input.Reset()
	v.typing = false
	v.input.Blur()
	return func() tea.Msg {
		scope, err := v.gw.AddComment(context.Background(), taskID, content)
		return commentMutationMsg{scope: scope, err: err}
	}
}

func (v *CommentsView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	textWidth := clamp(contentWidth-10, 20, 70)

	var rows []string
	rows = append(rows, s.Title.Render("Comments: "+v.taskTitle), "")

	if v.confirmingDelete {
		rows = append(rows,
			s.Title.Foreground(styles.Current.Error).Render("Delete comment?"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Center,
				s.ButtonPrimary.Render(" Y - Yes "),
				"  ",
				s.Button.Render(" N - No "),
			),
		)
	} else {
		comments := v.thread.Comments()
		switch {
		case !v.thread.Loaded():
			rows = append(rows, s.TitleMuted.Render("Loading..."))
		case len(comments) == 0:
			rows = append(rows, s.TitleMuted.Render("No comments yet"))
		default:
			for i, c := range comments {
				header := fmt.Sprintf("%s (%s)  %s", c.UserName, c.UserRole, c.CreatedAt)
				headerStyle := s.TitleMuted
				bodyStyle := lipgloss.NewStyle().Width(textWidth)
				if i == v.cursor && !v.typing {
					headerStyle = s.ListSelected
				}
				rows = append(rows,
					headerStyle.Render(header),
					bodyStyle.Render(c.Content),
					"",
				)
			}
		}

		inputStyle := s.Input
		if v.typing {
			inputStyle = s.InputFocused
		}
		rows = append(rows, inputStyle.Render(v.input.View()))
	}

	if v.notice != "" {
		rows = append(rows, "", s.NoticeError.Width(textWidth).Render(v.notice))
	}

	var help string
	if v.typing {
		help = fmt.Sprintf("%s submit • %s cancel",
			s.HelpKey.Render("ctrl+s"), s.HelpKey.Render("esc"))
	} else {
		help = fmt.Sprintf("%s comment • %s del • %s reload • %s close",
			s.HelpKey.Render("c"), s.HelpKey.Render("d"),
			s.HelpKey.Render("r"), s.HelpKey.Render("esc"))
	}
	rows = append(rows, s.Help.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Popup.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
