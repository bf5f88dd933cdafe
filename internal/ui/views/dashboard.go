package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/teamboard/internal/access"
	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/session"
	"github.com/tgienger/teamboard/internal/store"
	"github.com/tgienger/teamboard/internal/ui/keys"
	"github.com/tgienger/teamboard/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// SignedOut signals the app to clear the session and show the login view
type SignedOut struct{}

// section identifies one dashboard panel
type section int

const (
	secProjects section = iota
	secTasks
	secTeam
	secAssist
)

type refreshDoneMsg struct {
	epoch uint64
	snap  store.Snapshot
}

type mutationDoneMsg struct {
	scope   store.Scope
	err     error
	success string
}

type metricsLoadedMsg struct {
	projectID int64
	metrics   *models.ProjectMetrics
	err       error
}

type assistDoneMsg struct {
	text string
	err  error
}

var statusChoices = []models.Status{models.StatusTodo, models.StatusInProgress, models.StatusDone}

// DashboardView is the main screen: stats, projects, tasks, team and the AI
// assist panel. Every affordance it offers is gated by the capability set of
// the signed-in user; every mutation goes through the gateway and is
// followed by a refresh of the matching scope.
type DashboardView struct {
	api      *api.Client
	gw       *store.Gateway
	entities *store.EntityStore
	comments *CommentsView
	ident    session.Identity
	caps     access.Caps
	styles   *styles.Styles
	keys     keys.KeyMap

	width  int
	height int

	focus       section
	projCursor  int
	taskCursor  int
	userCursor  int
	busy        bool
	notice      string
	noticeErr   bool
	showingHelp bool

	commentsOpen bool

	// Create-project form
	creatingProject bool
	projTitle       textinput.Model
	projDesc        textinput.Model
	projFocus       int

	// Create-task form
	creatingTask bool
	taskTitle    textinput.Model
	taskDesc     textinput.Model
	taskDeadline textinput.Model
	taskProjIdx  int
	taskUserIdx  int // 0 = unassigned, i>0 = users[i-1]
	taskFocus    int

	// Create-user form (admin)
	creatingUser bool
	userName     textinput.Model
	userEmail    textinput.Model
	userPassword textinput.Model
	userRoleIdx  int
	userFocus    int

	// Delete confirmation
	confirmingDelete bool
	deleteKind       string
	deleteTargetID   int64
	deleteTargetName string

	// Status picker for the selected task
	pickingStatus bool
	statusIdx     int

	// Role picker for the selected user (admin)
	pickingRole bool
	roleIdx     int

	// Project metrics popup
	showingMetrics   bool
	metricsProjectID int64
	metrics          *models.ProjectMetrics
	metricsErr       string

	// AI assist
	assistInput  textarea.Model
	assistTyping bool
	assistModeI  int
	assistAnswer string
	assistBusy   bool
}

var assistModes = []string{api.AssistGeneral, api.AssistIdeas, api.AssistSummary, api.AssistDescription}

// NewDashboardView creates the dashboard for the signed-in user
func NewDashboardView(client *api.Client, ident session.Identity) *DashboardView {
	caps := access.Capabilities(ident.Role, ident.UserID, ident.Name)
	gw := store.NewGateway(client)

	projTitle := textinput.New()
	projTitle.Placeholder = "Project title"
	projTitle.CharLimit = 200

	projDesc := textinput.New()
	projDesc.Placeholder = "Description (optional)"
	projDesc.CharLimit = 500

	taskTitle := textinput.New()
	taskTitle.Placeholder = "Task title"
	taskTitle.CharLimit = 200

	taskDesc := textinput.New()
	taskDesc.Placeholder = "Description (optional)"
	taskDesc.CharLimit = 500

	taskDeadline := textinput.New()
	taskDeadline.Placeholder = "YYYY-MM-DD (optional)"
	taskDeadline.CharLimit = 10

	userName := textinput.New()
	userName.Placeholder = "Full name"
	userName.CharLimit = 120

	userEmail := textinput.New()
	userEmail.Placeholder = "Email"
	userEmail.CharLimit = 120

	userPassword := textinput.New()
	userPassword.Placeholder = "Password (min 6 chars)"
	userPassword.CharLimit = 120
	userPassword.EchoMode = textinput.EchoPassword

	assistInput := textarea.New()
	assistInput.Placeholder = "Ask anything about your projects and tasks..."
	assistInput.CharLimit = 2000
	assistInput.SetWidth(60)
	assistInput.SetHeight(3)
	assistInput.ShowLineNumbers = false

	return &DashboardView{
		api:          client,
		gw:           gw,
		entities:     store.NewEntityStore(),
		comments:     NewCommentsView(client, gw, ident, caps),
		ident:        ident,
		caps:         caps,
		styles:       styles.NewStyles(),
		keys:         keys.DefaultKeyMap(),
		focus:        secTasks,
		projTitle:    projTitle,
		projDesc:     projDesc,
		taskTitle:    taskTitle,
		taskDesc:     taskDesc,
		taskDeadline: taskDeadline,
		userName:     userName,
		userEmail:    userEmail,
		userPassword: userPassword,
		assistInput:  assistInput,
	}
}

// Init kicks off the first refresh
func (v *DashboardView) Init() tea.Cmd {
	return v.refresh()
}

// refresh begins a new refresh epoch and fetches all three collections.
// Completions carrying a superseded epoch are discarded on arrival.
func (v *DashboardView) refresh() tea.Cmd {
	epoch := v.entities.Begin()
	client := v.api
	return func() tea.Msg {
		return refreshDoneMsg{epoch: epoch, snap: store.FetchSnapshot(context.Background(), client)}
	}
}

// mutate runs one gateway call off-loop. The busy flag keeps a second
// submission from firing while this one is in flight.
func (v *DashboardView) mutate(success string, do func(ctx context.Context) (store.Scope, error)) tea.Cmd {
	if v.busy {
		return nil
	}
	v.busy = true
	return func() tea.Msg {
		scope, err := do(context.Background())
		return mutationDoneMsg{scope: scope, err: err, success: success}
	}
}

// sections returns the panels visible to the current user
func (v *DashboardView) sections() []section {
	secs := []section{secProjects, secTasks}
	if v.ident.Role == models.RoleAdmin || v.ident.Role == models.RoleManager {
		secs = append(secs, secTeam)
	}
	return append(secs, secAssist)
}

func (v *DashboardView) cycleFocus(dir int) {
	secs := v.sections()
	idx := 0
	for i, s := range secs {
		if s == v.focus {
			idx = i
			break
		}
	}
	v.focus = secs[(idx+dir+len(secs))%len(secs)]
}

func (v *DashboardView) selectedProject() (models.Project, bool) {
	projects := v.entities.Snapshot().Projects
	if v.projCursor < len(projects) {
		return projects[v.projCursor], true
	}
	return models.Project{}, false
}

func (v *DashboardView) selectedTask() (models.Task, bool) {
	tasks := v.entities.Snapshot().Tasks
	if v.taskCursor < len(tasks) {
		return tasks[v.taskCursor], true
	}
	return models.Task{}, false
}

func (v *DashboardView) selectedUser() (models.User, bool) {
	users := v.entities.Snapshot().Users
	if v.userCursor < len(users) {
		return users[v.userCursor], true
	}
	return models.User{}, false
}

func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.assistInput.SetWidth(clamp(contentWidth-10, 20, 60))
		v.comments.Update(msg)
		return v, nil

	case refreshDoneMsg:
		if !v.entities.Apply(msg.epoch, msg.snap) {
			return v, nil
		}
		// Cursors may point past the end of a shrunken collection
		snap := v.entities.Snapshot()
		v.projCursor = clamp(v.projCursor, 0, max(0, len(snap.Projects)-1))
		v.taskCursor = clamp(v.taskCursor, 0, max(0, len(snap.Tasks)-1))
		v.userCursor = clamp(v.userCursor, 0, max(0, len(snap.Users)-1))
		if snap.Partial {
			v.notice = "Some data failed to load. Press r to retry."
			v.noticeErr = true
		}
		return v, nil

	case mutationDoneMsg:
		v.busy = false
		if msg.err != nil {
			// Input stays as typed so the user can correct and resubmit
			v.notice = msg.err.Error()
			v.noticeErr = true
			return v, nil
		}
		v.notice = msg.success
		v.noticeErr = false
		v.closeForms()
		if msg.scope == store.ScopeEntities {
			return v, v.refresh()
		}
		return v, nil

	case metricsLoadedMsg:
		// A response for a project the popup no longer shows is stale
		if !v.showingMetrics || msg.projectID != v.metricsProjectID {
			return v, nil
		}
		if msg.err != nil {
			v.metricsErr = msg.err.Error()
			return v, nil
		}
		v.metrics = msg.metrics
		return v, nil

	case assistDoneMsg:
		v.assistBusy = false
		if msg.err != nil {
			v.notice = msg.err.Error()
			v.noticeErr = true
			return v, nil
		}
		v.assistAnswer = msg.text
		return v, nil

	case CommentsClosed:
		v.commentsOpen = false
		return v, nil
	}

	if v.commentsOpen {
		_, cmd := v.comments.Update(msg)
		return v, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return v.updateKey(keyMsg)
	}
	return v, nil
}

func (v *DashboardView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.showingHelp {
		v.showingHelp = false
		return v, nil
	}
	if v.showingMetrics {
		v.showingMetrics = false
		v.metrics = nil
		v.metricsErr = ""
		return v, nil
	}
	if v.confirmingDelete {
		return v.updateConfirmDelete(msg)
	}
	if v.pickingStatus {
		return v.updateStatusPicker(msg)
	}
	if v.pickingRole {
		return v.updateRolePicker(msg)
	}
	if v.creatingProject {
		return v.updateProjectForm(msg)
	}
	if v.creatingTask {
		return v.updateTaskForm(msg)
	}
	if v.creatingUser {
		return v.updateUserForm(msg)
	}
	if v.assistTyping {
		return v.updateAssistTyping(msg)
	}
	return v.updateBrowsing(msg)
}

func (v *DashboardView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Logout):
		return v, func() tea.Msg { return SignedOut{} }

	case key.Matches(msg, v.keys.Refresh):
		v.notice = ""
		return v, v.refresh()

	case key.Matches(msg, v.keys.Tab):
		v.cycleFocus(1)
		return v, nil

	case msg.String() == "shift+tab":
		v.cycleFocus(-1)
		return v, nil

	case msg.String() == "?":
		v.showingHelp = true
		return v, nil

	case key.Matches(msg, v.keys.Up):
		v.moveCursor(-1)
		return v, nil

	case key.Matches(msg, v.keys.Down):
		v.moveCursor(1)
		return v, nil
	}

	switch v.focus {
	case secProjects:
		return v.updateProjectKeys(msg)
	case secTasks:
		return v.updateTaskKeys(msg)
	case secTeam:
		return v.updateTeamKeys(msg)
	case secAssist:
		return v.updateAssistKeys(msg)
	}
	return v, nil
}

func (v *DashboardView) moveCursor(dir int) {
	snap := v.entities.Snapshot()
	switch v.focus {
	case secProjects:
		v.projCursor = clamp(v.projCursor+dir, 0, max(0, len(snap.Projects)-1))
	case secTasks:
		v.taskCursor = clamp(v.taskCursor+dir, 0, max(0, len(snap.Tasks)-1))
	case secTeam:
		v.userCursor = clamp(v.userCursor+dir, 0, max(0, len(snap.Users)-1))
	}
}

func (v *DashboardView) updateProjectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.New):
		if v.caps.CanCreateProject {
			v.creatingProject = true
			v.projFocus = 0
			v.projTitle.Reset()
			v.projDesc.Reset()
			v.projTitle.Focus()
			return v, textinput.Blink
		}

	case key.Matches(msg, v.keys.Delete):
		if p, ok := v.selectedProject(); ok && v.caps.CanDeleteProject {
			v.confirmingDelete = true
			v.deleteKind = "project"
			v.deleteTargetID = p.ID
			v.deleteTargetName = p.Title
		}
		return v, nil

	case key.Matches(msg, v.keys.Metrics):
		if p, ok := v.selectedProject(); ok {
			v.showingMetrics = true
			v.metricsProjectID = p.ID
			v.metrics = nil
			v.metricsErr = ""
			id := p.ID
			return v, func() tea.Msg {
				m, err := v.api.ProjectMetrics(context.Background(), id)
				return metricsLoadedMsg{projectID: id, metrics: m, err: err}
			}
		}

	case key.Matches(msg, v.keys.Assist):
		// Per-project AI summary
		if p, ok := v.selectedProject(); ok && !v.assistBusy {
			v.assistBusy = true
			v.assistAnswer = ""
			v.focus = secAssist
			id := p.ID
			return v, func() tea.Msg {
				text, err := v.api.Assist(context.Background(), api.AssistRequest{
					ProjectID: &id,
					Mode:      api.AssistSummary,
				})
				return assistDoneMsg{text: text, err: err}
			}
		}
	}
	return v, nil
}

func (v *DashboardView) updateTaskKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.New):
		if !v.caps.CanCreateTask {
			return v, nil
		}
		if len(v.entities.Snapshot().Projects) == 0 {
			v.notice = "Create a project first"
			v.noticeErr = true
			return v, nil
		}
		v.creatingTask = true
		v.taskFocus = 0
		v.taskProjIdx = 0
		v.taskUserIdx = 0
		v.taskTitle.Reset()
		v.taskDesc.Reset()
		v.taskDeadline.Reset()
		v.taskTitle.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.selectedTask(); ok && v.caps.CanDeleteTask {
			v.confirmingDelete = true
			v.deleteKind = "task"
			v.deleteTargetID = t.ID
			v.deleteTargetName = t.Title
		}
		return v, nil

	case key.Matches(msg, v.keys.Status):
		if t, ok := v.selectedTask(); ok {
			v.pickingStatus = true
			v.statusIdx = 0
			for i, s := range statusChoices {
				if s == t.Status {
					v.statusIdx = i
				}
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Comments), key.Matches(msg, v.keys.Enter):
		if t, ok := v.selectedTask(); ok {
			v.commentsOpen = true
			return v, v.comments.Open(t)
		}
	}
	return v, nil
}

func (v *DashboardView) updateTeamKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.New):
		if v.caps.CanManageUsers {
			v.creatingUser = true
			v.userFocus = 0
			v.userRoleIdx = 0
			v.userName.Reset()
			v.userEmail.Reset()
			v.userPassword.Reset()
			v.userName.Focus()
			return v, textinput.Blink
		}

	case key.Matches(msg, v.keys.Delete):
		if u, ok := v.selectedUser(); ok {
			if !v.caps.CanDeleteUser(u.ID) {
				if u.ID == v.ident.UserID {
					v.notice = "You cannot delete your own account"
					v.noticeErr = true
				}
				return v, nil
			}
			v.confirmingDelete = true
			v.deleteKind = "user"
			v.deleteTargetID = u.ID
			v.deleteTargetName = u.FullName
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if u, ok := v.selectedUser(); ok {
			if !v.caps.CanChangeRole(u.ID) {
				if u.ID == v.ident.UserID {
					v.notice = "You cannot change your own role"
					v.noticeErr = true
				}
				return v, nil
			}
			v.pickingRole = true
			v.roleIdx = 0
			for i, r := range roleChoices {
				if r == u.Role {
					v.roleIdx = i
				}
			}
		}
		return v, nil
	}
	return v, nil
}

func (v *DashboardView) updateAssistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Enter):
		v.assistTyping = true
		v.assistInput.Focus()
		return v, textarea.Blink

	case msg.String() == "left":
		v.assistModeI = (v.assistModeI + len(assistModes) - 1) % len(assistModes)
		return v, nil

	case msg.String() == "right":
		v.assistModeI = (v.assistModeI + 1) % len(assistModes)
		return v, nil
	}
	return v, nil
}

func (v *DashboardView) updateAssistTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.assistTyping = false
		v.assistInput.Blur()
		return v, nil

	case msg.String() == "ctrl+s":
		prompt := strings.TrimSpace(v.assistInput.Value())
		if prompt == "" || v.assistBusy {
			return v, nil
		}
		v.assistBusy = true
		v.assistAnswer = ""
		v.assistTyping = false
		v.assistInput.Blur()
		mode := assistModes[v.assistModeI]
		return v, func() tea.Msg {
			text, err := v.api.Assist(context.Background(), api.AssistRequest{
				Prompt: prompt,
				Mode:   mode,
			})
			return assistDoneMsg{text: text, err: err}
		}
	}

	var cmd tea.Cmd
	v.assistInput, cmd = v.assistInput.Update(msg)
	return v, cmd
}

func (v *DashboardView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		id := v.deleteTargetID
		switch v.deleteKind {
		case "project":
			return v, v.mutate("Project deleted", func(ctx context.Context) (store.Scope, error) {
				return v.gw.DeleteProject(ctx, id)
			})
		case "task":
			return v, v.mutate("Task deleted", func(ctx context.Context) (store.Scope, error) {
				return v.gw.DeleteTask(ctx, id)
			})
		case "user":
			return v, v.mutate("User deleted", func(ctx context.Context) (store.Scope, error) {
				return v.gw.DeleteUser(ctx, id)
			})
		}
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *DashboardView) updateStatusPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.pickingStatus = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.statusIdx > 0 {
			v.statusIdx--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.statusIdx < len(statusChoices)-1 {
			v.statusIdx++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		t, ok := v.selectedTask()
		if !ok {
			v.pickingStatus = false
			return v, nil
		}
		v.pickingStatus = false
		status := statusChoices[v.statusIdx]
		return v, v.mutate(fmt.Sprintf("Task #%d status updated", t.ID), func(ctx context.Context) (store.Scope, error) {
			return v.gw.UpdateTaskStatus(ctx, t.ID, status)
		})
	}
	return v, nil
}

func (v *DashboardView) updateRolePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.pickingRole = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.roleIdx > 0 {
			v.roleIdx--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.roleIdx < len(roleChoices)-1 {
			v.roleIdx++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		u, ok := v.selectedUser()
		if !ok {
			v.pickingRole = false
			return v, nil
		}
		v.pickingRole = false
		role := roleChoices[v.roleIdx]
		return v, v.mutate("User role updated", func(ctx context.Context) (store.Scope, error) {
			return v.gw.UpdateUserRole(ctx, u.ID, role)
		})
	}
	return v, nil
}

func (v *DashboardView) closeForms() {
	v.creatingProject = false
	v.creatingTask = false
	v.creatingUser = false
}

func (v *DashboardView) updateProjectForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submit := func() tea.Cmd {
		title := strings.TrimSpace(v.projTitle.Value())
		if title == "" {
			v.notice = "Project title is required"
			v.noticeErr = true
			return nil
		}
		desc := strings.TrimSpace(v.projDesc.Value())
		return v.mutate("Project created", func(ctx context.Context) (store.Scope, error) {
			return v.gw.CreateProject(ctx, title, desc)
		})
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.creatingProject = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, submit()

	case key.Matches(msg, v.keys.Tab):
		v.projFocus = (v.projFocus + 1) % 3
		v.focusProjectField()
		return v, nil

	case msg.String() == "shift+tab":
		v.projFocus = (v.projFocus + 2) % 3
		v.focusProjectField()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.projFocus < 2 {
			v.projFocus++
			v.focusProjectField()
			return v, nil
		}
		return v, submit()
	}

	var cmd tea.Cmd
	switch v.projFocus {
	case 0:
		v.projTitle, cmd = v.projTitle.Update(msg)
	case 1:
		v.projDesc, cmd = v.projDesc.Update(msg)
	}
	return v, cmd
}

func (v *DashboardView) focusProjectField() {
	v.projTitle.Blur()
	v.projDesc.Blur()
	switch v.projFocus {
	case 0:
		v.projTitle.Focus()
	case 1:
		v.projDesc.Focus()
	}
}

// Task form fields: 0 title, 1 desc, 2 project, 3 assignee, 4 deadline, 5 save
func (v *DashboardView) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := v.entities.Snapshot()

	submit := func() tea.Cmd {
		title := strings.TrimSpace(v.taskTitle.Value())
		if title == "" {
			v.notice = "Task title is required"
			v.noticeErr = true
			return nil
		}
		if v.taskProjIdx >= len(snap.Projects) {
			v.notice = "Select a project"
			v.noticeErr = true
			return nil
		}
		deadline := strings.TrimSpace(v.taskDeadline.Value())
		if deadline != "" {
			if _, err := time.Parse("2006-01-02", deadline); err != nil {
				v.notice = "Deadline must be YYYY-MM-DD"
				v.noticeErr = true
				return nil
			}
		}
		t := api.NewTask{
			Title:       title,
			Description: strings.TrimSpace(v.taskDesc.Value()),
			ProjectID:   snap.Projects[v.taskProjIdx].ID,
			Deadline:    deadline,
		}
		if v.taskUserIdx > 0 && v.taskUserIdx-1 < len(snap.Users) {
			id := snap.Users[v.taskUserIdx-1].ID
			t.AssignedTo = &id
		}
		return v.mutate("Task created", func(ctx context.Context) (store.Scope, error) {
			return v.gw.CreateTask(ctx, t)
		})
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.creatingTask = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, submit()

	case key.Matches(msg, v.keys.Tab):
		v.taskFocus = (v.taskFocus + 1) % 6
		v.focusTaskField()
		return v, nil

	case msg.String() == "shift+tab":
		v.taskFocus = (v.taskFocus + 5) % 6
		v.focusTaskField()
		return v, nil

	case msg.String() == "left", msg.String() == "right":
		dir := 1
		if msg.String() == "left" {
			dir = -1
		}
		switch v.taskFocus {
		case 2:
			if n := len(snap.Projects); n > 0 {
				v.taskProjIdx = (v.taskProjIdx + dir + n) % n
			}
			return v, nil
		case 3:
			n := len(snap.Users) + 1
			v.taskUserIdx = (v.taskUserIdx + dir + n) % n
			return v, nil
		}

	case key.Matches(msg, v.keys.Enter):
		if v.taskFocus < 5 {
			v.taskFocus++
			v.focusTaskField()
			return v, nil
		}
		return v, submit()
	}

	var cmd tea.Cmd
	switch v.taskFocus {
	case 0:
		v.taskTitle, cmd = v.taskTitle.Update(msg)
	case 1:
		v.taskDesc, cmd = v.taskDesc.Update(msg)
	case 4:
		v.taskDeadline, cmd = v.taskDeadline.Update(msg)
	}
	return v, cmd
}

func (v *DashboardView) focusTaskField() {
	v.taskTitle.Blur()
	v.taskDesc.Blur()
	v.taskDeadline.Blur()
	switch v.taskFocus {
	case 0:
		v.taskTitle.Focus()
	case 1:
		v.taskDesc.Focus()
	case 4:
		v.taskDeadline.Focus()
	}
}

// User form fields: 0 name, 1 email, 2 password, 3 role, 4 save
func (v *DashboardView) updateUserForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submit := func() tea.Cmd {
		name := strings.TrimSpace(v.userName.Value())
		email := strings.TrimSpace(v.userEmail.Value())
		password := v.userPassword.Value()
		if name == "" || email == "" || password == "" {
			v.notice = "Name, email and password are required"
			v.noticeErr = true
			return nil
		}
		u := api.NewUser{
			FullName: name,
			Email:    email,
			Password: password,
			Role:     roleChoices[v.userRoleIdx],
		}
		return v.mutate("User created", func(ctx context.Context) (store.Scope, error) {
			return v.gw.CreateUser(ctx, u)
		})
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.creatingUser = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, submit()

	case key.Matches(msg, v.keys.Tab):
		v.userFocus = (v.userFocus + 1) % 5
		v.focusUserField()
		return v, nil

	case msg.String() == "shift+tab":
		v.userFocus = (v.userFocus + 4) % 5
		v.focusUserField()
		return v, nil

	case msg.String() == "left", msg.String() == "right":
		if v.userFocus == 3 {
			dir := 1
			if msg.String() == "left" {
				dir = -1
			}
			v.userRoleIdx = (v.userRoleIdx + dir + len(roleChoices)) % len(roleChoices)
			return v, nil
		}

	case key.Matches(msg, v.keys.Enter):
		if v.userFocus < 4 {
			v.userFocus++
			v.focusUserField()
			return v, nil
		}
		return v, submit()
	}

	var cmd tea.Cmd
	switch v.userFocus {
	case 0:
		v.userName, cmd = v.userName.Update(msg)
	case 1:
		v.userEmail, cmd = v.userEmail.Update(msg)
	case 2:
		v.userPassword, cmd = v.userPassword.Update(msg)
	}
	return v, cmd
}

func (v *DashboardView) focusUserField() {
	v.userName.Blur()
	v.userEmail.Blur()
	v.userPassword.Blur()
	switch v.userFocus {
	case 0:
		v.userName.Focus()
	case 1:
		v.userEmail.Focus()
	case 2:
		v.userPassword.Focus()
	}
}
