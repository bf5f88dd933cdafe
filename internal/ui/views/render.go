package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/ui/styles"
)

// visibleWindow returns the [start, end) slice bounds that keep cursor on
// screen when a list is longer than size
func visibleWindow(cursor, length, size int) (int, int) {
	if length <= size {
		return 0, length
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > length {
		start = length - size
	}
	return start, start + size
}

// View renders the dashboard
func (v *DashboardView) View() string {
	if v.commentsOpen {
		return v.comments.View()
	}
	if v.showingHelp {
		return v.renderHelpPopup()
	}
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.creatingProject {
		return v.renderProjectForm()
	}
	if v.creatingTask {
		return v.renderTaskForm()
	}
	if v.creatingUser {
		return v.renderUserForm()
	}
	if v.pickingStatus {
		return v.renderStatusPicker()
	}
	if v.pickingRole {
		return v.renderRolePicker()
	}
	if v.showingMetrics {
		return v.renderMetrics()
	}

	s := v.styles

	if !v.entities.Loaded() {
		return styles.CenterView(s.TitleMuted.Render("Loading..."), v.width, v.height)
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n")
	b.WriteString(v.renderStats())
	b.WriteString("\n")
	b.WriteString(v.renderProjects())
	b.WriteString("\n")
	b.WriteString(v.renderTasks())
	b.WriteString("\n")
	if v.ident.Role == models.RoleAdmin || v.ident.Role == models.RoleManager {
		b.WriteString(v.renderTeam())
		b.WriteString("\n")
	}
	b.WriteString(v.renderAssist())
	b.WriteString("\n")
	b.WriteString(v.renderNotice())
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *DashboardView) renderHeader() string {
	s := v.styles
	left := s.Title.Render("teamboard")
	who := fmt.Sprintf("%s (%s)", v.ident.Name, v.ident.Role)
	if v.entities.Refreshing() {
		who += " • refreshing..."
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", s.TitleMuted.Render(who))
}

func (v *DashboardView) renderStats() string {
	s := v.styles
	stats := v.entities.Snapshot().Stats

	card := func(value int, label string, valueStyle lipgloss.Style) string {
		return s.StatCard.Render(lipgloss.JoinVertical(lipgloss.Center,
			valueStyle.Render(fmt.Sprintf("%d", value)),
			s.StatLabel.Render(label),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		card(stats.Total, "Total", s.StatValue),
		card(stats.Todo, "To Do", s.StatusTodo),
		card(stats.InProgress, "In Progress", s.StatusInProgress),
		card(stats.Done, "Done", s.StatusDone),
		card(stats.Overdue, "Overdue", s.Overdue),
	)
}

func (v *DashboardView) sectionStyle(sec section) lipgloss.Style {
	if v.focus == sec {
		return v.styles.SectionFocused
	}
	return v.styles.Section
}

func (v *DashboardView) sectionWidth() int {
	return clamp(styles.ContentWidth(v.width)-4, 40, styles.MaxWidth-4)
}

func (v *DashboardView) renderProjects() string {
	s := v.styles
	projects := v.entities.Snapshot().Projects

	var rows []string
	rows = append(rows, s.SectionHeader.Render(fmt.Sprintf("Projects (%d)", len(projects))))

	if len(projects) == 0 {
		rows = append(rows, s.TitleMuted.Render("No projects yet"))
	} else {
		start, end := visibleWindow(v.projCursor, len(projects), 4)
		for i := start; i < end; i++ {
			p := projects[i]
			line := p.Title
			if p.Description != "" {
				line += "  " + s.TitleMuted.Render(p.Description)
			}
			meta := s.TitleMuted.Render(fmt.Sprintf("by %s • %d tasks", p.CreatedBy, p.TaskCount))
			item := line + "\n" + meta
			if i == v.projCursor && v.focus == secProjects {
				rows = append(rows, s.ListSelected.Render(item))
			} else {
				rows = append(rows, s.ListItem.Render(item))
			}
		}
	}

	return v.sectionStyle(secProjects).Width(v.sectionWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *DashboardView) statusBadge(t models.Task) string {
	s := v.styles
	switch t.Status {
	case models.StatusTodo:
		return s.StatusTodo.Render("[" + string(t.Status) + "]")
	case models.StatusInProgress:
		return s.StatusInProgress.Render("[" + string(t.Status) + "]")
	case models.StatusDone:
		return s.StatusDone.Render("[" + string(t.Status) + "]")
	}
	return s.TitleMuted.Render("[" + string(t.Status) + "]")
}

func (v *DashboardView) renderTasks() string {
	s := v.styles
	tasks := v.entities.Snapshot().Tasks

	var rows []string
	rows = append(rows, s.SectionHeader.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))

	if len(tasks) == 0 {
		rows = append(rows, s.TitleMuted.Render("No tasks yet"))
	} else {
		start, end := visibleWindow(v.taskCursor, len(tasks), 5)
		for i := start; i < end; i++ {
			t := tasks[i]
			line := v.statusBadge(t) + " " + t.Title

			assignee := t.AssignedToName
			if assignee == "" {
				assignee = "Unassigned"
			}
			meta := fmt.Sprintf("%s • %s", v.entities.ProjectTitle(t.ProjectID), assignee)
			if t.Deadline != "" {
				meta += " • due " + t.Deadline
			}
			metaLine := s.TitleMuted.Render(meta)
			if t.IsOverdue {
				metaLine += " " + s.Overdue.Render("OVERDUE")
			}

			item := line + "\n" + metaLine
			if i == v.taskCursor && v.focus == secTasks {
				rows = append(rows, s.ListSelected.Render(item))
			} else {
				rows = append(rows, s.ListItem.Render(item))
			}
		}
	}

	return v.sectionStyle(secTasks).Width(v.sectionWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *DashboardView) renderTeam() string {
	s := v.styles
	users := v.entities.Snapshot().Users

	var rows []string
	rows = append(rows, s.SectionHeader.Render(fmt.Sprintf("Team (%d)", len(users))))

	if len(users) == 0 {
		rows = append(rows, s.TitleMuted.Render("No users yet"))
	} else {
		start, end := visibleWindow(v.userCursor, len(users), 4)
		for i := start; i < end; i++ {
			u := users[i]
			line := u.FullName + "  " + s.TitleMuted.Render(u.Email) + "  " + s.SectionHeader.Render(string(u.Role))
			if u.ID == v.ident.UserID {
				line += s.TitleMuted.Render(" (you)")
			}
			if i == v.userCursor && v.focus == secTeam {
				rows = append(rows, s.ListSelected.Render(line))
			} else {
				rows = append(rows, s.ListItem.Render(line))
			}
		}
	}

	return v.sectionStyle(secTeam).Width(v.sectionWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *DashboardView) renderAssist() string {
	s := v.styles

	modeLabels := map[string]string{
		"general":     "General Q&A",
		"ideas":       "Task ideas",
		"summary":     "Project summary",
		"description": "Write description",
	}

	var rows []string
	rows = append(rows, s.SectionHeader.Render("AI Assistant"))
	rows = append(rows, s.TitleMuted.Render("Mode: ")+"◀ "+modeLabels[assistModes[v.assistModeI]]+" ▶")

	inputStyle := s.Input
	if v.assistTyping {
		inputStyle = s.InputFocused
	}
	rows = append(rows, inputStyle.Render(v.assistInput.View()))

	if v.assistBusy {
		rows = append(rows, s.TitleMuted.Render("Thinking..."))
	} else if v.assistAnswer != "" {
		answerWidth := clamp(v.sectionWidth()-6, 20, 80)
		rows = append(rows, lipgloss.NewStyle().Width(answerWidth).Render(v.assistAnswer))
	}

	return v.sectionStyle(secAssist).Width(v.sectionWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *DashboardView) renderNotice() string {
	if v.notice == "" {
		return ""
	}
	style := v.styles.NoticeInfo
	if v.noticeErr {
		style = v.styles.NoticeError
	}
	return style.Render(v.notice) + "\n"
}

func (v *DashboardView) renderHelp() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 60 {
		return s.Help.Render(s.HelpKey.Render("?") + " help")
	}

	parts := []string{
		s.HelpKey.Render("tab") + " section",
		s.HelpKey.Render("↑↓") + " move",
	}
	switch v.focus {
	case secProjects:
		if v.caps.CanCreateProject {
			parts = append(parts, s.HelpKey.Render("n")+" new")
		}
		if v.caps.CanDeleteProject {
			parts = append(parts, s.HelpKey.Render("d")+" del")
		}
		parts = append(parts, s.HelpKey.Render("m")+" metrics", s.HelpKey.Render("a")+" summarize")
	case secTasks:
		if v.caps.CanCreateTask {
			parts = append(parts, s.HelpKey.Render("n")+" new")
		}
		if v.caps.CanDeleteTask {
			parts = append(parts, s.HelpKey.Render("d")+" del")
		}
		parts = append(parts, s.HelpKey.Render("s")+" status", s.HelpKey.Render("c")+" comments")
	case secTeam:
		if v.caps.CanManageUsers {
			parts = append(parts, s.HelpKey.Render("n")+" new", s.HelpKey.Render("d")+" del", s.HelpKey.Render("↵")+" role")
		}
	case secAssist:
		parts = append(parts, s.HelpKey.Render("↵")+" ask", s.HelpKey.Render("←→")+" mode")
	}
	parts = append(parts,
		s.HelpKey.Render("r")+" refresh",
		s.HelpKey.Render("ctrl+l")+" logout",
		s.HelpKey.Render("q")+" quit",
	)
	return s.Help.Render(strings.Join(parts, " • "))
}

func (v *DashboardView) popup(content string) string {
	contentWidth := styles.ContentWidth(v.width)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		v.styles.Popup.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *DashboardView) renderHelpPopup() string {
	s := v.styles

	items := []string{
		s.HelpKey.Render("tab") + "     next section",
		s.HelpKey.Render("↑/↓") + "     move cursor",
		s.HelpKey.Render("n") + "       new item in section",
		s.HelpKey.Render("d") + "       delete selected",
		s.HelpKey.Render("s") + "       change task status",
		s.HelpKey.Render("c/↵") + "     open task comments",
		s.HelpKey.Render("m") + "       project metrics",
		s.HelpKey.Render("a") + "       AI project summary",
		s.HelpKey.Render("r") + "       refresh everything",
		s.HelpKey.Render("ctrl+l") + "  log out",
		s.HelpKey.Render("q") + "       quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, items...)...,
	)
	return v.popup(content)
}

func (v *DashboardView) renderDeleteConfirm() string {
	s := v.styles
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(fmt.Sprintf("Delete %s \"%s\"?", v.deleteKind, v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)
	return v.popup(content)
}

func (v *DashboardView) formInput(in string, focused bool, width int) string {
	style := v.styles.Input
	if focused {
		style = v.styles.InputFocused
	}
	return style.Width(width).Render(in)
}

func (v *DashboardView) renderProjectForm() string {
	s := v.styles
	inputWidth := clamp(styles.ContentWidth(v.width)-10, 24, 50)

	btnStyle := s.Button
	if v.projFocus == 2 {
		btnStyle = s.ButtonFocused
	}
	btnLabel := " Create "
	if v.busy {
		btnLabel = " ... "
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Project"),
		"",
		"Title:",
		v.formInput(v.projTitle.View(), v.projFocus == 0, inputWidth),
		"",
		"Description:",
		v.formInput(v.projDesc.View(), v.projFocus == 1, inputWidth),
		"",
		btnStyle.Render(btnLabel),
		"",
		v.renderNotice(),
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)
	return v.popup(content)
}

func (v *DashboardView) renderTaskForm() string {
	s := v.styles
	snap := v.entities.Snapshot()
	inputWidth := clamp(styles.ContentWidth(v.width)-10, 24, 50)

	projLabel := "(none)"
	if v.taskProjIdx < len(snap.Projects) {
		projLabel = snap.Projects[v.taskProjIdx].Title
	}
	assigneeLabel := "Unassigned"
	if v.taskUserIdx > 0 && v.taskUserIdx-1 < len(snap.Users) {
		u := snap.Users[v.taskUserIdx-1]
		assigneeLabel = fmt.Sprintf("%s (%s)", u.FullName, u.Role)
	}

	btnStyle := s.Button
	if v.taskFocus == 5 {
		btnStyle = s.ButtonFocused
	}
	btnLabel := " Create "
	if v.busy {
		btnLabel = " ... "
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Task"),
		"",
		"Title:",
		v.formInput(v.taskTitle.View(), v.taskFocus == 0, inputWidth),
		"",
		"Description:",
		v.formInput(v.taskDesc.View(), v.taskFocus == 1, inputWidth),
		"",
		"Project:",
		v.formInput("◀ "+projLabel+" ▶", v.taskFocus == 2, inputWidth),
		"",
		"Assign to:",
		v.formInput("◀ "+assigneeLabel+" ▶", v.taskFocus == 3, inputWidth),
		"",
		"Deadline:",
		v.formInput(v.taskDeadline.View(), v.taskFocus == 4, inputWidth),
		"",
		btnStyle.Render(btnLabel),
		"",
		v.renderNotice(),
		s.TitleMuted.Render("Tab: next • ←→: choose • Ctrl+S: save • Esc: cancel"),
	)
	return v.popup(content)
}

func (v *DashboardView) renderUserForm() string {
	s := v.styles
	inputWidth := clamp(styles.ContentWidth(v.width)-10, 24, 50)

	btnStyle := s.Button
	if v.userFocus == 4 {
		btnStyle = s.ButtonFocused
	}
	btnLabel := " Create User "
	if v.busy {
		btnLabel = " ... "
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New User"),
		"",
		"Full name:",
		v.formInput(v.userName.View(), v.userFocus == 0, inputWidth),
		"",
		"Email:",
		v.formInput(v.userEmail.View(), v.userFocus == 1, inputWidth),
		"",
		"Password:",
		v.formInput(v.userPassword.View(), v.userFocus == 2, inputWidth),
		"",
		"Role:",
		v.formInput("◀ "+string(roleChoices[v.userRoleIdx])+" ▶", v.userFocus == 3, inputWidth),
		"",
		btnStyle.Render(btnLabel),
		"",
		v.renderNotice(),
		s.TitleMuted.Render("Tab: next • ←→: choose • Ctrl+S: save • Esc: cancel"),
	)
	return v.popup(content)
}

func (v *DashboardView) renderStatusPicker() string {
	s := v.styles
	t, _ := v.selectedTask()

	var items []string
	for i, status := range statusChoices {
		style := s.ListItem
		if i == v.statusIdx {
			style = s.ListSelected
		}
		marker := "  "
		if status == t.Status {
			marker = "● "
		}
		items = append(items, style.Render(marker+string(status)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Status: " + t.Title), ""}, append(items,
			"",
			s.TitleMuted.Render("↵: apply • Esc: cancel"),
		)...)...,
	)
	return v.popup(content)
}

func (v *DashboardView) renderRolePicker() string {
	s := v.styles
	u, _ := v.selectedUser()

	var items []string
	for i, role := range roleChoices {
		style := s.ListItem
		if i == v.roleIdx {
			style = s.ListSelected
		}
		marker := "  "
		if role == u.Role {
			marker = "● "
		}
		items = append(items, style.Render(marker+string(role)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Role: " + u.FullName), ""}, append(items,
			"",
			s.TitleMuted.Render("↵: apply • Esc: cancel"),
		)...)...,
	)
	return v.popup(content)
}

func (v *DashboardView) renderMetrics() string {
	s := v.styles

	var body string
	switch {
	case v.metricsErr != "":
		body = s.NoticeError.Render(v.metricsErr)
	case v.metrics == nil:
		body = s.TitleMuted.Render("Loading...")
	default:
		m := v.metrics
		body = lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("Total        %d", m.Total),
			s.StatusTodo.Render(fmt.Sprintf("To Do        %d", m.Todo)),
			s.StatusInProgress.Render(fmt.Sprintf("In Progress  %d", m.InProgress)),
			s.StatusDone.Render(fmt.Sprintf("Done         %d", m.Done)),
			s.Overdue.Render(fmt.Sprintf("Overdue      %d", m.Overdue)),
			"",
			fmt.Sprintf("Progress     %d%%", m.Progress),
		)
	}

	p, _ := v.selectedProject()
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Metrics: "+p.Title),
		"",
		body,
		"",
		s.TitleMuted.Render("Press any key to close"),
	)
	return v.popup(content)
}
