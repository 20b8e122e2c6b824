package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/wyrm/internal/store"
)

var taskPriorities = []string{store.PriorityLow, store.PriorityMed, store.PriorityHigh}

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks    []store.Task
	cursor   int
	showDone bool

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle    *string
	formDesc     *string
	formPriority *string
	formDue      *string
}

func newTasksModel(s *store.Store) tasksModel {
	title, desc, priority, due := "", "", store.PriorityMed, ""
	return tasksModel{
		store:        s,
		formTitle:    &title,
		formDesc:     &desc,
		formPriority: &priority,
		formDue:      &due,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) refresh() tea.Cmd {
	filter := "open"
	if t.showDone {
		filter = "all"
	}
	return func() tea.Msg {
		tasks, _ := t.store.ListTasks(filter)
		return tasksDataMsg{tasks: tasks}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = max(0, len(t.tasks)-1)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.New):
			return t.showNewTaskForm()
		case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
			if len(t.tasks) > 0 {
				task := t.tasks[t.cursor]
				if _, err := t.store.ToggleTask(task.ID); err != nil {
					return t, errorStatus("toggle failed", err)
				}
				return t, t.refresh()
			}
		case key.Matches(msg, keys.Delete):
			if len(t.tasks) > 0 {
				task := t.tasks[t.cursor]
				if err := t.store.DeleteTask(task.ID); err != nil {
					return t, errorStatus("delete failed", err)
				}
				return t, t.refresh()
			}
		case key.Matches(msg, keys.Back):
			t.showDone = !t.showDone
			return t, t.refresh()
		}
	}
	return t, nil
}

func errorStatus(prefix string, err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("%s: %v", prefix, err), isError: true}
	}
}

func (t tasksModel) showNewTaskForm() (tasksModel, tea.Cmd) {
	*t.formTitle = ""
	*t.formDesc = ""
	*t.formPriority = store.PriorityMed
	*t.formDue = ""

	priorityOptions := make([]huh.Option[string], len(taskPriorities))
	for i, p := range taskPriorities {
		priorityOptions[i] = huh.NewOption(p, p)
	}

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(t.formTitle),
			huh.NewInput().Title("Description").Value(t.formDesc),
			huh.NewSelect[string]().Title("Priority").Options(priorityOptions...).Value(t.formPriority),
			huh.NewInput().Title("Due (YYYY-MM-DD, optional)").Value(t.formDue),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		if *t.formTitle != "" {
			var due *string
			if *t.formDue != "" {
				due = t.formDue
			}
			if _, err := t.store.CreateTask(*t.formTitle, *t.formDesc, *t.formPriority, due); err != nil {
				return t, tea.Batch(errorStatus("create failed", err), t.refresh())
			}
		}
		return t, t.refresh()
	}

	return t, cmd
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Task")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return activePanelStyle.Width(w).Render(content)
	}

	label := "Open Tasks"
	if t.showDone {
		label = "All Tasks"
	}
	title := titleStyle.Render(label)

	if len(t.tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tasks yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-32s %-8s %-12s %-8s", "", "Title", "Prio", "Due", "Status"))
	rows = append(rows, header)

	for i, task := range t.tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		due := "-"
		if task.DueDate != nil {
			due = *task.DueDate
		}
		titleCol := task.Title
		if task.Status == store.TaskDone {
			titleCol = mutedStyle.Render(titleCol)
		}
		row := style.Render(fmt.Sprintf("%s%s %-32s %-8s %-12s %-8s",
			cursor, priorityDot(task.Priority), titleCol, task.Priority, due, task.Status))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  t/enter: toggle  d: delete  esc: show/hide done"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
