package application

import (
	"fmt"
	"slices"
	"time"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

const overdueShown = 5

type datedTask struct {
	task domain.PreventiveTask
	at   time.Time
}

func answerPreventive(st *domain.PreventiveState, in domain.Intent, now time.Time) string {
	var tasks []domain.PreventiveTask
	if st != nil {
		tasks = st.Tasks
	}
	loc := now.Location()

	if len(tasks) == 0 {
		if in.HasDate() {
			return fmt.Sprintf("No encuentro tareas preventivas para %s.", calendar.FormatLong(in.Date))
		}
		return "Preventivo: no tengo tareas registradas aún."
	}

	switch in.Kind {
	case domain.IntentLastDone:
		var done []datedTask
		for _, t := range tasks {
			if !t.Completed {
				continue
			}
			if at, ok := calendar.ToDate(t.ReferenceDate(), loc); ok {
				done = append(done, datedTask{task: t, at: at})
			}
		}
		if len(done) == 0 {
			return "Aún no veo mantenimientos preventivos completados."
		}
		slices.SortStableFunc(done, func(a, b datedTask) int { return b.at.Compare(a.at) })
		last := done[0]
		return fmt.Sprintf("Último mantenimiento preventivo: %s — %s.", calendar.FormatLong(last.at), last.task.Description)

	case domain.IntentNextDue:
		for _, p := range pendingByDueDate(tasks, loc) {
			if !p.at.Before(now) {
				return fmt.Sprintf("Próximo mantenimiento preventivo: %s — %s.", calendar.FormatLong(p.at), p.task.Description)
			}
		}
		return "No encuentro próximos mantenimientos preventivos programados."

	case domain.IntentOverdue:
		overdue := overdueTasks(tasks, now)
		if len(overdue) == 0 {
			return "No tienes tareas preventivas vencidas. ✅"
		}
		lines := make([]string, 0, overdueShown)
		for _, o := range overdue[:min(overdueShown, len(overdue))] {
			lines = append(lines, fmt.Sprintf("%s — vencía %s.", o.task.Description, calendar.FormatLong(o.at)))
		}
		return fmt.Sprintf("Tareas preventivas vencidas (%d):\n%s", len(overdue), bullets(lines))

	case domain.IntentListByDate:
		var lines []string
		for _, t := range tasks {
			due, dueOK := calendar.ToDate(t.DueDate, loc)
			done, doneOK := calendar.ToDate(t.CompletedAt, loc)
			if !(dueOK && calendar.SameDay(due, in.Date)) && !(doneOK && calendar.SameDay(done, in.Date)) {
				continue
			}

			tag, label, ref := "⏳", "programada", due
			if !dueOK {
				ref = done
			}
			if t.Completed {
				tag, label = "✅", "completada"
				if doneOK {
					ref = done
				}
			}
			lines = append(lines, fmt.Sprintf("%s %s — %s el %s.", tag, t.Description, label, calendar.FormatLong(ref)))
		}
		if len(lines) == 0 {
			return fmt.Sprintf("Sin tareas preventivas para %s.", calendar.FormatLong(in.Date))
		}
		return fmt.Sprintf("Preventivo — %s:\n%s", calendar.FormatLong(in.Date), bullets(lines))
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return fmt.Sprintf("Preventivo: %d tareas, %d completadas, %d vencidas.", len(tasks), completed, len(overdueTasks(tasks, now)))
}

// pendingByDueDate returns pending tasks with a readable due date, soonest first.
func pendingByDueDate(tasks []domain.PreventiveTask, loc *time.Location) []datedTask {
	var out []datedTask
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if at, ok := calendar.ToDate(t.DueDate, loc); ok {
			out = append(out, datedTask{task: t, at: at})
		}
	}
	slices.SortStableFunc(out, func(a, b datedTask) int { return a.at.Compare(b.at) })

	return out
}

func overdueTasks(tasks []domain.PreventiveTask, now time.Time) []datedTask {
	var out []datedTask
	for _, p := range pendingByDueDate(tasks, now.Location()) {
		if p.at.Before(now) {
			out = append(out, p)
		}
	}

	return out
}
