package task

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/db"
)

type taskRepoPG struct{ q db.Querier }

func NewTaskRepoPG(q db.Querier) Repository {
	return &taskRepoPG{q: q}
}

const taskCols = `id, title, description, assignee, department, priority, status, due_date`

func scanTask(row pgx.Row) (*Task, error) {
	var t Task
	var priority, status string
	var due time.Time
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Assignee, &t.Department,
		&priority, &status, &due); err != nil {
		return nil, err
	}
	t.Priority = Priority(priority)
	t.Status = Status(status)
	t.DueDate = calendar.DateOf(due)
	return &t, nil
}

func (r *taskRepoPG) Create(ctx context.Context, t *Task) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO task (`+taskCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		t.ID, t.Title, t.Description, t.Assignee, t.Department,
		string(t.Priority), string(t.Status), t.DueDate.Time())
	return err
}

func (r *taskRepoPG) GetByID(ctx context.Context, id string) (*Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskCols+` FROM task WHERE id = $1`, id))
	return t, db.NotFound(err)
}

func (r *taskRepoPG) List(ctx context.Context) ([]*Task, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskCols+` FROM task ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tasks []*Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepoPG) UpdateStatus(ctx context.Context, id string, s Status) (*Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx,
		`UPDATE task SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING `+taskCols,
		id, string(s)))
	return t, db.NotFound(err)
}
