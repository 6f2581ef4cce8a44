package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks map[string]*Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (*Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListByCaregiver(ctx context.Context, caregiverID string) ([]Task, error) {
	result := make([]Task, 0)
	for _, task := range r.tasks {
		if task.CaregiverID == caregiverID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) ListByPatient(ctx context.Context, patientID string) ([]Task, error) {
	result := make([]Task, 0)
	for _, task := range r.tasks {
		if task.PatientID == patientID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	task, ok := r.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}
	task.Completed = completed
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

type fakeLinks struct {
	pairs map[string]string // patient -> caregiver
}

func (l *fakeLinks) IsLinked(ctx context.Context, caregiverID, patientID string) (bool, error) {
	return l.pairs[patientID] == caregiverID, nil
}

func linkedService(repo *fakeTaskRepo) *Service {
	return NewService(repo, &fakeLinks{pairs: map[string]string{"patient-1": "cg-1"}})
}

func TestCreateTask(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := linkedService(repo)

	task, err := svc.Create(context.Background(), CreateTaskInput{
		CaregiverID: "cg-1",
		PatientID:   "patient-1",
		Title:       "  Take meds  ",
		Description: "One pill after breakfast",
	})
	require.NoError(t, err)
	require.Equal(t, "Take meds", task.Title)
	require.False(t, task.Completed)
	require.Contains(t, repo.tasks, task.ID)
}

func TestCreateTaskUnlinkedPatient(t *testing.T) {
	svc := linkedService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), CreateTaskInput{
		CaregiverID: "cg-1",
		PatientID:   "stranger",
		Title:       "Take meds",
		Description: "One pill",
	})
	require.ErrorIs(t, err, ErrPatientNotLinked)
}

func TestCreateTaskValidation(t *testing.T) {
	svc := linkedService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), CreateTaskInput{CaregiverID: "cg-1", PatientID: "patient-1", Description: "x"})
	require.Error(t, err)
	_, err = svc.Create(context.Background(), CreateTaskInput{CaregiverID: "cg-1", PatientID: "patient-1", Title: "x"})
	require.Error(t, err)
}

func TestSetCompleted(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.tasks["t-1"] = &Task{ID: "t-1", CaregiverID: "cg-1", PatientID: "patient-1", Title: "Walk"}
	svc := linkedService(repo)

	task, err := svc.SetCompleted(context.Background(), "patient-1", "t-1", true)
	require.NoError(t, err)
	require.True(t, task.Completed)
	require.True(t, repo.tasks["t-1"].Completed)

	task, err = svc.SetCompleted(context.Background(), "cg-1", "t-1", false)
	require.NoError(t, err)
	require.False(t, task.Completed)

	_, err = svc.SetCompleted(context.Background(), "stranger", "t-1", true)
	require.ErrorIs(t, err, ErrNotAllowed)

	_, err = svc.SetCompleted(context.Background(), "patient-1", "missing", true)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.tasks["t-1"] = &Task{ID: "t-1", CaregiverID: "cg-1", PatientID: "patient-1", Title: "Walk"}
	svc := linkedService(repo)

	require.ErrorIs(t, svc.Delete(context.Background(), "patient-1", "t-1"), ErrNotAllowed)
	require.NoError(t, svc.Delete(context.Background(), "cg-1", "t-1"))
	require.NotContains(t, repo.tasks, "t-1")
}
