package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/taskhub/database"
	"taskhub/taskhub/models"
	"taskhub/taskhub/testutils"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func createTestUser(t *testing.T, db *database.Database) models.User {
	t.Helper()
	user, err := (&UserService{}).CreateUser(db, models.CreateUserInput{
		Name:  "Ann",
		Email: "ann@x.com",
	})
	require.NoError(t, err)
	return user
}

func TestCreateTask_Success(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	task, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:       "Write report",
		Description: strPtr("quarterly numbers"),
		UserID:      user.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, "Write report", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "quarterly numbers", *task.Description)
	assert.False(t, task.IsCompleted)
	assert.Equal(t, user.ID, task.UserID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateTask_NoDescription(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	task, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  "Write report",
		UserID: user.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, task.Description)
}

func TestCreateTask_UserNotFound(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	taskService := &TaskService{}
	_, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  "Orphan",
		UserID: 9999,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// nothing may be persisted on failure
	var count int64
	require.NoError(t, db.DB.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

// A zero user_id is just another user that does not exist, not a
// validation failure.
func TestCreateTask_ZeroUserID(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	taskService := &TaskService{}
	_, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  "Orphan",
		UserID: 0,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// Length limits count characters, not bytes.
func TestCreateTask_MultiByteTitle(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)
	title := strings.Repeat("报", 150)

	taskService := &TaskService{}
	task, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  title,
		UserID: user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, title, task.Title)
}

func TestCreateTask_InvalidFields(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	_, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:       "",
		Description: strPtr(strings.Repeat("d", 1001)),
		UserID:      user.ID,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "title")
	assert.Contains(t, vErr.Fields, "description")
}

func TestGetTaskById_NotFound(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	taskService := &TaskService{}
	_, err := taskService.GetTaskById(db, 9999)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTask_CompletedOnly(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	created, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:       "Write report",
		Description: strPtr("quarterly numbers"),
		UserID:      user.ID,
	})
	require.NoError(t, err)

	updated, err := taskService.UpdateTask(db, created.ID, models.UpdateTaskInput{
		IsCompleted: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.UserID, updated.UserID)

	stored, err := taskService.GetTaskById(db, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)
	assert.Equal(t, created.Title, stored.Title)
	assert.Equal(t, created.Description, stored.Description)
}

// An explicitly-sent empty string is applied; presence in the request
// is the signal, not non-emptiness.
func TestUpdateTask_ExplicitEmptyDescription(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	created, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:       "Write report",
		Description: strPtr("quarterly numbers"),
		UserID:      user.ID,
	})
	require.NoError(t, err)

	updated, err := taskService.UpdateTask(db, created.ID, models.UpdateTaskInput{
		Description: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Empty(t, *updated.Description)
	assert.Equal(t, created.Title, updated.Title)

	stored, err := taskService.GetTaskById(db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Description)
	assert.Empty(t, *stored.Description)
}

func TestUpdateTask_EmptyPatch(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	created, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  "Write report",
		UserID: user.ID,
	})
	require.NoError(t, err)

	updated, err := taskService.UpdateTask(db, created.ID, models.UpdateTaskInput{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.IsCompleted, updated.IsCompleted)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateTask_NotFound(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	taskService := &TaskService{}
	_, err := taskService.UpdateTask(db, 9999, models.UpdateTaskInput{
		IsCompleted: boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask_ThenGet(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	created, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  "Write report",
		UserID: user.ID,
	})
	require.NoError(t, err)

	require.NoError(t, taskService.DeleteTask(db, created.ID))

	_, err = taskService.GetTaskById(db, created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

// Delete is not idempotent: the second call is a genuine failure.
func TestDeleteTask_Twice(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db)

	taskService := &TaskService{}
	created, err := taskService.CreateTask(db, models.CreateTaskInput{
		Title:  "Write report",
		UserID: user.ID,
	})
	require.NoError(t, err)

	require.NoError(t, taskService.DeleteTask(db, created.ID))
	assert.ErrorIs(t, taskService.DeleteTask(db, created.ID), ErrTaskNotFound)
}

func TestTaskLifecycle(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	userService := &UserService{}
	taskService := &TaskService{}

	user, err := userService.CreateUser(db, models.CreateUserInput{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	taskA, err := taskService.CreateTask(db, models.CreateTaskInput{Title: "A", UserID: user.ID})
	require.NoError(t, err)
	taskB, err := taskService.CreateTask(db, models.CreateTaskInput{Title: "B", UserID: user.ID})
	require.NoError(t, err)

	tasks, err := userService.GetUserTasks(db, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.False(t, task.IsCompleted)
	}

	_, err = taskService.UpdateTask(db, taskA.ID, models.UpdateTaskInput{IsCompleted: boolPtr(true)})
	require.NoError(t, err)

	storedB, err := taskService.GetTaskById(db, taskB.ID)
	require.NoError(t, err)
	assert.False(t, storedB.IsCompleted)

	require.NoError(t, taskService.DeleteTask(db, taskB.ID))

	remaining, err := userService.GetUserTasks(db, user.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, taskA.ID, remaining[0].ID)
	assert.True(t, remaining[0].IsCompleted)
}
