package app_test

import (
	"testing"
	"time"

	"taskdo/internal/app"
	"taskdo/internal/model"
)

type testEnv struct {
	userStore     *fakeUserStore
	taskStore     *fakeTaskStore
	priorityStore *fakePriorityStore
	cache         *fakePriorityCache
	publisher     *fakeActivityPublisher

	auth       *app.AuthService
	priorities *app.PriorityService
	tasks      *app.TaskService
	users      *app.UserService
}

func newTestEnv() *testEnv {
	userStore := newFakeUserStore()
	taskStore := newFakeTaskStore()
	priorityStore := newFakePriorityStore(taskStore)
	taskStore.priorities = priorityStore

	cache := &fakePriorityCache{}
	publisher := &fakeActivityPublisher{}

	priorities := app.NewPriorityService(priorityStore, cache)
	return &testEnv{
		userStore:     userStore,
		taskStore:     taskStore,
		priorityStore: priorityStore,
		cache:         cache,
		publisher:     publisher,
		auth:          app.NewAuthService(userStore, "test-secret", time.Hour),
		priorities:    priorities,
		tasks:         app.NewTaskService(taskStore, priorities, publisher),
		users:         app.NewUserService(userStore),
	}
}

func mustCreatePriority(t *testing.T, env *testEnv, description string) *model.Priority {
	t.Helper()

	priority, err := env.priorities.Create(description)
	if err != nil {
		t.Fatalf("failed to prepare priority: %v", err)
	}
	return priority
}

func mustCreateTask(t *testing.T, env *testEnv, userID uint, title, day string, priorityID uint) *model.Task {
	t.Helper()

	task, err := env.tasks.Create(userID, app.CreateTaskInput{
		Title:      title,
		DayToDo:    day,
		PriorityID: priorityID,
	})
	if err != nil {
		t.Fatalf("failed to prepare task: %v", err)
	}
	return task
}

func mustRegister(t *testing.T, env *testEnv, name, email, password string) *app.AuthResult {
	t.Helper()

	result, err := env.auth.Register(app.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("failed to prepare user: %v", err)
	}
	return result
}
