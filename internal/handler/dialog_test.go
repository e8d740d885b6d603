package handler

import (
	"errors"
	"testing"
	"time"

	"toolrent/internal/clock"
	"toolrent/internal/config"
	"toolrent/internal/domain"
	"toolrent/internal/scheduler"
	"toolrent/internal/service"
	"toolrent/internal/session"
	"toolrent/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.MockReminderRepository, *testutil.MockReviewRepository) {
	t.Helper()

	clk, err := clock.New("Europe/Samara")
	require.NoError(t, err)

	sched := scheduler.New(func(scheduler.Payload) error { return nil }, testutil.NewTestLogger())
	t.Cleanup(sched.Stop)

	reminderRepo := new(testutil.MockReminderRepository)
	reviewRepo := new(testutil.MockReviewRepository)

	sessions, err := session.NewStore(session.DefaultCapacity)
	require.NoError(t, err)

	h := NewHandler(
		nil,
		service.NewReminderService(reminderRepo, sched, clk, testutil.NewTestLogger()),
		service.NewReviewService(reviewRepo, testutil.NewTestLogger()),
		sessions,
		clk,
		&config.Config{},
		testutil.NewTestLogger(),
	)
	return h, reminderRepo, reviewRepo
}

func TestHandleText_DatetimeSelfLoop(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "garbage input",
			input:    "not a date",
			expected: badDatetimeText,
		},
		{
			name:     "wrong format",
			input:    "2030-08-30 18:30",
			expected: badDatetimeText,
		},
		{
			name:     "day out of range",
			input:    "32.08.2030 18:30",
			expected: badDatetimeText,
		},
		{
			name:     "past datetime",
			input:    "30.08.2020 18:30",
			expected: pastDatetimeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(t)
			h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingDatetime})

			ctx := testutil.NewFakeContext(1, 1, tt.input)
			require.NoError(t, h.handleText(ctx))

			// Corrective message only, state and scratch untouched.
			assert.Equal(t, tt.expected, ctx.LastSent())
			sess := h.sessions.Get(1)
			assert.Equal(t, domain.StateAwaitingDatetime, sess.State)
			assert.True(t, sess.DueAt.IsZero())
		})
	}
}

func TestHandleText_DatetimeAdvancesToNote(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingDatetime})

	ctx := testutil.NewFakeContext(1, 1, "30.08.2030 18:30")
	require.NoError(t, h.handleText(ctx))

	assert.Equal(t, askNoteText, ctx.LastSent())
	sess := h.sessions.Get(1)
	assert.Equal(t, domain.StateAwaitingNote, sess.State)
	assert.Equal(t, "30.08.2030 18:30", h.clock.FormatLocal(sess.DueAt))
}

func TestHandleText_DashAlwaysCancelsDatetime(t *testing.T) {
	h, _, _ := newTestHandler(t)

	// Prior scratch data must not matter for the sentinel.
	h.sessions.Set(1, &domain.Session{
		State: domain.StateAwaitingDatetime,
		DueAt: time.Date(2030, 8, 30, 18, 30, 0, 0, time.UTC),
	})

	ctx := testutil.NewFakeContext(1, 1, "-")
	require.NoError(t, h.handleText(ctx))

	assert.Equal(t, reminderCancelledText, ctx.LastSent())
	sess := h.sessions.Get(1)
	assert.Equal(t, domain.StateIdle, sess.State)
	assert.True(t, sess.DueAt.IsZero())
}

func TestHandleReminderStart_ResetsScratch(t *testing.T) {
	h, _, _ := newTestHandler(t)

	// Re-entering the dialogue overwrites a half-finished one.
	h.sessions.Set(1, &domain.Session{
		State: domain.StateAwaitingNote,
		DueAt: time.Date(2030, 8, 30, 18, 30, 0, 0, time.UTC),
	})

	ctx := testutil.NewFakeContext(1, 1, "/reminder")
	require.NoError(t, h.handleReminderStart(ctx))

	assert.Equal(t, reminderPromptText, ctx.LastSent())
	sess := h.sessions.Get(1)
	assert.Equal(t, domain.StateAwaitingDatetime, sess.State)
	assert.True(t, sess.DueAt.IsZero())
}

func TestHandleText_NoteCompletesReminder(t *testing.T) {
	h, reminderRepo, _ := newTestHandler(t)

	due, err := h.clock.ParseLocal("30.08.2030 18:30")
	require.NoError(t, err)
	h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingNote, DueAt: due})

	reminderRepo.On("Create", int64(1), int64(99), due.UTC(), "Перфоратор Bosch").
		Return(int64(7), nil)

	ctx := testutil.NewFakeContext(1, 99, "Перфоратор Bosch")
	require.NoError(t, h.handleText(ctx))

	assert.Contains(t, ctx.LastSent(), "30.08.2030 18:30 (Europe/Samara)")
	assert.Contains(t, ctx.LastSent(), "Перфоратор Bosch")
	assert.Equal(t, domain.StateIdle, h.sessions.Get(1).State)
	reminderRepo.AssertExpectations(t)
}

func TestHandleText_NoteDashUsesDefault(t *testing.T) {
	h, reminderRepo, _ := newTestHandler(t)

	due, err := h.clock.ParseLocal("30.08.2030 18:30")
	require.NoError(t, err)
	h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingNote, DueAt: due})

	reminderRepo.On("Create", int64(1), int64(99), due.UTC(), domain.DefaultReminderNote).
		Return(int64(7), nil)

	ctx := testutil.NewFakeContext(1, 99, "-")
	require.NoError(t, h.handleText(ctx))

	assert.Contains(t, ctx.LastSent(), domain.DefaultReminderNote)
	assert.Equal(t, domain.StateIdle, h.sessions.Get(1).State)
	reminderRepo.AssertExpectations(t)
}

func TestHandleText_NoteStorageFailureKeepsSession(t *testing.T) {
	h, reminderRepo, _ := newTestHandler(t)

	due, err := h.clock.ParseLocal("30.08.2030 18:30")
	require.NoError(t, err)
	h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingNote, DueAt: due})

	reminderRepo.On("Create", int64(1), int64(99), due.UTC(), "Дрель").
		Return(int64(0), errors.New("storage down"))

	ctx := testutil.NewFakeContext(1, 99, "Дрель")
	require.NoError(t, h.handleText(ctx))

	// The user can resend the note without re-entering the dialogue.
	assert.Equal(t, genericErrorText, ctx.LastSent())
	sess := h.sessions.Get(1)
	assert.Equal(t, domain.StateAwaitingNote, sess.State)
	assert.True(t, due.Equal(sess.DueAt))
}

func TestHandleText_ReviewFlow(t *testing.T) {
	h, _, reviewRepo := newTestHandler(t)
	h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingReview})

	// Whitespace-only input re-prompts without leaving the state.
	ctx := testutil.NewFakeContext(1, 1, "   ")
	require.NoError(t, h.handleText(ctx))

	assert.Equal(t, emptyReviewText, ctx.LastSent())
	assert.Equal(t, domain.StateAwaitingReview, h.sessions.Get(1).State)

	// Real text completes the dialogue.
	reviewRepo.On("Create", int64(1), "", "Great service", mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	ctx = testutil.NewFakeContext(1, 1, "Great service")
	require.NoError(t, h.handleText(ctx))

	assert.Equal(t, reviewThanksText, ctx.LastSent())
	assert.Equal(t, domain.StateIdle, h.sessions.Get(1).State)
	reviewRepo.AssertExpectations(t)
}

func TestHandleText_IdleIgnoresFreeText(t *testing.T) {
	h, _, _ := newTestHandler(t)

	ctx := testutil.NewFakeContext(1, 1, "привет")
	require.NoError(t, h.handleText(ctx))

	assert.Empty(t, ctx.Sent)
	assert.Equal(t, domain.StateIdle, h.sessions.Get(1).State)
}

func TestHandleText_IgnoresCommands(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.sessions.Set(1, &domain.Session{State: domain.StateAwaitingDatetime})

	ctx := testutil.NewFakeContext(1, 1, "/help")
	require.NoError(t, h.handleText(ctx))

	assert.Empty(t, ctx.Sent)
	assert.Equal(t, domain.StateAwaitingDatetime, h.sessions.Get(1).State)
}

func TestHandleCancel(t *testing.T) {
	t.Run("active dialogue is aborted", func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		h.sessions.Set(1, &domain.Session{
			State: domain.StateAwaitingNote,
			DueAt: time.Date(2030, 8, 30, 18, 30, 0, 0, time.UTC),
		})

		ctx := testutil.NewFakeContext(1, 1, "/cancel")
		require.NoError(t, h.handleCancel(ctx))

		assert.Equal(t, operationCancelledText, ctx.LastSent())
		sess := h.sessions.Get(1)
		assert.Equal(t, domain.StateIdle, sess.State)
		assert.True(t, sess.DueAt.IsZero())
	})

	t.Run("no dialogue is a no-op", func(t *testing.T) {
		h, _, _ := newTestHandler(t)

		ctx := testutil.NewFakeContext(1, 1, "/cancel")
		require.NoError(t, h.handleCancel(ctx))

		assert.Empty(t, ctx.Sent)
		assert.Equal(t, domain.StateIdle, h.sessions.Get(1).State)
	})
}

func TestSenderName(t *testing.T) {
	tests := []struct {
		name     string
		user     *tele.User
		expected string
	}{
		{
			name:     "first and last name",
			user:     &tele.User{FirstName: "Иван", LastName: "Петров"},
			expected: "Иван Петров",
		},
		{
			name:     "first name only",
			user:     &tele.User{FirstName: "Иван"},
			expected: "Иван",
		},
		{
			name:     "username fallback",
			user:     &tele.User{Username: "ivan_p"},
			expected: "@ivan_p",
		},
		{
			name:     "nothing available",
			user:     &tele.User{},
			expected: "",
		},
		{
			name:     "whitespace names fall through to username",
			user:     &tele.User{FirstName: "  ", Username: "ivan_p"},
			expected: "@ivan_p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := senderName(tt.user)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReminderConfirmationText(t *testing.T) {
	text := reminderConfirmationText("30.08.2025 18:30", "Europe/Samara", "Перфоратор Bosch")

	assert.Contains(t, text, "30.08.2025 18:30 (Europe/Samara)")
	assert.Contains(t, text, "Перфоратор Bosch")
}

func TestReminderNotificationText(t *testing.T) {
	text := ReminderNotificationText("Перфоратор Bosch")

	assert.Contains(t, text, "Перфоратор Bosch")
	assert.Contains(t, text, "Напоминание о возврате")
}
