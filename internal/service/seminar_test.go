package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/seminar-api/internal/domain"
)

func TestSeminarService_CreateSeminar(t *testing.T) {
	svc := NewSeminarService(newFakeSeminarRepo(), newFakeMemberRepo(), newFakeAttendanceRepo())

	t.Run("status defaults to draft", func(t *testing.T) {
		created, err := svc.CreateSeminar(context.Background(), domain.Seminar{Title: "Go Week", NumberOfDays: 3})

		require.NoError(t, err)
		assert.Equal(t, "draft", created.Status)
		assert.NotZero(t, created.ID)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		created, err := svc.CreateSeminar(context.Background(), domain.Seminar{Title: "Go Week", NumberOfDays: 3, Status: "published"})

		require.NoError(t, err)
		assert.Equal(t, "published", created.Status)
	})
}

func TestSeminarService_UpdateSeminar(t *testing.T) {
	repo := newFakeSeminarRepo(domain.Seminar{ID: 1, Title: "Go Week", NumberOfDays: 3, Status: "draft"})
	svc := NewSeminarService(repo, newFakeMemberRepo(), newFakeAttendanceRepo())

	t.Run("applies only set fields", func(t *testing.T) {
		title := "Go Week 2026"
		updated, err := svc.UpdateSeminar(context.Background(), 1, domain.SeminarPatch{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Go Week 2026", updated.Title)
		assert.Equal(t, 3, updated.NumberOfDays)
		assert.Equal(t, "draft", updated.Status)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		before, err := repo.FindByID(context.Background(), 1)
		require.NoError(t, err)

		updated, err := svc.UpdateSeminar(context.Background(), 1, domain.SeminarPatch{})

		require.NoError(t, err)
		assert.Equal(t, before, updated)
	})

	t.Run("unknown seminar", func(t *testing.T) {
		_, err := svc.UpdateSeminar(context.Background(), 99, domain.SeminarPatch{})

		assert.ErrorIs(t, err, ErrSeminarNotFound)
	})
}

func TestSeminarService_RegisterMember(t *testing.T) {
	ctx := context.Background()

	seminarRepo := newFakeSeminarRepo(domain.Seminar{ID: 1, Title: "Go Week", NumberOfDays: 3})
	memberRepo := newFakeMemberRepo(domain.Member{ID: 7, PFNumber: "1234"})
	attendanceRepo := newFakeAttendanceRepo()
	svc := NewSeminarService(seminarRepo, memberRepo, attendanceRepo)

	t.Run("creates one row per day", func(t *testing.T) {
		require.NoError(t, svc.RegisterMember(ctx, 1, 7))

		rows, err := attendanceRepo.Find(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, row := range rows {
			assert.Equal(t, uint(7), row.MemberID)
			assert.Equal(t, i+1, row.Day)
		}
	})

	t.Run("second registration creates nothing", func(t *testing.T) {
		require.NoError(t, svc.RegisterMember(ctx, 1, 7))

		rows, err := attendanceRepo.Find(ctx, 1, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("fills only the missing days", func(t *testing.T) {
		memberRepo.members[8] = domain.Member{ID: 8, PFNumber: "5678"}
		_, err := attendanceRepo.Create(ctx, domain.Attendance{SeminarID: 1, MemberID: 8, Day: 2})
		require.NoError(t, err)

		require.NoError(t, svc.RegisterMember(ctx, 1, 8))

		rows, findErr := attendanceRepo.Find(ctx, 1, 0)
		require.NoError(t, findErr)

		var days []int
		for _, row := range rows {
			if row.MemberID == 8 {
				days = append(days, row.Day)
			}
		}
		assert.ElementsMatch(t, []int{1, 2, 3}, days)
	})

	t.Run("unknown member", func(t *testing.T) {
		err := svc.RegisterMember(ctx, 1, 99)

		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("unknown seminar", func(t *testing.T) {
		err := svc.RegisterMember(ctx, 42, 7)

		assert.ErrorIs(t, err, ErrSeminarNotFound)
	})
}

func TestSeminarService_RegisteredMembers(t *testing.T) {
	ctx := context.Background()

	seminarRepo := newFakeSeminarRepo(domain.Seminar{ID: 1, Title: "Go Week", NumberOfDays: 2})
	memberRepo := newFakeMemberRepo(
		domain.Member{ID: 1, PFNumber: "1234"},
		domain.Member{ID: 2, PFNumber: "5678"},
	)
	attendanceRepo := newFakeAttendanceRepo()
	svc := NewSeminarService(seminarRepo, memberRepo, attendanceRepo)

	t.Run("no attendance means empty list", func(t *testing.T) {
		members, err := svc.RegisteredMembers(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, members)
		assert.NotNil(t, members)
	})

	t.Run("one attendance row is enough", func(t *testing.T) {
		_, err := attendanceRepo.Create(ctx, domain.Attendance{SeminarID: 1, MemberID: 2, Day: 1})
		require.NoError(t, err)

		members, err := svc.RegisteredMembers(ctx, 1)

		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, uint(2), members[0].ID)
	})

	t.Run("unknown seminar", func(t *testing.T) {
		_, err := svc.RegisteredMembers(ctx, 42)

		assert.ErrorIs(t, err, ErrSeminarNotFound)
	})
}
