package service

import (
	"context"
	"io"
	"sort"

	"github.com/attendly/seminar-api/internal/domain"
	"github.com/attendly/seminar-api/internal/repository"
)

type fakeSeminarRepo struct {
	seminars map[uint]domain.Seminar
	nextID   uint
}

func newFakeSeminarRepo(seminars ...domain.Seminar) *fakeSeminarRepo {
	r := &fakeSeminarRepo{seminars: map[uint]domain.Seminar{}}
	for _, s := range seminars {
		r.seminars[s.ID] = s
		if s.ID > r.nextID {
			r.nextID = s.ID
		}
	}

	return r
}

func (r *fakeSeminarRepo) Create(_ context.Context, seminar domain.Seminar) (domain.Seminar, error) {
	r.nextID++
	seminar.ID = r.nextID
	r.seminars[seminar.ID] = seminar

	return seminar, nil
}

func (r *fakeSeminarRepo) FindAll(_ context.Context) ([]domain.Seminar, error) {
	out := make([]domain.Seminar, 0, len(r.seminars))
	for _, s := range r.seminars {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *fakeSeminarRepo) FindByID(_ context.Context, id uint) (domain.Seminar, error) {
	s, ok := r.seminars[id]
	if !ok {
		return domain.Seminar{}, repository.ErrSeminarNotFound
	}

	return s, nil
}

func (r *fakeSeminarRepo) Update(_ context.Context, id uint, patch domain.SeminarPatch) (domain.Seminar, error) {
	s, ok := r.seminars[id]
	if !ok {
		return domain.Seminar{}, repository.ErrSeminarNotFound
	}

	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.NumberOfDays != nil {
		s.NumberOfDays = *patch.NumberOfDays
	}
	if patch.StartDate != nil {
		s.StartDate = patch.StartDate
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	r.seminars[id] = s

	return s, nil
}

type fakeMemberRepo struct {
	members map[uint]domain.Member
	nextID  uint
}

func newFakeMemberRepo(members ...domain.Member) *fakeMemberRepo {
	r := &fakeMemberRepo{members: map[uint]domain.Member{}}
	for _, m := range members {
		r.members[m.ID] = m
		if m.ID > r.nextID {
			r.nextID = m.ID
		}
	}

	return r
}

func (r *fakeMemberRepo) Create(_ context.Context, member domain.Member) (domain.Member, error) {
	for _, m := range r.members {
		if m.PFNumber == member.PFNumber {
			return domain.Member{}, repository.ErrMemberPFNumberExists
		}
	}

	r.nextID++
	member.ID = r.nextID
	r.members[member.ID] = member

	return member, nil
}

func (r *fakeMemberRepo) FindAll(_ context.Context) ([]domain.Member, error) {
	out := make([]domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id uint) (domain.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return domain.Member{}, repository.ErrMemberNotFound
	}

	return m, nil
}

func (r *fakeMemberRepo) FindByPFNumber(_ context.Context, pfNumber string) (domain.Member, error) {
	for _, m := range r.members {
		if m.PFNumber == pfNumber {
			return m, nil
		}
	}

	return domain.Member{}, repository.ErrMemberNotFound
}

func (r *fakeMemberRepo) FindByIDs(_ context.Context, ids []uint) ([]domain.Member, error) {
	var out []domain.Member
	for _, id := range ids {
		if m, ok := r.members[id]; ok {
			out = append(out, m)
		}
	}

	return out, nil
}

type fakeAttendanceRepo struct {
	rows   []domain.Attendance
	nextID uint
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, attendance domain.Attendance) (domain.Attendance, error) {
	for _, row := range r.rows {
		if row.MemberID == attendance.MemberID && row.SeminarID == attendance.SeminarID && row.Day == attendance.Day {
			return domain.Attendance{}, repository.ErrAttendanceExists
		}
	}

	r.nextID++
	attendance.ID = r.nextID
	r.rows = append(r.rows, attendance)

	return attendance, nil
}

func (r *fakeAttendanceRepo) CreateBatch(ctx context.Context, attendances []domain.Attendance) error {
	for _, a := range attendances {
		if _, err := r.Create(ctx, a); err != nil {
			return err
		}
	}

	return nil
}

func (r *fakeAttendanceRepo) Exists(_ context.Context, memberID, seminarID uint, day int) (bool, error) {
	for _, row := range r.rows {
		if row.MemberID == memberID && row.SeminarID == seminarID && row.Day == day {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAttendanceRepo) Find(_ context.Context, seminarID uint, day int) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for _, row := range r.rows {
		if seminarID > 0 && row.SeminarID != seminarID {
			continue
		}
		if day > 0 && row.Day != day {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}

func (r *fakeAttendanceRepo) FindBySeminarID(ctx context.Context, seminarID uint) ([]domain.Attendance, error) {
	return r.Find(ctx, seminarID, 0)
}

func (r *fakeAttendanceRepo) DistinctMemberIDs(_ context.Context, seminarID uint) ([]uint, error) {
	seen := map[uint]bool{}
	var ids []uint
	for _, row := range r.rows {
		if row.SeminarID == seminarID && !seen[row.MemberID] {
			seen[row.MemberID] = true
			ids = append(ids, row.MemberID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

type fakeTalkRepo struct {
	talks    map[uint]domain.Talk
	comments []domain.Comment
	nextID   uint
}

func newFakeTalkRepo(talks ...domain.Talk) *fakeTalkRepo {
	r := &fakeTalkRepo{talks: map[uint]domain.Talk{}}
	for _, talk := range talks {
		r.talks[talk.ID] = talk
		if talk.ID > r.nextID {
			r.nextID = talk.ID
		}
	}

	return r
}

func (r *fakeTalkRepo) Create(_ context.Context, talk domain.Talk) (domain.Talk, error) {
	r.nextID++
	talk.ID = r.nextID
	r.talks[talk.ID] = talk

	return talk, nil
}

func (r *fakeTalkRepo) FindByID(_ context.Context, id uint) (domain.Talk, error) {
	talk, ok := r.talks[id]
	if !ok {
		return domain.Talk{}, repository.ErrTalkNotFound
	}

	return talk, nil
}

func (r *fakeTalkRepo) Update(_ context.Context, id uint, patch domain.TalkPatch) (domain.Talk, error) {
	talk, ok := r.talks[id]
	if !ok {
		return domain.Talk{}, repository.ErrTalkNotFound
	}

	if patch.Title != nil {
		talk.Title = *patch.Title
	}
	if patch.Description != nil {
		talk.Description = *patch.Description
	}
	if patch.Day != nil {
		talk.Day = *patch.Day
	}
	if patch.Speaker != nil {
		talk.Speaker = *patch.Speaker
	}
	if patch.TimeSlot != nil {
		talk.TimeSlot = *patch.TimeSlot
	}
	if patch.SeminarID != nil {
		talk.SeminarID = *patch.SeminarID
	}
	if patch.PresentationURL != nil {
		talk.PresentationURL = *patch.PresentationURL
	}
	r.talks[id] = talk

	return talk, nil
}

func (r *fakeTalkRepo) CreateComment(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.ID = uint(len(r.comments) + 1)
	r.comments = append(r.comments, comment)

	return comment, nil
}

func (r *fakeTalkRepo) FindComments(_ context.Context, talkID uint) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.TalkID == talkID {
			out = append(out, c)
		}
	}

	return out, nil
}

type fakeUploader struct {
	uploads []string
	err     error
}

func (u *fakeUploader) Upload(_ context.Context, r io.Reader, filename, _ string, _ int64) (string, error) {
	if u.err != nil {
		return "", u.err
	}

	_, _ = io.Copy(io.Discard, r)
	u.uploads = append(u.uploads, filename)

	return "/uploads/" + filename, nil
}
