package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) put(user *model.User) {
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.put(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.put(user)
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if u, ok := m.users[id]; ok {
		delete(m.users, "email:"+u.Email)
		delete(m.users, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, filters *repository.UserListFilters, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for key, u := range m.users {
		if strings.HasPrefix(key, "email:") {
			continue
		}
		if filters != nil {
			if filters.Status != "" && u.Status != filters.Status {
				continue
			}
			if filters.Role != "" && u.Role != filters.Role {
				continue
			}
			if filters.Keyword != "" &&
				!strings.Contains(u.Name, filters.Keyword) &&
				!strings.Contains(u.Email, filters.Keyword) {
				continue
			}
		}
		all = append(all, *u)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) GetMaxMembershipID(_ context.Context) (*model.User, error) {
	// Descending string order, mirroring the SQL the real repo runs.
	var best *model.User
	for key, u := range m.users {
		if strings.HasPrefix(key, "email:") || u.MembershipID == nil {
			continue
		}
		if best == nil || *u.MembershipID > *best.MembershipID {
			best = u
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams   map[string]*model.Team
	members map[string]*model.TeamMember // "teamID:userID"
	seq     int
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{
		teams:   make(map[string]*model.Team),
		members: make(map[string]*model.TeamMember),
	}
}

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team) error {
	if team.TeamID == "" {
		m.seq++
		team.TeamID = fmt.Sprintf("team-%03d", m.seq)
	}
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) List(_ context.Context) ([]model.Team, error) {
	var result []model.Team
	for _, t := range m.teams {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTeamRepo) Update(_ context.Context, team *model.Team) error {
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, id string) error {
	delete(m.teams, id)
	return nil
}

func (m *mockTeamRepo) AddMember(_ context.Context, member *model.TeamMember) error {
	m.members[member.TeamID+":"+member.UserID] = member
	return nil
}

func (m *mockTeamRepo) GetMember(_ context.Context, teamID, userID string) (*model.TeamMember, error) {
	if tm, ok := m.members[teamID+":"+userID]; ok {
		return tm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) ListMembers(_ context.Context, teamID string) ([]model.TeamMember, error) {
	var result []model.TeamMember
	for _, tm := range m.members {
		if tm.TeamID == teamID {
			result = append(result, *tm)
		}
	}
	return result, nil
}

func (m *mockTeamRepo) RemoveMember(_ context.Context, teamID, userID string) error {
	delete(m.members, teamID+":"+userID)
	return nil
}

// ── Mock FieldRepository ──

type mockFieldRepo struct {
	fields  map[string]*model.Field
	members map[string]*model.FieldMember // "fieldID:userID"
	seq     int
}

func newMockFieldRepo() *mockFieldRepo {
	return &mockFieldRepo{
		fields:  make(map[string]*model.Field),
		members: make(map[string]*model.FieldMember),
	}
}

func (m *mockFieldRepo) Create(_ context.Context, field *model.Field) error {
	if field.FieldID == "" {
		m.seq++
		field.FieldID = fmt.Sprintf("field-%03d", m.seq)
	}
	m.fields[field.FieldID] = field
	return nil
}

func (m *mockFieldRepo) GetByID(_ context.Context, id string) (*model.Field, error) {
	if f, ok := m.fields[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFieldRepo) GetByName(_ context.Context, name string) (*model.Field, error) {
	for _, f := range m.fields {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFieldRepo) List(_ context.Context, teamID string) ([]model.Field, error) {
	var result []model.Field
	for _, f := range m.fields {
		if teamID == "" || f.TeamID == teamID {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockFieldRepo) Update(_ context.Context, field *model.Field) error {
	m.fields[field.FieldID] = field
	return nil
}

func (m *mockFieldRepo) Delete(_ context.Context, id string) error {
	delete(m.fields, id)
	return nil
}

func (m *mockFieldRepo) AddMember(_ context.Context, member *model.FieldMember) error {
	m.members[member.FieldID+":"+member.UserID] = member
	return nil
}

func (m *mockFieldRepo) GetMember(_ context.Context, fieldID, userID string) (*model.FieldMember, error) {
	if fm, ok := m.members[fieldID+":"+userID]; ok {
		return fm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFieldRepo) ListMembers(_ context.Context, fieldID string) ([]model.FieldMember, error) {
	var result []model.FieldMember
	for _, fm := range m.members {
		if fm.FieldID == fieldID {
			result = append(result, *fm)
		}
	}
	return result, nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[string]*model.Class
	seq     int
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ClassID == "" {
		m.seq++
		class.ClassID = fmt.Sprintf("class-%03d", m.seq)
	}
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context, fieldID string, offset, limit int) ([]model.Class, int64, error) {
	var all []model.Class
	for _, c := range m.classes {
		if fieldID != "" && (c.FieldID == nil || *c.FieldID != fieldID) {
			continue
		}
		all = append(all, *c)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockClassRepo) ListFrom(_ context.Context, from time.Time) ([]model.Class, error) {
	var result []model.Class
	for _, c := range m.classes {
		if !c.ScheduledAt.Before(from) {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id string) error {
	delete(m.classes, id)
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	if att.AttendanceID == "" {
		m.seq++
		att.AttendanceID = fmt.Sprintf("att-%03d", m.seq)
	}
	m.records[att.AttendanceID] = att
	return nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, att *model.Attendance) error {
	m.records[att.AttendanceID] = att
	return nil
}

func (m *mockAttendanceRepo) GetOpenSession(_ context.Context, classID, userID string) (*model.Attendance, error) {
	for _, a := range m.records {
		if a.ClassID == classID && a.UserID == userID && a.LeftAt == nil {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) GetLatest(_ context.Context, classID, userID string) (*model.Attendance, error) {
	var latest *model.Attendance
	for _, a := range m.records {
		if a.ClassID != classID || a.UserID != userID {
			continue
		}
		if latest == nil || a.JoinedAt.After(latest.JoinedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (m *mockAttendanceRepo) ListByClass(_ context.Context, classID string) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		if a.ClassID == classID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByUser(_ context.Context, userID string) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) CountByStatus(_ context.Context, classID string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, a := range m.records {
		if a.ClassID == classID {
			counts[a.Status]++
		}
	}
	return counts, nil
}

// ── Mock FormRepository ──

type mockFormRepo struct {
	forms       map[string]*model.Form
	submissions map[string]*model.FormSubmission
	formSeq     int
	subSeq      int
}

func newMockFormRepo() *mockFormRepo {
	return &mockFormRepo{
		forms:       make(map[string]*model.Form),
		submissions: make(map[string]*model.FormSubmission),
	}
}

func (m *mockFormRepo) Create(_ context.Context, form *model.Form) error {
	if form.FormID == "" {
		m.formSeq++
		form.FormID = fmt.Sprintf("form-%03d", m.formSeq)
	}
	m.forms[form.FormID] = form
	return nil
}

func (m *mockFormRepo) GetByID(_ context.Context, id string) (*model.Form, error) {
	if f, ok := m.forms[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFormRepo) GetBySlug(_ context.Context, slug string) (*model.Form, error) {
	for _, f := range m.forms {
		if f.Slug == slug {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFormRepo) List(_ context.Context) ([]model.Form, error) {
	var result []model.Form
	for _, f := range m.forms {
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockFormRepo) Update(_ context.Context, form *model.Form) error {
	m.forms[form.FormID] = form
	return nil
}

func (m *mockFormRepo) Delete(_ context.Context, id string) error {
	delete(m.forms, id)
	return nil
}

func (m *mockFormRepo) CreateSubmission(_ context.Context, sub *model.FormSubmission) error {
	if sub.SubmissionID == "" {
		m.subSeq++
		sub.SubmissionID = fmt.Sprintf("sub-%03d", m.subSeq)
	}
	m.submissions[sub.SubmissionID] = sub
	return nil
}

func (m *mockFormRepo) GetSubmission(_ context.Context, id string) (*model.FormSubmission, error) {
	if s, ok := m.submissions[id]; ok {
		if s.Form == nil {
			s.Form = m.forms[s.FormID]
		}
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFormRepo) ListSubmissions(_ context.Context, formID, status string, offset, limit int) ([]model.FormSubmission, int64, error) {
	var all []model.FormSubmission
	for _, s := range m.submissions {
		if s.FormID != formID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		all = append(all, *s)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockFormRepo) UpdateSubmission(_ context.Context, sub *model.FormSubmission) error {
	m.submissions[sub.SubmissionID] = sub
	return nil
}

func (m *mockFormRepo) DeleteSubmissionsByForm(_ context.Context, formID string) error {
	for id, s := range m.submissions {
		if s.FormID == formID {
			delete(m.submissions, id)
		}
	}
	return nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	items map[string]*model.Announcement
	seq   int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{items: make(map[string]*model.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		m.seq++
		a.AnnouncementID = fmt.Sprintf("ann-%03d", m.seq)
	}
	m.items[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.items[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context, offset, limit int) ([]model.Announcement, int64, error) {
	var all []model.Announcement
	for _, a := range m.items {
		all = append(all, *a)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	m.items[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	items map[string]*model.Event
	seq   int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{items: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, e *model.Event) error {
	if e.EventID == "" {
		m.seq++
		e.EventID = fmt.Sprintf("event-%03d", m.seq)
	}
	m.items[e.EventID] = e
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.items[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, offset, limit int) ([]model.Event, int64, error) {
	var all []model.Event
	for _, e := range m.items {
		all = append(all, *e)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockEventRepo) Update(_ context.Context, e *model.Event) error {
	m.items[e.EventID] = e
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── Repository assembly ──

type mockRepos struct {
	user       *mockUserRepo
	team       *mockTeamRepo
	field      *mockFieldRepo
	class      *mockClassRepo
	attendance *mockAttendanceRepo
	form       *mockFormRepo
	ann        *mockAnnouncementRepo
	event      *mockEventRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		user:       newMockUserRepo(),
		team:       newMockTeamRepo(),
		field:      newMockFieldRepo(),
		class:      newMockClassRepo(),
		attendance: newMockAttendanceRepo(),
		form:       newMockFormRepo(),
		ann:        newMockAnnouncementRepo(),
		event:      newMockEventRepo(),
	}
	repo := &repository.Repository{
		User:         mocks.user,
		Team:         mocks.team,
		Field:        mocks.field,
		Class:        mocks.class,
		Attendance:   mocks.attendance,
		Form:         mocks.form,
		Announcement: mocks.ann,
		Event:        mocks.event,
	}
	return repo, mocks
}
