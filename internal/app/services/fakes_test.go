package services

import (
	"context"
	"time"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, s := range r.students {
		if s.Email == student.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	cp := *student
	cp.ID = id
	r.students[id] = &cp
	return id, nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, s := range r.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.students[id]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

type fakeAdminRepo struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[int64]*models.Admin), nextID: 1}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) (int64, error) {
	id := r.nextID
	r.nextID++
	cp := *admin
	cp.ID = id
	r.admins[id] = &cp
	return id, nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r *fakeAdminRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCompanyRepo struct {
	companies map[int64]*models.Company
	nextID    int64
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*models.Company), nextID: 1}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *models.Company) (int64, error) {
	for _, c := range r.companies {
		if c.Name == company.Name {
			return 0, apperrors.ErrCompanyAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	cp := *company
	cp.ID = id
	r.companies[id] = &cp
	return id, nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*models.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) NameExists(_ context.Context, name string) (bool, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompanyRepo) GetAll(_ context.Context) ([]*models.Company, error) {
	out := make([]*models.Company, 0, len(r.companies))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.companies[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.companies[id]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

type fakeApplicationRepo struct {
	records []*repositories.ApplicationRecord
	nextID  int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1}
}

func (r *fakeApplicationRepo) Create(_ context.Context, studentID, companyID int64) (*models.Application, error) {
	for _, rec := range r.records {
		if rec.StudentID == studentID && rec.CompanyID == companyID {
			return nil, apperrors.ErrAlreadyApplied
		}
	}
	app := &models.Application{
		ID:          r.nextID,
		StudentID:   studentID,
		CompanyID:   companyID,
		DateApplied: time.Now(),
		Status:      models.StatusApplied,
	}
	r.nextID++
	r.records = append(r.records, &repositories.ApplicationRecord{Application: *app})
	return app, nil
}

func (r *fakeApplicationRepo) ExistsForPair(_ context.Context, studentID, companyID int64) (bool, error) {
	for _, rec := range r.records {
		if rec.StudentID == studentID && rec.CompanyID == companyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentID int64) ([]*repositories.ApplicationRecord, error) {
	var out []*repositories.ApplicationRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].StudentID == studentID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListAll(_ context.Context) ([]*repositories.ApplicationRecord, error) {
	return append([]*repositories.ApplicationRecord{}, r.records...), nil
}

type fakeNotificationRepo struct {
	notifications map[int64][]*models.Notification
	knownStudents map[int64]bool
	nextID        int64
}

func newFakeNotificationRepo(studentIDs ...int64) *fakeNotificationRepo {
	known := make(map[int64]bool, len(studentIDs))
	for _, id := range studentIDs {
		known[id] = true
	}
	return &fakeNotificationRepo{
		notifications: make(map[int64][]*models.Notification),
		knownStudents: known,
		nextID:        1,
	}
}

func (r *fakeNotificationRepo) InsertForStudents(_ context.Context, companyName, message string, studentIDs []int64) (int64, error) {
	var count int64
	for _, id := range studentIDs {
		if !r.knownStudents[id] {
			continue
		}
		r.notifications[id] = append(r.notifications[id], &models.Notification{
			ID:          r.nextID,
			StudentID:   id,
			CompanyName: companyName,
			Message:     message,
			Date:        time.Now(),
		})
		r.nextID++
		count++
	}
	return count, nil
}

func (r *fakeNotificationRepo) ListByStudent(_ context.Context, studentID int64) ([]*models.Notification, error) {
	list := r.notifications[studentID]
	out := make([]*models.Notification, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out, nil
}
