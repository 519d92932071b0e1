package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateProfilePartial(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	id := seedStudent(t, studentRepo, &models.Student{Email: "asha@college.edu"})

	svc := NewStudentService(studentRepo, newFakeNotificationRepo(id))

	// Registration form posts the whole profile.
	updated, err := svc.UpdateProfile(context.Background(), id, &dto.UpdateProfileRequest{
		Name:          strPtr("Asha Patil"),
		ClassName:     strPtr("BE"),
		Division:      strPtr("A"),
		Branch:        strPtr("IT"),
		Gender:        strPtr("Female"),
		MobileNumber:  strPtr("9876543210"),
		TenthMarks:    floatPtr(85),
		TwelfthMarks:  floatPtr(80),
		CGPAAggregate: floatPtr(8.2),
		ActiveBacklog: strPtr("no"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if !updated.FullyRegistered() {
		t.Fatal("profile should be complete after full update")
	}

	// A later partial edit keeps the untouched fields.
	updated, err = svc.UpdateProfile(context.Background(), id, &dto.UpdateProfileRequest{
		CGPAAggregate: floatPtr(8.5),
	})
	if err != nil {
		t.Fatalf("partial UpdateProfile: %v", err)
	}
	if updated.CGPAAggregate != 8.5 {
		t.Errorf("CGPAAggregate = %v, want 8.5", updated.CGPAAggregate)
	}
	if updated.Name != "Asha Patil" || updated.TenthMarks != 85 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateProfileInvalidMobile(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	id := seedStudent(t, studentRepo, &models.Student{Email: "asha@college.edu"})

	svc := NewStudentService(studentRepo, newFakeNotificationRepo(id))

	_, err := svc.UpdateProfile(context.Background(), id, &dto.UpdateProfileRequest{
		MobileNumber: strPtr("12345"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestDeleteStudent(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	id := seedStudent(t, studentRepo, &models.Student{Email: "asha@college.edu"})

	svc := NewStudentService(studentRepo, newFakeNotificationRepo(id))

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := svc.Delete(context.Background(), id); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("second Delete err = %v, want ErrStudentNotFound", err)
	}

	if err := svc.Delete(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Delete(0) err = %v, want ErrValidationFailed", err)
	}
}

func TestNotificationsUnknownStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeNotificationRepo())

	_, err := svc.Notifications(context.Background(), 7)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}
