package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/ws"
)

type recordingBroadcaster struct {
	events  []*ws.Event
	targets [][]int64
}

func (b *recordingBroadcaster) Publish(event *ws.Event, studentIDs []int64) {
	b.events = append(b.events, event)
	b.targets = append(b.targets, studentIDs)
}

func TestSendNotification(t *testing.T) {
	repo := newFakeNotificationRepo(1, 2, 3)
	broadcaster := &recordingBroadcaster{}
	svc := NewNotificationService(repo, broadcaster, zerolog.Nop())

	count, err := svc.Send(context.Background(), &dto.SendNotificationRequest{
		CompanyName:      "Acme Corp",
		Message:          "Drive on Friday, report at 9am",
		EligibleStudents: []int64{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	if len(broadcaster.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(broadcaster.events))
	}
	if broadcaster.events[0].CompanyName != "Acme Corp" {
		t.Errorf("event company = %q, want Acme Corp", broadcaster.events[0].CompanyName)
	}

	inbox, err := repo.ListByStudent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(inbox) != 1 || inbox[0].Message != "Drive on Friday, report at 9am" {
		t.Errorf("inbox = %+v, want one stored notification", inbox)
	}
}

func TestSendNotificationSkipsUnknownStudents(t *testing.T) {
	repo := newFakeNotificationRepo(1)
	svc := NewNotificationService(repo, nil, zerolog.Nop())

	count, err := svc.Send(context.Background(), &dto.SendNotificationRequest{
		CompanyName:      "Acme Corp",
		Message:          "Drive on Friday",
		EligibleStudents: []int64{1, 999},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSendNotificationValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SendNotificationRequest
	}{
		{"empty company name", dto.SendNotificationRequest{Message: "m", EligibleStudents: []int64{1}}},
		{"blank company name", dto.SendNotificationRequest{CompanyName: "  ", Message: "m", EligibleStudents: []int64{1}}},
		{"empty message", dto.SendNotificationRequest{CompanyName: "Acme", EligibleStudents: []int64{1}}},
		{"no targets", dto.SendNotificationRequest{CompanyName: "Acme", Message: "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeNotificationRepo(1)
			broadcaster := &recordingBroadcaster{}
			svc := NewNotificationService(repo, broadcaster, zerolog.Nop())

			_, err := svc.Send(context.Background(), &tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want ErrValidationFailed", err)
			}
			if len(broadcaster.events) != 0 {
				t.Errorf("rejected send must not publish, got %d events", len(broadcaster.events))
			}
		})
	}
}
