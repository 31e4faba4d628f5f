package app

import (
	"context"
	"fmt"
	"strings"

	"internbridge/internal/common"
	"internbridge/internal/domain/application"
	"internbridge/internal/domain/company"
	"internbridge/internal/domain/internship"
	"internbridge/internal/domain/notification"
	"internbridge/internal/domain/student"
)

type ApplicationService struct {
	repo          application.Repository
	students      student.Repository
	internships   internship.Repository
	companies     company.Repository
	notifications *NotificationService
}

func NewApplicationService(repo application.Repository, students student.Repository, internships internship.Repository, companies company.Repository, notifications *NotificationService) *ApplicationService {
	return &ApplicationService{repo: repo, students: students, internships: internships, companies: companies, notifications: notifications}
}

// Submit creates the application for a (student, internship) pair. The
// duplicate pre-check here is advisory; the unique constraint on the pair
// is what guarantees a single winner under concurrent submits, and the
// repository maps its violation to CodeConflict. Notifications are fired
// only after the insert has committed and never undo it.
func (s *ApplicationService) Submit(ctx context.Context, studentID, internshipID common.UUID) (*application.Application, error) {
	stu, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	itn, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByStudentAndInternship(ctx, studentID, internshipID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this internship", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	// Accounts acting for the posting company must not apply to its
	// own internships.
	rep, err := s.companies.IsRepresentative(ctx, itn.CompanyID, studentID)
	if err != nil {
		return nil, err
	}
	if rep {
		return nil, common.NewError(common.CodeForbidden, "cannot apply to your own internship", nil)
	}
	created, err := s.repo.Create(ctx, application.Application{
		StudentID:    studentID,
		InternshipID: internshipID,
		Status:       application.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, notification.Notification{
		UserID:        itn.CompanyID,
		UserRole:      notification.RoleCompany,
		Type:          notification.TypeNewApplication,
		Title:         "New Application Received",
		Message:       fmt.Sprintf("%s applied to %q", stu.FullName, itn.Title),
		InternshipID:  &itn.ID,
		ApplicationID: &created.ID,
	})
	s.notifications.Notify(ctx, notification.Notification{
		UserID:        studentID,
		UserRole:      notification.RoleStudent,
		Type:          notification.TypeApplicationSubmitted,
		Title:         "Application Submitted",
		Message:       fmt.Sprintf("You applied to %q", itn.Title),
		InternshipID:  &itn.ID,
		ApplicationID: &created.ID,
	})
	return created, nil
}

// ChangeStatus moves an application along the review flow and tells the
// student about it. Setting the current status again is a no-op.
func (s *ApplicationService) ChangeStatus(ctx context.Context, applicationID common.UUID, status application.Status) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !application.IsKnownStatus(next) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, reviewed, interview, accepted, or rejected"})
	}
	if next == app.Status {
		return app, nil
	}
	if application.IsFinalStatus(app.Status) {
		return nil, common.NewError(common.CodeValidation, "application status is final", nil)
	}
	if !application.IsAllowedTransition(app.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, applicationID, next)
	if err != nil {
		return nil, err
	}

	title, message, eventType := statusChangeNotification(next)
	if itn, err := s.internships.GetByID(ctx, updated.InternshipID); err == nil {
		message = fmt.Sprintf("%s for %q", message, itn.Title)
	}
	s.notifications.Notify(ctx, notification.Notification{
		UserID:        updated.StudentID,
		UserRole:      notification.RoleStudent,
		Type:          eventType,
		Title:         title,
		Message:       message,
		InternshipID:  &updated.InternshipID,
		ApplicationID: &updated.ID,
	})
	return updated, nil
}

// CheckApplied reports whether the pair already has an application. Pure
// read, no side effects.
func (s *ApplicationService) CheckApplied(ctx context.Context, studentID, internshipID common.UUID) (bool, *application.Application, error) {
	app, err := s.repo.FindByStudentAndInternship(ctx, studentID, internshipID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, app, nil
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.StudentView, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *ApplicationService) ListByCompany(ctx context.Context, companyID common.UUID) ([]application.CompanyView, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func statusChangeNotification(status application.Status) (title, message string, eventType notification.Type) {
	switch status {
	case application.StatusReviewed:
		return "Application Reviewed", "Your application was reviewed", notification.TypeApplicationReviewed
	case application.StatusInterview:
		return "Interview Scheduled", "You were invited to an interview", notification.TypeInterviewScheduled
	case application.StatusAccepted:
		return "Application Accepted", "Your application was accepted", notification.TypeApplicationAccepted
	case application.StatusRejected:
		return "Application Rejected", "Your application was rejected", notification.TypeApplicationRejected
	default:
		return "Application Updated", "Your application status changed", notification.TypeApplicationReviewed
	}
}
