package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mentor_matching/internal/domain/match"
	"mentor_matching/internal/domain/profile"
	"mentor_matching/internal/domain/student"
	"mentor_matching/internal/domain/teacher"
	idb "mentor_matching/internal/infra/database"

	"github.com/sirupsen/logrus"
)

var ErrSelfMatch = errors.New("a student cannot be matched with themselves")
var ErrStudentNotFound = errors.New("student not found")
var ErrTeacherNotFound = errors.New("teacher not found")
var ErrStudentExists = errors.New("student profile already exists")
var ErrTeacherUnavailable = errors.New("teacher is hidden or already matched with this student")
var ErrAlreadyMatched = errors.New("student is already matched with this teacher")

// MatchmakingService runs the student-side flows of the mentorship bot on
// top of the repositories. It keeps no state between calls.
type MatchmakingService struct {
	studentRepo student.Repository
	teacherRepo teacher.Repository
	matchRepo   match.Repository
	logger      *logrus.Entry
}

func NewMatchmakingService(sr student.Repository, tr teacher.Repository, mr match.Repository, logger *logrus.Entry) *MatchmakingService {
	return &MatchmakingService{
		studentRepo: sr,
		teacherRepo: tr,
		matchRepo:   mr,
		logger:      logger,
	}
}

// SaveProfile inserts the student when no row exists for its ID and
// updates name, grade, sphere and bio otherwise.
func (s *MatchmakingService) SaveProfile(ctx context.Context, st *student.Student) error {
	log := s.logger.WithFields(logrus.Fields{"op": "save_profile", "student_id": st.ID})

	if err := profile.ValidateGrade(st.Grade.String); err != nil {
		log.WithError(err).Warn("Rejected profile with unknown grade")
		return err
	}
	if err := profile.ValidateSpheres(st.Sphere.String); err != nil {
		log.WithError(err).Warn("Rejected profile with unknown sphere")
		return err
	}

	existing, err := s.studentRepo.GetAll(ctx, st.ID)
	if err != nil {
		log.WithError(err).Error("Failed to look up student")
		return fmt.Errorf("failed to look up student %d: %w", st.ID, err)
	}

	if len(existing) == 0 {
		if err := s.studentRepo.Insert(ctx, st); err != nil {
			if idb.IsConstraintViolation(err) { // Inserted concurrently since the lookup
				log.WithError(err).Warn("Student profile already exists")
				return ErrStudentExists
			}
			log.WithError(err).Error("Failed to insert student")
			return fmt.Errorf("failed to insert student %d: %w", st.ID, err)
		}
		log.Info("Student profile created")
		return nil
	}

	if err := s.studentRepo.Update(ctx, st); err != nil {
		log.WithError(err).Error("Failed to update student")
		return fmt.Errorf("failed to update student %d: %w", st.ID, err)
	}
	log.Info("Student profile updated")
	return nil
}

// BrowseTeachers lists teachers the student can still connect with. Both
// filters are raw comma-separated user input; empty means no restriction.
func (s *MatchmakingService) BrowseTeachers(ctx context.Context, studentID int64, grade, sphere string) ([]teacher.Card, error) {
	log := s.logger.WithFields(logrus.Fields{
		"op":         "browse_teachers",
		"student_id": studentID,
		"grade":      grade,
		"sphere":     sphere,
	})

	var (
		cards []teacher.Card
		err   error
	)
	if strings.TrimSpace(grade) == "" && strings.TrimSpace(sphere) == "" {
		cards, err = s.teacherRepo.ListAvailable(ctx, studentID)
	} else {
		cards, err = s.teacherRepo.ListFiltered(ctx, profile.ParseFilter(grade, sphere), studentID)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list teachers")
		return nil, fmt.Errorf("failed to list teachers for student %d: %w", studentID, err)
	}

	log.WithField("teachers_count", len(cards)).Debug("Teachers listed")
	return cards, nil
}

// ConnectWithTeacher records a match between the student and the teacher,
// snapshotting both nicknames. Only teachers the student could pick from
// ListAvailable are accepted.
func (s *MatchmakingService) ConnectWithTeacher(ctx context.Context, studentID, teacherID int64) (*match.Match, error) {
	log := s.logger.WithFields(logrus.Fields{
		"op":         "connect",
		"student_id": studentID,
		"teacher_id": teacherID,
	})

	if studentID == teacherID {
		log.Warn("Self match attempt")
		return nil, ErrSelfMatch
	}

	students, err := s.studentRepo.GetAll(ctx, studentID)
	if err != nil {
		log.WithError(err).Error("Failed to load student")
		return nil, fmt.Errorf("failed to load student %d: %w", studentID, err)
	}
	if len(students) == 0 {
		return nil, ErrStudentNotFound
	}

	profiles, err := s.teacherRepo.GetProfile(ctx, teacherID)
	if err != nil {
		log.WithError(err).Error("Failed to load teacher")
		return nil, fmt.Errorf("failed to load teacher %d: %w", teacherID, err)
	}
	if len(profiles) == 0 {
		return nil, ErrTeacherNotFound
	}

	available, err := s.teacherRepo.IsAvailable(ctx, teacherID, studentID)
	if err != nil {
		log.WithError(err).Error("Failed to check teacher availability")
		return nil, fmt.Errorf("failed to check teacher %d availability: %w", teacherID, err)
	}
	if !available {
		log.Warn("Teacher is not available for this student")
		return nil, ErrTeacherUnavailable
	}

	m := &match.Match{
		TeacherID:       teacherID,
		StudentID:       studentID,
		TeacherNickname: profiles[0].Nickname,
		StudentNickname: students[0].Nickname,
	}
	if err := s.matchRepo.Create(ctx, m); err != nil {
		if idb.IsConstraintViolation(err) {
			log.WithError(err).Warn("Match already recorded")
			return nil, ErrAlreadyMatched
		}
		log.WithError(err).Error("Failed to record match")
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	log.Info("Match recorded")
	return m, nil
}

// MyTeachers lists the teachers the student is already matched with.
func (s *MatchmakingService) MyTeachers(ctx context.Context, studentID int64) ([]teacher.MatchedTeacher, error) {
	matched, err := s.teacherRepo.ListMatched(ctx, studentID)
	if err != nil {
		s.logger.WithField("student_id", studentID).WithError(err).Error("Failed to list matched teachers")
		return nil, fmt.Errorf("failed to list matched teachers for student %d: %w", studentID, err)
	}
	return matched, nil
}

func (s *MatchmakingService) SetVisibility(ctx context.Context, studentID int64, show bool) error {
	log := s.logger.WithFields(logrus.Fields{"op": "set_visibility", "student_id": studentID, "show": show})
	if err := s.studentRepo.SetShow(ctx, studentID, show); err != nil {
		log.WithError(err).Error("Failed to change visibility")
		return fmt.Errorf("failed to change visibility for student %d: %w", studentID, err)
	}
	log.Info("Visibility changed")
	return nil
}
