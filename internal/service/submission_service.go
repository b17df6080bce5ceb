package service

import (
	"errors"
	"io"

	"reddybook/config"
	"reddybook/internal/domain"
	"reddybook/internal/models"
	"reddybook/internal/report"
	"reddybook/internal/repository"
	"reddybook/pkg/whatsapp"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRow is a ledger entry flagged with whether it passes the date filter.
type SubmissionRow struct {
	models.Submission
	InRange bool `json:"in_range"`
}

type SubmissionService struct {
	repo   *repository.SubmissionRepository
	intake *config.IntakeConfig
}

func NewSubmissionService(repo *repository.SubmissionRepository, intake *config.IntakeConfig) *SubmissionService {
	return &SubmissionService{repo: repo, intake: intake}
}

func (s *SubmissionService) Create(sub *models.Submission) error {
	return s.repo.Create(sub)
}

// List returns all submissions newest first. The range only marks rows, it
// never hides them.
func (s *SubmissionService) List(r report.DateRange) ([]SubmissionRow, int, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, 0, err
	}
	rows := make([]SubmissionRow, len(list))
	inRange := 0
	for i := range list {
		rows[i] = SubmissionRow{Submission: list[i], InRange: r.Contains(list[i].SubmittedAt)}
		if rows[i].InRange {
			inRange++
		}
	}
	return rows, inRange, nil
}

// ToggleStatus flips pending to contacted; any other value, including none, becomes pending.
func (s *SubmissionService) ToggleStatus(id uint) (string, error) {
	sub, err := s.get(id)
	if err != nil {
		return "", err
	}
	next := domain.SubmissionPending
	if sub.StatusValue() == domain.SubmissionPending {
		next = domain.SubmissionContacted
	}
	if err := s.repo.UpdateStatus(id, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *SubmissionService) BulkDelete(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.DeleteByIDs(ids)
}

func (s *SubmissionService) ExportCSV(w io.Writer, r report.DateRange) error {
	rows, err := s.inRange(r)
	if err != nil {
		return err
	}
	return report.WriteCSV(w, rows, s.format())
}

func (s *SubmissionService) ExportXLSX(w io.Writer, r report.DateRange) error {
	rows, err := s.inRange(r)
	if err != nil {
		return err
	}
	return report.WriteXLSX(w, rows, s.format())
}

// ContactLink is the WhatsApp chat link an admin uses to reach a lead.
func (s *SubmissionService) ContactLink(id uint) (string, error) {
	sub, err := s.get(id)
	if err != nil {
		return "", err
	}
	return whatsapp.Link(s.intake.CountryCode+sub.MobileNumber, whatsapp.SupportGreeting(sub.Name, s.intake.Brand)), nil
}

func (s *SubmissionService) inRange(r report.DateRange) ([]models.Submission, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return report.Filter(list, r), nil
}

func (s *SubmissionService) format() report.Format {
	return report.Format{CountryCode: s.intake.CountryCode, Location: s.intake.Location()}
}

func (s *SubmissionService) get(id uint) (*models.Submission, error) {
	sub, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSubmissionNotFound
	}
	return sub, err
}
