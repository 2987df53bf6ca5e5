package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Store is the persistence contract the tool layer depends on. Every document
// is read and written whole; there are no partial updates.
type Store interface {
	BusinessInfo(ctx context.Context) (BusinessInfo, error)
	Services(ctx context.Context) (ServiceCatalog, error)
	Calendar(ctx context.Context) (Calendar, error)
	SaveCalendar(ctx context.Context, cal Calendar) error
	Appointments(ctx context.Context) ([]Appointment, error)
	AppendAppointment(ctx context.Context, appt Appointment) error
}

type Config struct {
	DataDir          string `envconfig:"DATA_DIR" split_words:"true" default:"data"`
	AppointmentsPath string `envconfig:"APPOINTMENTS_PATH" split_words:"true" default:"appointments.json"`
}

const (
	businessInfoFile = "business_info.json"
	servicesFile     = "services.json"
	calendarFile     = "calendar.json"
)

// FileStore keeps each document as a JSON file on disk. Writes are whole-file
// replacements with no locking; concurrent writers can race (accepted).
type FileStore struct {
	dataDir          string
	appointmentsPath string
}

type FileStoreOption func(*FileStore)

func WithAppointmentsPath(path string) FileStoreOption {
	return func(s *FileStore) {
		trimmed := strings.TrimSpace(path)
		if trimmed != "" {
			s.appointmentsPath = trimmed
		}
	}
}

func NewFileStore(cfg Config, opts ...FileStoreOption) (*FileStore, error) {
	dataDir := strings.TrimSpace(cfg.DataDir)
	if dataDir == "" {
		return nil, errors.New("data dir is required")
	}

	s := &FileStore{
		dataDir:          dataDir,
		appointmentsPath: strings.TrimSpace(cfg.AppointmentsPath),
	}
	if s.appointmentsPath == "" {
		s.appointmentsPath = "appointments.json"
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func (s *FileStore) BusinessInfo(ctx context.Context) (BusinessInfo, error) {
	return loadDocument[BusinessInfo](filepath.Join(s.dataDir, businessInfoFile))
}

func (s *FileStore) Services(ctx context.Context) (ServiceCatalog, error) {
	return loadDocument[ServiceCatalog](filepath.Join(s.dataDir, servicesFile))
}

func (s *FileStore) Calendar(ctx context.Context) (Calendar, error) {
	cal, err := loadDocument[Calendar](filepath.Join(s.dataDir, calendarFile))
	if err != nil {
		return nil, err
	}
	if cal == nil {
		cal = Calendar{}
	}
	return cal, nil
}

func (s *FileStore) SaveCalendar(ctx context.Context, cal Calendar) error {
	return saveDocument(filepath.Join(s.dataDir, calendarFile), cal)
}

func (s *FileStore) Appointments(ctx context.Context) ([]Appointment, error) {
	return loadDocument[[]Appointment](s.appointmentsPath)
}

func (s *FileStore) AppendAppointment(ctx context.Context, appt Appointment) error {
	appts, err := s.Appointments(ctx)
	if err != nil {
		return err
	}
	appts = append(appts, appt)
	return saveDocument(s.appointmentsPath, appts)
}

// loadDocument reads one JSON document. A missing file is "no data" and yields
// the zero value; so does a corrupt document, with a warning. Only I/O
// failures other than absence surface as errors.
func loadDocument[T any](path string) (T, error) {
	var doc T

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("malformed document, treating as empty")
		var zero T
		return zero, nil
	}
	return doc, nil
}

func saveDocument(path string, doc any) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
