package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-posting-service/internal/entity"
	"job-posting-service/internal/ident"
)

// Порт репозитория (реализация: mongodb.JobRepository)
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) (*entity.Job, error)
	List(ctx context.Context) ([]entity.Job, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Job, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.JobUpdate) (*entity.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned for any payload rejected before persistence.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type JobService struct {
	repo     JobRepository
	validate *validator.Validate
}

func NewJobService(repo JobRepository) *JobService {
	validate := validator.New()

	// report json names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("unique_list", func(fl validator.FieldLevel) bool {
		switch v := fl.Field().Interface().(type) {
		case []string:
			return ident.Unique(v)
		case []entity.Language:
			return ident.Unique(v)
		default:
			return false
		}
	})

	return &JobService{repo: repo, validate: validate}
}

// CreateJob validates the payload and persists it as a new document. Any
// client-supplied id is discarded; the repository assigns a fresh one along
// with the creation timestamp.
func (s *JobService) CreateJob(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	job.ID = primitive.NilObjectID
	if err := s.check(job); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, job)
}

func (s *JobService) ListJobs(ctx context.Context) (*entity.JobCollection, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []entity.Job{}
	}
	return &entity.JobCollection{Jobs: jobs}, nil
}

func (s *JobService) GetJob(ctx context.Context, id primitive.ObjectID) (*entity.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateJob applies a partial update. An all-empty patch skips the write but
// still looks the document up, so a no-op update answers with the current
// record and an untouched `updated` timestamp.
func (s *JobService) UpdateJob(ctx context.Context, id primitive.ObjectID, patch *entity.JobUpdate) (*entity.Job, error) {
	if err := s.check(patch); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *JobService) DeleteJob(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *JobService) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "unique_list":
		return "list must be unique"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Split(fe.Param(), " "), ", "))
	case "min":
		return "must not be empty"
	default:
		return "is invalid"
	}
}
