package doctor

import (
	"context"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorService interface {
	Add(ctx context.Context, doctor models.Doctor) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Doctor, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Add(ctx context.Context, doctor models.Doctor) (models.InsertResult, error) {
	doctor.ID = primitive.NilObjectID
	result, err := s.Repo.Create(ctx, &doctor)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("add doctor: %w", err)
	}
	return result, nil
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}
